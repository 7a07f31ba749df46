package printing

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/prodsheet/backend/internal/domain/production"
	"github.com/prodsheet/backend/internal/domain/rendering"
)

// previewTemplate mirrors the printed page structure for on-screen
// review: header, per-item panel with materials and notes, spec row.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Production Sheet {{.Order.SalesOrderRef}}</title>
<style>
body { font-family: {{.Settings.BodyFont}}; color: #333; margin: 2rem; }
h1 { color: {{.Settings.PrimaryColor}}; font-family: {{.Settings.FontFamily}}; margin-bottom: 0; }
.company { color: #666; font-size: 0.85rem; margin-bottom: 1.5rem; }
.meta td { border: 1px solid #ccc; padding: 2px 8px; font-size: 0.8rem; }
.meta td.label { background: #f0ede9; font-weight: bold; }
.item { border-top: 2px solid {{.Settings.PrimaryColor}}; margin-top: 2rem; padding-top: 1rem; }
.spec { border-collapse: collapse; width: 100%; margin-top: 1rem; }
.spec th { background: {{.Settings.PrimaryColor}}; color: #fff; padding: 4px 8px; font-size: 0.8rem; }
.spec td { border: 1px solid #ccc; padding: 4px 8px; font-size: 0.8rem; }
.notes { border: 1px solid #ccc; padding: 0.5rem; margin-top: 0.5rem; white-space: pre-line; font-size: 0.85rem; }
.swatch { display: inline-block; width: 60px; height: 40px; background: {{.Settings.AccentColor}}; vertical-align: middle; margin-right: 0.5rem; }
</style>
</head>
<body>
<h1>{{.Settings.LogoText}}</h1>
<div class="company">{{.Settings.CompanyName}}</div>
<table class="meta">
{{range .Header}}<tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
{{range .Items}}
<div class="item">
<h3>{{.Row.Code}} - {{.Row.Description}}</h3>
{{if .LeatherCode}}<div><span class="swatch"></span>Leather: {{.LeatherCode}}</div>{{end}}
{{if .FinishCode}}<div><span class="swatch"></span>Finish: {{.FinishCode}}</div>{{end}}
{{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
<table class="spec">
<tr>{{range $.SpecHeaders}}<th>{{.}}</th>{{end}}</tr>
<tr><td>{{.Row.Code}}</td><td>{{.Row.Description}}</td><td>{{.Row.Height}}</td><td>{{.Row.Depth}}</td><td>{{.Row.Width}}</td><td>{{.Row.CBM}}</td><td>{{.Row.Quantity}}</td></tr>
</table>
</div>
{{end}}
</body>
</html>`

var previewTmpl = template.Must(template.New("preview").Parse(previewTemplate))

type previewItem struct {
	Row         SpecRow
	LeatherCode string
	FinishCode  string
	Notes       string
}

// RenderPreviewHTML produces the on-screen HTML rendition of an order
func RenderPreviewHTML(order *production.Order, settings *rendering.TemplateSettings) (string, error) {
	items := make([]previewItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, previewItem{
			Row:         BuildSpecRow(item),
			LeatherCode: item.LeatherCode,
			FinishCode:  item.FinishCode,
			Notes:       NotesText(item),
		})
	}

	data := map[string]any{
		"Order":       order,
		"Settings":    settings,
		"Header":      BuildHeaderFields(order),
		"Items":       items,
		"SpecHeaders": SpecHeaders,
	}
	var buf bytes.Buffer
	if err := previewTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}
