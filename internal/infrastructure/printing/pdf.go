package printing

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/prodsheet/backend/internal/domain/production"
	"github.com/prodsheet/backend/internal/domain/rendering"
)

// A4 portrait in millimeters
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
)

// Band heights in millimeters
const (
	imageBandHeight = 90.0
	notesBandHeight = 45.0
	tableRowHeight  = 8.0
	footerOffset    = 8.0
)

// PDFRenderer turns an order snapshot into a paginated production sheet,
// one page per line item.
type PDFRenderer struct {
	logger *zap.Logger
}

// NewPDFRenderer creates a PDF renderer
func NewPDFRenderer(logger *zap.Logger) *PDFRenderer {
	return &PDFRenderer{logger: logger}
}

// Render produces the PDF bytes for an order. Image failures degrade to
// textual placeholders on the affected page; they never abort the render.
func (r *PDFRenderer) Render(order *production.Order, settings *rendering.TemplateSettings, logo []byte) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	margin := float64(settings.PageMarginMM)
	if margin <= 0 {
		margin = 15
	}
	headerHeight := float64(settings.HeaderHeightMM)
	if headerHeight <= 0 {
		headerHeight = 25
	}
	contentWidth := pageWidthMM - 2*margin

	pr, pg, pb := ParseHexColor(settings.PrimaryColor)
	ar, ag, ab := ParseHexColor(settings.AccentColor)

	total := len(order.Items)
	for idx, item := range order.Items {
		pdf.AddPage()

		r.drawHeader(pdf, order, settings, logo, margin, headerHeight, pr, pg, pb)

		bandY := margin + headerHeight + 5
		r.drawImageBand(pdf, item, margin, bandY, contentWidth, ar, ag, ab)

		notesY := bandY + imageBandHeight + 5
		r.drawNotes(pdf, item, margin, notesY, contentWidth, pr, pg, pb)

		tableY := notesY + notesBandHeight + 5
		r.drawSpecTable(pdf, item, margin, tableY, contentWidth, pr, pg, pb)

		r.drawFooter(pdf, order, margin, idx+1, total)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) drawHeader(pdf *fpdf.Fpdf, order *production.Order, settings *rendering.TemplateSettings, logo []byte, margin, headerHeight float64, pr, pg, pb int) {
	if len(logo) > 0 && r.placeImage(pdf, "header-logo", logo, margin, margin, 40, 15) {
		// logo drawn
	} else {
		pdf.SetTextColor(pr, pg, pb)
		pdf.SetFont("Helvetica", "B", 24)
		pdf.Text(margin, margin+8, settings.LogoText)
	}
	pdf.SetTextColor(102, 102, 102)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(margin, margin+14, settings.CompanyName)

	// Info box on the right: shaded label cells, clipped values
	const boxWidth, labelWidth, rowHeight = 62.0, 24.0, 5.0
	boxX := pageWidthMM - margin - boxWidth
	y := margin
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.2)
	for _, field := range BuildHeaderFields(order) {
		pdf.SetFillColor(240, 237, 233)
		pdf.Rect(boxX, y, labelWidth, rowHeight, "FD")
		pdf.Rect(boxX+labelWidth, y, boxWidth-labelWidth, rowHeight, "D")

		pdf.SetTextColor(51, 51, 51)
		pdf.SetFont("Helvetica", "B", 7)
		pdf.Text(boxX+1.5, y+3.5, field.Label)
		pdf.SetFont("Helvetica", "", 7)
		pdf.Text(boxX+labelWidth+1.5, y+3.5, field.Value)
		y += rowHeight
	}

	pdf.SetDrawColor(pr, pg, pb)
	pdf.SetLineWidth(0.8)
	lineY := margin + headerHeight
	pdf.Line(margin, lineY, pageWidthMM-margin, lineY)
}

func (r *PDFRenderer) drawImageBand(pdf *fpdf.Fpdf, item production.OrderItem, margin, y, contentWidth float64, ar, ag, ab int) {
	imageWidth := contentWidth * 0.73
	swatchX := margin + contentWidth*0.75
	swatchWidth := contentWidth * 0.25

	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.2)
	pdf.Rect(margin, y, imageWidth, imageBandHeight, "D")

	drawn := false
	if len(item.Images) > 0 {
		if data, _, ok := DecodeImage(item.Images[0]); ok {
			drawn = r.placeImage(pdf, "item-"+item.ID, data, margin+2, y+2, imageWidth-4, imageBandHeight-4)
			if !drawn {
				r.placeholderText(pdf, "Image Error", margin, y, imageWidth, imageBandHeight)
			}
		} else {
			r.placeholderText(pdf, "Image Error", margin, y, imageWidth, imageBandHeight)
		}
	}
	if !drawn && len(item.Images) == 0 {
		r.placeholderText(pdf, "No Image Available", margin, y, imageWidth, imageBandHeight)
	}

	// Swatch column: leather on top, finish below
	swatchHeight := (imageBandHeight - 6) / 2
	r.drawSwatch(pdf, "Leather", item.LeatherCode, item.LeatherImage, item.ID+"-leather", swatchX, y, swatchWidth, swatchHeight, ar, ag, ab)
	r.drawSwatch(pdf, "Finish", item.FinishCode, item.FinishImage, item.ID+"-finish", swatchX, y+swatchHeight+6, swatchWidth, swatchHeight, ar, ag, ab)

	if item.LeatherCode == "" && item.LeatherImage == "" && item.FinishCode == "" && item.FinishImage == "" {
		r.placeholderText(pdf, "No Material", swatchX, y, swatchWidth, imageBandHeight)
	}
}

// drawSwatch renders one material slot: the swatch image when embedded,
// otherwise a solid accent block, captioned with the material code.
func (r *PDFRenderer) drawSwatch(pdf *fpdf.Fpdf, label, code, imageRef, key string, x, y, w, h float64, ar, ag, ab int) {
	if code == "" && imageRef == "" {
		return
	}
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.2)

	blockHeight := h - 5
	drawn := false
	if data, _, ok := DecodeImage(imageRef); ok {
		drawn = r.placeImage(pdf, "swatch-"+key, data, x, y, w, blockHeight)
	}
	if !drawn {
		pdf.SetFillColor(ar, ag, ab)
		pdf.Rect(x, y, w, blockHeight, "F")
	} else {
		pdf.Rect(x, y, w, blockHeight, "D")
	}

	pdf.SetTextColor(51, 51, 51)
	pdf.SetFont("Helvetica", "B", 7)
	caption := label
	if code != "" {
		caption = label + ": " + code
	}
	pdf.Text(x, y+blockHeight+3.5, caption)
}

func (r *PDFRenderer) drawNotes(pdf *fpdf.Fpdf, item production.OrderItem, margin, y, contentWidth float64, pr, pg, pb int) {
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.2)
	pdf.Rect(margin, y, contentWidth, notesBandHeight, "D")

	pdf.SetTextColor(pr, pg, pb)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(margin+4, y+6, "NOTES")

	text := NotesText(item)
	if text == "" {
		return
	}
	pdf.SetTextColor(51, 51, 51)
	pdf.SetFont("Helvetica", "", 8)

	const lineHeight = 4.0
	maxLines := int(notesBandHeight-12) / int(lineHeight)
	lines := WrapText(text, contentWidth-8, maxLines, pdf.GetStringWidth)
	lineY := y + 12
	for _, line := range lines {
		pdf.Text(margin+4, lineY, line)
		lineY += lineHeight
	}
}

func (r *PDFRenderer) drawSpecTable(pdf *fpdf.Fpdf, item production.OrderItem, margin, y, contentWidth float64, pr, pg, pb int) {
	// Column starts as fractions of the content width
	fractions := [7]float64{0.01, 0.13, 0.41, 0.51, 0.61, 0.71, 0.83}
	var cols [7]float64
	for i, f := range fractions {
		cols[i] = margin + contentWidth*f
	}

	pdf.SetFillColor(pr, pg, pb)
	pdf.Rect(margin, y, contentWidth, tableRowHeight, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8)
	for i, header := range SpecHeaders {
		pdf.Text(cols[i], y+5.5, header)
	}

	row := BuildSpecRow(item)
	rowY := y + tableRowHeight
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.2)
	pdf.Rect(margin, rowY, contentWidth, tableRowHeight, "D")

	pdf.SetTextColor(51, 51, 51)
	pdf.SetFont("Courier", "", 8)
	pdf.Text(cols[0], rowY+5.5, row.Code)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(cols[1], rowY+5.5, row.Description)
	pdf.Text(cols[2], rowY+5.5, row.Height)
	pdf.Text(cols[3], rowY+5.5, row.Depth)
	pdf.Text(cols[4], rowY+5.5, row.Width)
	pdf.Text(cols[5], rowY+5.5, row.CBM)
	pdf.Text(cols[6], rowY+5.5, row.Quantity)
}

func (r *PDFRenderer) drawFooter(pdf *fpdf.Fpdf, order *production.Order, margin float64, page, total int) {
	y := pageHeightMM - footerOffset
	pdf.SetTextColor(136, 136, 136)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(margin, y, FooterLeft(order))

	right := FooterRight(page, total)
	pdf.Text(pageWidthMM-margin-pdf.GetStringWidth(right), y, right)
}

// placeImage validates and embeds image bytes, reporting success. A byte
// stream Go's decoders reject is never handed to the PDF backend, which
// would otherwise poison the whole document.
func (r *PDFRenderer) placeImage(pdf *fpdf.Fpdf, name string, data []byte, x, y, w, h float64) bool {
	cfg, kind, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		if r.logger != nil {
			r.logger.Debug("skipping undecodable image", zap.String("name", name), zap.Error(err))
		}
		return false
	}
	var imageType string
	switch kind {
	case "png":
		imageType = "PNG"
	case "jpeg":
		imageType = "JPG"
	case "gif":
		imageType = "GIF"
	default:
		return false
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if pdf.Err() {
		pdf.ClearError()
		return false
	}
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return !pdf.Err()
}

func (r *PDFRenderer) placeholderText(pdf *fpdf.Fpdf, text string, x, y, w, h float64) {
	pdf.SetTextColor(136, 136, 136)
	pdf.SetFont("Helvetica", "", 10)
	tw := pdf.GetStringWidth(text)
	pdf.Text(x+(w-tw)/2, y+h/2, text)
}
