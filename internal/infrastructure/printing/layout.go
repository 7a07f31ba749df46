// Package printing renders production sheets into printable documents:
// a paginated PDF with one page per line item, and a slide deck with one
// slide per item. Layout computation is kept separate from the drawing
// backend so it can be tested without decoding output bytes.
package printing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/prodsheet/backend/internal/domain/production"
)

// maxDescriptionChars is the cutoff for the spec-table description cell
const maxDescriptionChars = 30

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML reduces rich-text notes to plain text
func StripHTML(text string) string {
	plain := htmlTagPattern.ReplaceAllString(text, "")
	plain = strings.ReplaceAll(plain, "&nbsp;", " ")
	plain = strings.ReplaceAll(plain, "&amp;", "&")
	plain = strings.ReplaceAll(plain, "&lt;", "<")
	plain = strings.ReplaceAll(plain, "&gt;", ">")
	return strings.TrimSpace(plain)
}

// FormatCBM renders a volume without trailing zeros, so 0.2400 prints
// as "0.24" and 0 as "0".
func FormatCBM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDimension renders a centimeter measure without trailing zeros
func FormatDimension(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatQuantity renders a piece count with its unit suffix
func FormatQuantity(qty int) string {
	return fmt.Sprintf("%d Pcs", qty)
}

// Truncate cuts s at max characters, appending an ellipsis when cut
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// fallback substitutes a placeholder for blank values
func fallback(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// SpecRow is the data row of the per-item specification table
type SpecRow struct {
	Code        string
	Description string
	Height      string
	Depth       string
	Width       string
	CBM         string
	Quantity    string
}

// SpecHeaders are the specification table column titles
var SpecHeaders = [7]string{"Item Code", "Description", "H (cm)", "D (cm)", "W (cm)", "CBM", "Qty"}

// BuildSpecRow computes the spec-table cells for an item. Volume always
// goes through Volume() so an auto-flagged item never shows a stale
// stored value.
func BuildSpecRow(item production.OrderItem) SpecRow {
	return SpecRow{
		Code:        fallback(item.ProductCode, "-"),
		Description: Truncate(fallback(item.Description, "-"), maxDescriptionChars),
		Height:      FormatDimension(item.HeightCM),
		Depth:       FormatDimension(item.DepthCM),
		Width:       FormatDimension(item.WidthCM),
		CBM:         FormatCBM(item.Volume()),
		Quantity:    FormatQuantity(item.Quantity),
	}
}

// NotesText returns the plain-text notes for an item. When the item has
// no notes a short bullet summary is synthesized from the category and
// material fields, so the notes box is only empty when the item truly
// carries no data.
func NotesText(item production.OrderItem) string {
	if plain := StripHTML(item.Notes); plain != "" {
		return plain
	}
	var bullets []string
	if item.Category != "" {
		bullets = append(bullets, "• Category: "+item.Category)
	}
	if item.LeatherCode != "" {
		bullets = append(bullets, "• Leather: "+item.LeatherCode)
	}
	if item.FinishCode != "" {
		bullets = append(bullets, "• Finish: "+item.FinishCode)
	}
	if item.ColorNotes != "" {
		bullets = append(bullets, "• Color: "+item.ColorNotes)
	}
	if item.WoodFinish != "" {
		bullets = append(bullets, "• Wood Finish: "+item.WoodFinish)
	}
	return strings.Join(bullets, "\n")
}

// WrapText word-wraps text into lines no wider than maxWidth as measured
// by the backend's string-width function. maxLines caps the output; the
// last kept line is not padded or marked, overflow is simply dropped.
func WrapText(text string, maxWidth float64, maxLines int, measure func(string) float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if measure(candidate) <= maxWidth || line == "" {
				line = candidate
				continue
			}
			lines = append(lines, line)
			if len(lines) >= maxLines {
				return lines
			}
			line = word
		}
		if line != "" {
			lines = append(lines, line)
			if len(lines) >= maxLines {
				return lines
			}
		}
	}
	return lines
}

// HeaderField is one label/value pair of the page header info box
type HeaderField struct {
	Label string
	Value string
}

// maxHeaderValueChars clips info box values so long refs cannot escape
// the box.
const maxHeaderValueChars = 24

// BuildHeaderFields computes the header info box rows in fixed order
func BuildHeaderFields(order *production.Order) []HeaderField {
	fields := []HeaderField{
		{Label: "Entry Date", Value: order.EntryDate},
		{Label: "Inform Date", Value: order.InformDate},
		{Label: "Factory", Value: order.Factory},
		{Label: "Sales Ref", Value: order.SalesOrderRef},
		{Label: "Buyer PO", Value: order.BuyerPORef},
	}
	for i := range fields {
		fields[i].Value = Truncate(fallback(fields[i].Value, "N/A"), maxHeaderValueChars)
	}
	return fields
}

// FooterLeft renders the left-aligned footer text
func FooterLeft(order *production.Order) string {
	return fmt.Sprintf("Buyer: %s | PO: %s",
		fallback(order.BuyerName, "N/A"), fallback(order.BuyerPORef, "N/A"))
}

// FooterRight renders the page counter
func FooterRight(page, total int) string {
	return fmt.Sprintf("Page %d of %d", page, total)
}
