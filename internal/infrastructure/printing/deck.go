package printing

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"go.uber.org/zap"

	"github.com/prodsheet/backend/internal/domain/production"
	"github.com/prodsheet/backend/internal/domain/rendering"
	"github.com/prodsheet/backend/internal/infrastructure/printing/pptx"
)

// DeckRenderer turns an order snapshot into a slide deck: a title slide
// followed by one slide per line item.
type DeckRenderer struct {
	logger *zap.Logger
}

// NewDeckRenderer creates a slide deck renderer
func NewDeckRenderer(logger *zap.Logger) *DeckRenderer {
	return &DeckRenderer{logger: logger}
}

// Render produces the .pptx bytes for an order. Image failures degrade
// to a placeholder text box on the affected slide.
func (r *DeckRenderer) Render(order *production.Order, settings *rendering.TemplateSettings) ([]byte, error) {
	var prs pptx.Presentation

	title := prs.AddSlide()
	title.Boxes = append(title.Boxes,
		pptx.TextBox{X: 0.5, Y: 2.5, W: 9, H: 1.5, Text: settings.LogoText, SizePt: 48, Bold: true},
		pptx.TextBox{X: 0.5, Y: 4, W: 9, H: 1,
			Text:   fmt.Sprintf("Production Sheet - %s | Buyer: %s", order.SalesOrderRef, order.BuyerName),
			SizePt: 24},
	)

	for _, item := range order.Items {
		slide := prs.AddSlide()

		heading := item.ProductCode
		if heading == "" {
			heading = "N/A"
		}
		if item.Description != "" {
			heading += " - " + item.Description
		}
		slide.Boxes = append(slide.Boxes,
			pptx.TextBox{X: 0.5, Y: 0.3, W: 9, H: 0.5, Text: heading, SizePt: 24, Bold: true})

		r.placeItemImage(slide, item)

		slide.Boxes = append(slide.Boxes,
			pptx.TextBox{X: 5, Y: 1.2, W: 4.5, H: 3, Text: itemDetails(item), SizePt: 14})

		if notes := StripHTML(item.Notes); notes != "" {
			slide.Boxes = append(slide.Boxes,
				pptx.TextBox{X: 5, Y: 4.5, W: 4.5, H: 2.5, Text: "Notes:\n" + notes, SizePt: 12})
		}
	}

	var buf bytes.Buffer
	if err := prs.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize deck: %w", err)
	}
	return buf.Bytes(), nil
}

// placeItemImage embeds the item's first image into the left region,
// degrading to a placeholder text box when absent or undecodable.
func (r *DeckRenderer) placeItemImage(slide *pptx.Slide, item production.OrderItem) {
	if len(item.Images) > 0 {
		if data, _, ok := DecodeImage(item.Images[0]); ok {
			if _, kind, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
				slide.Pictures = append(slide.Pictures,
					pptx.Picture{X: 0.5, Y: 1.2, W: 4.2, H: 4.2, Data: data, Format: kind})
				return
			} else if r.logger != nil {
				r.logger.Debug("skipping undecodable slide image",
					zap.String("item", item.ID), zap.Error(err))
			}
		}
		slide.Boxes = append(slide.Boxes,
			pptx.TextBox{X: 0.5, Y: 3, W: 4.2, H: 0.6, Text: "Image unavailable", SizePt: 12})
		return
	}
	slide.Boxes = append(slide.Boxes,
		pptx.TextBox{X: 0.5, Y: 3, W: 4.2, H: 0.6, Text: "No image", SizePt: 12})
}

func itemDetails(item production.OrderItem) string {
	orNA := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "N/A"
		}
		return s
	}
	lines := []string{
		"Category: " + orNA(item.Category),
		fmt.Sprintf("Size: H %s x D %s x W %s cm",
			FormatDimension(item.HeightCM), FormatDimension(item.DepthCM), FormatDimension(item.WidthCM)),
		fmt.Sprintf("CBM: %s | Quantity: %d pcs", FormatCBM(item.Volume()), item.Quantity),
		fmt.Sprintf("Leather: %s | Finish: %s", orNA(item.LeatherCode), orNA(item.FinishCode)),
		"Color Notes: " + orNA(item.ColorNotes),
		"Wood Finish: " + orNA(item.WoodFinish),
	}
	return strings.Join(lines, "\n")
}
