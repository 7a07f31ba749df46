package printing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prodsheet/backend/internal/domain/production"
)

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Hand waxed finish", StripHTML("<p>Hand <b>waxed</b> finish</p>"))
	assert.Equal(t, "a & b", StripHTML("a &amp; b"))
	assert.Equal(t, "", StripHTML(""))
	assert.Equal(t, "plain", StripHTML("plain"))
}

func TestFormatCBM(t *testing.T) {
	assert.Equal(t, "0.24", FormatCBM(0.24))
	assert.Equal(t, "0.2508", FormatCBM(0.2508))
	assert.Equal(t, "0", FormatCBM(0))
	assert.Equal(t, "1.5", FormatCBM(1.5))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2 Pcs", FormatQuantity(2))
	assert.Equal(t, "1 Pcs", FormatQuantity(1))
}

func TestBuildSpecRow(t *testing.T) {
	t.Run("auto volume overrides stored cbm", func(t *testing.T) {
		row := BuildSpecRow(production.OrderItem{
			ProductCode: "CH-1001",
			Description: "Oak dining chair",
			HeightCM:    100,
			DepthCM:     60,
			WidthCM:     40,
			CBM:         9.99,
			CBMAuto:     true,
			Quantity:    2,
		})
		assert.Equal(t, "CH-1001", row.Code)
		assert.Equal(t, "0.24", row.CBM)
		assert.Equal(t, "2 Pcs", row.Quantity)
		assert.Equal(t, "100", row.Height)
	})

	t.Run("manual volume is verbatim", func(t *testing.T) {
		row := BuildSpecRow(production.OrderItem{CBM: 1.75, CBMAuto: false, Quantity: 1})
		assert.Equal(t, "1.75", row.CBM)
	})

	t.Run("long description truncated with ellipsis", func(t *testing.T) {
		row := BuildSpecRow(production.OrderItem{
			Description: strings.Repeat("x", 50),
			Quantity:    1,
		})
		assert.Equal(t, strings.Repeat("x", 30)+"...", row.Description)
	})

	t.Run("blank code and description fall back to dash", func(t *testing.T) {
		row := BuildSpecRow(production.OrderItem{Quantity: 1})
		assert.Equal(t, "-", row.Code)
		assert.Equal(t, "-", row.Description)
	})
}

func TestNotesText(t *testing.T) {
	t.Run("strips markup from notes", func(t *testing.T) {
		item := production.OrderItem{Notes: "<p>Distressed finish</p>"}
		assert.Equal(t, "Distressed finish", NotesText(item))
	})

	t.Run("synthesizes bullets when notes empty", func(t *testing.T) {
		item := production.OrderItem{
			Category:    "chair",
			LeatherCode: "LTH-01",
			ColorNotes:  "warm tan",
		}
		text := NotesText(item)
		assert.Contains(t, text, "• Category: chair")
		assert.Contains(t, text, "• Leather: LTH-01")
		assert.Contains(t, text, "• Color: warm tan")
		assert.NotContains(t, text, "Finish:")
	})

	t.Run("empty item yields empty text", func(t *testing.T) {
		assert.Equal(t, "", NotesText(production.OrderItem{}))
	})
}

func TestWrapText(t *testing.T) {
	// a character-count measure keeps the test independent of font metrics
	measure := func(s string) float64 { return float64(len(s)) }

	t.Run("breaks before the width is exceeded", func(t *testing.T) {
		lines := WrapText("aaa bbb ccc ddd", 7, 10, measure)
		assert.Equal(t, []string{"aaa bbb", "ccc ddd"}, lines)
	})

	t.Run("truncates at max lines", func(t *testing.T) {
		lines := WrapText("a b c d e f", 1, 3, measure)
		assert.Len(t, lines, 3)
	})

	t.Run("oversized single word gets its own line", func(t *testing.T) {
		lines := WrapText("abcdefghij bb", 5, 10, measure)
		assert.Equal(t, "abcdefghij", lines[0])
	})

	t.Run("paragraph breaks respected", func(t *testing.T) {
		lines := WrapText("one\ntwo", 100, 10, measure)
		assert.Equal(t, []string{"one", "two"}, lines)
	})
}

func TestBuildHeaderFields(t *testing.T) {
	order := &production.Order{
		EntryDate:     "2024-03-01",
		Factory:       "SAE",
		SalesOrderRef: strings.Repeat("R", 40),
	}
	fields := BuildHeaderFields(order)

	assert.Len(t, fields, 5)
	assert.Equal(t, "Entry Date", fields[0].Label)
	assert.Equal(t, "2024-03-01", fields[0].Value)
	assert.Equal(t, "N/A", fields[1].Value, "blank inform date falls back")
	assert.Equal(t, strings.Repeat("R", 24)+"...", fields[3].Value, "long refs are clipped")
}

func TestFooter(t *testing.T) {
	order := &production.Order{BuyerName: "Acme", BuyerPORef: "PO-9"}
	assert.Equal(t, "Buyer: Acme | PO: PO-9", FooterLeft(order))
	assert.Equal(t, "Page 2 of 5", FooterRight(2, 5))
}
