package printing

import (
	"bytes"
	"compress/zlib"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prodsheet/backend/internal/domain/production"
	"github.com/prodsheet/backend/internal/domain/rendering"
)

// inflateStreams concatenates every content stream of a PDF, inflating
// compressed ones, so tests can assert on the drawn text operators.
func inflateStreams(t *testing.T, data []byte) string {
	t.Helper()
	var out strings.Builder
	rest := data
	for {
		start := bytes.Index(rest, []byte("stream\n"))
		if start < 0 {
			break
		}
		rest = rest[start+len("stream\n"):]
		end := bytes.Index(rest, []byte("endstream"))
		if end < 0 {
			break
		}
		segment := bytes.TrimSuffix(rest[:end], []byte("\n"))
		if zr, err := zlib.NewReader(bytes.NewReader(segment)); err == nil {
			if inflated, err := io.ReadAll(zr); err == nil {
				out.Write(inflated)
			}
			zr.Close()
		} else {
			out.Write(segment)
		}
		rest = rest[end+len("endstream"):]
	}
	return out.String()
}

func testOrder() *production.Order {
	return production.NewOrder("SO-2024-001", "PO-77", "Acme Interiors",
		"2024-03-01", "2024-03-05", production.OrderStatusSubmitted, "SAE",
		[]production.OrderItem{
			{
				ProductCode: "CH-1001",
				Description: "Oak dining chair",
				Category:    "chair",
				HeightCM:    95, DepthCM: 55, WidthCM: 48,
				CBMAuto:     true,
				Quantity:    2,
				LeatherCode: "LTH-01",
				Notes:       "<p>Distressed finish on the legs</p>",
			},
			{
				ProductCode: "TB-2002",
				Description: "Walnut coffee table",
				HeightCM:    45, DepthCM: 60, WidthCM: 110,
				CBM:         0.5,
				CBMAuto:     false,
				Quantity:    1,
				Images:      []string{"data:image/png;base64," + onePixelPNG},
			},
		})
}

func TestPDFRenderer_Render(t *testing.T) {
	renderer := NewPDFRenderer(zap.NewNop())
	settings := rendering.DefaultTemplateSettings()

	t.Run("produces a pdf per item", func(t *testing.T) {
		data, err := renderer.Render(testOrder(), settings, nil)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
		// one page object per line item
		assert.Equal(t, 2, bytes.Count(data, []byte("/Type /Page\n")))
	})

	t.Run("table row shows the recomputed volume and quantity", func(t *testing.T) {
		order := production.NewOrder("SO-1", "", "Acme", "", "", production.OrderStatusDraft, "SAE",
			[]production.OrderItem{{
				ProductCode: "BN-3003",
				HeightCM:    80, DepthCM: 60, WidthCM: 50,
				CBM:      9.9, // stale stored value, overridden by the auto flag
				CBMAuto:  true,
				Quantity: 2,
			}})
		data, err := renderer.Render(order, settings, nil)
		require.NoError(t, err)

		content := inflateStreams(t, data)
		assert.Contains(t, content, "(0.24)")
		assert.Contains(t, content, "(2 Pcs)")
		assert.NotContains(t, content, "(9.9)")
	})

	t.Run("empty order yields a valid empty document", func(t *testing.T) {
		order := production.NewOrder("SO-0", "", "", "", "", "", "", nil)
		data, err := renderer.Render(order, settings, nil)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("undecodable image degrades to placeholder", func(t *testing.T) {
		order := testOrder()
		order.Items[0].Images = []string{"data:image/png;base64,aGVsbG8="} // not a PNG
		data, err := renderer.Render(order, settings, nil)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("bad logo bytes fall back to logo text", func(t *testing.T) {
		data, err := renderer.Render(testOrder(), settings, []byte("not an image"))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})
}
