package printing

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prodsheet/backend/internal/domain/rendering"
)

func readDeckParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		parts[f.Name] = string(content)
	}
	return parts
}

func TestDeckRenderer_Render(t *testing.T) {
	renderer := NewDeckRenderer(zap.NewNop())
	settings := rendering.DefaultTemplateSettings()

	data, err := renderer.Render(testOrder(), settings)
	require.NoError(t, err)
	parts := readDeckParts(t, data)

	t.Run("title slide plus one slide per item", func(t *testing.T) {
		assert.Contains(t, parts, "ppt/slides/slide1.xml")
		assert.Contains(t, parts, "ppt/slides/slide2.xml")
		assert.Contains(t, parts, "ppt/slides/slide3.xml")
		assert.NotContains(t, parts, "ppt/slides/slide4.xml")
	})

	t.Run("title slide carries logo text and order line", func(t *testing.T) {
		assert.Contains(t, parts["ppt/slides/slide1.xml"], settings.LogoText)
		assert.Contains(t, parts["ppt/slides/slide1.xml"], "Production Sheet - SO-2024-001 | Buyer: Acme Interiors")
	})

	t.Run("item slide details use the effective volume", func(t *testing.T) {
		slide := parts["ppt/slides/slide2.xml"]
		assert.Contains(t, slide, "CH-1001 - Oak dining chair")
		assert.Contains(t, slide, "Size: H 95 x D 55 x W 48 cm")
		// 95*55*48/1e6 rounded to 4 places
		assert.Contains(t, slide, "CBM: 0.2508 | Quantity: 2 pcs")
		assert.Contains(t, slide, "Leather: LTH-01 | Finish: N/A")
	})

	t.Run("notes are stripped of markup", func(t *testing.T) {
		assert.Contains(t, parts["ppt/slides/slide2.xml"], "Distressed finish on the legs")
		assert.NotContains(t, parts["ppt/slides/slide2.xml"], "&lt;p&gt;")
	})

	t.Run("item image is embedded as media", func(t *testing.T) {
		assert.Contains(t, parts, "ppt/media/image1.png")
		assert.Contains(t, parts["ppt/slides/slide3.xml"], "r:embed")
	})
}

func TestDeckRenderer_RenderPlaceholders(t *testing.T) {
	renderer := NewDeckRenderer(zap.NewNop())
	settings := rendering.DefaultTemplateSettings()

	order := testOrder()
	order.Items[1].Images = []string{"data:image/png;base64,aGVsbG8="} // not a PNG

	data, err := renderer.Render(order, settings)
	require.NoError(t, err)
	parts := readDeckParts(t, data)

	// slide 2 has no images at all, slide 3 has one that fails to decode
	assert.Contains(t, parts["ppt/slides/slide2.xml"], "No image")
	assert.Contains(t, parts["ppt/slides/slide3.xml"], "Image unavailable")
	assert.NotContains(t, parts, "ppt/media/image1.png")
}
