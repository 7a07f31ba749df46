package printing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onePixelPNG is a 1x1 PNG used across the rendering tests
const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func TestDecodeImage(t *testing.T) {
	t.Run("png data url", func(t *testing.T) {
		data, format, ok := DecodeImage("data:image/png;base64," + onePixelPNG)
		require.True(t, ok)
		assert.Equal(t, "PNG", format)
		assert.NotEmpty(t, data)
	})

	t.Run("jpeg media type maps to JPG", func(t *testing.T) {
		_, format, ok := DecodeImage("data:image/jpeg;base64," + onePixelPNG)
		require.True(t, ok)
		assert.Equal(t, "JPG", format)
	})

	t.Run("http url is not fetched", func(t *testing.T) {
		_, _, ok := DecodeImage("https://example.com/chair.png")
		assert.False(t, ok)
	})

	t.Run("bad base64 rejected", func(t *testing.T) {
		_, _, ok := DecodeImage("data:image/png;base64,!!!not-base64!!!")
		assert.False(t, ok)
	})

	t.Run("unsupported media type rejected", func(t *testing.T) {
		_, _, ok := DecodeImage("data:image/webp;base64," + onePixelPNG)
		assert.False(t, ok)
	})

	t.Run("missing comma rejected", func(t *testing.T) {
		_, _, ok := DecodeImage("data:image/png;base64")
		assert.False(t, ok)
	})
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#3d2c1e")
	assert.Equal(t, []int{0x3d, 0x2c, 0x1e}, []int{r, g, b})

	r, g, b = ParseHexColor("FFFFFF")
	assert.Equal(t, []int{255, 255, 255}, []int{r, g, b})

	r, g, b = ParseHexColor("nope")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}
