package printing

import (
	"encoding/base64"
	"strings"
)

// DecodeImage extracts embedded image bytes from an inline data URL.
// Plain http(s) references are not fetched at render time; they come
// back not-ok and the caller draws a placeholder instead.
func DecodeImage(ref string) (data []byte, format string, ok bool) {
	if !strings.HasPrefix(ref, "data:image/") {
		return nil, "", false
	}
	comma := strings.Index(ref, ",")
	if comma < 0 {
		return nil, "", false
	}
	meta := ref[len("data:image/"):comma]
	payload := ref[comma+1:]

	if idx := strings.Index(meta, ";"); idx >= 0 {
		meta = meta[:idx]
	}
	switch strings.ToLower(meta) {
	case "png":
		format = "PNG"
	case "jpeg", "jpg":
		format = "JPG"
	case "gif":
		format = "GIF"
	default:
		return nil, "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(decoded) == 0 {
		return nil, "", false
	}
	return decoded, format, true
}

// ParseHexColor converts "#rrggbb" to RGB components, falling back to
// black on malformed input.
func ParseHexColor(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	parse := func(s string) int {
		v := 0
		for _, c := range s {
			v <<= 4
			switch {
			case c >= '0' && c <= '9':
				v |= int(c - '0')
			case c >= 'a' && c <= 'f':
				v |= int(c-'a') + 10
			case c >= 'A' && c <= 'F':
				v |= int(c-'A') + 10
			default:
				return 0
			}
		}
		return v
	}
	return parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6])
}
