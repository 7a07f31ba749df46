// Package imagefetch downloads remote images on a best-effort basis.
// Callers treat a failed fetch as "no image", never as an error.
package imagefetch

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxImageSize caps a single download at 8 MiB
const maxImageSize = 8 << 20

// Fetcher downloads images within a bounded timeout
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher with the given per-request timeout
func New(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the image at url. The boolean result is false on any
// failure: bad scheme, network error, non-200 status, non-image content.
func (f *Fetcher) Fetch(ctx context.Context, url string) (data []byte, contentType string, ok bool) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", false
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", false
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil || len(body) == 0 {
		return nil, "", false
	}

	ct := resp.Header.Get("Content-Type")
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	ct = strings.TrimSpace(ct)
	if ct == "" || !strings.HasPrefix(ct, "image/") {
		ct = "image/jpeg"
	}
	return body, ct, true
}

// FetchDataURL downloads the image and encodes it as an inline data URL
func (f *Fetcher) FetchDataURL(ctx context.Context, url string) (string, bool) {
	data, contentType, ok := f.Fetch(ctx, url)
	if !ok {
		return "", false
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", contentType, encoded), true
}
