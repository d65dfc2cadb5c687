package sitemap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"giramae/internal/usecase/interfaces"
)

// maxSitemapBytes is the uncompressed size limit of a sitemap file.
const maxSitemapBytes = 50 << 20

var ErrSitemapTooLarge = errors.New("sitemap exceeds size limit")

// UpstreamClient fetches generated sitemaps from the functions host
// (<base>/sitemap-<name>).
type UpstreamClient struct {
	baseURL string
	apiKey   string
	maxBytes int64
	http     *http.Client
}

var _ interfaces.ISitemapUpstream = (*UpstreamClient)(nil)

func NewUpstreamClient(baseURL, apiKey string) *UpstreamClient {
	return &UpstreamClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		maxBytes: maxSitemapBytes,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *UpstreamClient) Fetch(ctx context.Context, name string) ([]byte, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("sitemap upstream url not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/sitemap-"+name, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/xml")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrSitemapTooLarge, c.maxBytes)
	}
	return body, nil
}
