package gutenberg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public Project Gutenberg host.
const DefaultBaseURL = "https://www.gutenberg.org"

// Client fetches raw book text and catalog pages from the archive.
//
// There is deliberately no retry or rate-limiting layer here: the archive's
// terms forbid bulk scraping, and callers issue at most one request per
// missing identifier per user-triggered operation.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an archive client. An empty baseURL selects the public
// Gutenberg host; tests point it at an httptest server.
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchText downloads the plain-text file for a catalog identifier.
// Any transport failure or non-2xx status is a hard error; the caller must
// not treat it as empty content.
func (c *Client) FetchText(ctx context.Context, id string) (string, error) {
	url := fmt.Sprintf("%s/files/%s/%s-0.txt", c.baseURL, id, id)
	body, status, err := c.get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch book text %s: %w", id, err)
	}
	if status < 200 || status > 299 {
		return "", fmt.Errorf("fetch book text %s: archive returned %d", id, status)
	}
	return body, nil
}

// FetchMetadataPage downloads the catalog HTML page for an identifier.
// A non-2xx status means the archive has no such catalog page and reports
// a soft miss (ok=false, nil error); transport failures still propagate.
func (c *Client) FetchMetadataPage(ctx context.Context, id string) (string, bool, error) {
	url := fmt.Sprintf("%s/ebooks/%s", c.baseURL, id)
	body, status, err := c.get(ctx, url)
	if err != nil {
		return "", false, fmt.Errorf("fetch catalog page %s: %w", id, err)
	}
	if status < 200 || status > 299 {
		return "", false, nil
	}
	return body, true, nil
}

func (c *Client) get(ctx context.Context, url string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}
	return string(body), resp.StatusCode, nil
}
