package loaders

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/boolean-maybe/navistack/navistack"
)

const (
	maxBodySize      = 10 * 1024 * 1024 // 10 MB
	defaultUserAgent = "navistack/0.1 (terminal browser)"
)

// FileHTTP implements navistack.ContentProvider for HTTP(S) URLs and local files.
// Locations are expected to be already resolved (see navistack.ResolveLocation).
type FileHTTP struct {
	// Client is used for HTTP(S) requests; if nil, http.DefaultClient is used.
	Client *http.Client

	// UserAgent overrides the User-Agent header sent with HTTP requests.
	UserAgent string
}

func (f *FileHTTP) FetchContent(ctx context.Context, location string) (navistack.Content, error) {
	if location == "" {
		return navistack.Content{}, navistack.ErrEmptyLocation
	}

	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return f.fetchFromWeb(ctx, location)
	}
	return f.fetchFromLocal(location)
}

func (f *FileHTTP) fetchFromWeb(ctx context.Context, url string) (content navistack.Content, err error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return content, fmt.Errorf("failed to create request: %w", err)
	}
	ua := f.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "text/markdown,text/plain;q=0.9,text/html;q=0.8,*/*;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return content, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return content, fmt.Errorf("server returned non-200 status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return content, fmt.Errorf("failed to read response body: %w", err)
	}

	return navistack.Content{
		Location:    resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(body),
	}, nil
}

func (f *FileHTTP) fetchFromLocal(path string) (navistack.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return navistack.Content{}, fmt.Errorf("failed to read local file: %w", err)
	}
	return navistack.Content{Location: path, Body: string(data)}, nil
}
