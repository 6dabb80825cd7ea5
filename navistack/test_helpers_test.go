package navistack

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// mapProvider serves content from memory and counts fetches per location.
type mapProvider struct {
	pages   map[string]Content
	fetches map[string]int
	fail    map[string]bool
}

func newMapProvider(pages map[string]string) *mapProvider {
	p := &mapProvider{
		pages:   make(map[string]Content),
		fetches: make(map[string]int),
		fail:    make(map[string]bool),
	}
	for loc, body := range pages {
		p.pages[loc] = Content{Location: loc, Body: body}
	}
	return p
}

func (p *mapProvider) FetchContent(_ context.Context, location string) (Content, error) {
	p.fetches[location]++
	if p.fail[location] {
		return Content{}, errFetchFailed
	}
	c, ok := p.pages[location]
	if !ok {
		return Content{}, os.ErrNotExist
	}
	return c, nil
}

var errFetchFailed = errors.New("fetch failed")

// fileProvider reads resolved local paths.
type fileProvider struct{}

func (fileProvider) FetchContent(_ context.Context, location string) (Content, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		return Content{}, err
	}
	return Content{Location: location, Body: string(data)}, nil
}

// plainRenderer returns markdown unchanged.
var plainRenderer = RendererFunc(func(md string) (string, error) { return md, nil })

// writePages creates markdown files under a temp dir and returns the dir.
func writePages(t *testing.T, pages map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range pages {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
