package navistack

import "context"

// Link is a followable reference found on a page.
type Link struct {
	Text string // visible link text
	URL  string // destination as written in the page
}

// Content is the raw result of loading a location.
type Content struct {
	Location    string // final location after redirects or path resolution
	ContentType string // MIME type when known, e.g. from an HTTP response
	Body        string
}

// ContentProvider loads the content stored at a location.
type ContentProvider interface {
	FetchContent(ctx context.Context, location string) (Content, error)
}

// Page is a loaded, parsed and rendered location.
type Page struct {
	Location string
	Title    string
	Body     string // markdown, or readable text for HTML pages
	Rendered string // ANSI-decorated output of the Renderer
	Links    []Link
}
