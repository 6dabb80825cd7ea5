// Package navistack provides browser-style navigation history built on
// linked-list stacks, and a UI-agnostic Session that loads, parses and
// renders pages while moving through that history.
package navistack

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/boolean-maybe/navistack/internal/logger"
)

// Sentinel errors for Session operations.
var (
	// ErrNilProvider is returned by NewSession when no ContentProvider is configured.
	ErrNilProvider = errors.New("nil content provider")
	// ErrEmptyLocation is returned when asked to open an empty location.
	ErrEmptyLocation = errors.New("empty location")
	// ErrEmptyContent is returned when the fetched content is empty.
	ErrEmptyContent = errors.New("content is empty")
	// ErrNoSuchLink is returned by Follow for an index outside the current page's links.
	ErrNoSuchLink = errors.New("no such link")
)

const defaultCacheSize = 50

// Options configures a Session.
type Options struct {
	Provider    ContentProvider
	Renderer    Renderer
	SearchRoots []string
	// CacheSize bounds the number of loaded pages kept for back/forward moves.
	CacheSize int
	Logger    logger.Logger
	// Seed pre-populates history with locations, most recent first. Each is
	// resolved like a Goto location. The first one becomes current; call
	// Reload to load it.
	Seed []string
}

// Session is a UI-agnostic browser model: it owns a NavigationHistory of
// locations and the page loaded for the current one.
//
// Failed loads never move history. A Session is not safe for concurrent use.
type Session struct {
	history     *NavigationHistory[string]
	current     *Page
	provider    ContentProvider
	renderer    Renderer
	searchRoots []string
	cache       *lru.Cache[string, *Page]
	log         logger.Logger
}

// NewSession creates a Session from opts, filling in defaults.
func NewSession(opts Options) (*Session, error) {
	if opts.Provider == nil {
		return nil, ErrNilProvider
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewANSIRenderer("dark")
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}

	cache, err := lru.New[string, *Page](size)
	if err != nil {
		return nil, fmt.Errorf("creating page cache: %w", err)
	}

	seed := make([]string, 0, len(opts.Seed))
	for _, loc := range opts.Seed {
		resolved, err := ResolveLocation(loc, "", opts.SearchRoots)
		if err != nil {
			return nil, fmt.Errorf("resolve seed %q: %w", loc, err)
		}
		seed = append(seed, resolved)
	}

	return &Session{
		history:     NewNavigationHistoryFrom(seed...),
		provider:    opts.Provider,
		renderer:    renderer,
		searchRoots: opts.SearchRoots,
		cache:       cache,
		log:         log,
	}, nil
}

// Open loads the page at location and visits it. Relative locations are
// resolved against the current page.
func (s *Session) Open(ctx context.Context, location string) (*Page, error) {
	from := ""
	if cur, ok := s.history.Current(); ok {
		from = cur
	}
	return s.open(ctx, location, from)
}

// Goto loads and visits location as typed into an address bar: relative
// paths are looked up in the search roots only, never against the current page.
func (s *Session) Goto(ctx context.Context, location string) (*Page, error) {
	return s.open(ctx, location, "")
}

func (s *Session) open(ctx context.Context, location, from string) (*Page, error) {
	resolved, err := ResolveLocation(location, from, s.searchRoots)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", location, err)
	}

	page, err := s.load(ctx, resolved)
	if err != nil {
		return nil, err
	}

	s.history.Visit(page.Location)
	s.current = page
	s.log.Debug("visit", zap.String("location", page.Location), zap.Int("back", s.history.BackStackSize()))
	return page, nil
}

// Follow opens the link at index on the current page.
func (s *Session) Follow(ctx context.Context, index int) (*Page, error) {
	if s.current == nil || index < 0 || index >= len(s.current.Links) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchLink, index)
	}
	return s.Open(ctx, s.current.Links[index].URL)
}

// Back moves to the previous page. If that page cannot be loaded the move
// is undone and the error returned.
func (s *Session) Back(ctx context.Context) (*Page, error) {
	location, err := s.history.Back()
	if err != nil {
		return nil, err
	}

	page, err := s.load(ctx, location)
	if err != nil {
		_, _ = s.history.Forward()
		return nil, err
	}

	s.current = page
	s.log.Debug("back", zap.String("location", location))
	return page, nil
}

// Forward moves to the next page. If that page cannot be loaded the move
// is undone and the error returned.
func (s *Session) Forward(ctx context.Context) (*Page, error) {
	location, err := s.history.Forward()
	if err != nil {
		return nil, err
	}

	page, err := s.load(ctx, location)
	if err != nil {
		_, _ = s.history.Back()
		return nil, err
	}

	s.current = page
	s.log.Debug("forward", zap.String("location", location))
	return page, nil
}

// Reload fetches the current location again, bypassing the page cache.
func (s *Session) Reload(ctx context.Context) (*Page, error) {
	location, ok := s.history.Current()
	if !ok {
		return nil, ErrEmptyLocation
	}

	s.evict(location)
	page, err := s.load(ctx, location)
	if err != nil {
		return nil, err
	}
	s.current = page
	return page, nil
}

// Current returns the loaded current page, or nil before the first load.
func (s *Session) Current() *Page { return s.current }

// History returns the current location followed by back history, most recent first.
func (s *Session) History() []string { return s.history.History() }

// Forwards returns the forward history, next location first.
func (s *Session) Forwards() []string { return s.history.Forwards() }

// CanGoBack returns true if there are pages in the back history.
func (s *Session) CanGoBack() bool { return s.history.CanGoBack() }

// CanGoForward returns true if there are pages in the forward history.
func (s *Session) CanGoForward() bool { return s.history.CanGoForward() }

// evict drops location from the cache along with every other key the same
// page was stored under, such as the address requested before a redirect.
func (s *Session) evict(location string) {
	page, ok := s.cache.Peek(location)
	if !ok {
		return
	}
	for _, key := range s.cache.Keys() {
		if cached, ok := s.cache.Peek(key); ok && cached == page {
			s.cache.Remove(key)
		}
	}
}

func (s *Session) load(ctx context.Context, location string) (*Page, error) {
	if page, ok := s.cache.Get(location); ok {
		s.log.Debug("page cache hit", zap.String("location", location))
		return page, nil
	}

	content, err := s.provider.FetchContent(ctx, location)
	if err != nil {
		s.log.Warn("fetch failed", zap.String("location", location), zap.Error(err))
		return nil, fmt.Errorf("fetch content for %q: %w", location, err)
	}
	if strings.TrimSpace(content.Body) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyContent, location)
	}
	if content.Location == "" {
		content.Location = location
	}

	page, err := s.buildPage(content)
	if err != nil {
		return nil, err
	}

	s.cache.Add(location, page)
	if page.Location != location {
		s.cache.Add(page.Location, page)
	}
	return page, nil
}

func (s *Session) buildPage(c Content) (*Page, error) {
	page := &Page{Location: c.Location}

	if isHTML(c) {
		title, body, links, err := parseHTML(c)
		if err != nil {
			return nil, err
		}
		page.Title = title
		page.Links = links
		page.Body = htmlToMarkdown(title, body)
	} else {
		page.Title, page.Links = parseMarkdown([]byte(c.Body))
		page.Body = c.Body
	}

	if page.Title == "" {
		page.Title = filepath.Base(c.Location)
	}

	rendered, err := s.renderer.Render(page.Body)
	if err != nil {
		// fall back to the raw text rather than failing the navigation
		s.log.Warn("render failed", zap.String("location", c.Location), zap.Error(err))
		rendered = page.Body
	}
	page.Rendered = rendered

	return page, nil
}
