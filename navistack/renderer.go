package navistack

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns page markdown into terminal output.
type Renderer interface {
	Render(markdown string) (string, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(markdown string) (string, error)

func (f RendererFunc) Render(markdown string) (string, error) { return f(markdown) }

// ANSIRenderer renders markdown to ANSI using glamour.
type ANSIRenderer struct {
	style    string
	wordWrap int
}

// NewANSIRenderer creates a renderer with the named glamour style.
// styleName is any glamour standard style ("dark", "light", "notty", ...)
// or "auto", which picks dark or light from the COLORFGBG environment variable.
func NewANSIRenderer(styleName string) *ANSIRenderer {
	if styleName == "" || styleName == "auto" {
		styleName = styleFromEnvironment()
	}
	return &ANSIRenderer{style: styleName}
}

// styleFromEnvironment detects terminal theme using COLORFGBG ("fg;bg").
// Background >= 8 indicates light background; anything unparsable is dark.
func styleFromEnvironment() string {
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) < 2 {
		return "dark"
	}

	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || bg < 8 {
		return "dark"
	}
	return "light"
}

// WithWordWrap configures glamour word wrap (0 means no wrap).
func (r *ANSIRenderer) WithWordWrap(cols int) *ANSIRenderer {
	r.wordWrap = cols
	return r
}

// Style returns the resolved glamour style name.
func (r *ANSIRenderer) Style() string { return r.style }

func (r *ANSIRenderer) Render(markdown string) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(r.wordWrap),
	)
	if err != nil {
		return markdown, err
	}

	out, err := tr.Render(markdown)
	if err != nil {
		return markdown, err
	}
	return out, nil
}
