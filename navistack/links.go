package navistack

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// parseMarkdown extracts the page title (first heading) and links in document order.
func parseMarkdown(source []byte) (title string, links []Link) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			if title == "" {
				title = strings.TrimSpace(inlineText(n, source))
			}
		case *ast.Link:
			links = append(links, Link{
				Text: inlineText(n, source),
				URL:  string(n.Destination),
			})
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			url := string(n.URL(source))
			links = append(links, Link{Text: url, URL: url})
		}

		return ast.WalkContinue, nil
	})

	return title, links
}

// inlineText concatenates the text segments directly under n.
func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			sb.Write(textNode.Segment.Value(source))
		}
	}
	return sb.String()
}
