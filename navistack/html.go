package navistack

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// isHTML checks if the content type or body indicates HTML.
func isHTML(c Content) bool {
	ct := strings.ToLower(c.ContentType)
	if strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml+xml") {
		return true
	}
	if ct == "" {
		lower := strings.ToLower(c.Location)
		return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
	}
	return false
}

// parseHTML extracts a readable title and text plus every followable link.
// Relative links on web pages are resolved against the page location.
func parseHTML(c Content) (title, body string, links []Link, err error) {
	base, err := url.Parse(c.Location)
	if err != nil {
		return "", "", nil, fmt.Errorf("parsing location %q: %w", c.Location, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(c.Body))
	if err != nil {
		return "", "", nil, fmt.Errorf("parsing html: %w", err)
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}
		if isHTTPURL(c.Location) {
			if ref, perr := url.Parse(href); perr == nil {
				href = base.ResolveReference(ref).String()
			}
		}
		linkText := strings.Join(strings.Fields(s.Text()), " ")
		if linkText == "" {
			linkText = href
		}
		links = append(links, Link{Text: linkText, URL: href})
	})

	article, rerr := readability.FromReader(strings.NewReader(c.Body), base)
	if rerr == nil {
		title = article.Title
		body = strings.TrimSpace(article.TextContent)
	}
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if body == "" {
		body = strings.TrimSpace(doc.Find("body").Text())
	}

	return title, body, links, nil
}

// htmlToMarkdown lays out readable HTML text so it renders like a markdown page.
func htmlToMarkdown(title, body string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString("# ")
		sb.WriteString(title)
		sb.WriteString("\n\n")
	}
	for _, para := range strings.Split(body, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		sb.WriteString(para)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
