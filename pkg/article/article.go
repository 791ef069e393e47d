// Package article turns raw article HTML into a content descriptor the
// engine can classify: title, byline, and body text via readability, plus
// a section path from article metadata or the URL.
package article

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/dtnitsch/beatscope/models"
)

// Extraction is a content descriptor plus the page metadata readability
// recovered alongside it.
type Extraction struct {
	Content  models.Content
	Excerpt  string
	SiteName string
}

// FromHTML extracts a content descriptor from raw article HTML.
func FromHTML(pageURL string, html []byte) (*Extraction, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page URL: %w", err)
	}

	art, err := readability.FromReader(bytes.NewReader(html), parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to extract article: %w", err)
	}

	section := sectionPath(parsed, html)

	return &Extraction{
		Content: models.Content{
			SectionPath: section,
			Title:       strings.TrimSpace(art.Title),
			Body:        strings.TrimSpace(art.TextContent),
			Byline:      strings.TrimSpace(art.Byline),
		},
		Excerpt:  strings.TrimSpace(art.Excerpt),
		SiteName: strings.TrimSpace(art.SiteName),
	}, nil
}

// sectionPath prefers the publisher's own section metadata over the URL
// path, since URLs frequently bury the section under dates and slugs.
func sectionPath(pageURL *url.URL, html []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err == nil {
		if section, ok := doc.Find(`meta[property="article:section"]`).Attr("content"); ok {
			section = strings.TrimSpace(section)
			if section != "" {
				return "/" + strings.ToLower(section)
			}
		}
	}
	return pageURL.Path
}
