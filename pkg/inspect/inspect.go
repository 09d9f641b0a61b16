// Package inspect extracts page-level metadata from a fetched dictionary
// page. It is a diagnostic aid: when structured extraction stops matching,
// the readability view shows whether the page moved or just restyled.
package inspect

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/go-shiori/go-readability"
)

// PageInfo is the readability-derived metadata of one page.
type PageInfo struct {
	Title         string `yaml:"title"`
	SiteName      string `yaml:"site_name,omitempty"`
	Byline        string `yaml:"byline,omitempty"`
	Excerpt       string `yaml:"excerpt,omitempty"`
	TextLength    int    `yaml:"text_length"`
	PublishedTime string `yaml:"published_time,omitempty"`
}

// Analyze runs readability over raw HTML fetched from rawURL.
func Analyze(rawURL string, body []byte) (*PageInfo, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(body), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze page: %w", err)
	}

	info := &PageInfo{
		Title:      article.Title,
		SiteName:   article.SiteName,
		Byline:     article.Byline,
		Excerpt:    article.Excerpt,
		TextLength: len(article.TextContent),
	}
	if article.PublishedTime != nil {
		info.PublishedTime = article.PublishedTime.Format("2006-01-02")
	}
	return info, nil
}
