package summarize

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const (
	minExtractedLength = 50
	maxFetchBodySize   = 4 << 20
	extractorUserAgent = "Mozilla/5.0 (compatible; aisumm/1.0; +https://github.com/aisumm/core)"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extractor fetches a URL and isolates its main readable text.
type Extractor struct {
	client *http.Client
}

func NewExtractor(timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Extractor{client: &http.Client{Timeout: timeout}}
}

// fallbackStrategies are tried in order when the readability pass comes up
// short. Append new strategies here rather than nesting conditionals.
var fallbackStrategies = []func(*goquery.Document) string{
	metaDescription,
	firstElementText("article"),
	firstElementText("main"),
}

// Extract fetches pageURL and returns its main text content. The readability
// pass runs first; each fallback strategy must yield more than
// minExtractedLength characters to win.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (string, error) {
	parsed, err := neturl.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: invalid url %q", ErrExtraction, pageURL)
	}

	body, err := e.fetch(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	if article, err := readability.FromReader(bytes.NewReader(body), parsed); err == nil {
		if text := collapseWhitespace(article.TextContent); len(text) >= minExtractedLength {
			return text, nil
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: parse html: %v", ErrExtraction, err)
	}
	for _, strategy := range fallbackStrategies {
		if text := strategy(doc); len(text) > minExtractedLength {
			return text, nil
		}
	}

	return "", fmt.Errorf("%w: could not extract enough content from %s", ErrExtraction, pageURL)
}

func (e *Extractor) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", extractorUserAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("fetch returned HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxFetchBodySize))
}

func metaDescription(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	return collapseWhitespace(content)
}

func firstElementText(selector string) func(*goquery.Document) string {
	return func(doc *goquery.Document) string {
		return collapseWhitespace(doc.Find(selector).First().Text())
	}
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
