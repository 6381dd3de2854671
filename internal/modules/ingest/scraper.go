package ingest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/TPFLegionaire/Nvidia-docs-MCP-server/internal/modules/docs"
)

const defaultTitle = "NVIDIA Documentation"

// Scraper fetches documentation pages and reduces them to searchable text.
type Scraper struct{ client *http.Client }

func NewScraper() *Scraper {
	return &Scraper{client: &http.Client{Timeout: 30 * time.Second}}
}

// ScrapeProduct scrapes the base page registered for productType.
func (s *Scraper) ScrapeProduct(ctx context.Context, productType string) ([]docs.Document, error) {
	url, ok := baseURLs[productType]
	if !ok {
		return nil, fmt.Errorf("no base URL for product type %s", productType)
	}
	doc, err := s.ScrapePage(ctx, url, productType)
	if err != nil {
		return nil, err
	}
	return []docs.Document{doc}, nil
}

// ScrapePage fetches url and extracts a Document for productType. Headings
// are prepended to the body text so they weigh into full-text search.
func (s *Scraper) ScrapePage(ctx context.Context, url, productType string) (docs.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return docs.Document{}, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return docs.Document{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return docs.Document{}, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	page, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return docs.Document{}, fmt.Errorf("parse %s: %w", url, err)
	}

	title := strings.TrimSpace(page.Find("title").First().Text())
	if title == "" {
		title = defaultTitle
	}

	// Strip non-content elements before any text extraction.
	page.Find("script, style, nav, footer, header").Remove()

	headings := extractHeadings(page)
	body := collapseWhitespace(page.Find("body").Text())
	content := body
	if headings != "" {
		content = headings + " " + body
	}

	return docs.Document{
		ProductType: productType,
		Title:       title,
		Content:     content,
		URL:         url,
		LastUpdated: time.Now().UTC(),
	}, nil
}

// extractHeadings collects h1-h6 text in document order.
func extractHeadings(page *goquery.Document) string {
	var parts []string
	page.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
