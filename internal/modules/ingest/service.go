package ingest

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/TPFLegionaire/Nvidia-docs-MCP-server/internal/modules/docs"
)

// Service runs scrape-and-store ingestion cycles.
type Service interface {
	Run(ctx context.Context) (int, error)
}

// PageSource abstracts the scraper so tests can substitute fixed pages.
type PageSource interface {
	ScrapeProduct(ctx context.Context, productType string) ([]docs.Document, error)
}

type service struct {
	source PageSource
	repo   docs.Repository
}

func NewService(source PageSource, repo docs.Repository) Service {
	return &service{source: source, repo: repo}
}

// Run scrapes every product type and reconciles the batch into the store by
// upserting on URL. A product type that fails to scrape is logged and
// skipped; the rest of the batch still lands. Cached query results are left
// alone and age out within their TTL. Returns the number of documents
// processed.
func (s *service) Run(ctx context.Context) (int, error) {
	runID := uuid.New()
	log.Printf("ingest %s: starting run", runID)

	var batch []docs.Document
	for _, productType := range docs.ProductTypes {
		scraped, err := s.source.ScrapeProduct(ctx, productType)
		if err != nil {
			log.Printf("ingest %s: scraping %s failed: %v", runID, productType, err)
			continue
		}
		log.Printf("ingest %s: scraped %d documents for %s", runID, len(scraped), productType)
		batch = append(batch, scraped...)
	}

	if len(batch) == 0 {
		return 0, nil
	}

	result, err := s.repo.BulkUpsert(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("storing documents: %w", err)
	}
	log.Printf("ingest %s: upserted %d documents (%d new)", runID, result.Inserted+result.Updated, result.Inserted)
	return len(batch), nil
}
