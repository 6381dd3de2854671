package docs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// cacheTTL bounds how stale a cached result can be after an ingestion run;
// entries are never invalidated explicitly.
const cacheTTL = 10 * time.Minute

// SearchParams carries boundary-validated query parameters. Page is 1-based.
type SearchParams struct {
	ProductType string
	Search      string
	Page        int
	Limit       int
}

// Service defines catalog retrieval logic.
type Service interface {
	Search(ctx context.Context, p SearchParams) ([]Document, error)
	GetByID(ctx context.Context, id string) (*Document, error)
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo  Repository
	cache Cache
}

// NewService wires the retrieval layer to its store and cache.
func NewService(repo Repository, cache Cache) Service {
	return &service{repo: repo, cache: cache}
}

// Search serves a query cache-first. A hit never consults the store; on a
// miss the store result is cached for cacheTTL when non-empty. Cache trouble
// on either side only ever downgrades to a miss.
func (s *service) Search(ctx context.Context, p SearchParams) ([]Document, error) {
	key := searchKey(p.ProductType, p.Search, p.Page, p.Limit)

	if cached, res := s.cache.Get(ctx, key); res == CacheHit {
		var documents []Document
		if err := json.Unmarshal([]byte(cached), &documents); err == nil {
			return documents, nil
		}
		log.Printf("cache: discarding undecodable entry %q", key)
	}

	f := Filter{Search: p.Search}
	if p.ProductType != "" {
		f.ProductType, _ = NormalizeProductType(p.ProductType)
	}

	documents, err := s.repo.Find(ctx, f, int64((p.Page-1)*p.Limit), int64(p.Limit))
	if err != nil {
		return nil, err
	}

	if len(documents) > 0 {
		if data, err := json.Marshal(documents); err == nil {
			if err := s.cache.Set(ctx, key, string(data), cacheTTL); err != nil {
				log.Printf("cache: write failed for %q: %v", key, err)
			}
		}
	}
	return documents, nil
}

// GetByID checks the cache before validating the id, so a hit is served
// without parsing. Malformed ids fail with ErrInvalidID before any store
// call; absent ones with ErrNotFound.
func (s *service) GetByID(ctx context.Context, id string) (*Document, error) {
	key := docKey(id)

	if cached, res := s.cache.Get(ctx, key); res == CacheHit {
		var doc Document
		if err := json.Unmarshal([]byte(cached), &doc); err == nil {
			return &doc, nil
		}
		log.Printf("cache: discarding undecodable entry %q", key)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	doc, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(doc); err == nil {
		if err := s.cache.Set(ctx, key, string(data), cacheTTL); err != nil {
			log.Printf("cache: write failed for %q: %v", key, err)
		}
	}
	return doc, nil
}

// GetStats always recomputes from the store; statistics are not cached.
func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	total, err := s.repo.Count(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.MostRecent(ctx)
	if err != nil {
		return nil, err
	}
	stats := &Stats{TotalDocuments: total, DocumentsByType: counts}
	if recent != nil {
		stats.LastUpdated = &recent.LastUpdated
	}
	return stats, nil
}
