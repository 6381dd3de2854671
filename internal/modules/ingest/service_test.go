package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TPFLegionaire/Nvidia-docs-MCP-server/internal/modules/docs"
)

// fakeSource serves canned pages per product type.
type fakeSource struct {
	errs map[string]error
}

func (f *fakeSource) ScrapeProduct(_ context.Context, productType string) ([]docs.Document, error) {
	if err := f.errs[productType]; err != nil {
		return nil, err
	}
	return []docs.Document{{
		ProductType: productType,
		Title:       productType + " docs",
		Content:     productType + " content",
		URL:         "https://example.com/" + productType,
		LastUpdated: time.Now().UTC(),
	}}, nil
}

// fakeRepo records upsert batches; the read methods are unused here.
type fakeRepo struct {
	batches [][]docs.Document
	result  docs.UpsertResult
	err     error
}

func (f *fakeRepo) Find(context.Context, docs.Filter, int64, int64) ([]docs.Document, error) {
	return nil, nil
}

func (f *fakeRepo) FindByID(context.Context, primitive.ObjectID) (*docs.Document, error) {
	return nil, docs.ErrNotFound
}

func (f *fakeRepo) Count(context.Context, docs.Filter) (int64, error) { return 0, nil }

func (f *fakeRepo) CountByType(context.Context) (docs.TypeCounts, error) { return nil, nil }

func (f *fakeRepo) MostRecent(context.Context) (*docs.Document, error) { return nil, nil }

func (f *fakeRepo) BulkUpsert(_ context.Context, documents []docs.Document) (docs.UpsertResult, error) {
	if f.err != nil {
		return docs.UpsertResult{}, f.err
	}
	f.batches = append(f.batches, documents)
	return f.result, nil
}

func TestRunUpsertsAllScrapedDocuments(t *testing.T) {
	repo := &fakeRepo{result: docs.UpsertResult{Inserted: 5}}
	svc := NewService(&fakeSource{}, repo)

	count, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(docs.ProductTypes), count)
	require.Len(t, repo.batches, 1)
	assert.Len(t, repo.batches[0], len(docs.ProductTypes))

	seen := map[string]bool{}
	for _, d := range repo.batches[0] {
		seen[d.ProductType] = true
		assert.NotEmpty(t, d.URL)
	}
	for _, productType := range docs.ProductTypes {
		assert.True(t, seen[productType], productType)
	}
}

func TestRunSkipsFailingProductTypes(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(&fakeSource{errs: map[string]error{
		docs.ProductTransceiver: fmt.Errorf("fetch failed"),
	}}, repo)

	count, err := svc.Run(context.Background())
	require.NoError(t, err, "a single failing product type must not fail the run")
	assert.Equal(t, len(docs.ProductTypes)-1, count)
	require.Len(t, repo.batches, 1)
	for _, d := range repo.batches[0] {
		assert.NotEqual(t, docs.ProductTransceiver, d.ProductType)
	}
}

func TestRunNothingScrapedSkipsStore(t *testing.T) {
	errs := map[string]error{}
	for _, productType := range docs.ProductTypes {
		errs[productType] = errors.New("unreachable")
	}
	repo := &fakeRepo{}
	svc := NewService(&fakeSource{errs: errs}, repo)

	count, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, repo.batches)
}

func TestRunStoreErrorSurfaces(t *testing.T) {
	repo := &fakeRepo{err: errors.New("bulk write failed")}
	svc := NewService(&fakeSource{}, repo)

	_, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storing documents")
	assert.Contains(t, err.Error(), "bulk write failed")
}
