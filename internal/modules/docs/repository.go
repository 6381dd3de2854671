package docs

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter narrows a catalog query. Zero values mean no constraint.
type Filter struct {
	ProductType string // exact match, already normalized to uppercase
	Search      string // full-text search term
}

// UpsertResult reports how an ingestion batch landed in the store.
type UpsertResult struct {
	Inserted int64
	Updated  int64
}

// Repository defines the interface for document storage.
type Repository interface {
	Find(ctx context.Context, f Filter, skip, limit int64) ([]Document, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Document, error)
	Count(ctx context.Context, f Filter) (int64, error)
	CountByType(ctx context.Context) (TypeCounts, error)
	MostRecent(ctx context.Context) (*Document, error)
	BulkUpsert(ctx context.Context, documents []Document) (UpsertResult, error)
}
