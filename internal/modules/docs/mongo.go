package docs

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepo struct{ coll *mongo.Collection }

// NewMongoRepository returns a Repository backed by the given collection.
func NewMongoRepository(coll *mongo.Collection) Repository { return &mongoRepo{coll: coll} }

func (f Filter) query() bson.M {
	q := bson.M{}
	if f.ProductType != "" {
		q["product_type"] = f.ProductType
	}
	if f.Search != "" {
		q["$text"] = bson.M{"$search": f.Search}
	}
	return q
}

func (r *mongoRepo) Find(ctx context.Context, f Filter, skip, limit int64) ([]Document, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	var documents []Document
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *mongoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Document, error) {
	var doc Document
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *mongoRepo) Count(ctx context.Context, f Filter) (int64, error) {
	return r.coll.CountDocuments(ctx, f.query())
}

func (r *mongoRepo) CountByType(ctx context.Context) (TypeCounts, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$product_type", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var counts TypeCounts
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *mongoRepo) MostRecent(ctx context.Context) (*Document, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "last_updated", Value: -1}})
	var doc Document
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// BulkUpsert matches each document on its URL: new URLs insert, existing ones
// have their fields replaced. Each document commits independently, so an
// interrupted batch may partially apply.
func (r *mongoRepo) BulkUpsert(ctx context.Context, documents []Document) (UpsertResult, error) {
	if len(documents) == 0 {
		return UpsertResult{}, nil
	}
	models := make([]mongo.WriteModel, 0, len(documents))
	for _, d := range documents {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"url": d.URL}).
			SetUpdate(bson.M{"$set": d}).
			SetUpsert(true))
	}
	res, err := r.coll.BulkWrite(ctx, models)
	if err != nil {
		return UpsertResult{}, err
	}
	return UpsertResult{Inserted: res.UpsertedCount, Updated: res.ModifiedCount}, nil
}

// EnsureIndexes creates the indexes the query paths depend on. Safe to call
// on every startup; the server treats identical existing indexes as a no-op.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: "text"}, {Key: "content", Value: "text"}},
			Options: options.Index().SetWeights(bson.M{"title": 10, "content": 1}),
		},
		{Keys: bson.D{{Key: "url", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "product_type", Value: 1}}},
		{Keys: bson.D{{Key: "last_updated", Value: -1}}},
		{Keys: bson.D{{Key: "product_type", Value: 1}, {Key: "last_updated", Value: -1}}},
	})
	return err
}
