package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

// Content collection names.
const (
	FounderCollection      = "founder"
	PortfolioCollection    = "portfolio"
	CategoriesCollection   = "categories"
	VideosCollection       = "videos"
	TestimonialsCollection = "testimonials"
	StatisticsCollection   = "statistics"
)

// DocumentRepository stores one content type in one collection. Documents
// are mapped through their bson tags; created_at and updated_at are managed
// here rather than by the caller.
type DocumentRepository[T any] struct {
	coll *mongo.Collection
	now  func() time.Time
}

var _ ports.DocumentRepository[domain.Category] = (*DocumentRepository[domain.Category])(nil)

func NewDocumentRepository[T any](db *mongo.Database, collection string) *DocumentRepository[T] {
	return &DocumentRepository[T]{
		coll: db.Collection(collection),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// EnsureUniqueIndex creates a unique ascending index on field.
func (r *DocumentRepository[T]) EnsureUniqueIndex(ctx context.Context, field string) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetName("uniq_" + field).SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create index on %s.%s: %w", r.coll.Name(), field, err)
	}
	return nil
}

func (r *DocumentRepository[T]) Find(ctx context.Context, q ports.DocumentQuery) ([]T, error) {
	filter := bson.M{}
	for k, v := range q.Equals {
		filter[k] = v
	}

	opts := options.Find()
	if len(q.Sort) > 0 {
		sort := bson.D{}
		for _, s := range q.Sort {
			dir := 1
			if s.Desc {
				dir = -1
			}
			sort = append(sort, bson.E{Key: s.Field, Value: dir})
		}
		opts.SetSort(sort)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	return docs, nil
}

func (r *DocumentRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *DocumentRepository[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}
	return &doc, nil
}

func (r *DocumentRepository[T]) Insert(ctx context.Context, doc *T) (*T, error) {
	fields, err := toFields(doc)
	if err != nil {
		return nil, err
	}
	now := r.now()
	fields["created_at"] = now
	fields["updated_at"] = now

	res, err := r.coll.InsertOne(ctx, fields)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateDocument
		}
		return nil, fmt.Errorf("insert %s: %w", r.coll.Name(), err)
	}

	// fetch back to get ID and timestamps
	return r.findOne(ctx, bson.M{"_id": res.InsertedID})
}

func (r *DocumentRepository[T]) Replace(ctx context.Context, id string, doc *T, upsert bool) (*T, error) {
	filter := bson.M{}
	if id != "" {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, domain.ErrNotFound
		}
		filter["_id"] = oid
	}

	fields, err := toFields(doc)
	if err != nil {
		return nil, err
	}
	now := r.now()
	delete(fields, "created_at")
	fields["updated_at"] = now

	update := bson.M{
		"$set":         fields,
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetUpsert(upsert)

	var out T
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrDuplicateDocument
		}
		return nil, fmt.Errorf("update %s: %w", r.coll.Name(), err)
	}
	return &out, nil
}

func (r *DocumentRepository[T]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DocumentRepository[T]) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear %s: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *DocumentRepository[T]) Exists(ctx context.Context, fields map[string]any, excludeID string) (bool, error) {
	filter := bson.M{}
	for k, v := range fields {
		filter[k] = v
	}
	if excludeID != "" {
		if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count %s: %w", r.coll.Name(), err)
	}
	return n > 0, nil
}

// toFields flattens a document into its bson field map without the id.
func toFields(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	delete(fields, "_id")
	return fields, nil
}
