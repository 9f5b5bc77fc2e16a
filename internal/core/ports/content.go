package ports

import (
	"context"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
)

// SortField orders a document query. Desc flips the direction.
type SortField struct {
	Field string
	Desc  bool
}

// DocumentQuery filters a content collection by bson field equality.
type DocumentQuery struct {
	Equals map[string]any
	Sort   []SortField
	Limit  int64
}

// DocumentRepository is the generic persistence contract for content documents.
type DocumentRepository[T any] interface {
	Find(ctx context.Context, q DocumentQuery) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, doc *T) (*T, error)
	// Replace overwrites the document, creating it when upsert is true.
	Replace(ctx context.Context, id string, doc *T, upsert bool) (*T, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	// Exists reports whether a document matching all fields exists,
	// ignoring the document with id excludeID when non-empty.
	Exists(ctx context.Context, fields map[string]any, excludeID string) (bool, error)
}

// PortfolioFilter narrows the public portfolio list.
type PortfolioFilter struct {
	Category        string
	IncludeInactive bool
}

type FounderService interface {
	Get(ctx context.Context) (*domain.Founder, error)
	Create(ctx context.Context, f domain.Founder) (*domain.Founder, error)
	Upsert(ctx context.Context, f domain.Founder) (*domain.Founder, error)
}

type PortfolioService interface {
	List(ctx context.Context, filter PortfolioFilter) ([]domain.PortfolioItem, error)
	Get(ctx context.Context, id string) (*domain.PortfolioItem, error)
	Create(ctx context.Context, item domain.PortfolioItem) (*domain.PortfolioItem, error)
	Update(ctx context.Context, id string, item domain.PortfolioItem) (*domain.PortfolioItem, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Rename(ctx context.Context, id, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type VideoService interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Video, error)
	Get(ctx context.Context, id string) (*domain.Video, error)
	Create(ctx context.Context, v domain.Video) (*domain.Video, error)
	Update(ctx context.Context, id string, v domain.Video) (*domain.Video, error)
	Delete(ctx context.Context, id string) error
}

type TestimonialService interface {
	ListActive(ctx context.Context) ([]domain.Testimonial, error)
	Create(ctx context.Context, t domain.Testimonial) (*domain.Testimonial, error)
}

type StatisticsService interface {
	Current(ctx context.Context) (*domain.Statistics, error)
	Get(ctx context.Context, id string) (*domain.Statistics, error)
	Create(ctx context.Context, s domain.Statistics) (*domain.Statistics, error)
	Update(ctx context.Context, id string, s domain.Statistics) (*domain.Statistics, error)
	Delete(ctx context.Context, id string) error
}
