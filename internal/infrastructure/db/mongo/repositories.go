package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

// Repositories bundles every collection the application reads or writes.
type Repositories struct {
	db *mongo.Database

	Accounts     *AccountRepository
	Audit        ports.AuditRepository
	Founder      *DocumentRepository[domain.Founder]
	Portfolio    *DocumentRepository[domain.PortfolioItem]
	Categories   *DocumentRepository[domain.Category]
	Videos       *DocumentRepository[domain.Video]
	Testimonials *DocumentRepository[domain.Testimonial]
	Statistics   *DocumentRepository[domain.Statistics]
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		db:           db,
		Accounts:     NewAccountRepository(db),
		Audit:        NewAuditRepository(db),
		Founder:      NewDocumentRepository[domain.Founder](db, FounderCollection),
		Portfolio:    NewDocumentRepository[domain.PortfolioItem](db, PortfolioCollection),
		Categories:   NewDocumentRepository[domain.Category](db, CategoriesCollection),
		Videos:       NewDocumentRepository[domain.Video](db, VideosCollection),
		Testimonials: NewDocumentRepository[domain.Testimonial](db, TestimonialsCollection),
		Statistics:   NewDocumentRepository[domain.Statistics](db, StatisticsCollection),
	}
}

// EnsureIndexes creates every index the repositories rely on for correctness.
func (r *Repositories) EnsureIndexes(ctx context.Context, auditRetention time.Duration) error {
	if err := r.Accounts.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := r.Categories.EnsureUniqueIndex(ctx, "name"); err != nil {
		return err
	}
	return EnsureAuditIndexes(ctx, r.db, auditRetention)
}
