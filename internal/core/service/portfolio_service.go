package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

const (
	collectionPortfolio = "portfolio"
	allCategories       = "All"
)

// PortfolioService manages portfolio items.
type PortfolioService struct {
	repo  ports.DocumentRepository[domain.PortfolioItem]
	cache *listCache[domain.PortfolioItem]
	log   zerolog.Logger
}

func NewPortfolioService(repo ports.DocumentRepository[domain.PortfolioItem], cache CacheConfig, log zerolog.Logger) *PortfolioService {
	return &PortfolioService{
		repo:  repo,
		cache: newListCache[domain.PortfolioItem](collectionPortfolio, cache),
		log:   log,
	}
}

// List returns items ordered by display order then newest first. Inactive
// items are skipped unless requested; the "All" category means no filter.
func (s *PortfolioService) List(ctx context.Context, filter ports.PortfolioFilter) ([]domain.PortfolioItem, error) {
	category := filter.Category
	if category == allCategories {
		category = ""
	}
	key := fmt.Sprintf("%s|%t", category, filter.IncludeInactive)
	if items, ok := s.cache.get(key); ok {
		return items, nil
	}

	q := ports.DocumentQuery{
		Equals: map[string]any{},
		Sort:   []ports.SortField{{Field: "order"}, {Field: "created_at", Desc: true}},
	}
	if !filter.IncludeInactive {
		q.Equals["is_active"] = true
	}
	if category != "" {
		q.Equals["category"] = category
	}

	items, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	s.cache.put(key, items)
	return items, nil
}

func (s *PortfolioService) Get(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PortfolioService) Create(ctx context.Context, item domain.PortfolioItem) (*domain.PortfolioItem, error) {
	if err := normalizePortfolioItem(&item); err != nil {
		return nil, err
	}
	created, err := s.repo.Insert(ctx, &item)
	if err != nil {
		return nil, err
	}
	s.cache.purge()
	mutated(collectionPortfolio, "create")
	return created, nil
}

func (s *PortfolioService) Update(ctx context.Context, id string, item domain.PortfolioItem) (*domain.PortfolioItem, error) {
	if err := normalizePortfolioItem(&item); err != nil {
		return nil, err
	}
	updated, err := s.repo.Replace(ctx, id, &item, false)
	if err != nil {
		return nil, err
	}
	s.cache.purge()
	mutated(collectionPortfolio, "update")
	return updated, nil
}

func (s *PortfolioService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.purge()
	mutated(collectionPortfolio, "delete")
	s.log.Info().Str("id", id).Msg("portfolio item deleted")
	return nil
}

func normalizePortfolioItem(item *domain.PortfolioItem) error {
	item.ID = ""
	item.Title = cleanText(item.Title)
	item.Category = cleanText(item.Category)
	item.Image = cleanText(item.Image)
	item.Description = cleanText(item.Description)

	if err := checkLength("title", item.Title, 200); err != nil {
		return err
	}
	if err := checkLength("category", item.Category, 100); err != nil {
		return err
	}
	if item.Image == "" {
		return requiredErr("image")
	}
	if err := checkLength("description", item.Description, 1000); err != nil {
		return err
	}
	if item.Order < 0 {
		return domain.NewValidationError("order", "must not be negative")
	}
	return nil
}
