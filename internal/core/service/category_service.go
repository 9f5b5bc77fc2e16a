package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

const collectionCategories = "categories"

// CategoryService manages portfolio categories. Names are unique.
type CategoryService struct {
	repo  ports.DocumentRepository[domain.Category]
	cache *listCache[domain.Category]
	log   zerolog.Logger
}

func NewCategoryService(repo ports.DocumentRepository[domain.Category], cache CacheConfig, log zerolog.Logger) *CategoryService {
	return &CategoryService{
		repo:  repo,
		cache: newListCache[domain.Category](collectionCategories, cache),
		log:   log,
	}
}

// List returns all categories sorted by name.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	if cats, ok := s.cache.get("all"); ok {
		return cats, nil
	}
	cats, err := s.repo.Find(ctx, ports.DocumentQuery{Sort: []ports.SortField{{Field: "name"}}})
	if err != nil {
		return nil, err
	}
	s.cache.put("all", cats)
	return cats, nil
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	name, err := s.checkName(ctx, name, "")
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Insert(ctx, &domain.Category{Name: name})
	if err != nil {
		return nil, translateDuplicate(err)
	}
	s.cache.purge()
	mutated(collectionCategories, "create")
	return created, nil
}

func (s *CategoryService) Rename(ctx context.Context, id, name string) (*domain.Category, error) {
	name, err := s.checkName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Replace(ctx, id, &domain.Category{Name: name}, false)
	if err != nil {
		return nil, translateDuplicate(err)
	}
	s.cache.purge()
	mutated(collectionCategories, "update")
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.purge()
	mutated(collectionCategories, "delete")
	return nil
}

func (s *CategoryService) checkName(ctx context.Context, name, excludeID string) (string, error) {
	name = cleanText(name)
	if name == "" {
		return "", domain.NewValidationError("name", "category name is required")
	}
	exists, err := s.repo.Exists(ctx, map[string]any{"name": name}, excludeID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrCategoryExists
	}
	return name, nil
}

// translateDuplicate covers the race between the existence check and the write.
func translateDuplicate(err error) error {
	if errors.Is(err, domain.ErrDuplicateDocument) {
		return domain.ErrCategoryExists
	}
	return err
}
