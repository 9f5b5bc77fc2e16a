package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

const collectionFounder = "founder"

// FounderService manages the single founder bio document.
type FounderService struct {
	repo ports.DocumentRepository[domain.Founder]
	log  zerolog.Logger
}

func NewFounderService(repo ports.DocumentRepository[domain.Founder], log zerolog.Logger) *FounderService {
	return &FounderService{repo: repo, log: log}
}

// Get returns the most recently created founder document.
func (s *FounderService) Get(ctx context.Context) (*domain.Founder, error) {
	docs, err := s.repo.Find(ctx, ports.DocumentQuery{
		Sort:  []ports.SortField{{Field: "created_at", Desc: true}},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &docs[0], nil
}

// Create replaces whatever founder data exists with f.
func (s *FounderService) Create(ctx context.Context, f domain.Founder) (*domain.Founder, error) {
	if err := normalizeFounder(&f); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteAll(ctx); err != nil {
		return nil, err
	}
	created, err := s.repo.Insert(ctx, &f)
	if err != nil {
		return nil, err
	}
	mutated(collectionFounder, "create")
	s.log.Info().Str("id", created.ID).Msg("founder data replaced")
	return created, nil
}

// Upsert updates the founder document in place, creating it when missing.
func (s *FounderService) Upsert(ctx context.Context, f domain.Founder) (*domain.Founder, error) {
	if err := normalizeFounder(&f); err != nil {
		return nil, err
	}
	updated, err := s.repo.Replace(ctx, "", &f, true)
	if err != nil {
		return nil, err
	}
	mutated(collectionFounder, "update")
	return updated, nil
}

func normalizeFounder(f *domain.Founder) error {
	f.ID = ""
	f.Name = cleanText(f.Name)
	f.Title = cleanText(f.Title)
	f.Description = cleanText(f.Description)
	f.PhotoURL = cleanText(f.PhotoURL)

	if err := checkLength("founderName", f.Name, 100); err != nil {
		return err
	}
	if err := checkLength("founderTitle", f.Title, 100); err != nil {
		return err
	}
	if err := checkLength("founderDescription", f.Description, 2000); err != nil {
		return err
	}
	if f.PhotoURL == "" {
		return requiredErr("founderPhotoUrl")
	}
	if f.ProjectsCompleted < 0 {
		return domain.NewValidationError("projectsCompleted", "must not be negative")
	}
	if f.YearsOfExperience < 0 {
		return domain.NewValidationError("yearsOfExperience", "must not be negative")
	}
	if f.ClientSatisfaction < 0 || f.ClientSatisfaction > 100 {
		return rangeErr("clientSatisfaction", 0, 100)
	}
	return nil
}
