package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

const collectionStatistics = "statistics"

// StatisticsService manages the headline numbers block.
type StatisticsService struct {
	repo ports.DocumentRepository[domain.Statistics]
	log  zerolog.Logger
}

func NewStatisticsService(repo ports.DocumentRepository[domain.Statistics], log zerolog.Logger) *StatisticsService {
	return &StatisticsService{repo: repo, log: log}
}

// Current returns the first active statistics document by display order,
// or the built-in defaults when none exists.
func (s *StatisticsService) Current(ctx context.Context) (*domain.Statistics, error) {
	docs, err := s.repo.Find(ctx, ports.DocumentQuery{
		Equals: map[string]any{"is_active": true},
		Sort:   []ports.SortField{{Field: "display_order"}},
		Limit:  1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		def := domain.DefaultStatistics()
		return &def, nil
	}
	return &docs[0], nil
}

func (s *StatisticsService) Get(ctx context.Context, id string) (*domain.Statistics, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StatisticsService) Create(ctx context.Context, st domain.Statistics) (*domain.Statistics, error) {
	if err := validateStatistics(&st); err != nil {
		return nil, err
	}
	created, err := s.repo.Insert(ctx, &st)
	if err != nil {
		return nil, err
	}
	mutated(collectionStatistics, "create")
	return created, nil
}

// Update overwrites the document with id. Admin clients that have never
// saved statistics send an empty or "undefined" id; that creates one instead.
func (s *StatisticsService) Update(ctx context.Context, id string, st domain.Statistics) (*domain.Statistics, error) {
	if id == "" || id == "undefined" {
		return s.Create(ctx, st)
	}
	if err := validateStatistics(&st); err != nil {
		return nil, err
	}
	updated, err := s.repo.Replace(ctx, id, &st, false)
	if err != nil {
		return nil, err
	}
	mutated(collectionStatistics, "update")
	return updated, nil
}

func (s *StatisticsService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	mutated(collectionStatistics, "delete")
	return nil
}

func validateStatistics(st *domain.Statistics) error {
	st.ID = ""
	if st.HappyClients < 0 {
		return domain.NewValidationError("happyClients", "must not be negative")
	}
	if st.AwardsWon < 0 {
		return domain.NewValidationError("awardsWon", "must not be negative")
	}
	if st.AverageRating < 0 || st.AverageRating > 5 {
		return rangeErr("averageRating", 0, 5)
	}
	if st.Satisfaction < 0 || st.Satisfaction > 100 {
		return rangeErr("satisfaction", 0, 100)
	}
	return nil
}
