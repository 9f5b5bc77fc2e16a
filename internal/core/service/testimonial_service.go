package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

const collectionTestimonials = "testimonials"

type TestimonialService struct {
	repo  ports.DocumentRepository[domain.Testimonial]
	cache *listCache[domain.Testimonial]
	log   zerolog.Logger
}

func NewTestimonialService(repo ports.DocumentRepository[domain.Testimonial], cache CacheConfig, log zerolog.Logger) *TestimonialService {
	return &TestimonialService{
		repo:  repo,
		cache: newListCache[domain.Testimonial](collectionTestimonials, cache),
		log:   log,
	}
}

func (s *TestimonialService) ListActive(ctx context.Context) ([]domain.Testimonial, error) {
	if list, ok := s.cache.get("active"); ok {
		return list, nil
	}
	list, err := s.repo.Find(ctx, ports.DocumentQuery{
		Equals: map[string]any{"is_active": true},
		Sort:   []ports.SortField{{Field: "order"}, {Field: "created_at", Desc: true}},
	})
	if err != nil {
		return nil, err
	}
	s.cache.put("active", list)
	return list, nil
}

func (s *TestimonialService) Create(ctx context.Context, t domain.Testimonial) (*domain.Testimonial, error) {
	t.ID = ""
	t.Name = cleanText(t.Name)
	t.Location = cleanText(t.Location)
	t.Project = cleanText(t.Project)
	t.Review = cleanText(t.Review)
	t.Image = cleanText(t.Image)

	required := []struct{ field, value string }{
		{"name", t.Name},
		{"location", t.Location},
		{"project", t.Project},
		{"review", t.Review},
		{"image", t.Image},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, requiredErr(r.field)
		}
	}
	if t.Rating < 1 || t.Rating > 5 {
		return nil, rangeErr("rating", 1, 5)
	}

	created, err := s.repo.Insert(ctx, &t)
	if err != nil {
		return nil, err
	}
	s.cache.purge()
	mutated(collectionTestimonials, "create")
	return created, nil
}
