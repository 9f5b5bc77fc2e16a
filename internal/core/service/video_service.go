package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

const collectionVideos = "videos"

type VideoService struct {
	repo  ports.DocumentRepository[domain.Video]
	cache *listCache[domain.Video]
	log   zerolog.Logger
}

func NewVideoService(repo ports.DocumentRepository[domain.Video], cache CacheConfig, log zerolog.Logger) *VideoService {
	return &VideoService{
		repo:  repo,
		cache: newListCache[domain.Video](collectionVideos, cache),
		log:   log,
	}
}

// List returns videos by display order, newest first within the same order.
func (s *VideoService) List(ctx context.Context, includeInactive bool) ([]domain.Video, error) {
	key := strconv.FormatBool(includeInactive)
	if videos, ok := s.cache.get(key); ok {
		return videos, nil
	}
	q := ports.DocumentQuery{
		Sort: []ports.SortField{{Field: "order"}, {Field: "created_at", Desc: true}},
	}
	if !includeInactive {
		q.Equals = map[string]any{"is_active": true}
	}
	videos, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	s.cache.put(key, videos)
	return videos, nil
}

func (s *VideoService) Get(ctx context.Context, id string) (*domain.Video, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VideoService) Create(ctx context.Context, v domain.Video) (*domain.Video, error) {
	if err := normalizeVideo(&v); err != nil {
		return nil, err
	}
	created, err := s.repo.Insert(ctx, &v)
	if err != nil {
		return nil, err
	}
	s.cache.purge()
	mutated(collectionVideos, "create")
	return created, nil
}

func (s *VideoService) Update(ctx context.Context, id string, v domain.Video) (*domain.Video, error) {
	if err := normalizeVideo(&v); err != nil {
		return nil, err
	}
	updated, err := s.repo.Replace(ctx, id, &v, false)
	if err != nil {
		return nil, err
	}
	s.cache.purge()
	mutated(collectionVideos, "update")
	return updated, nil
}

func (s *VideoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.purge()
	mutated(collectionVideos, "delete")
	s.log.Info().Str("id", id).Msg("video deleted")
	return nil
}

func normalizeVideo(v *domain.Video) error {
	v.ID = ""
	v.Title = cleanText(v.Title)
	v.Description = cleanText(v.Description)
	v.ThumbnailURL = cleanText(v.ThumbnailURL)
	v.VideoURL = cleanText(v.VideoURL)

	if err := checkLength("title", v.Title, 200); err != nil {
		return err
	}
	if err := checkLength("description", v.Description, 1000); err != nil {
		return err
	}
	if v.ThumbnailURL == "" {
		return requiredErr("thumbnailUrl")
	}
	if v.VideoURL == "" {
		return requiredErr("videoUrl")
	}
	if v.Order < 0 {
		return domain.NewValidationError("order", "must not be negative")
	}
	return nil
}
