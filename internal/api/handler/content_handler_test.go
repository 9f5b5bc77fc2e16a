package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

type stubPortfolioService struct {
	filter  ports.PortfolioFilter
	created domain.PortfolioItem
	updated string
}

func (s *stubPortfolioService) List(_ context.Context, f ports.PortfolioFilter) ([]domain.PortfolioItem, error) {
	s.filter = f
	return []domain.PortfolioItem{{ID: "p1", Title: "Loft"}}, nil
}

func (s *stubPortfolioService) Get(_ context.Context, id string) (*domain.PortfolioItem, error) {
	if id != "p1" {
		return nil, domain.ErrNotFound
	}
	return &domain.PortfolioItem{ID: id}, nil
}

func (s *stubPortfolioService) Create(_ context.Context, item domain.PortfolioItem) (*domain.PortfolioItem, error) {
	s.created = item
	item.ID = "p2"
	return &item, nil
}

func (s *stubPortfolioService) Update(_ context.Context, id string, item domain.PortfolioItem) (*domain.PortfolioItem, error) {
	s.updated = id
	item.ID = id
	return &item, nil
}

func (s *stubPortfolioService) Delete(context.Context, string) error { return nil }

type stubStatisticsService struct {
	updatedID string
	updated   domain.Statistics
}

func (s *stubStatisticsService) Current(context.Context) (*domain.Statistics, error) {
	st := domain.DefaultStatistics()
	return &st, nil
}

func (s *stubStatisticsService) Get(context.Context, string) (*domain.Statistics, error) {
	return nil, domain.ErrNotFound
}

func (s *stubStatisticsService) Create(_ context.Context, st domain.Statistics) (*domain.Statistics, error) {
	return &st, nil
}

func (s *stubStatisticsService) Update(_ context.Context, id string, st domain.Statistics) (*domain.Statistics, error) {
	s.updatedID = id
	s.updated = st
	return &st, nil
}

func (s *stubStatisticsService) Delete(context.Context, string) error { return nil }

func TestPortfolioHandler_List_Filters(t *testing.T) {
	tests := []struct {
		target string
		want   ports.PortfolioFilter
	}{
		{"/portfolio", ports.PortfolioFilter{}},
		{"/portfolio?category=Kitchen", ports.PortfolioFilter{Category: "Kitchen"}},
		{"/portfolio?category=All&active=false", ports.PortfolioFilter{Category: "All", IncludeInactive: true}},
		{"/portfolio?active=true", ports.PortfolioFilter{}},
	}
	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			stub := &stubPortfolioService{}
			c, rec := newJSONContext(http.MethodGet, tc.target, "")

			if err := NewPortfolioHandler(stub).List(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if stub.filter != tc.want {
				t.Fatalf("expected filter %+v, got %+v", tc.want, stub.filter)
			}
		})
	}
}

func TestPortfolioHandler_Create_DefaultsActive(t *testing.T) {
	stub := &stubPortfolioService{}
	c, rec := newJSONContext(http.MethodPost, "/portfolio",
		`{"title":"Loft","category":"Living","image":"https://img/1.jpg","description":"Open plan"}`)

	if err := NewPortfolioHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !stub.created.IsActive {
		t.Fatalf("expected isActive to default to true")
	}
	if resp := decode(t, rec); resp["id"] != "p2" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPortfolioHandler_Create_Validation(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/portfolio",
		`{"title":"Loft","category":"Living","description":"Open plan"}`)

	err := NewPortfolioHandler(&stubPortfolioService{}).Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "image" {
		t.Fatalf("expected validation error on image, got %v", err)
	}
}

func TestPortfolioHandler_Update_UsesPathID(t *testing.T) {
	stub := &stubPortfolioService{}
	c, _ := newJSONContext(http.MethodPut, "/portfolio/p1",
		`{"title":"Loft","category":"Living","image":"https://img/1.jpg","description":"Open plan","isActive":false}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := NewPortfolioHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.updated != "p1" {
		t.Fatalf("expected id p1, got %q", stub.updated)
	}
}

func TestPortfolioHandler_Get_NotFound(t *testing.T) {
	c, _ := newJSONContext(http.MethodGet, "/portfolio/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := NewPortfolioHandler(&stubPortfolioService{}).Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatisticsHandler_Update_PassesUndefinedID(t *testing.T) {
	stub := &stubStatisticsService{}
	c, rec := newJSONContext(http.MethodPut, "/statistics/undefined", `{"happyClients":80,"awardsWon":20}`)
	c.SetParamNames("id")
	c.SetParamValues("undefined")

	if err := NewStatisticsHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.updatedID != "undefined" {
		t.Fatalf("expected id passed through, got %q", stub.updatedID)
	}
	if stub.updated.HappyClients != 80 || stub.updated.AwardsWon != 20 {
		t.Fatalf("unexpected statistics: %+v", stub.updated)
	}
	// omitted fields keep their defaults
	if stub.updated.AverageRating != 5.0 || stub.updated.Satisfaction != 100 {
		t.Fatalf("expected defaults for omitted fields, got %+v", stub.updated)
	}
}

func TestStatisticsHandler_Update_RequiresCounts(t *testing.T) {
	c, _ := newJSONContext(http.MethodPut, "/statistics/s1", `{"happyClients":80}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	err := NewStatisticsHandler(&stubStatisticsService{}).Update(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "awardsWon" {
		t.Fatalf("expected validation error on awardsWon, got %v", err)
	}
}

func TestStatisticsHandler_Update_RatingRange(t *testing.T) {
	c, _ := newJSONContext(http.MethodPut, "/statistics/s1", `{"happyClients":80,"awardsWon":2,"averageRating":7}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	err := NewStatisticsHandler(&stubStatisticsService{}).Update(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "averageRating" {
		t.Fatalf("expected validation error on averageRating, got %v", err)
	}
}

func TestStatisticsHandler_Current(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/statistics", "")

	if err := NewStatisticsHandler(&stubStatisticsService{}).Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode(t, rec)
	if resp["happyClients"] != float64(50) || resp["awardsWon"] != float64(15) {
		t.Fatalf("unexpected defaults: %+v", resp)
	}
}
