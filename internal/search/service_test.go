package search

import (
	"context"
	"errors"
	"testing"

	"clinic/api/internal/store"

	"github.com/rs/zerolog"
)

type fakeEngine struct {
	healthy bool
	results []Result
	err     error
	calls   int
}

func (f *fakeEngine) Healthy() bool { return f.healthy }

func (f *fakeEngine) Search(q string, limit int) ([]Result, int, error) {
	f.calls++
	return f.results, len(f.results), f.err
}

type fakeFallback struct {
	doctors  []store.Doctor
	services []store.Service
	podcasts []store.PodcastEpisode
	calls    int
}

func (f *fakeFallback) SearchDoctors(context.Context, string) ([]store.Doctor, error) {
	f.calls++
	return f.doctors, nil
}

func (f *fakeFallback) SearchServices(context.Context, string) ([]store.Service, error) {
	return f.services, nil
}

func (f *fakeFallback) SearchPodcasts(context.Context, string) ([]store.PodcastEpisode, error) {
	return f.podcasts, nil
}

func TestSearchUsesHealthyEngine(t *testing.T) {
	engine := &fakeEngine{
		healthy: true,
		results: []Result{{Type: ResultDoctor, ID: "d1", Title: "Dr. Imran"}},
	}
	fallback := &fakeFallback{}
	service := NewService(engine, fallback, zerolog.Nop())

	resp := service.Search(context.Background(), "imran", 10)
	if len(resp.Results) != 1 || resp.Results[0].ID != "d1" {
		t.Fatalf("unexpected results %+v", resp.Results)
	}
	if fallback.calls != 0 {
		t.Fatal("fallback should not be consulted when the engine answers")
	}
}

func TestSearchFallsBackWhenEngineUnhealthy(t *testing.T) {
	engine := &fakeEngine{healthy: false}
	fallback := &fakeFallback{
		doctors:  []store.Doctor{{ID: "d1", Name: "Dr. Imran", Specialization: "Nephrology"}},
		services: []store.Service{{ID: "s1", Name: "Dialysis", Summary: "In-centre dialysis"}},
	}
	service := NewService(engine, fallback, zerolog.Nop())

	resp := service.Search(context.Background(), "dia", 10)
	if engine.calls != 0 {
		t.Fatal("unhealthy engine should not be queried")
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 fallback results, got %d", len(resp.Results))
	}
	if resp.Results[0].Type != ResultDoctor || resp.Results[1].Type != ResultService {
		t.Fatalf("unexpected result types %+v", resp.Results)
	}
}

func TestSearchFallsBackOnEngineError(t *testing.T) {
	engine := &fakeEngine{healthy: true, err: errors.New("connection reset")}
	fallback := &fakeFallback{
		podcasts: []store.PodcastEpisode{{ID: "p1", Title: "Kidney Talk"}},
	}
	service := NewService(engine, fallback, zerolog.Nop())

	resp := service.Search(context.Background(), "kidney", 10)
	if len(resp.Results) != 1 || resp.Results[0].Type != ResultPodcast {
		t.Fatalf("expected podcast fallback result, got %+v", resp.Results)
	}
}

func TestSearchWithoutEngine(t *testing.T) {
	fallback := &fakeFallback{}
	service := NewService(nil, fallback, zerolog.Nop())

	resp := service.Search(context.Background(), "anything", 10)
	if resp.Results == nil {
		t.Fatal("results must never be nil")
	}
	if len(resp.Results) != 0 {
		t.Fatalf("expected empty results, got %+v", resp.Results)
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	fallback := &fakeFallback{
		doctors: []store.Doctor{{ID: "d1", Name: "A"}, {ID: "d2", Name: "B"}, {ID: "d3", Name: "C"}},
	}
	service := NewService(nil, fallback, zerolog.Nop())

	resp := service.Search(context.Background(), "x", 2)
	if len(resp.Results) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(resp.Results))
	}
}
