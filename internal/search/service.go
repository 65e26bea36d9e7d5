package search

import (
	"context"

	"clinic/api/internal/store"

	"github.com/rs/zerolog"
)

// Engine is the primary search backend. *Meili satisfies it.
type Engine interface {
	Healthy() bool
	Search(q string, limit int) ([]Result, int, error)
}

// Fallback answers queries straight from Postgres when the engine is down.
type Fallback interface {
	SearchDoctors(ctx context.Context, q string) ([]store.Doctor, error)
	SearchServices(ctx context.Context, q string) ([]store.Service, error)
	SearchPodcasts(ctx context.Context, q string) ([]store.PodcastEpisode, error)
}

// Service is the facade that tries Meilisearch first and falls back to the
// store's ILIKE queries.
type Service struct {
	engine   Engine
	fallback Fallback
	log      zerolog.Logger
}

// NewService creates a search service. engine may be nil when Meilisearch is
// not configured.
func NewService(engine Engine, fallback Fallback, log zerolog.Logger) *Service {
	return &Service{engine: engine, fallback: fallback, log: log}
}

// Search answers an admin query. Errors never escape; a total backend outage
// degrades to an empty result set.
func (s *Service) Search(ctx context.Context, q string, limit int) Response {
	if s.engine != nil && s.engine.Healthy() {
		results, total, err := s.engine.Search(q, limit)
		if err == nil {
			return Response{Results: nonNil(results), Total: total, Query: q}
		}
		s.log.Warn().Err(err).Msg("search engine error, falling back to store")
	}

	results := make([]Result, 0)

	doctors, err := s.fallback.SearchDoctors(ctx, q)
	if err != nil {
		s.log.Error().Err(err).Msg("doctor fallback search failed")
	}
	for _, d := range doctors {
		results = append(results, Result{Type: ResultDoctor, ID: d.ID, Title: d.Name, Snippet: d.Specialization})
	}

	services, err := s.fallback.SearchServices(ctx, q)
	if err != nil {
		s.log.Error().Err(err).Msg("service fallback search failed")
	}
	for _, item := range services {
		results = append(results, Result{Type: ResultService, ID: item.ID, Title: item.Name, Snippet: item.Summary})
	}

	podcasts, err := s.fallback.SearchPodcasts(ctx, q)
	if err != nil {
		s.log.Error().Err(err).Msg("podcast fallback search failed")
	}
	for _, episode := range podcasts {
		results = append(results, Result{Type: ResultPodcast, ID: episode.ID, Title: episode.Title, Snippet: episode.Description})
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return Response{Results: results, Total: len(results), Query: q}
}

func nonNil(r []Result) []Result {
	if r == nil {
		return []Result{}
	}
	return r
}
