package search

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"
	"github.com/rs/zerolog"
)

const (
	idxDoctors  = "clinic_doctors"
	idxServices = "clinic_services"
	idxPodcasts = "clinic_podcasts"
)

// Meili wraps the Meilisearch client with a background health monitor so the
// facade can fail over without waiting on a dead connection.
type Meili struct {
	client  meili.ServiceManager
	healthy atomic.Bool
	done    chan struct{}
	log     zerolog.Logger
}

// NewMeili creates a Meilisearch client and configures indexes. An initial
// connection failure is tolerated; the health loop retries.
func NewMeili(url, apiKey string, log zerolog.Logger) *Meili {
	client := meili.New(url, meili.WithAPIKey(apiKey))

	m := &Meili{
		client: client,
		done:   make(chan struct{}),
		log:    log,
	}

	if _, err := client.Health(); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("meilisearch unavailable")
		m.healthy.Store(false)
	} else {
		m.healthy.Store(true)
		m.configureIndexes()
	}

	go m.healthLoop()
	return m
}

func (m *Meili) configureIndexes() {
	for _, uid := range []string{idxDoctors, idxServices, idxPodcasts} {
		if _, err := m.client.CreateIndex(&meili.IndexConfig{Uid: uid, PrimaryKey: "id"}); err != nil {
			m.log.Debug().Err(err).Str("index", uid).Msg("create index (may already exist)")
		}
		index := m.client.Index(uid)
		if _, err := index.UpdateSearchableAttributes(&[]string{"title", "snippet"}); err != nil {
			m.log.Warn().Err(err).Str("index", uid).Msg("update searchable attrs")
		}
	}
}

func (m *Meili) healthLoop() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			_, err := m.client.Health()
			wasHealthy := m.healthy.Load()
			m.healthy.Store(err == nil)
			if err == nil && !wasHealthy {
				m.log.Info().Msg("meilisearch recovered, reconfiguring indexes")
				m.configureIndexes()
			}
		}
	}
}

// Close stops the background health monitor.
func (m *Meili) Close() {
	close(m.done)
}

// Healthy reports whether Meilisearch is reachable.
func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

// Search queries all three indexes and merges results.
func (m *Meili) Search(q string, limit int) ([]Result, int, error) {
	if !m.healthy.Load() {
		return nil, 0, fmt.Errorf("meilisearch unhealthy")
	}
	if limit == 0 {
		limit = 20
	}

	targets := []struct {
		uid  string
		rtyp ResultType
	}{
		{idxDoctors, ResultDoctor},
		{idxServices, ResultService},
		{idxPodcasts, ResultPodcast},
	}

	queries := make([]*meili.SearchRequest, 0, len(targets))
	for _, target := range targets {
		queries = append(queries, &meili.SearchRequest{
			IndexUID: target.uid,
			Query:    q,
			Limit:    int64(limit),
		})
	}

	resp, err := m.client.MultiSearch(&meili.MultiSearchRequest{Queries: queries})
	if err != nil {
		m.healthy.Store(false)
		return nil, 0, fmt.Errorf("meilisearch multi-search: %w", err)
	}

	var results []Result
	total := 0
	for _, sr := range resp.Results {
		total += int(sr.EstimatedTotalHits)
		rtyp := indexToResultType(sr.IndexUID)
		for _, hit := range sr.Hits {
			results = append(results, Result{
				Type:    rtyp,
				ID:      decodeString(hit, "id"),
				Title:   decodeString(hit, "title"),
				Snippet: decodeString(hit, "snippet"),
			})
		}
	}
	return results, total, nil
}

func indexToResultType(uid string) ResultType {
	switch uid {
	case idxDoctors:
		return ResultDoctor
	case idxServices:
		return ResultService
	case idxPodcasts:
		return ResultPodcast
	default:
		return ""
	}
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return ""
}

// IndexDoctor adds or updates a doctor in the search index.
func (m *Meili) IndexDoctor(record Record) error {
	_, err := m.client.Index(idxDoctors).AddDocuments([]Record{record}, nil)
	return err
}

// IndexService adds or updates a service in the search index.
func (m *Meili) IndexService(record Record) error {
	_, err := m.client.Index(idxServices).AddDocuments([]Record{record}, nil)
	return err
}

// IndexPodcast adds or updates a podcast episode in the search index.
func (m *Meili) IndexPodcast(record Record) error {
	_, err := m.client.Index(idxPodcasts).AddDocuments([]Record{record}, nil)
	return err
}

// Delete removes a record from the named collection's index.
func (m *Meili) Delete(rtyp ResultType, id string) error {
	var uid string
	switch rtyp {
	case ResultDoctor:
		uid = idxDoctors
	case ResultService:
		uid = idxServices
	case ResultPodcast:
		uid = idxPodcasts
	default:
		return fmt.Errorf("unknown result type %q", rtyp)
	}
	_, err := m.client.Index(uid).DeleteDocument(id, nil)
	return err
}
