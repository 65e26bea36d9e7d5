// Package reviews fetches the clinic's Google Place reviews and caches them
// so the public site does not burn Places API quota on every page load.
package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Payload is the response served to the public site.
type Payload struct {
	Success       bool      `json:"success"`
	Error         string    `json:"error,omitempty"`
	PlaceURL      string    `json:"placeUrl,omitempty"`
	PlaceName     string    `json:"placeName,omitempty"`
	OverallRating float64   `json:"overallRating,omitempty"`
	TotalReviews  int       `json:"totalReviews,omitempty"`
	Snippets      []Snippet `json:"snippets"`
}

type Snippet struct {
	Author          string `json:"author"`
	Rating          int    `json:"rating"`
	Text            string `json:"text"`
	Time            int64  `json:"time"`
	ProfilePhotoURL string `json:"profilePhotoUrl"`
}

const cacheTTL = time.Hour

var ErrUpstream = errors.New("google places request failed")

type Service struct {
	apiKey  string
	placeID string
	baseURL string
	client  *http.Client
	cache   *redis.Client
	log     zerolog.Logger
}

// New builds the reviews service. cache may be nil, in which case every call
// goes straight to the Places API.
func New(apiKey, placeID string, cache *redis.Client, log zerolog.Logger) *Service {
	return &Service{
		apiKey:  apiKey,
		placeID: placeID,
		baseURL: "https://maps.googleapis.com/maps/api/place/details/json",
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		log:     log,
	}
}

func (s *Service) cacheKey() string {
	return "google-reviews:" + s.placeID
}

// Get returns the reviews payload, serving from cache when it is fresh.
// Only successful upstream responses are cached.
func (s *Service) Get(ctx context.Context) (Payload, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, s.cacheKey()).Result()
		if err == nil {
			var cached Payload
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Msg("reviews cache read failed")
		}
	}

	payload, err := s.fetch(ctx)
	if err != nil {
		return Payload{Success: false, Error: err.Error(), Snippets: []Snippet{}}, err
	}

	if s.cache != nil {
		raw, _ := json.Marshal(payload)
		if err := s.cache.Set(ctx, s.cacheKey(), raw, cacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("reviews cache write failed")
		}
	}
	return payload, nil
}

type placeDetailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		Name             string  `json:"name"`
		URL              string  `json:"url"`
		Rating           float64 `json:"rating"`
		UserRatingsTotal int     `json:"user_ratings_total"`
		Reviews          []struct {
			AuthorName      string `json:"author_name"`
			Rating          int    `json:"rating"`
			Text            string `json:"text"`
			Time            int64  `json:"time"`
			ProfilePhotoURL string `json:"profile_photo_url"`
		} `json:"reviews"`
	} `json:"result"`
}

func (s *Service) fetch(ctx context.Context) (Payload, error) {
	if s.apiKey == "" {
		return Payload{}, fmt.Errorf("%w: API key not configured", ErrUpstream)
	}

	query := url.Values{}
	query.Set("place_id", s.placeID)
	query.Set("fields", "name,rating,reviews,user_ratings_total,url")
	query.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return Payload{}, fmt.Errorf("build places request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	var details placeDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return Payload{}, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	if details.Status != "OK" {
		message := details.ErrorMessage
		if message == "" {
			message = details.Status
		}
		return Payload{}, fmt.Errorf("%w: %s", ErrUpstream, message)
	}

	snippets := make([]Snippet, 0, len(details.Result.Reviews))
	for _, review := range details.Result.Reviews {
		snippets = append(snippets, Snippet{
			Author:          review.AuthorName,
			Rating:          review.Rating,
			Text:            review.Text,
			Time:            review.Time,
			ProfilePhotoURL: review.ProfilePhotoURL,
		})
	}

	return Payload{
		Success:       true,
		PlaceURL:      details.Result.URL,
		PlaceName:     details.Result.Name,
		OverallRating: details.Result.Rating,
		TotalReviews:  details.Result.UserRatingsTotal,
		Snippets:      snippets,
	}, nil
}
