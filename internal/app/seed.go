package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"clinic/api/internal/content"
	"clinic/api/internal/store"
)

// Seed fills empty collections and missing page documents so a fresh install
// renders a complete site. Every step is best-effort: a failure logs and the
// rest of the seed continues.
func (s *Service) Seed(ctx context.Context, dataDir string) {
	s.seedPages(ctx, dataDir)
	s.seedDoctors(ctx)
	s.seedServices(ctx)
	s.seedAchievements(ctx)
	s.seedReviews(ctx)
	s.seedPodcasts(ctx, dataDir)
}

func (s *Service) seedPages(ctx context.Context, dataDir string) {
	chain := content.Chain{content.FileProvider{Dir: dataDir}, content.DefaultProvider{}}
	for _, page := range content.Pages {
		_, err := s.store.GetPage(ctx, page)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn().Err(err).Str("page", page).Msg("seed: page lookup failed")
			continue
		}
		doc, err := chain.Load(ctx, page)
		if err != nil {
			s.log.Warn().Err(err).Str("page", page).Msg("seed: no content for page")
			continue
		}
		if err := s.store.UpsertPage(ctx, page, doc); err != nil {
			s.log.Warn().Err(err).Str("page", page).Msg("seed: page write failed")
			continue
		}
		s.log.Info().Str("page", page).Msg("seeded page document")
	}
}

func (s *Service) emptyCollection(ctx context.Context, table string) bool {
	count, err := s.store.CountRows(ctx, table)
	if err != nil {
		s.log.Warn().Err(err).Str("table", table).Msg("seed: count failed")
		return false
	}
	return count == 0
}

func (s *Service) seedDoctors(ctx context.Context) {
	if !s.emptyCollection(ctx, "doctors") {
		return
	}
	seeds := []store.Doctor{
		{
			Name:           "Dr. Ayesha Rahman",
			Title:          "Consultant Nephrologist",
			Specialization: "Nephrology & Kidney Transplant",
			Bio:            "Over twenty years of experience in chronic kidney disease management and transplant medicine.",
			Employment:     "Full-time",
		},
		{
			Name:           "Dr. Omar Haddad",
			Title:          "Transplant Surgeon",
			Specialization: "Renal Transplant Surgery",
			Bio:            "Specialist in living-donor kidney transplantation and minimally invasive urological surgery.",
			Employment:     "Full-time",
		},
	}
	for _, doctor := range seeds {
		if _, err := s.CreateDoctor(ctx, doctor); err != nil {
			s.log.Warn().Err(err).Str("doctor", doctor.Name).Msg("seed: doctor insert failed")
		}
	}
}

func (s *Service) seedServices(ctx context.Context) {
	if !s.emptyCollection(ctx, "services") {
		return
	}
	seeds := []store.Service{
		{
			Name:    "Dialysis",
			Summary: "In-centre haemodialysis and home peritoneal dialysis programmes.",
			Details: []string{"In-centre and home options", "Dedicated dialysis wing", "Dietitian support"},
		},
		{
			Name:    "Kidney Transplant",
			Summary: "Living-donor and deceased-donor kidney transplantation with lifelong follow-up.",
			Details: []string{"Donor evaluation", "Transplant surgery", "Post-transplant clinic"},
		},
		{
			Name:    "Stone Management",
			Summary: "Minimally invasive diagnosis and removal of kidney stones.",
			Details: []string{"Laser lithotripsy", "Same-day discharge"},
		},
	}
	for _, item := range seeds {
		if _, err := s.CreateService(ctx, item); err != nil {
			s.log.Warn().Err(err).Str("service", item.Name).Msg("seed: service insert failed")
		}
	}
}

func (s *Service) seedAchievements(ctx context.Context) {
	if !s.emptyCollection(ctx, "achievements") {
		return
	}
	seeds := []store.Achievement{
		{Title: "500+ Transplants", Text: "More than five hundred successful kidney transplants performed."},
		{Title: "JCI Accredited", Text: "Internationally accredited for patient safety and quality of care."},
	}
	for _, item := range seeds {
		if _, err := s.CreateAchievement(ctx, item); err != nil {
			s.log.Warn().Err(err).Str("achievement", item.Title).Msg("seed: achievement insert failed")
		}
	}
}

func (s *Service) seedReviews(ctx context.Context) {
	if !s.emptyCollection(ctx, "reviews") {
		return
	}
	seeds := []store.Review{
		{Author: "A grateful patient", Rating: 5, Text: "The transplant team walked us through every step. Outstanding care."},
		{Author: "R. Suleiman", Rating: 5, Text: "Dialysis sessions are comfortable and the staff genuinely care."},
	}
	for _, item := range seeds {
		if _, err := s.CreateReview(ctx, item); err != nil {
			s.log.Warn().Err(err).Str("author", item.Author).Msg("seed: review insert failed")
		}
	}
}

func (s *Service) seedPodcasts(ctx context.Context, dataDir string) {
	if !s.emptyCollection(ctx, "podcast_episodes") {
		return
	}
	raw, err := os.ReadFile(filepath.Join(dataDir, "podcasts.json"))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Msg("seed: read podcasts snapshot failed")
		}
		return
	}
	var episodes []store.PodcastEpisode
	if err := json.Unmarshal(raw, &episodes); err != nil {
		s.log.Warn().Err(err).Msg("seed: decode podcasts snapshot failed")
		return
	}
	for _, episode := range episodes {
		if _, err := s.CreatePodcast(ctx, episode); err != nil {
			s.log.Warn().Err(err).Str("title", episode.Title).Msg("seed: podcast insert failed")
		}
	}
}
