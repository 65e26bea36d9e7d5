package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clinic/api/internal/content"
	"clinic/api/internal/email"
	"clinic/api/internal/reviews"
	"clinic/api/internal/revision"
	"clinic/api/internal/search"
	"clinic/api/internal/storage"
	"clinic/api/internal/store"

	"github.com/rs/zerolog"
)

// Store is the persistence surface the service needs. *store.PostgresStore
// satisfies it; tests use an in-memory fake.
type Store interface {
	Ping(ctx context.Context) error

	GetPage(ctx context.Context, page string) (json.RawMessage, error)
	UpsertPage(ctx context.Context, page string, data json.RawMessage) error

	ListDoctors(ctx context.Context) ([]store.Doctor, error)
	GetDoctor(ctx context.Context, id string) (store.Doctor, error)
	InsertDoctor(ctx context.Context, d store.Doctor) (store.Doctor, error)
	UpdateDoctor(ctx context.Context, d store.Doctor) (store.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) error

	ListServices(ctx context.Context) ([]store.Service, error)
	GetService(ctx context.Context, id string) (store.Service, error)
	InsertService(ctx context.Context, item store.Service) (store.Service, error)
	UpdateService(ctx context.Context, item store.Service) (store.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListAchievements(ctx context.Context) ([]store.Achievement, error)
	GetAchievement(ctx context.Context, id string) (store.Achievement, error)
	InsertAchievement(ctx context.Context, item store.Achievement) (store.Achievement, error)
	UpdateAchievement(ctx context.Context, item store.Achievement) (store.Achievement, error)
	DeleteAchievement(ctx context.Context, id string) error

	ListReviews(ctx context.Context) ([]store.Review, error)
	GetReview(ctx context.Context, id string) (store.Review, error)
	InsertReview(ctx context.Context, item store.Review) (store.Review, error)
	UpdateReview(ctx context.Context, item store.Review) (store.Review, error)
	DeleteReview(ctx context.Context, id string) error

	ListPodcasts(ctx context.Context) ([]store.PodcastEpisode, error)
	GetPodcast(ctx context.Context, id string) (store.PodcastEpisode, error)
	InsertPodcast(ctx context.Context, item store.PodcastEpisode) (store.PodcastEpisode, error)
	DeletePodcast(ctx context.Context, id string) error

	ListSlides(ctx context.Context, activeOnly bool) ([]store.HomepageSlide, error)
	GetSlide(ctx context.Context, id string) (store.HomepageSlide, error)
	InsertSlide(ctx context.Context, item store.HomepageSlide) (store.HomepageSlide, error)
	UpdateSlide(ctx context.Context, item store.HomepageSlide) (store.HomepageSlide, error)
	DeleteSlide(ctx context.Context, id string) error

	ListAppointments(ctx context.Context, filter store.AppointmentFilter) ([]store.Appointment, error)
	GetAppointment(ctx context.Context, id string) (store.Appointment, error)
	InsertAppointment(ctx context.Context, item store.Appointment) (store.Appointment, error)
	UpdateAppointment(ctx context.Context, item store.Appointment) (store.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	BookedTimes(ctx context.Context, date string) ([]string, error)

	CountRows(ctx context.Context, table string) (int, error)
}

// Notifier sends appointment status emails. *email.Service satisfies it.
type Notifier interface {
	IsConfigured() bool
	Verify() error
	SendAppointmentStatus(to, status string, data email.AppointmentData) error
}

// ReviewsSource serves the cached Google reviews payload.
type ReviewsSource interface {
	Get(ctx context.Context) (reviews.Payload, error)
}

// Uploader stores an image and returns its public URL and object name.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (string, string, error)
}

// Recorder keeps the git history of page saves.
type Recorder interface {
	Record(page string, doc json.RawMessage, author string) (revision.Entry, error)
	History(page string, limit int) ([]revision.Entry, error)
}

// Searcher answers admin content queries.
type Searcher interface {
	Search(ctx context.Context, q string, limit int) search.Response
}

// Indexer pushes collection writes into the search index. Optional.
type Indexer interface {
	IndexDoctor(record search.Record) error
	IndexService(record search.Record) error
	IndexPodcast(record search.Record) error
	Delete(rtyp search.ResultType, id string) error
}

type ServiceConfig struct {
	Store    Store
	DataDir  string
	Notifier Notifier
	Reviews  ReviewsSource
	Uploader Uploader
	Recorder Recorder
	Searcher Searcher
	Indexer  Indexer
	Logger   zerolog.Logger
}

type Service struct {
	store    Store
	chain    content.Chain
	notifier Notifier
	reviews  ReviewsSource
	uploader Uploader
	recorder Recorder
	searcher Searcher
	indexer  Indexer
	log      zerolog.Logger
}

func NewService(cfg ServiceConfig) *Service {
	s := &Service{
		store:    cfg.Store,
		notifier: cfg.Notifier,
		reviews:  cfg.Reviews,
		uploader: cfg.Uploader,
		recorder: cfg.Recorder,
		searcher: cfg.Searcher,
		indexer:  cfg.Indexer,
		log:      cfg.Logger,
	}
	storeTier := content.ProviderFunc(func(ctx context.Context, page string) (json.RawMessage, error) {
		doc, err := cfg.Store.GetPage(ctx, page)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return doc, err
	})
	s.chain = content.Chain{storeTier, content.FileProvider{Dir: cfg.DataDir}, content.DefaultProvider{}}
	return s
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// ---- singleton pages ----

func knownPage(page string) bool {
	for _, name := range content.Pages {
		if name == page {
			return true
		}
	}
	return false
}

// PageDocument serves a page through the fallback chain, so the public site
// always gets content even with an empty or unreachable store.
func (s *Service) PageDocument(ctx context.Context, page string) (json.RawMessage, error) {
	if !knownPage(page) {
		return nil, notFoundError("Unknown page")
	}
	doc, err := s.chain.Load(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("load page %s: %w", page, err)
	}
	return doc, nil
}

// SavePage canonicalizes the body and upserts the singleton document. The
// revision log write is best-effort; a history failure never loses a save.
func (s *Service) SavePage(ctx context.Context, page string, body map[string]any) (json.RawMessage, error) {
	if !knownPage(page) {
		return nil, notFoundError("Unknown page")
	}
	doc, err := content.Sanitize(page, body)
	if err != nil {
		return nil, fmt.Errorf("sanitize page %s: %w", page, err)
	}
	if err := s.store.UpsertPage(ctx, page, doc); err != nil {
		return nil, err
	}
	if s.recorder != nil {
		if _, err := s.recorder.Record(page, doc, "admin"); err != nil {
			s.log.Warn().Err(err).Str("page", page).Msg("page revision record failed")
		}
	}
	return doc, nil
}

func (s *Service) PageHistory(ctx context.Context, page string) ([]revision.Entry, error) {
	if !knownPage(page) {
		return nil, notFoundError("Unknown page")
	}
	if s.recorder == nil {
		return []revision.Entry{}, nil
	}
	return s.recorder.History(page, 50)
}

// ---- doctors ----

func (s *Service) Doctors(ctx context.Context) ([]store.Doctor, error) {
	return s.store.ListDoctors(ctx)
}

func (s *Service) Doctor(ctx context.Context, id string) (store.Doctor, error) {
	if !store.ValidID(id) {
		return store.Doctor{}, validationError("Invalid doctor id", nil)
	}
	return s.store.GetDoctor(ctx, id)
}

func (s *Service) CreateDoctor(ctx context.Context, d store.Doctor) (store.Doctor, error) {
	if strings.TrimSpace(d.Name) == "" {
		return store.Doctor{}, validationError("name is required", nil)
	}
	created, err := s.store.InsertDoctor(ctx, d)
	if err != nil {
		return store.Doctor{}, err
	}
	s.indexAsync("doctor", created.ID, func() error {
		return s.indexer.IndexDoctor(search.Record{ID: created.ID, Title: created.Name, Snippet: created.Specialization})
	})
	return created, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id string, patch json.RawMessage) (store.Doctor, error) {
	existing, err := s.Doctor(ctx, id)
	if err != nil {
		return store.Doctor{}, err
	}
	if err := json.Unmarshal(patch, &existing); err != nil {
		return store.Doctor{}, validationError("invalid JSON body", nil)
	}
	existing.ID = id
	if strings.TrimSpace(existing.Name) == "" {
		return store.Doctor{}, validationError("name is required", nil)
	}
	updated, err := s.store.UpdateDoctor(ctx, existing)
	if err != nil {
		return store.Doctor{}, err
	}
	s.indexAsync("doctor", updated.ID, func() error {
		return s.indexer.IndexDoctor(search.Record{ID: updated.ID, Title: updated.Name, Snippet: updated.Specialization})
	})
	return updated, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id string) error {
	if !store.ValidID(id) {
		return validationError("Invalid doctor id", nil)
	}
	if err := s.store.DeleteDoctor(ctx, id); err != nil {
		return err
	}
	s.indexAsync("doctor", id, func() error { return s.indexer.Delete(search.ResultDoctor, id) })
	return nil
}

// ---- services ----

func (s *Service) Services(ctx context.Context) ([]store.Service, error) {
	return s.store.ListServices(ctx)
}

func (s *Service) Service(ctx context.Context, id string) (store.Service, error) {
	if !store.ValidID(id) {
		return store.Service{}, validationError("Invalid service id", nil)
	}
	return s.store.GetService(ctx, id)
}

func (s *Service) CreateService(ctx context.Context, item store.Service) (store.Service, error) {
	if strings.TrimSpace(item.Name) == "" {
		return store.Service{}, validationError("name is required", nil)
	}
	item.Details = content.CleanList(item.Details)
	item.DetailVideos = content.CleanList(item.DetailVideos)
	created, err := s.store.InsertService(ctx, item)
	if err != nil {
		return store.Service{}, err
	}
	s.indexAsync("service", created.ID, func() error {
		return s.indexer.IndexService(search.Record{ID: created.ID, Title: created.Name, Snippet: created.Summary})
	})
	return created, nil
}

func (s *Service) UpdateService(ctx context.Context, id string, patch json.RawMessage) (store.Service, error) {
	existing, err := s.Service(ctx, id)
	if err != nil {
		return store.Service{}, err
	}
	if err := json.Unmarshal(patch, &existing); err != nil {
		return store.Service{}, validationError("invalid JSON body", nil)
	}
	existing.ID = id
	if strings.TrimSpace(existing.Name) == "" {
		return store.Service{}, validationError("name is required", nil)
	}
	existing.Details = content.CleanList(existing.Details)
	existing.DetailVideos = content.CleanList(existing.DetailVideos)
	updated, err := s.store.UpdateService(ctx, existing)
	if err != nil {
		return store.Service{}, err
	}
	s.indexAsync("service", updated.ID, func() error {
		return s.indexer.IndexService(search.Record{ID: updated.ID, Title: updated.Name, Snippet: updated.Summary})
	})
	return updated, nil
}

func (s *Service) DeleteService(ctx context.Context, id string) error {
	if !store.ValidID(id) {
		return validationError("Invalid service id", nil)
	}
	if err := s.store.DeleteService(ctx, id); err != nil {
		return err
	}
	s.indexAsync("service", id, func() error { return s.indexer.Delete(search.ResultService, id) })
	return nil
}

// ---- achievements ----

func (s *Service) Achievements(ctx context.Context) ([]store.Achievement, error) {
	return s.store.ListAchievements(ctx)
}

func (s *Service) CreateAchievement(ctx context.Context, item store.Achievement) (store.Achievement, error) {
	if strings.TrimSpace(item.Title) == "" {
		return store.Achievement{}, validationError("title is required", nil)
	}
	return s.store.InsertAchievement(ctx, item)
}

func (s *Service) UpdateAchievement(ctx context.Context, id string, patch json.RawMessage) (store.Achievement, error) {
	if !store.ValidID(id) {
		return store.Achievement{}, validationError("Invalid achievement id", nil)
	}
	existing, err := s.store.GetAchievement(ctx, id)
	if err != nil {
		return store.Achievement{}, err
	}
	if err := json.Unmarshal(patch, &existing); err != nil {
		return store.Achievement{}, validationError("invalid JSON body", nil)
	}
	existing.ID = id
	if strings.TrimSpace(existing.Title) == "" {
		return store.Achievement{}, validationError("title is required", nil)
	}
	return s.store.UpdateAchievement(ctx, existing)
}

func (s *Service) DeleteAchievement(ctx context.Context, id string) error {
	if !store.ValidID(id) {
		return validationError("Invalid achievement id", nil)
	}
	return s.store.DeleteAchievement(ctx, id)
}

// ---- reviews (testimonials) ----

func (s *Service) Reviews(ctx context.Context) ([]store.Review, error) {
	return s.store.ListReviews(ctx)
}

func (s *Service) CreateReview(ctx context.Context, item store.Review) (store.Review, error) {
	if strings.TrimSpace(item.Author) == "" {
		return store.Review{}, validationError("author is required", nil)
	}
	if item.Rating == 0 {
		item.Rating = 5
	}
	if item.Rating < 1 || item.Rating > 5 {
		return store.Review{}, validationError("rating must be between 1 and 5", nil)
	}
	return s.store.InsertReview(ctx, item)
}

func (s *Service) UpdateReview(ctx context.Context, id string, patch json.RawMessage) (store.Review, error) {
	if !store.ValidID(id) {
		return store.Review{}, validationError("Invalid review id", nil)
	}
	existing, err := s.store.GetReview(ctx, id)
	if err != nil {
		return store.Review{}, err
	}
	if err := json.Unmarshal(patch, &existing); err != nil {
		return store.Review{}, validationError("invalid JSON body", nil)
	}
	existing.ID = id
	if existing.Rating < 1 || existing.Rating > 5 {
		return store.Review{}, validationError("rating must be between 1 and 5", nil)
	}
	return s.store.UpdateReview(ctx, existing)
}

func (s *Service) DeleteReview(ctx context.Context, id string) error {
	if !store.ValidID(id) {
		return validationError("Invalid review id", nil)
	}
	return s.store.DeleteReview(ctx, id)
}

// ---- podcast episodes (no update operation) ----

func (s *Service) Podcasts(ctx context.Context) ([]store.PodcastEpisode, error) {
	return s.store.ListPodcasts(ctx)
}

func (s *Service) CreatePodcast(ctx context.Context, item store.PodcastEpisode) (store.PodcastEpisode, error) {
	if strings.TrimSpace(item.Title) == "" {
		return store.PodcastEpisode{}, validationError("title is required", nil)
	}
	if strings.TrimSpace(item.VideoURL) == "" {
		return store.PodcastEpisode{}, validationError("videoUrl is required", nil)
	}
	created, err := s.store.InsertPodcast(ctx, item)
	if err != nil {
		return store.PodcastEpisode{}, err
	}
	s.indexAsync("podcast", created.ID, func() error {
		return s.indexer.IndexPodcast(search.Record{ID: created.ID, Title: created.Title, Snippet: created.Description})
	})
	return created, nil
}

func (s *Service) DeletePodcast(ctx context.Context, id string) error {
	if !store.ValidID(id) {
		return validationError("Invalid podcast id", nil)
	}
	if err := s.store.DeletePodcast(ctx, id); err != nil {
		return err
	}
	s.indexAsync("podcast", id, func() error { return s.indexer.Delete(search.ResultPodcast, id) })
	return nil
}

// ---- homepage slides ----

func (s *Service) Slides(ctx context.Context, activeOnly bool) ([]store.HomepageSlide, error) {
	return s.store.ListSlides(ctx, activeOnly)
}

func validateSlide(item store.HomepageSlide) error {
	if strings.TrimSpace(item.Title) == "" {
		return validationError("title is required", nil)
	}
	// An active slide without an image would render a blank carousel frame.
	if item.IsActive && strings.TrimSpace(item.ImageURL) == "" {
		return validationError("an active slide requires an imageUrl", nil)
	}
	return nil
}

func (s *Service) CreateSlide(ctx context.Context, item store.HomepageSlide) (store.HomepageSlide, error) {
	if err := validateSlide(item); err != nil {
		return store.HomepageSlide{}, err
	}
	return s.store.InsertSlide(ctx, item)
}

func (s *Service) UpdateSlide(ctx context.Context, id string, patch json.RawMessage) (store.HomepageSlide, error) {
	if !store.ValidID(id) {
		return store.HomepageSlide{}, validationError("Invalid slide id", nil)
	}
	existing, err := s.store.GetSlide(ctx, id)
	if err != nil {
		return store.HomepageSlide{}, err
	}
	if err := json.Unmarshal(patch, &existing); err != nil {
		return store.HomepageSlide{}, validationError("invalid JSON body", nil)
	}
	existing.ID = id
	if err := validateSlide(existing); err != nil {
		return store.HomepageSlide{}, err
	}
	return s.store.UpdateSlide(ctx, existing)
}

func (s *Service) DeleteSlide(ctx context.Context, id string) error {
	if !store.ValidID(id) {
		return validationError("Invalid slide id", nil)
	}
	return s.store.DeleteSlide(ctx, id)
}

// ---- appointments ----

// AllSlots is the bookable grid: 9 AM to 5 PM, hourly.
var AllSlots = []string{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

var validStatus = map[string]bool{
	store.StatusPending:   true,
	store.StatusConfirmed: true,
	store.StatusCancelled: true,
	store.StatusCompleted: true,
}

var allowedTransitions = map[string][]string{
	store.StatusPending:   {store.StatusConfirmed, store.StatusCancelled},
	store.StatusConfirmed: {store.StatusCompleted, store.StatusCancelled},
}

func transitionDefined(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *Service) Appointments(ctx context.Context, filter store.AppointmentFilter) ([]store.Appointment, error) {
	if filter.Status != "" && !validStatus[filter.Status] {
		return nil, validationError("unknown status filter", nil)
	}
	return s.store.ListAppointments(ctx, filter)
}

func (s *Service) Appointment(ctx context.Context, id string) (store.Appointment, error) {
	if !store.ValidID(id) {
		return store.Appointment{}, validationError("Invalid appointment id", nil)
	}
	return s.store.GetAppointment(ctx, id)
}

func (s *Service) CreateAppointment(ctx context.Context, item store.Appointment) (store.Appointment, error) {
	missing := []string{}
	for field, value := range map[string]string{
		"patientName":     item.PatientName,
		"patientEmail":    item.PatientEmail,
		"patientPhone":    item.PatientPhone,
		"appointmentDate": item.AppointmentDate,
		"appointmentTime": item.AppointmentTime,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return store.Appointment{}, validationError("missing required fields", missing)
	}
	if item.Status == "" {
		item.Status = store.StatusPending
	}
	if !validStatus[item.Status] {
		return store.Appointment{}, validationError("unknown appointment status", nil)
	}
	if item.DoctorID != "" {
		if !store.ValidID(item.DoctorID) {
			return store.Appointment{}, validationError("Invalid doctor id", nil)
		}
		if doctor, err := s.store.GetDoctor(ctx, item.DoctorID); err == nil && item.DoctorName == "" {
			item.DoctorName = doctor.Name
		}
	}
	return s.store.InsertAppointment(ctx, item)
}

// UpdateAppointment applies a partial update. When the status changes the
// patient is notified; a failed send is logged and the update stands.
func (s *Service) UpdateAppointment(ctx context.Context, id string, patch json.RawMessage) (store.Appointment, error) {
	old, err := s.Appointment(ctx, id)
	if err != nil {
		return store.Appointment{}, err
	}
	updated := old
	if err := json.Unmarshal(patch, &updated); err != nil {
		return store.Appointment{}, validationError("invalid JSON body", nil)
	}
	updated.ID = id
	if !validStatus[updated.Status] {
		return store.Appointment{}, validationError("unknown appointment status", nil)
	}
	if updated.Status != old.Status && !transitionDefined(old.Status, updated.Status) {
		s.log.Warn().
			Str("appointment", id).
			Str("from", old.Status).
			Str("to", updated.Status).
			Msg("appointment status transition outside the defined machine")
	}

	saved, err := s.store.UpdateAppointment(ctx, updated)
	if err != nil {
		return store.Appointment{}, err
	}

	if saved.Status != old.Status {
		s.notifyStatusChange(ctx, saved)
	}
	return saved, nil
}

func (s *Service) notifyStatusChange(ctx context.Context, appt store.Appointment) {
	if s.notifier == nil || !s.notifier.IsConfigured() {
		return
	}
	data := email.AppointmentData{
		PatientName: appt.PatientName,
		DoctorName:  appt.DoctorName,
		Date:        appt.AppointmentDate,
		Time:        appt.AppointmentTime,
		Notes:       appt.Notes,
	}
	if data.DoctorName == "" && appt.DoctorID != "" {
		if doctor, err := s.store.GetDoctor(ctx, appt.DoctorID); err == nil {
			data.DoctorName = doctor.Name
		}
	}
	if err := s.notifier.SendAppointmentStatus(appt.PatientEmail, appt.Status, data); err != nil {
		s.log.Error().Err(err).
			Str("appointment", appt.ID).
			Str("status", appt.Status).
			Msg("appointment notification failed; update stands")
	}
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	if !store.ValidID(id) {
		return validationError("Invalid appointment id", nil)
	}
	return s.store.DeleteAppointment(ctx, id)
}

// AvailableSlots returns the bookable times remaining on a date.
func (s *Service) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, validationError("date must be YYYY-MM-DD", nil)
	}
	booked, err := s.store.BookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}
	available := make([]string, 0, len(AllSlots))
	for _, slot := range AllSlots {
		if !taken[slot] {
			available = append(available, slot)
		}
	}
	return available, nil
}

// ---- collaborators ----

func (s *Service) GoogleReviews(ctx context.Context) (reviews.Payload, error) {
	if s.reviews == nil {
		return reviews.Payload{Snippets: []reviews.Snippet{}},
			upstreamError("Google reviews not configured", nil)
	}
	payload, err := s.reviews.Get(ctx)
	if err != nil {
		return payload, upstreamError("Failed to fetch Google reviews", err.Error())
	}
	return payload, nil
}

func (s *Service) UploadImage(ctx context.Context, filename, contentType string, size int64, body io.Reader) (string, string, error) {
	if s.uploader == nil {
		return "", "", domainError(http.StatusServiceUnavailable, "UPLOADS_UNAVAILABLE", "Image storage not configured", nil)
	}
	url, object, err := s.uploader.Upload(ctx, filename, contentType, size, body)
	if err != nil {
		// A rejected image is the client's fault; anything else means the
		// object store let us down.
		if errors.Is(err, storage.ErrInvalidImage) {
			return "", "", validationError(err.Error(), nil)
		}
		return "", "", upstreamError("Image upload failed", err.Error())
	}
	return url, object, nil
}

func (s *Service) SearchContent(ctx context.Context, q string, limit int) search.Response {
	if s.searcher == nil {
		return search.Response{Results: []search.Result{}, Query: q}
	}
	return s.searcher.Search(ctx, q, limit)
}

// VerifyEmail checks the SMTP connection.
func (s *Service) VerifyEmail() error {
	if s.notifier == nil || !s.notifier.IsConfigured() {
		return domainError(http.StatusServiceUnavailable, "EMAIL_UNAVAILABLE", "Email not configured", nil)
	}
	if err := s.notifier.Verify(); err != nil {
		return upstreamError("SMTP verification failed", err.Error())
	}
	return nil
}

func (s *Service) indexAsync(kind, id string, index func() error) {
	if s.indexer == nil {
		return
	}
	go func() {
		if err := index(); err != nil {
			s.log.Warn().Err(err).Str("kind", kind).Str("id", id).Msg("search index update failed")
		}
	}()
}
