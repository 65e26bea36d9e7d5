package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"clinic/api/internal/email"
	"clinic/api/internal/store"
)

// fakeStore is an in-memory Store for service and handler tests.
type fakeStore struct {
	mu sync.Mutex

	pages        map[string]json.RawMessage
	doctors      map[string]store.Doctor
	services     map[string]store.Service
	achievements map[string]store.Achievement
	reviews      map[string]store.Review
	podcasts     map[string]store.PodcastEpisode
	slides       map[string]store.HomepageSlide
	appointments map[string]store.Appointment

	nextID  int
	pingErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		pages:        map[string]json.RawMessage{},
		doctors:      map[string]store.Doctor{},
		services:     map[string]store.Service{},
		achievements: map[string]store.Achievement{},
		reviews:      map[string]store.Review{},
		podcasts:     map[string]store.PodcastEpisode{},
		slides:       map[string]store.HomepageSlide{},
		appointments: map[string]store.Appointment{},
	}
}

func (f *fakeStore) newID() string {
	f.nextID++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", f.nextID)
}

func (f *fakeStore) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeStore) GetPage(ctx context.Context, page string) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.pages[page]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return doc, nil
}

func (f *fakeStore) UpsertPage(ctx context.Context, page string, data json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[page] = data
	return nil
}

func (f *fakeStore) ListDoctors(ctx context.Context) ([]store.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeStore) GetDoctor(ctx context.Context, id string) (store.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.doctors[id]
	if !ok {
		return store.Doctor{}, sql.ErrNoRows
	}
	return d, nil
}

func (f *fakeStore) InsertDoctor(ctx context.Context, d store.Doctor) (store.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d.ID = f.newID()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	f.doctors[d.ID] = d
	return d, nil
}

func (f *fakeStore) UpdateDoctor(ctx context.Context, d store.Doctor) (store.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.doctors[d.ID]; !ok {
		return store.Doctor{}, sql.ErrNoRows
	}
	d.UpdatedAt = time.Now()
	f.doctors[d.ID] = d
	return d, nil
}

func (f *fakeStore) DeleteDoctor(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.doctors[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.doctors, id)
	return nil
}

func (f *fakeStore) ListServices(ctx context.Context) ([]store.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Service, 0, len(f.services))
	for _, item := range f.services {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeStore) GetService(ctx context.Context, id string) (store.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.services[id]
	if !ok {
		return store.Service{}, sql.ErrNoRows
	}
	return item, nil
}

func (f *fakeStore) InsertService(ctx context.Context, item store.Service) (store.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = f.newID()
	f.services[item.ID] = item
	return item, nil
}

func (f *fakeStore) UpdateService(ctx context.Context, item store.Service) (store.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.services[item.ID]; !ok {
		return store.Service{}, sql.ErrNoRows
	}
	f.services[item.ID] = item
	return item, nil
}

func (f *fakeStore) DeleteService(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.services[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.services, id)
	return nil
}

func (f *fakeStore) ListAchievements(ctx context.Context) ([]store.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Achievement, 0, len(f.achievements))
	for _, item := range f.achievements {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeStore) GetAchievement(ctx context.Context, id string) (store.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.achievements[id]
	if !ok {
		return store.Achievement{}, sql.ErrNoRows
	}
	return item, nil
}

func (f *fakeStore) InsertAchievement(ctx context.Context, item store.Achievement) (store.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = f.newID()
	f.achievements[item.ID] = item
	return item, nil
}

func (f *fakeStore) UpdateAchievement(ctx context.Context, item store.Achievement) (store.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.achievements[item.ID]; !ok {
		return store.Achievement{}, sql.ErrNoRows
	}
	f.achievements[item.ID] = item
	return item, nil
}

func (f *fakeStore) DeleteAchievement(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.achievements[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.achievements, id)
	return nil
}

func (f *fakeStore) ListReviews(ctx context.Context) ([]store.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Review, 0, len(f.reviews))
	for _, item := range f.reviews {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeStore) GetReview(ctx context.Context, id string) (store.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.reviews[id]
	if !ok {
		return store.Review{}, sql.ErrNoRows
	}
	return item, nil
}

func (f *fakeStore) InsertReview(ctx context.Context, item store.Review) (store.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = f.newID()
	f.reviews[item.ID] = item
	return item, nil
}

func (f *fakeStore) UpdateReview(ctx context.Context, item store.Review) (store.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reviews[item.ID]; !ok {
		return store.Review{}, sql.ErrNoRows
	}
	f.reviews[item.ID] = item
	return item, nil
}

func (f *fakeStore) DeleteReview(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reviews[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeStore) ListPodcasts(ctx context.Context) ([]store.PodcastEpisode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.PodcastEpisode, 0, len(f.podcasts))
	for _, item := range f.podcasts {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeStore) GetPodcast(ctx context.Context, id string) (store.PodcastEpisode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.podcasts[id]
	if !ok {
		return store.PodcastEpisode{}, sql.ErrNoRows
	}
	return item, nil
}

func (f *fakeStore) InsertPodcast(ctx context.Context, item store.PodcastEpisode) (store.PodcastEpisode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = f.newID()
	f.podcasts[item.ID] = item
	return item, nil
}

func (f *fakeStore) DeletePodcast(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.podcasts[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.podcasts, id)
	return nil
}

func (f *fakeStore) ListSlides(ctx context.Context, activeOnly bool) ([]store.HomepageSlide, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.HomepageSlide, 0, len(f.slides))
	for _, item := range f.slides {
		if activeOnly && !item.IsActive {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeStore) GetSlide(ctx context.Context, id string) (store.HomepageSlide, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.slides[id]
	if !ok {
		return store.HomepageSlide{}, sql.ErrNoRows
	}
	return item, nil
}

func (f *fakeStore) InsertSlide(ctx context.Context, item store.HomepageSlide) (store.HomepageSlide, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = f.newID()
	f.slides[item.ID] = item
	return item, nil
}

func (f *fakeStore) UpdateSlide(ctx context.Context, item store.HomepageSlide) (store.HomepageSlide, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.slides[item.ID]; !ok {
		return store.HomepageSlide{}, sql.ErrNoRows
	}
	f.slides[item.ID] = item
	return item, nil
}

func (f *fakeStore) DeleteSlide(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.slides[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.slides, id)
	return nil
}

func (f *fakeStore) ListAppointments(ctx context.Context, filter store.AppointmentFilter) ([]store.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Appointment, 0, len(f.appointments))
	for _, item := range f.appointments {
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.Date != "" && item.AppointmentDate != filter.Date {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeStore) GetAppointment(ctx context.Context, id string) (store.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.appointments[id]
	if !ok {
		return store.Appointment{}, sql.ErrNoRows
	}
	return item, nil
}

func (f *fakeStore) InsertAppointment(ctx context.Context, item store.Appointment) (store.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = f.newID()
	f.appointments[item.ID] = item
	return item, nil
}

func (f *fakeStore) UpdateAppointment(ctx context.Context, item store.Appointment) (store.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.appointments[item.ID]; !ok {
		return store.Appointment{}, sql.ErrNoRows
	}
	f.appointments[item.ID] = item
	return item, nil
}

func (f *fakeStore) DeleteAppointment(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.appointments[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeStore) BookedTimes(ctx context.Context, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []string{}
	for _, item := range f.appointments {
		if item.AppointmentDate != date {
			continue
		}
		if item.Status != store.StatusPending && item.Status != store.StatusConfirmed {
			continue
		}
		out = append(out, item.AppointmentTime)
	}
	return out, nil
}

func (f *fakeStore) CountRows(ctx context.Context, table string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch table {
	case "doctors":
		return len(f.doctors), nil
	case "services":
		return len(f.services), nil
	case "achievements":
		return len(f.achievements), nil
	case "reviews":
		return len(f.reviews), nil
	case "podcast_episodes":
		return len(f.podcasts), nil
	case "homepage_slides":
		return len(f.slides), nil
	case "appointments":
		return len(f.appointments), nil
	}
	return 0, fmt.Errorf("unknown table %q", table)
}

// fakeUploader returns a canned result or a canned error.
type fakeUploader struct {
	url    string
	object string
	err    error
}

func (f *fakeUploader) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return f.url, f.object, nil
}

// fakeNotifier records sends and can be told to fail.
type fakeNotifier struct {
	mu    sync.Mutex
	sends []string
	fail  error
}

func (f *fakeNotifier) IsConfigured() bool { return true }
func (f *fakeNotifier) Verify() error      { return nil }

func (f *fakeNotifier) SendAppointmentStatus(to, status string, data email.AppointmentData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.sends = append(f.sends, status)
	return nil
}

func (f *fakeNotifier) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sends...)
}
