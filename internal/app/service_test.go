package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"clinic/api/internal/storage"
	"clinic/api/internal/store"

	"github.com/rs/zerolog"
)

func newTestService(t *testing.T, fs *fakeStore, notifier Notifier) *Service {
	t.Helper()
	return NewService(ServiceConfig{
		Store:    fs,
		DataDir:  t.TempDir(),
		Notifier: notifier,
		Logger:   zerolog.Nop(),
	})
}

func TestPageDocumentFallsBackToDefaults(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)

	doc, err := s.PageDocument(context.Background(), "kidney")
	if err != nil {
		t.Fatalf("PageDocument: %v", err)
	}
	var page map[string]any
	if err := json.Unmarshal(doc, &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page) == 0 {
		t.Fatal("expected a non-empty default document for an empty store")
	}
}

func TestPageDocumentUnknownPage(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	if _, err := s.PageDocument(context.Background(), "pricing"); err == nil {
		t.Fatal("expected error for unknown page")
	}
}

func TestSavePageTwiceKeepsSingleDocument(t *testing.T) {
	fs := newFakeStore()
	s := newTestService(t, fs, nil)

	for i := 0; i < 2; i++ {
		if _, err := s.SavePage(context.Background(), "home", map[string]any{
			"hero": map[string]any{"title": "Welcome"},
		}); err != nil {
			t.Fatalf("SavePage #%d: %v", i+1, err)
		}
	}
	if len(fs.pages) != 1 {
		t.Fatalf("expected 1 stored page document, got %d", len(fs.pages))
	}
}

func TestCreateDoctorRequiresName(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	_, err := s.CreateDoctor(context.Background(), store.Doctor{Title: "Consultant"})
	var derr *DomainError
	if !errors.As(err, &derr) || derr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestDoctorRejectsMalformedID(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	_, err := s.Doctor(context.Background(), "not-a-uuid")
	var derr *DomainError
	if !errors.As(err, &derr) || derr.Status != 400 {
		t.Fatalf("expected 400 for malformed id, got %v", err)
	}
}

func TestUpdateDoctorAppliesPartialPatch(t *testing.T) {
	fs := newFakeStore()
	s := newTestService(t, fs, nil)

	created, err := s.CreateDoctor(context.Background(), store.Doctor{
		Name:           "Dr. Ayesha Rahman",
		Specialization: "Nephrology",
	})
	if err != nil {
		t.Fatalf("CreateDoctor: %v", err)
	}

	updated, err := s.UpdateDoctor(context.Background(), created.ID, json.RawMessage(`{"title":"Head of Department"}`))
	if err != nil {
		t.Fatalf("UpdateDoctor: %v", err)
	}
	if updated.Title != "Head of Department" {
		t.Fatalf("title = %q", updated.Title)
	}
	if updated.Name != "Dr. Ayesha Rahman" || updated.Specialization != "Nephrology" {
		t.Fatal("fields absent from the patch must survive")
	}
}

func TestCreateServiceCleansDetailLists(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	created, err := s.CreateService(context.Background(), store.Service{
		Name:    "Dialysis",
		Details: []string{"  In-centre  ", "", "Home programme"},
	})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	want := []string{"In-centre", "Home programme"}
	if len(created.Details) != len(want) {
		t.Fatalf("details = %v", created.Details)
	}
	for i := range want {
		if created.Details[i] != want[i] {
			t.Fatalf("details[%d] = %q, want %q", i, created.Details[i], want[i])
		}
	}
}

func TestCreateReviewDefaultsRating(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	created, err := s.CreateReview(context.Background(), store.Review{Author: "A patient"})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if created.Rating != 5 {
		t.Fatalf("rating = %d, want 5", created.Rating)
	}

	if _, err := s.CreateReview(context.Background(), store.Review{Author: "X", Rating: 9}); err == nil {
		t.Fatal("expected rating range error")
	}
}

func TestCreatePodcastRequiresVideoURL(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	if _, err := s.CreatePodcast(context.Background(), store.PodcastEpisode{Title: "Kidney health"}); err == nil {
		t.Fatal("expected videoUrl validation error")
	}
}

func TestActiveSlideRequiresImage(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	_, err := s.CreateSlide(context.Background(), store.HomepageSlide{Title: "Opening", IsActive: true})
	var derr *DomainError
	if !errors.As(err, &derr) || derr.Status != 400 {
		t.Fatalf("expected 400, got %v", err)
	}

	if _, err := s.CreateSlide(context.Background(), store.HomepageSlide{Title: "Draft", IsActive: false}); err != nil {
		t.Fatalf("inactive slide without image should save: %v", err)
	}
}

func TestCreateAppointmentCollectsMissingFields(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	_, err := s.CreateAppointment(context.Background(), store.Appointment{PatientName: "Sara"})
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("expected domain error, got %v", err)
	}
	missing, ok := derr.Details.([]string)
	if !ok || len(missing) != 4 {
		t.Fatalf("details = %#v, want 4 missing field names", derr.Details)
	}
}

func validAppointment() store.Appointment {
	return store.Appointment{
		PatientName:     "Sara Malik",
		PatientEmail:    "sara@example.com",
		PatientPhone:    "+96170000000",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "10:00",
	}
}

func TestCreateAppointmentDefaultsToPending(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	created, err := s.CreateAppointment(context.Background(), validAppointment())
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if created.Status != store.StatusPending {
		t.Fatalf("status = %q", created.Status)
	}
}

func TestUpdateAppointmentNotifiesOnStatusChange(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newTestService(t, newFakeStore(), notifier)

	created, err := s.CreateAppointment(context.Background(), validAppointment())
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	if _, err := s.UpdateAppointment(context.Background(), created.ID, json.RawMessage(`{"status":"confirmed"}`)); err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}
	if got := notifier.sent(); len(got) != 1 || got[0] != "confirmed" {
		t.Fatalf("sends = %v, want one confirmed notification", got)
	}

	// Same status again: no second email.
	if _, err := s.UpdateAppointment(context.Background(), created.ID, json.RawMessage(`{"notes":"bring reports"}`)); err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}
	if got := notifier.sent(); len(got) != 1 {
		t.Fatalf("sends = %v, notification must fire only on a status change", got)
	}
}

func TestUpdateAppointmentSurvivesNotifierFailure(t *testing.T) {
	notifier := &fakeNotifier{fail: errors.New("smtp down")}
	fs := newFakeStore()
	s := newTestService(t, fs, notifier)

	created, err := s.CreateAppointment(context.Background(), validAppointment())
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	saved, err := s.UpdateAppointment(context.Background(), created.ID, json.RawMessage(`{"status":"cancelled"}`))
	if err != nil {
		t.Fatalf("a failed notification must not fail the update: %v", err)
	}
	if saved.Status != store.StatusCancelled {
		t.Fatalf("status = %q", saved.Status)
	}
	if got, _ := fs.GetAppointment(context.Background(), created.ID); got.Status != store.StatusCancelled {
		t.Fatal("store must hold the new status")
	}
}

func TestUpdateAppointmentAllowsUndefinedTransition(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	created, err := s.CreateAppointment(context.Background(), validAppointment())
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	// pending -> completed is outside the machine but still honored.
	saved, err := s.UpdateAppointment(context.Background(), created.ID, json.RawMessage(`{"status":"completed"}`))
	if err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}
	if saved.Status != store.StatusCompleted {
		t.Fatalf("status = %q", saved.Status)
	}
}

func TestUpdateAppointmentRejectsUnknownStatus(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	created, err := s.CreateAppointment(context.Background(), validAppointment())
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if _, err := s.UpdateAppointment(context.Background(), created.ID, json.RawMessage(`{"status":"rescheduled"}`)); err == nil {
		t.Fatal("expected unknown status error")
	}
}

func TestAvailableSlots(t *testing.T) {
	fs := newFakeStore()
	s := newTestService(t, fs, nil)

	booked := validAppointment()
	booked.AppointmentTime = "10:00"
	if _, err := s.CreateAppointment(context.Background(), booked); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	cancelled := validAppointment()
	cancelled.AppointmentTime = "11:00"
	created, err := s.CreateAppointment(context.Background(), cancelled)
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if _, err := s.UpdateAppointment(context.Background(), created.ID, json.RawMessage(`{"status":"cancelled"}`)); err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}

	slots, err := s.AvailableSlots(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(slots) != len(AllSlots)-1 {
		t.Fatalf("got %d slots, want %d", len(slots), len(AllSlots)-1)
	}
	for _, slot := range slots {
		if slot == "10:00" {
			t.Fatal("a pending booking must block its slot")
		}
	}
	found := false
	for _, slot := range slots {
		if slot == "11:00" {
			found = true
		}
	}
	if !found {
		t.Fatal("a cancelled booking must free its slot")
	}
}

func TestAvailableSlotsRejectsBadDate(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	if _, err := s.AvailableSlots(context.Background(), "tomorrow"); err == nil {
		t.Fatal("expected date format error")
	}
}

func TestAppointmentsFilterValidation(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	if _, err := s.Appointments(context.Background(), store.AppointmentFilter{Status: "archived"}); err == nil {
		t.Fatal("expected unknown status filter error")
	}
}

func TestGoogleReviewsUnconfigured(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	payload, err := s.GoogleReviews(context.Background())
	if err == nil {
		t.Fatal("expected error without a configured source")
	}
	if payload.Snippets == nil {
		t.Fatal("snippets must be an empty list, not null")
	}
}

func TestUploadImageStorageOutageIsUpstream(t *testing.T) {
	fs := newFakeStore()
	s := NewService(ServiceConfig{
		Store:    fs,
		DataDir:  t.TempDir(),
		Uploader: &fakeUploader{err: errors.New("put object: dial tcp: connection refused")},
		Logger:   zerolog.Nop(),
	})

	_, _, err := s.UploadImage(context.Background(), "photo.jpg", "image/jpeg", 1024, strings.NewReader("x"))
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("expected domain error, got %v", err)
	}
	if derr.Status != 500 || derr.Code != "UPSTREAM_FAILURE" {
		t.Fatalf("status/code = %d/%s, an unreachable store is not the client's fault", derr.Status, derr.Code)
	}
}

func TestUploadImageRejectionIsValidation(t *testing.T) {
	fs := newFakeStore()
	s := NewService(ServiceConfig{
		Store:    fs,
		DataDir:  t.TempDir(),
		Uploader: &fakeUploader{err: fmt.Errorf("%w: only image uploads are allowed, got application/pdf", storage.ErrInvalidImage)},
		Logger:   zerolog.Nop(),
	})

	_, _, err := s.UploadImage(context.Background(), "doc.pdf", "application/pdf", 1024, strings.NewReader("x"))
	var derr *DomainError
	if !errors.As(err, &derr) || derr.Status != 400 || derr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected 400 VALIDATION_ERROR, got %v", err)
	}
}

func TestVerifyEmailUnconfigured(t *testing.T) {
	s := newTestService(t, newFakeStore(), nil)
	err := s.VerifyEmail()
	var derr *DomainError
	if !errors.As(err, &derr) || derr.Status != 503 {
		t.Fatalf("expected 503, got %v", err)
	}
}

func TestSeedFillsEmptyStore(t *testing.T) {
	fs := newFakeStore()
	s := newTestService(t, fs, nil)

	s.Seed(context.Background(), t.TempDir())

	if len(fs.pages) != 3 {
		t.Fatalf("seeded pages = %d, want 3", len(fs.pages))
	}
	if len(fs.doctors) == 0 || len(fs.services) == 0 {
		t.Fatal("seed must insert starter doctors and services")
	}

	// A second run must not duplicate.
	doctors := len(fs.doctors)
	s.Seed(context.Background(), t.TempDir())
	if len(fs.doctors) != doctors {
		t.Fatal("seed must be idempotent")
	}
}
