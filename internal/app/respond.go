package app

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"clinic/api/internal/auth"
	"clinic/api/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status == http.StatusNoContent {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// writeRaw sends a pre-encoded JSON document without re-marshalling it.
func writeRaw(w http.ResponseWriter, status int, doc json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(doc)
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	body := map[string]any{"code": code, "error": message}
	if details != nil {
		body["details"] = details
	}
	writeJSON(w, status, body)
}

// mapError translates a service error into an HTTP status, code and message.
func mapError(err error) (int, string, string, any) {
	var derr *DomainError
	if errors.As(err, &derr) {
		return derr.Status, derr.Code, derr.Message, derr.Details
	}
	if errors.Is(err, sql.ErrNoRows) {
		return http.StatusNotFound, "NOT_FOUND", "Not found", nil
	}
	if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrExpiredToken) {
		return http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", nil
	}
	return http.StatusInternalServerError, "SERVER_ERROR", "Internal server error", nil
}

func writeMappedError(w http.ResponseWriter, err error) {
	status, code, message, details := mapError(err)
	writeError(w, status, code, message, details)
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}

// readBody reads a raw JSON body for partial updates, rejecting non-JSON
// input before the service applies the patch.
func readBody(r *http.Request) (json.RawMessage, error) {
	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.New("unable to read request body")
	}
	if !json.Valid(raw) {
		return nil, errors.New("invalid JSON body")
	}
	return raw, nil
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func respondList[T any](w http.ResponseWriter, items []T, err error) {
	if err != nil {
		writeMappedError(w, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, items)
}

func respondItem[T any](w http.ResponseWriter, status int, item T, err error) {
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, status, item)
}

func respondDelete(w http.ResponseWriter, err error) {
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func appointmentFilter(r *http.Request) store.AppointmentFilter {
	q := r.URL.Query()
	return store.AppointmentFilter{
		Status: strings.TrimSpace(q.Get("status")),
		Date:   strings.TrimSpace(q.Get("date")),
	}
}

func (b doctorBody) Doctor() store.Doctor {
	return store.Doctor{
		Name:           b.Name,
		Title:          b.Title,
		Specialization: b.Specialization,
		Bio:            b.Bio,
		Employment:     b.Employment,
		Contact:        b.Contact,
		PhotoURL:       b.PhotoURL,
		InterviewURL:   b.InterviewURL,
	}
}

func (b serviceBody) Service() store.Service {
	return store.Service{
		Name:         b.Name,
		Summary:      b.Summary,
		Image:        b.Image,
		Details:      b.Details,
		DetailVideos: b.DetailVideos,
	}
}

func (b achievementBody) Achievement() store.Achievement {
	return store.Achievement{Title: b.Title, Text: b.Text}
}

func (b reviewBody) Review() store.Review {
	return store.Review{Author: b.Author, Rating: b.Rating, Text: b.Text, VideoURL: b.VideoURL}
}

func (b podcastBody) Podcast() store.PodcastEpisode {
	return store.PodcastEpisode{
		Title:        b.Title,
		Description:  b.Description,
		VideoURL:     b.VideoURL,
		ThumbnailURL: b.ThumbnailURL,
	}
}

func (b slideBody) Slide() store.HomepageSlide {
	return store.HomepageSlide{
		Title:       b.Title,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		LinkURL:     b.LinkURL,
		LinkText:    b.LinkText,
		Order:       b.Order,
		IsActive:    b.IsActive,
	}
}

func (b appointmentBody) Appointment() store.Appointment {
	return store.Appointment{
		PatientName:     b.PatientName,
		PatientEmail:    b.PatientEmail,
		PatientPhone:    b.PatientPhone,
		DoctorID:        b.DoctorID,
		DoctorName:      b.DoctorName,
		AppointmentDate: b.AppointmentDate,
		AppointmentTime: b.AppointmentTime,
		Reason:          b.Reason,
		Status:          b.Status,
		Notes:           b.Notes,
	}
}
