package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	"clinic/api/internal/auth"
	"clinic/api/internal/storage"

	"github.com/rs/zerolog"
)

type HTTPServer struct {
	service    *Service
	corsOrigin string
	log        zerolog.Logger

	adminUser         string
	adminPasswordHash string
	sessionSecret     []byte
	sessionTTL        time.Duration
}

type HTTPConfig struct {
	CORSOrigin        string
	AdminUser         string
	AdminPasswordHash string
	SessionSecret     string
	SessionTTL        time.Duration
}

func NewHTTPServer(service *Service, cfg HTTPConfig, log zerolog.Logger) *HTTPServer {
	return &HTTPServer{
		service:           service,
		corsOrigin:        cfg.CORSOrigin,
		log:               log,
		adminUser:         cfg.AdminUser,
		adminPasswordHash: cfg.AdminPasswordHash,
		sessionSecret:     []byte(cfg.SessionSecret),
		sessionTTL:        cfg.SessionTTL,
	}
}

func (s *HTTPServer) Handler() http.Handler {
	return s.withMiddleware(http.HandlerFunc(s.handle))
}

func (s *HTTPServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		writeJSON(w, http.StatusNoContent, map[string]any{})
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/health" {
		state := 1
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := s.service.Ping(ctx); err != nil {
			state = 0
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "state": state})
		return
	}

	if r.Method == http.MethodPost && r.URL.Path == "/api/admin/login" {
		s.handleAdminLogin(w, r)
		return
	}

	parts := splitPath(r.URL.Path)
	if len(parts) < 2 || parts[0] != "api" {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
		return
	}
	rest := parts[1:]

	switch rest[0] {
	case "home", "medical-tourism", "kidney":
		s.handlePage(w, r, rest)
	case "doctors":
		s.handleDoctors(w, r, rest)
	case "services":
		s.handleServices(w, r, rest)
	case "achievements":
		s.handleAchievements(w, r, rest)
	case "reviews":
		s.handleReviews(w, r, rest)
	case "google-reviews":
		s.handleGoogleReviews(w, r)
	case "podcasts":
		s.handlePodcasts(w, r, rest)
	case "homepage-slides":
		s.handleSlides(w, r, rest)
	case "appointments":
		s.handleAppointments(w, r, rest)
	case "upload":
		s.handleUpload(w, r)
	case "search":
		s.handleSearch(w, r)
	case "test-email":
		s.handleTestEmail(w, r)
	default:
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
	}
}

// ---- singleton pages ----

func (s *HTTPServer) handlePage(w http.ResponseWriter, r *http.Request, parts []string) {
	page := parts[0]

	if len(parts) == 2 && parts[1] == "history" && r.Method == http.MethodGet {
		entries, err := s.service.PageHistory(r.Context(), page)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"history": entries})
		return
	}
	if len(parts) != 1 {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
		return
	}

	switch r.Method {
	case http.MethodGet:
		doc, err := s.service.PageDocument(r.Context(), page)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeRaw(w, http.StatusOK, doc)
	case http.MethodPut:
		var body map[string]any
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		if _, err := s.service.SavePage(r.Context(), page, body); err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	default:
		writeMethodNotAllowed(w)
	}
}

// ---- doctors ----

func (s *HTTPServer) handleDoctors(w http.ResponseWriter, r *http.Request, parts []string) {
	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		items, err := s.service.Doctors(r.Context())
		respondList(w, items, err)
	case len(parts) == 1 && r.Method == http.MethodPost:
		var body doctorBody
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		created, err := s.service.CreateDoctor(r.Context(), body.Doctor())
		respondItem(w, http.StatusCreated, created, err)
	case len(parts) == 2 && r.Method == http.MethodGet:
		item, err := s.service.Doctor(r.Context(), parts[1])
		respondItem(w, http.StatusOK, item, err)
	case len(parts) == 2 && r.Method == http.MethodPut:
		patch, err := readBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		item, err := s.service.UpdateDoctor(r.Context(), parts[1], patch)
		respondItem(w, http.StatusOK, item, err)
	case len(parts) == 2 && r.Method == http.MethodDelete:
		respondDelete(w, s.service.DeleteDoctor(r.Context(), parts[1]))
	default:
		writeMethodNotAllowed(w)
	}
}

// ---- services ----

func (s *HTTPServer) handleServices(w http.ResponseWriter, r *http.Request, parts []string) {
	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		items, err := s.service.Services(r.Context())
		respondList(w, items, err)
	case len(parts) == 1 && r.Method == http.MethodPost:
		var body serviceBody
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		created, err := s.service.CreateService(r.Context(), body.Service())
		respondItem(w, http.StatusCreated, created, err)
	case len(parts) == 2 && r.Method == http.MethodGet:
		item, err := s.service.Service(r.Context(), parts[1])
		respondItem(w, http.StatusOK, item, err)
	case len(parts) == 2 && r.Method == http.MethodPut:
		patch, err := readBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		item, err := s.service.UpdateService(r.Context(), parts[1], patch)
		respondItem(w, http.StatusOK, item, err)
	case len(parts) == 2 && r.Method == http.MethodDelete:
		respondDelete(w, s.service.DeleteService(r.Context(), parts[1]))
	default:
		writeMethodNotAllowed(w)
	}
}

// ---- achievements ----

func (s *HTTPServer) handleAchievements(w http.ResponseWriter, r *http.Request, parts []string) {
	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		items, err := s.service.Achievements(r.Context())
		respondList(w, items, err)
	case len(parts) == 1 && r.Method == http.MethodPost:
		var body achievementBody
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		created, err := s.service.CreateAchievement(r.Context(), body.Achievement())
		respondItem(w, http.StatusCreated, created, err)
	case len(parts) == 2 && r.Method == http.MethodPut:
		patch, err := readBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		item, err := s.service.UpdateAchievement(r.Context(), parts[1], patch)
		respondItem(w, http.StatusOK, item, err)
	case len(parts) == 2 && r.Method == http.MethodDelete:
		respondDelete(w, s.service.DeleteAchievement(r.Context(), parts[1]))
	default:
		writeMethodNotAllowed(w)
	}
}

// ---- reviews ----

func (s *HTTPServer) handleReviews(w http.ResponseWriter, r *http.Request, parts []string) {
	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		items, err := s.service.Reviews(r.Context())
		respondList(w, items, err)
	case len(parts) == 1 && r.Method == http.MethodPost:
		var body reviewBody
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		created, err := s.service.CreateReview(r.Context(), body.Review())
		respondItem(w, http.StatusCreated, created, err)
	case len(parts) == 2 && r.Method == http.MethodPut:
		patch, err := readBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		item, err := s.service.UpdateReview(r.Context(), parts[1], patch)
		respondItem(w, http.StatusOK, item, err)
	case len(parts) == 2 && r.Method == http.MethodDelete:
		respondDelete(w, s.service.DeleteReview(r.Context(), parts[1]))
	default:
		writeMethodNotAllowed(w)
	}
}

func (s *HTTPServer) handleGoogleReviews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	payload, err := s.service.GoogleReviews(r.Context())
	if err != nil {
		status, _, message, details := mapError(err)
		writeJSON(w, status, map[string]any{
			"error":    message,
			"details":  details,
			"snippets": payload.Snippets,
		})
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// ---- podcasts ----

func (s *HTTPServer) handlePodcasts(w http.ResponseWriter, r *http.Request, parts []string) {
	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		items, err := s.service.Podcasts(r.Context())
		respondList(w, items, err)
	case len(parts) == 1 && r.Method == http.MethodPost:
		var body podcastBody
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		created, err := s.service.CreatePodcast(r.Context(), body.Podcast())
		respondItem(w, http.StatusCreated, created, err)
	case len(parts) == 2 && r.Method == http.MethodDelete:
		respondDelete(w, s.service.DeletePodcast(r.Context(), parts[1]))
	default:
		// Episodes are append-only: no PUT.
		writeMethodNotAllowed(w)
	}
}

// ---- homepage slides ----

func (s *HTTPServer) handleSlides(w http.ResponseWriter, r *http.Request, parts []string) {
	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		activeOnly := r.URL.Query().Get("active") == "true"
		items, err := s.service.Slides(r.Context(), activeOnly)
		respondList(w, items, err)
	case len(parts) == 1 && r.Method == http.MethodPost:
		var body slideBody
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		created, err := s.service.CreateSlide(r.Context(), body.Slide())
		respondItem(w, http.StatusCreated, created, err)
	case len(parts) == 2 && r.Method == http.MethodPut:
		patch, err := readBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		item, err := s.service.UpdateSlide(r.Context(), parts[1], patch)
		respondItem(w, http.StatusOK, item, err)
	case len(parts) == 2 && r.Method == http.MethodDelete:
		respondDelete(w, s.service.DeleteSlide(r.Context(), parts[1]))
	default:
		writeMethodNotAllowed(w)
	}
}

// ---- appointments ----

func (s *HTTPServer) handleAppointments(w http.ResponseWriter, r *http.Request, parts []string) {
	if len(parts) == 3 && parts[1] == "available-slots" && r.Method == http.MethodGet {
		slots, err := s.service.AvailableSlots(r.Context(), parts[2])
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"availableSlots": slots})
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		filter := appointmentFilter(r)
		items, err := s.service.Appointments(r.Context(), filter)
		respondList(w, items, err)
	case len(parts) == 1 && r.Method == http.MethodPost:
		var body appointmentBody
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		created, err := s.service.CreateAppointment(r.Context(), body.Appointment())
		respondItem(w, http.StatusCreated, created, err)
	case len(parts) == 2 && r.Method == http.MethodGet:
		item, err := s.service.Appointment(r.Context(), parts[1])
		respondItem(w, http.StatusOK, item, err)
	case len(parts) == 2 && r.Method == http.MethodPut:
		patch, err := readBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		item, err := s.service.UpdateAppointment(r.Context(), parts[1], patch)
		respondItem(w, http.StatusOK, item, err)
	case len(parts) == 2 && r.Method == http.MethodDelete:
		respondDelete(w, s.service.DeleteAppointment(r.Context(), parts[1]))
	default:
		writeMethodNotAllowed(w)
	}
}

// ---- uploads ----

func (s *HTTPServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxUploadSize+1<<20)
	if err := r.ParseMultipartForm(storage.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid multipart form", nil)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "image file is required", nil)
		return
	}
	defer file.Close()

	url, object, err := s.service.UploadImage(r.Context(), header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"url":      url,
		"filename": object,
		"storage":  "minio",
	})
}

// ---- search, email check, login ----

func (s *HTTPServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "q is required", nil)
		return
	}
	writeJSON(w, http.StatusOK, s.service.SearchContent(r.Context(), q, 20))
}

func (s *HTTPServer) handleTestEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	if err := s.service.VerifyEmail(); err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "SMTP connection verified"})
}

func (s *HTTPServer) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
		return
	}
	if err := auth.CheckCredentials(s.adminUser, s.adminPasswordHash, body.Username, body.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
		return
	}
	token, err := auth.IssueToken(s.sessionSecret, body.Username, s.sessionTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Failed to issue token", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token})
}

// ---- request body shapes ----
//
// Create bodies are decoded into dedicated structs so clients cannot smuggle
// ids or timestamps into inserts.

type doctorBody struct {
	Name           string `json:"name"`
	Title          string `json:"title"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio"`
	Employment     string `json:"employment"`
	Contact        string `json:"contact"`
	PhotoURL       string `json:"photoUrl"`
	InterviewURL   string `json:"interviewUrl"`
}

type serviceBody struct {
	Name         string   `json:"name"`
	Summary      string   `json:"summary"`
	Image        string   `json:"image"`
	Details      []string `json:"details"`
	DetailVideos []string `json:"detailVideos"`
}

type achievementBody struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type reviewBody struct {
	Author   string `json:"author"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	VideoURL string `json:"videoUrl"`
}

type podcastBody struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

type slideBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	LinkURL     string `json:"linkUrl"`
	LinkText    string `json:"linkText"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"isActive"`
}

type appointmentBody struct {
	PatientName     string `json:"patientName"`
	PatientEmail    string `json:"patientEmail"`
	PatientPhone    string `json:"patientPhone"`
	DoctorID        string `json:"doctorId"`
	DoctorName      string `json:"doctorName"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
}
