package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ValidID reports whether id is a well-formed UUID. Handlers reject malformed
// ids before they ever reach a query.
func ValidID(id string) bool {
	return uuidPattern.MatchString(id)
}

// ---- singleton page documents ----

func (s *PostgresStore) GetPage(ctx context.Context, page string) (json.RawMessage, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM page_documents WHERE page=$1`, page).Scan(&data)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// UpsertPage writes the singleton document for a page. The fixed primary key
// guarantees at most one row per page regardless of how many saves race.
func (s *PostgresStore) UpsertPage(ctx context.Context, page string, data json.RawMessage) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO page_documents (page, data)
		VALUES ($1, $2)
		ON CONFLICT (page) DO UPDATE SET data=EXCLUDED.data, updated_at=NOW()
	`, page, []byte(data))
	if err != nil {
		return fmt.Errorf("upsert page %s: %w", page, err)
	}
	return nil
}

// ---- doctors ----

const doctorColumns = `id, name, title, specialization, bio, employment, contact, photo_url, interview_url, created_at, updated_at`

func scanDoctor(row interface{ Scan(...any) error }) (Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Title, &d.Specialization, &d.Bio, &d.Employment,
		&d.Contact, &d.PhotoURL, &d.InterviewURL, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (s *PostgresStore) ListDoctors(ctx context.Context) ([]Doctor, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+doctorColumns+` FROM doctors ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	items := make([]Doctor, 0)
	for rows.Next() {
		item, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetDoctor(ctx context.Context, id string) (Doctor, error) {
	return scanDoctor(s.db.QueryRowContext(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE id=$1`, id))
}

func (s *PostgresStore) InsertDoctor(ctx context.Context, d Doctor) (Doctor, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO doctors (name, title, specialization, bio, employment, contact, photo_url, interview_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+doctorColumns,
		d.Name, d.Title, d.Specialization, d.Bio, d.Employment, d.Contact, d.PhotoURL, d.InterviewURL)
	out, err := scanDoctor(row)
	if err != nil {
		return Doctor{}, fmt.Errorf("insert doctor: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UpdateDoctor(ctx context.Context, d Doctor) (Doctor, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE doctors
		SET name=$2, title=$3, specialization=$4, bio=$5, employment=$6, contact=$7,
			photo_url=$8, interview_url=$9, updated_at=NOW()
		WHERE id=$1
		RETURNING `+doctorColumns,
		d.ID, d.Name, d.Title, d.Specialization, d.Bio, d.Employment, d.Contact, d.PhotoURL, d.InterviewURL)
	return scanDoctor(row)
}

func (s *PostgresStore) DeleteDoctor(ctx context.Context, id string) error {
	return s.deleteRow(ctx, "doctors", id)
}

// ---- services ----

const serviceColumns = `id, name, summary, image, details, detail_videos, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (Service, error) {
	var item Service
	var details, videos []byte
	err := row.Scan(&item.ID, &item.Name, &item.Summary, &item.Image, &details, &videos, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return Service{}, err
	}
	if err := json.Unmarshal(details, &item.Details); err != nil {
		return Service{}, fmt.Errorf("decode service details: %w", err)
	}
	if err := json.Unmarshal(videos, &item.DetailVideos); err != nil {
		return Service{}, fmt.Errorf("decode service videos: %w", err)
	}
	return item, nil
}

func encodeStrings(values []string) []byte {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return raw
}

func (s *PostgresStore) ListServices(ctx context.Context) ([]Service, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	items := make([]Service, 0)
	for rows.Next() {
		item, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetService(ctx context.Context, id string) (Service, error) {
	return scanService(s.db.QueryRowContext(ctx, `SELECT `+serviceColumns+` FROM services WHERE id=$1`, id))
}

func (s *PostgresStore) InsertService(ctx context.Context, item Service) (Service, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO services (name, summary, image, details, detail_videos)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+serviceColumns,
		item.Name, item.Summary, item.Image, encodeStrings(item.Details), encodeStrings(item.DetailVideos))
	out, err := scanService(row)
	if err != nil {
		return Service{}, fmt.Errorf("insert service: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UpdateService(ctx context.Context, item Service) (Service, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE services
		SET name=$2, summary=$3, image=$4, details=$5, detail_videos=$6, updated_at=NOW()
		WHERE id=$1
		RETURNING `+serviceColumns,
		item.ID, item.Name, item.Summary, item.Image, encodeStrings(item.Details), encodeStrings(item.DetailVideos))
	return scanService(row)
}

func (s *PostgresStore) DeleteService(ctx context.Context, id string) error {
	return s.deleteRow(ctx, "services", id)
}

// ---- achievements ----

func (s *PostgresStore) ListAchievements(ctx context.Context) ([]Achievement, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, text, created_at, updated_at FROM achievements ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	items := make([]Achievement, 0)
	for rows.Next() {
		var item Achievement
		if err := rows.Scan(&item.ID, &item.Title, &item.Text, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetAchievement(ctx context.Context, id string) (Achievement, error) {
	var item Achievement
	err := s.db.QueryRowContext(ctx, `SELECT id, title, text, created_at, updated_at FROM achievements WHERE id=$1`, id).
		Scan(&item.ID, &item.Title, &item.Text, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

func (s *PostgresStore) InsertAchievement(ctx context.Context, item Achievement) (Achievement, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO achievements (title, text) VALUES ($1, $2)
		RETURNING id, title, text, created_at, updated_at
	`, item.Title, item.Text).Scan(&item.ID, &item.Title, &item.Text, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return Achievement{}, fmt.Errorf("insert achievement: %w", err)
	}
	return item, nil
}

func (s *PostgresStore) UpdateAchievement(ctx context.Context, item Achievement) (Achievement, error) {
	err := s.db.QueryRowContext(ctx, `
		UPDATE achievements SET title=$2, text=$3, updated_at=NOW() WHERE id=$1
		RETURNING id, title, text, created_at, updated_at
	`, item.ID, item.Title, item.Text).Scan(&item.ID, &item.Title, &item.Text, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

func (s *PostgresStore) DeleteAchievement(ctx context.Context, id string) error {
	return s.deleteRow(ctx, "achievements", id)
}

// ---- reviews (testimonials) ----

func (s *PostgresStore) ListReviews(ctx context.Context) ([]Review, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, author, rating, text, video_url, created_at, updated_at FROM reviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	items := make([]Review, 0)
	for rows.Next() {
		var item Review
		if err := rows.Scan(&item.ID, &item.Author, &item.Rating, &item.Text, &item.VideoURL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetReview(ctx context.Context, id string) (Review, error) {
	var item Review
	err := s.db.QueryRowContext(ctx, `SELECT id, author, rating, text, video_url, created_at, updated_at FROM reviews WHERE id=$1`, id).
		Scan(&item.ID, &item.Author, &item.Rating, &item.Text, &item.VideoURL, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

func (s *PostgresStore) InsertReview(ctx context.Context, item Review) (Review, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO reviews (author, rating, text, video_url) VALUES ($1, $2, $3, $4)
		RETURNING id, author, rating, text, video_url, created_at, updated_at
	`, item.Author, item.Rating, item.Text, item.VideoURL).
		Scan(&item.ID, &item.Author, &item.Rating, &item.Text, &item.VideoURL, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return Review{}, fmt.Errorf("insert review: %w", err)
	}
	return item, nil
}

func (s *PostgresStore) UpdateReview(ctx context.Context, item Review) (Review, error) {
	err := s.db.QueryRowContext(ctx, `
		UPDATE reviews SET author=$2, rating=$3, text=$4, video_url=$5, updated_at=NOW() WHERE id=$1
		RETURNING id, author, rating, text, video_url, created_at, updated_at
	`, item.ID, item.Author, item.Rating, item.Text, item.VideoURL).
		Scan(&item.ID, &item.Author, &item.Rating, &item.Text, &item.VideoURL, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

func (s *PostgresStore) DeleteReview(ctx context.Context, id string) error {
	return s.deleteRow(ctx, "reviews", id)
}

// ---- podcast episodes ----

func (s *PostgresStore) ListPodcasts(ctx context.Context) ([]PodcastEpisode, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, description, video_url, thumbnail_url, created_at, updated_at FROM podcast_episodes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list podcasts: %w", err)
	}
	defer rows.Close()

	items := make([]PodcastEpisode, 0)
	for rows.Next() {
		var item PodcastEpisode
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.VideoURL, &item.ThumbnailURL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan podcast: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate podcasts: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetPodcast(ctx context.Context, id string) (PodcastEpisode, error) {
	var item PodcastEpisode
	err := s.db.QueryRowContext(ctx, `SELECT id, title, description, video_url, thumbnail_url, created_at, updated_at FROM podcast_episodes WHERE id=$1`, id).
		Scan(&item.ID, &item.Title, &item.Description, &item.VideoURL, &item.ThumbnailURL, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

func (s *PostgresStore) InsertPodcast(ctx context.Context, item PodcastEpisode) (PodcastEpisode, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO podcast_episodes (title, description, video_url, thumbnail_url) VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, video_url, thumbnail_url, created_at, updated_at
	`, item.Title, item.Description, item.VideoURL, item.ThumbnailURL).
		Scan(&item.ID, &item.Title, &item.Description, &item.VideoURL, &item.ThumbnailURL, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return PodcastEpisode{}, fmt.Errorf("insert podcast: %w", err)
	}
	return item, nil
}

func (s *PostgresStore) DeletePodcast(ctx context.Context, id string) error {
	return s.deleteRow(ctx, "podcast_episodes", id)
}

// ---- homepage slides ----

const slideColumns = `id, title, description, image_url, link_url, link_text, sort_order, is_active, created_at, updated_at`

func scanSlide(row interface{ Scan(...any) error }) (HomepageSlide, error) {
	var item HomepageSlide
	err := row.Scan(&item.ID, &item.Title, &item.Description, &item.ImageURL, &item.LinkURL,
		&item.LinkText, &item.Order, &item.IsActive, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

// ListSlides returns every slide; activeOnly narrows to the public carousel.
func (s *PostgresStore) ListSlides(ctx context.Context, activeOnly bool) ([]HomepageSlide, error) {
	query := `SELECT ` + slideColumns + ` FROM homepage_slides`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	defer rows.Close()

	items := make([]HomepageSlide, 0)
	for rows.Next() {
		item, err := scanSlide(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slides: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetSlide(ctx context.Context, id string) (HomepageSlide, error) {
	return scanSlide(s.db.QueryRowContext(ctx, `SELECT `+slideColumns+` FROM homepage_slides WHERE id=$1`, id))
}

func (s *PostgresStore) InsertSlide(ctx context.Context, item HomepageSlide) (HomepageSlide, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO homepage_slides (title, description, image_url, link_url, link_text, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+slideColumns,
		item.Title, item.Description, item.ImageURL, item.LinkURL, item.LinkText, item.Order, item.IsActive)
	out, err := scanSlide(row)
	if err != nil {
		return HomepageSlide{}, fmt.Errorf("insert slide: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UpdateSlide(ctx context.Context, item HomepageSlide) (HomepageSlide, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE homepage_slides
		SET title=$2, description=$3, image_url=$4, link_url=$5, link_text=$6, sort_order=$7, is_active=$8, updated_at=NOW()
		WHERE id=$1
		RETURNING `+slideColumns,
		item.ID, item.Title, item.Description, item.ImageURL, item.LinkURL, item.LinkText, item.Order, item.IsActive)
	return scanSlide(row)
}

func (s *PostgresStore) DeleteSlide(ctx context.Context, id string) error {
	return s.deleteRow(ctx, "homepage_slides", id)
}

// ---- appointments ----

const appointmentColumns = `id, patient_name, patient_email, patient_phone, doctor_id, doctor_name,
	appointment_date, appointment_time, reason, status, notes, created_at, updated_at`

func scanAppointment(row interface{ Scan(...any) error }) (Appointment, error) {
	var item Appointment
	var doctorID sql.NullString
	err := row.Scan(&item.ID, &item.PatientName, &item.PatientEmail, &item.PatientPhone,
		&doctorID, &item.DoctorName, &item.AppointmentDate, &item.AppointmentTime,
		&item.Reason, &item.Status, &item.Notes, &item.CreatedAt, &item.UpdatedAt)
	if doctorID.Valid {
		item.DoctorID = doctorID.String
	}
	return item, err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (s *PostgresStore) ListAppointments(ctx context.Context, filter AppointmentFilter) ([]Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE 1=1`
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status=$%d", len(args))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND appointment_date=$%d", len(args))
	}
	query += ` ORDER BY appointment_date, appointment_time`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	items := make([]Appointment, 0)
	for rows.Next() {
		item, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetAppointment(ctx context.Context, id string) (Appointment, error) {
	return scanAppointment(s.db.QueryRowContext(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id=$1`, id))
}

func (s *PostgresStore) InsertAppointment(ctx context.Context, item Appointment) (Appointment, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO appointments (patient_name, patient_email, patient_phone, doctor_id, doctor_name,
			appointment_date, appointment_time, reason, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+appointmentColumns,
		item.PatientName, item.PatientEmail, item.PatientPhone, nullable(item.DoctorID), item.DoctorName,
		item.AppointmentDate, item.AppointmentTime, item.Reason, item.Status, item.Notes)
	out, err := scanAppointment(row)
	if err != nil {
		return Appointment{}, fmt.Errorf("insert appointment: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UpdateAppointment(ctx context.Context, item Appointment) (Appointment, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE appointments
		SET patient_name=$2, patient_email=$3, patient_phone=$4, doctor_id=$5, doctor_name=$6,
			appointment_date=$7, appointment_time=$8, reason=$9, status=$10, notes=$11, updated_at=NOW()
		WHERE id=$1
		RETURNING `+appointmentColumns,
		item.ID, item.PatientName, item.PatientEmail, item.PatientPhone, nullable(item.DoctorID), item.DoctorName,
		item.AppointmentDate, item.AppointmentTime, item.Reason, item.Status, item.Notes)
	return scanAppointment(row)
}

func (s *PostgresStore) DeleteAppointment(ctx context.Context, id string) error {
	return s.deleteRow(ctx, "appointments", id)
}

// BookedTimes returns the times already taken on a date by appointments that
// still hold their slot (pending or confirmed).
func (s *PostgresStore) BookedTimes(ctx context.Context, date string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT appointment_time FROM appointments
		WHERE appointment_date=$1 AND status IN ($2, $3)
	`, date, StatusPending, StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("booked times: %w", err)
	}
	defer rows.Close()

	times := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan booked time: %w", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booked times: %w", err)
	}
	return times, nil
}

// ---- counts and search fallback ----

var countable = map[string]bool{
	"doctors":          true,
	"services":         true,
	"achievements":     true,
	"reviews":          true,
	"podcast_episodes": true,
	"homepage_slides":  true,
}

// CountRows reports the row count of a known collection table. Used to decide
// whether a collection needs seeding on startup.
func (s *PostgresStore) CountRows(ctx context.Context, table string) (int, error) {
	if !countable[table] {
		return 0, fmt.Errorf("count rows: unknown table %q", table)
	}
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

// SearchDoctors is the ILIKE fallback behind the search facade.
func (s *PostgresStore) SearchDoctors(ctx context.Context, q string) ([]Doctor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+doctorColumns+` FROM doctors
		WHERE name ILIKE '%'||$1||'%' OR specialization ILIKE '%'||$1||'%' OR bio ILIKE '%'||$1||'%'
		ORDER BY name
	`, q)
	if err != nil {
		return nil, fmt.Errorf("search doctors: %w", err)
	}
	defer rows.Close()

	items := make([]Doctor, 0)
	for rows.Next() {
		item, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) SearchServices(ctx context.Context, q string) ([]Service, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+serviceColumns+` FROM services
		WHERE name ILIKE '%'||$1||'%' OR summary ILIKE '%'||$1||'%'
		ORDER BY name
	`, q)
	if err != nil {
		return nil, fmt.Errorf("search services: %w", err)
	}
	defer rows.Close()

	items := make([]Service, 0)
	for rows.Next() {
		item, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) SearchPodcasts(ctx context.Context, q string) ([]PodcastEpisode, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, video_url, thumbnail_url, created_at, updated_at FROM podcast_episodes
		WHERE title ILIKE '%'||$1||'%' OR description ILIKE '%'||$1||'%'
		ORDER BY created_at DESC
	`, q)
	if err != nil {
		return nil, fmt.Errorf("search podcasts: %w", err)
	}
	defer rows.Close()

	items := make([]PodcastEpisode, 0)
	for rows.Next() {
		var item PodcastEpisode
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.VideoURL, &item.ThumbnailURL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan podcast: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) deleteRow(ctx context.Context, table, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
