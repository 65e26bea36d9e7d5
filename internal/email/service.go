// Package email sends appointment notifications via SMTP.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
)

// Config holds SMTP configuration
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// Service provides email sending
type Service struct {
	config Config
	server string
	auth   smtp.Auth
}

// NewService creates a new email service
func NewService(config Config) *Service {
	auth := smtp.PlainAuth("", config.Username, config.Password, config.Host)

	return &Service{
		config: config,
		server: config.Host + ":" + config.Port,
		auth:   auth,
	}
}

// IsConfigured returns true if email is configured. When it is not, callers
// skip notifications instead of failing the request.
func (s *Service) IsConfigured() bool {
	return s.config.Host != "" && s.config.Port != "" && s.config.From != ""
}

// Verify opens and closes an SMTP connection to prove the configuration works.
func (s *Service) Verify() error {
	if !s.IsConfigured() {
		return fmt.Errorf("email not configured")
	}
	client, err := smtp.Dial(s.server)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	return client.Close()
}

// SendHTMLEmail sends an HTML email with a plain-text fallback part.
func (s *Service) SendHTMLEmail(to []string, subject, htmlBody string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email not configured")
	}

	from := s.config.From
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}

	boundary := "boundary-clinic"

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary)
	fmt.Fprintf(&msg, "\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	fmt.Fprintf(&msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "Please view this email in an HTML-capable email client.\r\n")
	fmt.Fprintf(&msg, "\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	fmt.Fprintf(&msg, "Content-Type: text/html; charset=UTF-8\r\n")
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "%s\r\n", htmlBody)
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	return smtp.SendMail(s.server, s.auth, s.config.From, to, msg.Bytes())
}

// AppointmentData holds data for appointment notification templates.
type AppointmentData struct {
	ClinicName  string
	PatientName string
	DoctorName  string
	Date        string
	Time        string
	Notes       string
}

// SendAppointmentStatus sends the notification matching the appointment's new
// status. Unknown statuses send nothing.
func (s *Service) SendAppointmentStatus(to, status string, data AppointmentData) error {
	if data.ClinicName == "" {
		data.ClinicName = "The Kidney Clinic"
	}

	var subject, tmpl string
	switch status {
	case "confirmed":
		subject = "Your appointment is confirmed"
		tmpl = confirmedEmailTemplate
	case "cancelled":
		subject = "Your appointment has been cancelled"
		tmpl = cancelledEmailTemplate
	case "completed":
		subject = "Thank you for visiting us"
		tmpl = completedEmailTemplate
	default:
		return nil
	}

	html, err := renderTemplate(tmpl, data)
	if err != nil {
		return fmt.Errorf("render %s template: %w", status, err)
	}
	return s.SendHTMLEmail([]string{to}, subject, html)
}

func renderTemplate(tmpl string, data interface{}) (string, error) {
	t := template.Must(template.New("email").Parse(tmpl))
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const emailStyles = `body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { border-bottom: 2px solid #0a7d6c; padding-bottom: 10px; margin-bottom: 20px; }
        .details { background: #f5f8f7; padding: 16px; border-radius: 4px; margin: 20px 0; }
        .details td { padding: 4px 12px 4px 0; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666; }`

const confirmedEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Appointment Confirmed</title>
    <style>
        ` + emailStyles + `
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.ClinicName}}</h1>
    </div>

    <h2>Your appointment is confirmed</h2>

    <p>Dear {{.PatientName}},</p>

    <p>We are pleased to confirm your appointment:</p>

    <table class="details">
        {{if .DoctorName}}<tr><td><strong>Doctor</strong></td><td>{{.DoctorName}}</td></tr>{{end}}
        <tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
        <tr><td><strong>Time</strong></td><td>{{.Time}}</td></tr>
    </table>

    <p>Please arrive 15 minutes early and bring any previous medical reports with you.</p>
    {{if .Notes}}<p><strong>Note from the clinic:</strong> {{.Notes}}</p>{{end}}

    <div class="footer">
        <p>If you need to reschedule, please contact us as soon as possible.</p>
    </div>
</body>
</html>`

const cancelledEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Appointment Cancelled</title>
    <style>
        ` + emailStyles + `
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.ClinicName}}</h1>
    </div>

    <h2>Your appointment has been cancelled</h2>

    <p>Dear {{.PatientName}},</p>

    <p>Your appointment on {{.Date}} at {{.Time}} has been cancelled.</p>
    {{if .Notes}}<p><strong>Note from the clinic:</strong> {{.Notes}}</p>{{end}}

    <p>You are welcome to book a new appointment at any time.</p>

    <div class="footer">
        <p>We apologise for any inconvenience.</p>
    </div>
</body>
</html>`

const completedEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank You</title>
    <style>
        ` + emailStyles + `
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.ClinicName}}</h1>
    </div>

    <h2>Thank you for visiting us</h2>

    <p>Dear {{.PatientName}},</p>

    <p>Thank you for your visit on {{.Date}}. We hope everything went well.</p>
    {{if .Notes}}<p><strong>Note from the clinic:</strong> {{.Notes}}</p>{{end}}

    <p>If you have any follow-up questions, do not hesitate to reach out.</p>

    <div class="footer">
        <p>We would love to hear your feedback.</p>
    </div>
</body>
</html>`
