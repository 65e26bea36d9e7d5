package email

import (
	"strings"
	"testing"
)

func TestIsConfigured(t *testing.T) {
	cases := []struct {
		name   string
		config Config
		want   bool
	}{
		{"empty", Config{}, false},
		{"missing from", Config{Host: "smtp.example.com", Port: "587"}, false},
		{"complete", Config{Host: "smtp.example.com", Port: "587", From: "clinic@example.com"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewService(tc.config).IsConfigured(); got != tc.want {
				t.Fatalf("IsConfigured() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSendFailsWhenUnconfigured(t *testing.T) {
	service := NewService(Config{})
	if err := service.SendHTMLEmail([]string{"p@example.com"}, "s", "<p>b</p>"); err == nil {
		t.Fatal("expected error when unconfigured")
	}
	if err := service.Verify(); err == nil {
		t.Fatal("expected Verify to fail when unconfigured")
	}
}

func TestStatusTemplatesRender(t *testing.T) {
	data := AppointmentData{
		PatientName: "Jane Roe",
		DoctorName:  "Dr. Imran",
		Date:        "2026-09-01",
		Time:        "10:00",
		Notes:       "Bring your lab results.",
	}
	for _, tmpl := range []string{confirmedEmailTemplate, cancelledEmailTemplate, completedEmailTemplate} {
		html, err := renderTemplate(tmpl, data)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(html, "Jane Roe") {
			t.Fatal("patient name missing from rendered email")
		}
		if !strings.Contains(html, "Bring your lab results.") {
			t.Fatal("clinic note missing from rendered email")
		}
	}
}

func TestUnknownStatusSendsNothing(t *testing.T) {
	// The service is unconfigured, so any attempt to actually send would
	// error. A nil return proves no send was attempted.
	service := NewService(Config{})
	if err := service.SendAppointmentStatus("p@example.com", "pending", AppointmentData{}); err != nil {
		t.Fatalf("unknown status should be a no-op, got %v", err)
	}
}
