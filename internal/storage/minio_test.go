package storage

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateImage(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		size        int64
		wantErr     bool
	}{
		{"jpeg under limit", "image/jpeg", 1 << 20, false},
		{"png at limit", "image/png", MaxUploadSize, false},
		{"over limit", "image/png", MaxUploadSize + 1, true},
		{"not an image", "application/pdf", 100, true},
		{"empty type", "", 100, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateImage(tc.contentType, tc.size)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateImage(%q, %d) = %v, wantErr %v", tc.contentType, tc.size, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidImage) {
				t.Fatalf("rejection must carry ErrInvalidImage, got %v", err)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"photo.jpg":           "photo.jpg",
		"../../etc/passwd":    "passwd",
		"my photo (1).png":    "my-photo--1-.png",
		"":                    "upload",
		"/absolute/path.webp": "path.webp",
	}
	for in, want := range cases {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestObjectURL(t *testing.T) {
	u := &Uploader{config: Config{Endpoint: "minio.local:9000", Bucket: "clinic-images"}}
	if got := u.objectURL("123-photo.jpg"); got != "http://minio.local:9000/clinic-images/123-photo.jpg" {
		t.Fatalf("objectURL = %q", got)
	}

	u.config.PublicURL = "https://cdn.clinic.example/images/"
	if got := u.objectURL("123-photo.jpg"); !strings.HasPrefix(got, "https://cdn.clinic.example/images/") {
		t.Fatalf("public URL override not applied: %q", got)
	}
}
