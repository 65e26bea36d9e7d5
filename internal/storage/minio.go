// Package storage uploads admin images to an S3-compatible object store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MaxUploadSize caps uploaded images at 5 MB.
const MaxUploadSize = 5 << 20

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL overrides the generated object URL, for serving through a
	// CDN or reverse proxy.
	PublicURL string
}

type Uploader struct {
	client *minio.Client
	config Config
}

// New connects to the object store. It does not touch the bucket; call
// EnsureBucket during startup.
func New(config Config) (*Uploader, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object store: %w", err)
	}
	return &Uploader{client: client, config: config}, nil
}

// EnsureBucket creates the upload bucket if it does not exist yet.
func (u *Uploader) EnsureBucket(ctx context.Context) error {
	exists, err := u.client.BucketExists(ctx, u.config.Bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := u.client.MakeBucket(ctx, u.config.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	return nil
}

// ErrInvalidImage marks a rejected upload (wrong type or too large) as the
// caller's fault, as opposed to the object store being unreachable.
var ErrInvalidImage = errors.New("invalid image")

// ValidateImage rejects anything that is not an image under the size cap.
func ValidateImage(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("%w: only image uploads are allowed, got %s", ErrInvalidImage, contentType)
	}
	if size > MaxUploadSize {
		return fmt.Errorf("%w: image exceeds %d MB limit", ErrInvalidImage, MaxUploadSize>>20)
	}
	return nil
}

// Upload stores the image under a timestamped object name and returns the
// public URL and the stored filename.
func (u *Uploader) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (string, string, error) {
	if err := ValidateImage(contentType, size); err != nil {
		return "", "", err
	}

	object := fmt.Sprintf("%d-%s", time.Now().UnixNano(), sanitizeFilename(filename))
	_, err := u.client.PutObject(ctx, u.config.Bucket, object, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}
	return u.objectURL(object), object, nil
}

func (u *Uploader) objectURL(object string) string {
	if u.config.PublicURL != "" {
		return strings.TrimRight(u.config.PublicURL, "/") + "/" + object
	}
	scheme := "http"
	if u.config.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, u.config.Endpoint, u.config.Bucket, object)
}

func sanitizeFilename(name string) string {
	name = path.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
