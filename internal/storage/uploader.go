package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

var imageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Uploader writes selfie and receipt files to a GCS bucket.
type Uploader struct {
	client *storage.Client
	bucket string
	// maxEdge caps the longest image edge; larger images are downscaled
	// before upload.
	maxEdge int
}

func NewUploader(ctx context.Context, bucket, credJSON string, maxEdge int) (*Uploader, error) {
	var opts []option.ClientOption
	if credJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credJSON)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &Uploader{client: client, bucket: bucket, maxEdge: maxEdge}, nil
}

// ObjectKey builds a collision-free key under prefix, keeping the original
// extension.
func ObjectKey(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
}

// Upload stores raw bytes and returns the public object URL.
func (u *Uploader) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w := u.client.Bucket(u.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("write object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object %q: %w", key, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, key), nil
}

// UploadImage downscales oversized images and re-encodes as JPEG before
// storing. Non-image content types are rejected.
func (u *Uploader) UploadImage(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if !imageMimeTypes[contentType] {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > u.maxEdge || bounds.Dy() > u.maxEdge {
		img = imaging.Fit(img, u.maxEdge, u.maxEdge, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	return u.Upload(ctx, key, "image/jpeg", &buf)
}

func (u *Uploader) Close() error {
	return u.client.Close()
}
