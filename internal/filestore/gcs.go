package filestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
)

const uploadTimeout = 2 * time.Minute

// GCS stores statements in a Cloud Storage bucket using Application Default Credentials.
type GCS struct {
	client *storage.Client
	bucket string
	now    func() time.Time
}

func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &GCS{client: client, bucket: bucket, now: time.Now}, nil
}

// Save uploads data and returns its gs:// URI.
func (g *GCS) Save(ctx context.Context, name string, data []byte) (string, error) {
	key := objectKey(g.now(), name)

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := g.client.Bucket(g.bucket).Object(key).NewWriter(ctx)

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("copy statement to GCS writer: %w", err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", g.bucket, key), nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}
