// Package filestore archives raw uploaded statements.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	BackendLocal = "local"
	BackendGCS   = "gcs"
)

var ErrUnknownBackend = errors.New("unknown upload backend")

// Store archives an upload and returns where it went.
type Store interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	Close() error
}

// Open builds the store for a configured backend: "local" writes under dir, "gcs" uploads
// to bucket. Callers own the returned store and must Close it.
func Open(ctx context.Context, backend, dir, bucket string) (Store, error) {
	switch backend {
	case BackendLocal:
		return NewLocal(dir), nil
	case BackendGCS:
		gcs, err := NewGCS(ctx, bucket)
		if err != nil {
			return nil, err
		}

		return gcs, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// objectKey builds "statements/2024/03/<uuid>-<name>" so repeated uploads of the same file
// never collide.
func objectKey(now time.Time, name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" || base == "" {
		base = "statement"
	}

	return path.Join("statements", now.UTC().Format("2006/01"), uuid.NewString()+"-"+base)
}
