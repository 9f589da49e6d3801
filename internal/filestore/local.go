package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Local stores statements under a directory on disk.
type Local struct {
	dir string
	now func() time.Time
}

func NewLocal(dir string) *Local {
	return &Local{dir: dir, now: time.Now}
}

// Save writes data and returns the file path.
func (l *Local) Save(_ context.Context, name string, data []byte) (string, error) {
	p := filepath.Join(l.dir, filepath.FromSlash(objectKey(l.now(), name)))

	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	if err := os.WriteFile(p, data, 0o600); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}

	return p, nil
}

func (l *Local) Close() error {
	return nil
}
