// Package carrier holds the statement sources of an org.
package carrier

import (
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("carrier not found")

// Carrier names are unique per org, compared case-insensitively.
type Carrier struct {
	ID           int64
	OrgID        int64
	Name         string
	DownloadType *string
	CreatedAt    time.Time
}

// NormalizeName trims a carrier name as read from a statement.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
