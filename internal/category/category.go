// Package category manages the org-defined classification tags applied to transactions.
package category

import "time"

type Kind string

const (
	KindLine   Kind = "line"
	KindStatus Kind = "status"
)

func (k Kind) Valid() bool {
	return k == KindLine || k == KindStatus
}

// Fallback is the category manual entries receive when their value is not an allowed tag.
const Fallback = "other"

type Tag struct {
	ID        int64
	OrgID     int64
	Name      string
	Kind      Kind
	IsDefault bool
	CreatedAt time.Time
}
