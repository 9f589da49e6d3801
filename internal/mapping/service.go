// Package mapping keeps org-defined column names per carrier. They are tried before the
// built-in aliases when normalizing that carrier's statements.
package mapping

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/commissions/internal/statement"
)

var ErrInvalidField = errors.New("unknown statement field")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=mapping
type Repository interface {
	FindMapping(ctx context.Context, orgID, carrierID int64) (map[statement.Field][]string, error)
	SaveMapping(ctx context.Context, orgID, carrierID int64, columns map[statement.Field][]string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the carrier's column mapping, or nil when it has none.
func (s *Service) Suggest(ctx context.Context, orgID, carrierID int64) (map[statement.Field][]string, error) {
	return s.repo.FindMapping(ctx, orgID, carrierID)
}

// Learn replaces the carrier's column mapping. Blank column names are dropped.
func (s *Service) Learn(ctx context.Context, orgID, carrierID int64, columns map[statement.Field][]string) error {
	clean := make(map[statement.Field][]string, len(columns))

	for field, names := range columns {
		if !field.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidField, field)
		}

		for _, n := range names {
			if n = strings.TrimSpace(n); n != "" {
				clean[field] = append(clean[field], n)
			}
		}
	}

	return s.repo.SaveMapping(ctx, orgID, carrierID, clean)
}
