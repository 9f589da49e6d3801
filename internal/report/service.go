// Package report aggregates commission transactions for the leaderboard.
package report

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/commissions/internal/access"
)

// UnassignedName labels the entry for transactions without a producer.
const UnassignedName = "Unassigned"

// Entry is one producer's totals. ProducerID is nil for unassigned transactions.
type Entry struct {
	ProducerID   *int64          `json:"producer_id"`
	DisplayName  string          `json:"display_name"`
	WorkspaceID  *int64          `json:"workspace_id"`
	Commission   decimal.Decimal `json:"commission"`
	Premium      decimal.Decimal `json:"premium"`
	Transactions int             `json:"transactions"`
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	// Leaderboard groups transactions by producer. workspaceIDs nil means every workspace.
	Leaderboard(ctx context.Context, orgID int64, workspaceIDs []int64) ([]Entry, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Leaderboard returns per-producer payable totals visible to the actor, highest first.
func (s *Service) Leaderboard(ctx context.Context, scope access.Scope) ([]Entry, error) {
	workspaces := scope.Workspaces()
	if workspaces != nil && len(workspaces) == 0 {
		return nil, nil
	}

	entries, err := s.repo.Leaderboard(ctx, scope.OrgID, workspaces)
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}

	for i := range entries {
		if entries[i].ProducerID == nil || entries[i].DisplayName == "" {
			entries[i].DisplayName = UnassignedName
		}
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := b.Commission.Cmp(a.Commission); c != 0 {
			return c
		}

		return cmp.Compare(a.DisplayName, b.DisplayName)
	})

	return entries, nil
}
