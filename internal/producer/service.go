package producer

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=producer
type Repository interface {
	ListProducers(ctx context.Context, orgID int64, workspaceID *int64) ([]*Producer, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Roster returns the producers of one workspace together with their linked user emails.
func (s *Service) Roster(ctx context.Context, orgID, workspaceID int64) ([]*Producer, error) {
	producers, err := s.repo.ListProducers(ctx, orgID, &workspaceID)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}

	return producers, nil
}

// List returns every producer in the org.
func (s *Service) List(ctx context.Context, orgID int64) ([]*Producer, error) {
	return s.repo.ListProducers(ctx, orgID, nil)
}
