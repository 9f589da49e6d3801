package category

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	ListTags(ctx context.Context, orgID int64, kind *Kind) ([]*Tag, error)
	GetTag(ctx context.Context, orgID, id int64) (*Tag, error)
	CreateTag(ctx context.Context, tag *Tag) error
	UpdateTag(ctx context.Context, tag *Tag) error
	DeleteTag(ctx context.Context, orgID, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, orgID int64) ([]*Tag, error) {
	return s.repo.ListTags(ctx, orgID, nil)
}

// Create adds a tag. Kind defaults to status.
func (s *Service) Create(ctx context.Context, orgID int64, name string, kind Kind) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	if kind == "" {
		kind = KindStatus
	}

	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	tag := &Tag{OrgID: orgID, Name: name, Kind: kind}
	if err := s.repo.CreateTag(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

// Update renames a tag, keeping its kind when none is given.
func (s *Service) Update(ctx context.Context, orgID, id int64, name string, kind Kind) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	tag, err := s.repo.GetTag(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if kind != "" {
		if !kind.Valid() {
			return nil, ErrInvalidKind
		}

		tag.Kind = kind
	}

	tag.Name = name

	if err := s.repo.UpdateTag(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *Service) Delete(ctx context.Context, orgID, id int64) error {
	return s.repo.DeleteTag(ctx, orgID, id)
}

// Coerce maps a manually entered value onto the org's status tags, case-insensitively.
// Anything else becomes Fallback.
func (s *Service) Coerce(ctx context.Context, orgID int64, value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Fallback, nil
	}

	kind := KindStatus

	tags, err := s.repo.ListTags(ctx, orgID, &kind)
	if err != nil {
		return "", fmt.Errorf("listing status categories: %w", err)
	}

	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t.Name), v) {
			return strings.ToLower(strings.TrimSpace(t.Name)), nil
		}
	}

	return Fallback, nil
}
