package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/commissions/internal/category"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint breach.
const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (s *Store) ListTags(ctx context.Context, orgID int64, kind *category.Kind) ([]*category.Tag, error) {
	query := `
		SELECT id, org_id, name, kind, is_default, created_at
		FROM category_tags
		WHERE org_id = $1`

	args := []any{orgID}

	if kind != nil {
		query += " AND kind = $2"

		args = append(args, *kind)
	}

	query += " ORDER BY kind ASC, name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var tags []*category.Tag

	for rows.Next() {
		var t category.Tag

		var kind string

		if err := rows.Scan(&t.ID, &t.OrgID, &t.Name, &kind, &t.IsDefault, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		t.Kind = category.Kind(kind)
		tags = append(tags, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return tags, nil
}

func (s *Store) GetTag(ctx context.Context, orgID, id int64) (*category.Tag, error) {
	query := `
		SELECT id, org_id, name, kind, is_default, created_at
		FROM category_tags
		WHERE org_id = $1 AND id = $2
	`

	var t category.Tag

	var kind string

	err := s.db.QueryRowContext(ctx, query, orgID, id).Scan(&t.ID, &t.OrgID, &t.Name, &kind, &t.IsDefault, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	t.Kind = category.Kind(kind)

	return &t, nil
}

func (s *Store) CreateTag(ctx context.Context, tag *category.Tag) error {
	query := `
		INSERT INTO category_tags (org_id, name, kind, is_default, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, tag.OrgID, tag.Name, tag.Kind, tag.IsDefault).Scan(&tag.ID, &tag.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return category.ErrDuplicate
		}

		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) UpdateTag(ctx context.Context, tag *category.Tag) error {
	query := `
		UPDATE category_tags
		SET name = $1, kind = $2
		WHERE org_id = $3 AND id = $4
	`

	res, err := s.db.ExecContext(ctx, query, tag.Name, tag.Kind, tag.OrgID, tag.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return category.ErrDuplicate
		}

		return fmt.Errorf("updating category: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return category.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTag(ctx context.Context, orgID, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM category_tags WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return category.ErrNotFound
	}

	return nil
}
