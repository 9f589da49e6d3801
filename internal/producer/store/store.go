package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/commissions/internal/producer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListProducers(ctx context.Context, orgID int64, workspaceID *int64) ([]*producer.Producer, error) {
	query := `
		SELECT p.id, p.org_id, p.workspace_id, p.user_id, p.display_name, COALESCE(u.email, ''), p.default_split
		FROM producers p
		LEFT JOIN users u ON u.id = p.user_id
		WHERE p.org_id = $1`

	args := []any{orgID}

	if workspaceID != nil {
		query += " AND p.workspace_id = $2"

		args = append(args, *workspaceID)
	}

	query += " ORDER BY p.display_name ASC, p.id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing producers: %w", err)
	}
	defer rows.Close()

	var producers []*producer.Producer

	for rows.Next() {
		var p producer.Producer

		var userID sql.NullInt64

		if err := rows.Scan(&p.ID, &p.OrgID, &p.WorkspaceID, &userID, &p.DisplayName, &p.Email, &p.DefaultSplit); err != nil {
			return nil, fmt.Errorf("scanning producer: %w", err)
		}

		if userID.Valid {
			p.UserID = &userID.Int64
		}

		producers = append(producers, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating producers: %w", err)
	}

	return producers, nil
}
