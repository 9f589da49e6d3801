package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/commissions/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Leaderboard(ctx context.Context, orgID int64, workspaceIDs []int64) ([]report.Entry, error) {
	query := `
		SELECT t.producer_id, COALESCE(p.display_name, ''), p.workspace_id,
			COALESCE(SUM(t.amount), 0), COALESCE(SUM(t.premium), 0), COUNT(t.id)
		FROM commission_txns t
		LEFT JOIN producers p ON p.id = t.producer_id AND p.org_id = t.org_id
		WHERE t.org_id = $1`

	args := []any{orgID}

	if workspaceIDs != nil {
		query += " AND t.workspace_id = ANY($2)"

		args = append(args, workspaceIDs)
	}

	query += " GROUP BY t.producer_id, p.display_name, p.workspace_id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []report.Entry

	for rows.Next() {
		var e report.Entry

		if err := rows.Scan(&e.ProducerID, &e.DisplayName, &e.WorkspaceID, &e.Commission, &e.Premium, &e.Transactions); err != nil {
			return nil, fmt.Errorf("scanning leaderboard entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leaderboard: %w", err)
	}

	return entries, nil
}
