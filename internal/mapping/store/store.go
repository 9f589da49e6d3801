package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/commissions/internal/carrier"
	"github.com/MrJamesThe3rd/commissions/internal/statement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindMapping(ctx context.Context, orgID, carrierID int64) (map[statement.Field][]string, error) {
	query := `
		SELECT column_map
		FROM carrier_mappings
		WHERE org_id = $1 AND carrier_id = $2
	`

	var raw []byte

	err := s.db.QueryRowContext(ctx, query, orgID, carrierID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("finding mapping: %w", err)
	}

	var columns map[statement.Field][]string
	if err := json.Unmarshal(raw, &columns); err != nil {
		return nil, fmt.Errorf("decoding mapping: %w", err)
	}

	return columns, nil
}

func (s *Store) SaveMapping(ctx context.Context, orgID, carrierID int64, columns map[statement.Field][]string) error {
	raw, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("encoding mapping: %w", err)
	}

	query := `
		INSERT INTO carrier_mappings (org_id, carrier_id, column_map, created_at, updated_at)
		SELECT $1, c.id, $3, NOW(), NOW()
		FROM carriers c
		WHERE c.org_id = $1 AND c.id = $2
		ON CONFLICT (org_id, carrier_id) DO UPDATE SET column_map = EXCLUDED.column_map, updated_at = NOW()
	`

	res, err := s.db.ExecContext(ctx, query, orgID, carrierID, raw)
	if err != nil {
		return fmt.Errorf("saving mapping: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return carrier.ErrNotFound
	}

	return nil
}
