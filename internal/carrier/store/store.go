package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/commissions/internal/carrier"
)

// upsertAttempts bounds the insert-then-select loop. A miss on the select means the
// conflicting row vanished between the two statements.
const upsertAttempts = 3

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// UpsertCarrier returns the org's carrier with this name, creating it when missing.
// Concurrent callers converge on one row through the unique index on (org_id, lower(name)).
func (s *Store) UpsertCarrier(ctx context.Context, orgID int64, name string) (*carrier.Carrier, error) {
	name = carrier.NormalizeName(name)

	insert := `
		INSERT INTO carriers (org_id, name, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (org_id, (lower(name))) DO NOTHING
		RETURNING id, org_id, name, download_type, created_at
	`

	for range upsertAttempts {
		c, err := scanCarrier(s.db.QueryRowContext(ctx, insert, orgID, name))
		if err == nil {
			return c, nil
		}

		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("inserting carrier: %w", err)
		}

		c, err = s.FindCarrier(ctx, orgID, name)
		if err == nil {
			return c, nil
		}

		if !errors.Is(err, carrier.ErrNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("upserting carrier %q: gave up after %d attempts", name, upsertAttempts)
}

// FindCarrier looks a carrier up by case-insensitive name.
func (s *Store) FindCarrier(ctx context.Context, orgID int64, name string) (*carrier.Carrier, error) {
	query := `
		SELECT id, org_id, name, download_type, created_at
		FROM carriers
		WHERE org_id = $1 AND lower(name) = lower($2)
	`

	c, err := scanCarrier(s.db.QueryRowContext(ctx, query, orgID, carrier.NormalizeName(name)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, carrier.ErrNotFound
		}

		return nil, fmt.Errorf("finding carrier: %w", err)
	}

	return c, nil
}

func (s *Store) ListCarriers(ctx context.Context, orgID int64) ([]*carrier.Carrier, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, org_id, name, download_type, created_at
		FROM carriers
		WHERE org_id = $1
		ORDER BY name ASC
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing carriers: %w", err)
	}
	defer rows.Close()

	var carriers []*carrier.Carrier

	for rows.Next() {
		c, err := scanCarrier(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning carrier: %w", err)
		}

		carriers = append(carriers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating carriers: %w", err)
	}

	return carriers, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCarrier(s scanner) (*carrier.Carrier, error) {
	var c carrier.Carrier
	if err := s.Scan(&c.ID, &c.OrgID, &c.Name, &c.DownloadType, &c.CreatedAt); err != nil {
		return nil, err
	}

	return &c, nil
}
