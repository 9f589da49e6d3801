package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/commissions/internal/override"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
	txStore "github.com/MrJamesThe3rd/commissions/internal/transaction/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type overrideTx struct {
	tx *sql.Tx
}

func (s *Store) BeginOverride(ctx context.Context) (override.OverrideTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning override tx: %w", err)
	}

	return &overrideTx{tx: dbTx}, nil
}

func (otx *overrideTx) Commit() error   { return otx.tx.Commit() }
func (otx *overrideTx) Rollback() error { return otx.tx.Rollback() }

// LockTransactions locks rows in id order so concurrent overrides on overlapping sets
// cannot deadlock.
func (otx *overrideTx) LockTransactions(ctx context.Context, orgID int64, ids []int64) ([]*transaction.Transaction, error) {
	query := `SELECT ` + txStore.Columns + `
		FROM commission_txns t
		WHERE t.org_id = $1 AND t.id = ANY($2)
		ORDER BY t.id
		FOR UPDATE`

	rows, err := otx.tx.QueryContext(ctx, query, orgID, ids)
	if err != nil {
		return nil, fmt.Errorf("selecting transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := txStore.ScanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

func (otx *overrideTx) LockTransaction(ctx context.Context, orgID, id int64) (*transaction.Transaction, error) {
	query := `SELECT ` + txStore.Columns + `
		FROM commission_txns t
		WHERE t.org_id = $1 AND t.id = $2
		FOR UPDATE`

	tx, err := txStore.ScanTransaction(otx.tx.QueryRowContext(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("selecting transaction: %w", err)
	}

	return tx, nil
}

func (otx *overrideTx) Persist(ctx context.Context, tx *transaction.Transaction, o *transaction.Override) error {
	if err := txStore.UpdateOverrideState(ctx, otx.tx, tx); err != nil {
		return err
	}

	if o == nil {
		return nil
	}

	return txStore.InsertOverride(ctx, otx.tx, o)
}
