package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/commissions/internal/commission"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Scanner is satisfied by both *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Columns is the select list ScanTransaction expects.
const Columns = `
	t.id, t.org_id, t.workspace_id, t.batch_id, t.carrier_id, t.producer_id, t.created_by,
	t.policy_number, t.customer, t.carrier_name, t.product_type, t.category,
	t.txn_date, t.premium, t.commission, t.basis, t.split_pct, t.amount,
	t.source, t.status, t.notes,
	t.manual_amount, t.manual_split_pct, t.override_source, t.override_applied_at, t.override_applied_by,
	t.created_at, t.updated_at
`

// ScanTransaction reads a row selected with Columns.
func ScanTransaction(s Scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var basis, source, status, overrideSource sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.OrgID, &tx.WorkspaceID, &tx.BatchID, &tx.CarrierID, &tx.ProducerID, &tx.CreatedBy,
		&tx.PolicyNumber, &tx.Customer, &tx.CarrierName, &tx.ProductType, &tx.Category,
		&tx.TxnDate, &tx.Premium, &tx.Commission, &basis, &tx.SplitPct, &tx.Amount,
		&source, &status, &tx.Notes,
		&tx.ManualAmount, &tx.ManualSplitPct, &overrideSource, &tx.OverrideAppliedAt, &tx.OverrideAppliedBy,
		&tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Basis = commission.Basis(basis.String)
	tx.Source = transaction.Source(source.String)
	tx.Status = transaction.Status(status.String)
	tx.OverrideSource = transaction.OverrideSource(overrideSource.String)

	return &tx, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// InsertTransaction writes tx and fills its id and timestamps.
func InsertTransaction(ctx context.Context, q Querier, tx *transaction.Transaction) error {
	query := `
		INSERT INTO commission_txns (
			org_id, workspace_id, batch_id, carrier_id, producer_id, created_by,
			policy_number, customer, carrier_name, product_type, category,
			txn_date, premium, commission, basis, split_pct, amount,
			source, status, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRowContext(ctx, query,
		tx.OrgID, tx.WorkspaceID, tx.BatchID, tx.CarrierID, tx.ProducerID, tx.CreatedBy,
		tx.PolicyNumber, tx.Customer, tx.CarrierName, tx.ProductType, tx.Category,
		tx.TxnDate, tx.Premium, tx.Commission, nullString(string(tx.Basis)), tx.SplitPct, tx.Amount,
		tx.Source, tx.Status, tx.Notes,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

// UpdateOverrideState writes the fields the override engine owns.
func UpdateOverrideState(ctx context.Context, q Querier, tx *transaction.Transaction) error {
	query := `
		UPDATE commission_txns
		SET amount = $1, split_pct = $2, status = $3,
			manual_amount = $4, manual_split_pct = $5,
			override_source = $6, override_applied_at = $7, override_applied_by = $8,
			updated_at = NOW()
		WHERE id = $9 AND org_id = $10
		RETURNING updated_at
	`

	err := q.QueryRowContext(ctx, query,
		tx.Amount, tx.SplitPct, tx.Status,
		tx.ManualAmount, tx.ManualSplitPct,
		nullString(string(tx.OverrideSource)), tx.OverrideAppliedAt, tx.OverrideAppliedBy,
		tx.ID, tx.OrgID,
	).Scan(&tx.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return transaction.ErrNotFound
		}

		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

// InsertOverride appends one audit entry and fills its id.
func InsertOverride(ctx context.Context, q Querier, o *transaction.Override) error {
	query := `
		INSERT INTO commission_overrides (
			org_id, transaction_id, override_type, flat_amount, percent, split_pct, applied_by, applied_at, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := q.QueryRowContext(ctx, query,
		o.OrgID, o.TransactionID, o.Type, o.FlatAmount, o.Percent, o.SplitPct, o.AppliedBy, o.AppliedAt, o.Notes,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("creating override: %w", err)
	}

	return nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return InsertTransaction(ctx, s.db, tx)
}

func (s *Store) GetTransaction(ctx context.Context, orgID, id int64) (*transaction.Transaction, error) {
	query := `SELECT ` + Columns + `
		FROM commission_txns t
		WHERE t.org_id = $1 AND t.id = $2`

	tx, err := ScanTransaction(s.db.QueryRowContext(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + Columns + `
		FROM commission_txns t
		WHERE t.org_id = $1`

	args := []any{filter.OrgID}

	argIdx := 2

	if filter.WorkspaceIDs != nil {
		query += fmt.Sprintf(" AND t.workspace_id = ANY($%d)", argIdx)

		args = append(args, filter.WorkspaceIDs)
		argIdx++
	}

	if filter.ProducerID != nil {
		query += fmt.Sprintf(" AND t.producer_id = $%d", argIdx)

		args = append(args, *filter.ProducerID)
		argIdx++
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND lower(t.category) = lower($%d)", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.ProductType != nil {
		query += fmt.Sprintf(" AND lower(t.product_type) = lower($%d)", argIdx)

		args = append(args, *filter.ProductType)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND lower(t.status) = lower($%d)", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.txn_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.txn_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY t.txn_date DESC, t.id DESC LIMIT $%d", argIdx)

	args = append(args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := ScanTransaction(rows)
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

func (s *Store) ListOverrides(ctx context.Context, orgID, transactionID int64) ([]*transaction.Override, error) {
	query := `
		SELECT id, org_id, transaction_id, override_type, flat_amount, percent, split_pct, applied_by, applied_at, notes
		FROM commission_overrides
		WHERE org_id = $1 AND transaction_id = $2
		ORDER BY applied_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, orgID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}
	defer rows.Close()

	var overrides []*transaction.Override

	for rows.Next() {
		var o transaction.Override

		var typ string

		if err := rows.Scan(
			&o.ID, &o.OrgID, &o.TransactionID, &typ, &o.FlatAmount, &o.Percent, &o.SplitPct,
			&o.AppliedBy, &o.AppliedAt, &o.Notes,
		); err != nil {
			return nil, fmt.Errorf("scanning override: %w", err)
		}

		o.Type = transaction.OverrideType(typ)
		overrides = append(overrides, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating overrides: %w", err)
	}

	return overrides, nil
}
