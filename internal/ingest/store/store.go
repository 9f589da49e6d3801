package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/MrJamesThe3rd/commissions/internal/carrier"
	carrierStore "github.com/MrJamesThe3rd/commissions/internal/carrier/store"
	"github.com/MrJamesThe3rd/commissions/internal/ingest"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
	txStore "github.com/MrJamesThe3rd/commissions/internal/transaction/store"
)

type Store struct {
	db       *sql.DB
	carriers *carrierStore.Store
}

func New(db *sql.DB) *Store {
	return &Store{db: db, carriers: carrierStore.New(db)}
}

// UpsertCarrier commits on its own so a carrier seen once exists even if its batch fails.
func (s *Store) UpsertCarrier(ctx context.Context, orgID int64, name string) (*carrier.Carrier, error) {
	return s.carriers.UpsertCarrier(ctx, orgID, name)
}

// importLockKey serializes concurrent imports into the same carrier.
func importLockKey(orgID, carrierID int64) int64 {
	h := fnv.New64a()
	h.Write([]byte("import"))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatInt(orgID, 10)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatInt(carrierID, 10)))

	return int64(h.Sum64())
}

type importTx struct {
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context, orgID, carrierID int64) (ingest.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", importLockKey(orgID, carrierID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) CreateBatch(ctx context.Context, b *ingest.Batch) error {
	query := `
		INSERT INTO import_batches (org_id, carrier_id, workspace_id, period_month, source_type, status, created_by, file_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := itx.tx.QueryRowContext(ctx, query,
		b.OrgID, b.CarrierID, b.WorkspaceID, b.PeriodMonth, b.SourceType, b.Status, b.CreatedBy, b.FilePath,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating batch: %w", err)
	}

	return nil
}

func (itx *importTx) CreateRows(ctx context.Context, rows []*ingest.Row) error {
	query := `
		INSERT INTO import_rows (batch_id, line, raw, normalized, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	for _, r := range rows {
		raw, err := json.Marshal(r.Raw)
		if err != nil {
			return fmt.Errorf("encoding raw row %d: %w", r.Line, err)
		}

		normalized, err := json.Marshal(r.Normalized)
		if err != nil {
			return fmt.Errorf("encoding normalized row %d: %w", r.Line, err)
		}

		if err := itx.tx.QueryRowContext(ctx, query, r.BatchID, r.Line, raw, normalized).Scan(&r.ID); err != nil {
			return fmt.Errorf("creating row %d: %w", r.Line, err)
		}
	}

	return nil
}

func (itx *importTx) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	for _, tx := range txs {
		if err := txStore.InsertTransaction(ctx, itx.tx, tx); err != nil {
			return err
		}
	}

	return nil
}

func (itx *importTx) MarkImported(ctx context.Context, batchID int64) error {
	_, err := itx.tx.ExecContext(ctx, `UPDATE import_batches SET status = $1 WHERE id = $2`, ingest.StatusImported, batchID)
	if err != nil {
		return fmt.Errorf("marking batch imported: %w", err)
	}

	return nil
}
