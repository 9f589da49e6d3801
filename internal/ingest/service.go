// Package ingest turns an uploaded carrier statement into import batches, raw rows and
// provisional commission transactions.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/carrier"
	"github.com/MrJamesThe3rd/commissions/internal/producer"
	"github.com/MrJamesThe3rd/commissions/internal/statement"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ingest
type Repository interface {
	UpsertCarrier(ctx context.Context, orgID int64, name string) (*carrier.Carrier, error)
	BeginImport(ctx context.Context, orgID, carrierID int64) (ImportTx, error)
}

// ImportTx writes one carrier batch atomically.
type ImportTx interface {
	CreateBatch(ctx context.Context, batch *Batch) error
	CreateRows(ctx context.Context, rows []*Row) error
	CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error
	MarkImported(ctx context.Context, batchID int64) error
	Commit() error
	Rollback() error
}

type Roster interface {
	Roster(ctx context.Context, orgID, workspaceID int64) ([]*producer.Producer, error)
}

// Mappings returns org-defined column aliases for a carrier.
type Mappings interface {
	Suggest(ctx context.Context, orgID, carrierID int64) (map[statement.Field][]string, error)
}

type FileStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// Notifier receives the per-carrier summary once an upload completes.
type Notifier interface {
	Notify(ctx context.Context, scope access.Scope, summaries []Summary) error
}

type Service struct {
	repo     Repository
	roster   Roster
	mappings Mappings
	files    FileStore
	notifier Notifier
	resolver *statement.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(
	repo Repository,
	roster Roster,
	mappings Mappings,
	files FileStore,
	notifier Notifier,
	resolver *statement.Resolver,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		roster:   roster,
		mappings: mappings,
		files:    files,
		notifier: notifier,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

type UploadParams struct {
	Scope       access.Scope
	WorkspaceID *int64
	Filename    string
	Data        []byte
}

// Upload imports a statement. The file is parsed and checked before anything is written, so
// a structural problem such as a missing carrier column leaves no trace. Each carrier group
// is then committed in its own transaction, in the order the carrier first appears.
func (s *Service) Upload(ctx context.Context, params UploadParams) ([]Summary, error) {
	stmt, err := statement.Read(params.Data, params.Filename)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	workspaceID, ok := params.Scope.UploadWorkspace(params.WorkspaceID)
	if !ok {
		return nil, ErrWorkspaceNotAllowed
	}

	if len(stmt.Rows) == 0 {
		return nil, nil
	}

	var filePath *string

	if s.files != nil {
		p, err := s.files.Save(ctx, params.Filename, params.Data)
		if err != nil {
			return nil, fmt.Errorf("archiving statement: %w", err)
		}

		filePath = &p
	}

	roster, err := s.roster.Roster(ctx, params.Scope.OrgID, workspaceID)
	if err != nil {
		return nil, err
	}

	job := importJob{
		scope:       params.Scope,
		workspaceID: workspaceID,
		format:      stmt.Format,
		filePath:    filePath,
		roster:      roster,
		now:         s.now(),
	}

	var summaries []Summary

	for _, group := range stmt.GroupByCarrier() {
		summary, err := s.importGroup(ctx, job, group)
		if err != nil {
			return summaries, fmt.Errorf("importing %s: %w", group.Carrier, err)
		}

		summaries = append(summaries, summary)
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, params.Scope, summaries); err != nil {
			s.logger.Error("failed to send upload summary", "error", err)
		}
	}

	return summaries, nil
}

type importJob struct {
	scope       access.Scope
	workspaceID int64
	format      statement.Format
	filePath    *string
	roster      []*producer.Producer
	now         time.Time
}

func (s *Service) importGroup(ctx context.Context, job importJob, group statement.Group) (Summary, error) {
	orgID := job.scope.OrgID

	c, err := s.repo.UpsertCarrier(ctx, orgID, group.Carrier)
	if err != nil {
		return Summary{}, fmt.Errorf("resolving carrier: %w", err)
	}

	resolver := s.resolver

	if s.mappings != nil {
		columns, err := s.mappings.Suggest(ctx, orgID, c.ID)
		if err != nil {
			return Summary{}, fmt.Errorf("loading carrier mapping: %w", err)
		}

		resolver = resolver.With(columns)
	}

	itx, err := s.repo.BeginImport(ctx, orgID, c.ID)
	if err != nil {
		return Summary{}, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	batch := &Batch{
		OrgID:       orgID,
		CarrierID:   c.ID,
		WorkspaceID: job.workspaceID,
		PeriodMonth: statement.InferPeriod(group.Rows, job.now).Format(statement.PeriodLayout),
		SourceType:  job.format,
		Status:      StatusUploaded,
		CreatedBy:   job.scope.UserID,
		FilePath:    job.filePath,
	}
	if err := itx.CreateBatch(ctx, batch); err != nil {
		return Summary{}, fmt.Errorf("create batch: %w", err)
	}

	rows := normalizeRows(resolver, batch.ID, group.Rows)
	if err := itx.CreateRows(ctx, rows); err != nil {
		return Summary{}, fmt.Errorf("create rows: %w", err)
	}

	txs := buildTransactions(resolver, batch, c, group.Rows, rows, job)
	if len(txs) > 0 {
		if err := itx.CreateTransactions(ctx, txs); err != nil {
			return Summary{}, fmt.Errorf("create transactions: %w", err)
		}
	}

	if err := itx.MarkImported(ctx, batch.ID); err != nil {
		return Summary{}, fmt.Errorf("mark imported: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return Summary{}, fmt.Errorf("commit import: %w", err)
	}

	batch.Status = StatusImported

	summary := summarize(group.Carrier, batch.ID, len(rows), txs)

	s.logger.Info("imported statement batch",
		"batch_id", batch.ID,
		"carrier", group.Carrier,
		"rows", summary.Rows,
		"transactions", summary.Transactions,
	)

	return summary, nil
}
