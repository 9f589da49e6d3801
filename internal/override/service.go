// Package override adjusts persisted commission transactions and keeps their audit log.
package override

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=override
type Repository interface {
	BeginOverride(ctx context.Context) (OverrideTx, error)
}

// OverrideTx holds row locks on the transactions it returns until Commit or Rollback.
type OverrideTx interface {
	LockTransactions(ctx context.Context, orgID int64, ids []int64) ([]*transaction.Transaction, error)
	LockTransaction(ctx context.Context, orgID, id int64) (*transaction.Transaction, error)
	// Persist writes the transaction's override state and, when o is not nil, appends o.
	Persist(ctx context.Context, tx *transaction.Transaction, o *transaction.Override) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

type Request struct {
	TransactionIDs []int64
	Mode           Mode
	Value          string
	Notes          *string
}

type Result struct {
	Applied int
}

// Apply runs a bulk override. Transactions outside the actor's scope are skipped and not
// counted; a request where every transaction is skipped succeeds with zero applied.
func (s *Service) Apply(ctx context.Context, scope access.Scope, req Request) (Result, error) {
	if !req.Mode.Valid() {
		return Result{}, ErrInvalidMode
	}

	value, err := parseDecimal(req.Value)
	if err != nil {
		return Result{}, err
	}

	if !value.Valid {
		return Result{}, ErrInvalidValue
	}

	if len(req.TransactionIDs) == 0 {
		return Result{}, ErrNoTransactions
	}

	otx, err := s.repo.BeginOverride(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("begin override: %w", err)
	}
	defer otx.Rollback()

	txs, err := otx.LockTransactions(ctx, scope.OrgID, req.TransactionIDs)
	if err != nil {
		return Result{}, fmt.Errorf("locking transactions: %w", err)
	}

	stamp := Stamp{OrgID: scope.OrgID, UserID: scope.UserID, At: s.now().UTC()}
	notes := trimmed(req.Notes)

	var res Result

	for _, tx := range txs {
		if !scope.Allows(tx.WorkspaceID) {
			continue
		}

		o := ApplyBulk(tx, req.Mode, value.Decimal, notes, stamp)
		if err := otx.Persist(ctx, tx, o); err != nil {
			return Result{}, fmt.Errorf("persisting override for transaction %d: %w", tx.ID, err)
		}

		res.Applied++
	}

	if err := otx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit override: %w", err)
	}

	s.logger.Info("applied override",
		"mode", req.Mode,
		"requested", len(req.TransactionIDs),
		"applied", res.Applied,
		"user_id", scope.UserID,
	)

	return res, nil
}

// EditRequest is a manual edit of one transaction. Blank strings mean "not given".
type EditRequest struct {
	ID           int64
	ManualAmount *string
	ClearAmount  bool
	ManualSplit  *string
	ClearSplit   bool
	Status       *string
	Notes        *string
}

// Edit sets or clears a transaction's manual amount and split. Both values are parsed
// before anything is locked, so a bad value changes nothing.
func (s *Service) Edit(ctx context.Context, scope access.Scope, req EditRequest) (*transaction.Transaction, error) {
	edit, err := parseEdit(req)
	if err != nil {
		return nil, err
	}

	otx, err := s.repo.BeginOverride(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin override: %w", err)
	}
	defer otx.Rollback()

	tx, err := otx.LockTransaction(ctx, scope.OrgID, req.ID)
	if err != nil {
		return nil, err
	}

	if !scope.Allows(tx.WorkspaceID) {
		return nil, access.ErrForbidden
	}

	o := ApplyEdit(tx, edit, Stamp{OrgID: scope.OrgID, UserID: scope.UserID, At: s.now().UTC()})
	if err := otx.Persist(ctx, tx, o); err != nil {
		return nil, fmt.Errorf("persisting edit: %w", err)
	}

	if err := otx.Commit(); err != nil {
		return nil, fmt.Errorf("commit edit: %w", err)
	}

	return tx, nil
}

func parseEdit(req EditRequest) (Edit, error) {
	amount, err := parseDecimal(deref(req.ManualAmount))
	if err != nil {
		return Edit{}, fmt.Errorf("manual amount: %w", err)
	}

	split, err := parseDecimal(deref(req.ManualSplit))
	if err != nil {
		return Edit{}, fmt.Errorf("manual split: %w", err)
	}

	edit := Edit{
		Amount:      amount,
		ClearAmount: req.ClearAmount,
		Split:       split,
		ClearSplit:  req.ClearSplit,
		Notes:       trimmed(req.Notes),
	}

	if status := trimmed(req.Status); status != nil {
		edit.Status = new(transaction.Status(*status))
	}

	return edit, nil
}

// parseDecimal reads a strict decimal string. Blank yields an invalid NullDecimal and no
// error; currency decoration is rejected.
func parseDecimal(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}

	return decimal.NewNullDecimal(d), nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
