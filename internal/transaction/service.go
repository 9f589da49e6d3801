package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/commission"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, orgID, id int64) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	ListOverrides(ctx context.Context, orgID, transactionID int64) ([]*Override, error)
}

// Categories coerces a manually entered category onto the org's allow-list.
type Categories interface {
	Coerce(ctx context.Context, orgID int64, value string) (string, error)
}

type Service struct {
	repo       Repository
	categories Categories
	now        func() time.Time
}

func NewService(repo Repository, categories Categories) *Service {
	return &Service{repo: repo, categories: categories, now: time.Now}
}

type CreateParams struct {
	WorkspaceID  *int64
	ProducerID   *int64
	CarrierID    *int64
	CarrierName  *string
	PolicyNumber *string
	Customer     *string
	ProductType  *string
	Category     string
	TxnDate      *time.Time
	Premium      decimal.NullDecimal
	Commission   decimal.NullDecimal
	SplitPct     decimal.NullDecimal
	Amount       decimal.NullDecimal
	Status       Status
	Notes        *string
}

// ListFilter narrows a listing. WorkspaceIDs nil means every workspace; an empty slice
// matches nothing.
type ListFilter struct {
	OrgID        int64
	WorkspaceIDs []int64
	ProducerID   *int64
	Category     *string
	ProductType  *string
	Status       *Status
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
}

// DefaultListLimit caps listings that do not set their own limit.
const DefaultListLimit = 500

// Create records a manual transaction. The category is coerced to the org's allow-list and
// a payable amount is derived from commission and split when none is given.
func (s *Service) Create(ctx context.Context, scope access.Scope, params CreateParams) (*Transaction, error) {
	if !scope.Allows(params.WorkspaceID) {
		return nil, access.ErrForbidden
	}

	category, err := s.categories.Coerce(ctx, scope.OrgID, params.Category)
	if err != nil {
		return nil, fmt.Errorf("resolving category: %w", err)
	}

	calc := commission.Calculate(commission.Input{
		Premium:        params.Premium,
		Commission:     params.Commission,
		Split:          params.SplitPct,
		ProducerAmount: params.Amount,
	})

	status := params.Status
	if status == "" {
		status = StatusProvisional
	}

	txnDate := s.now().UTC().Truncate(24 * time.Hour)
	if params.TxnDate != nil {
		txnDate = *params.TxnDate
	}

	tx := &Transaction{
		OrgID:        scope.OrgID,
		WorkspaceID:  params.WorkspaceID,
		CarrierID:    params.CarrierID,
		ProducerID:   params.ProducerID,
		CreatedBy:    &scope.UserID,
		PolicyNumber: params.PolicyNumber,
		Customer:     params.Customer,
		CarrierName:  params.CarrierName,
		ProductType:  params.ProductType,
		Category:     category,
		TxnDate:      txnDate,
		Premium:      calc.Premium,
		Commission:   calc.Commission,
		Basis:        calc.Basis,
		SplitPct:     calc.Split,
		Amount:       calc.Amount,
		Source:       SourceManual,
		Status:       status,
		Notes:        params.Notes,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// List returns transactions visible to the actor, newest first.
func (s *Service) List(ctx context.Context, scope access.Scope, filter ListFilter) ([]*Transaction, error) {
	filter.OrgID = scope.OrgID
	filter.WorkspaceIDs = scope.Workspaces()

	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}

	if filter.WorkspaceIDs != nil && len(filter.WorkspaceIDs) == 0 {
		return nil, nil
	}

	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Get(ctx context.Context, scope access.Scope, id int64) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, scope.OrgID, id)
	if err != nil {
		return nil, err
	}

	if !scope.Allows(tx.WorkspaceID) {
		return nil, access.ErrForbidden
	}

	return tx, nil
}

// History returns the override log of a transaction, newest first. The first entry is the
// one the transaction's current figures reflect.
func (s *Service) History(ctx context.Context, scope access.Scope, id int64) ([]*Override, error) {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return nil, err
	}

	overrides, err := s.repo.ListOverrides(ctx, scope.OrgID, id)
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}

	return overrides, nil
}
