package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/commissions/internal/commission"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
)

type transactionResponse struct {
	ID                int64                      `json:"id"`
	WorkspaceID       *int64                     `json:"workspace_id"`
	BatchID           *int64                     `json:"batch_id,omitempty"`
	CarrierID         *int64                     `json:"carrier_id,omitempty"`
	ProducerID        *int64                     `json:"producer_id"`
	PolicyNumber      *string                    `json:"policy_number"`
	Customer          *string                    `json:"customer"`
	CarrierName       *string                    `json:"carrier_name"`
	ProductType       *string                    `json:"product_type"`
	Category          string                     `json:"category"`
	TxnDate           string                     `json:"txn_date"`
	Premium           decimal.NullDecimal        `json:"premium"`
	Commission        decimal.NullDecimal        `json:"commission"`
	Basis             commission.Basis           `json:"basis,omitempty"`
	SplitPct          decimal.NullDecimal        `json:"split_pct"`
	Amount            decimal.NullDecimal        `json:"amount"`
	Source            transaction.Source         `json:"source"`
	Status            transaction.Status         `json:"status"`
	Notes             *string                    `json:"notes,omitempty"`
	ManualAmount      decimal.NullDecimal        `json:"manual_amount"`
	ManualSplitPct    decimal.NullDecimal        `json:"manual_split_pct"`
	OverrideSource    transaction.OverrideSource `json:"override_source,omitempty"`
	OverrideAppliedAt *time.Time                 `json:"override_applied_at,omitempty"`
	OverrideAppliedBy *int64                     `json:"override_applied_by,omitempty"`
	CreatedAt         time.Time                  `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:                tx.ID,
		WorkspaceID:       tx.WorkspaceID,
		BatchID:           tx.BatchID,
		CarrierID:         tx.CarrierID,
		ProducerID:        tx.ProducerID,
		PolicyNumber:      tx.PolicyNumber,
		Customer:          tx.Customer,
		CarrierName:       tx.CarrierName,
		ProductType:       tx.ProductType,
		Category:          tx.Category,
		TxnDate:           tx.TxnDate.Format(time.DateOnly),
		Premium:           tx.Premium,
		Commission:        tx.Commission,
		Basis:             tx.Basis,
		SplitPct:          tx.SplitPct,
		Amount:            tx.Amount,
		Source:            tx.Source,
		Status:            tx.Status,
		Notes:             tx.Notes,
		ManualAmount:      tx.ManualAmount,
		ManualSplitPct:    tx.ManualSplitPct,
		OverrideSource:    tx.OverrideSource,
		OverrideAppliedAt: tx.OverrideAppliedAt,
		OverrideAppliedBy: tx.OverrideAppliedBy,
		CreatedAt:         tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type overrideResponse struct {
	ID         int64                    `json:"id"`
	Type       transaction.OverrideType `json:"override_type"`
	FlatAmount decimal.NullDecimal      `json:"flat_amount"`
	Percent    decimal.NullDecimal      `json:"percent"`
	SplitPct   decimal.NullDecimal      `json:"split_pct"`
	AppliedBy  int64                    `json:"applied_by"`
	AppliedAt  time.Time                `json:"applied_at"`
	Notes      *string                  `json:"notes,omitempty"`
}

func toOverrideList(overrides []*transaction.Override) []overrideResponse {
	resp := make([]overrideResponse, len(overrides))

	for i, o := range overrides {
		resp[i] = overrideResponse{
			ID:         o.ID,
			Type:       o.Type,
			FlatAmount: o.FlatAmount,
			Percent:    o.Percent,
			SplitPct:   o.SplitPct,
			AppliedBy:  o.AppliedBy,
			AppliedAt:  o.AppliedAt,
			Notes:      o.Notes,
		}
	}

	return resp
}
