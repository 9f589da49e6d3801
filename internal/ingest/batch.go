package ingest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/commissions/internal/statement"
)

type BatchStatus string

const (
	StatusUploaded BatchStatus = "uploaded"
	StatusImported BatchStatus = "imported"
)

// Batch is one carrier's share of an upload. It belongs to exactly one carrier and one
// workspace.
type Batch struct {
	ID          int64
	OrgID       int64
	CarrierID   int64
	WorkspaceID int64
	PeriodMonth string
	SourceType  statement.Format
	Status      BatchStatus
	CreatedBy   int64
	FilePath    *string
	CreatedAt   time.Time
}

// Row is a stored statement record. Raw is kept exactly as decoded.
type Row struct {
	ID         int64
	BatchID    int64
	Line       int
	Raw        map[string]string
	Normalized statement.Normalized
}

// Summary reports what one carrier group produced.
type Summary struct {
	Carrier      string          `json:"carrier"`
	BatchID      int64           `json:"batch_id"`
	Rows         int             `json:"rows"`
	Transactions int             `json:"transactions"`
	Premium      decimal.Decimal `json:"premium"`
	Commission   decimal.Decimal `json:"commission"`
}
