package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/commissions/internal/commission"
)

// Status is the lifecycle label of a transaction. Orgs may define their own via status
// category tags, so only the initial status is fixed.
type Status string

const StatusProvisional Status = "provisional"

// Source tells how a transaction came to exist.
type Source string

const (
	SourceImport Source = "import"
	SourceManual Source = "manual"
)

// OverrideSource is the override state of a transaction: which kind of adjustment produced
// its current amount. Empty means none.
type OverrideSource string

const (
	OverrideNone    OverrideSource = ""
	OverrideFlat    OverrideSource = "manual_flat"
	OverridePercent OverrideSource = "manual_percent"
	OverrideSplit   OverrideSource = "manual_split"
	OverrideEdit    OverrideSource = "manual_edit"
)

// OverrideType is the kind of a single audit entry.
type OverrideType string

const (
	OverrideTypeFlat       OverrideType = "flat"
	OverrideTypePercent    OverrideType = "percent"
	OverrideTypeSplit      OverrideType = "split"
	OverrideTypeManualEdit OverrideType = "manual_edit"
)

// Transaction is one computed payout line. Amount is the payable figure; the override
// fields cache the latest entry of the override log.
type Transaction struct {
	ID          int64
	OrgID       int64
	WorkspaceID *int64
	BatchID     *int64
	CarrierID   *int64
	ProducerID  *int64
	CreatedBy   *int64

	PolicyNumber *string
	Customer     *string
	CarrierName  *string
	ProductType  *string
	Category     string

	TxnDate    time.Time
	Premium    decimal.NullDecimal
	Commission decimal.NullDecimal
	Basis      commission.Basis
	SplitPct   decimal.NullDecimal
	Amount     decimal.NullDecimal

	Source Source
	Status Status
	Notes  *string

	ManualAmount      decimal.NullDecimal
	ManualSplitPct    decimal.NullDecimal
	OverrideSource    OverrideSource
	OverrideAppliedAt *time.Time
	OverrideAppliedBy *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Override is an append-only audit entry for one adjustment.
type Override struct {
	ID            int64
	OrgID         int64
	TransactionID int64
	Type          OverrideType
	FlatAmount    decimal.NullDecimal
	Percent       decimal.NullDecimal
	SplitPct      decimal.NullDecimal
	AppliedBy     int64
	AppliedAt     time.Time
	Notes         *string
}
