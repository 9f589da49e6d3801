package override

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/commissions/internal/commission"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
)

// Mode is a bulk override kind.
type Mode string

const (
	ModeFlat    Mode = "flat"
	ModePercent Mode = "percent"
	ModeSplit   Mode = "split"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeFlat, ModePercent, ModeSplit:
		return true
	}

	return false
}

// Stamp identifies who applied an adjustment and when.
type Stamp struct {
	OrgID  int64
	UserID int64
	At     time.Time
}

// base is the figure percent and split overrides scale: premium, then amount, then
// commission, whichever is set first.
func base(tx *transaction.Transaction) (decimal.Decimal, bool) {
	for _, v := range []decimal.NullDecimal{tx.Premium, tx.Amount, tx.Commission} {
		if v.Valid {
			return v.Decimal, true
		}
	}

	return decimal.Decimal{}, false
}

// ApplyBulk projects one bulk override onto tx and returns the audit entry recording it.
// The caller persists both together.
func ApplyBulk(tx *transaction.Transaction, mode Mode, value decimal.Decimal, notes *string, stamp Stamp) *transaction.Override {
	o := newOverride(tx, stamp, notes)

	switch mode {
	case ModeFlat:
		o.Type = transaction.OverrideTypeFlat
		o.FlatAmount = decimal.NewNullDecimal(value)

		tx.Amount = decimal.NewNullDecimal(value)
		tx.ManualAmount = tx.Amount
		tx.OverrideSource = transaction.OverrideFlat
	case ModePercent:
		o.Type = transaction.OverrideTypePercent
		o.Percent = decimal.NewNullDecimal(value)

		if b, ok := base(tx); ok {
			tx.Amount = commission.ApplyPercent(b, value)
			tx.ManualAmount = tx.Amount
		}

		tx.OverrideSource = transaction.OverridePercent
	case ModeSplit:
		o.Type = transaction.OverrideTypeSplit
		o.SplitPct = decimal.NewNullDecimal(value)

		if b, ok := base(tx); ok {
			tx.Amount = commission.ApplyPercent(b, value)
			tx.ManualAmount = tx.Amount
		}

		tx.SplitPct = decimal.NewNullDecimal(value)
		tx.ManualSplitPct = tx.SplitPct
		tx.OverrideSource = transaction.OverrideSplit
	}

	stampTransaction(tx, stamp)

	return o
}

// Edit is a parsed manual edit of a single transaction. Invalid decimals mean "not given".
type Edit struct {
	Amount      decimal.NullDecimal
	ClearAmount bool
	Split       decimal.NullDecimal
	ClearSplit  bool
	Status      *transaction.Status
	Notes       *string
}

// ApplyEdit projects a manual edit onto tx. It returns nil when the edit carries no amount,
// split or note, in which case nothing is appended to the log.
func ApplyEdit(tx *transaction.Transaction, edit Edit, stamp Stamp) *transaction.Override {
	switch {
	case edit.Amount.Valid:
		tx.Amount = edit.Amount
		tx.ManualAmount = edit.Amount
		tx.OverrideSource = transaction.OverrideEdit
	case edit.ClearAmount:
		tx.ManualAmount = decimal.NullDecimal{}

		// A source set by a bulk override survives clearing the manual figure.
		if tx.OverrideSource == transaction.OverrideEdit {
			tx.OverrideSource = transaction.OverrideNone
		}
	}

	switch {
	case edit.Split.Valid:
		tx.SplitPct = edit.Split
		tx.ManualSplitPct = edit.Split

		if tx.OverrideSource == transaction.OverrideNone {
			tx.OverrideSource = transaction.OverrideEdit
		}
	case edit.ClearSplit:
		tx.ManualSplitPct = decimal.NullDecimal{}
	}

	if edit.Status != nil {
		tx.Status = *edit.Status
	}

	stampTransaction(tx, stamp)

	if !edit.Amount.Valid && !edit.Split.Valid && edit.Notes == nil {
		return nil
	}

	o := newOverride(tx, stamp, edit.Notes)
	o.Type = transaction.OverrideTypeManualEdit
	o.FlatAmount = edit.Amount
	o.SplitPct = edit.Split

	return o
}

func newOverride(tx *transaction.Transaction, stamp Stamp, notes *string) *transaction.Override {
	return &transaction.Override{
		OrgID:         stamp.OrgID,
		TransactionID: tx.ID,
		AppliedBy:     stamp.UserID,
		AppliedAt:     stamp.At,
		Notes:         notes,
	}
}

func stampTransaction(tx *transaction.Transaction, stamp Stamp) {
	at := stamp.At
	by := stamp.UserID

	tx.OverrideAppliedAt = &at
	tx.OverrideAppliedBy = &by
}
