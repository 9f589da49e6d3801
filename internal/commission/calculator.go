// Package commission derives payable amounts from normalized statement figures.
package commission

import (
	"github.com/shopspring/decimal"
)

// Basis records how a transaction's payable amount was derived.
type Basis string

const (
	BasisNone           Basis = ""
	BasisFlat           Basis = "flat"
	BasisRate           Basis = "rate"
	BasisSplit          Basis = "split"
	BasisProducerAmount Basis = "producer_amount"
)

// MoneyPlaces is the scale computed money is rounded to.
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Input is what a row and its matched producer contribute to the calculation.
type Input struct {
	Premium        decimal.NullDecimal
	Commission     decimal.NullDecimal
	Rate           decimal.NullDecimal // fraction of premium, 0.10 for 10%
	Split          decimal.NullDecimal
	ProducerAmount decimal.NullDecimal
	DefaultSplit   decimal.NullDecimal
}

// Result is the derived commission, split and payable amount.
type Result struct {
	Premium    decimal.NullDecimal
	Commission decimal.NullDecimal
	Split      decimal.NullDecimal
	Amount     decimal.NullDecimal
	Basis      Basis
}

// Skip reports whether the row carried no money at all. Such rows are administrative
// lines and produce no transaction.
func (r Result) Skip() bool {
	return !r.Premium.Valid && !r.Commission.Valid && !r.Amount.Valid
}

// Calculate resolves gross commission, split and payable amount.
//
// Commission: an explicit commission wins; otherwise premium × rate.
// Split: an explicit split wins; otherwise the producer's default; otherwise none.
// Amount: an explicit producer amount wins; otherwise commission × split / 100 when both are
// known; otherwise the commission itself.
func Calculate(in Input) Result {
	res := Result{Premium: in.Premium}

	fromRate := false

	switch {
	case in.Commission.Valid:
		res.Commission = in.Commission
	case in.Rate.Valid && in.Premium.Valid:
		res.Commission = money(in.Premium.Decimal.Mul(in.Rate.Decimal))
		fromRate = true
	}

	switch {
	case in.Split.Valid:
		res.Split = in.Split
	case in.DefaultSplit.Valid:
		res.Split = in.DefaultSplit
	}

	switch {
	case in.ProducerAmount.Valid:
		res.Amount = in.ProducerAmount
		res.Basis = BasisProducerAmount
	case res.Commission.Valid && res.Split.Valid:
		res.Amount = ApplyPercent(res.Commission.Decimal, res.Split.Decimal)
		res.Basis = BasisSplit
	case res.Commission.Valid:
		res.Amount = res.Commission
		res.Basis = BasisFlat

		if fromRate {
			res.Basis = BasisRate
		}
	}

	return res
}

// ApplyPercent returns base × pct / 100 rounded to cents.
func ApplyPercent(base, pct decimal.Decimal) decimal.NullDecimal {
	return money(base.Mul(pct).Div(hundred))
}

func money(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d.Round(MoneyPlaces))
}
