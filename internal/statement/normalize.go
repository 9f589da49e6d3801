package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Normalized is the canonical view of a row. It is derived only from the raw cells and the
// resolver, so re-normalizing a stored row always yields the same value.
type Normalized struct {
	Carrier        *string             `json:"carrier"`
	PolicyNumber   *string             `json:"policy_number"`
	Customer       *string             `json:"customer"`
	Premium        decimal.NullDecimal `json:"premium"`
	Commission     decimal.NullDecimal `json:"commission"`
	CommissionRate decimal.NullDecimal `json:"commission_rate"` // fraction of premium
	Split          decimal.NullDecimal `json:"split"`
	ProducerAmount decimal.NullDecimal `json:"producer_amount"`
	Category       *string             `json:"category"`
	ProductType    *string             `json:"product_type"`
	TxnDate        *time.Time          `json:"txn_date"`
	Undated        bool                `json:"undated"`
	AdditionalData map[string]string   `json:"additional_data"`
}

// Normalize resolves a raw row into canonical fields.
func (r *Resolver) Normalize(row Row) Normalized {
	n := Normalized{
		Carrier:        r.text(row, FieldCarrier),
		PolicyNumber:   r.text(row, FieldPolicyNumber),
		Customer:       r.text(row, FieldCustomer),
		Premium:        r.amount(row, FieldPremium),
		Commission:     r.amount(row, FieldCommission),
		CommissionRate: r.rate(row, FieldCommissionRate),
		Split:          r.amount(row, FieldSplit),
		ProducerAmount: r.amount(row, FieldProducerAmount),
		ProductType:    r.text(row, FieldProductType),
		AdditionalData: r.Additional(row),
	}

	if c := r.text(row, FieldCategory); c != nil {
		v := strings.ToLower(*c)
		n.Category = &v
	}

	if s, ok := r.Lookup(row, FieldTxnDate); ok {
		if t, ok := ParseDate(s); ok {
			n.TxnDate = &t
		}
	}

	n.Undated = n.TxnDate == nil

	return n
}

func (r *Resolver) text(row Row, f Field) *string {
	v, ok := r.Lookup(row, f)
	if !ok {
		return nil
	}

	return &v
}

// amount treats a trailing percent sign as decoration so a split of "60%" reads as 60.
func (r *Resolver) amount(row Row, f Field) decimal.NullDecimal {
	v, ok := r.Lookup(row, f)
	if !ok {
		return decimal.NullDecimal{}
	}

	return ParseAmount(strings.TrimSuffix(v, "%"))
}

func (r *Resolver) rate(row Row, f Field) decimal.NullDecimal {
	v, ok := r.Lookup(row, f)
	if !ok {
		return decimal.NullDecimal{}
	}

	return ParseRate(v)
}
