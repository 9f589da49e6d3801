package statement_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/commissions/internal/statement"
)

func newRow(header []string, cells ...string) statement.Row {
	row := statement.Row{Header: header, Values: map[string]string{}}
	for i, h := range header {
		if i < len(cells) {
			row.Values[h] = cells[i]
		}
	}

	return row
}

func TestResolver_Lookup(t *testing.T) {
	type args struct {
		header []string
		cells  []string
		field  statement.Field
	}

	type testCase struct {
		name   string
		args   args
		want   string
		wantOK bool
	}

	tests := []testCase{
		{
			name:   "Exact Alias",
			args:   args{header: []string{"carrier", "Written Premium"}, cells: []string{"Acme", "1000"}, field: statement.FieldPremium},
			want:   "1000",
			wantOK: true,
		},
		{
			name: "Earlier Alias Wins",
			args: args{
				header: []string{"Total Premium", "Written Premium"},
				cells:  []string{"2000", "1000"},
				field:  statement.FieldPremium,
			},
			want:   "1000",
			wantOK: true,
		},
		{
			name:   "Case Insensitive Fallback",
			args:   args{header: []string{"WRITTEN PREMIUM"}, cells: []string{"750"}, field: statement.FieldPremium},
			want:   "750",
			wantOK: true,
		},
		{
			name: "Blank Cell Falls Through",
			args: args{
				header: []string{"commission", "Commission Amount"},
				cells:  []string{"  ", "55"},
				field:  statement.FieldCommission,
			},
			want:   "55",
			wantOK: true,
		},
		{
			name:   "No Match",
			args:   args{header: []string{"carrier", "premium"}, cells: []string{"Acme", "1"}, field: statement.FieldCommission},
			wantOK: false,
		},
		{
			name:   "Absent Cell",
			args:   args{header: []string{"carrier", "commission"}, cells: []string{"Acme"}, field: statement.FieldCommission},
			wantOK: false,
		},
	}

	r := statement.NewResolver(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Lookup(newRow(tt.args.header, tt.args.cells...), tt.args.field)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_ExtraAndOverrideAliases(t *testing.T) {
	header := []string{"Prem Amt", "premium"}
	row := newRow(header, "10", "20")

	extra := statement.NewResolver(map[statement.Field][]string{statement.FieldPremium: {"Prem Amt"}})
	got, ok := extra.Lookup(row, statement.FieldPremium)
	require.True(t, ok)
	assert.Equal(t, "20", got, "extra aliases never outrank the defaults")

	carrierSpecific := statement.NewResolver(nil).With(map[statement.Field][]string{statement.FieldPremium: {"Prem Amt"}})
	got, ok = carrierSpecific.Lookup(row, statement.FieldPremium)
	require.True(t, ok)
	assert.Equal(t, "10", got, "carrier mappings are tried first")
}

func TestResolver_WithIgnoresUnknownFields(t *testing.T) {
	r := statement.NewResolver(nil).With(map[statement.Field][]string{"bogus": {"x"}})
	assert.Empty(t, r.Aliases("bogus"))
}

func TestResolver_Additional(t *testing.T) {
	header := []string{"carrier", "Premium", "Agency Code", "Notes"}
	row := newRow(header, "Acme", "100", "A-17", "renewal")

	got := statement.NewResolver(nil).Additional(row)

	assert.Equal(t, map[string]string{"Agency Code": "A-17", "Notes": "renewal"}, got)
}

func TestResolver_Normalize(t *testing.T) {
	header := []string{
		"Carrier", "Policy #", "Insured", "Written Premium", "Commission Rate",
		"Split %", "Category", "Effective Date", "Product Type", "Agency Code",
	}
	row := newRow(header,
		"Acme", "P-100", "Jane Doe", "$1,200.00", "12.5%", "50", " New Business ", "03/01/2024", "Auto", "A-17",
	)

	n := statement.NewResolver(nil).Normalize(row)

	require.NotNil(t, n.Carrier)
	assert.Equal(t, "Acme", *n.Carrier)
	require.NotNil(t, n.PolicyNumber)
	assert.Equal(t, "P-100", *n.PolicyNumber)
	require.NotNil(t, n.Customer)
	assert.Equal(t, "Jane Doe", *n.Customer)
	assert.True(t, n.Premium.Decimal.Equal(decimal.NewFromInt(1200)))
	assert.False(t, n.Commission.Valid)
	assert.True(t, n.CommissionRate.Decimal.Equal(decimal.RequireFromString("0.125")))
	assert.True(t, n.Split.Decimal.Equal(decimal.NewFromInt(50)))
	require.NotNil(t, n.Category)
	assert.Equal(t, "new business", *n.Category)
	require.NotNil(t, n.ProductType)
	assert.Equal(t, "Auto", *n.ProductType)
	require.NotNil(t, n.TxnDate)
	assert.Equal(t, date(2024, 3, 1), *n.TxnDate)
	assert.False(t, n.Undated)
	assert.Equal(t, map[string]string{"Agency Code": "A-17"}, n.AdditionalData)
}

func TestResolver_NormalizeIsPure(t *testing.T) {
	header := []string{"carrier", "premium", "txn_date"}
	row := newRow(header, "Acme", "oops", "someday")
	r := statement.NewResolver(nil)

	first := r.Normalize(row)
	second := r.Normalize(row)

	assert.Equal(t, first, second)
	assert.False(t, first.Premium.Valid)
	assert.Nil(t, first.TxnDate)
	assert.True(t, first.Undated)
	assert.Equal(t, "oops", row.Values["premium"], "raw cells are untouched")
}

func TestLoadAliases(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "aliases.yaml")
	require.NoError(t, os.WriteFile(good, []byte("aliases:\n  premium: [\"Prem Amt\"]\n  producer_name: [Rep]\n"), 0o600))

	aliases, err := statement.LoadAliases(good)
	require.NoError(t, err)
	assert.Equal(t, []string{"Prem Amt"}, aliases[statement.FieldPremium])
	assert.Equal(t, []string{"Rep"}, aliases[statement.FieldProducerName])

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("aliases:\n  premiums: [x]\n"), 0o600))

	_, err = statement.LoadAliases(bad)
	assert.Error(t, err)

	none, err := statement.LoadAliases("")
	require.NoError(t, err)
	assert.Nil(t, none)
}
