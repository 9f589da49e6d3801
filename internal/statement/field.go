package statement

// Field is a canonical statement column that carrier-specific headers are resolved to.
type Field string

const (
	FieldCarrier        Field = "carrier"
	FieldPolicyNumber   Field = "policy_number"
	FieldCustomer       Field = "customer"
	FieldPremium        Field = "premium"
	FieldCommission     Field = "commission"
	FieldCommissionRate Field = "commission_rate"
	FieldSplit          Field = "split"
	FieldProducerAmount Field = "producer_amount"
	FieldCategory       Field = "category"
	FieldProductType    Field = "product_type"
	FieldTxnDate        Field = "txn_date"
	FieldProducerName   Field = "producer_name"
	FieldProducerEmail  Field = "producer_email"
)

// fieldOrder fixes the order fields are claimed in when collecting additional columns.
var fieldOrder = []Field{
	FieldCarrier,
	FieldPolicyNumber,
	FieldCustomer,
	FieldPremium,
	FieldCommission,
	FieldCommissionRate,
	FieldSplit,
	FieldProducerAmount,
	FieldCategory,
	FieldProductType,
	FieldTxnDate,
	FieldProducerName,
	FieldProducerEmail,
}

// Valid reports whether f is one of the canonical fields.
func (f Field) Valid() bool {
	_, ok := DefaultAliases[f]
	return ok
}

// DefaultAliases lists, per canonical field, the column spellings tried in priority order.
// A statement that carries two candidate columns always resolves to the earlier one.
// Adding a carrier format is adding spellings here or in an alias file.
var DefaultAliases = map[Field][]string{
	FieldCarrier: {"carrier", "Carrier", "Carrier Name", "carrier_name", "Company"},
	FieldPolicyNumber: {
		"policy_number", "Policy Number", "Policy #", "Policy No", "Policy", "policy", "policy_no",
	},
	FieldCustomer: {
		"customer", "Customer", "Customer Name", "Insured", "Insured Name", "Client", "client", "Named Insured",
	},
	FieldPremium: {"premium", "Premium", "Written Premium", "Total Premium"},
	FieldCommission: {
		"commission", "Commission", "Commission Amount", "commission_amount", "Comm Amount", "Gross Commission",
	},
	FieldCommissionRate: {"commission_rate", "Commission Rate", "rate", "Rate", "Comm Rate", "Commission %"},
	FieldSplit:          {"split", "Split", "split_pct", "Split %", "Split Pct", "Agent Split", "producer_split"},
	FieldProducerAmount: {
		"agent_amount", "Agent Amount", "producer_amount", "Producer Amount", "Agent Commission", "Producer Commission",
	},
	FieldCategory:    {"category", "commission_type", "type", "revenue_type", "line_type"},
	FieldProductType: {"product_type", "Product Type", "product", "Product", "lob", "LOB", "Line of Business"},
	FieldTxnDate: {
		"txn_date", "transaction_date", "Transaction Date", "date", "Date",
		"Effective Date", "effective_date", "Statement Date", "Paid Date",
	},
	FieldProducerName:  {"producer", "producer_name", "agent", "agent_name", "writer"},
	FieldProducerEmail: {"producer_email", "agent_email"},
}
