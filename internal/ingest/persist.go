package ingest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/commissions/internal/carrier"
	"github.com/MrJamesThe3rd/commissions/internal/commission"
	"github.com/MrJamesThe3rd/commissions/internal/producer"
	"github.com/MrJamesThe3rd/commissions/internal/statement"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
)

func normalizeRows(resolver *statement.Resolver, batchID int64, src []statement.Row) []*Row {
	rows := make([]*Row, len(src))

	for i, r := range src {
		rows[i] = &Row{
			BatchID:    batchID,
			Line:       r.Line,
			Raw:        r.Values,
			Normalized: resolver.Normalize(r),
		}
	}

	return rows
}

// buildTransactions computes one provisional transaction per row that carries money.
// Rows without premium, commission or amount are administrative and produce nothing.
func buildTransactions(
	resolver *statement.Resolver,
	batch *Batch,
	c *carrier.Carrier,
	src []statement.Row,
	rows []*Row,
	job importJob,
) []*transaction.Transaction {
	today := job.now.UTC().Truncate(24 * time.Hour)

	var txs []*transaction.Transaction

	for i, row := range rows {
		n := row.Normalized

		p := producer.Match(producerHints(resolver, src[i]), job.roster, job.workspaceID)

		in := commission.Input{
			Premium:        n.Premium,
			Commission:     n.Commission,
			Rate:           n.CommissionRate,
			Split:          n.Split,
			ProducerAmount: n.ProducerAmount,
		}

		if p != nil {
			in.DefaultSplit = p.DefaultSplit
		}

		calc := commission.Calculate(in)
		if calc.Skip() {
			continue
		}

		txnDate := today
		if n.TxnDate != nil {
			txnDate = *n.TxnDate
		}

		tx := &transaction.Transaction{
			OrgID:        batch.OrgID,
			WorkspaceID:  &batch.WorkspaceID,
			BatchID:      &batch.ID,
			CarrierID:    &c.ID,
			CreatedBy:    &batch.CreatedBy,
			PolicyNumber: n.PolicyNumber,
			Customer:     n.Customer,
			CarrierName:  &c.Name,
			ProductType:  n.ProductType,
			Category:     commission.ImportCategory(n.Category),
			TxnDate:      txnDate,
			Premium:      calc.Premium,
			Commission:   calc.Commission,
			Basis:        calc.Basis,
			SplitPct:     calc.Split,
			Amount:       calc.Amount,
			Source:       transaction.SourceImport,
			Status:       transaction.StatusProvisional,
		}

		if p != nil {
			tx.ProducerID = &p.ID
		}

		txs = append(txs, tx)
	}

	return txs
}

// producerHints is the row keyed by canonical header, plus the producer columns the
// resolver found under other names (carrier mappings or configured aliases).
func producerHints(resolver *statement.Resolver, row statement.Row) map[string]string {
	values := row.Canonical()

	extra := []struct {
		field statement.Field
		key   string
	}{
		{statement.FieldProducerName, "producer_name"},
		{statement.FieldProducerEmail, "producer_email"},
	}

	for _, e := range extra {
		if _, ok := values[e.key]; ok {
			continue
		}

		if v, ok := resolver.Lookup(row, e.field); ok {
			values[e.key] = v
		}
	}

	return values
}

// summarize totals gross figures over what was persisted.
func summarize(carrierName string, batchID int64, rows int, txs []*transaction.Transaction) Summary {
	s := Summary{
		Carrier:      carrierName,
		BatchID:      batchID,
		Rows:         rows,
		Transactions: len(txs),
		Premium:      decimal.Zero,
		Commission:   decimal.Zero,
	}

	for _, tx := range txs {
		if tx.Premium.Valid {
			s.Premium = s.Premium.Add(tx.Premium.Decimal)
		}

		if tx.Commission.Valid {
			s.Commission = s.Commission.Add(tx.Commission.Decimal)
		}
	}

	return s
}
