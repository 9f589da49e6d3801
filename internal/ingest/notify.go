package ingest

import (
	"context"
	"log/slog"

	"github.com/MrJamesThe3rd/commissions/internal/access"
)

// LogNotifier writes upload summaries to the log. Email delivery plugs in behind Notifier.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, scope access.Scope, summaries []Summary) error {
	for _, s := range summaries {
		n.logger.InfoContext(ctx, "upload summary",
			"org_id", scope.OrgID,
			"user_id", scope.UserID,
			"carrier", s.Carrier,
			"batch_id", s.BatchID,
			"rows", s.Rows,
			"transactions", s.Transactions,
			"premium", s.Premium.StringFixed(2),
			"commission", s.Commission.StringFixed(2),
		)
	}

	return nil
}
