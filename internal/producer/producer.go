package producer

import "github.com/shopspring/decimal"

// Producer is a commission-earning individual within one workspace.
type Producer struct {
	ID           int64
	OrgID        int64
	WorkspaceID  int64
	UserID       *int64
	DisplayName  string
	Email        string // linked user's email, empty when unlinked
	DefaultSplit decimal.NullDecimal
}
