package domain

import (
	"github.com/shopspring/decimal"
)

// AccountStatus indicates whether an account is currently operable.
type AccountStatus string

const (
	Active   AccountStatus = "Active"
	Inactive AccountStatus = "Inactive"
)

// Account represents a user account held by the registry.
// This is the primary representation used by services. The balance is mutated
// only through the ledger service's apply step.
type Account struct {
	AccountID   int64           `json:"accountID"`   // Primary Key, immutable
	Username    string          `json:"username"`    // Unique login name
	ExternalUID string          `json:"externalUID"` // Operator-facing UID shown in the picker
	Balance     decimal.Decimal `json:"balance"`     // Current balance
	Status      AccountStatus   `json:"status"`      // Active or Inactive
}
