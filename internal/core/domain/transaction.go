package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a ledger entry deposits into or withdraws
// from an account.
type TransactionKind string

const (
	Deposit  TransactionKind = "DEPOSIT"
	Withdraw TransactionKind = "WITHDRAW"
)

// Label returns the capitalized operator-facing name of the kind.
func (k TransactionKind) Label() string {
	switch k {
	case Deposit:
		return "Deposit"
	case Withdraw:
		return "Withdraw"
	}
	return string(k)
}

// ParseTransactionKind maps a request value onto a TransactionKind.
// Lowercase values are accepted for compatibility with the admin frontend.
func ParseTransactionKind(s string) (TransactionKind, bool) {
	switch s {
	case string(Deposit), "deposit":
		return Deposit, true
	case string(Withdraw), "withdraw":
		return Withdraw, true
	}
	return "", false
}

// Visibility marks whether a transaction is shown to the end user or kept
// internal to the operators.
type Visibility string

const (
	VisibilityDisplay Visibility = "DISPLAY"
	VisibilityHidden  Visibility = "HIDDEN"
)

// Label returns the capitalized operator-facing name of the visibility.
func (v Visibility) Label() string {
	switch v {
	case VisibilityDisplay:
		return "Display"
	case VisibilityHidden:
		return "Hidden"
	}
	return string(v)
}

// ParseVisibility maps a request value onto a Visibility.
// The legacy frontend sent "display"/"hide"; both spellings are accepted.
func ParseVisibility(s string) (Visibility, bool) {
	switch s {
	case string(VisibilityDisplay), "display":
		return VisibilityDisplay, true
	case string(VisibilityHidden), "hide", "hidden":
		return VisibilityHidden, true
	}
	return "", false
}

// TransactionStatus is the lifecycle state of a ledger entry. Only completed
// transactions are ever persisted; there are no partial or failed records.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "Completed"
)

// Transaction is a single immutable ledger entry recording a manual balance
// adjustment against one account. Once created it is never edited or deleted.
type Transaction struct {
	TransactionID   int64             `json:"transactionID"` // Monotonic, derived from creation time
	AccountID       int64             `json:"accountID"`     // FK -> Account.AccountID
	Username        string            `json:"username"`      // Snapshot of the account username at creation
	Amount          decimal.Decimal   `json:"amount"`        // Strictly positive
	Kind            TransactionKind   `json:"kind"`          // DEPOSIT or WITHDRAW
	Visibility      Visibility        `json:"visibility"`    // DISPLAY or HIDDEN
	Remark          string            `json:"remark"`        // Operator note, never empty
	CreatedAt       time.Time         `json:"createdAt"`
	Status          TransactionStatus `json:"status"`
	PreviousBalance decimal.Decimal   `json:"previousBalance"` // Account balance before applying
	NewBalance      decimal.Decimal   `json:"newBalance"`      // Account balance after applying
}
