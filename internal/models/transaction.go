package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted representation of a ledger entry.
type Transaction struct {
	TransactionID   int64           `json:"id" validate:"required"`
	AccountID       int64           `json:"accountId" validate:"required"`
	Username        string          `json:"username" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Kind            string          `json:"type" validate:"required,oneof=DEPOSIT WITHDRAW"`
	Visibility      string          `json:"display" validate:"required,oneof=DISPLAY HIDDEN"`
	Remark          string          `json:"remark" validate:"required"`
	CreatedAt       time.Time       `json:"timestamp" validate:"required"`
	Status          string          `json:"status" validate:"required"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	NewBalance      decimal.Decimal `json:"newBalance"`
}
