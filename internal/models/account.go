package models

import (
	"github.com/shopspring/decimal"
)

// Account is the persisted representation of a registry account.
// JSON keys match the legacy stored payloads so existing data restores
// cleanly; validate tags drive schema validation at the persistence boundary.
type Account struct {
	AccountID   int64           `json:"id" validate:"required"`
	Username    string          `json:"username" validate:"required"`
	ExternalUID string          `json:"uid" validate:"required"`
	Balance     decimal.Decimal `json:"balance"`
	Status      string          `json:"status" validate:"required,oneof=Active Inactive"`
}
