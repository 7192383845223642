package domain

import "github.com/shopspring/decimal"

// Statistics holds the aggregate figures derived from the ledger.
type Statistics struct {
	TotalTransactions int             `json:"totalTransactions"`
	TotalDeposits     decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals  decimal.Decimal `json:"totalWithdrawals"`
	NetFlow           decimal.Decimal `json:"netFlow"` // deposits minus withdrawals
}
