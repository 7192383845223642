package dto

import (
	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatisticsResponse defines the aggregate figures returned for the ledger.
type StatisticsResponse struct {
	TotalTransactions int             `json:"totalTransactions"`
	TotalDeposits     decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals  decimal.Decimal `json:"totalWithdrawals"`
	NetFlow           decimal.Decimal `json:"netFlow"`
}

// ToStatisticsResponse converts domain.Statistics to a StatisticsResponse DTO
func ToStatisticsResponse(stats domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalTransactions: stats.TotalTransactions,
		TotalDeposits:     stats.TotalDeposits,
		TotalWithdrawals:  stats.TotalWithdrawals,
		NetFlow:           stats.NetFlow,
	}
}
