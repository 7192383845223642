package dto

import (
	"time"

	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitTransactionRequest defines the data needed to record a manual
// deposit or withdrawal. Amount arrives as a string so the service can
// classify unparseable input instead of failing at binding time; the ledger
// service owns the full validation order.
type SubmitTransactionRequest struct {
	AccountID  int64  `json:"accountID"`
	Kind       string `json:"kind"`       // deposit or withdraw
	Amount     string `json:"amount"`     // decimal string, strictly positive
	Visibility string `json:"visibility"` // display or hidden
	Remark     string `json:"remark"`
}

// TransactionResponse defines the data returned for a ledger entry.
// Mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID   int64           `json:"transactionID"`
	AccountID       int64           `json:"accountID"`
	Username        string          `json:"username"`
	Amount          decimal.Decimal `json:"amount"`
	Kind            string          `json:"kind"`
	Visibility      string          `json:"visibility"`
	Remark          string          `json:"remark"`
	CreatedAt       time.Time       `json:"createdAt"`
	Status          string          `json:"status"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	NewBalance      decimal.Decimal `json:"newBalance"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		Username:        txn.Username,
		Amount:          txn.Amount,
		Kind:            string(txn.Kind),
		Visibility:      string(txn.Visibility),
		Remark:          txn.Remark,
		CreatedAt:       txn.CreatedAt,
		Status:          string(txn.Status),
		PreviousBalance: txn.PreviousBalance,
		NewBalance:      txn.NewBalance,
	}
}

// ToTransactionResponses converts a slice of domain Transactions to DTOs
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for listing the ledger.
// The default matches the history pane of the admin frontend.
type ListTransactionsParams struct {
	Limit int `form:"limit,default=50"`
}
