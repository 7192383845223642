package dto

import (
	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID   int64           `json:"accountID"`
	Username    string          `json:"username"`
	ExternalUID string          `json:"externalUID"`
	Balance     decimal.Decimal `json:"balance"`
	Status      string          `json:"status"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Username:    acc.Username,
		ExternalUID: acc.ExternalUID,
		Balance:     acc.Balance,
		Status:      string(acc.Status),
	}
}

// ToListAccountResponse converts a slice of domain.Account to AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// SearchAccountsParams defines query parameters for the account picker search.
type SearchAccountsParams struct {
	Query string `form:"q"`
}
