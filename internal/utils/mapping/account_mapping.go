package mapping

import (
	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	"github.com/finadmin/manual_ledger_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		Username:    d.Username,
		ExternalUID: d.ExternalUID,
		Balance:     d.Balance,
		Status:      string(d.Status),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Username:    m.Username,
		ExternalUID: m.ExternalUID,
		Balance:     m.Balance,
		Status:      domain.AccountStatus(m.Status),
	}
}

// ToModelAccountSlice converts a slice of domain Accounts to model Accounts
func ToModelAccountSlice(ds []domain.Account) []models.Account {
	ms := make([]models.Account, len(ds))
	for i, d := range ds {
		ms[i] = ToModelAccount(d)
	}
	return ms
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
