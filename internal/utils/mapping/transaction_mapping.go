package mapping

import (
	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	"github.com/finadmin/manual_ledger_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		Username:        d.Username,
		Amount:          d.Amount,
		Kind:            string(d.Kind),
		Visibility:      string(d.Visibility),
		Remark:          d.Remark,
		CreatedAt:       d.CreatedAt,
		Status:          string(d.Status),
		PreviousBalance: d.PreviousBalance,
		NewBalance:      d.NewBalance,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		Username:        m.Username,
		Amount:          m.Amount,
		Kind:            domain.TransactionKind(m.Kind),
		Visibility:      domain.Visibility(m.Visibility),
		Remark:          m.Remark,
		CreatedAt:       m.CreatedAt,
		Status:          domain.TransactionStatus(m.Status),
		PreviousBalance: m.PreviousBalance,
		NewBalance:      m.NewBalance,
	}
}

// ToModelTransactionSlice converts a slice of domain Transactions to model Transactions
func ToModelTransactionSlice(ds []domain.Transaction) []models.Transaction {
	ms := make([]models.Transaction, len(ds))
	for i, d := range ds {
		ms[i] = ToModelTransaction(d)
	}
	return ms
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
