// Package kvstore holds the serialization contract shared by the concrete
// collection stores. Collections are stored as JSON arrays under the logical
// names "accounts" and "transactions"; payloads restored from the store are
// schema-validated before they reach the registry or the ledger, so malformed
// data is classified as a persistence read failure instead of crashing startup.
package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/finadmin/manual_ledger_app/internal/apperrors"
	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	"github.com/finadmin/manual_ledger_app/internal/models"
	"github.com/finadmin/manual_ledger_app/internal/utils/mapping"
	"github.com/go-playground/validator/v10"
)

// Logical collection names, kept identical to the legacy stored payloads.
const (
	AccountsCollection     = "accounts"
	TransactionsCollection = "transactions"
)

var validate = validator.New()

// DecodeAccounts parses and validates a stored accounts payload.
// Any structural or schema failure is wrapped in apperrors.ErrPersistenceRead.
func DecodeAccounts(payload []byte) ([]domain.Account, error) {
	var ms []models.Account
	if err := json.Unmarshal(payload, &ms); err != nil {
		return nil, fmt.Errorf("%w: accounts payload is not a valid sequence: %v", apperrors.ErrPersistenceRead, err)
	}
	for i, m := range ms {
		if err := validate.Struct(m); err != nil {
			return nil, fmt.Errorf("%w: account entry %d failed schema validation: %v", apperrors.ErrPersistenceRead, i, err)
		}
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// EncodeAccounts serializes the account collection for storage.
func EncodeAccounts(accounts []domain.Account) ([]byte, error) {
	payload, err := json.Marshal(mapping.ToModelAccountSlice(accounts))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode accounts: %v", apperrors.ErrPersistenceWrite, err)
	}
	return payload, nil
}

// DecodeTransactions parses and validates a stored ledger payload.
// Ordering is preserved verbatim (newest first).
func DecodeTransactions(payload []byte) ([]domain.Transaction, error) {
	var ms []models.Transaction
	if err := json.Unmarshal(payload, &ms); err != nil {
		return nil, fmt.Errorf("%w: transactions payload is not a valid sequence: %v", apperrors.ErrPersistenceRead, err)
	}
	for i, m := range ms {
		if err := validate.Struct(m); err != nil {
			return nil, fmt.Errorf("%w: transaction entry %d failed schema validation: %v", apperrors.ErrPersistenceRead, i, err)
		}
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// EncodeTransactions serializes the ledger for storage.
func EncodeTransactions(transactions []domain.Transaction) ([]byte, error) {
	payload, err := json.Marshal(mapping.ToModelTransactionSlice(transactions))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode transactions: %v", apperrors.ErrPersistenceWrite, err)
	}
	return payload, nil
}
