package repositories

import (
	"context"

	"github.com/finadmin/manual_ledger_app/internal/core/domain"
)

// AccountStore defines the persistence boundary for the "accounts" collection.
// The store has replace-all / get-all semantics: collections are always read
// and written whole.
type AccountStore interface {
	// LoadAccounts retrieves the stored account collection. A store that has
	// never been written returns an empty slice and no error. A payload that
	// fails schema validation returns apperrors.ErrPersistenceRead.
	LoadAccounts(ctx context.Context) ([]domain.Account, error)

	// ReplaceAccounts overwrites the stored account collection.
	ReplaceAccounts(ctx context.Context, accounts []domain.Account) error
}

// LedgerStore defines the persistence boundary for the "transactions"
// collection. Ordering is preserved verbatim (newest first).
type LedgerStore interface {
	// LoadTransactions retrieves the stored ledger. Same error contract as
	// AccountStore.LoadAccounts.
	LoadTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ReplaceTransactions overwrites the stored ledger.
	ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error
}

// CollectionStore combines both collection stores.
// This is a facade for wiring code that constructs a single backing store.
type CollectionStore interface {
	AccountStore
	LedgerStore
}
