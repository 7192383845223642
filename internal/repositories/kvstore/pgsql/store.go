// Package pgsql implements the collection store on PostgreSQL. Each logical
// collection occupies one row of the collections table with a JSONB payload,
// keeping the replace-all/get-all contract of the persistence boundary.
package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finadmin/manual_ledger_app/internal/apperrors"
	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	portsrepo "github.com/finadmin/manual_ledger_app/internal/core/ports/repositories"
	"github.com/finadmin/manual_ledger_app/internal/repositories/kvstore"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists collections in the collections table (see migrations).
type Store struct {
	pool *pgxpool.Pool
}

// Ensure Store implements the collection store facade
var _ portsrepo.CollectionStore = (*Store)(nil)

// NewStore returns a PostgreSQL-backed collection store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) read(ctx context.Context, collection string) ([]byte, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM collections WHERE name = $1`, collection,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to read collection %s: %v", apperrors.ErrPersistenceRead, collection, err)
	}
	return payload, nil
}

func (s *Store) write(ctx context.Context, collection string, payload []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO collections (name, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		collection, payload)
	if err != nil {
		return fmt.Errorf("%w: failed to write collection %s: %v", apperrors.ErrPersistenceWrite, collection, err)
	}
	return nil
}

// LoadAccounts implements portsrepo.AccountStore.
func (s *Store) LoadAccounts(ctx context.Context) ([]domain.Account, error) {
	payload, err := s.read(ctx, kvstore.AccountsCollection)
	if err != nil || payload == nil {
		return nil, err
	}
	return kvstore.DecodeAccounts(payload)
}

// ReplaceAccounts implements portsrepo.AccountStore.
func (s *Store) ReplaceAccounts(ctx context.Context, accounts []domain.Account) error {
	payload, err := kvstore.EncodeAccounts(accounts)
	if err != nil {
		return err
	}
	return s.write(ctx, kvstore.AccountsCollection, payload)
}

// LoadTransactions implements portsrepo.LedgerStore.
func (s *Store) LoadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	payload, err := s.read(ctx, kvstore.TransactionsCollection)
	if err != nil || payload == nil {
		return nil, err
	}
	return kvstore.DecodeTransactions(payload)
}

// ReplaceTransactions implements portsrepo.LedgerStore.
func (s *Store) ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error {
	payload, err := kvstore.EncodeTransactions(transactions)
	if err != nil {
		return err
	}
	return s.write(ctx, kvstore.TransactionsCollection, payload)
}
