// Package file implements the collection store on top of plain JSON files,
// one per logical collection. It is the default backend when no database URL
// is configured and mirrors the durability model of the legacy admin panel's
// browser storage.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/finadmin/manual_ledger_app/internal/apperrors"
	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	portsrepo "github.com/finadmin/manual_ledger_app/internal/core/ports/repositories"
	"github.com/finadmin/manual_ledger_app/internal/repositories/kvstore"
)

// Store persists collections as <dir>/<collection>.json.
type Store struct {
	dir string
}

// Ensure Store implements the collection store facade
var _ portsrepo.CollectionStore = (*Store)(nil)

// NewStore creates the data directory if needed and returns a file store.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) read(collection string) ([]byte, error) {
	payload, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to read %s: %v", apperrors.ErrPersistenceRead, collection, err)
	}
	return payload, nil
}

// write replaces the collection file atomically via a temp file and rename,
// so a crash mid-write never leaves a truncated payload behind.
func (s *Store) write(collection string, payload []byte) error {
	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file for %s: %v", apperrors.ErrPersistenceWrite, collection, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write %s: %v", apperrors.ErrPersistenceWrite, collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to close %s: %v", apperrors.ErrPersistenceWrite, collection, err)
	}
	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace %s: %v", apperrors.ErrPersistenceWrite, collection, err)
	}
	return nil
}

// LoadAccounts implements portsrepo.AccountStore.
func (s *Store) LoadAccounts(ctx context.Context) ([]domain.Account, error) {
	payload, err := s.read(kvstore.AccountsCollection)
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
	return s.write(kvstore.AccountsCollection, payload)
}

// LoadTransactions implements portsrepo.LedgerStore.
func (s *Store) LoadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	payload, err := s.read(kvstore.TransactionsCollection)
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
	return s.write(kvstore.TransactionsCollection, payload)
}
