package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/finadmin/manual_ledger_app/internal/apperrors"
	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	portsrepo "github.com/finadmin/manual_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finadmin/manual_ledger_app/internal/core/ports/services"
	"github.com/finadmin/manual_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// RegistryService owns the in-memory account collection. Accounts are seeded
// with the default set when the store is empty or its payload fails schema
// validation; balances are mutated only through ApplyDelta, driven by the
// ledger service.
type RegistryService struct {
	store portsrepo.AccountStore

	mu       sync.RWMutex
	accounts []domain.Account
}

// Ensure RegistryService implements the portssvc.RegistrySvcFacade interface
var _ portssvc.RegistrySvcFacade = (*RegistryService)(nil)

// defaultAccounts is the fixed seed set used when no stored accounts exist.
func defaultAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: 1, Username: "john_doe", ExternalUID: "1058801", Balance: decimal.NewFromFloat(1500.00), Status: domain.Active},
		{AccountID: 2, Username: "alice_smith", ExternalUID: "1058802", Balance: decimal.NewFromFloat(3200.50), Status: domain.Active},
		{AccountID: 3, Username: "bob_wilson", ExternalUID: "1058803", Balance: decimal.NewFromFloat(875.25), Status: domain.Active},
		{AccountID: 4, Username: "sara_jones", ExternalUID: "1058804", Balance: decimal.NewFromFloat(0.00), Status: domain.Inactive},
		{AccountID: 5, Username: "mike_brown", ExternalUID: "1058805", Balance: decimal.NewFromFloat(5420.75), Status: domain.Active},
		{AccountID: 6, Username: "emma_davis", ExternalUID: "1058806", Balance: decimal.NewFromFloat(123.45), Status: domain.Active},
	}
}

// NewRegistryService restores the account collection from the store. A read
// failure (missing or malformed payload) is recovered silently by adopting
// the default seed set; it never propagates to the caller.
func NewRegistryService(ctx context.Context, store portsrepo.AccountStore) *RegistryService {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := store.LoadAccounts(ctx)
	if err != nil {
		logger.Warn("Stored accounts unreadable, falling back to default seed set", slog.String("error", err.Error()))
		accounts = nil
	}
	if len(accounts) == 0 {
		accounts = defaultAccounts()
		logger.Info("Account registry seeded with defaults", slog.Int("count", len(accounts)))
	} else {
		logger.Info("Account registry restored from store", slog.Int("count", len(accounts)))
	}

	return &RegistryService{store: store, accounts: accounts}
}

// FindByID retrieves an account by its identifier.
func (s *RegistryService) FindByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.accounts {
		if s.accounts[i].AccountID == accountID {
			acc := s.accounts[i]
			return &acc, nil
		}
	}
	return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
}

// Search returns accounts matching the query. The match is a case-insensitive
// substring on the username or a plain substring on the external UID; an
// empty query returns every account in stored order.
func (s *RegistryService) Search(ctx context.Context, query string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	matches := make([]domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		if needle == "" ||
			strings.Contains(strings.ToLower(acc.Username), needle) ||
			strings.Contains(acc.ExternalUID, needle) {
			matches = append(matches, acc)
		}
	}
	return matches, nil
}

// ApplyDelta replaces the matching account's balance with balance+delta and
// persists the full collection. If the write fails the in-memory balance is
// restored and the error reported as a persistence write failure, so no
// half-committed mutation is ever observable.
func (s *RegistryService) ApplyDelta(ctx context.Context, accountID int64, delta decimal.Decimal) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.accounts {
		if s.accounts[i].AccountID == accountID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
	}

	previous := s.accounts[idx].Balance
	s.accounts[idx].Balance = previous.Add(delta)

	if err := s.store.ReplaceAccounts(ctx, s.accounts); err != nil {
		s.accounts[idx].Balance = previous
		logger.Error("Failed to persist accounts, balance mutation rolled back",
			slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		if errors.Is(err, apperrors.ErrPersistenceWrite) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistenceWrite, err)
	}

	updated := s.accounts[idx]
	logger.Debug("Account balance updated",
		slog.Int64("account_id", accountID),
		slog.String("delta", delta.String()),
		slog.String("balance", updated.Balance.String()))
	return &updated, nil
}
