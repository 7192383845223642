package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/finadmin/manual_ledger_app/internal/apperrors"
	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	portsrepo "github.com/finadmin/manual_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finadmin/manual_ledger_app/internal/core/ports/services"
	"github.com/finadmin/manual_ledger_app/internal/dto"
	"github.com/finadmin/manual_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// Classified validation failures, in the order Submit checks them. Each wraps
// apperrors.ErrValidation so callers can match the class or the specific
// reason. None of them leaves any account or ledger state behind.
var (
	ErrMissingAccount       = fmt.Errorf("%w: please select an account", apperrors.ErrValidation)
	ErrMissingDisplayOption = fmt.Errorf("%w: please select a display option", apperrors.ErrValidation)
	ErrInvalidAmount        = fmt.Errorf("%w: please enter a valid amount", apperrors.ErrValidation)
	ErrMissingRemark        = fmt.Errorf("%w: please enter a remark", apperrors.ErrValidation)
	ErrNegativeAmount       = fmt.Errorf("%w: please enter a positive amount", apperrors.ErrValidation)
	ErrInsufficientBalance  = fmt.Errorf("%w: insufficient balance for withdrawal", apperrors.ErrValidation)
	ErrInvalidKind          = fmt.Errorf("%w: transaction type must be deposit or withdraw", apperrors.ErrValidation)
)

// ErrAccountDisappeared reports the post-validation race where the account
// resolved during validation but was gone by the time the delta was applied.
var ErrAccountDisappeared = fmt.Errorf("%w: selected account not found", apperrors.ErrNotFound)

// LedgerService validates and applies manual deposit/withdraw transactions
// against the account registry, maintaining the append-only ledger.
// All submissions flow through one mutex: the registry read-modify-write and
// the ledger append form a single critical section.
type LedgerService struct {
	registry portssvc.RegistrySvcFacade
	store    portsrepo.LedgerStore

	mu     sync.RWMutex
	ledger []domain.Transaction // newest first
	lastID int64
}

// Ensure LedgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// NewLedgerService restores the ledger from the store. A read failure is
// recovered silently with an empty ledger; startup never crashes on bad data.
func NewLedgerService(ctx context.Context, store portsrepo.LedgerStore, registry portssvc.RegistrySvcFacade) *LedgerService {
	logger := middleware.GetLoggerFromCtx(ctx)

	ledger, err := store.LoadTransactions(ctx)
	if err != nil {
		logger.Warn("Stored ledger unreadable, starting with an empty ledger", slog.String("error", err.Error()))
		ledger = nil
	}

	var lastID int64
	for _, txn := range ledger {
		if txn.TransactionID > lastID {
			lastID = txn.TransactionID
		}
	}

	logger.Info("Ledger restored from store", slog.Int("transaction_count", len(ledger)))
	return &LedgerService{registry: registry, store: store, ledger: ledger, lastID: lastID}
}

// nextTransactionID derives a monotonic identifier from the creation time in
// milliseconds, bumping by one when two submissions land in the same
// millisecond. Callers must hold s.mu.
func (s *LedgerService) nextTransactionID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Submit validates the request, applies the balance mutation and appends the
// resulting transaction to the ledger. Validation failures are classified and
// non-fatal; first failure wins. On success both the account collection and
// the ledger are persisted; if the ledger write fails the balance mutation is
// compensated so the caller observes no partial state.
func (s *LedgerService) Submit(ctx context.Context, req dto.SubmitTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.registry.FindByID(ctx, req.AccountID)
	if err != nil {
		return nil, ErrMissingAccount
	}

	visibility, ok := domain.ParseVisibility(req.Visibility)
	if !ok {
		return nil, ErrMissingDisplayOption
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || amount.IsZero() {
		return nil, ErrInvalidAmount
	}

	remark := strings.TrimSpace(req.Remark)
	if remark == "" {
		return nil, ErrMissingRemark
	}

	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	kind, ok := domain.ParseTransactionKind(req.Kind)
	if !ok {
		return nil, ErrInvalidKind
	}

	if kind == domain.Withdraw && amount.GreaterThan(account.Balance) {
		return nil, ErrInsufficientBalance
	}

	delta := amount
	if kind == domain.Withdraw {
		delta = amount.Neg()
	}

	previousBalance := account.Balance
	updated, err := s.registry.ApplyDelta(ctx, account.AccountID, delta)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrAccountDisappeared
		}
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   s.nextTransactionID(now),
		AccountID:       account.AccountID,
		Username:        account.Username,
		Amount:          amount,
		Kind:            kind,
		Visibility:      visibility,
		Remark:          remark,
		CreatedAt:       now,
		Status:          domain.StatusCompleted,
		PreviousBalance: previousBalance,
		NewBalance:      updated.Balance,
	}

	s.ledger = append([]domain.Transaction{txn}, s.ledger...)

	if err := s.store.ReplaceTransactions(ctx, s.ledger); err != nil {
		// Undo the append and compensate the balance mutation so the
		// submission has no observable effect.
		s.ledger = s.ledger[1:]
		if _, rbErr := s.registry.ApplyDelta(ctx, account.AccountID, delta.Neg()); rbErr != nil {
			logger.Error("Failed to compensate balance after ledger write failure",
				slog.Int64("account_id", account.AccountID), slog.String("error", rbErr.Error()))
		}
		logger.Error("Failed to persist ledger, submission not committed",
			slog.Int64("transaction_id", txn.TransactionID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Transaction applied",
		slog.Int64("transaction_id", txn.TransactionID),
		slog.Int64("account_id", txn.AccountID),
		slog.String("kind", string(txn.Kind)),
		slog.String("amount", txn.Amount.String()),
		slog.String("new_balance", txn.NewBalance.String()))
	return &txn, nil
}

// ListTransactions returns the newest-first ledger, truncated to limit when
// limit > 0.
func (s *LedgerService) ListTransactions(ctx context.Context, limit int) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.ledger)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Transaction, n)
	copy(out, s.ledger[:n])
	return out
}

// Snapshot returns a copy of the full ledger, newest first.
func (s *LedgerService) Snapshot() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, len(s.ledger))
	copy(out, s.ledger)
	return out
}
