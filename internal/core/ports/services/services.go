package services

import (
	"context"

	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	"github.com/finadmin/manual_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// RegistrySvcFacade exposes account registry operations to handlers and to
// the ledger service.
type RegistrySvcFacade interface {
	// FindByID retrieves an account by its identifier.
	// Returns apperrors.ErrNotFound if the id does not resolve.
	FindByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// Search returns accounts matching a case-insensitive substring of the
	// username or a substring of the external UID. An empty query returns all
	// accounts in stored order.
	Search(ctx context.Context, query string) ([]domain.Account, error)

	// ApplyDelta replaces the account's balance with balance+delta (delta is
	// negative for withdrawals) and persists the full account collection.
	ApplyDelta(ctx context.Context, accountID int64, delta decimal.Decimal) (*domain.Account, error)
}

// LedgerSvcFacade exposes ledger operations. Submissions are serialized
// internally; concurrent callers never interleave a read-modify-write.
type LedgerSvcFacade interface {
	// Submit validates a transaction request, applies the balance mutation,
	// appends to the ledger and persists both collections. Validation
	// failures are classified sentinel errors and leave no state behind.
	Submit(ctx context.Context, req dto.SubmitTransactionRequest) (*domain.Transaction, error)

	// ListTransactions returns the newest-first ledger, truncated to limit
	// when limit > 0.
	ListTransactions(ctx context.Context, limit int) []domain.Transaction

	// Snapshot returns a copy of the full ledger, newest first.
	Snapshot() []domain.Transaction
}

// ReportingSvcFacade derives aggregate statistics from the ledger.
type ReportingSvcFacade interface {
	GetStatistics(ctx context.Context) domain.Statistics
}

// ExportSvcFacade serializes the ledger for download.
type ExportSvcFacade interface {
	// ExportCSV renders the ledger as CSV, returning the document and the
	// suggested filename. Returns services.ErrEmptyLedger when there is
	// nothing to export.
	ExportCSV(ctx context.Context) ([]byte, string, error)
}
