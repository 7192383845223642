package services

import (
	"context"

	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	portssvc "github.com/finadmin/manual_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ReportingService derives aggregate statistics from the ledger on demand.
type ReportingService struct {
	ledger portssvc.LedgerSvcFacade
}

// Ensure ReportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// NewReportingService creates a new ReportingService.
func NewReportingService(ledger portssvc.LedgerSvcFacade) *ReportingService {
	return &ReportingService{ledger: ledger}
}

// GetStatistics computes totals over the current ledger snapshot.
func (s *ReportingService) GetStatistics(ctx context.Context) domain.Statistics {
	return ComputeStatistics(s.ledger.Snapshot())
}

// ComputeStatistics is a pure function of a ledger snapshot. Zero-valued
// amounts (possible in data restored from older payloads) contribute nothing
// to the sums.
func ComputeStatistics(ledger []domain.Transaction) domain.Statistics {
	deposits := decimal.Zero
	withdrawals := decimal.Zero
	for _, txn := range ledger {
		switch txn.Kind {
		case domain.Deposit:
			deposits = deposits.Add(txn.Amount)
		case domain.Withdraw:
			withdrawals = withdrawals.Add(txn.Amount)
		}
	}
	return domain.Statistics{
		TotalTransactions: len(ledger),
		TotalDeposits:     deposits,
		TotalWithdrawals:  withdrawals,
		NetFlow:           deposits.Sub(withdrawals),
	}
}
