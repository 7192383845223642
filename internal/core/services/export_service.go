package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/finadmin/manual_ledger_app/internal/core/ports/services"
	"github.com/finadmin/manual_ledger_app/internal/middleware"
)

// ErrEmptyLedger reports an export attempt against an empty ledger. Callers
// surface it as a warning rather than a failure.
var ErrEmptyLedger = fmt.Errorf("no transactions to export")

// exportHeader is the fixed column set of the export artifact.
var exportHeader = []string{
	"Transaction ID", "Username", "Type", "Amount",
	"Previous Balance", "New Balance", "Remark", "Display", "Timestamp", "Status",
}

// exportTimestampLayout renders timestamps the way the admin frontend showed
// them (Date.toLocaleString with a US locale).
const exportTimestampLayout = "1/2/2006, 3:04:05 PM"

// ExportService serializes the ledger to CSV. Field values are quoted and
// escaped by the CSV writer, so free-text remarks containing delimiters
// survive a round trip.
type ExportService struct {
	ledger portssvc.LedgerSvcFacade
}

// Ensure ExportService implements the portssvc.ExportSvcFacade interface
var _ portssvc.ExportSvcFacade = (*ExportService)(nil)

// NewExportService creates a new ExportService.
func NewExportService(ledger portssvc.LedgerSvcFacade) *ExportService {
	return &ExportService{ledger: ledger}
}

// ExportCSV renders the full ledger, newest first, with amounts formatted to
// two fraction digits and the kind capitalized. Returns the document and the
// dated filename the frontend used for downloads.
func (s *ExportService) ExportCSV(ctx context.Context) ([]byte, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ledger := s.ledger.Snapshot()
	if len(ledger) == 0 {
		return nil, "", ErrEmptyLedger
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write export header: %w", err)
	}
	for _, txn := range ledger {
		record := []string{
			fmt.Sprintf("%d", txn.TransactionID),
			txn.Username,
			txn.Kind.Label(),
			txn.Amount.StringFixed(2),
			txn.PreviousBalance.StringFixed(2),
			txn.NewBalance.StringFixed(2),
			txn.Remark,
			txn.Visibility.Label(),
			txn.CreatedAt.Local().Format(exportTimestampLayout),
			string(txn.Status),
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("failed to write export row for transaction %d: %w", txn.TransactionID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush export: %w", err)
	}

	filename := fmt.Sprintf("manual-transactions-%s.csv", time.Now().UTC().Format("2006-01-02"))
	logger.Info("Ledger exported", slog.Int("transaction_count", len(ledger)), slog.String("filename", filename))
	return buf.Bytes(), filename, nil
}
