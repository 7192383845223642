package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/finadmin/manual_ledger_app/internal/core/ports/services"
	"github.com/finadmin/manual_ledger_app/internal/core/services"
	"github.com/finadmin/manual_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ExportHandler exposes the ledger CSV download.
type ExportHandler struct {
	exportService portssvc.ExportSvcFacade
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService portssvc.ExportSvcFacade) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportTransactions godoc
// @Summary Export the ledger as CSV
// @Description Streams the full ledger newest first as a CSV attachment
// @Tags transactions
// @Produce  text/csv
// @Success 200 {string} string "CSV document"
// @Failure 409 {object} map[string]string "Ledger is empty, nothing to export"
// @Router /transactions/export [get]
func (h *ExportHandler) ExportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, filename, err := h.exportService.ExportCSV(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrEmptyLedger) {
			c.JSON(http.StatusConflict, gin.H{"warning": "No transactions to export"})
			return
		}
		logger.Error("Failed to export ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", doc)
}
