package handlers

import (
	"net/http"

	portssvc "github.com/finadmin/manual_ledger_app/internal/core/ports/services"
	"github.com/finadmin/manual_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// ReportingHandler exposes ledger statistics.
type ReportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(reportingService portssvc.ReportingSvcFacade) *ReportingHandler {
	return &ReportingHandler{reportingService: reportingService}
}

// GetStatistics godoc
// @Summary Get ledger statistics
// @Description Returns transaction count, deposit and withdrawal totals and net flow over the ledger
// @Tags statistics
// @Produce  json
// @Success 200 {object} dto.StatisticsResponse
// @Router /statistics [get]
func (h *ReportingHandler) GetStatistics(c *gin.Context) {
	stats := h.reportingService.GetStatistics(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}
