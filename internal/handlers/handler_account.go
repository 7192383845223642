package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finadmin/manual_ledger_app/internal/core/ports/services"
	"github.com/finadmin/manual_ledger_app/internal/dto"
	"github.com/finadmin/manual_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AccountHandler exposes the account picker search.
type AccountHandler struct {
	registryService portssvc.RegistrySvcFacade
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(registryService portssvc.RegistrySvcFacade) *AccountHandler {
	return &AccountHandler{registryService: registryService}
}

// SearchAccounts godoc
// @Summary Search accounts
// @Description Matches a case-insensitive substring of the username or a substring of the external UID; an empty query returns all accounts
// @Tags accounts
// @Produce  json
// @Param   q query string false "Search text"
// @Success 200 {array} dto.AccountResponse
// @Router /accounts [get]
func (h *AccountHandler) SearchAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SearchAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.registryService.Search(c.Request.Context(), params.Query)
	if err != nil {
		logger.Error("Failed to search accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}
