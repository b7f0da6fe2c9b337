package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/greenpoints/internal/server/http/dto"
)

// BalanceHandler manages points ledger endpoints.
type BalanceHandler struct {
	facade LedgerFacade
}

// NewBalanceHandler constructs BalanceHandler.
func NewBalanceHandler(facade LedgerFacade) *BalanceHandler {
	return &BalanceHandler{facade: facade}
}

// Summary handles GET /api/user/balance.
func (h *BalanceHandler) Summary(c *gin.Context) {
	userID := CurrentUserID(c)
	summary, err := h.facade.Balance(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{
		Current:     summary.Current,
		TotalEarned: summary.TotalEarned,
		TotalSpent:  summary.TotalSpent,
	})
}
