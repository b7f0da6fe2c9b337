package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greenloop/greenpoints/internal/domain/errors"
	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/server/http/dto"
	"github.com/greenloop/greenpoints/internal/usecase"
)

// ExchangeHandler manages reward exchange endpoints.
type ExchangeHandler struct {
	facade ExchangeFacade
}

// NewExchangeHandler constructs ExchangeHandler.
func NewExchangeHandler(facade ExchangeFacade) *ExchangeHandler {
	return &ExchangeHandler{facade: facade}
}

// Create handles POST /api/user/exchanges.
func (h *ExchangeHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.ExchangeReward(c.Request.Context(), userID, usecase.ExchangeRequest{
		RewardID:        req.RewardID,
		Quantity:        req.Quantity,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		IdempotencyKey:  req.IdempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity), errors.Is(err, domainErrors.ErrInvalidReward):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInsufficientPoints):
			c.Status(http.StatusPaymentRequired)
		case errors.Is(err, domainErrors.ErrOutOfStock), errors.Is(err, domainErrors.ErrRewardUnavailable):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, dto.ExchangeResponse{
		ID:              result.Exchange.ID,
		RewardID:        result.Exchange.RewardID,
		Quantity:        result.Exchange.Quantity,
		PointsSpent:     result.Exchange.PointsSpent,
		RemainingPoints: result.RemainingPoints,
		Status:          string(result.Exchange.Status),
		CreatedAt:       result.Exchange.CreatedAt,
	})
}

// Cancel handles POST /api/user/exchanges/:id/cancel.
func (h *ExchangeHandler) Cancel(c *gin.Context) {
	userID := CurrentUserID(c)

	exchange, err := h.facade.CancelExchange(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrNotCancellable):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toExchangeHistoryItem(exchange))
}

// List handles GET /api/user/exchanges.
func (h *ExchangeHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	page, size := ParsePaging(c)

	exchanges, err := h.facade.ExchangeHistory(c.Request.Context(), userID, page, size)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(exchanges) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.ExchangeHistoryItem, 0, len(exchanges))
	for _, exchange := range exchanges {
		resp = append(resp, toExchangeHistoryItem(&exchange))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/user/exchanges/:id.
func (h *ExchangeHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)

	exchange, err := h.facade.ExchangeByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toExchangeHistoryItem(exchange))
}

func toExchangeHistoryItem(exchange *model.Exchange) dto.ExchangeHistoryItem {
	return dto.ExchangeHistoryItem{
		ID:              exchange.ID,
		RewardID:        exchange.RewardID,
		Quantity:        exchange.Quantity,
		PointsSpent:     exchange.PointsSpent,
		Status:          string(exchange.Status),
		DeliveryAddress: exchange.DeliveryAddress,
		Notes:           exchange.Notes,
		CreatedAt:       exchange.CreatedAt,
		UpdatedAt:       exchange.UpdatedAt,
	}
}
