package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greenloop/greenpoints/internal/domain/errors"
	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/server/http/dto"
)

// AdminHandler manages the administrative surface: reward catalog
// maintenance, exchange lifecycle transitions and points credits.
type AdminHandler struct {
	facade RewardsFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade RewardsFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// CreateReward handles POST /api/admin/rewards.
func (h *AdminHandler) CreateReward(c *gin.Context) {
	var req dto.RewardUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateReward(c.Request.Context(), rewardFromUpsert(&req))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidReward):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toRewardResponse(created))
}

// UpdateReward handles PUT /api/admin/rewards/:id.
func (h *AdminHandler) UpdateReward(c *gin.Context) {
	var req dto.RewardUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reward := rewardFromUpsert(&req)
	reward.ID = c.Param("id")

	if err := h.facade.UpdateReward(c.Request.Context(), reward); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidReward):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// DeleteReward handles DELETE /api/admin/rewards/:id.
func (h *AdminHandler) DeleteReward(c *gin.Context) {
	if err := h.facade.DeleteReward(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateExchangeStatus handles POST /api/admin/exchanges/:id/status.
func (h *AdminHandler) UpdateExchangeStatus(c *gin.Context) {
	var req dto.ExchangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	exchange, err := h.facade.UpdateExchangeStatus(c.Request.Context(), c.Param("id"), model.ExchangeStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toExchangeHistoryItem(exchange))
}

// CreditPoints handles POST /api/admin/points/credit.
func (h *AdminHandler) CreditPoints(c *gin.Context) {
	var req dto.CreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.CreditPoints(c.Request.Context(), req.UserID, req.Amount); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

func rewardFromUpsert(req *dto.RewardUpsertRequest) *model.Reward {
	return &model.Reward{
		Name:        req.Name,
		Description: req.Description,
		PointsCost:  req.PointsCost,
		Stock:       req.Stock,
		Category:    model.RewardCategory(req.Category),
		Status:      model.RewardStatus(req.Status),
		ValidFrom:   req.ValidFrom,
		ValidUntil:  req.ValidUntil,
		ImageURL:    req.ImageURL,
	}
}
