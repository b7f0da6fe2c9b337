package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greenloop/greenpoints/internal/domain/errors"
	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/server/http/dto"
)

// RewardHandler serves the public reward catalog.
type RewardHandler struct {
	facade CatalogFacade
}

// NewRewardHandler constructs RewardHandler.
func NewRewardHandler(facade CatalogFacade) *RewardHandler {
	return &RewardHandler{facade: facade}
}

// List handles GET /api/rewards.
func (h *RewardHandler) List(c *gin.Context) {
	filter := ParseRewardFilter(c)

	page, err := h.facade.Rewards(c.Request.Context(), filter)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := dto.RewardListResponse{
		Rewards:  make([]dto.RewardResponse, 0, len(page.Rewards)),
		Total:    page.Total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	for _, reward := range page.Rewards {
		resp.Rewards = append(resp.Rewards, toRewardResponse(&reward))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/rewards/:id.
func (h *RewardHandler) Get(c *gin.Context) {
	reward, err := h.facade.Reward(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toRewardResponse(reward))
}

func toRewardResponse(reward *model.Reward) dto.RewardResponse {
	return dto.RewardResponse{
		ID:          reward.ID,
		Name:        reward.Name,
		Description: reward.Description,
		PointsCost:  reward.PointsCost,
		Stock:       reward.Stock,
		Category:    string(reward.Category),
		Status:      string(reward.Status),
		ValidFrom:   reward.ValidFrom,
		ValidUntil:  reward.ValidUntil,
		ImageURL:    reward.ImageURL,
		CreatedAt:   reward.CreatedAt,
	}
}
