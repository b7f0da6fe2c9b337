package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/greenloop/greenpoints/internal/domain/errors"
	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/server/http/dto"
	"github.com/greenloop/greenpoints/internal/server/http/handlers"
	"github.com/greenloop/greenpoints/internal/test"
)

func adminRouter(stub test.RewardsFacadeStub) *gin.Engine {
	h := handlers.NewAdminHandler(stub)
	router := gin.New()
	admin := router.Group("/api/admin", asUser(1))
	admin.POST("/rewards", h.CreateReward)
	admin.PUT("/rewards/:id", h.UpdateReward)
	admin.DELETE("/rewards/:id", h.DeleteReward)
	admin.POST("/exchanges/:id/status", h.UpdateExchangeStatus)
	admin.POST("/points/credit", h.CreditPoints)
	return router
}

const validRewardBody = `{"name":"steel bottle","description":"insulated","points_cost":150,"stock":10,"category":"GIFT","status":"ACTIVE"}`

func TestAdminCreateReward(t *testing.T) {
	var gotReward *model.Reward
	stub := test.RewardsFacadeStub{
		CatalogFacadeStub: test.CatalogFacadeStub{
			CreateRewardFn: func(_ context.Context, reward *model.Reward) (*model.Reward, error) {
				gotReward = reward
				created := *reward
				created.ID = "r-1"
				return &created, nil
			},
		},
	}

	w := performRequest(adminRouter(stub), http.MethodPost, "/api/admin/rewards", validRewardBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if gotReward.Name != "steel bottle" || gotReward.PointsCost != 150 || gotReward.Category != model.RewardCategoryGift {
		t.Errorf("reward = %+v", gotReward)
	}

	var resp dto.RewardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "r-1" {
		t.Errorf("id = %q, want r-1", resp.ID)
	}
}

func TestAdminCreateRewardErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"malformed body", `{`, nil, http.StatusBadRequest},
		{"invalid reward", validRewardBody, domainErrors.ErrInvalidReward, http.StatusUnprocessableEntity},
		{"duplicate", validRewardBody, domainErrors.ErrAlreadyExists, http.StatusConflict},
		{"storage failure", validRewardBody, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := test.RewardsFacadeStub{
				CatalogFacadeStub: test.CatalogFacadeStub{
					CreateRewardFn: func(context.Context, *model.Reward) (*model.Reward, error) {
						return nil, tt.err
					},
				},
			}
			w := performRequest(adminRouter(stub), http.MethodPost, "/api/admin/rewards", tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestAdminUpdateReward(t *testing.T) {
	var gotReward *model.Reward
	stub := test.RewardsFacadeStub{
		CatalogFacadeStub: test.CatalogFacadeStub{
			UpdateRewardFn: func(_ context.Context, reward *model.Reward) error {
				gotReward = reward
				return nil
			},
		},
	}

	w := performRequest(adminRouter(stub), http.MethodPut, "/api/admin/rewards/r-3", validRewardBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotReward.ID != "r-3" {
		t.Errorf("id from path = %q, want r-3", gotReward.ID)
	}
}

func TestAdminUpdateRewardNotFound(t *testing.T) {
	stub := test.RewardsFacadeStub{
		CatalogFacadeStub: test.CatalogFacadeStub{
			UpdateRewardFn: func(context.Context, *model.Reward) error {
				return domainErrors.ErrNotFound
			},
		},
	}

	w := performRequest(adminRouter(stub), http.MethodPut, "/api/admin/rewards/ghost", validRewardBody)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAdminDeleteReward(t *testing.T) {
	w := performRequest(adminRouter(test.RewardsFacadeStub{}), http.MethodDelete, "/api/admin/rewards/r-1", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}

	stub := test.RewardsFacadeStub{
		CatalogFacadeStub: test.CatalogFacadeStub{
			DeleteRewardFn: func(context.Context, string) error {
				return domainErrors.ErrNotFound
			},
		},
	}
	w = performRequest(adminRouter(stub), http.MethodDelete, "/api/admin/rewards/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAdminUpdateExchangeStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"approve", `{"status":"APPROVED"}`, nil, http.StatusOK},
		{"malformed body", `status`, nil, http.StatusBadRequest},
		{"missing exchange", `{"status":"APPROVED"}`, domainErrors.ErrNotFound, http.StatusNotFound},
		{"bad transition", `{"status":"PENDING"}`, domainErrors.ErrInvalidTransition, http.StatusConflict},
		{"storage failure", `{"status":"APPROVED"}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := test.RewardsFacadeStub{}
			if tt.err != nil {
				stub.ExchangeFacadeStub = test.ExchangeFacadeStub{
					UpdateStatusFn: func(context.Context, string, model.ExchangeStatus) (*model.Exchange, error) {
						return nil, tt.err
					},
				}
			}
			w := performRequest(adminRouter(stub), http.MethodPost, "/api/admin/exchanges/e-1/status", tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestAdminCreditPoints(t *testing.T) {
	var gotUser, gotAmount int64
	stub := test.RewardsFacadeStub{
		LedgerFacadeStub: test.LedgerFacadeStub{
			CreditFn: func(_ context.Context, userID, amount int64) error {
				gotUser, gotAmount = userID, amount
				return nil
			},
		},
	}

	w := performRequest(adminRouter(stub), http.MethodPost, "/api/admin/points/credit", `{"user_id":7,"amount":120}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotUser != 7 || gotAmount != 120 {
		t.Errorf("credited (%d, %d), want (7, 120)", gotUser, gotAmount)
	}
}

func TestAdminCreditPointsErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"malformed body", `{`, nil, http.StatusBadRequest},
		{"non positive amount", `{"user_id":7,"amount":0}`, domainErrors.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{"unknown user", `{"user_id":999,"amount":10}`, domainErrors.ErrNotFound, http.StatusNotFound},
		{"storage failure", `{"user_id":7,"amount":10}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := test.RewardsFacadeStub{
				LedgerFacadeStub: test.LedgerFacadeStub{
					CreditFn: func(context.Context, int64, int64) error {
						return tt.err
					},
				},
			}
			w := performRequest(adminRouter(stub), http.MethodPost, "/api/admin/points/credit", tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
