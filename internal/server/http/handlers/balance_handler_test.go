package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/server/http/dto"
	"github.com/greenloop/greenpoints/internal/server/http/handlers"
	"github.com/greenloop/greenpoints/internal/test"
)

func balanceRouter(stub test.LedgerFacadeStub) *gin.Engine {
	h := handlers.NewBalanceHandler(stub)
	router := gin.New()
	router.GET("/api/user/balance", asUser(42), h.Summary)
	return router
}

func TestBalanceSummary(t *testing.T) {
	var gotUser int64
	stub := test.LedgerFacadeStub{
		BalanceFn: func(_ context.Context, userID int64) (*model.PointsSummary, error) {
			gotUser = userID
			return &model.PointsSummary{Current: 250, TotalEarned: 300, TotalSpent: 50}, nil
		},
	}

	w := performRequest(balanceRouter(stub), http.MethodGet, "/api/user/balance", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotUser != 42 {
		t.Errorf("user id = %d, want 42", gotUser)
	}

	var resp dto.BalanceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Current != 250 || resp.TotalEarned != 300 || resp.TotalSpent != 50 {
		t.Errorf("balance = %+v", resp)
	}
}

func TestBalanceSummaryStorageFailure(t *testing.T) {
	stub := test.LedgerFacadeStub{
		BalanceFn: func(context.Context, int64) (*model.PointsSummary, error) {
			return nil, errors.New("boom")
		},
	}

	w := performRequest(balanceRouter(stub), http.MethodGet, "/api/user/balance", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
