package router_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/greenloop/greenpoints/internal/domain/model"
	pkgAuth "github.com/greenloop/greenpoints/internal/pkg/auth"
	"github.com/greenloop/greenpoints/internal/server/http/router"
	"github.com/greenloop/greenpoints/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func serve(engine http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := router.Setup(test.RewardsFacadeStub{}, discardLogger())

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"reward list", http.MethodGet, "/api/rewards", http.StatusOK},
		{"reward by id", http.MethodGet, "/api/rewards/r-1", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(engine, tt.method, tt.target, "")
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestSetupProtectedRoutesRequireToken(t *testing.T) {
	engine := router.Setup(test.RewardsFacadeStub{
		AuthFacadeStub: test.AuthFacadeStub{
			ParseFn: func(token string) (int64, error) {
				if token != "valid" {
					return 0, pkgAuth.ErrInvalidToken
				}
				return 42, nil
			},
		},
	}, discardLogger())

	targets := []string{
		"/api/user/balance",
		"/api/user/exchanges",
		"/api/user/exchanges/e-1",
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			if w := serve(engine, http.MethodGet, target, ""); w.Code != http.StatusUnauthorized {
				t.Errorf("without token status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
			if w := serve(engine, http.MethodGet, target, "valid"); w.Code != http.StatusOK {
				t.Errorf("with token status = %d, want %d", w.Code, http.StatusOK)
			}
		})
	}
}

func TestSetupAdminRoutesRequireRole(t *testing.T) {
	member := router.Setup(test.RewardsFacadeStub{}, discardLogger())
	if w := serve(member, http.MethodDelete, "/api/admin/rewards/r-1", "token"); w.Code != http.StatusForbidden {
		t.Errorf("member status = %d, want %d", w.Code, http.StatusForbidden)
	}

	admin := router.Setup(test.RewardsFacadeStub{
		AuthFacadeStub: test.AuthFacadeStub{
			RoleFn: func(context.Context, int64) (model.UserRole, error) {
				return model.UserRoleAdmin, nil
			},
		},
	}, discardLogger())
	if w := serve(admin, http.MethodDelete, "/api/admin/rewards/r-1", "token"); w.Code != http.StatusNoContent {
		t.Errorf("admin status = %d, want %d", w.Code, http.StatusNoContent)
	}
}
