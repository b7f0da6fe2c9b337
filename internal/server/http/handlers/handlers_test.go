package handlers_test

import (
	"io"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/greenpoints/internal/server/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser injects an authenticated user id the way AuthRequired would.
func asUser(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Next()
	}
}

func performRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
