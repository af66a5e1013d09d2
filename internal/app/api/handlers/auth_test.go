package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/homegrove/estate/internal/app/service/account"
)

func TestApiRegister_ValidationMapsToBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// validation runs before any query, so no database is needed
	r.POST("/api/auth/register", ApiRegister(account.NewService(nil, zap.NewNop().Sugar())))

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "short password", body: map[string]any{"role": "seller", "name": "Ann", "email": "ann@example.com", "password": "short"}},
		{name: "staff role refused", body: map[string]any{"role": "staff", "name": "Ann", "email": "ann@example.com", "password": "longenough"}},
		{name: "missing name", body: map[string]any{"role": "buyer", "email": "ann@example.com", "password": "longenough"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Contains(t, w.Body.String(), `"code":40000`)
		})
	}
}
