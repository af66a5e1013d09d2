package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestApiStaffAssignSubscription_HappyPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/staff-subscription/assign", ApiStaffAssignSubscription(&stubSubs{}))

	body, _ := json.Marshal(map[string]any{
		"seller_id":      "seller-7",
		"plan_type":      "quarterly",
		"payment_method": "cash",
		"staff_note":     "paid at front desk",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/staff-subscription/assign", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"subscription"`)
	require.Contains(t, w.Body.String(), "seller-7")
}

func TestApiStaffAssignSubscription_ValidatesInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/staff-subscription/assign", ApiStaffAssignSubscription(&stubSubs{}))

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing seller_id", body: map[string]any{"plan_type": "monthly"}},
		{name: "unknown plan_type", body: map[string]any{"seller_id": "seller-7", "plan_type": "weekly"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/staff-subscription/assign", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestApiStaffPaymentFailure_RequiresReason(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/staff-subscription/payment-failure", ApiStaffPaymentFailure(&stubSubs{}))

	body, _ := json.Marshal(map[string]any{"seller_id": "seller-7"})
	req := httptest.NewRequest(http.MethodPost, "/api/staff-subscription/payment-failure", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApiStaffPaymentFailure_RecordsFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/staff-subscription/payment-failure", ApiStaffPaymentFailure(&stubSubs{}))

	body, _ := json.Marshal(map[string]any{"seller_id": "seller-7", "reason": "card declined at desk"})
	req := httptest.NewRequest(http.MethodPost, "/api/staff-subscription/payment-failure", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "card declined at desk")
	require.Contains(t, w.Body.String(), `"failed"`)
}
