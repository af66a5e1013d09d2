package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	subsvc "github.com/homegrove/estate/internal/app/service/subscription"
	"github.com/homegrove/estate/internal/models"
	"github.com/homegrove/estate/pkg/types"
)

// stubSubs drives handler tests without a database. ProcessDemoPayment
// mirrors the sentinel contract: "1111" charges, anything else declines.
type stubSubs struct {
	active *models.Subscription
}

func (s *stubSubs) ActiveSubscription(_ context.Context, _ string, _ types.SubjectKind) (*models.Subscription, error) {
	return s.active, nil
}

func (s *stubSubs) Assign(_ context.Context, req *subsvc.AssignRequest) (*subsvc.AssignResult, error) {
	sub := &models.Subscription{
		ID:          "sub-1",
		SubjectID:   req.SubjectID,
		SubjectKind: req.SubjectKind,
		PlanType:    req.PlanType,
		Status:      types.SubscriptionStatusActive,
		StartAt:     time.Now(),
		EndAt:       time.Now().AddDate(0, req.PlanType.Months(), 0),
	}
	return &subsvc.AssignResult{Subscription: sub, Transaction: &models.Transaction{ID: "txn-1"}}, nil
}

func (s *stubSubs) ProcessDemoPayment(_ context.Context, req *subsvc.DemoPaymentRequest) (*subsvc.AssignResult, error) {
	if len(req.Last4Digits) != 4 {
		return nil, subsvc.ErrInvalidLast4
	}
	txn := &models.Transaction{ID: "txn-1", Status: types.TransactionStatusFailed}
	if req.Last4Digits != "1111" {
		return &subsvc.AssignResult{Transaction: txn}, nil
	}
	txn.Status = types.TransactionStatusSuccess
	sub := &models.Subscription{
		ID:       "sub-1",
		PlanType: req.PlanType,
		Status:   types.SubscriptionStatusActive,
		StartAt:  time.Now(),
		EndAt:    time.Now().AddDate(0, req.PlanType.Months(), 0),
	}
	return &subsvc.AssignResult{Subscription: sub, Transaction: txn}, nil
}

func (s *stubSubs) RecordPaymentFailure(_ context.Context, req *subsvc.PaymentFailureRequest) (*models.Transaction, error) {
	return &models.Transaction{ID: "txn-1", Status: types.TransactionStatusFailed, FailureReason: &req.Reason}, nil
}

func sellerPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("principal", &types.Principal{AccountID: "seller-1", Role: types.RoleSeller})
		c.Next()
	}
}

func demoPaymentBody(t *testing.T, last4 string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]any{"plan_type": "monthly", "last_4_digits": last4})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestApiProcessDemoPayment_SentinelSucceeds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/demo-payment/process", sellerPrincipal(), ApiProcessDemoPayment(&stubSubs{}))

	req := httptest.NewRequest(http.MethodPost, "/api/demo-payment/process", demoPaymentBody(t, "1111"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)

	cookies := w.Result().Cookies()
	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == "seller_subscription" {
			found = c
		}
	}
	require.NotNil(t, found, "seller_subscription cookie must be set on success")
	require.False(t, found.HttpOnly, "cookie must be readable by the client")
	require.Contains(t, found.Value, "sub-1")
}

func TestApiProcessDemoPayment_OtherDigitsDecline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/demo-payment/process", sellerPrincipal(), ApiProcessDemoPayment(&stubSubs{}))

	req := httptest.NewRequest(http.MethodPost, "/api/demo-payment/process", demoPaymentBody(t, "4242"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":false`)

	for _, c := range w.Result().Cookies() {
		require.NotEqual(t, "seller_subscription", c.Name, "declined payment must not set the subscription cookie")
	}
}

func TestApiProcessDemoPayment_MalformedLast4(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/demo-payment/process", sellerPrincipal(), ApiProcessDemoPayment(&stubSubs{}))

	req := httptest.NewRequest(http.MethodPost, "/api/demo-payment/process", demoPaymentBody(t, "11"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApiProcessDemoPayment_NoPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/demo-payment/process", ApiProcessDemoPayment(&stubSubs{}))

	req := httptest.NewRequest(http.MethodPost, "/api/demo-payment/process", demoPaymentBody(t, "1111"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApiSubscriptionStatus_RefreshesCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	active := &models.Subscription{
		ID:       "sub-9",
		PlanType: types.PlanTypeAnnually,
		Status:   types.SubscriptionStatusActive,
		StartAt:  time.Now(),
		EndAt:    time.Now().AddDate(0, 12, 0),
	}
	r := gin.New()
	r.GET("/api/demo-payment/subscription-status", sellerPrincipal(), ApiSubscriptionStatus(&stubSubs{active: active}))

	req := httptest.NewRequest(http.MethodGet, "/api/demo-payment/subscription-status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "sub-9")

	var found *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "seller_subscription" {
			found = c
		}
	}
	require.NotNil(t, found)
	require.Positive(t, found.MaxAge)
}

func TestApiSubscriptionStatus_ClearsCookieWithoutSubscription(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/demo-payment/subscription-status", sellerPrincipal(), ApiSubscriptionStatus(&stubSubs{}))

	req := httptest.NewRequest(http.MethodGet, "/api/demo-payment/subscription-status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var found *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "seller_subscription" {
			found = c
		}
	}
	require.NotNil(t, found, "cookie must be cleared explicitly")
	require.Negative(t, found.MaxAge)
}

func TestRegisterDemoPaymentRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterDemoPaymentRoutes(r.Group("/api/demo-payment"), &stubSubs{})

	routes := r.Routes()
	contains := func(target string) bool {
		for _, rt := range routes {
			if rt.Method+" "+rt.Path == target {
				return true
			}
		}
		return false
	}

	require.True(t, contains("POST /api/demo-payment/process"))
	require.True(t, contains("GET /api/demo-payment/subscription-status"))
}
