package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/homegrove/estate/internal/app/api/middleware"
	subsvc "github.com/homegrove/estate/internal/app/service/subscription"
	"github.com/homegrove/estate/pkg/response"
	"github.com/homegrove/estate/pkg/types"
)

// sellerSubscriptionCookie is readable by the client (not HTTP-only) so the
// SPA can render subscription state without an extra request.
const (
	sellerSubscriptionCookie = "seller_subscription"
	sellerSubscriptionMaxAge = 30 * 24 * 60 * 60
)

type DemoPaymentRequest struct {
	Amount      int64          `json:"amount"`
	Duration    int            `json:"duration"`
	PlanType    types.PlanType `json:"plan_type"`
	Last4Digits string         `json:"last_4_digits"`
}

type DemoPaymentResponse struct {
	Success      bool                        `json:"success"`
	Subscription *types.SubscriptionSnapshot `json:"subscription"`
	Transaction  any                         `json:"transaction"`
}

func setSubscriptionCookie(c *gin.Context, snap *types.SubscriptionSnapshot) {
	b, err := json.Marshal(snap)
	if err != nil {
		return
	}
	c.SetCookie(sellerSubscriptionCookie, string(b), sellerSubscriptionMaxAge, "/", "", false, false)
}

func clearSubscriptionCookie(c *gin.Context) {
	c.SetCookie(sellerSubscriptionCookie, "", -1, "/", "", false, false)
}

// @Summary      Process Demo Payment
// @Description  Runs the demo-card flow; "1111" as the last four digits simulates a successful charge.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body handlers.DemoPaymentRequest true "Demo payment request"
// @Success      200  {object}  handlers.RespDemoPayment
// @Router       /api/demo-payment/process [post]
func ApiProcessDemoPayment(subs subsvc.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := mw.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "no principal"))
			return
		}

		var req DemoPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if !req.PlanType.Valid() {
			badRequest(c, "a valid plan_type is required")
			return
		}

		res, err := subs.ProcessDemoPayment(c.Request.Context(), &subsvc.DemoPaymentRequest{
			SubjectID:   p.AccountID,
			SubjectKind: p.Role.SubjectKind(),
			PlanType:    req.PlanType,
			Last4Digits: req.Last4Digits,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		out := &DemoPaymentResponse{
			Success:      res.Subscription != nil,
			Subscription: res.Subscription.Snapshot(),
			Transaction:  res.Transaction,
		}
		if res.Subscription != nil {
			setSubscriptionCookie(c, res.Subscription.Snapshot())
		}
		c.JSON(http.StatusOK, response.OKT(out))
	}
}

// @Summary      Subscription Status
// @Description  Refreshes or clears the seller_subscription cookie from the current active subscription.
// @Tags         Payment
// @Produce      json
// @Success      200  {object}  handlers.RespSubscriptionStatus
// @Router       /api/demo-payment/subscription-status [get]
func ApiSubscriptionStatus(subs subsvc.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := mw.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "no principal"))
			return
		}

		sub, err := subs.ActiveSubscription(c.Request.Context(), p.AccountID, p.Role.SubjectKind())
		if err != nil {
			respondError(c, err)
			return
		}

		if sub == nil {
			clearSubscriptionCookie(c)
			c.JSON(http.StatusOK, response.OKT[*types.SubscriptionSnapshot](nil))
			return
		}

		snap := sub.Snapshot()
		setSubscriptionCookie(c, snap)
		c.JSON(http.StatusOK, response.OKT(snap))
	}
}

func RegisterDemoPaymentRoutes(r gin.IRouter, subs subsvc.Manager) {
	r.POST("/process", ApiProcessDemoPayment(subs))
	r.GET("/subscription-status", ApiSubscriptionStatus(subs))
}
