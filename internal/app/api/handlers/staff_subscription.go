package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homegrove/estate/internal/app/service/account"
	subsvc "github.com/homegrove/estate/internal/app/service/subscription"
	"github.com/homegrove/estate/pkg/response"
	"github.com/homegrove/estate/pkg/types"
)

type AssignSubscriptionRequest struct {
	SellerID      string              `json:"seller_id"`
	PlanType      types.PlanType      `json:"plan_type"`
	PaymentMethod types.PaymentMethod `json:"payment_method"`
	StaffNote     string              `json:"staff_note"`
}

type PaymentFailureRequest struct {
	SellerID string `json:"seller_id"`
	Reason   string `json:"reason"`
}

type SellerSubscriptionResponse struct {
	Seller       *SellerView                 `json:"seller"`
	Subscription *types.SubscriptionSnapshot `json:"subscription"`
}

type SellerView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// @Summary      Assign Subscription (Staff)
// @Description  Assigns a plan to a seller with an explicit success payment.
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        request body handlers.AssignSubscriptionRequest true "Assignment request"
// @Success      200  {object}  handlers.RespAssign
// @Router       /api/staff-subscription/assign [post]
func ApiStaffAssignSubscription(subs subsvc.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AssignSubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if req.SellerID == "" || !req.PlanType.Valid() {
			badRequest(c, "seller_id and a valid plan_type are required")
			return
		}

		res, err := subs.Assign(c.Request.Context(), &subsvc.AssignRequest{
			SubjectID:   req.SellerID,
			SubjectKind: types.SubjectKindSeller,
			PlanType:    req.PlanType,
			Method:      req.PaymentMethod,
			StaffNote:   req.StaffNote,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Record Payment Failure (Staff)
// @Description  Writes a failed transaction without touching any subscription.
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        request body handlers.PaymentFailureRequest true "Failure request"
// @Success      200  {object}  handlers.RespTransaction
// @Router       /api/staff-subscription/payment-failure [post]
func ApiStaffPaymentFailure(subs subsvc.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentFailureRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if req.SellerID == "" || req.Reason == "" {
			badRequest(c, "seller_id and reason are required")
			return
		}

		txn, err := subs.RecordPaymentFailure(c.Request.Context(), &subsvc.PaymentFailureRequest{
			SubjectID:   req.SellerID,
			SubjectKind: types.SubjectKindSeller,
			Reason:      req.Reason,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(txn))
	}
}

// @Summary      Get Seller Subscription (Staff)
// @Description  Returns the seller identity and its current active subscription, if any.
// @Tags         Staff
// @Produce      json
// @Param        sellerId path string true "Seller ID"
// @Success      200  {object}  handlers.RespSellerSubscription
// @Router       /api/staff-subscription/seller/{sellerId} [get]
func ApiStaffGetSellerSubscription(subs subsvc.Manager, accts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.Param("sellerId")

		seller, err := accts.GetByRole(c.Request.Context(), sellerID, types.RoleSeller)
		if err != nil {
			respondError(c, err)
			return
		}

		sub, err := subs.ActiveSubscription(c.Request.Context(), sellerID, types.SubjectKindSeller)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, response.OKT(&SellerSubscriptionResponse{
			Seller:       &SellerView{ID: seller.ID, Name: seller.Name, Email: seller.Email},
			Subscription: sub.Snapshot(),
		}))
	}
}

func RegisterStaffSubscriptionRoutes(r gin.IRouter, subs subsvc.Manager, accts *account.Service) {
	r.POST("/assign", ApiStaffAssignSubscription(subs))
	r.POST("/payment-failure", ApiStaffPaymentFailure(subs))
	r.GET("/seller/:sellerId", ApiStaffGetSellerSubscription(subs, accts))
}
