package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/homegrove/estate/internal/app/service/statistics"
	"github.com/homegrove/estate/internal/app/service/transaction"
	"github.com/homegrove/estate/internal/models"
	"github.com/homegrove/estate/pkg/response"
	"github.com/homegrove/estate/pkg/types"
)

type ScanTransactionsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

// TransactionItem is the admin-facing transaction row.
type TransactionItem struct {
	ID             string                  `json:"id"`
	SubjectID      string                  `json:"subject_id"`
	SubjectKind    types.SubjectKind       `json:"subject_kind"`
	Amount         int64                   `json:"amount"`
	Currency       string                  `json:"currency"`
	Status         types.TransactionStatus `json:"status"`
	Method         types.PaymentMethod     `json:"method"`
	CardLast4      string                  `json:"card_last4"`
	PlanType       types.PlanType          `json:"plan_type"`
	DurationMonths int                     `json:"duration_months"`
	SubscriptionID *string                 `json:"subscription_id"`
	FailureReason  *string                 `json:"failure_reason"`
	CreatedAt      time.Time               `json:"created_at"`
}

func toTransactionItem(m *models.Transaction) *TransactionItem {
	return &TransactionItem{
		ID:             m.ID,
		SubjectID:      m.SubjectID,
		SubjectKind:    m.SubjectKind,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Status:         m.Status,
		Method:         m.Method,
		CardLast4:      m.CardLast4,
		PlanType:       m.PlanType,
		DurationMonths: m.DurationMonths,
		SubscriptionID: m.SubscriptionID,
		FailureReason:  m.FailureReason,
		CreatedAt:      m.CreatedAt,
	}
}

type ScanTransactionsResponse struct {
	Items []*TransactionItem `json:"items"`
	Total int64              `json:"total"`
}

// @Summary      Scan Transactions (Admin)
// @Description  Retrieves a paginated and filterable list of payment transactions.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.ScanTransactionsRequest true "Scan request with filters, pagination, and sorting"
// @Success      200  {object}  handlers.RespScanTransactions
// @Router       /api/admin/transactions/scan [post]
func ApiScanTransactions(mgr transaction.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ScanTransactionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		scanReq := &transaction.ScanTransactionsRequest{Filters: req.Filters, From: req.From, Size: req.Size, SortBy: req.SortBy, SortOrder: req.SortOrder}
		res, err := mgr.ScanTransactions(c.Request.Context(), scanReq)
		if err != nil {
			respondError(c, err)
			return
		}
		items := lo.Map(res.Items, func(it *models.Transaction, _ int) *TransactionItem { return toTransactionItem(it) })
		c.JSON(http.StatusOK, response.OKT(&ScanTransactionsResponse{Items: items, Total: res.Total}))
	}
}

// @Summary      Get Statistics (Admin)
// @Description  Returns dashboard statistics for transactions and subscriptions.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body statistics.StatisticRequest true "Statistic request"
// @Success      200  {object}  handlers.RespStatistics
// @Router       /api/admin/statistics [post]
func ApiGetStatistics(svc *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statistics.StatisticRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		res, err := svc.GetStatistics(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterAdminRoutes(r gin.IRouter, mgr transaction.Manager, stats *statistics.Service) {
	r.POST("/transactions/scan", ApiScanTransactions(mgr))
	r.POST("/statistics", ApiGetStatistics(stats))
}
