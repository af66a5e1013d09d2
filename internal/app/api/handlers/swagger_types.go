package handlers

import (
	"github.com/homegrove/estate/internal/app/service/listing"
	"github.com/homegrove/estate/internal/app/service/statistics"
	"github.com/homegrove/estate/internal/app/service/subscription"
	"github.com/homegrove/estate/internal/models"
	"github.com/homegrove/estate/pkg/response"
	"github.com/homegrove/estate/pkg/types"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespPlans wraps the plan catalog in the standard envelope.
type RespPlans struct {
	Code    response.APIResponseCode   `json:"code"`
	Message string                     `json:"message"`
	Data    []*models.SubscriptionPlan `json:"data"`
}

// RespListings wraps a listing page in the standard envelope.
type RespListings struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    *listing.BrowseResponse  `json:"data"`
}

// RespListing wraps a single listing in the standard envelope.
type RespListing struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    *models.Listing          `json:"data"`
}

// RespAssign wraps the assignment workflow result in the standard envelope.
type RespAssign struct {
	Code    response.APIResponseCode   `json:"code"`
	Message string                     `json:"message"`
	Data    *subscription.AssignResult `json:"data"`
}

// RespTransaction wraps a single transaction in the standard envelope.
type RespTransaction struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    *models.Transaction      `json:"data"`
}

// RespSellerSubscription wraps SellerSubscriptionResponse in the standard envelope.
type RespSellerSubscription struct {
	Code    response.APIResponseCode    `json:"code"`
	Message string                      `json:"message"`
	Data    *SellerSubscriptionResponse `json:"data"`
}

// RespDemoPayment wraps DemoPaymentResponse in the standard envelope.
type RespDemoPayment struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    *DemoPaymentResponse     `json:"data"`
}

// RespSubscriptionStatus wraps the current subscription snapshot, which is
// null when the subject has no active subscription.
type RespSubscriptionStatus struct {
	Code    response.APIResponseCode    `json:"code"`
	Message string                      `json:"message"`
	Data    *types.SubscriptionSnapshot `json:"data"`
}

// RespScanTransactions wraps ScanTransactionsResponse in the standard envelope.
type RespScanTransactions struct {
	Code    response.APIResponseCode  `json:"code"`
	Message string                    `json:"message"`
	Data    *ScanTransactionsResponse `json:"data"`
}

// RespStatistics wraps StatisticResponse in the standard envelope.
type RespStatistics struct {
	Code    response.APIResponseCode      `json:"code"`
	Message string                        `json:"message"`
	Data    *statistics.StatisticResponse `json:"data"`
}
