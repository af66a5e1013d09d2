package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homegrove/estate/internal/app/service/account"
	"github.com/homegrove/estate/internal/app/service/listing"
	"github.com/homegrove/estate/internal/app/service/plan"
	"github.com/homegrove/estate/internal/app/service/subscription"
	"github.com/homegrove/estate/internal/app/service/transaction"
	"github.com/homegrove/estate/pkg/response"
)

// respondError maps service errors onto the HTTP status taxonomy:
// 400 invalid argument, 401/403 auth, 404 not found, 500 everything else.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, plan.ErrPlanNotFound),
		errors.Is(err, subscription.ErrSubjectNotFound),
		errors.Is(err, account.ErrAccountNotFound),
		errors.Is(err, listing.ErrListingNotFound),
		errors.Is(err, transaction.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
	case errors.Is(err, listing.ErrSubscriptionRequired),
		errors.Is(err, listing.ErrNotOwner):
		c.JSON(http.StatusForbidden, response.ErrorT[any](response.APIResponseCodeForbidden, err.Error()))
	case errors.Is(err, account.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, err.Error()))
	case errors.Is(err, subscription.ErrInvalidLast4),
		errors.Is(err, subscription.ErrInvalidRequest),
		errors.Is(err, plan.ErrInvalidPlan),
		errors.Is(err, account.ErrEmailTaken),
		errors.Is(err, account.ErrInvalidRegistration),
		errors.Is(err, listing.ErrInvalidListing):
		c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, msg))
}
