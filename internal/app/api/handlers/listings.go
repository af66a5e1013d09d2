package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mw "github.com/homegrove/estate/internal/app/api/middleware"
	"github.com/homegrove/estate/internal/app/service/listing"
	"github.com/homegrove/estate/internal/models"
	"github.com/homegrove/estate/pkg/response"
)

// @Summary      Browse Listings
// @Description  Returns published listings with optional city and kind filters.
// @Tags         Listings
// @Produce      json
// @Param        city query string false "City filter"
// @Param        kind query string false "Listing kind (sale|rent)"
// @Param        from query int    false "Pagination offset"
// @Param        size query int    false "Page size"
// @Success      200  {object}  handlers.RespListings
// @Router       /api/listings [get]
func ApiBrowseListings(svc *listing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, _ := strconv.Atoi(c.Query("from"))
		size, _ := strconv.Atoi(c.Query("size"))
		res, err := svc.Browse(c.Request.Context(), &listing.BrowseRequest{
			City: c.Query("city"),
			Kind: models.ListingKind(c.Query("kind")),
			From: from,
			Size: size,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Get Listing
// @Tags         Listings
// @Produce      json
// @Param        id path string true "Listing ID"
// @Success      200  {object}  handlers.RespListing
// @Router       /api/listings/{id} [get]
func ApiGetListing(svc *listing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		l, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(l))
	}
}

// @Summary      Create Listing (Seller)
// @Description  Creates a listing. Refused without an active subscription.
// @Tags         Listings
// @Accept       json
// @Produce      json
// @Param        request body listing.UpsertRequest true "Listing"
// @Success      200  {object}  handlers.RespListing
// @Router       /api/listings [post]
func ApiCreateListing(svc *listing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := mw.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "no principal"))
			return
		}
		var req listing.UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		l, err := svc.Create(c.Request.Context(), p.AccountID, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(l))
	}
}

// @Summary      Update Listing (Seller)
// @Description  Updates an owned listing. Refused without an active subscription.
// @Tags         Listings
// @Accept       json
// @Produce      json
// @Param        id path string true "Listing ID"
// @Param        request body listing.UpsertRequest true "Listing changes"
// @Success      200  {object}  handlers.RespListing
// @Router       /api/listings/{id} [put]
func ApiUpdateListing(svc *listing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := mw.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "no principal"))
			return
		}
		var req listing.UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		l, err := svc.Update(c.Request.Context(), p.AccountID, c.Param("id"), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(l))
	}
}

// @Summary      Delete Listing (Seller)
// @Description  Archives an owned listing. Refused without an active subscription.
// @Tags         Listings
// @Produce      json
// @Param        id path string true "Listing ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/listings/{id} [delete]
func ApiDeleteListing(svc *listing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := mw.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "no principal"))
			return
		}
		if err := svc.Delete(c.Request.Context(), p.AccountID, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterPublicListingRoutes(r gin.IRouter, svc *listing.Service) {
	r.GET("", ApiBrowseListings(svc))
	r.GET("/:id", ApiGetListing(svc))
}

func RegisterSellerListingRoutes(r gin.IRouter, svc *listing.Service) {
	r.POST("", ApiCreateListing(svc))
	r.PUT("/:id", ApiUpdateListing(svc))
	r.DELETE("/:id", ApiDeleteListing(svc))
}
