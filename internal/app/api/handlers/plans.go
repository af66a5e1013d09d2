package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homegrove/estate/internal/app/service/plan"
	"github.com/homegrove/estate/pkg/response"
)

type UpdatePlansRequest struct {
	Plans []plan.PlanUpdate `json:"plans"`
}

// @Summary      List Subscription Plans
// @Description  Returns the plan catalog, seeding defaults on first read.
// @Tags         Plans
// @Produce      json
// @Success      200  {object}  handlers.RespPlans
// @Router       /api/subscription-plans [get]
func ApiListPlans(plans *plan.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := plans.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Update All Plans (Admin)
// @Description  Upserts catalog entries by plan type.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        request body handlers.UpdatePlansRequest true "Plan updates"
// @Success      200  {object}  handlers.RespPlans
// @Router       /api/subscription-plans/update-all [put]
func ApiUpdateAllPlans(plans *plan.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePlansRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		res, err := plans.UpdateAll(c.Request.Context(), req.Plans)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}
