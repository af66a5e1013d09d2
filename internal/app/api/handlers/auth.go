package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homegrove/estate/internal/app/service/account"
	"github.com/homegrove/estate/pkg/response"
	"github.com/homegrove/estate/pkg/token"
	"github.com/homegrove/estate/pkg/types"
)

type LoginRequest struct {
	Role     types.Role `json:"role"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
}

type LogoutRequest struct {
	Role types.Role `json:"role"`
}

// @Summary      Register
// @Description  Creates a buyer or seller account.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body account.RegisterRequest true "Registration request"
// @Success      200  {object}  models.AccountView
// @Router       /api/auth/register [post]
func ApiRegister(accts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		acct, err := accts.Register(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(acct.View()))
	}
}

// @Summary      Login
// @Description  Checks credentials and sets the role's auth cookie.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handlers.LoginRequest true "Login request"
// @Success      200  {object}  models.AccountView
// @Router       /api/auth/login [post]
func ApiLogin(accts *account.Service, maker *token.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if !req.Role.Valid() {
			badRequest(c, "unknown role")
			return
		}

		acct, err := accts.Login(c.Request.Context(), req.Role, req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		signed, err := maker.Sign(types.Principal{AccountID: acct.ID, Role: acct.Role})
		if err != nil {
			respondError(c, err)
			return
		}
		c.SetCookie(req.Role.CookieName(), signed, int(maker.TTL().Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, response.OKT(acct.View()))
	}
}

// @Summary      Logout
// @Description  Clears the role's auth cookie.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handlers.LogoutRequest true "Logout request"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/auth/logout [post]
func ApiLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LogoutRequest
		if err := c.ShouldBindJSON(&req); err != nil || !req.Role.Valid() {
			badRequest(c, "unknown role")
			return
		}
		c.SetCookie(req.Role.CookieName(), "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterAuthRoutes(r gin.IRouter, accts *account.Service, maker *token.Maker) {
	r.POST("/register", ApiRegister(accts))
	r.POST("/login", ApiLogin(accts, maker))
	r.POST("/logout", ApiLogout())
}
