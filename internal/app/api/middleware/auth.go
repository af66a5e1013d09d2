package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homegrove/estate/pkg/response"
	"github.com/homegrove/estate/pkg/token"
	"github.com/homegrove/estate/pkg/types"
)

const principalKey = "principal"

// RequireRole authenticates the request through the role's auth cookie. All
// four roles share one token format and one verification path; only the
// cookie name and the expected role differ.
func RequireRole(maker *token.Maker, role types.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(role.CookieName())
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "missing auth cookie"))
			return
		}

		p, err := maker.Verify(cookie, role)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid auth cookie"))
			return
		}

		c.Set(principalKey, p)
		ctx := context.WithValue(c.Request.Context(), "user_id", p.AccountID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// PrincipalFrom returns the authenticated principal attached by RequireRole.
func PrincipalFrom(c *gin.Context) (*types.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*types.Principal)
	return p, ok
}
