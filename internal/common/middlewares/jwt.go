package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aut0ban/vetclinic-backend/pkg/utils"
)

// ContextKeyClaims is the echo context key the validated claims are stored under.
const ContextKeyClaims = "claims"

// ExtractClaims reads the session token from the Authorization header or the
// session cookie and validates it.
func ExtractClaims(c echo.Context) (*utils.Claims, error) {
	tokenStr := ""
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenStr = parts[1]
		}
	}
	if tokenStr == "" {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return nil, echo.ErrUnauthorized
		}
		tokenStr = cookie.Value
	}
	return utils.ValidateJWTToken(tokenStr)
}

// SessionCookieName is the cookie the login handler stores the JWT in.
const SessionCookieName = "token"

// JWTMiddleware requires a valid session. An anonymous caller is redirected to
// the login page with the intended destination preserved in the next parameter.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ExtractClaims(c)
			if err != nil {
				utils.SetFlash(c, "Please log in to access this page", utils.FlashDanger)
				return c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(c.Request().URL.RequestURI()))
			}
			c.Set(ContextKeyClaims, claims)
			return next(c)
		}
	}
}

// GetClaims returns the claims a middleware stored on the context, or nil.
func GetClaims(c echo.Context) *utils.Claims {
	claims, _ := c.Get(ContextKeyClaims).(*utils.Claims)
	return claims
}
