package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aut0ban/vetclinic-backend/internal/accounts/models"
	"github.com/aut0ban/vetclinic-backend/pkg/utils"
)

// RequireAdmin admits administrators only.
func RequireAdmin() echo.MiddlewareFunc {
	return requireRoles("Administrator rights required", models.RoleAdmin)
}

// RequireStaff admits staff and administrators.
func RequireStaff() echo.MiddlewareFunc {
	return requireRoles("Staff rights required", models.RoleStaff, models.RoleAdmin)
}

// requireRoles gates a route on the caller's role. Denial is never fatal: the
// caller lands on the login page with a flash notice. Unlike JWTMiddleware the
// intended destination is not preserved.
func requireRoles(denyMessage string, allowed ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deny := func() error {
				utils.SetFlash(c, denyMessage, utils.FlashDanger)
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			claims, err := ExtractClaims(c)
			if err != nil {
				return deny()
			}

			role, err := models.ParseRole(claims.Role)
			if err != nil {
				return deny()
			}
			switch role {
			case models.RoleClient, models.RoleStaff, models.RoleAdmin:
				for _, a := range allowed {
					if role == a {
						c.Set(ContextKeyClaims, claims)
						return next(c)
					}
				}
			}
			return deny()
		}
	}
}
