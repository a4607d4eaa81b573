package http

import (
	"net/http"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating gateway. The core trusts them;
// credential verification happens upstream.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserRole  = "X-User-Role"
	HeaderUserName  = "X-User-Name"
	HeaderUserPhone = "X-User-Phone"
)

const principalContextKey = "principal"

// PrincipalMiddleware extracts the acting principal from the identity headers
// and rejects requests that carry none or malformed ones.
func PrincipalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rawID := ctx.Request().Header.Get(HeaderUserID)
			rawRole := ctx.Request().Header.Get(HeaderUserRole)
			if rawID == "" || rawRole == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing identity headers",
				})
			}

			userID, err := kernel.UUIDFromString(rawID)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid user id",
				})
			}

			role, err := principal.RoleFromString(rawRole)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Unknown role",
				})
			}

			actor, err := principal.New(userID, role,
				ctx.Request().Header.Get(HeaderUserName),
				ctx.Request().Header.Get(HeaderUserPhone))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid identity",
				})
			}

			ctx.Set(principalContextKey, actor)
			return next(ctx)
		}
	}
}

// currentPrincipal returns the principal stored by PrincipalMiddleware.
func currentPrincipal(ctx echo.Context) principal.Principal {
	actor, _ := ctx.Get(principalContextKey).(principal.Principal)
	return actor
}
