package http

import (
	"net/http"
	"strings"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// principalContextKey stores the authenticated Principal in the echo context.
const principalContextKey = "principal"

// Authenticate parses the Authorization header, verifies the bearer token and
// attaches the resolved Principal to the request context.
func Authenticate(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing authorization header",
				})
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header must be a bearer token",
				})
			}

			principal, err := tokens.Verify(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// RequireOperations rejects principals without the elevated role. Must run
// after Authenticate.
func RequireOperations() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, ok := principalFrom(ctx)
			if !ok || !principal.IsOperations() {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "Operations role required",
				})
			}
			return next(ctx)
		}
	}
}

// principalFrom extracts the Principal attached by Authenticate.
func principalFrom(ctx echo.Context) (account.Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(account.Principal)
	return principal, ok
}
