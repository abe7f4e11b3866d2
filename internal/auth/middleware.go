package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"bookreviews/internal/errors"
)

// ContextKey is the echo context key under which the authenticated user id is
// stored by RequireAuth.
const ContextKey = "user_id"

// RequireAuth gates review routes behind a bearer token.
//
// The Authorization header is split on whitespace and the second field is
// taken as the token; a header with no token there is rejected with 401
// before any verification runs. A token that fails verification (bad
// signature, malformed, expired) is rejected with 403, not 401 — existing
// clients key off that status, keep it. When the matched route carries a
// :user_id parameter it must equal the token identity as an integer,
// otherwise the request is rejected with 403. Routes scoped by review id
// carry no :user_id parameter; for those, ownership is enforced again inside
// the handler by filtering the store mutation on the authenticated identity.
func RequireAuth(jwtService *JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			fields := strings.Fields(c.Request().Header.Get(echo.HeaderAuthorization))
			if len(fields) < 2 {
				c.Logger().Warn("no token provided")
				return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{Error: "Access denied"})
			}

			claims, err := jwtService.ValidateToken(fields[1])
			if err != nil {
				c.Logger().Warnf("token verification failed: %v", err)
				return c.JSON(http.StatusForbidden, errors.ErrorResponse{Error: "Invalid token"})
			}

			c.Set(ContextKey, claims.UserID)

			if param := c.Param("user_id"); param != "" {
				targetID, err := strconv.Atoi(param)
				if err != nil || targetID < 0 || uint(targetID) != claims.UserID {
					c.Logger().Warnf("user %d denied access to user %s", claims.UserID, param)
					return c.JSON(http.StatusForbidden, errors.ErrorResponse{Error: "Unauthorized access"})
				}
			}

			return next(c)
		}
	}
}

// UserID returns the authenticated user id attached to the context by
// RequireAuth, or zero when the request was not authenticated.
func UserID(c echo.Context) uint {
	id, _ := c.Get(ContextKey).(uint)
	return id
}
