package middleware

import (
	"strings"

	"fintrack/internal/errors"
	"fintrack/internal/handlers"
	"fintrack/internal/validation"

	"github.com/labstack/echo/v4"
)

// OwnerIDHeader carries the caller identity set by the upstream authenticator
const OwnerIDHeader = "X-Owner-ID"

// RequireOwner rejects requests without a well-formed owner identity and
// stores the identity on the context for handlers.
func RequireOwner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ownerID := strings.TrimSpace(c.Request().Header.Get(OwnerIDHeader))
			if ownerID == "" {
				return handlers.SendError(c, errors.OwnerMissing)
			}

			if err := validation.GetValidator().Var(ownerID, "owner_id"); err != nil {
				return handlers.SendError(c, errors.OwnerInvalid, errors.WithDetails("Owner ID may contain letters, digits and . _ @ - only"))
			}

			c.Set(handlers.OwnerIDContextKey, ownerID)
			return next(c)
		}
	}
}

// GetOwnerID returns the owner stored by RequireOwner
func GetOwnerID(c echo.Context) string {
	ownerID, _ := c.Get(handlers.OwnerIDContextKey).(string)
	return ownerID
}
