package handlers

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

// OwnerIDContextKey is where the owner middleware stores the caller identity
const OwnerIDContextKey = "owner_id"

// ErrMissingOwner is returned when the request carries no owner identity
var ErrMissingOwner = fmt.Errorf("owner identity missing")

// getOwnerID extracts the owner ID set by the owner middleware
func getOwnerID(c echo.Context) (string, error) {
	ownerID, ok := c.Get(OwnerIDContextKey).(string)
	if !ok || strings.TrimSpace(ownerID) == "" {
		return "", ErrMissingOwner
	}
	return ownerID, nil
}
