package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/artvault/artvault/internal/config"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware checks the Authorization header, verifies the bearer token
// through the injected Service and places the resolved local user id into
// the downstream request context.
func (s *Server) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		auth := c.Request().Header.Get("Authorization")
		if len(auth) <= len(bearerPrefix) || !strings.EqualFold(auth[:len(bearerPrefix)], bearerPrefix) {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "Authorization header is required",
			})
		}

		uid, err := s.server.VerifyIDToken(ctx, auth[len(bearerPrefix):])
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error":   err.Error(),
				"message": "Invalid token",
			})
		}

		au, err := s.server.GetAuthUserByUID(ctx, uid)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error":   err.Error(),
				"message": "User not found",
			})
		}

		ctx = context.WithValue(ctx, config.CTX_KEY_USER_ID, au.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
