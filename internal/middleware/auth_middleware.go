package middleware

import (
	"net/http"
	"strings"
	"time"

	"nepolianStore/pkg/logger"
	"nepolianStore/pkg/utils"

	jsonres "nepolianStore/pkg/response"

	"github.com/labstack/echo/v4"
)

// SessionAuth validates the Bearer session token and stores the caller's
// identity on the request context.
func SessionAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing authorization header", nil,
				))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid authorization format", nil,
				))
			}

			tokenString := tokenParts[1]

			claims, err := utils.ParseSessionToken(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Status Forbidden", nil,
				))
			}

			if time.Now().After(expAt.Time) {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Token expired", nil,
				))
			}

			if claims.UserID() == "" {
				logger.Error("Session token has no subject")
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Invalid user ID in token", nil,
				))
			}

			c.Set("user_id", claims.UserID())
			c.Set("email", claims.Email)

			return next(c)
		}
	}
}

// AdminOnly allows the request through only when the session email matches
// one of the configured admin addresses. Runs after SessionAuth.
func AdminOnly(adminEmails []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := Email(c)
			for _, admin := range adminEmails {
				if strings.EqualFold(email, admin) {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, jsonres.Error(
				"FORBIDDEN", "Admin access required", nil,
			))
		}
	}
}

func UserID(c echo.Context) string {
	if id, ok := c.Get("user_id").(string); ok {
		return id
	}
	return ""
}

func Email(c echo.Context) string {
	if email, ok := c.Get("email").(string); ok {
		return email
	}
	return ""
}
