package middleware

import (
	"net/http"
	"strings"

	"ClinicBook/internal/auth"

	"github.com/labstack/echo/v4"
)

// JWTMiddleware validates the bearer token and stores the verified identity
// in the request context for the handlers behind it.
func JWTMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": "Missing token"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)

		claims, err := auth.ValidateJWT(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": "Invalid token"})
		}

		c.Set("user", claims)
		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		return next(c)
	}
}
