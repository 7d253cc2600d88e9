package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth validates the bearer token and injects the decoded claims into the
// echo context. All verification failures — malformed header, bad
// signature, tampering, expiry — collapse into the same 401 response so
// the caller cannot tell which check rejected the token.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			// Tokens without an expiry are rejected outright: validity is
			// signature plus time window, never signature alone.
			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			}, jwt.WithExpirationRequired())
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// Numeric claims decode as float64 from JSON.
			if id, ok := claims["id"].(float64); ok {
				c.Set("id", int64(id))
			}
			c.Set("email", claims["email"])
			c.Set("role", claims["role"])
			if fullName, ok := claims["full_name"].(string); ok {
				c.Set("full_name", fullName)
			}

			return next(c)
		}
	}
}
