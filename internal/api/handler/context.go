package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// authClaims is the decoded token content the Auth middleware placed in
// the request context.
type authClaims struct {
	ID       int64
	Email    string
	Role     string
	FullName string
}

// ctxClaims extracts the auth claims injected by the Auth middleware. A
// missing role means the middleware never ran for this route — reject
// with 401 rather than serving with a zero identity.
func ctxClaims(c echo.Context) (authClaims, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return authClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	claims := authClaims{Role: role}
	claims.ID, _ = c.Get("id").(int64)
	claims.Email, _ = c.Get("email").(string)
	claims.FullName, _ = c.Get("full_name").(string)
	return claims, nil
}
