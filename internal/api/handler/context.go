package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hunter122526/quantum2017/internal/api/middleware"
	"github.com/hunter122526/quantum2017/internal/core/token"
)

// ctxClaims extracts the verified claims injected by the auth middleware.
// Their absence means the route was wired without the middleware; fail closed.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims, ok := c.Get(middleware.CtxClaims).(*token.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// ctxRawToken returns the bearer token string as presented by the client.
func ctxRawToken(c echo.Context) string {
	raw, _ := c.Get(middleware.CtxRawToken).(string)
	return raw
}

// clientIP resolves the request source address, honouring X-Forwarded-For.
func clientIP(c echo.Context) string {
	if ip := c.RealIP(); ip != "" {
		return ip
	}
	return "unknown"
}
