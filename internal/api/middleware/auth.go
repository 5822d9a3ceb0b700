package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hunter122526/quantum2017/internal/api/metrics"
	"github.com/hunter122526/quantum2017/internal/core/domain"
	"github.com/hunter122526/quantum2017/internal/core/ports"
	"github.com/hunter122526/quantum2017/internal/core/token"
)

// Context keys set by the auth middleware.
const (
	CtxClaims   = "claims"
	CtxRawToken = "raw_token"
	CtxUserID   = "user_id"
	CtxRole     = "role"
)

// Auth validates the bearer token (signature, expiry, revocation) and injects
// the claims into the echo context. Any failure is a 401.
func Auth(tokens *token.Service, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, raw, err := authenticate(c, tokens, revoker)
			if err != nil {
				if !isAuthFailure(err) {
					return err
				}
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(CtxClaims, claims)
			c.Set(CtxRawToken, raw)
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

// AdminOnly gates the admin surface. Missing tokens, invalid tokens and
// non-admin roles are all reported identically as insufficient permissions;
// the admin surface never reveals whether a credential was parseable.
func AdminOnly(tokens *token.Service, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, raw, err := authenticate(c, tokens, revoker)
			if err != nil {
				if !isAuthFailure(err) {
					return err
				}
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			if claims.Role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}

			c.Set(CtxClaims, claims)
			c.Set(CtxRawToken, raw)
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

// isAuthFailure separates bad credentials from infrastructure errors. Only
// the former map to an auth status; anything else (a revocation store outage)
// goes to the central error handler untouched.
func isAuthFailure(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, token.ErrInvalidToken)
}

func authenticate(c echo.Context, tokens *token.Service, revoker ports.TokenRevoker) (*token.Claims, string, error) {
	raw, err := bearerToken(c)
	if err != nil {
		return nil, "", err
	}

	claims, err := tokens.Verify(raw)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		return nil, "", token.ErrInvalidToken
	}

	revoked, err := revoker.IsRevoked(c.Request().Context(), raw)
	if err != nil {
		return nil, "", err
	}
	if revoked {
		metrics.TokenVerificationsTotal.WithLabelValues("revoked").Inc()
		return nil, "", token.ErrInvalidToken
	}

	metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
	return claims, raw, nil
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", domain.ErrUnauthorized
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.ErrUnauthorized
	}
	return parts[1], nil
}
