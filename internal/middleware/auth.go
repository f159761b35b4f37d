package middleware

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"saldoamigo/internal/auth"
	"saldoamigo/internal/metrics"
	"saldoamigo/pkg/logger"
)

const principalKey = "principal"

// Auth returns middleware that extracts the bearer token, verifies it with
// tokens and stores the resulting principal in the request context. Every
// rejection is answered with the same 401; the internal distinction between
// missing, malformed, expired and badly signed tokens goes to logs and
// metrics only.
func Auth(tokens *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: principalKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return tokens.Verify(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			reason := rejectionReason(err)
			metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
			log := logger.Get()
			log.Debug().
				Str("reason", reason).
				Str("path", c.Path()).
				Msg("bearer token rejected")
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		},
	})
}

// PrincipalFrom returns the principal attached by Auth, or nil when the
// request never passed through it.
func PrincipalFrom(c echo.Context) *auth.Principal {
	p, _ := c.Get(principalKey).(*auth.Principal)
	return p
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, echojwt.ErrJWTMissing):
		return "missing"
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired"
	case errors.Is(err, auth.ErrTokenSignatureInvalid):
		return "signature_invalid"
	default:
		return "malformed"
	}
}
