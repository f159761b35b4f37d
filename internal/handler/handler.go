package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"saldoamigo/internal/errors"
	"saldoamigo/pkg/logger"
)

// respondError maps a domain error to the standardized error body. Store and
// other unexpected failures surface as a generic 500 and are logged; they are
// never conflated with auth or not-found responses.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		log := logger.Get()
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
