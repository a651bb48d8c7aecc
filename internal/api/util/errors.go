package util

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tunegrab/tunegrab/internal/http/youtube"
)

// TranslateSourceError maps a metadata source failure onto the HTTP
// error the handler should return: a missing client configuration is a
// server fault, an unknown video is not-found, and everything else is
// reported back to the caller as a bad request with the underlying
// message surfaced.
func TranslateSourceError(err error) *echo.HTTPError {
	var noResult *youtube.NoResultError
	switch {
	case errors.Is(err, youtube.ErrNotConfigured):
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	case errors.As(err, &noResult):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
