package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/scoutqa/scout/pkg/genjobs"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	if errors.Is(err, genjobs.ErrProjectNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	if errors.Is(err, genjobs.ErrJobLimit) {
		return echo.NewHTTPError(http.StatusConflict, "generation job limit reached for this project")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
