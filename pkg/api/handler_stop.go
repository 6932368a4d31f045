package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// StopRequest is the POST /api/v1/tests/stop body.
type StopRequest struct {
	RunID string `json:"runId"`
}

// StopResponse reports whether a cancellation handle existed for the run.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// stopHandler triggers a run's cancellation handle. No state mutation happens
// here; the scheduler owns the terminal transition.
func (s *Server) stopHandler(c *echo.Context) error {
	var req StopRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RunID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "runId is required")
	}

	return c.JSON(http.StatusOK, StopResponse{Stopped: s.runs.Stop(req.RunID)})
}
