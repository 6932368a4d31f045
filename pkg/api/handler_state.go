package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/scoutqa/scout/pkg/events"
	"github.com/scoutqa/scout/pkg/models"
	"github.com/scoutqa/scout/pkg/state"
)

// getStateHandler returns the team's shared state document. Stale artifacts
// from dead sessions are swept out of the response copy; the stored document
// is left alone so a live run elsewhere is never clobbered.
func (s *Server) getStateHandler(c *echo.Context) error {
	teamID := extractTeamID(c)

	st, err := s.store.GetOrCreate(c.Request().Context(), teamID)
	if err != nil {
		return mapServiceError(err)
	}
	state.SweepStaleRuns(st)
	return c.JSON(http.StatusOK, st)
}

// putStateHandler replaces the team's shared state document wholesale. The
// store sanitizes on write, so malformed or oversized documents are repaired
// rather than rejected.
func (s *Server) putStateHandler(c *echo.Context) error {
	teamID := extractTeamID(c)
	author := extractAuthor(c)

	var st models.TeamState
	if err := c.Bind(&st); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid state document")
	}

	ctx := c.Request().Context()
	if err := s.store.Save(ctx, teamID, author, &st); err != nil {
		return mapServiceError(err)
	}

	if s.hub != nil {
		n := events.NewNotification(events.TypeStateUpdated, teamID)
		n.UpdatedBy = author
		s.hub.Publish(n)
	}

	saved, err := s.store.GetOrCreate(ctx, teamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

// putProviderKeysHandler stores the team's provider API keys. Keys are
// write-only: they are encrypted at rest and never appear in state reads.
func (s *Server) putProviderKeysHandler(c *echo.Context) error {
	teamID := extractTeamID(c)

	var keys models.ProviderKeys
	if err := c.Bind(&keys); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := s.store.SetProviderKeys(c.Request().Context(), teamID, keys); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
