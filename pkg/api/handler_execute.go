package api

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/scoutqa/scout/pkg/events"
	"github.com/scoutqa/scout/pkg/models"
	"github.com/scoutqa/scout/pkg/scheduler"
	"github.com/scoutqa/scout/pkg/state"
)

// ExecuteRequest is the POST /api/v1/tests/execute body.
type ExecuteRequest struct {
	RunID         string            `json:"runId,omitempty"`
	TestCases     []models.TestCase `json:"testCases"`
	WebsiteURL    string            `json:"websiteUrl"`
	ParallelLimit int               `json:"parallelLimit,omitempty"`
	AIModel       string            `json:"aiModel"`
	Settings      *models.Settings  `json:"settings,omitempty"`
}

// executeHandler runs a batch of tests and streams events back as SSE. The
// stream is written by this handler goroutine; the request context doubles as
// the run's cancellation signal, so a client disconnect aborts in-flight
// provider calls.
func (s *Server) executeHandler(c *echo.Context) error {
	teamID := extractTeamID(c)
	author := extractAuthor(c)

	var req ExecuteRequest
	if err := c.Bind(&req); err != nil {
		return streamValidationError(c, "invalid request body: "+err.Error())
	}
	switch {
	case len(req.TestCases) == 0:
		return streamValidationError(c, "testCases is required")
	case req.WebsiteURL == "":
		return streamValidationError(c, "websiteUrl is required")
	case req.AIModel == "":
		return streamValidationError(c, "aiModel is required")
	}
	projectID := req.TestCases[0].ProjectID
	for _, tc := range req.TestCases[1:] {
		if tc.ProjectID != projectID {
			return streamValidationError(c, "all test cases must belong to the same project")
		}
	}

	ctx := c.Request().Context()
	st, err := s.store.GetOrCreate(ctx, teamID)
	if err != nil {
		return streamValidationError(c, "failed to load team state")
	}
	keys, err := s.store.GetProviderKeys(ctx, teamID)
	if err != nil {
		return streamValidationError(c, "failed to load provider keys")
	}

	settings := st.Settings
	if req.Settings != nil {
		settings = *req.Settings
	}
	state.SanitizeSettings(&settings)

	parallelism := settings.Parallelism
	if req.ParallelLimit > 0 {
		parallelism = req.ParallelLimit
	}
	if parallelism < models.MinParallelism {
		parallelism = models.MinParallelism
	}
	if parallelism > models.MaxParallelism {
		parallelism = models.MaxParallelism
	}

	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	// Registering with the request context links client disconnect and the
	// stop endpoint to the same cancellation signal.
	runCtx := s.runs.Register(ctx, runID)
	defer s.runs.Unregister(runID)

	writer := newSSEWriter(c.Response())
	defer writer.Close()

	s.publish(events.TypeRunStarted, teamID, projectID, runID, author)
	started := time.Now()

	s.sched.Run(runCtx, scheduler.Batch{
		RunID:       runID,
		ProjectID:   projectID,
		TestCases:   req.TestCases,
		TargetURL:   req.WebsiteURL,
		Parallelism: parallelism,
		Model:       req.AIModel,
		Settings:    settings,
		Keys:        keys,
		State:       st,
	}, writer.Send)

	s.publish(events.TypeRunFinished, teamID, projectID, runID, author)
	slog.Info("Test run finished",
		"run_id", runID,
		"project_id", projectID,
		"tests", len(req.TestCases),
		"duration", time.Since(started))
	return nil
}

// streamValidationError reports a pre-dispatch failure on the stream itself:
// one test_error with the system test case id, then the stream closes.
func streamValidationError(c *echo.Context, msg string) error {
	writer := newSSEWriter(c.Response())
	defer writer.Close()
	writer.Send(scheduler.Event{
		Type:       scheduler.EventTestError,
		TestCaseID: scheduler.SystemTestCaseID,
		Timestamp:  time.Now().UTC(),
		Data:       &scheduler.EventData{Error: msg},
	})
	return nil
}

func (s *Server) publish(typ, teamID, projectID, runID, author string) {
	if s.hub == nil {
		return
	}
	n := events.NewNotification(typ, teamID)
	n.ProjectID = projectID
	n.RunID = runID
	n.UpdatedBy = author
	s.hub.Publish(n)
}
