package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/scoutqa/scout/pkg/events"
	"github.com/scoutqa/scout/pkg/genjobs"
	"github.com/scoutqa/scout/pkg/models"
)

// GenerateRequest is the POST /api/v1/ai/generate body.
type GenerateRequest struct {
	ProjectID     string           `json:"projectId"`
	RawText       string           `json:"rawText"`
	WebsiteURL    string           `json:"websiteUrl"`
	AIModel       string           `json:"aiModel"`
	GroupName     string           `json:"groupName,omitempty"`
	UserAccountID string           `json:"userAccountId,omitempty"`
	Settings      *models.Settings `json:"settings,omitempty"`
}

// GenerateResponse acknowledges an accepted generation job.
type GenerateResponse struct {
	Success bool   `json:"success"`
	JobID   string `json:"jobId"`
	Message string `json:"message"`
}

// generateHandler enqueues an AI generation job. The job runs in the
// background; progress is observed through the status endpoint.
func (s *Server) generateHandler(c *echo.Context) error {
	teamID := extractTeamID(c)
	author := extractAuthor(c)

	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	job, err := s.gen.Enqueue(c.Request().Context(), genjobs.EnqueueInput{
		TeamID:        teamID,
		Author:        author,
		ProjectID:     req.ProjectID,
		Prompt:        req.RawText,
		WebsiteURL:    req.WebsiteURL,
		Model:         req.AIModel,
		GroupName:     req.GroupName,
		UserAccountID: req.UserAccountID,
		Settings:      req.Settings,
	})
	if err != nil {
		if errors.Is(err, genjobs.ErrProjectNotFound) || errors.Is(err, genjobs.ErrJobLimit) {
			return mapServiceError(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s.publishJob(teamID, req.ProjectID, job.ID, author)
	return c.JSON(http.StatusAccepted, GenerateResponse{
		Success: true,
		JobID:   job.ID,
		Message: "Generation job queued.",
	})
}

// GenerateStatusResponse is the GET /api/v1/ai/generate/status payload.
type GenerateStatusResponse struct {
	Jobs         []models.GenerationJob   `json:"jobs"`
	Drafts       []models.TestDraft       `json:"drafts"`
	Notification models.DraftNotification `json:"notification"`
}

// generateStatusHandler returns the project's jobs and reviewable drafts. It
// also opportunistically drains claimable jobs in the background, so polling
// the status endpoint recovers work abandoned by a crashed worker.
func (s *Server) generateStatusHandler(c *echo.Context) error {
	teamID := extractTeamID(c)
	author := extractAuthor(c)

	projectID := c.QueryParam("projectId")
	if projectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "projectId is required")
	}

	go s.gen.ProcessQueuedJobs(context.Background(), teamID, author, "")

	st, err := s.store.GetOrCreate(c.Request().Context(), teamID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := GenerateStatusResponse{
		Jobs:         st.Jobs[projectID],
		Drafts:       []models.TestDraft{},
		Notification: st.Notifications[projectID],
	}
	if resp.Jobs == nil {
		resp.Jobs = []models.GenerationJob{}
	}
	// Published and discarded drafts are history; only reviewable entries
	// go back to the client.
	for _, d := range st.Drafts[projectID] {
		if d.Status == models.DraftStatusDraft || d.Status == models.DraftStatusDuplicateSkipped {
			resp.Drafts = append(resp.Drafts, d)
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// DraftsSeenRequest is the POST /api/v1/ai/drafts/seen body.
type DraftsSeenRequest struct {
	ProjectID string `json:"projectId"`
}

func (s *Server) draftsSeenHandler(c *echo.Context) error {
	teamID := extractTeamID(c)
	author := extractAuthor(c)

	var req DraftsSeenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ProjectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "projectId is required")
	}

	if err := s.gen.MarkDraftsSeen(c.Request().Context(), teamID, author, req.ProjectID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// publishDraftHandler promotes a draft into a real test case. The draft's
// group name, when set, files the new test under that group (creating it on
// first use).
func (s *Server) publishDraftHandler(c *echo.Context) error {
	teamID := extractTeamID(c)
	author := extractAuthor(c)
	draftID := c.Param("id")

	var published *models.TestCase
	_, err := s.store.Mutate(c.Request().Context(), teamID, author, func(st *models.TeamState) error {
		draft, projectID := findDraft(st, draftID)
		if draft == nil {
			return echo.NewHTTPError(http.StatusNotFound, "draft not found")
		}
		if draft.Status != models.DraftStatusDraft {
			return echo.NewHTTPError(http.StatusConflict, "draft is not publishable")
		}

		now := time.Now().UTC()
		tc := models.TestCase{
			ID:              uuid.NewString(),
			ProjectID:       projectID,
			Title:           draft.Title,
			Description:     draft.Description,
			ExpectedOutcome: draft.ExpectedOutcome,
			CreatedBy:       author,
			UserAccountID:   draft.UserAccountID,
			Status:          models.TestStatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		st.TestCases[projectID] = append(st.TestCases[projectID], tc)
		draft.Status = models.DraftStatusPublished

		if draft.GroupName != "" {
			addToGroup(st, projectID, draft.GroupName, tc.ID)
		}
		published = &tc
		return nil
	})
	if err != nil {
		var herr *echo.HTTPError
		if errors.As(err, &herr) {
			return herr
		}
		return mapServiceError(err)
	}

	s.publishJob(teamID, published.ProjectID, "", author)
	return c.JSON(http.StatusOK, published)
}

// discardDraftHandler marks a draft discarded. Discarded drafts stop blocking
// future generation of the same test.
func (s *Server) discardDraftHandler(c *echo.Context) error {
	teamID := extractTeamID(c)
	author := extractAuthor(c)
	draftID := c.Param("id")

	_, err := s.store.Mutate(c.Request().Context(), teamID, author, func(st *models.TeamState) error {
		draft, _ := findDraft(st, draftID)
		if draft == nil {
			return echo.NewHTTPError(http.StatusNotFound, "draft not found")
		}
		draft.Status = models.DraftStatusDiscarded
		return nil
	})
	if err != nil {
		var herr *echo.HTTPError
		if errors.As(err, &herr) {
			return herr
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// findDraft locates a draft by id across all projects.
func findDraft(st *models.TeamState, draftID string) (*models.TestDraft, string) {
	for projectID := range st.Drafts {
		drafts := st.Drafts[projectID]
		for i := range drafts {
			if drafts[i].ID == draftID {
				return &drafts[i], projectID
			}
		}
	}
	return nil, ""
}

// addToGroup appends a test case id to the named group, creating the group
// when it does not exist yet.
func addToGroup(st *models.TeamState, projectID, name, testCaseID string) {
	groups := st.TestGroups[projectID]
	for i := range groups {
		if groups[i].Name == name {
			groups[i].TestCaseIDs = append(groups[i].TestCaseIDs, testCaseID)
			return
		}
	}
	st.TestGroups[projectID] = append(groups, models.TestGroup{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Name:        name,
		TestCaseIDs: []string{testCaseID},
	})
}

func (s *Server) publishJob(teamID, projectID, jobID, author string) {
	if s.hub == nil {
		return
	}
	n := events.NewNotification(events.TypeJobUpdated, teamID)
	n.ProjectID = projectID
	n.JobID = jobID
	n.UpdatedBy = author
	s.hub.Publish(n)
}
