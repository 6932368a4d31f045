package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/scoutqa/scout/pkg/models"
)

const hyperbrowserBaseURL = "https://api.hyperbrowser.ai"

// Hyperbrowser drives tests through the Hyperbrowser cloud browser-use API.
// Sessions support persistent profiles and expose a live view URL.
type Hyperbrowser struct {
	httpClient   *http.Client
	baseURL      string
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewHyperbrowser creates the production client.
func NewHyperbrowser() *Hyperbrowser {
	return &Hyperbrowser{
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		baseURL:      hyperbrowserBaseURL,
		pollInterval: 2 * time.Second,
		logger:       slog.Default(),
	}
}

type hbSession struct {
	ID      string `json:"id"`
	LiveURL string `json:"liveUrl"`
}

type hbTask struct {
	JobID  string `json:"jobId"`
	Status string `json:"status"`
	Data   struct {
		FinalResult string `json:"finalResult"`
		Steps       []struct {
			Step       int    `json:"step"`
			Evaluation string `json:"evaluationPreviousGoal"`
			NextGoal   string `json:"nextGoal"`
		} `json:"steps"`
	} `json:"data"`
	Error string `json:"error"`
}

// ExecuteTest implements Provider.
func (h *Hyperbrowser) ExecuteTest(ctx context.Context, in ExecuteInput, cb Callbacks) (*ExecuteResult, error) {
	session, err := h.createSession(ctx, in.Keys.HyperbrowserAPIKey, profileID(in.Credentials))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer h.stopSession(in.Keys.HyperbrowserAPIKey, session.ID)

	if cb.OnLiveURL != nil && session.LiveURL != "" {
		cb.OnLiveURL(session.LiveURL, "")
	}

	jobID, err := h.startTask(ctx, in.Keys.HyperbrowserAPIKey, session.ID, in.Task, in.Settings.MaxSteps)
	if err != nil {
		return nil, fmt.Errorf("start task: %w", err)
	}
	if cb.OnTaskCreated != nil {
		cb.OnTaskCreated(jobID, session.ID)
	}

	task, err := h.pollTask(ctx, in.Keys.HyperbrowserAPIKey, jobID, in.Settings.MaxSteps, cb)
	if err != nil {
		return nil, err
	}

	recordingURL := h.recordingURL(ctx, in.Keys.HyperbrowserAPIKey, session.ID)

	result := &ExecuteResult{
		LiveURL:      session.LiveURL,
		RecordingURL: recordingURL,
	}
	result.RawProviderData = map[string]any{
		"jobId":     jobID,
		"sessionId": session.ID,
		"status":    task.Status,
	}

	if task.Status == "failed" || task.Error != "" {
		result.Status = StatusError
		result.Error = task.Error
		if result.Error == "" {
			result.Error = "Hyperbrowser task failed"
		}
		return result, nil
	}

	verdict, ok := ResolveVerdict(ctx, task.Data.FinalResult, func(ctx context.Context, prompt string) (string, error) {
		return h.runFollowUp(ctx, in.Keys.HyperbrowserAPIKey, session.ID, prompt)
	})
	if !ok {
		result.Status = StatusError
		result.Error = ErrNoVerdict
		result.RawProviderData["finalResult"] = task.Data.FinalResult
		return result, nil
	}

	result.Verdict = verdict
	if verdict.Success {
		result.Status = StatusCompleted
	} else {
		result.Status = StatusFailed
	}
	return result, nil
}

// LoginWithProfile implements Provider. A fresh persistent profile is
// created, a login task runs inside it, and the profile is deleted again if
// the login did not verifiably succeed.
func (h *Hyperbrowser) LoginWithProfile(ctx context.Context, in LoginInput) (*LoginResult, error) {
	var created struct {
		ID string `json:"id"`
	}
	if err := h.doJSON(ctx, in.Keys.HyperbrowserAPIKey, http.MethodPost, "/api/profile", map[string]any{}, &created); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	creds := Credentials{
		Email:    in.Account.Email,
		Password: in.Account.Password,
		Metadata: in.Account.Metadata,
	}
	exec, err := h.ExecuteTest(ctx, ExecuteInput{
		TargetURL: in.TargetURL,
		Task:      BuildLoginPrompt(creds),
		Settings:  in.Settings,
		Keys:      in.Keys,
		Credentials: &Credentials{
			Email:     creds.Email,
			Password:  creds.Password,
			ProfileID: created.ID,
		},
	}, Callbacks{})
	if err != nil || exec.Status != StatusCompleted {
		// Best-effort cleanup of the half-authenticated profile.
		if delErr := h.DeleteProfile(context.WithoutCancel(ctx), created.ID, in.Keys); delErr != nil {
			h.logger.Warn("Profile cleanup after failed login", "profileId", created.ID, "error", delErr)
		}
		msg := "login task did not complete"
		if err != nil {
			msg = err.Error()
		} else if exec.Error != "" {
			msg = exec.Error
		} else if exec.Verdict != nil {
			msg = exec.Verdict.Reason
		}
		return &LoginResult{Success: false, Error: msg}, nil
	}

	return &LoginResult{Success: true, ProfileID: created.ID}, nil
}

// DeleteProfile implements Provider.
func (h *Hyperbrowser) DeleteProfile(ctx context.Context, profileID string, keys models.ProviderKeys) error {
	return h.doJSON(ctx, keys.HyperbrowserAPIKey, http.MethodDelete, "/api/profile/"+profileID, nil, nil)
}

func (h *Hyperbrowser) createSession(ctx context.Context, apiKey, profileID string) (*hbSession, error) {
	body := map[string]any{}
	if profileID != "" {
		body["profile"] = map[string]any{"id": profileID, "persistChanges": true}
	}
	var session hbSession
	if err := h.doJSON(ctx, apiKey, http.MethodPost, "/api/session", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// stopSession releases the cloud session after the task settles. Runs without
// the caller's context so cancellation does not leak sessions.
func (h *Hyperbrowser) stopSession(apiKey, sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := h.doJSON(ctx, apiKey, http.MethodPut, "/api/session/"+sessionID+"/stop", nil, nil); err != nil {
		h.logger.Warn("Failed to stop Hyperbrowser session", "sessionId", sessionID, "error", err)
	}
}

func (h *Hyperbrowser) startTask(ctx context.Context, apiKey, sessionID, task string, maxSteps int) (string, error) {
	body := map[string]any{
		"sessionId":       sessionID,
		"task":            task,
		"keepBrowserOpen": true,
	}
	if maxSteps > 0 {
		body["maxSteps"] = maxSteps
	}
	var created struct {
		JobID string `json:"jobId"`
	}
	if err := h.doJSON(ctx, apiKey, http.MethodPost, "/api/task/browser-use", body, &created); err != nil {
		return "", err
	}
	if created.JobID == "" {
		return "", fmt.Errorf("task accepted without a job id")
	}
	return created.JobID, nil
}

func (h *Hyperbrowser) pollTask(ctx context.Context, apiKey, jobID string, maxSteps int, cb Callbacks) (*hbTask, error) {
	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	lastStep := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		var task hbTask
		if err := h.doJSON(ctx, apiKey, http.MethodGet, "/api/task/"+jobID, nil, &task); err != nil {
			return nil, fmt.Errorf("poll task %s: %w", jobID, err)
		}

		if cb.OnStepProgress != nil && len(task.Data.Steps) > lastStep {
			step := task.Data.Steps[len(task.Data.Steps)-1]
			cb.OnStepProgress(len(task.Data.Steps), maxSteps, step.NextGoal)
			lastStep = len(task.Data.Steps)
		}

		switch task.Status {
		case "completed", "failed", "stopped":
			return &task, nil
		}
	}
}

// runFollowUp issues one more task in the same session, used for verdict
// re-verification.
func (h *Hyperbrowser) runFollowUp(ctx context.Context, apiKey, sessionID, prompt string) (string, error) {
	jobID, err := h.startTask(ctx, apiKey, sessionID, prompt, 5)
	if err != nil {
		return "", err
	}
	task, err := h.pollTask(ctx, apiKey, jobID, 5, Callbacks{})
	if err != nil {
		return "", err
	}
	return task.Data.FinalResult, nil
}

func (h *Hyperbrowser) recordingURL(ctx context.Context, apiKey, sessionID string) string {
	var resp struct {
		RecordingURL string `json:"recordingUrl"`
	}
	if err := h.doJSON(ctx, apiKey, http.MethodGet, "/api/session/"+sessionID+"/recording-url", nil, &resp); err != nil {
		h.logger.Debug("No recording URL for session", "sessionId", sessionID, "error", err)
		return ""
	}
	return resp.RecordingURL
}

func (h *Hyperbrowser) doJSON(ctx context.Context, apiKey, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-api-key", apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("hyperbrowser returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func profileID(creds *Credentials) string {
	if creds == nil {
		return ""
	}
	return creds.ProfileID
}
