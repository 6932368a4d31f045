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

const browserUseBaseURL = "https://api.browser-use.com/api/v1"

// BrowserUseCloud drives tests through the Browser Use cloud API. This is the
// default provider: no infrastructure to run, persistent profiles supported.
type BrowserUseCloud struct {
	httpClient   *http.Client
	baseURL      string
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewBrowserUseCloud creates the production client.
func NewBrowserUseCloud() *BrowserUseCloud {
	return &BrowserUseCloud{
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		baseURL:      browserUseBaseURL,
		pollInterval: 2 * time.Second,
		logger:       slog.Default(),
	}
}

type buTask struct {
	ID             string `json:"id"`
	SessionID      string `json:"session_id"`
	Status         string `json:"status"`
	Output         string `json:"output"`
	LiveURL        string `json:"live_url"`
	PublicShareURL string `json:"public_share_url"`
	Steps          []struct {
		Number   int    `json:"number"`
		NextGoal string `json:"next_goal"`
	} `json:"steps"`
}

// ExecuteTest implements Provider.
func (b *BrowserUseCloud) ExecuteTest(ctx context.Context, in ExecuteInput, cb Callbacks) (*ExecuteResult, error) {
	taskID, err := b.startTask(ctx, in.Keys.BrowserUseAPIKey, in.Task, in.TargetURL, profileID(in.Credentials), in.Settings.MaxSteps)
	if err != nil {
		return nil, fmt.Errorf("start task: %w", err)
	}

	task, err := b.pollTask(ctx, in.Keys.BrowserUseAPIKey, taskID, in.Settings.MaxSteps, cb)
	if err != nil {
		return nil, err
	}

	result := &ExecuteResult{
		LiveURL:      task.LiveURL,
		RecordingURL: task.PublicShareURL,
	}
	result.RawProviderData = map[string]any{
		"taskId":    task.ID,
		"sessionId": task.SessionID,
		"status":    task.Status,
	}

	if task.Status == "failed" || task.Status == "stopped" {
		result.Status = StatusError
		result.Error = fmt.Sprintf("Browser Use task %s", task.Status)
		if task.Output != "" {
			result.Error = task.Output
		}
		return result, nil
	}

	verdict, ok := ResolveVerdict(ctx, task.Output, func(ctx context.Context, prompt string) (string, error) {
		return b.runFollowUp(ctx, in.Keys.BrowserUseAPIKey, task.SessionID, prompt)
	})
	if !ok {
		result.Status = StatusError
		result.Error = ErrNoVerdict
		result.RawProviderData["output"] = task.Output
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

// LoginWithProfile implements Provider.
func (b *BrowserUseCloud) LoginWithProfile(ctx context.Context, in LoginInput) (*LoginResult, error) {
	var created struct {
		ProfileID string `json:"profile_id"`
	}
	if err := b.doJSON(ctx, in.Keys.BrowserUseAPIKey, http.MethodPost, "/browser-profiles", map[string]any{
		"profile_name": "scout-" + in.Account.ID,
	}, &created); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	creds := Credentials{
		Email:    in.Account.Email,
		Password: in.Account.Password,
		Metadata: in.Account.Metadata,
	}
	exec, err := b.ExecuteTest(ctx, ExecuteInput{
		TargetURL: in.TargetURL,
		Task:      BuildLoginPrompt(creds),
		Settings:  in.Settings,
		Keys:      in.Keys,
		Credentials: &Credentials{
			Email:     creds.Email,
			Password:  creds.Password,
			ProfileID: created.ProfileID,
		},
	}, Callbacks{})
	if err != nil || exec.Status != StatusCompleted {
		if delErr := b.DeleteProfile(context.WithoutCancel(ctx), created.ProfileID, in.Keys); delErr != nil {
			b.logger.Warn("Profile cleanup after failed login", "profileId", created.ProfileID, "error", delErr)
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

	return &LoginResult{Success: true, ProfileID: created.ProfileID}, nil
}

// DeleteProfile implements Provider.
func (b *BrowserUseCloud) DeleteProfile(ctx context.Context, profileID string, keys models.ProviderKeys) error {
	return b.doJSON(ctx, keys.BrowserUseAPIKey, http.MethodDelete, "/browser-profiles/"+profileID, nil, nil)
}

func (b *BrowserUseCloud) startTask(ctx context.Context, apiKey, task, startURL, profileID string, maxSteps int) (string, error) {
	body := map[string]any{
		"task": task,
	}
	if startURL != "" {
		body["start_url"] = startURL
	}
	if profileID != "" {
		body["browser_profile_id"] = profileID
	}
	if maxSteps > 0 {
		body["max_steps"] = maxSteps
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := b.doJSON(ctx, apiKey, http.MethodPost, "/run-task", body, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("task accepted without an id")
	}
	return created.ID, nil
}

func (b *BrowserUseCloud) pollTask(ctx context.Context, apiKey, taskID string, maxSteps int, cb Callbacks) (*buTask, error) {
	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	announcedLive := false
	announcedCreated := false
	lastStep := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		var task buTask
		if err := b.doJSON(ctx, apiKey, http.MethodGet, "/task/"+taskID, nil, &task); err != nil {
			return nil, fmt.Errorf("poll task %s: %w", taskID, err)
		}

		if !announcedCreated && task.ID != "" {
			if cb.OnTaskCreated != nil {
				cb.OnTaskCreated(task.ID, task.SessionID)
			}
			announcedCreated = true
		}
		if !announcedLive && task.LiveURL != "" {
			if cb.OnLiveURL != nil {
				cb.OnLiveURL(task.LiveURL, task.PublicShareURL)
			}
			announcedLive = true
		}
		if cb.OnStepProgress != nil && len(task.Steps) > lastStep {
			step := task.Steps[len(task.Steps)-1]
			cb.OnStepProgress(len(task.Steps), maxSteps, step.NextGoal)
			lastStep = len(task.Steps)
		}

		switch task.Status {
		case "finished", "failed", "stopped":
			if task.Status == "finished" {
				task.Status = "completed"
			}
			return &task, nil
		}
	}
}

// runFollowUp issues a verification task against the same session.
func (b *BrowserUseCloud) runFollowUp(ctx context.Context, apiKey, sessionID, prompt string) (string, error) {
	body := map[string]any{
		"task":       prompt,
		"session_id": sessionID,
		"max_steps":  5,
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := b.doJSON(ctx, apiKey, http.MethodPost, "/run-task", body, &created); err != nil {
		return "", err
	}
	task, err := b.pollTask(ctx, apiKey, created.ID, 5, Callbacks{})
	if err != nil {
		return "", err
	}
	return task.Output, nil
}

func (b *BrowserUseCloud) doJSON(ctx context.Context, apiKey, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("browser-use returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
