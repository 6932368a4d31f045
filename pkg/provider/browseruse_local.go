package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/scoutqa/scout/pkg/models"
)

const defaultLocalBridgeURL = "http://localhost:8932"

// ErrUnsupported is returned for operations a provider cannot perform.
var ErrUnsupported = errors.New("operation not supported by this provider")

// BrowserUseLocal proxies tasks to a self-hosted Browser Use bridge running
// next to the server. No live view, no recordings, no persistent profiles;
// useful for development and air-gapped deployments.
type BrowserUseLocal struct {
	httpClient *http.Client
	baseURL    string
}

// NewBrowserUseLocal creates a client for the local bridge. baseURL may be
// empty, in which case BROWSER_USE_LOCAL_URL or the default port is used.
func NewBrowserUseLocal(baseURL string) *BrowserUseLocal {
	if baseURL == "" {
		baseURL = os.Getenv("BROWSER_USE_LOCAL_URL")
	}
	if baseURL == "" {
		baseURL = defaultLocalBridgeURL
	}
	return &BrowserUseLocal{
		// Local runs are synchronous; the timeout covers a whole task.
		httpClient: &http.Client{Timeout: 15 * time.Minute},
		baseURL:    baseURL,
	}
}

// ExecuteTest implements Provider. The bridge runs the task synchronously
// and returns the agent's final output in one response.
func (l *BrowserUseLocal) ExecuteTest(ctx context.Context, in ExecuteInput, cb Callbacks) (*ExecuteResult, error) {
	body := map[string]any{
		"task": in.Task,
		"url":  in.TargetURL,
	}
	if in.Settings.MaxSteps > 0 {
		body["maxSteps"] = in.Settings.MaxSteps
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/run", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("local bridge unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("local bridge returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}

	var out struct {
		Output string `json:"output"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if cb.OnTaskCreated != nil {
		cb.OnTaskCreated("local", "")
	}

	result := &ExecuteResult{
		RawProviderData: map[string]any{"output": out.Output},
	}
	if out.Error != "" {
		result.Status = StatusError
		result.Error = out.Error
		return result, nil
	}

	// The bridge cannot re-prompt a finished session, so there is no
	// verification round here.
	verdict, ok := ExtractVerdict(out.Output)
	if !ok {
		result.Status = StatusError
		result.Error = ErrNoVerdict
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

// LoginWithProfile implements Provider. The local bridge has no profile
// storage.
func (l *BrowserUseLocal) LoginWithProfile(ctx context.Context, in LoginInput) (*LoginResult, error) {
	return nil, fmt.Errorf("persistent profiles: %w", ErrUnsupported)
}

// DeleteProfile implements Provider.
func (l *BrowserUseLocal) DeleteProfile(ctx context.Context, profileID string, keys models.ProviderKeys) error {
	return fmt.Errorf("persistent profiles: %w", ErrUnsupported)
}
