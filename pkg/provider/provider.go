// Package provider abstracts the remote browser-automation services that
// actually drive a browser through a test. Three implementations exist —
// Hyperbrowser, Browser Use Cloud, and a local Browser Use bridge — behind
// one interface so callers never branch on provider identity.
package provider

import (
	"context"
	"fmt"

	"github.com/scoutqa/scout/pkg/models"
)

// Credentials are the application login details forwarded to the browser
// agent for tests that require a user account.
type Credentials struct {
	Email    string
	Password string

	// ProfileID, when set, names a reusable provider-side profile holding an
	// authenticated session; the agent logs in manually only as a fallback.
	ProfileID string

	Metadata map[string]string
}

// ExecuteInput is one browser task: navigate to the target and carry out the
// composed task text.
type ExecuteInput struct {
	TargetURL       string
	Task            string
	ExpectedOutcome string

	Settings models.Settings
	Keys     models.ProviderKeys

	Credentials *Credentials
}

// Callbacks deliver mid-execution signals. Any callback may be nil.
type Callbacks struct {
	// OnLiveURL fires when the provider exposes a live session view.
	// recordingURL may be empty until the session ends.
	OnLiveURL func(liveURL, recordingURL string)

	// OnTaskCreated fires once the provider has accepted the task.
	OnTaskCreated func(taskID, sessionID string)

	// OnStepProgress fires as the agent advances through its steps.
	OnStepProgress func(current, total int, description string)
}

// Status classifies a provider execution outcome.
type Status string

// Execution statuses.
const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusError     Status = "error"
)

// Verdict is the structured outcome the browser agent is instructed to
// return inside its free-text output.
type Verdict struct {
	Success       bool           `json:"success"`
	Reason        string         `json:"reason"`
	ExtractedData map[string]any `json:"extractedData,omitempty"`
}

// ExecuteResult is the provider's answer for one task. Status error means
// the task never produced a verdict; Error carries the cause.
type ExecuteResult struct {
	Status  Status
	Verdict *Verdict

	LiveURL      string
	RecordingURL string

	Error string

	// RawProviderData is the provider's own task payload, preserved for
	// debugging and merged into the result's extracted data.
	RawProviderData map[string]any
}

// LoginInput asks a provider to create (or reuse) a persistent profile and
// authenticate it against the target application.
type LoginInput struct {
	Account   models.UserAccount
	TargetURL string
	Settings  models.Settings
	Keys      models.ProviderKeys
}

// LoginResult reports profile login. On failure the provider must have
// cleaned up any partially created profile.
type LoginResult struct {
	Success   bool
	ProfileID string
	Error     string
}

// Provider is the capability set every browser-automation backend implements.
// Implementations that cannot support an operation return an explicit
// "unsupported" error rather than being absent.
type Provider interface {
	ExecuteTest(ctx context.Context, in ExecuteInput, cb Callbacks) (*ExecuteResult, error)
	LoginWithProfile(ctx context.Context, in LoginInput) (*LoginResult, error)
	DeleteProfile(ctx context.Context, profileID string, keys models.ProviderKeys) error
}

// New returns the implementation selected by the settings key.
func New(p models.BrowserProvider) (Provider, error) {
	switch p {
	case models.ProviderHyperbrowser:
		return NewHyperbrowser(), nil
	case models.ProviderBrowserUseCloud:
		return NewBrowserUseCloud(), nil
	case models.ProviderBrowserUseLocal:
		return NewBrowserUseLocal(""), nil
	default:
		return nil, fmt.Errorf("unknown browser provider %q", p)
	}
}

// Factory resolves providers from settings; swapped for a fake in tests.
type Factory func(models.BrowserProvider) (Provider, error)
