package models

// BrowserProvider selects which browser-automation provider executes tests.
type BrowserProvider string

// Browser providers.
const (
	ProviderHyperbrowser    BrowserProvider = "hyperbrowser"
	ProviderBrowserUseCloud BrowserProvider = "browser-use-cloud"
	ProviderBrowserUseLocal BrowserProvider = "browser-use-local"
)

// ProfileSlotFor returns the account profile slot for a provider, or "" when
// the provider has no persistent profile support (local).
func ProfileSlotFor(p BrowserProvider) ProfileSlot {
	switch p {
	case ProviderHyperbrowser:
		return ProfileSlotHyperbrowser
	case ProviderBrowserUseCloud:
		return ProfileSlotBrowserUseCloud
	default:
		return ""
	}
}

// Parallelism bounds for a run's concurrency budget.
const (
	MinParallelism     = 1
	MaxParallelism     = 250
	DefaultParallelism = 3
)

// Settings is the per-team execution configuration snapshot. API keys never
// travel inside the shared team state document; they live in the encrypted
// provider-credential store and are stripped on every sanitize pass.
type Settings struct {
	BrowserProvider     BrowserProvider `json:"browserProvider"`
	HyperbrowserEnabled bool            `json:"hyperbrowserEnabled"`

	// Parallelism is the default concurrency budget for runs, clamped to
	// [MinParallelism, MaxParallelism].
	Parallelism int `json:"parallelism"`

	// DefaultTimeoutSeconds is forwarded to providers as the per-task budget.
	// The scheduler itself enforces no hard per-test deadline.
	DefaultTimeoutSeconds int `json:"defaultTimeoutSeconds,omitempty"`

	// MaxSteps caps the number of browser-agent steps per task.
	MaxSteps int `json:"maxSteps,omitempty"`

	// Legacy clients may still post keys inside settings; sanitize clears them.
	HyperbrowserAPIKey string `json:"hyperbrowserApiKey,omitempty"`
	BrowserUseAPIKey   string `json:"browserUseApiKey,omitempty"`
	LLMAPIKey          string `json:"llmApiKey,omitempty"`
}

// ProviderKeys holds the decrypted provider API keys for one team. Encrypted
// at rest; decrypted only on read; never embedded in TeamState.
type ProviderKeys struct {
	HyperbrowserAPIKey string `json:"hyperbrowserApiKey,omitempty"`
	BrowserUseAPIKey   string `json:"browserUseApiKey,omitempty"`
	LLMAPIKey          string `json:"llmApiKey,omitempty"`
}
