package models

import "time"

// MaxJobsPerProject caps retained AI generation jobs per project (newest first).
const MaxJobsPerProject = 30

// JobStatus is the lifecycle status of an AI generation job.
type JobStatus string

// AI generation job statuses.
const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// GenerationJob is a single AI exploration request: run one browser
// exploration against the target app, then synthesize candidate test drafts
// from what the agent observed.
type GenerationJob struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`

	// Prompt is the user's free-text description of what to generate tests for.
	Prompt     string `json:"prompt"`
	WebsiteURL string `json:"websiteUrl"`

	// GroupName, when set, is the group published drafts will be filed under.
	GroupName string `json:"groupName,omitempty"`

	// UserAccountID is empty, a specific account id, or the AnyAccount sentinel.
	UserAccountID string `json:"userAccountId,omitempty"`

	Provider BrowserProvider `json:"provider"`
	Settings Settings        `json:"settings"`
	Model    string          `json:"model"`

	Status      JobStatus  `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// Progress is a human-readable message describing the current phase.
	Progress string `json:"progress,omitempty"`

	// LiveURL is ephemeral (valid while the exploration session is live);
	// RecordingURL persists after.
	LiveURL      string `json:"liveUrl,omitempty"`
	RecordingURL string `json:"recordingUrl,omitempty"`

	Error string `json:"error,omitempty"`

	DraftCount     int `json:"draftCount"`
	DuplicateCount int `json:"duplicateCount"`
}

// Active reports whether the job still needs a worker (queued or running).
func (j *GenerationJob) Active() bool {
	return j.Status == JobStatusQueued || j.Status == JobStatusRunning
}

// StaleAfter reports whether a running job's start timestamp is older than
// the given threshold, making it reclaimable by another worker.
func (j *GenerationJob) StaleAfter(threshold time.Duration, now time.Time) bool {
	if j.Status != JobStatusRunning || j.StartedAt == nil {
		return false
	}
	return now.Sub(*j.StartedAt) > threshold
}

// DraftStatus is the lifecycle status of a generated test draft.
type DraftStatus string

// Draft statuses.
const (
	DraftStatusDraft            DraftStatus = "draft"
	DraftStatusPublished        DraftStatus = "published"
	DraftStatusDiscarded        DraftStatus = "discarded"
	DraftStatusDuplicateSkipped DraftStatus = "duplicate_skipped"
)

// TestDraft is an AI-generated candidate test case awaiting review.
type TestDraft struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	JobID     string `json:"jobId"`

	Title           string `json:"title"`
	Description     string `json:"description"`
	ExpectedOutcome string `json:"expectedOutcome"`

	UserAccountID string `json:"userAccountId,omitempty"`
	GroupName     string `json:"groupName,omitempty"`

	Status DraftStatus `json:"status"`

	// DuplicateOfTestID and DuplicateReason are set when deduplication found
	// an exact or near match against existing coverage.
	DuplicateOfTestID string `json:"duplicateOfTestId,omitempty"`
	DuplicateReason   string `json:"duplicateReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// DraftNotification tracks whether a project has drafts the user hasn't seen.
type DraftNotification struct {
	HasUnseenDrafts bool       `json:"hasUnseenDrafts"`
	LastSeenAt      *time.Time `json:"lastSeenAt,omitempty"`
}
