// Package models defines the domain types shared across the execution core,
// the AI generation pipeline, and the team state document.
package models

import "time"

// AnyAccount is the sentinel userAccountId meaning "assign any available
// account for this project to this test".
const AnyAccount = "__any__"

// TestStatus is the lifecycle status of a test case.
type TestStatus string

// Test case statuses.
const (
	TestStatusPending TestStatus = "pending"
	TestStatusRunning TestStatus = "running"
	TestStatusPassed  TestStatus = "passed"
	TestStatusFailed  TestStatus = "failed"
	TestStatusSkipped TestStatus = "skipped"
)

// ResultStatus is the status of a single test result. It extends TestStatus
// with "error" for infrastructure failures (provider errors, missing verdicts,
// unexpected exceptions).
type ResultStatus string

// Test result statuses.
const (
	ResultStatusPending ResultStatus = "pending"
	ResultStatusRunning ResultStatus = "running"
	ResultStatusPassed  ResultStatus = "passed"
	ResultStatusFailed  ResultStatus = "failed"
	ResultStatusSkipped ResultStatus = "skipped"
	ResultStatusError   ResultStatus = "error"
)

// TestCase is a single browser test owned by a project.
type TestCase struct {
	ID              string `json:"id"`
	ProjectID       string `json:"projectId"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ExpectedOutcome string `json:"expectedOutcome"`
	CreatedBy       string `json:"createdBy"`

	// UserAccountID is empty (no account needed), a specific account id,
	// or the AnyAccount sentinel.
	UserAccountID string `json:"userAccountId,omitempty"`

	Status TestStatus `json:"status"`

	// LastResult is a denormalized snapshot of the most recent result.
	LastResult *TestResult `json:"lastResult,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TestResult records one execution of a test case.
type TestResult struct {
	ID         string `json:"id"`
	TestCaseID string `json:"testCaseId"`

	// UserAccountID is the account actually used for this execution, if any.
	UserAccountID string `json:"userAccountId,omitempty"`

	Status      ResultStatus `json:"status"`
	StartedAt   time.Time    `json:"startedAt"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`

	// DurationMS is the wall-clock execution time in milliseconds.
	DurationMS int64 `json:"duration"`

	// LiveURL is valid only while the provider session is live;
	// RecordingURL is valid after the session ends.
	LiveURL      string `json:"liveUrl,omitempty"`
	RecordingURL string `json:"recordingUrl,omitempty"`

	Error         string         `json:"error,omitempty"`
	Reason        string         `json:"reason,omitempty"`
	ExtractedData map[string]any `json:"extractedData,omitempty"`

	// Issue tracker linkage (populated by the external tracker integration).
	IssueID  string `json:"issueId,omitempty"`
	IssueURL string `json:"issueUrl,omitempty"`
}

// TestGroup is a named ordered collection of test cases within a project.
// A test case belongs to at most one group.
type TestGroup struct {
	ID            string   `json:"id"`
	ProjectID     string   `json:"projectId"`
	Name          string   `json:"name"`
	TestCaseIDs   []string `json:"testCaseIds"`
	LastRunStatus string   `json:"lastRunStatus,omitempty"`
}

// Project is the top-level container for tests, groups, accounts, and runs.
type Project struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	WebsiteURL    string    `json:"websiteUrl"`
	LastRunStatus string    `json:"lastRunStatus,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
