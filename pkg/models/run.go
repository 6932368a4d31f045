package models

import "time"

// RunStatus is the lifecycle status of a test run (a batch).
type RunStatus string

// Test run statuses.
const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// TestRun is one scheduler invocation over an ordered set of test cases with
// a shared parallelism budget.
//
// Invariant: Passed + Failed + Skipped <= TotalTests, with equality once the
// run reaches a terminal status. Results are appended in completion order,
// not submission order.
type TestRun struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Status      RunStatus  `json:"status"`

	TestCaseIDs   []string `json:"testCaseIds"`
	ParallelLimit int      `json:"parallelLimit"`

	Passed     int `json:"passed"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
	TotalTests int `json:"totalTests"`

	Results []TestResult `json:"results"`
}

// ActiveRun is an entry in the team state's activeTestRuns map. It exists
// only while a run is executing and is removed on terminal transition.
type ActiveRun struct {
	RunID     string    `json:"runId"`
	ProjectID string    `json:"projectId"`
	StartedAt time.Time `json:"startedAt"`
}
