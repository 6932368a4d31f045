package state

import (
	"time"

	"github.com/scoutqa/scout/pkg/models"
)

// connectionLostError is written into artifacts a dead session left behind.
const connectionLostError = "Connection lost before result was received"

// SweepStaleRuns normalizes artifacts left behind by sessions that died
// mid-run: runs stuck on "running", results stuck on "running"/"pending",
// test cases whose status or last result never reached a terminal state, and
// stale project/group statuses. The active-runs map is cleared.
//
// The sweeper is pure over the document — it never talks to the database, so
// callers can apply it to a loaded copy without persisting the outcome.
// Applying it twice yields the same document as once.
func SweepStaleRuns(st *models.TeamState) {
	if st == nil {
		return
	}
	now := time.Now()

	for projectID, runs := range st.TestRuns {
		for i := range runs {
			sweepRun(&runs[i], now)
		}
		st.TestRuns[projectID] = runs
	}

	for projectID, tests := range st.TestCases {
		for i := range tests {
			sweepTestCase(&tests[i], now)
		}
		st.TestCases[projectID] = tests
	}

	for i := range st.Projects {
		if st.Projects[i].LastRunStatus == string(models.RunStatusRunning) {
			st.Projects[i].LastRunStatus = recomputeStatus(st.TestCases[st.Projects[i].ID], nil)
		}
	}

	for projectID, groups := range st.TestGroups {
		for i := range groups {
			if groups[i].LastRunStatus == string(models.RunStatusRunning) {
				groups[i].LastRunStatus = recomputeStatus(st.TestCases[projectID], groups[i].TestCaseIDs)
			}
		}
		st.TestGroups[projectID] = groups
	}

	if len(st.ActiveTestRuns) > 0 {
		st.ActiveTestRuns = map[string]models.ActiveRun{}
	}
	st.LegacyActiveTestRun = nil
}

func sweepRun(run *models.TestRun, now time.Time) {
	changed := false

	for i := range run.Results {
		r := &run.Results[i]
		if r.Status == models.ResultStatusRunning || r.Status == models.ResultStatusPending {
			r.Status = models.ResultStatusError
			r.Error = connectionLostError
			if r.CompletedAt == nil {
				t := now
				r.CompletedAt = &t
			}
			changed = true
		}
	}

	if run.Status == models.RunStatusRunning {
		run.Status = models.RunStatusFailed
		if run.CompletedAt == nil {
			t := now
			run.CompletedAt = &t
		}
		changed = true
	}

	if changed {
		recountRun(run)
	}
}

// recountRun recomputes the run's totals from its results. Error results
// count as failed.
func recountRun(run *models.TestRun) {
	passed, failed, skipped := 0, 0, 0
	for i := range run.Results {
		switch run.Results[i].Status {
		case models.ResultStatusPassed:
			passed++
		case models.ResultStatusFailed, models.ResultStatusError:
			failed++
		case models.ResultStatusSkipped:
			skipped++
		}
	}
	run.Passed = passed
	run.Failed = failed
	run.Skipped = skipped
}

func sweepTestCase(tc *models.TestCase, now time.Time) {
	if tc.Status == models.TestStatusRunning || tc.Status == models.TestStatusPending {
		tc.Status = models.TestStatusFailed
	}
	if lr := tc.LastResult; lr != nil {
		if lr.Status == models.ResultStatusRunning || lr.Status == models.ResultStatusPending {
			lr.Status = models.ResultStatusError
			lr.Error = connectionLostError
			if lr.CompletedAt == nil {
				t := now
				lr.CompletedAt = &t
			}
		}
	}
}

// recomputeStatus derives a last-run status from the remaining evidence: the
// statuses of the given tests (optionally restricted to an id subset).
func recomputeStatus(tests []models.TestCase, subset []string) string {
	include := func(id string) bool { return true }
	if subset != nil {
		ids := make(map[string]struct{}, len(subset))
		for _, id := range subset {
			ids[id] = struct{}{}
		}
		include = func(id string) bool {
			_, ok := ids[id]
			return ok
		}
	}

	anyFailed, anyPassed := false, false
	for i := range tests {
		if !include(tests[i].ID) {
			continue
		}
		switch tests[i].Status {
		case models.TestStatusFailed:
			anyFailed = true
		case models.TestStatusPassed:
			anyPassed = true
		}
	}

	switch {
	case anyFailed:
		return string(models.TestStatusFailed)
	case anyPassed:
		return string(models.TestStatusPassed)
	default:
		return ""
	}
}
