package state

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutqa/scout/pkg/models"
)

func staleState() *models.TeamState {
	st := models.NewTeamState()
	st.Projects = []models.Project{{ID: "proj-1", Name: "Demo", LastRunStatus: "running"}}
	st.TestCases["proj-1"] = []models.TestCase{
		{
			ID:     "tc-1",
			Status: models.TestStatusRunning,
			LastResult: &models.TestResult{
				ID:         "res-1",
				TestCaseID: "tc-1",
				Status:     models.ResultStatusRunning,
			},
		},
		{ID: "tc-2", Status: models.TestStatusPassed},
	}
	st.TestRuns["proj-1"] = []models.TestRun{
		{
			ID:         "run-1",
			ProjectID:  "proj-1",
			Status:     models.RunStatusRunning,
			TotalTests: 2,
			Results: []models.TestResult{
				{ID: "res-2", TestCaseID: "tc-2", Status: models.ResultStatusPassed},
				{ID: "res-1", TestCaseID: "tc-1", Status: models.ResultStatusRunning},
			},
		},
	}
	st.TestGroups["proj-1"] = []models.TestGroup{
		{ID: "grp-1", ProjectID: "proj-1", Name: "Smoke", TestCaseIDs: []string{"tc-1", "tc-2"}, LastRunStatus: "running"},
	}
	st.ActiveTestRuns["run-1"] = models.ActiveRun{RunID: "run-1", ProjectID: "proj-1", StartedAt: time.Now()}
	return st
}

func TestSweepStaleRuns(t *testing.T) {
	st := staleState()
	SweepStaleRuns(st)

	run := st.TestRuns["proj-1"][0]
	assert.Equal(t, models.RunStatusFailed, run.Status)
	require.NotNil(t, run.CompletedAt)

	// The stuck result becomes an error with the connection-lost message;
	// the completed result keeps its true status.
	assert.Equal(t, models.ResultStatusPassed, run.Results[0].Status)
	assert.Equal(t, models.ResultStatusError, run.Results[1].Status)
	assert.Equal(t, "Connection lost before result was received", run.Results[1].Error)

	// Totals recomputed: error counts as failed.
	assert.Equal(t, 1, run.Passed)
	assert.Equal(t, 1, run.Failed)
	assert.Equal(t, 0, run.Skipped)

	// Test case and its denormalized last result are normalized.
	tc := st.TestCases["proj-1"][0]
	assert.Equal(t, models.TestStatusFailed, tc.Status)
	assert.Equal(t, models.ResultStatusError, tc.LastResult.Status)

	// Project and group statuses are recomputed from remaining evidence.
	assert.Equal(t, "failed", st.Projects[0].LastRunStatus)
	assert.Equal(t, "failed", st.TestGroups["proj-1"][0].LastRunStatus)

	// Active runs are cleared.
	assert.Empty(t, st.ActiveTestRuns)
}

// Applying the sweeper twice must yield the same document as applying it once.
func TestSweepStaleRunsIdempotent(t *testing.T) {
	st := staleState()
	SweepStaleRuns(st)

	once, err := json.Marshal(st)
	require.NoError(t, err)

	SweepStaleRuns(st)
	twice, err := json.Marshal(st)
	require.NoError(t, err)

	assert.JSONEq(t, string(once), string(twice))
}

func TestSweepLeavesHealthyStateAlone(t *testing.T) {
	st := models.NewTeamState()
	st.TestCases["proj-1"] = []models.TestCase{{ID: "tc-1", Status: models.TestStatusPassed}}
	completed := time.Now()
	st.TestRuns["proj-1"] = []models.TestRun{
		{
			ID:          "run-1",
			Status:      models.RunStatusCompleted,
			CompletedAt: &completed,
			Passed:      1,
			TotalTests:  1,
			Results:     []models.TestResult{{ID: "res-1", Status: models.ResultStatusPassed}},
		},
	}

	before, err := json.Marshal(st)
	require.NoError(t, err)
	SweepStaleRuns(st)
	after, err := json.Marshal(st)
	require.NoError(t, err)

	assert.JSONEq(t, string(before), string(after))
}

func TestCipherRoundTrip(t *testing.T) {
	key := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	c, err := NewCipher(key)
	require.NoError(t, err)

	sealed, err := c.Seal([]byte(`{"hyperbrowserApiKey":"hb-123"}`))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "hb-123")

	plain, err := c.Open(sealed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hyperbrowserApiKey":"hb-123"}`, string(plain))

	t.Run("rejects short key", func(t *testing.T) {
		_, err := NewCipher("abcd")
		assert.Error(t, err)
	})

	t.Run("rejects tampered blob", func(t *testing.T) {
		sealed[len(sealed)-1] ^= 0xff
		_, err := c.Open(sealed)
		assert.Error(t, err)
	})
}
