package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutqa/scout/pkg/models"
)

func TestSanitizeDefaults(t *testing.T) {
	st := &models.TeamState{}
	Sanitize(st)

	assert.NotNil(t, st.Projects)
	assert.NotNil(t, st.TestCases)
	assert.NotNil(t, st.TestRuns)
	assert.NotNil(t, st.TestGroups)
	assert.NotNil(t, st.Accounts)
	assert.NotNil(t, st.Jobs)
	assert.NotNil(t, st.Drafts)
	assert.NotNil(t, st.Notifications)
	assert.NotNil(t, st.ActiveTestRuns)

	assert.Equal(t, models.DefaultParallelism, st.Settings.Parallelism)
	assert.Equal(t, models.ProviderBrowserUseCloud, st.Settings.BrowserProvider)
}

func TestSanitizeParallelismClamp(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 3},
		{-5, 1},
		{1, 1},
		{17, 17},
		{250, 250},
		{251, 250},
		{100000, 250},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("parallelism_%d", tc.in), func(t *testing.T) {
			st := models.NewTeamState()
			st.Settings.Parallelism = tc.in
			Sanitize(st)
			assert.Equal(t, tc.want, st.Settings.Parallelism)
		})
	}
}

func TestSanitizeProviderOffRule(t *testing.T) {
	t.Run("hyperbrowser forced off when toggle disabled", func(t *testing.T) {
		st := models.NewTeamState()
		st.Settings.HyperbrowserEnabled = false
		st.Settings.BrowserProvider = models.ProviderHyperbrowser
		Sanitize(st)
		assert.Equal(t, models.ProviderBrowserUseCloud, st.Settings.BrowserProvider)
	})

	t.Run("local forced to cloud when toggle disabled", func(t *testing.T) {
		st := models.NewTeamState()
		st.Settings.HyperbrowserEnabled = false
		st.Settings.BrowserProvider = models.ProviderBrowserUseLocal
		Sanitize(st)
		assert.Equal(t, models.ProviderBrowserUseCloud, st.Settings.BrowserProvider)
	})

	t.Run("hyperbrowser kept when toggle enabled", func(t *testing.T) {
		st := models.NewTeamState()
		st.Settings.HyperbrowserEnabled = true
		st.Settings.BrowserProvider = models.ProviderHyperbrowser
		Sanitize(st)
		assert.Equal(t, models.ProviderHyperbrowser, st.Settings.BrowserProvider)
	})
}

func TestSanitizeStripsKeys(t *testing.T) {
	st := models.NewTeamState()
	st.Settings.HyperbrowserAPIKey = "hb-secret"
	st.Settings.BrowserUseAPIKey = "bu-secret"
	st.Settings.LLMAPIKey = "llm-secret"
	Sanitize(st)

	assert.Empty(t, st.Settings.HyperbrowserAPIKey)
	assert.Empty(t, st.Settings.BrowserUseAPIKey)
	assert.Empty(t, st.Settings.LLMAPIKey)
}

func TestSanitizeMigratesLegacyActiveRun(t *testing.T) {
	st := models.NewTeamState()
	st.LegacyActiveTestRun = &models.ActiveRun{
		RunID:     "run-legacy",
		ProjectID: "proj-1",
		StartedAt: time.Now(),
	}
	Sanitize(st)

	require.Nil(t, st.LegacyActiveTestRun)
	entry, ok := st.ActiveTestRuns["run-legacy"]
	require.True(t, ok, "legacy singleton must be migrated into the map")
	assert.Equal(t, "proj-1", entry.ProjectID)
}

func TestSanitizeRetentionCaps(t *testing.T) {
	st := models.NewTeamState()

	runs := make([]models.TestRun, 60)
	for i := range runs {
		runs[i] = models.TestRun{ID: fmt.Sprintf("run-%d", i)}
	}
	st.TestRuns["proj-1"] = runs

	jobs := make([]models.GenerationJob, 40)
	for i := range jobs {
		jobs[i] = models.GenerationJob{ID: fmt.Sprintf("job-%d", i)}
	}
	st.Jobs["proj-1"] = jobs

	accounts := make([]models.UserAccount, 25)
	for i := range accounts {
		accounts[i] = models.UserAccount{ID: fmt.Sprintf("acct-%d", i)}
	}
	st.Accounts["proj-1"] = accounts

	Sanitize(st)

	assert.Len(t, st.TestRuns["proj-1"], models.MaxRunsPerProject)
	assert.Equal(t, "run-0", st.TestRuns["proj-1"][0].ID, "newest-first prefix is retained")
	assert.Len(t, st.Jobs["proj-1"], models.MaxJobsPerProject)
	assert.Len(t, st.Accounts["proj-1"], models.MaxAccountsPerProject)
	assert.Equal(t, "acct-0", st.Accounts["proj-1"][0].ID)
}
