package state

import (
	"github.com/scoutqa/scout/pkg/models"
)

// Sanitize coerces a team state document into a valid shape. Applied on every
// read and write so that documents produced by older clients, partial writes,
// or hand edits cannot wedge the core.
//
// Rules:
//  1. Missing top-level maps/arrays become empty defaults.
//  2. Parallelism is clamped to [1,250]; unset falls back to 3.
//  3. When the hyperbrowser toggle is off the provider is forced to the
//     browser-use cloud variant.
//  4. Provider API keys are stripped — they never flow through the shared
//     document (they live in the encrypted credential store).
//  5. The legacy activeTestRun singleton is migrated into the activeTestRuns map.
//
// Retention caps are applied as part of the same pass: runs to 50, jobs to
// 30, and accounts to 20 per project (runs and jobs keep the newest first).
func Sanitize(st *models.TeamState) {
	if st == nil {
		return
	}

	if st.Projects == nil {
		st.Projects = []models.Project{}
	}
	if st.TestCases == nil {
		st.TestCases = map[string][]models.TestCase{}
	}
	if st.TestRuns == nil {
		st.TestRuns = map[string][]models.TestRun{}
	}
	if st.TestGroups == nil {
		st.TestGroups = map[string][]models.TestGroup{}
	}
	if st.Accounts == nil {
		st.Accounts = map[string][]models.UserAccount{}
	}
	if st.Jobs == nil {
		st.Jobs = map[string][]models.GenerationJob{}
	}
	if st.Drafts == nil {
		st.Drafts = map[string][]models.TestDraft{}
	}
	if st.Notifications == nil {
		st.Notifications = map[string]models.DraftNotification{}
	}
	if st.ActiveTestRuns == nil {
		st.ActiveTestRuns = map[string]models.ActiveRun{}
	}

	sanitizeSettings(&st.Settings)

	// Legacy singleton → map migration.
	if st.LegacyActiveTestRun != nil {
		if st.LegacyActiveTestRun.RunID != "" {
			st.ActiveTestRuns[st.LegacyActiveTestRun.RunID] = *st.LegacyActiveTestRun
		}
		st.LegacyActiveTestRun = nil
	}

	// Retention caps, newest first.
	for projectID, runs := range st.TestRuns {
		if len(runs) > models.MaxRunsPerProject {
			st.TestRuns[projectID] = runs[:models.MaxRunsPerProject]
		}
	}
	for projectID, jobs := range st.Jobs {
		if len(jobs) > models.MaxJobsPerProject {
			st.Jobs[projectID] = jobs[:models.MaxJobsPerProject]
		}
	}
	for projectID, accounts := range st.Accounts {
		if len(accounts) > models.MaxAccountsPerProject {
			st.Accounts[projectID] = accounts[:models.MaxAccountsPerProject]
		}
	}
}

func sanitizeSettings(s *models.Settings) {
	switch {
	case s.Parallelism == 0:
		s.Parallelism = models.DefaultParallelism
	case s.Parallelism < models.MinParallelism:
		s.Parallelism = models.MinParallelism
	case s.Parallelism > models.MaxParallelism:
		s.Parallelism = models.MaxParallelism
	}

	if s.BrowserProvider == "" {
		s.BrowserProvider = models.ProviderBrowserUseCloud
	}
	if !s.HyperbrowserEnabled && s.BrowserProvider != models.ProviderBrowserUseCloud {
		s.BrowserProvider = models.ProviderBrowserUseCloud
	}

	// Keys never ride along in the shared document.
	s.HyperbrowserAPIKey = ""
	s.BrowserUseAPIKey = ""
	s.LLMAPIKey = ""
}

// SanitizeSettings normalizes a settings snapshot supplied directly by a
// request body (execute / generate endpoints) using the same rules as the
// stored document.
func SanitizeSettings(s *models.Settings) {
	sanitizeSettings(s)
}
