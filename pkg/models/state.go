package models

// MaxRunsPerProject caps retained test runs per project (newest first).
const MaxRunsPerProject = 50

// TeamState is the single shared document persisted per team. All per-project
// maps are keyed by project id. The document is sanitized on every read and
// write — see the state package.
type TeamState struct {
	Projects []Project `json:"projects"`

	TestCases  map[string][]TestCase      `json:"testCases"`
	TestRuns   map[string][]TestRun       `json:"testRuns"`
	TestGroups map[string][]TestGroup     `json:"testGroups"`
	Accounts   map[string][]UserAccount   `json:"userAccounts"`
	Jobs       map[string][]GenerationJob `json:"aiJobs"`
	Drafts     map[string][]TestDraft     `json:"aiDrafts"`

	Notifications map[string]DraftNotification `json:"draftNotifications"`

	Settings Settings `json:"settings"`

	// ActiveTestRuns maps run id to its active-run entry while executing.
	ActiveTestRuns map[string]ActiveRun `json:"activeTestRuns"`

	// LegacyActiveTestRun is the pre-map singleton; sanitize migrates it into
	// ActiveTestRuns and clears it.
	LegacyActiveTestRun *ActiveRun `json:"activeTestRun,omitempty"`
}

// NewTeamState returns an empty, fully initialized team state document.
func NewTeamState() *TeamState {
	return &TeamState{
		Projects:      []Project{},
		TestCases:     map[string][]TestCase{},
		TestRuns:      map[string][]TestRun{},
		TestGroups:    map[string][]TestGroup{},
		Accounts:      map[string][]UserAccount{},
		Jobs:          map[string][]GenerationJob{},
		Drafts:        map[string][]TestDraft{},
		Notifications: map[string]DraftNotification{},
		Settings: Settings{
			BrowserProvider:     ProviderBrowserUseCloud,
			HyperbrowserEnabled: false,
			Parallelism:         DefaultParallelism,
		},
		ActiveTestRuns: map[string]ActiveRun{},
	}
}

// ProjectAccounts returns the accounts for a project (never nil).
func (s *TeamState) ProjectAccounts(projectID string) []UserAccount {
	if s.Accounts == nil {
		return nil
	}
	return s.Accounts[projectID]
}

// FindProject returns the project with the given id, or nil.
func (s *TeamState) FindProject(projectID string) *Project {
	for i := range s.Projects {
		if s.Projects[i].ID == projectID {
			return &s.Projects[i]
		}
	}
	return nil
}
