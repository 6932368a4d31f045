package genjobs

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutqa/scout/pkg/config"
	"github.com/scoutqa/scout/pkg/locks"
	"github.com/scoutqa/scout/pkg/models"
	"github.com/scoutqa/scout/pkg/provider"
	"github.com/scoutqa/scout/pkg/state"
)

// memStore is an in-memory StateStore with the same sanitize discipline as
// the real one.
type memStore struct {
	mu     sync.Mutex
	states map[string]*models.TeamState
	keys   map[string]models.ProviderKeys
}

func newMemStore() *memStore {
	return &memStore{states: map[string]*models.TeamState{}, keys: map[string]models.ProviderKeys{}}
}

func (m *memStore) GetOrCreate(ctx context.Context, teamID string) (*models.TeamState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.states[teamID]
	if !ok {
		st = models.NewTeamState()
		m.states[teamID] = st
	}
	state.Sanitize(st)
	return st, nil
}

func (m *memStore) Mutate(ctx context.Context, teamID, updatedBy string, fn func(*models.TeamState) error) (*models.TeamState, error) {
	st, err := m.GetOrCreate(ctx, teamID)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := fn(st); err != nil {
		return nil, err
	}
	state.Sanitize(st)
	return st, nil
}

func (m *memStore) GetProviderKeys(ctx context.Context, teamID string) (models.ProviderKeys, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keys[teamID], nil
}

// scriptedProvider returns a fixed exploration verdict.
type scriptedProvider struct {
	mu      sync.Mutex
	calls   int
	verdict *provider.Verdict
	execErr error
}

func (p *scriptedProvider) ExecuteTest(ctx context.Context, in provider.ExecuteInput, cb provider.Callbacks) (*provider.ExecuteResult, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.execErr != nil {
		return nil, p.execErr
	}
	if cb.OnLiveURL != nil {
		cb.OnLiveURL("https://live.example/exploration", "")
	}
	return &provider.ExecuteResult{Status: provider.StatusCompleted, Verdict: p.verdict}, nil
}

func (p *scriptedProvider) LoginWithProfile(ctx context.Context, in provider.LoginInput) (*provider.LoginResult, error) {
	return &provider.LoginResult{Success: true}, nil
}

func (p *scriptedProvider) DeleteProfile(ctx context.Context, profileID string, keys models.ProviderKeys) error {
	return nil
}

// scriptedLLM returns a fixed synthesis payload.
type scriptedLLM struct {
	response string
	err      error
}

func (l *scriptedLLM) Complete(ctx context.Context, model, system, prompt string) (string, error) {
	return l.response, l.err
}

func testService(store *memStore, prov provider.Provider, client *scriptedLLM) (*Service, *locks.AccountLocks) {
	reg := locks.NewAccountLocks()
	cfg := &config.GenConfig{
		StaleJobThreshold:   10 * time.Minute,
		AccountWaitInterval: 5 * time.Millisecond,
		AccountWaitDeadline: 100 * time.Millisecond,
		DrainLimit:          2,
	}
	factory := func(models.BrowserProvider) (provider.Provider, error) { return prov, nil }
	return NewService(store, reg, factory, client, cfg), reg
}

func seedProject(t *testing.T, store *memStore, teamID, projectID string) {
	t.Helper()
	_, err := store.Mutate(context.Background(), teamID, "test", func(st *models.TeamState) error {
		st.Projects = append(st.Projects, models.Project{ID: projectID, Name: "Demo"})
		return nil
	})
	require.NoError(t, err)
}

func synthesisJSON(titles ...string) string {
	out := `{"testCases": [`
	for i, title := range titles {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"title": %q, "description": "Steps for %s", "expectedOutcome": "Outcome for %s"}`, title, title, title)
	}
	return out + `]}`
}

func TestEnqueueValidation(t *testing.T) {
	svc, _ := testService(newMemStore(), &scriptedProvider{}, &scriptedLLM{})

	_, err := svc.Enqueue(context.Background(), EnqueueInput{TeamID: "t", ProjectID: "", Prompt: "p", WebsiteURL: "u", Model: "m"})
	assert.ErrorContains(t, err, "projectId")

	_, err = svc.Enqueue(context.Background(), EnqueueInput{TeamID: "t", ProjectID: "p", Prompt: "", WebsiteURL: "u", Model: "m"})
	assert.ErrorContains(t, err, "rawText")

	_, err = svc.Enqueue(context.Background(), EnqueueInput{TeamID: "t", ProjectID: "p", Prompt: "x", WebsiteURL: "", Model: "m"})
	assert.ErrorContains(t, err, "websiteUrl")

	_, err = svc.Enqueue(context.Background(), EnqueueInput{TeamID: "t", ProjectID: "p", Prompt: "x", WebsiteURL: "u", Model: ""})
	assert.ErrorContains(t, err, "aiModel")
}

func TestEnqueueUnknownProject(t *testing.T) {
	svc, _ := testService(newMemStore(), &scriptedProvider{}, &scriptedLLM{})

	_, err := svc.Enqueue(context.Background(), EnqueueInput{
		TeamID: "team-1", ProjectID: "nope", Prompt: "x", WebsiteURL: "https://a", Model: "gpt",
	})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestEnqueueJobCap(t *testing.T) {
	seedFullProject := func(t *testing.T, store *memStore, status models.JobStatus) {
		t.Helper()
		seedProject(t, store, "team-1", "proj-1")
		_, err := store.Mutate(context.Background(), "team-1", "test", func(st *models.TeamState) error {
			for i := 0; i < models.MaxJobsPerProject; i++ {
				st.Jobs["proj-1"] = append(st.Jobs["proj-1"], models.GenerationJob{
					ID: fmt.Sprintf("job-%d", i), ProjectID: "proj-1", Status: status,
				})
			}
			return nil
		})
		require.NoError(t, err)
	}

	t.Run("finished history is evicted oldest first", func(t *testing.T) {
		store := newMemStore()
		seedFullProject(t, store, models.JobStatusCompleted)

		svc, _ := testService(store, &scriptedProvider{verdict: &provider.Verdict{}}, &scriptedLLM{response: synthesisJSON("Login works")})
		job, err := svc.Enqueue(context.Background(), EnqueueInput{
			TeamID: "team-1", ProjectID: "proj-1", Prompt: "x", WebsiteURL: "https://a", Model: "gpt",
		})
		require.NoError(t, err, "a full history must not block new generation")

		// Enqueue spawns a worker for the new job; wait for it to finish so
		// the state reads below see a quiescent document.
		var ids []string
		require.Eventually(t, func() bool {
			done := false
			_, err := store.Mutate(context.Background(), "team-1", "test", func(st *models.TeamState) error {
				jobs := st.Jobs["proj-1"]
				ids = ids[:0]
				for _, j := range jobs {
					ids = append(ids, j.ID)
				}
				done = len(jobs) > 0 && !jobs[0].Active()
				return nil
			})
			return err == nil && done
		}, 2*time.Second, 5*time.Millisecond)

		require.Len(t, ids, models.MaxJobsPerProject)
		assert.Equal(t, job.ID, ids[0], "new job sits at the newest-first head")
		assert.NotContains(t, ids, fmt.Sprintf("job-%d", models.MaxJobsPerProject-1), "oldest finished job is evicted")
		assert.Contains(t, ids, "job-0")
	})

	t.Run("all active jobs rejects", func(t *testing.T) {
		store := newMemStore()
		seedFullProject(t, store, models.JobStatusQueued)

		svc, _ := testService(store, &scriptedProvider{}, &scriptedLLM{})
		_, err := svc.Enqueue(context.Background(), EnqueueInput{
			TeamID: "team-1", ProjectID: "proj-1", Prompt: "x", WebsiteURL: "https://a", Model: "gpt",
		})
		assert.ErrorIs(t, err, ErrJobLimit)
	})
}

func TestClaimNextJobPicksEarliest(t *testing.T) {
	store := newMemStore()
	seedProject(t, store, "team-1", "proj-1")
	base := time.Now().UTC()
	_, err := store.Mutate(context.Background(), "team-1", "test", func(st *models.TeamState) error {
		st.Jobs["proj-1"] = []models.GenerationJob{
			{ID: "job-new", ProjectID: "proj-1", Status: models.JobStatusQueued, CreatedAt: base},
			{ID: "job-old", ProjectID: "proj-1", Status: models.JobStatusQueued, CreatedAt: base.Add(-time.Hour)},
		}
		return nil
	})
	require.NoError(t, err)

	svc, _ := testService(store, &scriptedProvider{}, &scriptedLLM{})
	job, ok, err := svc.claimNextJob(context.Background(), "team-1", "test", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "job-old", job.ID)
	assert.Equal(t, models.JobStatusRunning, job.Status)
	assert.Equal(t, "AI is now checking your app to determine best test cases.", job.Progress)
	require.NotNil(t, job.StartedAt)
}

func TestClaimNextJobReclaimsStale(t *testing.T) {
	store := newMemStore()
	seedProject(t, store, "team-1", "proj-1")
	staleStart := time.Now().UTC().Add(-20 * time.Minute)
	freshStart := time.Now().UTC().Add(-time.Minute)
	_, err := store.Mutate(context.Background(), "team-1", "test", func(st *models.TeamState) error {
		st.Jobs["proj-1"] = []models.GenerationJob{
			{ID: "job-fresh", ProjectID: "proj-1", Status: models.JobStatusRunning, StartedAt: &freshStart, CreatedAt: time.Now()},
			{ID: "job-stale", ProjectID: "proj-1", Status: models.JobStatusRunning, StartedAt: &staleStart, CreatedAt: time.Now().Add(-time.Hour)},
		}
		return nil
	})
	require.NoError(t, err)

	svc, _ := testService(store, &scriptedProvider{}, &scriptedLLM{})
	job, ok, err := svc.claimNextJob(context.Background(), "team-1", "test", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "job-stale", job.ID)

	// Nothing else is claimable now.
	_, ok, err = svc.claimNextJob(context.Background(), "team-1", "test", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProcessQueuedJobsEndToEnd(t *testing.T) {
	store := newMemStore()
	seedProject(t, store, "team-1", "proj-1")

	prov := &scriptedProvider{verdict: &provider.Verdict{
		Success:       true,
		Reason:        "Explored the signup and checkout flows.",
		ExtractedData: map[string]any{"flows": []any{"signup", "checkout"}},
	}}
	client := &scriptedLLM{response: synthesisJSON("Signup flow", "Checkout flow")}
	svc, reg := testService(store, prov, client)

	_, err := store.Mutate(context.Background(), "team-1", "test", func(st *models.TeamState) error {
		st.Jobs["proj-1"] = []models.GenerationJob{{
			ID: "job-1", ProjectID: "proj-1", Prompt: "cover signup", WebsiteURL: "https://a",
			Model: "gpt", Status: models.JobStatusQueued, CreatedAt: time.Now().UTC(),
		}}
		return nil
	})
	require.NoError(t, err)

	svc.ProcessQueuedJobs(context.Background(), "team-1", "test", "job-1")

	st, err := store.GetOrCreate(context.Background(), "team-1")
	require.NoError(t, err)

	job := st.Jobs["proj-1"][0]
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	require.NotNil(t, job.CompletedAt)
	assert.Equal(t, 2, job.DraftCount)
	assert.Equal(t, 0, job.DuplicateCount)
	assert.Empty(t, job.Progress)

	drafts := st.Drafts["proj-1"]
	require.Len(t, drafts, 2)
	for _, d := range drafts {
		assert.Equal(t, models.DraftStatusDraft, d.Status)
		assert.Equal(t, "job-1", d.JobID)
	}

	assert.True(t, st.Notifications["proj-1"].HasUnseenDrafts)
	assert.False(t, reg.InUse("acc-1"))
}

func TestProcessQueuedJobsDeduplicatesAgainstExistingTests(t *testing.T) {
	store := newMemStore()
	seedProject(t, store, "team-1", "proj-1")

	_, err := store.Mutate(context.Background(), "team-1", "test", func(st *models.TeamState) error {
		st.TestCases["proj-1"] = []models.TestCase{{
			ID: "tc-1", Title: "Signup flow", Description: "Steps for Signup flow", ExpectedOutcome: "Outcome for Signup flow",
		}}
		st.Jobs["proj-1"] = []models.GenerationJob{{
			ID: "job-1", ProjectID: "proj-1", Prompt: "p", WebsiteURL: "https://a",
			Model: "gpt", Status: models.JobStatusQueued, CreatedAt: time.Now().UTC(),
		}}
		return nil
	})
	require.NoError(t, err)

	prov := &scriptedProvider{verdict: &provider.Verdict{Success: true, Reason: "explored"}}
	client := &scriptedLLM{response: synthesisJSON("Signup flow", "Billing settings")}
	svc, _ := testService(store, prov, client)

	svc.ProcessQueuedJobs(context.Background(), "team-1", "test", "job-1")

	st, _ := store.GetOrCreate(context.Background(), "team-1")
	job := st.Jobs["proj-1"][0]
	assert.Equal(t, 1, job.DraftCount)
	assert.Equal(t, 1, job.DuplicateCount)

	byStatus := map[models.DraftStatus]int{}
	for _, d := range st.Drafts["proj-1"] {
		byStatus[d.Status]++
	}
	assert.Equal(t, 1, byStatus[models.DraftStatusDraft])
	assert.Equal(t, 1, byStatus[models.DraftStatusDuplicateSkipped])
}

func TestRunClaimedJobFailsOnProviderError(t *testing.T) {
	store := newMemStore()
	seedProject(t, store, "team-1", "proj-1")
	_, err := store.Mutate(context.Background(), "team-1", "test", func(st *models.TeamState) error {
		st.Jobs["proj-1"] = []models.GenerationJob{{
			ID: "job-1", ProjectID: "proj-1", Prompt: "p", WebsiteURL: "https://a",
			Model: "gpt", Status: models.JobStatusQueued, CreatedAt: time.Now().UTC(),
		}}
		return nil
	})
	require.NoError(t, err)

	prov := &scriptedProvider{execErr: fmt.Errorf("session quota exhausted")}
	svc, _ := testService(store, prov, &scriptedLLM{})

	svc.ProcessQueuedJobs(context.Background(), "team-1", "test", "job-1")

	st, _ := store.GetOrCreate(context.Background(), "team-1")
	job := st.Jobs["proj-1"][0]
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Equal(t, "session quota exhausted", job.Error)
	assert.Empty(t, job.Progress)
	assert.Empty(t, job.LiveURL)
}

func TestRunClaimedJobAccountWaitTimeout(t *testing.T) {
	store := newMemStore()
	seedProject(t, store, "team-1", "proj-1")
	_, err := store.Mutate(context.Background(), "team-1", "test", func(st *models.TeamState) error {
		st.Accounts["proj-1"] = []models.UserAccount{{ID: "acc-1", ProjectID: "proj-1"}}
		st.Jobs["proj-1"] = []models.GenerationJob{{
			ID: "job-1", ProjectID: "proj-1", Prompt: "p", WebsiteURL: "https://a", Model: "gpt",
			UserAccountID: "acc-1", Status: models.JobStatusQueued, CreatedAt: time.Now().UTC(),
		}}
		return nil
	})
	require.NoError(t, err)

	prov := &scriptedProvider{verdict: &provider.Verdict{Success: true, Reason: "ok"}}
	svc, reg := testService(store, prov, &scriptedLLM{response: synthesisJSON("A")})

	// Hold the account for longer than the wait deadline.
	require.True(t, reg.TryAcquire("acc-1"))
	defer reg.Release("acc-1")

	svc.ProcessQueuedJobs(context.Background(), "team-1", "test", "job-1")

	st, _ := store.GetOrCreate(context.Background(), "team-1")
	job := st.Jobs["proj-1"][0]
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Contains(t, job.Error, "Timed out waiting")
	assert.Equal(t, 0, prov.calls, "provider must not run without the account")
}

func TestRunClaimedJobMissingSpecificAccount(t *testing.T) {
	store := newMemStore()
	seedProject(t, store, "team-1", "proj-1")
	_, err := store.Mutate(context.Background(), "team-1", "test", func(st *models.TeamState) error {
		st.Jobs["proj-1"] = []models.GenerationJob{{
			ID: "job-1", ProjectID: "proj-1", Prompt: "p", WebsiteURL: "https://a", Model: "gpt",
			UserAccountID: "ghost", Status: models.JobStatusQueued, CreatedAt: time.Now().UTC(),
		}}
		return nil
	})
	require.NoError(t, err)

	svc, _ := testService(store, &scriptedProvider{}, &scriptedLLM{})
	svc.ProcessQueuedJobs(context.Background(), "team-1", "test", "job-1")

	st, _ := store.GetOrCreate(context.Background(), "team-1")
	job := st.Jobs["proj-1"][0]
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Equal(t, "Assigned account 'ghost' was not found in shared team state.", job.Error)
}

func TestMarkDraftsSeen(t *testing.T) {
	store := newMemStore()
	seedProject(t, store, "team-1", "proj-1")
	_, err := store.Mutate(context.Background(), "team-1", "test", func(st *models.TeamState) error {
		st.Notifications["proj-1"] = models.DraftNotification{HasUnseenDrafts: true}
		return nil
	})
	require.NoError(t, err)

	svc, _ := testService(store, &scriptedProvider{}, &scriptedLLM{})
	require.NoError(t, svc.MarkDraftsSeen(context.Background(), "team-1", "test", "proj-1"))

	st, _ := store.GetOrCreate(context.Background(), "team-1")
	n := st.Notifications["proj-1"]
	assert.False(t, n.HasUnseenDrafts)
	require.NotNil(t, n.LastSeenAt)
}
