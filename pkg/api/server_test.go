package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutqa/scout/pkg/config"
	"github.com/scoutqa/scout/pkg/genjobs"
	"github.com/scoutqa/scout/pkg/locks"
	"github.com/scoutqa/scout/pkg/models"
	"github.com/scoutqa/scout/pkg/provider"
	"github.com/scoutqa/scout/pkg/scheduler"
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

func (m *memStore) Save(ctx context.Context, teamID, updatedBy string, st *models.TeamState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	state.Sanitize(st)
	m.states[teamID] = st
	return nil
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

func (m *memStore) SetProviderKeys(ctx context.Context, teamID string, keys models.ProviderKeys) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[teamID] = keys
	return nil
}

// fakeProvider answers every execution with a fixed verdict and records
// profile operations.
type fakeProvider struct {
	mu       sync.Mutex
	execs    int
	verdict  *provider.Verdict
	loginRes *provider.LoginResult
	deleted  []string
}

func (p *fakeProvider) ExecuteTest(ctx context.Context, in provider.ExecuteInput, cb provider.Callbacks) (*provider.ExecuteResult, error) {
	p.mu.Lock()
	p.execs++
	p.mu.Unlock()
	if cb.OnLiveURL != nil {
		cb.OnLiveURL("https://live.example/session", "")
	}
	return &provider.ExecuteResult{Status: provider.StatusCompleted, Verdict: p.verdict}, nil
}

func (p *fakeProvider) LoginWithProfile(ctx context.Context, in provider.LoginInput) (*provider.LoginResult, error) {
	if p.loginRes != nil {
		return p.loginRes, nil
	}
	return &provider.LoginResult{Success: true, ProfileID: "prof-new"}, nil
}

func (p *fakeProvider) DeleteProfile(ctx context.Context, profileID string, keys models.ProviderKeys) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleted = append(p.deleted, profileID)
	return nil
}

type fakeLLM struct {
	response string
}

func (l *fakeLLM) Complete(ctx context.Context, model, system, prompt string) (string, error) {
	return l.response, nil
}

func newTestServer(t *testing.T, prov *fakeProvider, llmResponse string) (*Server, *memStore) {
	t.Helper()
	store := newMemStore()
	accountLocks := locks.NewAccountLocks()
	runs := locks.NewActiveRuns()
	factory := func(models.BrowserProvider) (provider.Provider, error) { return prov, nil }
	client := &fakeLLM{response: llmResponse}

	schedCfg := &config.SchedulerConfig{RetryInterval: 10 * time.Millisecond}
	genCfg := &config.GenConfig{
		StaleJobThreshold:   10 * time.Minute,
		AccountWaitInterval: 5 * time.Millisecond,
		AccountWaitDeadline: 100 * time.Millisecond,
		DrainLimit:          2,
	}

	sched := scheduler.New(accountLocks, factory, client, schedCfg)
	gen := genjobs.NewService(store, accountLocks, factory, client, genCfg)
	return NewServer(config.DefaultAPIConfig(), store, runs, sched, gen, factory, nil, nil), store
}

func seedProject(t *testing.T, store *memStore, teamID, projectID string) {
	t.Helper()
	_, err := store.Mutate(context.Background(), teamID, "test", func(st *models.TeamState) error {
		st.Projects = append(st.Projects, models.Project{ID: projectID, Name: "Demo"})
		return nil
	})
	require.NoError(t, err)
}

func doJSON(t *testing.T, s *Server, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func parseSSE(t *testing.T, body string) []scheduler.Event {
	t.Helper()
	var events []scheduler.Event
	for _, chunk := range strings.Split(body, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		payload := strings.TrimPrefix(chunk, "data: ")
		var ev scheduler.Event
		require.NoError(t, json.Unmarshal([]byte(payload), &ev))
		events = append(events, ev)
	}
	return events
}

func TestExecuteStreamsFullRun(t *testing.T) {
	prov := &fakeProvider{verdict: &provider.Verdict{Success: true, Reason: "all steps passed"}}
	s, store := newTestServer(t, prov, "")
	seedProject(t, store, "default", "proj-1")

	body := `{
		"testCases": [{"id": "tc-1", "projectId": "proj-1", "title": "Login", "description": "Log in"}],
		"websiteUrl": "https://app.example.com",
		"aiModel": "gpt-4o"
	}`
	rec := doJSON(t, s, http.MethodPost, "/api/v1/tests/execute", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	events := parseSSE(t, rec.Body.String())
	require.NotEmpty(t, events)
	assert.Equal(t, scheduler.EventTestStart, events[0].Type)

	last := events[len(events)-1]
	require.Equal(t, scheduler.EventAllComplete, last.Type)
	require.NotNil(t, last.Summary)
	assert.Equal(t, 1, last.Summary.Total)
	assert.Equal(t, 1, last.Summary.Passed)
}

func TestExecuteValidationFailureStreamsSystemError(t *testing.T) {
	s, _ := newTestServer(t, &fakeProvider{}, "")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/tests/execute",
		`{"websiteUrl": "https://app.example.com", "aiModel": "gpt-4o"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	events := parseSSE(t, rec.Body.String())
	require.Len(t, events, 1)
	assert.Equal(t, scheduler.EventTestError, events[0].Type)
	assert.Equal(t, scheduler.SystemTestCaseID, events[0].TestCaseID)
	assert.Contains(t, events[0].Data.Error, "testCases is required")
}

func TestExecuteRejectsMixedProjects(t *testing.T) {
	s, store := newTestServer(t, &fakeProvider{}, "")
	seedProject(t, store, "default", "proj-1")

	body := `{
		"testCases": [
			{"id": "tc-1", "projectId": "proj-1", "title": "Login"},
			{"id": "tc-2", "projectId": "proj-2", "title": "Checkout"}
		],
		"websiteUrl": "https://app.example.com",
		"aiModel": "gpt-4o"
	}`
	rec := doJSON(t, s, http.MethodPost, "/api/v1/tests/execute", body)

	require.Equal(t, http.StatusOK, rec.Code)
	events := parseSSE(t, rec.Body.String())
	require.Len(t, events, 1)
	assert.Equal(t, scheduler.EventTestError, events[0].Type)
	assert.Equal(t, scheduler.SystemTestCaseID, events[0].TestCaseID)
	assert.Contains(t, events[0].Data.Error, "same project")
}

func TestStopHandler(t *testing.T) {
	s, _ := newTestServer(t, &fakeProvider{}, "")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/tests/stop", `{"runId": "missing"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp StopResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Stopped)

	runCtx := s.runs.Register(context.Background(), "run-1")
	rec = doJSON(t, s, http.MethodPost, "/api/v1/tests/stop", `{"runId": "run-1"}`)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Stopped)
	assert.Error(t, runCtx.Err())

	rec = doJSON(t, s, http.MethodPost, "/api/v1/tests/stop", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStopRateLimit(t *testing.T) {
	s, _ := newTestServer(t, &fakeProvider{}, "")
	s.cfg.StopRateLimit = 2
	// Routes capture the limit at registration, so rebuild.
	s2 := NewServer(s.cfg, s.store, s.runs, s.sched, s.gen, s.providers, nil, nil)

	for i := 0; i < 2; i++ {
		rec := doJSON(t, s2, http.MethodPost, "/api/v1/tests/stop", `{"runId": "r"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := doJSON(t, s2, http.MethodPost, "/api/v1/tests/stop", `{"runId": "r"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestGenerateLifecycle(t *testing.T) {
	synthesis := `{"testCases": [
		{"title": "Checkout flow", "description": "Add an item to the cart and pay", "expectedOutcome": "Order confirmation is shown"}
	]}`
	prov := &fakeProvider{verdict: &provider.Verdict{Success: true, Reason: "explored", ExtractedData: map[string]any{"flows": []any{"checkout"}}}}
	s, store := newTestServer(t, prov, synthesis)
	seedProject(t, store, "default", "proj-1")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/ai/generate", `{
		"projectId": "proj-1",
		"rawText": "cover the checkout flow",
		"websiteUrl": "https://shop.example.com",
		"aiModel": "gpt-4o"
	}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var genResp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &genResp))
	assert.True(t, genResp.Success)
	require.NotEmpty(t, genResp.JobID)

	require.Eventually(t, func() bool {
		st, err := store.GetOrCreate(context.Background(), "default")
		if err != nil {
			return false
		}
		jobs := st.Jobs["proj-1"]
		return len(jobs) == 1 && jobs[0].Status == models.JobStatusCompleted
	}, 2*time.Second, 10*time.Millisecond)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/ai/generate/status?projectId=proj-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var status GenerateStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Len(t, status.Jobs, 1)
	assert.Equal(t, 1, status.Jobs[0].DraftCount)
	require.Len(t, status.Drafts, 1)
	assert.Equal(t, "Checkout flow", status.Drafts[0].Title)
	assert.True(t, status.Notification.HasUnseenDrafts)
}

func TestGenerateUnknownProject(t *testing.T) {
	s, _ := newTestServer(t, &fakeProvider{}, "")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/ai/generate", `{
		"projectId": "nope",
		"rawText": "anything",
		"websiteUrl": "https://x.example.com",
		"aiModel": "gpt-4o"
	}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateStatusRequiresProject(t *testing.T) {
	s, _ := newTestServer(t, &fakeProvider{}, "")
	rec := doJSON(t, s, http.MethodGet, "/api/v1/ai/generate/status", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func seedDraft(t *testing.T, store *memStore, projectID, draftID, group string) {
	t.Helper()
	_, err := store.Mutate(context.Background(), "default", "test", func(st *models.TeamState) error {
		st.Drafts[projectID] = append(st.Drafts[projectID], models.TestDraft{
			ID:              draftID,
			ProjectID:       projectID,
			JobID:           "job-1",
			Title:           "Generated test",
			Description:     "Do the thing",
			ExpectedOutcome: "It works",
			GroupName:       group,
			Status:          models.DraftStatusDraft,
			CreatedAt:       time.Now().UTC(),
		})
		return nil
	})
	require.NoError(t, err)
}

func TestPublishDraft(t *testing.T) {
	s, store := newTestServer(t, &fakeProvider{}, "")
	seedProject(t, store, "default", "proj-1")
	seedDraft(t, store, "proj-1", "draft-1", "Smoke")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/ai/drafts/draft-1/publish", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tc models.TestCase
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tc))
	assert.Equal(t, "Generated test", tc.Title)
	assert.Equal(t, models.TestStatusPending, tc.Status)

	st, err := store.GetOrCreate(context.Background(), "default")
	require.NoError(t, err)
	require.Len(t, st.TestCases["proj-1"], 1)
	assert.Equal(t, models.DraftStatusPublished, st.Drafts["proj-1"][0].Status)
	require.Len(t, st.TestGroups["proj-1"], 1)
	assert.Equal(t, "Smoke", st.TestGroups["proj-1"][0].Name)
	assert.Equal(t, []string{tc.ID}, st.TestGroups["proj-1"][0].TestCaseIDs)

	// A published draft cannot be published again.
	rec = doJSON(t, s, http.MethodPost, "/api/v1/ai/drafts/draft-1/publish", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDiscardDraft(t *testing.T) {
	s, store := newTestServer(t, &fakeProvider{}, "")
	seedProject(t, store, "default", "proj-1")
	seedDraft(t, store, "proj-1", "draft-1", "")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/ai/drafts/draft-1/discard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	st, err := store.GetOrCreate(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, models.DraftStatusDiscarded, st.Drafts["proj-1"][0].Status)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/ai/drafts/missing/discard", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDraftsSeen(t *testing.T) {
	s, store := newTestServer(t, &fakeProvider{}, "")
	seedProject(t, store, "default", "proj-1")
	_, err := store.Mutate(context.Background(), "default", "test", func(st *models.TeamState) error {
		st.Notifications["proj-1"] = models.DraftNotification{HasUnseenDrafts: true}
		return nil
	})
	require.NoError(t, err)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/ai/drafts/seen", `{"projectId": "proj-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	st, err := store.GetOrCreate(context.Background(), "default")
	require.NoError(t, err)
	assert.False(t, st.Notifications["proj-1"].HasUnseenDrafts)
	assert.NotNil(t, st.Notifications["proj-1"].LastSeenAt)
}

func TestStateRoundTrip(t *testing.T) {
	s, _ := newTestServer(t, &fakeProvider{}, "")

	rec := doJSON(t, s, http.MethodPut, "/api/v1/state", `{
		"projects": [{"id": "proj-1", "name": "Demo", "websiteUrl": "https://app.example.com"}],
		"settings": {"browserProvider": "hyperbrowser", "hyperbrowserEnabled": true, "parallelism": 5, "hyperbrowserApiKey": "leak-me"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/state", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var st models.TeamState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	require.Len(t, st.Projects, 1)
	assert.Equal(t, "proj-1", st.Projects[0].ID)
	assert.Equal(t, 5, st.Settings.Parallelism)
	// Keys posted inside settings never come back.
	assert.Empty(t, st.Settings.HyperbrowserAPIKey)
}

func TestPutProviderKeys(t *testing.T) {
	s, store := newTestServer(t, &fakeProvider{}, "")

	rec := doJSON(t, s, http.MethodPut, "/api/v1/settings/keys",
		`{"hyperbrowserApiKey": "hb-key", "browserUseApiKey": "bu-key"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	keys, err := store.GetProviderKeys(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, "hb-key", keys.HyperbrowserAPIKey)
	assert.Equal(t, "bu-key", keys.BrowserUseAPIKey)
}

func seedAccount(t *testing.T, store *memStore, projectID string, account models.UserAccount) {
	t.Helper()
	_, err := store.Mutate(context.Background(), "default", "test", func(st *models.TeamState) error {
		st.Accounts[projectID] = append(st.Accounts[projectID], account)
		return nil
	})
	require.NoError(t, err)
}

func TestAccountLoginStoresProfile(t *testing.T) {
	prov := &fakeProvider{loginRes: &provider.LoginResult{Success: true, ProfileID: "prof-42"}}
	s, store := newTestServer(t, prov, "")
	seedProject(t, store, "default", "proj-1")
	seedAccount(t, store, "proj-1", models.UserAccount{ID: "acc-1", ProjectID: "proj-1", Email: "qa@example.com", Password: "pw"})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/accounts/login", `{
		"projectId": "proj-1",
		"userAccountId": "acc-1",
		"websiteUrl": "https://app.example.com",
		"provider": "hyperbrowser"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AccountLoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "prof-42", resp.ProfileID)

	st, err := store.GetOrCreate(context.Background(), "default")
	require.NoError(t, err)
	p, ok := st.Accounts["proj-1"][0].Profile(models.ProfileSlotHyperbrowser)
	require.True(t, ok)
	assert.Equal(t, "prof-42", p.ProfileID)
}

func TestAccountLoginFailureClearsProfile(t *testing.T) {
	prov := &fakeProvider{loginRes: &provider.LoginResult{Success: false, Error: "bad credentials"}}
	s, store := newTestServer(t, prov, "")
	seedProject(t, store, "default", "proj-1")
	seedAccount(t, store, "proj-1", models.UserAccount{ID: "acc-1", ProjectID: "proj-1", Email: "qa@example.com", Password: "pw"})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/accounts/login", `{
		"projectId": "proj-1",
		"userAccountId": "acc-1",
		"websiteUrl": "https://app.example.com",
		"provider": "hyperbrowser"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AccountLoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "bad credentials", resp.Error)

	st, err := store.GetOrCreate(context.Background(), "default")
	require.NoError(t, err)
	_, ok := st.Accounts["proj-1"][0].Profile(models.ProfileSlotHyperbrowser)
	assert.False(t, ok)
}

func TestDeleteAccountCleansUpProfiles(t *testing.T) {
	prov := &fakeProvider{}
	s, store := newTestServer(t, prov, "")
	seedProject(t, store, "default", "proj-1")
	seedAccount(t, store, "proj-1", models.UserAccount{
		ID: "acc-1", ProjectID: "proj-1", Email: "qa@example.com", Password: "pw",
		Profiles: map[models.ProfileSlot]models.ProviderProfile{
			models.ProfileSlotHyperbrowser: {ProfileID: "prof-7", Status: models.ProfileStatusAuthenticated},
		},
	})

	rec := doJSON(t, s, http.MethodDelete, "/api/v1/accounts/acc-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	st, err := store.GetOrCreate(context.Background(), "default")
	require.NoError(t, err)
	assert.Empty(t, st.Accounts["proj-1"])
	assert.Equal(t, []string{"prof-7"}, prov.deleted)

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/accounts/acc-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAccountClearsTestCaseReferences(t *testing.T) {
	s, store := newTestServer(t, &fakeProvider{}, "")
	seedProject(t, store, "default", "proj-1")
	seedAccount(t, store, "proj-1", models.UserAccount{ID: "acc-1", ProjectID: "proj-1", Email: "qa@example.com", Password: "pw"})
	_, err := store.Mutate(context.Background(), "default", "test", func(st *models.TeamState) error {
		st.TestCases["proj-1"] = []models.TestCase{
			{ID: "tc-1", ProjectID: "proj-1", Title: "Login", UserAccountID: "acc-1"},
			{ID: "tc-2", ProjectID: "proj-1", Title: "Browse", UserAccountID: "acc-other"},
		}
		return nil
	})
	require.NoError(t, err)

	rec := doJSON(t, s, http.MethodDelete, "/api/v1/accounts/acc-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	st, err := store.GetOrCreate(context.Background(), "default")
	require.NoError(t, err)
	assert.Empty(t, st.TestCases["proj-1"][0].UserAccountID, "deleting an account detaches its test cases")
	assert.Equal(t, "acc-other", st.TestCases["proj-1"][1].UserAccountID)
}

func TestHealthHandler(t *testing.T) {
	s, _ := newTestServer(t, &fakeProvider{}, "")

	rec := doJSON(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)

	s.health = func(ctx context.Context) error { return context.DeadlineExceeded }
	rec = doJSON(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAuthorExtraction(t *testing.T) {
	s, _ := newTestServer(t, &fakeProvider{}, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tests/stop", strings.NewReader(`{"runId": "r"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-User", "alice")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	s.limits.mu.Lock()
	defer s.limits.mu.Unlock()
	_, ok := s.limits.buckets["stop|alice"]
	assert.True(t, ok)
}
