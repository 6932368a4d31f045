package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutqa/scout/pkg/config"
	"github.com/scoutqa/scout/pkg/locks"
	"github.com/scoutqa/scout/pkg/models"
	"github.com/scoutqa/scout/pkg/provider"
)

// fakeProvider scripts ExecuteTest outcomes and records invocations.
type fakeProvider struct {
	mu    sync.Mutex
	calls []fakeCall

	delay   time.Duration
	verdict func(in provider.ExecuteInput) *provider.Verdict
	execErr error
}

type fakeCall struct {
	task      string
	profileID string
	email     string
}

func (f *fakeProvider) ExecuteTest(ctx context.Context, in provider.ExecuteInput, cb provider.Callbacks) (*provider.ExecuteResult, error) {
	call := fakeCall{task: in.Task}
	if in.Credentials != nil {
		call.profileID = in.Credentials.ProfileID
		call.email = in.Credentials.Email
	}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if cb.OnTaskCreated != nil {
		cb.OnTaskCreated("task-x", "sess-x")
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.execErr != nil {
		return nil, f.execErr
	}

	v := &provider.Verdict{Success: true, Reason: "ok"}
	if f.verdict != nil {
		v = f.verdict(in)
	}
	res := &provider.ExecuteResult{Verdict: v}
	if v.Success {
		res.Status = provider.StatusCompleted
	} else {
		res.Status = provider.StatusFailed
	}
	return res, nil
}

func (f *fakeProvider) LoginWithProfile(ctx context.Context, in provider.LoginInput) (*provider.LoginResult, error) {
	return &provider.LoginResult{Success: true, ProfileID: "prof-fake"}, nil
}

func (f *fakeProvider) DeleteProfile(ctx context.Context, profileID string, keys models.ProviderKeys) error {
	return nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// recorder collects emitted events safely.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) sink(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *recorder) byType(t EventType) []Event {
	var out []Event
	for _, e := range r.all() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func testScheduler(fake *fakeProvider, reg *locks.AccountLocks) *Scheduler {
	cfg := &config.SchedulerConfig{RetryInterval: 10 * time.Millisecond}
	factory := func(models.BrowserProvider) (provider.Provider, error) { return fake, nil }
	return New(reg, factory, nil, cfg)
}

func stateWithAccounts(projectID string, accounts ...models.UserAccount) *models.TeamState {
	st := models.NewTeamState()
	st.Projects = []models.Project{{ID: projectID, Name: "Demo"}}
	st.Accounts[projectID] = accounts
	return st
}

func batchOf(st *models.TeamState, parallelism int, tcs ...models.TestCase) Batch {
	return Batch{
		RunID:       "run-1",
		ProjectID:   "proj-1",
		TestCases:   tcs,
		TargetURL:   "https://app.example",
		Parallelism: parallelism,
		Settings:    st.Settings,
		State:       st,
	}
}

func TestRunSingleHappyPath(t *testing.T) {
	fake := &fakeProvider{}
	rec := &recorder{}
	s := testScheduler(fake, locks.NewAccountLocks())

	st := stateWithAccounts("proj-1")
	results := s.Run(context.Background(), batchOf(st, 1, models.TestCase{ID: "tc-1", Title: "T", Description: "do it"}), rec.sink)

	require.Len(t, results, 1)
	assert.Equal(t, models.ResultStatusPassed, results[0].Status)
	assert.Equal(t, "ok", results[0].Reason)

	events := rec.all()
	require.NotEmpty(t, events)
	assert.Equal(t, EventTestStart, events[0].Type)
	assert.Equal(t, EventAllComplete, events[len(events)-1].Type)

	completes := rec.byType(EventTestComplete)
	require.Len(t, completes, 1)

	alls := rec.byType(EventAllComplete)
	require.Len(t, alls, 1)
	sum := alls[0].Summary
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 1, sum.Passed)
	assert.Equal(t, 0, sum.Failed)
	assert.Equal(t, 0, sum.Skipped)
}

func TestRunAnyAccountAndUnboundInParallel(t *testing.T) {
	fake := &fakeProvider{delay: 20 * time.Millisecond}
	rec := &recorder{}
	reg := locks.NewAccountLocks()
	s := testScheduler(fake, reg)

	st := stateWithAccounts("proj-1", models.UserAccount{ID: "acc-1", ProjectID: "proj-1", Email: "a@x"})
	results := s.Run(context.Background(), batchOf(st, 2,
		models.TestCase{ID: "tc-1", UserAccountID: models.AnyAccount},
		models.TestCase{ID: "tc-2"},
	), rec.sink)

	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, models.ResultStatusPassed, res.Status)
	}
	assert.False(t, reg.InUse("acc-1"), "account released after the batch")
}

func TestRunAccountContentionSerializes(t *testing.T) {
	fake := &fakeProvider{delay: 30 * time.Millisecond}
	rec := &recorder{}
	reg := locks.NewAccountLocks()
	s := testScheduler(fake, reg)

	st := stateWithAccounts("proj-1", models.UserAccount{ID: "acc-1", ProjectID: "proj-1"})
	start := time.Now()
	results := s.Run(context.Background(), batchOf(st, 2,
		models.TestCase{ID: "tc-1", UserAccountID: models.AnyAccount},
		models.TestCase{ID: "tc-2", UserAccountID: models.AnyAccount},
	), rec.sink)
	elapsed := time.Since(start)

	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, models.ResultStatusPassed, res.Status)
		assert.Equal(t, "acc-1", res.UserAccountID)
	}
	// With one account the two executions cannot overlap.
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
	assert.False(t, reg.InUse("acc-1"))
}

func TestRunMissingSpecificAccount(t *testing.T) {
	fake := &fakeProvider{}
	rec := &recorder{}
	s := testScheduler(fake, locks.NewAccountLocks())

	st := stateWithAccounts("proj-1")
	results := s.Run(context.Background(), batchOf(st, 1,
		models.TestCase{ID: "tc-1", UserAccountID: "missing"},
	), rec.sink)

	require.Len(t, results, 1)
	assert.Equal(t, models.ResultStatusError, results[0].Status)
	assert.Equal(t, "Assigned account 'missing' was not found in shared team state.", results[0].Error)
	assert.Zero(t, fake.callCount(), "provider must not be called")

	errs := rec.byType(EventTestError)
	require.Len(t, errs, 1)

	sum := rec.byType(EventAllComplete)[0].Summary
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 0, sum.Skipped)
}

func TestRunAnyAccountWithNoAccounts(t *testing.T) {
	fake := &fakeProvider{}
	rec := &recorder{}
	s := testScheduler(fake, locks.NewAccountLocks())

	st := stateWithAccounts("proj-1")
	results := s.Run(context.Background(), batchOf(st, 1,
		models.TestCase{ID: "tc-1", UserAccountID: models.AnyAccount},
	), rec.sink)

	require.Len(t, results, 1)
	assert.Equal(t, models.ResultStatusError, results[0].Status)
	assert.Equal(t, "No available user accounts were eligible for this provider.", results[0].Error)
	assert.Zero(t, fake.callCount())
}

func TestRunStopMidBatch(t *testing.T) {
	fake := &fakeProvider{delay: 25 * time.Millisecond}
	rec := &recorder{}
	reg := locks.NewAccountLocks()
	s := testScheduler(fake, reg)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(60*time.Millisecond, cancel)

	st := stateWithAccounts("proj-1")
	results := s.Run(ctx, batchOf(st, 1,
		models.TestCase{ID: "tc-1"},
		models.TestCase{ID: "tc-2"},
		models.TestCase{ID: "tc-3"},
	), rec.sink)

	// The first two finish before the cancel lands; the third never starts.
	assert.GreaterOrEqual(t, len(results), 1)
	assert.LessOrEqual(t, len(results), 3)
	for _, res := range results {
		if res.Status == models.ResultStatusPassed {
			continue
		}
		assert.Equal(t, models.ResultStatusError, res.Status)
	}

	alls := rec.byType(EventAllComplete)
	require.Len(t, alls, 1, "all_complete emitted even on cancellation")
	sum := alls[0].Summary
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 3, sum.Passed+sum.Failed+sum.Skipped)
}

// Round-robin fairness: with two preferred accounts and no contention, four
// __any__ tests alternate between them.
func TestRunRoundRobinPreferredAccounts(t *testing.T) {
	fake := &fakeProvider{}
	rec := &recorder{}
	reg := locks.NewAccountLocks()
	s := testScheduler(fake, reg)

	profile := map[models.ProfileSlot]models.ProviderProfile{
		models.ProfileSlotBrowserUseCloud: {ProfileID: "p", Status: models.ProfileStatusAuthenticated, UpdatedAt: time.Now()},
	}
	st := stateWithAccounts("proj-1",
		models.UserAccount{ID: "acc-1", ProjectID: "proj-1", Profiles: profile},
		models.UserAccount{ID: "acc-2", ProjectID: "proj-1", Profiles: profile},
		models.UserAccount{ID: "acc-3", ProjectID: "proj-1"},
	)

	// Parallelism 1 so selections are strictly sequential.
	results := s.Run(context.Background(), batchOf(st, 1,
		models.TestCase{ID: "tc-1", UserAccountID: models.AnyAccount},
		models.TestCase{ID: "tc-2", UserAccountID: models.AnyAccount},
		models.TestCase{ID: "tc-3", UserAccountID: models.AnyAccount},
		models.TestCase{ID: "tc-4", UserAccountID: models.AnyAccount},
	), rec.sink)

	require.Len(t, results, 4)
	counts := map[string]int{}
	for _, res := range results {
		counts[res.UserAccountID]++
	}
	// Preferred accounts only, two selections each.
	assert.Equal(t, map[string]int{"acc-1": 2, "acc-2": 2}, counts)
}

func TestRunEventOrderPerTestCase(t *testing.T) {
	fake := &fakeProvider{delay: 5 * time.Millisecond}
	rec := &recorder{}
	s := testScheduler(fake, locks.NewAccountLocks())

	st := stateWithAccounts("proj-1")
	s.Run(context.Background(), batchOf(st, 3,
		models.TestCase{ID: "tc-1"},
		models.TestCase{ID: "tc-2"},
		models.TestCase{ID: "tc-3"},
	), rec.sink)

	events := rec.all()
	assert.Equal(t, EventAllComplete, events[len(events)-1].Type)

	perCase := map[string][]EventType{}
	for _, e := range events {
		if e.TestCaseID != "" {
			perCase[e.TestCaseID] = append(perCase[e.TestCaseID], e.Type)
		}
	}
	for id, seq := range perCase {
		require.NotEmpty(t, seq, id)
		assert.Equal(t, EventTestStart, seq[0], "test_start first for %s", id)
		terminal := 0
		for _, et := range seq {
			if et == EventTestComplete || et == EventTestError {
				terminal++
			}
		}
		assert.Equal(t, 1, terminal, "exactly one terminal event for %s", id)
		assert.Contains(t, []EventType{EventTestComplete, EventTestError}, seq[len(seq)-1])
	}
}

func TestRunFailedVerdictsKeepBatchGoing(t *testing.T) {
	fake := &fakeProvider{verdict: func(in provider.ExecuteInput) *provider.Verdict {
		return &provider.Verdict{Success: false, Reason: "button missing"}
	}}
	rec := &recorder{}
	s := testScheduler(fake, locks.NewAccountLocks())

	st := stateWithAccounts("proj-1")
	results := s.Run(context.Background(), batchOf(st, 1,
		models.TestCase{ID: "tc-1"},
		models.TestCase{ID: "tc-2"},
	), rec.sink)

	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, models.ResultStatusFailed, res.Status)
		assert.Equal(t, "button missing", res.Reason)
	}
	sum := rec.byType(EventAllComplete)[0].Summary
	assert.Equal(t, 2, sum.Failed)
}

func TestRunReusableProfileForwardedToProvider(t *testing.T) {
	fake := &fakeProvider{}
	rec := &recorder{}
	s := testScheduler(fake, locks.NewAccountLocks())

	st := stateWithAccounts("proj-1", models.UserAccount{
		ID:        "acc-1",
		ProjectID: "proj-1",
		Email:     "qa@example.com",
		Password:  "pw",
		Profiles: map[models.ProfileSlot]models.ProviderProfile{
			models.ProfileSlotBrowserUseCloud: {ProfileID: "prof-9", Status: models.ProfileStatusAuthenticated},
		},
	})

	s.Run(context.Background(), batchOf(st, 1,
		models.TestCase{ID: "tc-1", UserAccountID: "acc-1", Description: "check dashboard"},
	), rec.sink)

	require.Equal(t, 1, fake.callCount())
	fake.mu.Lock()
	call := fake.calls[0]
	fake.mu.Unlock()
	assert.Equal(t, "prof-9", call.profileID)
	assert.Equal(t, "qa@example.com", call.email)
	assert.Contains(t, call.task, "Reuse the existing authenticated profile/session.")
}

// Guaranteed release: even when the provider errors out, no account lock
// survives the batch.
func TestRunReleasesLocksOnProviderFailure(t *testing.T) {
	fake := &fakeProvider{execErr: context.DeadlineExceeded}
	rec := &recorder{}
	reg := locks.NewAccountLocks()
	s := testScheduler(fake, reg)

	st := stateWithAccounts("proj-1", models.UserAccount{ID: "acc-1", ProjectID: "proj-1"})
	results := s.Run(context.Background(), batchOf(st, 2,
		models.TestCase{ID: "tc-1", UserAccountID: "acc-1"},
		models.TestCase{ID: "tc-2", UserAccountID: models.AnyAccount},
	), rec.sink)

	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, models.ResultStatusError, res.Status)
	}
	assert.False(t, reg.InUse("acc-1"))
}
