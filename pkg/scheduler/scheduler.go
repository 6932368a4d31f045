package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scoutqa/scout/pkg/config"
	"github.com/scoutqa/scout/pkg/llm"
	"github.com/scoutqa/scout/pkg/locks"
	"github.com/scoutqa/scout/pkg/models"
	"github.com/scoutqa/scout/pkg/provider"
)

// errNoEligibleAccounts is reported when an __any__ test can never resolve
// because the project has no accounts at all.
const errNoEligibleAccounts = "No available user accounts were eligible for this provider."

const noSummaryFallback = "No summary available."

// Batch is one execution request: an ordered list of tests plus everything
// needed to run them.
type Batch struct {
	RunID     string
	ProjectID string

	TestCases []models.TestCase
	TargetURL string

	// Parallelism is the concurrency budget P; callers clamp it beforehand.
	Parallelism int

	Model    string
	Settings models.Settings
	Keys     models.ProviderKeys

	// State is a loaded team state snapshot used for account lookup only.
	State *models.TeamState
}

// Scheduler dispatches batches. Safe for concurrent use; each Run call keeps
// its own local state and shares only the account lock registry.
type Scheduler struct {
	locks     *locks.AccountLocks
	providers provider.Factory
	llm       llm.Client
	cfg       *config.SchedulerConfig
	logger    *slog.Logger
}

// New creates a scheduler.
func New(accountLocks *locks.AccountLocks, providers provider.Factory, llmClient llm.Client, cfg *config.SchedulerConfig) *Scheduler {
	if cfg == nil {
		cfg = config.DefaultSchedulerConfig()
	}
	return &Scheduler{
		locks:     accountLocks,
		providers: providers,
		llm:       llmClient,
		cfg:       cfg,
		logger:    slog.Default().With("component", "scheduler"),
	}
}

// run is the per-invocation dispatch state. All fields are guarded by mu
// except the immutable account pools.
type run struct {
	s     *Scheduler
	ctx   context.Context
	batch Batch
	sink  Sink
	prov  provider.Provider
	slot  models.ProfileSlot

	accounts  map[string]models.UserAccount
	allIDs    []string
	preferred []string

	mu           sync.Mutex
	pending      []models.TestCase
	running      int
	results      []models.TestResult
	locked       map[string]struct{}
	preferredIdx int
	fallbackIdx  int
	retryTimer   *time.Timer
	finalized    bool
	startedAt    time.Time
	done         chan struct{}
}

// Run executes the batch and blocks until all_complete has been emitted.
// The returned results are in completion order. Cancel ctx to abort: in-flight
// provider calls stop at their next suspension point, finished results are
// kept, and all_complete is still emitted.
func (s *Scheduler) Run(ctx context.Context, batch Batch, sink Sink) []models.TestResult {
	if batch.Parallelism < 1 {
		batch.Parallelism = 1
	}

	r := &run{
		s:         s,
		ctx:       ctx,
		batch:     batch,
		sink:      sink,
		slot:      models.ProfileSlotFor(batch.Settings.BrowserProvider),
		pending:   append([]models.TestCase(nil), batch.TestCases...),
		locked:    map[string]struct{}{},
		startedAt: time.Now(),
		done:      make(chan struct{}),
	}
	r.buildAccountPools()

	prov, err := s.providers(batch.Settings.BrowserProvider)
	if err != nil {
		// No provider means no test can run; every test gets an error result.
		r.mu.Lock()
		for _, tc := range r.pending {
			r.recordSyntheticErrorLocked(tc, "", err.Error())
		}
		r.pending = nil
		r.finalizeLocked()
		r.mu.Unlock()
		return r.results
	}
	r.prov = prov

	// A cancellation with zero in-flight tasks has no task completion to
	// drive finalize, so watch the signal explicitly.
	go func() {
		select {
		case <-ctx.Done():
			r.trySchedule()
		case <-r.done:
		}
	}()

	r.trySchedule()
	<-r.done
	return r.results
}

func (r *run) buildAccountPools() {
	accounts := r.batch.State.ProjectAccounts(r.batch.ProjectID)
	r.accounts = make(map[string]models.UserAccount, len(accounts))
	for _, a := range accounts {
		r.accounts[a.ID] = a
		r.allIDs = append(r.allIDs, a.ID)
		if _, ok := a.Profile(r.slot); ok {
			r.preferred = append(r.preferred, a.ID)
		}
	}
}

// trySchedule is the dispatch loop. It launches as many eligible pending
// tests as the budget allows, then either finalizes or arms the retry timer.
func (r *run) trySchedule() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.finalized {
		return
	}
	if r.ctx.Err() != nil {
		if r.running == 0 {
			r.finalizeLocked()
		}
		return
	}

	for r.running < r.batch.Parallelism && len(r.pending) > 0 {
		idx, accountID, ok := r.selectEligibleLocked()
		if !ok {
			break
		}

		tc := r.pending[idx]
		r.pending = append(r.pending[:idx], r.pending[idx+1:]...)

		if accountID != "" {
			if _, found := r.accounts[accountID]; !found {
				r.recordSyntheticErrorLocked(tc, accountID, accountNotFound(accountID))
				continue
			}
		}

		if accountID != "" {
			r.locked[accountID] = struct{}{}
		}
		r.running++
		go r.runTask(tc, accountID)
	}

	if r.running == 0 && len(r.pending) > 0 {
		r.purgeImpossibleLocked()
		if len(r.pending) == 0 {
			r.finalizeLocked()
			return
		}
		// Everything left is waiting on a busy account.
		r.retryTimer = time.AfterFunc(r.s.cfg.RetryInterval, r.trySchedule)
		return
	}
	if r.running == 0 && len(r.pending) == 0 {
		r.finalizeLocked()
	}
}

// selectEligibleLocked finds the first pending test runnable right now and,
// when it needs an account, acquires the lock as part of selection. A test
// whose specific account does not exist is deliberately eligible so the
// error is reported promptly.
func (r *run) selectEligibleLocked() (idx int, accountID string, ok bool) {
	for i, tc := range r.pending {
		switch tc.UserAccountID {
		case "":
			return i, "", true
		case models.AnyAccount:
			id, acquired := r.acquireAnyLocked()
			if !acquired {
				continue
			}
			return i, id, true
		default:
			if _, exists := r.accounts[tc.UserAccountID]; !exists {
				return i, tc.UserAccountID, true
			}
			if !r.s.locks.TryAcquire(tc.UserAccountID) {
				continue
			}
			return i, tc.UserAccountID, true
		}
	}
	return 0, "", false
}

// acquireAnyLocked resolves __any__: the preferred pool (accounts holding an
// authenticated profile for the active provider) is tried round-robin first,
// then the full pool with its own cursor.
func (r *run) acquireAnyLocked() (string, bool) {
	for i := range r.preferred {
		id := r.preferred[(r.preferredIdx+i)%len(r.preferred)]
		if r.s.locks.TryAcquire(id) {
			r.preferredIdx = (r.preferredIdx + i + 1) % len(r.preferred)
			return id, true
		}
	}
	for i := range r.allIDs {
		id := r.allIDs[(r.fallbackIdx+i)%len(r.allIDs)]
		if r.s.locks.TryAcquire(id) {
			r.fallbackIdx = (r.fallbackIdx + i + 1) % len(r.allIDs)
			return id, true
		}
	}
	return "", false
}

// purgeImpossibleLocked drops pending tests whose account requirement can
// never be satisfied, each yielding a synthetic error result.
func (r *run) purgeImpossibleLocked() {
	kept := r.pending[:0]
	for _, tc := range r.pending {
		switch {
		case tc.UserAccountID == models.AnyAccount && len(r.allIDs) == 0:
			r.recordSyntheticErrorLocked(tc, "", errNoEligibleAccounts)
		case tc.UserAccountID != "" && tc.UserAccountID != models.AnyAccount && !r.accountExists(tc.UserAccountID):
			r.recordSyntheticErrorLocked(tc, tc.UserAccountID, accountNotFound(tc.UserAccountID))
		default:
			kept = append(kept, tc)
		}
	}
	r.pending = kept
}

func (r *run) accountExists(id string) bool {
	_, ok := r.accounts[id]
	return ok
}

// runTask executes one test in its own goroutine and always re-enters the
// dispatch loop afterwards.
func (r *run) runTask(tc models.TestCase, accountID string) {
	result := r.s.executeTestCase(r.ctx, r.prov, r.batch, tc, accountID, r.slot, r.sink)

	r.mu.Lock()
	r.results = append(r.results, result)
	if accountID != "" {
		r.s.locks.Release(accountID)
		delete(r.locked, accountID)
	}
	r.running--
	r.mu.Unlock()

	r.trySchedule()
}

// recordSyntheticErrorLocked emits test_error and appends an error result
// for a test that never reached the provider.
func (r *run) recordSyntheticErrorLocked(tc models.TestCase, accountID, msg string) {
	now := time.Now().UTC()
	result := models.TestResult{
		ID:            uuid.NewString(),
		TestCaseID:    tc.ID,
		UserAccountID: accountID,
		Status:        models.ResultStatusError,
		StartedAt:     now,
		CompletedAt:   &now,
		Error:         msg,
		Reason:        msg,
	}
	r.results = append(r.results, result)
	r.sink(newEvent(EventTestError, tc.ID, &EventData{Error: msg, Result: &result}))
}

// finalizeLocked releases every lock this run still holds, emits the batch
// summary, and unblocks Run. Never runs twice.
func (r *run) finalizeLocked() {
	if r.finalized {
		return
	}
	r.finalized = true

	if r.retryTimer != nil {
		r.retryTimer.Stop()
	}
	for id := range r.locked {
		r.s.locks.Release(id)
		delete(r.locked, id)
	}

	summary := &RunSummary{
		Total:    len(r.batch.TestCases),
		Duration: time.Since(r.startedAt).Milliseconds(),
	}
	for _, res := range r.results {
		switch res.Status {
		case models.ResultStatusPassed:
			summary.Passed++
		case models.ResultStatusFailed, models.ResultStatusError:
			summary.Failed++
		case models.ResultStatusSkipped:
			summary.Skipped++
		}
	}
	// Tests never dispatched (cancellation) count as skipped.
	summary.Skipped += summary.Total - len(r.results)

	r.sink(Event{Type: EventAllComplete, Timestamp: time.Now().UTC(), Summary: summary})
	close(r.done)
}

// executeTestCase runs one test through the provider and translates the
// outcome into a terminal result, emitting the per-test event sequence.
func (s *Scheduler) executeTestCase(ctx context.Context, prov provider.Provider, batch Batch, tc models.TestCase, accountID string, slot models.ProfileSlot, sink Sink) models.TestResult {
	startData := &EventData{}
	if accountID != "" {
		startData.ResolvedUserAccountID = accountID
	}
	sink(newEvent(EventTestStart, tc.ID, startData))

	started := time.Now().UTC()
	result := models.TestResult{
		ID:            uuid.NewString(),
		TestCaseID:    tc.ID,
		UserAccountID: accountID,
		StartedAt:     started,
	}

	var creds *provider.Credentials
	if accountID != "" {
		for _, a := range batch.State.ProjectAccounts(batch.ProjectID) {
			if a.ID != accountID {
				continue
			}
			creds = &provider.Credentials{
				Email:    a.Email,
				Password: a.Password,
				Metadata: a.Metadata,
			}
			if p, ok := a.Profile(slot); ok {
				creds.ProfileID = p.ProfileID
			}
			break
		}
	}

	in := provider.ExecuteInput{
		TargetURL:       batch.TargetURL,
		Task:            provider.BuildTaskPrompt(tc.Description, tc.ExpectedOutcome, creds),
		ExpectedOutcome: tc.ExpectedOutcome,
		Settings:        batch.Settings,
		Keys:            batch.Keys,
		Credentials:     creds,
	}
	cb := provider.Callbacks{
		OnLiveURL: func(live, recording string) {
			sink(newEvent(EventStreamingURL, tc.ID, &EventData{StreamingURL: live, RecordingURL: recording}))
		},
		OnTaskCreated: func(taskID, sessionID string) {
			sink(newEvent(EventTaskCreated, tc.ID, &EventData{
				TaskID:                taskID,
				SessionID:             sessionID,
				ResolvedUserAccountID: accountID,
			}))
		},
		OnStepProgress: func(current, total int, description string) {
			sink(newEvent(EventStepProgress, tc.ID, &EventData{
				CurrentStep:     current,
				TotalSteps:      total,
				StepDescription: description,
			}))
		},
	}

	exec, err := prov.ExecuteTest(ctx, in, cb)
	completed := time.Now().UTC()
	result.CompletedAt = &completed
	result.DurationMS = completed.Sub(started).Milliseconds()

	switch {
	case err != nil:
		result.Status = models.ResultStatusError
		result.Error = err.Error()
	case exec.Status == provider.StatusError:
		result.Status = models.ResultStatusError
		result.Error = exec.Error
	case exec.Verdict == nil:
		result.Status = models.ResultStatusError
		result.Error = provider.ErrNoVerdict
	case exec.Verdict.Success:
		result.Status = models.ResultStatusPassed
		result.Reason = exec.Verdict.Reason
		result.ExtractedData = exec.Verdict.ExtractedData
	default:
		result.Status = models.ResultStatusFailed
		result.Reason = exec.Verdict.Reason
		result.ExtractedData = exec.Verdict.ExtractedData
	}

	if exec != nil {
		result.LiveURL = exec.LiveURL
		result.RecordingURL = exec.RecordingURL
		if len(exec.RawProviderData) > 0 {
			if result.ExtractedData == nil {
				result.ExtractedData = map[string]any{}
			}
			result.ExtractedData["provider"] = exec.RawProviderData
		}
	}

	if result.Reason == "" {
		result.Reason = llm.SummarizeResult(ctx, s.llm, batch.Model, tc.Title, tc.Description, string(result.Status), result.Error)
	}
	if result.Reason == "" {
		if result.Error != "" {
			result.Reason = result.Error
		} else {
			result.Reason = noSummaryFallback
		}
	}

	if result.Status == models.ResultStatusError {
		sink(newEvent(EventTestError, tc.ID, &EventData{Error: result.Error, Result: &result}))
	} else {
		sink(newEvent(EventTestComplete, tc.ID, &EventData{Result: &result}))
	}
	return result
}

func accountNotFound(id string) string {
	return "Assigned account '" + id + "' was not found in shared team state."
}
