// Package genjobs implements the AI generation job queue: enqueue an
// exploration request, claim it via the shared team state, run the browser
// exploration, synthesize candidate test cases with the LLM, and deduplicate
// them into drafts. There is no dedicated daemon — workers are spawned per
// enqueue, and the status endpoint drains opportunistically.
package genjobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/scoutqa/scout/pkg/config"
	"github.com/scoutqa/scout/pkg/llm"
	"github.com/scoutqa/scout/pkg/locks"
	"github.com/scoutqa/scout/pkg/models"
	"github.com/scoutqa/scout/pkg/provider"
	"github.com/scoutqa/scout/pkg/state"
)

// claimProgressMessage is shown while a freshly claimed job explores the app.
const claimProgressMessage = "AI is now checking your app to determine best test cases."

const errNoEligibleAccounts = "No available user accounts were eligible for this provider."

// ErrJobLimit is returned when a project already holds the maximum number of
// retained jobs.
var ErrJobLimit = errors.New("generation job limit reached for this project")

// ErrProjectNotFound is returned when the enqueue target project is unknown.
var ErrProjectNotFound = errors.New("project not found")

// StateStore is the slice of the team state store the queue uses.
type StateStore interface {
	GetOrCreate(ctx context.Context, teamID string) (*models.TeamState, error)
	Mutate(ctx context.Context, teamID, updatedBy string, fn func(*models.TeamState) error) (*models.TeamState, error)
	GetProviderKeys(ctx context.Context, teamID string) (models.ProviderKeys, error)
}

// Service owns the generation pipeline.
type Service struct {
	store     StateStore
	locks     *locks.AccountLocks
	providers provider.Factory
	llm       llm.Client
	cfg       *config.GenConfig
	logger    *slog.Logger

	// now is swapped in tests.
	now func() time.Time
}

// NewService creates the generation service.
func NewService(store StateStore, accountLocks *locks.AccountLocks, providers provider.Factory, llmClient llm.Client, cfg *config.GenConfig) *Service {
	if cfg == nil {
		cfg = config.DefaultGenConfig()
	}
	return &Service{
		store:     store,
		locks:     accountLocks,
		providers: providers,
		llm:       llmClient,
		cfg:       cfg,
		logger:    slog.Default().With("component", "genjobs"),
		now:       time.Now,
	}
}

// EnqueueInput is one generation request.
type EnqueueInput struct {
	TeamID string
	Author string

	ProjectID  string
	Prompt     string
	WebsiteURL string
	Model      string

	GroupName     string
	UserAccountID string

	// Settings overrides the team settings snapshot when non-nil.
	Settings *models.Settings
}

// Enqueue validates the request, appends a queued job to the team state
// (newest first), and spawns a background worker targeting that job.
func (s *Service) Enqueue(ctx context.Context, in EnqueueInput) (*models.GenerationJob, error) {
	switch {
	case in.ProjectID == "":
		return nil, fmt.Errorf("projectId is required")
	case in.Prompt == "":
		return nil, fmt.Errorf("rawText is required")
	case in.WebsiteURL == "":
		return nil, fmt.Errorf("websiteUrl is required")
	case in.Model == "":
		return nil, fmt.Errorf("aiModel is required")
	}

	var job models.GenerationJob
	_, err := s.store.Mutate(ctx, in.TeamID, in.Author, func(st *models.TeamState) error {
		if st.FindProject(in.ProjectID) == nil {
			return ErrProjectNotFound
		}
		jobs := st.Jobs[in.ProjectID]
		if len(jobs) >= models.MaxJobsPerProject {
			// The cap is retention, not throughput: evict the oldest
			// finished job to make room. Only a list full of active jobs
			// rejects the request.
			evict := -1
			for i := len(jobs) - 1; i >= 0; i-- {
				if !jobs[i].Active() {
					evict = i
					break
				}
			}
			if evict < 0 {
				return ErrJobLimit
			}
			jobs = append(jobs[:evict], jobs[evict+1:]...)
		}

		settings := st.Settings
		if in.Settings != nil {
			settings = *in.Settings
		}
		state.SanitizeSettings(&settings)

		job = models.GenerationJob{
			ID:            uuid.NewString(),
			ProjectID:     in.ProjectID,
			Prompt:        in.Prompt,
			WebsiteURL:    in.WebsiteURL,
			GroupName:     in.GroupName,
			UserAccountID: in.UserAccountID,
			Provider:      settings.BrowserProvider,
			Settings:      settings,
			Model:         in.Model,
			Status:        models.JobStatusQueued,
			CreatedAt:     s.now().UTC(),
		}
		st.Jobs[in.ProjectID] = append([]models.GenerationJob{job}, jobs...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.ProcessQueuedJobs(context.WithoutCancel(ctx), in.TeamID, in.Author, job.ID)
	return &job, nil
}

// ProcessQueuedJobs claims and runs jobs. With a target id it processes that
// job only; without one it drains up to the configured limit of claimable
// jobs (queued, or running long enough to be considered abandoned).
func (s *Service) ProcessQueuedJobs(ctx context.Context, teamID, author, targetJobID string) {
	limit := s.cfg.DrainLimit
	if targetJobID != "" {
		limit = 1
	}

	for i := 0; i < limit; i++ {
		job, ok, err := s.claimNextJob(ctx, teamID, author, targetJobID)
		if err != nil {
			s.logger.Error("Failed to claim generation job", "team_id", teamID, "error", err)
			return
		}
		if !ok {
			return
		}
		s.runClaimedJob(ctx, teamID, author, job)
	}
}

// claimNextJob atomically rewrites the most deserving claimable job to
// running. Claimable means queued, or running with a start timestamp older
// than the stale threshold. Among claimable jobs the earliest createdAt wins.
func (s *Service) claimNextJob(ctx context.Context, teamID, author, targetJobID string) (models.GenerationJob, bool, error) {
	var claimed models.GenerationJob
	found := false

	_, err := s.store.Mutate(ctx, teamID, author, func(st *models.TeamState) error {
		now := s.now().UTC()

		type ref struct {
			projectID string
			idx       int
		}
		var best *ref
		var bestCreated time.Time

		for projectID, jobs := range st.Jobs {
			for i := range jobs {
				j := &jobs[i]
				if targetJobID != "" && j.ID != targetJobID {
					continue
				}
				claimable := j.Status == models.JobStatusQueued || j.StaleAfter(s.cfg.StaleJobThreshold, now)
				if !claimable {
					continue
				}
				if best == nil || j.CreatedAt.Before(bestCreated) {
					best = &ref{projectID: projectID, idx: i}
					bestCreated = j.CreatedAt
				}
			}
		}
		if best == nil {
			return nil
		}

		j := &st.Jobs[best.projectID][best.idx]
		j.Status = models.JobStatusRunning
		j.StartedAt = &now
		j.Progress = claimProgressMessage
		j.Error = ""
		claimed = *j
		found = true
		return nil
	})
	return claimed, found, err
}

// runClaimedJob executes one claimed job end to end. Every exit path updates
// the job record and releases any account lock acquired.
func (s *Service) runClaimedJob(ctx context.Context, teamID, author string, job models.GenerationJob) {
	st, err := s.store.GetOrCreate(ctx, teamID)
	if err != nil {
		s.failJob(ctx, teamID, author, job.ID, "failed to load team state: "+err.Error())
		return
	}
	keys, err := s.store.GetProviderKeys(ctx, teamID)
	if err != nil {
		s.failJob(ctx, teamID, author, job.ID, "failed to load provider keys: "+err.Error())
		return
	}

	providerName := job.Provider
	if providerName == "" {
		providerName = st.Settings.BrowserProvider
	}
	prov, err := s.providers(providerName)
	if err != nil {
		s.failJob(ctx, teamID, author, job.ID, err.Error())
		return
	}
	slot := models.ProfileSlotFor(providerName)

	accountID, failMsg := s.waitForAccount(ctx, st, &job, slot)
	if failMsg != "" {
		s.failJob(ctx, teamID, author, job.ID, failMsg)
		return
	}
	if accountID != "" {
		defer s.locks.Release(accountID)
	}

	var creds *provider.Credentials
	if accountID != "" {
		for _, a := range st.ProjectAccounts(job.ProjectID) {
			if a.ID != accountID {
				continue
			}
			creds = &provider.Credentials{Email: a.Email, Password: a.Password, Metadata: a.Metadata}
			if p, ok := a.Profile(slot); ok {
				creds.ProfileID = p.ProfileID
			}
			break
		}
	}

	exec, err := prov.ExecuteTest(ctx, provider.ExecuteInput{
		TargetURL:   job.WebsiteURL,
		Task:        provider.BuildExplorationPrompt(job.Prompt, creds),
		Settings:    job.Settings,
		Keys:        keys,
		Credentials: creds,
	}, provider.Callbacks{
		OnLiveURL: func(live, recording string) {
			s.updateJob(ctx, teamID, author, job.ID, func(j *models.GenerationJob) {
				j.LiveURL = live
				if recording != "" {
					j.RecordingURL = recording
				}
			})
		},
		OnTaskCreated: func(taskID, sessionID string) {
			s.updateJob(ctx, teamID, author, job.ID, func(j *models.GenerationJob) {
				j.Progress = "Exploring your app to map out testable flows."
			})
		},
	})
	switch {
	case err != nil:
		s.failJob(ctx, teamID, author, job.ID, err.Error())
		return
	case exec.Status == provider.StatusError:
		s.failJob(ctx, teamID, author, job.ID, exec.Error)
		return
	case exec.Verdict == nil:
		s.failJob(ctx, teamID, author, job.ID, provider.ErrNoVerdict)
		return
	}

	candidates, err := synthesize(ctx, s.llm, job.Model, job.Prompt, exec.Verdict.Reason, exec.Verdict.ExtractedData)
	if err != nil {
		s.failJob(ctx, teamID, author, job.ID, err.Error())
		return
	}

	if err := s.completeJobWithDrafts(ctx, teamID, author, job, accountID, exec, candidates); err != nil {
		s.logger.Error("Failed to persist generated drafts", "job_id", job.ID, "error", err)
		s.failJob(ctx, teamID, author, job.ID, "failed to persist drafts: "+err.Error())
	}
}

// waitForAccount resolves and acquires the job's account requirement via a
// poll loop. Returns the acquired account id (possibly empty for jobs without
// a requirement) or a failure message.
func (s *Service) waitForAccount(ctx context.Context, st *models.TeamState, job *models.GenerationJob, slot models.ProfileSlot) (string, string) {
	if job.UserAccountID == "" {
		return "", ""
	}

	accounts := st.ProjectAccounts(job.ProjectID)

	if job.UserAccountID != models.AnyAccount {
		exists := false
		for _, a := range accounts {
			if a.ID == job.UserAccountID {
				exists = true
				break
			}
		}
		if !exists {
			return "", "Assigned account '" + job.UserAccountID + "' was not found in shared team state."
		}
		if s.pollAcquire(ctx, []string{job.UserAccountID}, 0) {
			return job.UserAccountID, ""
		}
		return "", "Timed out waiting for the assigned user account to become available."
	}

	if len(accounts) == 0 {
		return "", errNoEligibleAccounts
	}

	// Preferred-then-fallback ordering, with the round-robin start seeded by
	// the job's creation time so concurrent workers spread across accounts.
	var preferred, all []string
	for _, a := range accounts {
		all = append(all, a.ID)
		if _, ok := a.Profile(slot); ok {
			preferred = append(preferred, a.ID)
		}
	}
	sort.Strings(preferred)
	sort.Strings(all)

	seed := int(job.CreatedAt.UnixNano() & 0x7fffffff)
	if id, ok := s.pollAcquireAny(ctx, preferred, all, seed); ok {
		return id, ""
	}
	return "", "Timed out waiting for a user account to become available."
}

// pollAcquire waits for one specific account.
func (s *Service) pollAcquire(ctx context.Context, ids []string, seed int) bool {
	_, ok := s.pollAcquireAny(ctx, nil, ids, seed)
	return ok
}

// pollAcquireAny polls the lock registry until an account is acquired or the
// deadline passes. Each round tries the preferred ring first, then the full
// ring, both offset by the seed. The first attempt is immediate.
func (s *Service) pollAcquireAny(ctx context.Context, preferred, all []string, seed int) (string, bool) {
	deadline := s.now().Add(s.cfg.AccountWaitDeadline)
	ticker := time.NewTicker(s.cfg.AccountWaitInterval)
	defer ticker.Stop()

	tryRing := func(pool []string) (string, bool) {
		for i := range pool {
			id := pool[(seed+i)%len(pool)]
			if s.locks.TryAcquire(id) {
				return id, true
			}
		}
		return "", false
	}

	for {
		if id, ok := tryRing(preferred); ok {
			return id, true
		}
		if id, ok := tryRing(all); ok {
			return id, true
		}
		if s.now().After(deadline) {
			return "", false
		}
		select {
		case <-ctx.Done():
			return "", false
		case <-ticker.C:
		}
	}
}

// completeJobWithDrafts re-reads the team state and atomically appends the
// deduplicated drafts, marks the job completed with counts, and flips the
// unseen-drafts notification when new drafts landed.
func (s *Service) completeJobWithDrafts(ctx context.Context, teamID, author string, job models.GenerationJob, accountID string, exec *provider.ExecuteResult, candidates []Candidate) error {
	_, err := s.store.Mutate(ctx, teamID, author, func(st *models.TeamState) error {
		classes := Deduplicate(candidates, st.TestCases[job.ProjectID], st.Drafts[job.ProjectID])

		now := s.now().UTC()
		draftCount, duplicateCount := 0, 0
		for _, cl := range classes {
			draft := models.TestDraft{
				ID:                uuid.NewString(),
				ProjectID:         job.ProjectID,
				JobID:             job.ID,
				Title:             cl.Candidate.Title,
				Description:       cl.Candidate.Description,
				ExpectedOutcome:   cl.Candidate.ExpectedOutcome,
				UserAccountID:     accountID,
				GroupName:         job.GroupName,
				Status:            cl.Status,
				DuplicateOfTestID: cl.DuplicateOfTestID,
				DuplicateReason:   cl.Reason,
				CreatedAt:         now,
			}
			st.Drafts[job.ProjectID] = append(st.Drafts[job.ProjectID], draft)
			if cl.Status == models.DraftStatusDraft {
				draftCount++
			} else {
				duplicateCount++
			}
		}

		mutateJob(st, job.ID, func(j *models.GenerationJob) {
			j.Status = models.JobStatusCompleted
			j.CompletedAt = &now
			j.Progress = ""
			j.DraftCount = draftCount
			j.DuplicateCount = duplicateCount
			j.LiveURL = ""
			if exec.RecordingURL != "" {
				j.RecordingURL = exec.RecordingURL
			}
		})

		if draftCount > 0 {
			n := st.Notifications[job.ProjectID]
			n.HasUnseenDrafts = true
			st.Notifications[job.ProjectID] = n
		}
		return nil
	})
	return err
}

// failJob rewrites the job to failed with the message; progress and the live
// view are cleared.
func (s *Service) failJob(ctx context.Context, teamID, author, jobID, msg string) {
	s.updateJob(ctx, teamID, author, jobID, func(j *models.GenerationJob) {
		now := s.now().UTC()
		j.Status = models.JobStatusFailed
		j.CompletedAt = &now
		j.Error = msg
		j.Progress = ""
		j.LiveURL = ""
	})
}

func (s *Service) updateJob(ctx context.Context, teamID, author, jobID string, fn func(*models.GenerationJob)) {
	_, err := s.store.Mutate(ctx, teamID, author, func(st *models.TeamState) error {
		mutateJob(st, jobID, fn)
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to update generation job", "job_id", jobID, "error", err)
	}
}

func mutateJob(st *models.TeamState, jobID string, fn func(*models.GenerationJob)) {
	for projectID := range st.Jobs {
		jobs := st.Jobs[projectID]
		for i := range jobs {
			if jobs[i].ID == jobID {
				fn(&jobs[i])
				return
			}
		}
	}
}

// MarkDraftsSeen records that the user has viewed the project's drafts.
func (s *Service) MarkDraftsSeen(ctx context.Context, teamID, author, projectID string) error {
	_, err := s.store.Mutate(ctx, teamID, author, func(st *models.TeamState) error {
		now := s.now().UTC()
		n := st.Notifications[projectID]
		n.HasUnseenDrafts = false
		n.LastSeenAt = &now
		st.Notifications[projectID] = n
		return nil
	})
	return err
}
