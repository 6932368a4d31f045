package genjobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutqa/scout/pkg/models"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "user logs in", normalize("  User   logs-in!  "))
	assert.Equal(t, "reset password sends e mail", normalize("Reset_password sends e-mail"))
	assert.Equal(t, "", normalize("!!! ---"))
}

func TestSignature(t *testing.T) {
	a := signature("Login works", "User logs in", "Home page")
	b := signature("login WORKS!", "User logs in.", "Home page")
	assert.Equal(t, a, b)
	assert.Equal(t, "login works|user logs in|home page", a)
}

func TestJaccard(t *testing.T) {
	a := tokenSet("login works", "user logs in", "home page")
	assert.InDelta(t, 1.0, jaccard(a, a), 1e-9)
	assert.Zero(t, jaccard(a, tokenSet("", "", "")))

	b := tokenSet("login works", "user signs in", "home page")
	score := jaccard(a, b)
	assert.Greater(t, score, 0.5)
	assert.Less(t, score, 1.0)
}

func TestDeduplicateExactMatch(t *testing.T) {
	existing := []models.TestCase{{
		ID: "tc-1", Title: "Login works", Description: "User logs in", ExpectedOutcome: "Home page",
	}}

	out := Deduplicate([]Candidate{
		{Title: "Login works", Description: "User logs in", ExpectedOutcome: "Home page"},
	}, existing, nil)

	require.Len(t, out, 1)
	assert.Equal(t, models.DraftStatusDuplicateSkipped, out[0].Status)
	assert.Equal(t, "tc-1", out[0].DuplicateOfTestID)
	assert.Equal(t, "Exact duplicate of an existing or already-generated test.", out[0].Reason)
}

func TestDeduplicateNearDuplicate(t *testing.T) {
	existing := []models.TestCase{{
		ID:              "tc-1",
		Title:           "Login works correctly",
		Description:     "User enters email and password then clicks the login button",
		ExpectedOutcome: "The home dashboard page loads",
	}}

	// One token differs out of many: Jaccard well above 0.88.
	out := Deduplicate([]Candidate{{
		Title:           "Login works correctly",
		Description:     "User enters email and password then presses the login button",
		ExpectedOutcome: "The home dashboard page loads",
	}}, existing, nil)

	require.Len(t, out, 1)
	assert.Equal(t, models.DraftStatusDuplicateSkipped, out[0].Status)
	assert.Equal(t, "tc-1", out[0].DuplicateOfTestID)
	assert.Contains(t, out[0].Reason, "Near-duplicate of existing coverage (")
	assert.Contains(t, out[0].Reason, "% similarity).")
}

func TestDeduplicateOverlapAcceptedWithWarning(t *testing.T) {
	existing := []models.TestCase{{
		ID:              "tc-1",
		Title:           "Login works",
		Description:     "User enters valid credentials and logs in from the home screen",
		ExpectedOutcome: "Dashboard page is shown",
	}}

	out := Deduplicate([]Candidate{{
		Title:           "Logging in works",
		Description:     "User enters valid credentials and logs in from the welcome screen",
		ExpectedOutcome: "Dashboard page is shown",
	}}, existing, nil)

	require.Len(t, out, 1)
	assert.Equal(t, models.DraftStatusDraft, out[0].Status)
	assert.Equal(t, "tc-1", out[0].DuplicateOfTestID)
	assert.Contains(t, out[0].Reason, "Potential overlap detected (")
}

func TestDeduplicateUnrelatedCandidate(t *testing.T) {
	existing := []models.TestCase{{
		ID: "tc-1", Title: "Login works", Description: "User logs in", ExpectedOutcome: "Home page",
	}}

	out := Deduplicate([]Candidate{{
		Title:           "Reset password sends email",
		Description:     "Request a password reset from the forgot password form",
		ExpectedOutcome: "A reset email arrives",
	}}, existing, nil)

	require.Len(t, out, 1)
	assert.Equal(t, models.DraftStatusDraft, out[0].Status)
	assert.Empty(t, out[0].DuplicateOfTestID)
	assert.Empty(t, out[0].Reason)
}

func TestDeduplicateAgainstPendingDrafts(t *testing.T) {
	drafts := []models.TestDraft{
		{ID: "d-1", Title: "Login works", Description: "User logs in", ExpectedOutcome: "Home page", Status: models.DraftStatusDraft},
		{ID: "d-2", Title: "Old idea", Description: "Discarded", ExpectedOutcome: "n/a", Status: models.DraftStatusDiscarded},
	}

	out := Deduplicate([]Candidate{
		{Title: "Login works", Description: "User logs in", ExpectedOutcome: "Home page"},
		{Title: "Old idea", Description: "Discarded", ExpectedOutcome: "n/a"},
	}, nil, drafts)

	require.Len(t, out, 2)
	// Pending draft blocks the exact regeneration.
	assert.Equal(t, models.DraftStatusDuplicateSkipped, out[0].Status)
	assert.Equal(t, "d-1", out[0].DuplicateOfTestID)
	// A discarded draft does not.
	assert.Equal(t, models.DraftStatusDraft, out[1].Status)
}

func TestDeduplicateWithinBatch(t *testing.T) {
	out := Deduplicate([]Candidate{
		{Title: "Checkout flow", Description: "Buy an item", ExpectedOutcome: "Order confirmed"},
		{Title: "Checkout flow", Description: "Buy an item", ExpectedOutcome: "Order confirmed"},
	}, nil, nil)

	require.Len(t, out, 2)
	assert.Equal(t, models.DraftStatusDraft, out[0].Status)
	assert.Equal(t, models.DraftStatusDuplicateSkipped, out[1].Status)
	assert.Equal(t, "Exact duplicate of an existing or already-generated test.", out[1].Reason)
}
