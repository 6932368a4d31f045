package genjobs

import (
	"fmt"
	"math"
	"strings"

	"github.com/scoutqa/scout/pkg/models"
)

// Jaccard thresholds for draft classification.
const (
	duplicateThreshold = 0.88
	overlapThreshold   = 0.72
)

const exactDuplicateReason = "Exact duplicate of an existing or already-generated test."

// Candidate is one synthesized test case before deduplication.
type Candidate struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ExpectedOutcome string `json:"expectedOutcome"`
}

// Classification is the dedup outcome for one candidate.
type Classification struct {
	Candidate Candidate

	Status models.DraftStatus

	// DuplicateOfTestID and Reason reference the best-matching existing test
	// for duplicate_skipped results and overlap warnings.
	DuplicateOfTestID string
	Reason            string
}

// existingEntry is one piece of existing coverage to compare against.
type existingEntry struct {
	ID              string
	Title           string
	Description     string
	ExpectedOutcome string
}

// Deduplicate classifies candidates against published tests and pending
// drafts. Exact signature matches are skipped outright; high token overlap
// (Jaccard >= 0.88) is skipped with the match referenced; moderate overlap
// (>= 0.72) is accepted with a warning; anything else is a clean draft.
// Candidates also dedupe against each other within the batch via the
// accepted-signatures set.
func Deduplicate(candidates []Candidate, existingTests []models.TestCase, existingDrafts []models.TestDraft) []Classification {
	signatures := map[string]string{}
	tokenSets := map[string]map[string]struct{}{}
	var order []existingEntry

	for _, tc := range existingTests {
		e := existingEntry{ID: tc.ID, Title: tc.Title, Description: tc.Description, ExpectedOutcome: tc.ExpectedOutcome}
		signatures[signature(e.Title, e.Description, e.ExpectedOutcome)] = e.ID
		tokenSets[e.ID] = tokenSet(e.Title, e.Description, e.ExpectedOutcome)
		order = append(order, e)
	}
	// Pending drafts block exact re-generation but do not participate in
	// similarity scoring.
	for _, d := range existingDrafts {
		if d.Status != models.DraftStatusDraft {
			continue
		}
		sig := signature(d.Title, d.Description, d.ExpectedOutcome)
		if _, ok := signatures[sig]; !ok {
			signatures[sig] = d.ID
		}
	}

	accepted := map[string]struct{}{}
	out := make([]Classification, 0, len(candidates))

	for _, c := range candidates {
		sig := signature(c.Title, c.Description, c.ExpectedOutcome)

		if id, ok := signatures[sig]; ok {
			out = append(out, Classification{
				Candidate:         c,
				Status:            models.DraftStatusDuplicateSkipped,
				DuplicateOfTestID: id,
				Reason:            exactDuplicateReason,
			})
			continue
		}
		if _, ok := accepted[sig]; ok {
			out = append(out, Classification{
				Candidate: c,
				Status:    models.DraftStatusDuplicateSkipped,
				Reason:    exactDuplicateReason,
			})
			continue
		}

		candTokens := tokenSet(c.Title, c.Description, c.ExpectedOutcome)
		bestID, bestScore := "", 0.0
		for _, e := range order {
			score := jaccard(candTokens, tokenSets[e.ID])
			if score > bestScore {
				bestID, bestScore = e.ID, score
			}
		}

		switch {
		case bestScore >= duplicateThreshold:
			out = append(out, Classification{
				Candidate:         c,
				Status:            models.DraftStatusDuplicateSkipped,
				DuplicateOfTestID: bestID,
				Reason:            fmt.Sprintf("Near-duplicate of existing coverage (%d%% similarity).", percent(bestScore)),
			})
		case bestScore >= overlapThreshold:
			accepted[sig] = struct{}{}
			out = append(out, Classification{
				Candidate:         c,
				Status:            models.DraftStatusDraft,
				DuplicateOfTestID: bestID,
				Reason:            fmt.Sprintf("Potential overlap detected (%d%% similarity).", percent(bestScore)),
			})
		default:
			accepted[sig] = struct{}{}
			out = append(out, Classification{Candidate: c, Status: models.DraftStatusDraft})
		}
	}
	return out
}

// normalize lowercases, maps every non-alphanumeric rune to a space, and
// collapses runs of whitespace.
func normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func signature(title, description, expectedOutcome string) string {
	return normalize(title) + "|" + normalize(description) + "|" + normalize(expectedOutcome)
}

func tokenSet(title, description, expectedOutcome string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, tok := range strings.Fields(normalize(title + " " + description + " " + expectedOutcome)) {
		set[tok] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func percent(score float64) int {
	return int(math.Round(score * 100))
}
