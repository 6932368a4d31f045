package genjobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/scoutqa/scout/pkg/llm"
)

// Candidate count bounds enforced on the synthesis response.
const (
	minCandidates = 1
	maxCandidates = 10
)

const synthesisSystem = "You are a senior QA engineer turning an exploration report into " +
	"concrete browser test cases. Respond with JSON only."

// synthesize turns the exploration outcome into candidate test cases via the
// LLM.
func synthesize(ctx context.Context, client llm.Client, model, userPrompt, reason string, extracted map[string]any) ([]Candidate, error) {
	if client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	var report strings.Builder
	fmt.Fprintf(&report, "The user asked for tests covering:\n%s\n\n", userPrompt)
	fmt.Fprintf(&report, "An automated browser agent explored the application and reported:\n%s\n", reason)
	if len(extracted) > 0 {
		data, err := json.MarshalIndent(extracted, "", "  ")
		if err == nil {
			fmt.Fprintf(&report, "\nStructured exploration data:\n%s\n", data)
		}
	}
	report.WriteString(`
Write between 1 and 10 test cases grounded in what the agent actually saw.
Each test case needs a short title, a step-by-step description an automated
browser agent can follow, and a single observable expected outcome.

Return ONLY a JSON object of shape
{ "testCases": [ { "title": "...", "description": "...", "expectedOutcome": "..." } ] }`)

	text, err := client.Complete(ctx, model, synthesisSystem, report.String())
	if err != nil {
		return nil, fmt.Errorf("synthesis call failed: %w", err)
	}
	return parseCandidates(text)
}

// parseCandidates extracts and validates the synthesis JSON from the model's
// free text.
func parseCandidates(text string) ([]Candidate, error) {
	obj, ok := firstJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("synthesis response contained no JSON object")
	}

	var payload struct {
		TestCases []Candidate `json:"testCases"`
	}
	if err := json.Unmarshal([]byte(obj), &payload); err != nil {
		return nil, fmt.Errorf("invalid synthesis JSON: %w", err)
	}

	if len(payload.TestCases) < minCandidates || len(payload.TestCases) > maxCandidates {
		return nil, fmt.Errorf("synthesis produced %d test cases, want %d to %d", len(payload.TestCases), minCandidates, maxCandidates)
	}
	for i, c := range payload.TestCases {
		if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Description) == "" {
			return nil, fmt.Errorf("synthesis test case %d is missing a title or description", i+1)
		}
	}
	return payload.TestCases, nil
}

// firstJSONObject returns the first brace-balanced object in the text,
// stripping markdown code fences beforehand. Braces inside string literals
// do not affect the balance count.
func firstJSONObject(text string) (string, bool) {
	var clean strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		clean.WriteString(line)
		clean.WriteByte('\n')
	}
	s := clean.String()

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth, inString, escaped := 0, false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
