package provider

import (
	"context"
	"encoding/json"
	"strings"
)

// ErrNoVerdict is the message used when no verdict could be recovered from
// the agent output, even after re-verification.
const ErrNoVerdict = "Browser provider returned no verdict."

const verifyPrompt = "Based on everything you just did, answer with ONLY a JSON object " +
	`of shape { "success": true/false, "reason": "...", "extractedData": {} } ` +
	"describing whether the task succeeded and why."

// ExtractVerdict recovers the structured verdict from the agent's free-text
// output. Agents wrap the JSON in prose or code fences more often than not,
// so every brace-delimited candidate is tried until one carries a boolean
// "success" key.
func ExtractVerdict(text string) (*Verdict, bool) {
	text = stripCodeFences(text)

	for start := strings.IndexByte(text, '{'); start >= 0; {
		candidate, end := balancedObject(text[start:])
		if candidate == "" {
			// Unbalanced from here on; no further object can close.
			break
		}
		if v, ok := decodeVerdict(candidate); ok {
			return v, true
		}
		next := strings.IndexByte(text[start+end:], '{')
		if next < 0 {
			break
		}
		start += end + next
	}
	return nil, false
}

// ResolveVerdict parses the raw output and, when that fails, runs one
// targeted verification round through rerun before giving up.
func ResolveVerdict(ctx context.Context, raw string, rerun func(ctx context.Context, prompt string) (string, error)) (*Verdict, bool) {
	if v, ok := ExtractVerdict(raw); ok {
		return v, true
	}
	if rerun == nil {
		return nil, false
	}

	reply, err := rerun(ctx, verifyPrompt)
	if err != nil {
		return nil, false
	}
	return ExtractVerdict(reply)
}

func decodeVerdict(candidate string) (*Verdict, bool) {
	var probe struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal([]byte(candidate), &probe); err != nil || probe.Success == nil {
		return nil, false
	}

	var v Verdict
	if err := json.Unmarshal([]byte(candidate), &v); err != nil {
		return nil, false
	}
	return &v, true
}

// balancedObject returns the shortest brace-balanced prefix of s (which must
// start with '{') and the index just past it. String literals are skipped so
// braces inside values do not confuse the count.
func balancedObject(s string) (string, int) {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
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
				return s[:i+1], i + 1
			}
		}
	}
	return "", 0
}

// stripCodeFences removes markdown ``` fences (with or without a language
// tag) so fenced JSON parses like bare JSON.
func stripCodeFences(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
