package provider

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultExpectedOutcome is used when a test case does not state one.
const DefaultExpectedOutcome = "The described steps complete without errors."

const verdictInstruction = `Return ONLY a JSON object of shape
{ "success": true/false, "reason": "...", "extractedData": {} }`

// BuildTaskPrompt composes the natural-language task sent to the browser
// agent for a single test case. Credentials may be nil for tests that run
// unauthenticated.
func BuildTaskPrompt(description, expectedOutcome string, creds *Credentials) string {
	var b strings.Builder

	b.WriteString("IMPORTANT: If at any point you see an error screen, stop and fail the test.\n\n")

	if creds != nil {
		if creds.ProfileID != "" {
			b.WriteString("IMPORTANT: Reuse the existing authenticated profile/session.\n")
			b.WriteString("Only log in manually if the app clearly shows you are signed out.\n")
			b.WriteString("Fallback credentials (use only if login is required):\n")
		} else {
			b.WriteString("IMPORTANT: Log in before the test using:\n")
		}
		fmt.Fprintf(&b, "- Email: %s\n", creds.Email)
		fmt.Fprintf(&b, "- Password: %s\n", creds.Password)
		if len(creds.Metadata) > 0 {
			fmt.Fprintf(&b, "- Account info: %s\n", formatMetadata(creds.Metadata))
		}
		b.WriteString("\nAfter confirming authentication, proceed with:\n\n")
	}

	b.WriteString(description)
	b.WriteString("\n\n")

	if expectedOutcome == "" {
		expectedOutcome = DefaultExpectedOutcome
	}
	fmt.Fprintf(&b, "Expected outcome: %s\n\n", expectedOutcome)

	b.WriteString(verdictInstruction)
	return b.String()
}

// BuildExplorationPrompt composes the task for an AI generation exploration
// session. Unlike a test there is no expected outcome; the agent surveys the
// application and reports what it found under extractedData.
func BuildExplorationPrompt(instructions string, creds *Credentials) string {
	var b strings.Builder

	b.WriteString("IMPORTANT: If at any point you see an error screen, stop and fail the test.\n\n")

	if creds != nil {
		if creds.ProfileID != "" {
			b.WriteString("IMPORTANT: Reuse the existing authenticated profile/session.\n")
			b.WriteString("Only log in manually if the app clearly shows you are signed out.\n")
			b.WriteString("Fallback credentials (use only if login is required):\n")
		} else {
			b.WriteString("IMPORTANT: Log in before the exploration using:\n")
		}
		fmt.Fprintf(&b, "- Email: %s\n", creds.Email)
		fmt.Fprintf(&b, "- Password: %s\n", creds.Password)
		if len(creds.Metadata) > 0 {
			fmt.Fprintf(&b, "- Account info: %s\n", formatMetadata(creds.Metadata))
		}
		b.WriteString("\nAfter confirming authentication, proceed with:\n\n")
	}

	b.WriteString("Explore this application to understand what it does and how users interact with it.\n")
	if instructions != "" {
		fmt.Fprintf(&b, "Focus on: %s\n", instructions)
	}
	b.WriteString(`
Cover in your exploration:
- The main happy paths a real user would take
- Form validation and error states
- Edge cases (empty inputs, boundary values, repeated actions)
- Data integrity (created data appears where expected, updates persist)

Record every distinct flow you exercised and what you observed under
"extractedData", as a structured report the reader can turn into test cases.

`)
	b.WriteString(verdictInstruction)
	return b.String()
}

// BuildLoginPrompt composes the task used when authenticating a persistent
// profile so later test runs can reuse the session.
func BuildLoginPrompt(creds Credentials) string {
	var b strings.Builder
	b.WriteString("Log in to the application using:\n")
	fmt.Fprintf(&b, "- Email: %s\n", creds.Email)
	fmt.Fprintf(&b, "- Password: %s\n", creds.Password)
	if len(creds.Metadata) > 0 {
		fmt.Fprintf(&b, "- Account info: %s\n", formatMetadata(creds.Metadata))
	}
	b.WriteString(`
Confirm you are signed in by checking for account-specific UI (profile menu,
dashboard, sign-out option). Do nothing else once authenticated.

`)
	b.WriteString(verdictInstruction)
	return b.String()
}

// formatMetadata renders "k=v, k=v" in a stable order.
func formatMetadata(md map[string]string) string {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+md[k])
	}
	return strings.Join(parts, ", ")
}
