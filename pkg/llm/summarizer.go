package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const summarizerSystem = "You are a QA assistant. Summarize browser test outcomes " +
	"in one short, plain sentence for a test report. No markdown, no preamble."

// summarizeTimeout bounds the best-effort summary call so a slow model cannot
// hold up result emission.
const summarizeTimeout = 20 * time.Second

// SummarizeResult produces a one-sentence human reason for a test outcome.
// Best-effort: on any failure it returns "" and the caller falls back to the
// error text or a default.
func SummarizeResult(ctx context.Context, client Client, model, title, description, status, errText string) string {
	if client == nil || model == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, summarizeTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Test: %s\nWhat it does: %s\nOutcome: %s\n",
		title, description, status,
	)
	if errText != "" {
		prompt += "Error: " + errText + "\n"
	}
	prompt += "Write one sentence explaining this outcome to the test owner."

	reason, err := client.Complete(ctx, model, summarizerSystem, prompt)
	if err != nil {
		slog.Warn("Result summarizer failed", "model", model, "error", err)
		return ""
	}
	return reason
}
