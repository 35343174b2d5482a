// Package suggest produces short mentoring suggestions from a summary of the
// user's dashboard. The production provider calls an OpenAI-compatible chat
// completions API; a static provider keeps the endpoint functional when no
// API key is configured.
package suggest

import "context"

// Provider turns a system instruction and a user prompt into one suggestion.
type Provider interface {
	Suggest(ctx context.Context, system, prompt string) (string, error)
}

// StaticProvider returns a fixed suggestion. Used when no completion API key
// is configured so the dashboard still renders something actionable.
type StaticProvider struct{}

func (StaticProvider) Suggest(ctx context.Context, system, prompt string) (string, error) {
	return "Pick the smallest unfinished item on your list and spend 25 focused minutes on it today.", nil
}
