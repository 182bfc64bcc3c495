// Package ai abstracts the model backend behind a small Provider interface
// so the command layer never touches the OpenAI client directly.
package ai

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionOptions carry the per-call knobs. Commands pick the model and
// temperature; everything else stays at backend defaults.
type CompletionOptions struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

type Provider interface {
	// Complete runs a chat completion and returns the cleaned reply text.
	Complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error)
	// Moderate reports whether the input is flagged by the moderation model.
	Moderate(ctx context.Context, input string) (bool, error)
	// GenerateImage renders a prompt and returns a URL to the image.
	GenerateImage(ctx context.Context, prompt, model string) (string, error)
}
