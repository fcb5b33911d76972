// Package llm wraps the OpenAI chat-completions API behind a small
// interface so orchestrators can be tested against a fake.
package llm

import "context"

type Client interface {
	// Complete runs one text completion with a system prompt and a single
	// user turn, returning the assistant's text.
	Complete(ctx context.Context, system, user string) (string, error)

	// CompleteVision runs one multimodal completion combining a text prompt
	// with an inline image, capped at maxTokens.
	CompleteVision(ctx context.Context, prompt string, image []byte, mimeType string, maxTokens int) (string, error)
}
