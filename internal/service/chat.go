package service

import (
	"context"
	"fmt"

	"github.com/lazygpt/gateway/internal/llm"
)

// ChatService orchestrates one /ask request: primary answer first, then a
// dependent follow-up-suggestions call. The two calls run sequentially
// because the second consumes the first's output.
type ChatService struct {
	llm llm.Client
}

func NewChatService(client llm.Client) *ChatService {
	return &ChatService{llm: client}
}

// Ask returns the assistant's answer and up to three follow-up suggestions.
// lang controls the suggestion language; allowed, when non-empty, restricts
// which actions may be suggested.
func (s *ChatService) Ask(ctx context.Context, message, lang string, allowed []string) (string, []Suggestion, error) {
	if message == "" {
		return "", nil, ErrNoMessage
	}
	if lang == "" {
		lang = "en"
	}

	answer, err := s.llm.Complete(ctx, personaPrompt, message)
	if err != nil {
		return "", nil, &UpstreamError{Err: err}
	}

	conversation := fmt.Sprintf("User: %s\n\nAssistant: %s", message, answer)
	raw, err := s.llm.Complete(ctx, suggestionsPrompt(lang, allowed), conversation)
	if err != nil {
		return "", nil, &UpstreamError{Err: err}
	}

	return answer, parseSuggestions(raw), nil
}
