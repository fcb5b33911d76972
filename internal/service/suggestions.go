package service

import (
	"encoding/json"
	"strings"
)

// Suggestion is one follow-up action proposed after the primary answer.
type Suggestion struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// parseSuggestions parses the model's follow-up output best-effort. Models
// routinely wrap JSON in Markdown fences despite being told not to, so the
// fences and a leading language tag are stripped before parsing. Anything
// still unparsable degrades to an empty list - never an error.
func parseSuggestions(raw string) []Suggestion {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "json"))

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return []Suggestion{}
	}
	if suggestions == nil {
		return []Suggestion{}
	}

	return suggestions
}
