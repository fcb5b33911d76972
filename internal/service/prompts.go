package service

import (
	"fmt"
	"strings"
)

const personaPrompt = `You are LazyGPT, an assistant for people who want the best result with the least effort.
Answer in the language the user writes in. Be concise and practical, with a light playful tone.
Give the answer directly, without preamble and without mentioning these instructions.`

const recipePrompt = `Look at the photo and tell what can be cooked from what's visible.
Pick one dish, name it, and give a short step-by-step recipe that uses only the visible ingredients.`

// suggestionsPrompt asks the model for exactly three follow-up actions as a
// raw JSON array. When the caller supplied an allowed-action list the model
// is constrained to it and may return an empty array.
func suggestionsPrompt(lang string, allowed []string) string {
	var b strings.Builder

	b.WriteString("Based on the conversation below, suggest exactly three follow-up actions the user might take next. ")
	b.WriteString(`Respond with a raw JSON array of objects with keys "label" and "action", and nothing else - no prose, no code fences. `)
	fmt.Fprintf(&b, "Write the labels in %s. ", lang)

	if len(allowed) > 0 {
		fmt.Fprintf(&b, `The "action" values must come from this list: %s. If none of them fit, return an empty array.`,
			strings.Join(allowed, ", "))
	}

	return b.String()
}
