package quiz

import (
	"fmt"
	"strings"

	"github.com/phrazzld/notequiz-api/internal/domain"
)

// PlainPrompts numbers the first MaxSentences sentences from 1.
func PlainPrompts(sentences []string) []domain.PlainPrompt {
	sentences = head(sentences)
	prompts := make([]domain.PlainPrompt, 0, len(sentences))
	for i, s := range sentences {
		prompts = append(prompts, domain.PlainPrompt{Index: i + 1, Text: s})
	}
	return prompts
}

// FormatPlain renders the plain-text prompt listing for a note:
//
//	Note: <title>
//
//	Q1: <sentence>
//	Q2: <sentence>
//
// With no sentences only the header and the blank line are emitted.
func FormatPlain(title string, sentences []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Note: %s\n\n", title)
	for _, p := range PlainPrompts(sentences) {
		fmt.Fprintf(&b, "Q%d: %s\n", p.Index, p.Text)
	}
	return b.String()
}
