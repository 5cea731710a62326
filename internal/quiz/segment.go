package quiz

import "strings"

// MaxSentences is the number of leading sentences a note contributes to
// either kind of quiz.
const MaxSentences = 5

const sentenceDelimiter = "."

// Segment splits note content into sentences on every '.', in order of
// appearance. Each sentence is trimmed and stripped of leading '-' bullet
// markers; fragments left empty are dropped. No cap is applied here.
func Segment(content string) []string {
	var sentences []string
	for _, fragment := range strings.Split(content, sentenceDelimiter) {
		if s := cleanSentence(fragment); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// cleanSentence trims a fragment and removes any run of leading '-'
// markers, including ones separated by whitespace ("- - item").
func cleanSentence(fragment string) string {
	s := strings.TrimSpace(fragment)
	for strings.HasPrefix(s, "-") {
		s = strings.TrimSpace(strings.TrimLeft(s, "-"))
	}
	return s
}

// head returns at most MaxSentences leading sentences.
func head(sentences []string) []string {
	if len(sentences) > MaxSentences {
		return sentences[:MaxSentences]
	}
	return sentences
}
