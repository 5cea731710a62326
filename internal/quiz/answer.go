package quiz

import "strings"

// ExtractAnswer picks the correct answer for an MCQ built from sentence.
//
// If the sentence contains ':', the answer is the text before the first
// ':' trimmed ("Paris: is the capital" gives "Paris"). Otherwise it is the
// first whitespace-delimited token, punctuation included. The rule is
// deliberately crude and callers rely on it exactly.
func ExtractAnswer(sentence string) string {
	if term, _, found := strings.Cut(sentence, ":"); found {
		return strings.TrimSpace(term)
	}
	fields := strings.Fields(sentence)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
