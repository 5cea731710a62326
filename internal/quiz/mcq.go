package quiz

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/notequiz-api/internal/domain"
)

const (
	// maxDistractors is the number of wrong options per question.
	maxDistractors = 3

	// minDistractorLength excludes short filler words; a token must be
	// longer than this to be a candidate.
	minDistractorLength = 2
)

// Rand is the source of randomness for distractor sampling and option
// shuffling. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Perm returns a pseudo-random permutation of [0, n).
	Perm(n int) []int
	// Shuffle pseudo-randomizes the order of n elements.
	Shuffle(n int, swap func(i, j int))
}

// BuildMCQs builds one multiple-choice question per sentence for the first
// MaxSentences sentences. Zero sentences yield an empty, non-nil Items.
func BuildMCQs(rng Rand, title string, sentences []string) domain.MCQSet {
	sentences = head(sentences)
	set := domain.MCQSet{
		NoteTitle: title,
		Items:     make([]domain.MCQItem, 0, len(sentences)),
	}
	for _, s := range sentences {
		set.Items = append(set.Items, BuildMCQ(rng, s))
	}
	return set
}

// BuildMCQ builds the question for a single sentence. The sentence itself is
// the question text; ExtractAnswer gives the correct option.
func BuildMCQ(rng Rand, sentence string) domain.MCQItem {
	answer := ExtractAnswer(sentence)

	options := make([]string, 0, len(domain.OptionLetters))
	options = append(options, answer)
	options = append(options, sampleDistractors(rng, distractorCandidates(sentence, answer))...)
	for len(options) < len(domain.OptionLetters) {
		options = append(options, placeholderOption(len(options)))
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	item := domain.MCQItem{
		QuestionText: sentence,
		Options:      make(map[string]string, len(options)),
	}
	for i, text := range options {
		letter := domain.OptionLetters[i]
		item.Options[letter] = text
		// First matching position wins when a distractor repeats the answer.
		if item.AnswerLetter == "" && text == answer {
			item.AnswerLetter = letter
		}
	}
	return item
}

// distractorCandidates returns the sentence's tokens that may serve as wrong
// options: longer than minDistractorLength and not equal to the answer
// ignoring case. Both checks see the raw token; trailing ',' and '.' are
// stripped afterwards. Every case-insensitive repeat of the answer is
// excluded, even if that leaves fewer than maxDistractors candidates.
func distractorCandidates(sentence, answer string) []string {
	lowerAnswer := strings.ToLower(answer)

	var candidates []string
	for _, token := range strings.Fields(sentence) {
		if strings.ToLower(token) == lowerAnswer {
			continue
		}
		if utf8.RuneCountInString(token) <= minDistractorLength {
			continue
		}
		candidates = append(candidates, strings.TrimRight(token, ",."))
	}
	return candidates
}

// sampleDistractors draws min(maxDistractors, len(pool)) candidates without
// replacement, in draw order. An empty pool yields the placeholders
// "Option 1" through "Option 3".
func sampleDistractors(rng Rand, pool []string) []string {
	if len(pool) == 0 {
		placeholders := make([]string, maxDistractors)
		for i := range placeholders {
			placeholders[i] = placeholderOption(i + 1)
		}
		return placeholders
	}

	n := min(maxDistractors, len(pool))
	picked := make([]string, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[idx])
	}
	return picked
}

func placeholderOption(n int) string {
	return fmt.Sprintf("Option %d", n)
}
