package domain

// QuestionMode selects which kind of study questions to derive from a note.
type QuestionMode string

// Supported question modes
const (
	QuestionModePlain QuestionMode = "plain"
	QuestionModeMCQ   QuestionMode = "mcq"
)

// ParseQuestionMode converts s into a QuestionMode.
// Returns ErrInvalidQuestionMode for anything other than "plain" or "mcq".
func ParseQuestionMode(s string) (QuestionMode, error) {
	switch QuestionMode(s) {
	case QuestionModePlain, QuestionModeMCQ:
		return QuestionMode(s), nil
	default:
		return "", ErrInvalidQuestionMode
	}
}

// OptionLetters are the answer keys of a multiple-choice question, in
// display order.
var OptionLetters = [4]string{"a", "b", "c", "d"}

// PlainPrompt is a single short-answer prompt taken verbatim from a
// sentence of the note.
type PlainPrompt struct {
	Index int    `json:"index"` // 1-based
	Text  string `json:"text"`
}

// MCQItem is a multiple-choice question built from one sentence.
//
// Options always has exactly the keys of OptionLetters, and
// Options[AnswerLetter] is the correct answer.
type MCQItem struct {
	QuestionText string            `json:"question"`
	Options      map[string]string `json:"options"`
	AnswerLetter string            `json:"answer"`
}

// CorrectAnswer returns the option text keyed by AnswerLetter.
func (m MCQItem) CorrectAnswer() string {
	return m.Options[m.AnswerLetter]
}

// MCQSet is the multiple-choice quiz derived from a single note.
type MCQSet struct {
	NoteTitle string    `json:"note_title"`
	Items     []MCQItem `json:"mcq_questions"`
}
