// Package quiz derives study questions from note text.
//
// Generation is a heuristic, pure transformation: note content is split
// into sentences (Segment), and the first MaxSentences of them are turned
// either into numbered short-answer prompts (FormatPlain) or into
// four-option multiple-choice questions (BuildMCQs). The correct answer of
// an MCQ is taken from the sentence itself (ExtractAnswer); distractors are
// sampled from the sentence's other words and padded with "Option N"
// placeholders when too few are available.
//
// The only nondeterminism is distractor sampling and option shuffling,
// which draw from an injected Rand. A Generator is safe for concurrent
// use; by default every call gets its own source.
package quiz
