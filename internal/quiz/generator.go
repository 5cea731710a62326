package quiz

import (
	"math/rand/v2"

	"github.com/phrazzld/notequiz-api/internal/domain"
)

// Generator turns notes into study questions.
type Generator struct {
	newRand func() Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandSource sets the factory called once per MCQ generation to obtain
// a source of randomness. The factory must be safe for concurrent use if
// the Generator is.
func WithRandSource(newRand func() Rand) Option {
	return func(g *Generator) {
		if newRand != nil {
			g.newRand = newRand
		}
	}
}

// WithSeed makes every generation start from the same PCG state, so equal
// notes always produce equal quizzes.
func WithSeed(seed uint64) Option {
	return WithRandSource(func() Rand {
		return rand.New(rand.NewPCG(seed, seed))
	})
}

// NewGenerator creates a Generator. Without options each call draws from a
// fresh, randomly seeded PCG source.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{newRand: newCallLocalRand}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// newCallLocalRand seeds a private source so concurrent calls never contend
// on shared generator state.
func newCallLocalRand() Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// GeneratePlain renders the numbered prompt listing for a note.
func (g *Generator) GeneratePlain(note *domain.Note) string {
	return FormatPlain(note.Title, Segment(note.Content))
}

// GenerateMCQ builds the multiple-choice quiz for a note.
func (g *Generator) GenerateMCQ(note *domain.Note) domain.MCQSet {
	return BuildMCQs(g.newRand(), note.Title, Segment(note.Content))
}
