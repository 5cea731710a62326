package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{"colon takes priority", "Paris: is the capital", "Paris"},
		{"first colon only", "Time: 10:30 sharp", "Time"},
		{"colon term trimmed", "  Big Ben  : a clock tower", "Big Ben"},
		{"fallback first token", "Water boils at 100 degrees", "Water"},
		{"fallback keeps punctuation", "Rome, Paris and Berlin", "Rome,"},
		{"hyphen is not a separator", "Osmosis - movement of water", "Osmosis"},
		{"hyphen before colon", "H2O - water: a molecule", "H2O - water"},
		{"single token", "Sun", "Sun"},
		{"leading colon", ": orphan", ""},
		{"blank", "   ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractAnswer(tc.sentence))
		})
	}
}
