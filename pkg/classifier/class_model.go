package classifier

import (
	"fmt"
	"math"

	"github.com/FrenchMajesty/bow-classifier/pkg/types"
)

// ClassModel is the trained statistics of one label: a log10 prior and a log10
// conditional probability for every vocabulary token. It is an immutable value.
type ClassModel struct {
	Label bool

	// Prior is log10(class records / total records)
	Prior float64

	// Conditionals holds log10((freq + delta) / wordCount) for each vocabulary token
	Conditionals map[string]float64

	// Floor is the conditional of a token never seen in this class
	Floor float64

	// Records is the number of training records with this label
	Records int

	// WordCount is the smoothed denominator shared by all conditionals
	WordCount float64
}

// BuildClassModel trains the model for one label. records must hold only the
// records carrying label; total is the record count over both labels.
func BuildClassModel(vocab *Vocabulary, records []types.Record, label bool, total int, delta float64) (ClassModel, error) {
	if total <= 0 {
		return ClassModel{}, fmt.Errorf("failed to build class %s: %w", types.YesNo(label), ErrEmptyTrainingSet)
	}
	if len(records) == 0 {
		return ClassModel{}, fmt.Errorf("failed to build class %s: %w", types.YesNo(label), ErrEmptyClass)
	}
	if delta <= 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return ClassModel{}, fmt.Errorf("failed to build class %s with delta %g: %w", types.YesNo(label), delta, ErrInvalidDelta)
	}

	frequencies := make(map[string]int)
	wordCount := 0.0
	for _, record := range records {
		wordCount += float64(len(record.Tokens))
		for _, token := range record.Tokens {
			if vocab.Contains(token) {
				frequencies[token]++
			}
		}
	}
	wordCount += float64(vocab.Len()) * delta

	conditionals := make(map[string]float64, vocab.Len())
	for token := range vocab.counts {
		conditionals[token] = math.Log10((float64(frequencies[token]) + delta) / wordCount)
	}

	// Only reachable with an empty vocabulary and token-less records
	floor := 0.0
	if wordCount > 0 {
		floor = math.Log10(delta / wordCount)
	}

	return ClassModel{
		Label:        label,
		Prior:        math.Log10(float64(len(records)) / float64(total)),
		Conditionals: conditionals,
		Floor:        floor,
		Records:      len(records),
		WordCount:    wordCount,
	}, nil
}

// Conditional returns the log10 probability of token given this class. Tokens
// without an entry get the smoothing floor.
func (m ClassModel) Conditional(token string) float64 {
	if c, ok := m.Conditionals[token]; ok {
		return c
	}
	return m.Floor
}

// Score returns the log10 score of tokens under this class. Tokens outside the
// model's vocabulary add nothing.
func (m ClassModel) Score(tokens []string) float64 {
	score := m.Prior
	for _, token := range tokens {
		if c, ok := m.Conditionals[token]; ok {
			score += c
		}
	}
	return score
}
