package classifier

import (
	"sort"

	"github.com/FrenchMajesty/bow-classifier/pkg/types"
)

// Vocabulary maps each retained token to its occurrence count in the training corpus.
// It is read-only once built.
type Vocabulary struct {
	counts  map[string]int
	dropped int
}

// BuildVocabulary counts every token occurrence across records and keeps the
// tokens seen at least minOccurrence times. A threshold of 1 or less keeps all of them.
func BuildVocabulary(records []types.Record, minOccurrence int) *Vocabulary {
	counts := make(map[string]int)
	for _, record := range records {
		for _, token := range record.Tokens {
			counts[token]++
		}
	}

	dropped := 0
	for token, count := range counts {
		if count < minOccurrence {
			delete(counts, token)
			dropped++
		}
	}

	return &Vocabulary{
		counts:  counts,
		dropped: dropped,
	}
}

// Contains reports whether token takes part in scoring
func (v *Vocabulary) Contains(token string) bool {
	_, ok := v.counts[token]
	return ok
}

// Count returns the corpus count of token, 0 if it was never seen or was filtered out
func (v *Vocabulary) Count(token string) int {
	return v.counts[token]
}

// Len returns the number of retained tokens
func (v *Vocabulary) Len() int {
	return len(v.counts)
}

// Dropped returns how many distinct tokens fell below the threshold
func (v *Vocabulary) Dropped() int {
	return v.dropped
}

// Tokens returns the retained tokens in sorted order
func (v *Vocabulary) Tokens() []string {
	tokens := make([]string, 0, len(v.counts))
	for token := range v.counts {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
