package classifier_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrenchMajesty/bow-classifier/pkg/classifier"
	"github.com/FrenchMajesty/bow-classifier/pkg/testutil"
	"github.com/FrenchMajesty/bow-classifier/pkg/types"
)

const epsilon = 1e-12

func tinyCorpus() (positives, negatives []types.Record) {
	positives = []types.Record{testutil.Record("1", "a a b", true)}
	negatives = []types.Record{testutil.Record("2", "b c", false)}
	return positives, negatives
}

func TestBuildClassModel_ClosedForm(t *testing.T) {
	positives, negatives := tinyCorpus()
	vocab := classifier.BuildVocabulary(append(append([]types.Record{}, positives...), negatives...), 1)
	delta := 0.5

	pos, err := classifier.BuildClassModel(vocab, positives, true, 2, delta)
	require.NoError(t, err)
	neg, err := classifier.BuildClassModel(vocab, negatives, false, 2, delta)
	require.NoError(t, err)

	// 3 tokens + 3 vocabulary entries * 0.5
	assert.InDelta(t, 4.5, pos.WordCount, epsilon)
	assert.InDelta(t, math.Log10(2.5/4.5), pos.Conditionals["a"], epsilon)
	assert.InDelta(t, math.Log10(1.5/4.5), pos.Conditionals["b"], epsilon)
	assert.InDelta(t, math.Log10(0.5/4.5), pos.Conditionals["c"], epsilon)

	assert.InDelta(t, 3.5, neg.WordCount, epsilon)
	assert.InDelta(t, math.Log10(0.5/3.5), neg.Conditionals["a"], epsilon)
	assert.InDelta(t, math.Log10(1.5/3.5), neg.Conditionals["b"], epsilon)
	assert.InDelta(t, math.Log10(1.5/3.5), neg.Conditionals["c"], epsilon)

	assert.Len(t, pos.Conditionals, vocab.Len())
	assert.Len(t, neg.Conditionals, vocab.Len())
}

func TestBuildClassModel_OutOfVocabularyCountsTowardWordCount(t *testing.T) {
	positives, negatives := tinyCorpus()
	vocab := classifier.BuildVocabulary(append(append([]types.Record{}, positives...), negatives...), 2)
	require.Equal(t, []string{"a", "b"}, vocab.Tokens())

	neg, err := classifier.BuildClassModel(vocab, negatives, false, 2, 0.5)
	require.NoError(t, err)

	// "c" is filtered but still counted: 2 tokens + 2 * 0.5
	assert.InDelta(t, 3.0, neg.WordCount, epsilon)
	assert.InDelta(t, math.Log10(1.5/3.0), neg.Conditionals["b"], epsilon)
	assert.InDelta(t, math.Log10(0.5/3.0), neg.Conditionals["a"], epsilon)
	assert.NotContains(t, neg.Conditionals, "c")
}

func TestBuildClassModel_Priors(t *testing.T) {
	records := testutil.TrainingSet()
	vocab := classifier.BuildVocabulary(records, 1)

	var positives, negatives []types.Record
	for _, r := range records {
		if r.Label {
			positives = append(positives, r)
		} else {
			negatives = append(negatives, r)
		}
	}

	n := float64(len(records))
	pos, err := classifier.BuildClassModel(vocab, positives, true, len(records), classifier.DefaultDelta)
	require.NoError(t, err)
	neg, err := classifier.BuildClassModel(vocab, negatives, false, len(records), classifier.DefaultDelta)
	require.NoError(t, err)

	assert.InDelta(t, math.Log10(3.0/5.0), pos.Prior, epsilon)
	assert.InDelta(t, math.Log10(2.0/5.0), neg.Prior, epsilon)
	assert.InDelta(t, n, math.Pow(10, pos.Prior)*n+math.Pow(10, neg.Prior)*n, 1e-9)
}

func TestBuildClassModel_Deterministic(t *testing.T) {
	positives, negatives := tinyCorpus()
	vocab := classifier.BuildVocabulary(append(append([]types.Record{}, positives...), negatives...), 1)

	first, err := classifier.BuildClassModel(vocab, positives, true, 2, 0.01)
	require.NoError(t, err)
	second, err := classifier.BuildClassModel(vocab, positives, true, 2, 0.01)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildClassModel_Errors(t *testing.T) {
	positives, _ := tinyCorpus()
	vocab := classifier.BuildVocabulary(positives, 1)

	tests := []struct {
		name    string
		records []types.Record
		total   int
		delta   float64
		want    error
	}{
		{"empty class", nil, 3, 0.01, classifier.ErrEmptyClass},
		{"empty training set", nil, 0, 0.01, classifier.ErrEmptyTrainingSet},
		{"zero delta", positives, 1, 0, classifier.ErrInvalidDelta},
		{"negative delta", positives, 1, -1, classifier.ErrInvalidDelta},
		{"nan delta", positives, 1, math.NaN(), classifier.ErrInvalidDelta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classifier.BuildClassModel(vocab, tt.records, true, tt.total, tt.delta)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got: %v", tt.want, err)
			}
		})
	}
}

func TestClassModel_ConditionalFloor(t *testing.T) {
	positives, negatives := tinyCorpus()
	vocab := classifier.BuildVocabulary(append(append([]types.Record{}, positives...), negatives...), 1)

	pos, err := classifier.BuildClassModel(vocab, positives, true, 2, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, math.Log10(0.5/4.5), pos.Floor, epsilon)
	assert.Equal(t, pos.Floor, pos.Conditional("never-seen"))
	// a vocabulary token absent from the class sits exactly on the floor
	assert.InDelta(t, pos.Floor, pos.Conditional("c"), epsilon)
	assert.Equal(t, pos.Conditionals["a"], pos.Conditional("a"))
}

func TestClassModel_Score(t *testing.T) {
	positives, negatives := tinyCorpus()
	vocab := classifier.BuildVocabulary(append(append([]types.Record{}, positives...), negatives...), 1)

	pos, err := classifier.BuildClassModel(vocab, positives, true, 2, 0.5)
	require.NoError(t, err)

	base := pos.Score([]string{"a"})
	assert.InDelta(t, pos.Prior+pos.Conditionals["a"], base, epsilon)

	// unknown tokens leave the score untouched
	assert.Equal(t, base, pos.Score([]string{"a", "zzz"}))
	assert.Equal(t, pos.Prior, pos.Score(nil))

	// each in-vocabulary token adds exactly its conditional
	assert.InDelta(t, base+pos.Conditionals["b"], pos.Score([]string{"a", "b"}), epsilon)
}
