package metrics

import (
	"errors"
	"fmt"
	"math"
)

// DefaultBeta weighs precision and recall equally
const DefaultBeta = 1.0

// ErrLengthMismatch is returned when predictions and expectations are not paired one to one
var ErrLengthMismatch = errors.New("results and expected differ in length")

// ClassScores holds the per-class evaluation values
type ClassScores struct {
	Precision float64
	Recall    float64
	F1        float64
}

// Report aggregates the evaluation of one classification pass
type Report struct {
	// Accuracy is the fraction of correct predictions, 0 for an empty pass
	Accuracy float64

	// True and False hold the scores with each label taken as the target class
	True  ClassScores
	False ClassScores

	// Total is the number of evaluated pairs
	Total int
}

// For returns the scores for the given target class
func (r Report) For(target bool) ClassScores {
	if target {
		return r.True
	}
	return r.False
}

// Evaluate computes the full report for paired results and expectations
func Evaluate(results, expected []bool) (Report, error) {
	if len(results) != len(expected) {
		return Report{}, fmt.Errorf("failed to evaluate %d results against %d expectations: %w", len(results), len(expected), ErrLengthMismatch)
	}

	return Report{
		Accuracy: Accuracy(results, expected),
		True:     scoresFor(results, expected, true),
		False:    scoresFor(results, expected, false),
		Total:    len(results),
	}, nil
}

func scoresFor(results, expected []bool, target bool) ClassScores {
	return ClassScores{
		Precision: Precision(results, expected, target),
		Recall:    Recall(results, expected, target),
		F1:        F1Measure(results, expected, target, DefaultBeta),
	}
}

// Accuracy returns the fraction of positions where the result matches the expectation.
// Pairs past the shorter slice are ignored. An empty input yields 0.
func Accuracy(results, expected []bool) float64 {
	n := pairs(results, expected)
	if n == 0 {
		return 0.0
	}

	correct := 0
	for i := 0; i < n; i++ {
		if results[i] == expected[i] {
			correct++
		}
	}
	return float64(correct) / float64(n)
}

// Precision returns, among positions predicted as target, the fraction that were correct.
// It is 0 when nothing was predicted as target.
func Precision(results, expected []bool, target bool) float64 {
	labelled, truePositive := 0, 0
	for i := 0; i < pairs(results, expected); i++ {
		if results[i] != target {
			continue
		}
		labelled++
		if results[i] == expected[i] {
			truePositive++
		}
	}
	return ratio(truePositive, labelled)
}

// Recall returns, among positions actually in target, the fraction that were predicted correctly.
// It is 0 when no position belongs to target.
func Recall(results, expected []bool, target bool) float64 {
	actual, truePositive := 0, 0
	for i := 0; i < pairs(results, expected); i++ {
		if expected[i] != target {
			continue
		}
		actual++
		if results[i] == expected[i] {
			truePositive++
		}
	}
	return ratio(truePositive, actual)
}

// F1Measure combines precision and recall for target as
// ((β²+1)·p·r) / (β²·p + r). β > 1 favours recall, β < 1 favours precision.
// A zero denominator or a non-finite result yields 0.
func F1Measure(results, expected []bool, target bool, beta float64) float64 {
	p := Precision(results, expected, target)
	r := Recall(results, expected, target)
	return fMeasure(p, r, beta)
}

func fMeasure(p, r, beta float64) float64 {
	b := beta * beta
	denominator := b*p + r
	if denominator == 0 {
		return 0.0
	}

	f := ((b + 1) * p * r) / denominator
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0.0
	}
	return f
}

func pairs(results, expected []bool) int {
	return min(len(results), len(expected))
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0.0
	}
	return float64(num) / float64(den)
}
