package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/FrenchMajesty/bow-classifier/pkg/metrics"
	"github.com/FrenchMajesty/bow-classifier/pkg/types"
)

// TraceLine renders one classified record as
// "<id>  <predicted>  <score>  <actual>  <right|wrong>"
func TraceLine(record types.Record, prediction types.Prediction) string {
	outcome := "wrong"
	if prediction.Label == record.Label {
		outcome = "right"
	}
	return fmt.Sprintf("%s  %s  %.2E  %s  %s", record.ID, types.YesNo(prediction.Label), prediction.Score, types.YesNo(record.Label), outcome)
}

// EvaluationLines renders accuracy, then precision, recall and F1 for the true and false classes
func EvaluationLines(r metrics.Report) []string {
	return []string{
		FormatFloat(r.Accuracy),
		FormatFloat(r.True.Precision) + "  " + FormatFloat(r.False.Precision),
		FormatFloat(r.True.Recall) + "  " + FormatFloat(r.False.Recall),
		FormatFloat(r.True.F1) + "  " + FormatFloat(r.False.F1),
	}
}

// FormatFloat prints the shortest decimal that round-trips, keeping at least one
// fractional digit. Magnitudes below 1e-4 or from 1e16 up use exponent form ("5e-05").
func FormatFloat(f float64) string {
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
