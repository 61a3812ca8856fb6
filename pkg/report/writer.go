package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/FrenchMajesty/bow-classifier/pkg/classifier"
	"github.com/FrenchMajesty/bow-classifier/pkg/metrics"
	"github.com/FrenchMajesty/bow-classifier/pkg/types"
)

// Summary describes one trained and evaluated model for the JSON run summary
type Summary struct {
	RunID         uuid.UUID
	Model         classifier.TrainingSummary
	MinOccurrence int
	Delta         float64
	Report        metrics.Report
}

// Writer persists classification traces and evaluation results
type Writer interface {
	WriteTrace(name string, records []types.Record, predictions []types.Prediction) error
	WriteEvaluation(name string, report metrics.Report) error
	WriteSummary(summary Summary) error
}

// FileWriter implements Writer with one text file per output under a directory
type FileWriter struct {
	dir string
}

// NewFileWriter creates a new file-based report writer rooted at dir
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{
		dir: dir,
	}
}

// TracePath returns the trace file location for a model
func (f *FileWriter) TracePath(name string) string {
	return filepath.Join(f.dir, "trace_"+name+".txt")
}

// EvaluationPath returns the evaluation file location for a model
func (f *FileWriter) EvaluationPath(name string) string {
	return filepath.Join(f.dir, "eval_"+name+".txt")
}

// SummaryPath returns the JSON summary location for a model
func (f *FileWriter) SummaryPath(name string) string {
	return filepath.Join(f.dir, "summary_"+name+".json")
}

// WriteTrace writes one line per record, in order
func (f *FileWriter) WriteTrace(name string, records []types.Record, predictions []types.Prediction) error {
	if len(records) != len(predictions) {
		return fmt.Errorf("failed to write trace for %s: %d records but %d predictions", name, len(records), len(predictions))
	}

	lines := make([]string, len(records))
	for i := range records {
		lines[i] = TraceLine(records[i], predictions[i])
	}
	return f.writeLines(f.TracePath(name), lines)
}

// WriteEvaluation writes the four metric lines
func (f *FileWriter) WriteEvaluation(name string, report metrics.Report) error {
	return f.writeLines(f.EvaluationPath(name), EvaluationLines(report))
}

// WriteSummary writes the run summary as JSON
func (f *FileWriter) WriteSummary(summary Summary) error {
	s, err := structpb.NewStruct(summary.fields())
	if err != nil {
		return fmt.Errorf("failed to build summary for %s: %w", summary.Model.Name, err)
	}

	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal summary for %s: %w", summary.Model.Name, err)
	}

	if err := f.ensureDir(); err != nil {
		return err
	}
	path := f.SummaryPath(summary.Model.Name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary to file %s: %w", path, err)
	}
	return nil
}

func (s Summary) fields() map[string]any {
	class := func(c metrics.ClassScores) map[string]any {
		return map[string]any{
			"precision": c.Precision,
			"recall":    c.Recall,
			"f1":        c.F1,
		}
	}

	return map[string]any{
		"run_id":          s.RunID.String(),
		"model":           s.Model.Name,
		"min_occurrence":  s.MinOccurrence,
		"delta":           s.Delta,
		"vocabulary_size": s.Model.VocabularySize,
		"dropped_tokens":  s.Model.DroppedTokens,
		"training": map[string]any{
			"records": s.Model.Records,
			"yes":     s.Model.TrueRecords,
			"no":      s.Model.FalseRecords,
		},
		"evaluation": map[string]any{
			"records":  s.Report.Total,
			"accuracy": s.Report.Accuracy,
			"yes":      class(s.Report.True),
			"no":       class(s.Report.False),
		},
	}
}

func (f *FileWriter) ensureDir() error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", f.dir, err)
	}
	return nil
}

func (f *FileWriter) writeLines(path string, lines []string) error {
	if err := f.ensureDir(); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write to file %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write to file %s: %w", path, err)
	}
	return file.Close()
}

var _ Writer = (*FileWriter)(nil)
