package testutil

import (
	"strings"
	"sync"

	"github.com/FrenchMajesty/bow-classifier/pkg/classifier"
	"github.com/FrenchMajesty/bow-classifier/pkg/metrics"
	"github.com/FrenchMajesty/bow-classifier/pkg/report"
	"github.com/FrenchMajesty/bow-classifier/pkg/types"
)

// MockObserver is a recording implementation of classifier.Observer for testing
type MockObserver struct {
	mu sync.Mutex

	Started  []string
	Finished []classifier.TrainingSummary
	Failed   map[string]error
	Reports  map[string]metrics.Report
}

func NewMockObserver() *MockObserver {
	return &MockObserver{
		Failed:  make(map[string]error),
		Reports: make(map[string]metrics.Report),
	}
}

func (m *MockObserver) TrainingStarted(name string, records int) {
	m.mu.Lock()
	m.Started = append(m.Started, name)
	m.mu.Unlock()
}

func (m *MockObserver) TrainingFinished(summary classifier.TrainingSummary) {
	m.mu.Lock()
	m.Finished = append(m.Finished, summary)
	m.mu.Unlock()
}

func (m *MockObserver) TrainingFailed(name string, err error) {
	m.mu.Lock()
	m.Failed[name] = err
	m.mu.Unlock()
}

func (m *MockObserver) ClassificationFinished(name string, report metrics.Report) {
	m.mu.Lock()
	m.Reports[name] = report
	m.mu.Unlock()
}

var _ classifier.Observer = (*MockObserver)(nil)

// MockWriter is an in-memory implementation of report.Writer for testing
type MockWriter struct {
	WriteTraceFunc func(name string, records []types.Record, predictions []types.Prediction) error

	mu          sync.Mutex
	Traces      map[string][]string
	Evaluations map[string]metrics.Report
	Summaries   map[string]report.Summary
}

func NewMockWriter() *MockWriter {
	return &MockWriter{
		Traces:      make(map[string][]string),
		Evaluations: make(map[string]metrics.Report),
		Summaries:   make(map[string]report.Summary),
	}
}

func (m *MockWriter) WriteTrace(name string, records []types.Record, predictions []types.Prediction) error {
	if m.WriteTraceFunc != nil {
		if err := m.WriteTraceFunc(name, records, predictions); err != nil {
			return err
		}
	}

	lines := make([]string, len(records))
	for i := range records {
		lines[i] = report.TraceLine(records[i], predictions[i])
	}

	m.mu.Lock()
	m.Traces[name] = lines
	m.mu.Unlock()
	return nil
}

func (m *MockWriter) WriteEvaluation(name string, r metrics.Report) error {
	m.mu.Lock()
	m.Evaluations[name] = r
	m.mu.Unlock()
	return nil
}

func (m *MockWriter) WriteSummary(summary report.Summary) error {
	m.mu.Lock()
	m.Summaries[summary.Model.Name] = summary
	m.mu.Unlock()
	return nil
}

var _ report.Writer = (*MockWriter)(nil)

// Record builds a record from space separated text
func Record(id, text string, label bool) types.Record {
	return types.Record{
		ID:     id,
		Tokens: strings.Fields(text),
		Label:  label,
	}
}

// TrainingSet is a small corpus where "cure", "vaccine" and "study" lean true
// and "hoax", "5g" and "fake" lean false.
func TrainingSet() []types.Record {
	return []types.Record{
		Record("1", "vaccine study shows cure", true),
		Record("2", "new study on vaccine", true),
		Record("3", "cure found in study", true),
		Record("4", "5g causes virus hoax", false),
		Record("5", "fake cure hoax", false),
	}
}

// TSV renders records as dataset rows under a header
func TSV(records []types.Record) string {
	var b strings.Builder
	b.WriteString("tweet_id\ttext\tq1_label\n")
	for _, r := range records {
		b.WriteString(r.ID + "\t" + strings.Join(r.Tokens, " ") + "\t" + types.YesNo(r.Label) + "\n")
	}
	return b.String()
}

// TestSet pairs with TrainingSet; "unseen" never occurs in training
func TestSet() []types.Record {
	return []types.Record{
		Record("101", "vaccine study", true),
		Record("102", "hoax 5g fake", false),
		Record("103", "unseen", false),
		Record("104", "fake vaccine hoax", true),
	}
}
