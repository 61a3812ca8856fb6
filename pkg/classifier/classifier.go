package classifier

import (
	"fmt"

	"github.com/FrenchMajesty/bow-classifier/pkg/metrics"
	"github.com/FrenchMajesty/bow-classifier/pkg/types"
)

// Classifier is a naive Bayes bag-of-words model over two labels. It is
// immutable once built and safe for concurrent use.
type Classifier struct {
	name          string
	minOccurrence int
	delta         float64
	vocabulary    *Vocabulary
	positive      ClassModel
	negative      ClassModel
	observer      Observer
}

// Evaluation is the outcome of classifying a labeled set
type Evaluation struct {
	// Name is the model that produced the predictions
	Name string

	// Predictions are aligned with the classified records
	Predictions []types.Prediction

	Report metrics.Report
}

// NewClassifier trains a new Classifier on records with the given configuration
func NewClassifier(records []types.Record, cfg Config) (*Classifier, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("failed to create classifier: %w", err)
	}

	cfg.Observer.TrainingStarted(cfg.Name, len(records))

	vocabulary := BuildVocabulary(records, cfg.MinOccurrence)

	var positives, negatives []types.Record
	for _, record := range records {
		if record.Label {
			positives = append(positives, record)
		} else {
			negatives = append(negatives, record)
		}
	}

	positive, err := BuildClassModel(vocabulary, positives, true, len(records), cfg.Delta)
	if err != nil {
		err = fmt.Errorf("failed to train model %s: %w", cfg.Name, err)
		cfg.Observer.TrainingFailed(cfg.Name, err)
		return nil, err
	}

	negative, err := BuildClassModel(vocabulary, negatives, false, len(records), cfg.Delta)
	if err != nil {
		err = fmt.Errorf("failed to train model %s: %w", cfg.Name, err)
		cfg.Observer.TrainingFailed(cfg.Name, err)
		return nil, err
	}

	c := &Classifier{
		name:          cfg.Name,
		minOccurrence: cfg.MinOccurrence,
		delta:         cfg.Delta,
		vocabulary:    vocabulary,
		positive:      positive,
		negative:      negative,
		observer:      cfg.Observer,
	}

	cfg.Observer.TrainingFinished(c.Summary())
	return c, nil
}

// Name returns the model name used in reports
func (c *Classifier) Name() string {
	return c.name
}

// MinOccurrence returns the vocabulary threshold the model was trained with
func (c *Classifier) MinOccurrence() int {
	return c.minOccurrence
}

// Delta returns the smoothing parameter the model was trained with
func (c *Classifier) Delta() float64 {
	return c.delta
}

// Vocabulary returns the vocabulary shared by both class models
func (c *Classifier) Vocabulary() *Vocabulary {
	return c.vocabulary
}

// Model returns the class model for label
func (c *Classifier) Model(label bool) ClassModel {
	if label {
		return c.positive
	}
	return c.negative
}

// Summary describes the trained model
func (c *Classifier) Summary() TrainingSummary {
	return TrainingSummary{
		Name:           c.name,
		Records:        c.positive.Records + c.negative.Records,
		VocabularySize: c.vocabulary.Len(),
		DroppedTokens:  c.vocabulary.Dropped(),
		TrueRecords:    c.positive.Records,
		FalseRecords:   c.negative.Records,
	}
}

// Score returns the record's score under the true and the false class
func (c *Classifier) Score(record types.Record) (float64, float64) {
	return c.positive.Score(record.Tokens), c.negative.Score(record.Tokens)
}

// Classify predicts the label of record. Ties go to false.
func (c *Classifier) Classify(record types.Record) types.Prediction {
	scoreTrue, scoreFalse := c.Score(record)
	return types.Prediction{
		Label: scoreTrue > scoreFalse,
		Score: max(scoreTrue, scoreFalse),
	}
}

// ClassifyAll classifies records in order and evaluates the predictions against their labels
func (c *Classifier) ClassifyAll(records []types.Record) (*Evaluation, error) {
	predictions := make([]types.Prediction, len(records))
	results := make([]bool, len(records))
	expected := make([]bool, len(records))
	for i, record := range records {
		predictions[i] = c.Classify(record)
		results[i] = predictions[i].Label
		expected[i] = record.Label
	}

	report, err := metrics.Evaluate(results, expected)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate model %s: %w", c.name, err)
	}

	c.observer.ClassificationFinished(c.name, report)

	return &Evaluation{
		Name:        c.name,
		Predictions: predictions,
		Report:      report,
	}, nil
}
