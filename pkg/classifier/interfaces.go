package classifier

import "github.com/FrenchMajesty/bow-classifier/pkg/metrics"

// TrainingSummary describes a freshly built classifier
type TrainingSummary struct {
	Name           string
	Records        int
	VocabularySize int
	DroppedTokens  int
	TrueRecords    int
	FalseRecords   int
}

// Observer receives progress notifications from the classifier. Implementations
// must not block; the classifier calls them synchronously. Every TrainingStarted
// is followed by exactly one TrainingFinished or TrainingFailed.
type Observer interface {
	TrainingStarted(name string, records int)
	TrainingFinished(summary TrainingSummary)
	TrainingFailed(name string, err error)
	ClassificationFinished(name string, report metrics.Report)
}

// NopObserver discards every notification
type NopObserver struct{}

func (NopObserver) TrainingStarted(string, int) {}
func (NopObserver) TrainingFinished(TrainingSummary) {}
func (NopObserver) TrainingFailed(string, error) {}
func (NopObserver) ClassificationFinished(string, metrics.Report) {}

var _ Observer = NopObserver{}
