package logging

import (
	"go.uber.org/zap"

	"github.com/FrenchMajesty/bow-classifier/pkg/classifier"
	"github.com/FrenchMajesty/bow-classifier/pkg/metrics"
)

// ZapObserver reports classifier progress through a zap logger
type ZapObserver struct {
	logger *zap.Logger
}

// NewZapObserver creates an observer writing to logger
func NewZapObserver(logger *zap.Logger) *ZapObserver {
	return &ZapObserver{logger: logger}
}

func (o *ZapObserver) TrainingStarted(name string, records int) {
	o.logger.Info("training naive bayes bag-of-words model",
		zap.String("model", name),
		zap.Int("records", records),
	)
}

func (o *ZapObserver) TrainingFinished(summary classifier.TrainingSummary) {
	o.logger.Info("model trained",
		zap.String("model", summary.Name),
		zap.Int("vocabulary", summary.VocabularySize),
		zap.Int("dropped", summary.DroppedTokens),
		zap.Int("yes", summary.TrueRecords),
		zap.Int("no", summary.FalseRecords),
	)
}

func (o *ZapObserver) TrainingFailed(name string, err error) {
	o.logger.Error("model training failed",
		zap.String("model", name),
		zap.Error(err),
	)
}

func (o *ZapObserver) ClassificationFinished(name string, report metrics.Report) {
	o.logger.Info("test set classified",
		zap.String("model", name),
		zap.Int("records", report.Total),
		zap.Float64("accuracy", report.Accuracy),
		zap.Float64("f1_yes", report.True.F1),
		zap.Float64("f1_no", report.False.F1),
	)
}

var _ classifier.Observer = (*ZapObserver)(nil)
