package classifier

import "errors"

var (
	// ErrEmptyTrainingSet is returned when there are no training records at all
	ErrEmptyTrainingSet = errors.New("training set is empty")

	// ErrEmptyClass is returned when one label has no training records, leaving its prior undefined
	ErrEmptyClass = errors.New("class has no training records")

	// ErrInvalidDelta is returned for a non-positive smoothing parameter
	ErrInvalidDelta = errors.New("smoothing delta must be positive")

	// ErrInvalidMinOccurrence is returned for a negative vocabulary threshold
	ErrInvalidMinOccurrence = errors.New("min occurrence must not be negative")
)
