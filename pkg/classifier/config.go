package classifier

import "fmt"

const (
	// DefaultMinOccurrence keeps every token seen at least once
	DefaultMinOccurrence = 1

	// DefaultDelta is the additive smoothing constant
	DefaultDelta = 0.01

	// DefaultName labels a model in reports when none is given
	DefaultName = "NB-BOW"
)

// Config holds configuration for the Classifier
type Config struct {
	// Name identifies the model in traces and output files. If empty, uses DefaultName.
	Name string

	// MinOccurrence is the minimum corpus count for a token to enter the vocabulary. If 0, uses DefaultMinOccurrence.
	MinOccurrence int

	// Delta is the smoothing parameter. If 0, uses DefaultDelta.
	Delta float64

	// Observer receives training and classification progress. If nil, nothing is reported.
	Observer Observer
}

// applyDefaults fills in default values for unset config fields
func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}

	if c.MinOccurrence == 0 {
		c.MinOccurrence = DefaultMinOccurrence
	}

	if c.Delta == 0 {
		c.Delta = DefaultDelta
	}

	if c.Observer == nil {
		c.Observer = NopObserver{}
	}
}

// validate rejects parameters that cannot produce a usable model
func (c *Config) validate() error {
	if c.MinOccurrence < 0 {
		return fmt.Errorf("min occurrence %d for model %s: %w", c.MinOccurrence, c.Name, ErrInvalidMinOccurrence)
	}
	if c.Delta < 0 {
		return fmt.Errorf("delta %g for model %s: %w", c.Delta, c.Name, ErrInvalidDelta)
	}
	return nil
}
