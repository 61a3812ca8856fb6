package types

// Record is one labeled document: an identifier, its tokenized text and
// whether it belongs to the positive ("yes") class.
type Record struct {
	ID     string
	Tokens []string
	Label  bool
}

// Prediction is the outcome of classifying a single record
type Prediction struct {
	// Label is the predicted class
	Label bool

	// Score is the winning class score in log10 space
	Score float64
}

// YesNo renders a label the way the dataset encodes it
func YesNo(label bool) string {
	if label {
		return "yes"
	}
	return "no"
}
