package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/FrenchMajesty/bow-classifier/pkg/types"
)

// PositiveLabel is the only label column value read as true
const PositiveLabel = "yes"

// ErrMalformedRow is returned for rows missing the id, text or label column
var ErrMalformedRow = errors.New("row has fewer than 3 columns")

// Stats summarizes a loaded dataset
type Stats struct {
	Records int
	Words   int
	Yes     int
	No      int
}

// Tokenize lower-cases text and splits it on single spaces, dropping empty tokens
func Tokenize(text string) []string {
	parts := strings.Split(strings.ToLower(text), " ")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// ParseRow builds a record from the id, text and label columns of a row
func ParseRow(row []string) (types.Record, error) {
	if len(row) < 3 {
		return types.Record{}, fmt.Errorf("got %d columns: %w", len(row), ErrMalformedRow)
	}

	return types.Record{
		ID:     row[0],
		Tokens: Tokenize(row[1]),
		Label:  row[2] == PositiveLabel,
	}, nil
}

// Read parses tab separated rows from r, skipping the first row when hasHeader is set.
// Errors name the file line the offending row starts on.
func Read(r io.Reader, hasHeader bool) ([]types.Record, error) {
	reader := newRowReader(r)

	var records []types.Record
	for first := true; ; first = false {
		row, line, err := reader.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse TSV: %w", err)
		}

		if first && hasHeader {
			continue
		}

		record, err := ParseRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to parse line %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// Load reads the dataset file at path
func Load(path string, hasHeader bool) ([]types.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	records, err := Read(file, hasHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}
	return records, nil
}

// Summarize counts records, tokens and labels
func Summarize(records []types.Record) Stats {
	stats := Stats{Records: len(records)}
	for _, record := range records {
		stats.Words += len(record.Tokens)
		if record.Label {
			stats.Yes++
		} else {
			stats.No++
		}
	}
	return stats
}
