package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrenchMajesty/bow-classifier/pkg/dataset"
	"github.com/FrenchMajesty/bow-classifier/pkg/types"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lower-cases", "Vaccine WORKS", []string{"vaccine", "works"}},
		{"drops empty tokens", "  two  spaces ", []string{"two", "spaces"}},
		{"keeps punctuation", "covid-19, #cure!", []string{"covid-19,", "#cure!"}},
		{"only splits on spaces", "tab\tseparated", []string{"tab\tseparated"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, dataset.Tokenize(tt.text)); diff != "" {
				t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRow(t *testing.T) {
	record, err := dataset.ParseRow([]string{"42", "Hello World", "yes", "extra"})
	require.NoError(t, err)
	assert.Equal(t, types.Record{ID: "42", Tokens: []string{"hello", "world"}, Label: true}, record)

	for _, label := range []string{"no", "Yes", "YES", "", "y"} {
		record, err := dataset.ParseRow([]string{"1", "x", label})
		require.NoError(t, err)
		assert.False(t, record.Label, "label %q should be false", label)
	}
}

func TestParseRow_Malformed(t *testing.T) {
	_, err := dataset.ParseRow([]string{"1", "text"})
	if !errors.Is(err, dataset.ErrMalformedRow) {
		t.Fatalf("Expected ErrMalformedRow, got: %v", err)
	}
}

func TestRead(t *testing.T) {
	input := "tweet_id\ttext\tq1_label\n" +
		"1\tThe Cure is here\tyes\n" +
		"2\t5G  hoax\tno\n"

	records, err := dataset.Read(strings.NewReader(input), true)
	require.NoError(t, err)

	want := []types.Record{
		{ID: "1", Tokens: []string{"the", "cure", "is", "here"}, Label: true},
		{ID: "2", Tokens: []string{"5g", "hoax"}, Label: false},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("Records mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_WithoutHeader(t *testing.T) {
	records, err := dataset.Read(strings.NewReader("1\ta \"quoted\" word\tyes\n"), false)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"a", "\"quoted\"", "word"}, records[0].Tokens)
}

func TestRead_Quoting(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []types.Record
	}{
		{
			name:  "leading quote closes before trailing text",
			input: "1\t\"Masks\" work\tyes\n2\tplain text\tno\n",
			want: []types.Record{
				{ID: "1", Tokens: []string{"masks", "work"}, Label: true},
				{ID: "2", Tokens: []string{"plain", "text"}, Label: false},
			},
		},
		{
			name:  "quote inside a field is literal",
			input: "1\ta \"quoted\" word\tyes\n",
			want: []types.Record{
				{ID: "1", Tokens: []string{"a", "\"quoted\"", "word"}, Label: true},
			},
		},
		{
			name:  "doubled quotes in a quoted field",
			input: "1\t\"say \"\"hi\"\" now\"\tyes\n",
			want: []types.Record{
				{ID: "1", Tokens: []string{"say", "\"hi\"", "now"}, Label: true},
			},
		},
		{
			name:  "tab inside a quoted field",
			input: "1\t\"a\tb\"\tno\n",
			want: []types.Record{
				{ID: "1", Tokens: []string{"a\tb"}, Label: false},
			},
		},
		{
			name:  "crlf line endings",
			input: "1\tx\tyes\r\n2\ty\tno\r\n",
			want: []types.Record{
				{ID: "1", Tokens: []string{"x"}, Label: true},
				{ID: "2", Tokens: []string{"y"}, Label: false},
			},
		},
		{
			name:  "no trailing newline",
			input: "1\tx\tyes",
			want: []types.Record{
				{ID: "1", Tokens: []string{"x"}, Label: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := dataset.Read(strings.NewReader(tt.input), false)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, records); diff != "" {
				t.Errorf("Records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead_ErrorNamesFileLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"multi-line quoted field", "1\t\"first\nsecond\"\tyes\n2\tok\tno\n3\tbroken\n", "line 4"},
		{"blank line", "1\tx\tyes\n\n2\ty\tno\n", "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := dataset.Read(strings.NewReader(tt.input), false)
			assert.Nil(t, records)
			assert.ErrorIs(t, err, dataset.ErrMalformedRow)
			assert.ErrorContains(t, err, tt.line)
		})
	}
}

func TestRead_MalformedRow(t *testing.T) {
	input := "1\tok\tyes\n2\tmissing label\n"

	records, err := dataset.Read(strings.NewReader(input), false)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, dataset.ErrMalformedRow)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.tsv")
	err := os.WriteFile(path, []byte("id\ttext\tlabel\n1\ta b\tyes\n2\tc\tno\n3\td e f\tno\n"), 0644)
	require.NoError(t, err)

	records, err := dataset.Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, dataset.Stats{Records: 3, Words: 6, Yes: 1, No: 2}, dataset.Summarize(records))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "missing.tsv"), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
