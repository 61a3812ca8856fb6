package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	delimiter = '\t'
	quote     = '"'
)

type fieldState int

const (
	startField fieldState = iota
	inField
	inQuotedField
	quoteInQuotedField
)

// rowReader splits tab separated rows using the quoting rules of spreadsheet
// exports: a field opening with a quote runs to the next lone quote, a doubled
// quote inside it is a literal quote, and anything after the closing quote is
// appended to the field as plain text. Quotes anywhere else are literal.
type rowReader struct {
	r    *bufio.Reader
	line int
}

func newRowReader(r io.Reader) *rowReader {
	return &rowReader{r: bufio.NewReader(r), line: 1}
}

// next returns the fields of the following row and the file line it starts on.
// A blank line is returned as a row with no fields. io.EOF marks the end of input.
func (rr *rowReader) next() ([]string, int, error) {
	start := rr.line

	var (
		fields []string
		field  strings.Builder
		state  = startField
		read   = false
	)
	save := func() {
		fields = append(fields, field.String())
		field.Reset()
		state = startField
	}

	for {
		c, _, err := rr.r.ReadRune()
		if errors.Is(err, io.EOF) {
			if !read {
				return nil, start, io.EOF
			}
			save()
			return fields, start, nil
		}
		if err != nil {
			return nil, start, fmt.Errorf("failed to read line %d: %w", rr.line, err)
		}
		read = true

		if c == '\n' {
			rr.line++
		}

		switch state {
		case startField, inField:
			switch {
			case c == quote && state == startField:
				state = inQuotedField
			case c == delimiter:
				save()
			case c == '\n' || c == '\r':
				if c == '\r' {
					rr.skipNewline()
				}
				if state == startField && len(fields) == 0 {
					return nil, start, nil
				}
				save()
				return fields, start, nil
			default:
				field.WriteRune(c)
				state = inField
			}
		case inQuotedField:
			if c == quote {
				state = quoteInQuotedField
			} else {
				field.WriteRune(c)
			}
		case quoteInQuotedField:
			switch c {
			case quote:
				field.WriteRune(quote)
				state = inQuotedField
			case delimiter:
				save()
			case '\n', '\r':
				if c == '\r' {
					rr.skipNewline()
				}
				save()
				return fields, start, nil
			default:
				field.WriteRune(c)
				state = inField
			}
		}
	}
}

// skipNewline consumes the '\n' of a "\r\n" pair
func (rr *rowReader) skipNewline() {
	c, _, err := rr.r.ReadRune()
	if err != nil {
		return
	}
	if c == '\n' {
		rr.line++
		return
	}
	_ = rr.r.UnreadRune()
}
