package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"slices"
	"strings"
)

// recordReader splits the input into CSV records. A quoted field may span
// lines, but when such a record fails to parse only its first line is
// reported as malformed and the following lines are read again as records
// of their own, so a stray quote never swallows the rest of the file.
type recordReader struct {
	lines   *bufio.Reader
	comma   rune
	pending []string
}

func newRecordReader(r io.Reader, comma rune) *recordReader {
	return &recordReader{
		lines: bufio.NewReader(r),
		comma: comma,
	}
}

func (r *recordReader) Read() ([]string, error) {
	for {
		lines, err := r.next()
		if err != nil {
			return nil, err
		}

		if len(lines) == 1 && lines[0] == "" {
			continue
		}

		record, err := r.parse(strings.Join(lines, "\n"))
		if err != nil && len(lines) > 1 {
			r.pending = append(slices.Clone(lines[1:]), r.pending...)
		}

		return record, err
	}
}

// next returns the physical lines of one record.
func (r *recordReader) next() ([]string, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}

	lines := []string{line}

	for open := r.quoteOpen(line, false); open; {
		line, err := r.readLine()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
		open = r.quoteOpen(line, true)
	}

	return lines, nil
}

func (r *recordReader) readLine() (string, error) {
	if len(r.pending) > 0 {
		line := r.pending[0]
		r.pending = r.pending[1:]

		return line, nil
	}

	line, err := r.lines.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

type quoteState int

const (
	fieldStart quoteState = iota
	unquoted
	quoted
	quoteInQuoted
)

// quoteOpen reports whether a quoted field is still open at the end of line.
func (r *recordReader) quoteOpen(line string, open bool) bool {
	state := fieldStart
	if open {
		state = quoted
	}

	for _, c := range line {
		switch state {
		case fieldStart:
			switch {
			case c == r.comma, c == ' ', c == '\t':
			case c == '"':
				state = quoted
			default:
				state = unquoted
			}
		case unquoted:
			if c == r.comma {
				state = fieldStart
			}
		case quoted:
			if c == '"' {
				state = quoteInQuoted
			}
		case quoteInQuoted:
			switch c {
			case '"':
				state = quoted
			case r.comma:
				state = fieldStart
			default:
				state = unquoted
			}
		}
	}

	return state == quoted
}

func (r *recordReader) parse(text string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = r.comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	return reader.Read()
}
