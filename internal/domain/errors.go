package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrEmptySecret   = errors.New("empty secret key")
	ErrNotFound      = errors.New("not found")
)

// RowParseError describes a CSV row that was skipped during ingestion.
// Row is the 1-based number of the data row, the header excluded.
type RowParseError struct {
	Row     int      `json:"row"`
	Missing []string `json:"missing,omitempty"`
	Err     error    `json:"-"`
}

func (e *RowParseError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("row %d: missing required fields: %s", e.Row, strings.Join(e.Missing, ", "))
	}

	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowParseError) Unwrap() error {
	return e.Err
}
