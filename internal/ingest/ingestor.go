package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/device_onboarder/internal/domain"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1251 = "windows-1251"
)

type Options struct {
	Delimiter string
	Encoding  string
}

func (o Options) Validate() error {
	if utf8.RuneCountInString(o.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", o.Delimiter)
	}

	switch o.Encoding {
	case "", EncodingUTF8, EncodingWindows1251:
		return nil
	default:
		return fmt.Errorf("unsupported encoding %q", o.Encoding)
	}
}

type Ingestor struct {
	opts Options
}

func New(opts Options) (*Ingestor, error) {
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Ingestor{opts: opts}, nil
}

// Parse lazily decodes device records from r. Each element is either a
// record or an error. A *domain.RowParseError marks a skipped row and the
// sequence goes on; any other error is fatal and ends the sequence.
// The sequence consumes r and can be ranged over once.
func (i *Ingestor) Parse(r io.Reader) iter.Seq2[*domain.DeviceRecord, error] {
	return func(yield func(*domain.DeviceRecord, error) bool) {
		comma, _ := utf8.DecodeRuneInString(i.opts.Delimiter)
		reader := newRecordReader(i.decode(r), comma)

		header, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return
		}

		if err != nil {
			yield(nil, fmt.Errorf("failed to read header: %w", err))
			return
		}

		for n := range header {
			header[n] = strings.TrimSpace(header[n])
		}

		dec, err := csvutil.NewDecoder(&paddedReader{r: reader, width: len(header)}, header...)
		if err != nil {
			yield(nil, fmt.Errorf("failed to create decoder: %w", err))
			return
		}

		for row := 1; ; row++ {
			var record domain.DeviceRecord

			err := dec.Decode(&record)
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				var parseErr *csv.ParseError
				if !errors.As(err, &parseErr) {
					yield(nil, fmt.Errorf("failed to decode row %d: %w", row, err))
					return
				}

				if !yield(nil, &domain.RowParseError{Row: row, Err: err}) {
					return
				}

				continue
			}

			record.Normalize()

			if missing := record.MissingFields(); len(missing) > 0 {
				if !yield(nil, &domain.RowParseError{Row: row, Missing: missing}) {
					return
				}

				continue
			}

			if !yield(&record, nil) {
				return
			}
		}
	}
}

func (i *Ingestor) decode(r io.Reader) io.Reader {
	if i.opts.Encoding == EncodingWindows1251 {
		return charmap.Windows1251.NewDecoder().Reader(r)
	}

	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// paddedReader aligns every record with the header width so rows with
// missing trailing columns decode with empty values.
type paddedReader struct {
	r     csvutil.Reader
	width int
}

func (p *paddedReader) Read() ([]string, error) {
	record, err := p.r.Read()
	if err != nil {
		return nil, err
	}

	switch {
	case len(record) < p.width:
		record = append(record, make([]string, p.width-len(record))...)
	case len(record) > p.width:
		record = record[:p.width]
	}

	return record, nil
}
