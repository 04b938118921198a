// Package signalio reads and writes 1-D signals as CSV columns.
package signalio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Errors returned by CSV readers.
var (
	ErrColumnOutOfRange = errors.New("signalio: column index out of range")
	ErrEmptyInput       = errors.New("signalio: no numeric rows in input")
)

// ReadColumn reads one column of a CSV stream as a float64 signal.
//
// A first record whose selected field does not parse as a number is treated
// as a header and skipped; any later unparsable field is an error.
func ReadColumn(r io.Reader, col int) ([]float64, error) {
	if col < 0 {
		return nil, fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var out []float64
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("signalio: row %d: %w", row, err)
		}
		row++

		if col >= len(record) {
			return nil, fmt.Errorf("%w: %d of %d fields in row %d", ErrColumnOutOfRange, col, len(record), row)
		}

		v, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			if row == 1 {
				continue // header
			}
			return nil, fmt.Errorf("signalio: row %d: %w", row, err)
		}
		out = append(out, v)
	}

	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	return out, nil
}

// WriteColumn writes x as a single-column CSV stream.
func WriteColumn(w io.Writer, x []float64) error {
	cw := csv.NewWriter(w)
	for _, v := range x {
		if err := cw.Write([]string{strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
			return fmt.Errorf("signalio: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("signalio: %w", err)
	}
	return nil
}
