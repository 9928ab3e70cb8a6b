package eventlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// columnCount is the fixed row width: tag_number, time, tag.
const columnCount = 3

// Read parses an event log from r. The whole input is consumed and either a
// complete, sorted Table or an error is returned, never both.
func Read(r io.Reader, opts ...Option) (*Table, error) {
	o := buildOptions(opts)

	src, counter := wrapForReading(r)
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = columnCount

	var (
		records []EventRecord
		lines   []int
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, convertReadError(row, err)
		}

		line, _ := cr.FieldPos(1)
		rec, err := parseRow(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		lines = append(lines, line)
	}

	tbl, err := newTable(records, lines)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("event log read",
		"rows", tbl.Len(),
		"bytes", counter.BytesRead,
	)
	return tbl, nil
}

// Load opens path and reads it with Read.
func Load(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	tbl, err := Read(f, opts...)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = path
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tbl, nil
}

// parseRow converts one CSV row. Only the time column is interpreted.
func parseRow(row []string, line int) (EventRecord, error) {
	t, err := ParseTime(row[1])
	if err != nil {
		return EventRecord{}, &ParseError{Line: line, Column: "time", Value: row[1], Err: err}
	}
	return EventRecord{TagNumber: row[0], Time: t, Tag: row[2]}, nil
}

// convertReadError maps encoding/csv failures onto the package taxonomy.
// Anything that is not a csv.ParseError came from the underlying reader.
func convertReadError(row []string, err error) error {
	var csvErr *csv.ParseError
	if !errors.As(err, &csvErr) {
		return &IOError{Op: "read", Err: err}
	}

	if errors.Is(csvErr.Err, csv.ErrFieldCount) {
		return &ParseError{
			Line:   csvErr.StartLine,
			Column: "row",
			Value:  strings.Join(row, ","),
			Err:    fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(row), columnCount),
		}
	}
	return &ParseError{Line: csvErr.StartLine, Column: "row", Err: csvErr.Err}
}
