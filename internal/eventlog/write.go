package eventlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Write serializes the table to w in time order, one row per record, with
// no header. Timestamps use the layout from WithLayout (DefaultLayout
// otherwise).
func (t *Table) Write(w io.Writer, opts ...Option) error {
	o := buildOptions(opts)

	counter := NewCountingWriter(w)
	cw := csv.NewWriter(counter)
	lower := cases.Lower(language.Und)

	row := make([]string, columnCount)
	for _, rec := range t.records {
		row[0] = rec.TagNumber
		row[1] = o.layout.format(rec.Time, lower)
		row[2] = rec.Tag
		if err := cw.Write(row); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return &IOError{Op: "write", Err: err}
	}

	o.logger.Debug("event log written",
		"rows", len(t.records),
		"bytes", counter.BytesWritten,
	)
	return nil
}

// Save writes the table to path, creating or truncating the file. A failed
// save may leave a partial file behind.
func (t *Table) Save(path string, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if err := t.Write(f, opts...); err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
		}
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
