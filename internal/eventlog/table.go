package eventlog

import (
	"slices"
	"time"
)

// EventRecord is one row of the event log.
type EventRecord struct {
	TagNumber string    // Tag category as written by the app, kept verbatim
	Time      time.Time // UTC wall clock, second resolution
	Tag       string    // Free-text label, e.g. "Running"
}

// Table is an event log indexed by time. Records are sorted ascending and
// timestamps are unique; Read establishes both and Shift preserves them.
//
// A Table is not safe for concurrent mutation.
type Table struct {
	records []EventRecord
}

// NewTable builds a Table from records, sorting them by time. It returns a
// *DuplicateKeyError if two records share a timestamp. Line numbers in the
// error refer to positions in records, 1-indexed.
func NewTable(records []EventRecord) (*Table, error) {
	lines := make([]int, len(records))
	for i := range lines {
		lines[i] = i + 1
	}
	return newTable(slices.Clone(records), lines)
}

// newTable takes ownership of records. lines[i] is the source line of
// records[i] and is only used for error reporting.
func newTable(records []EventRecord, lines []int) (*Table, error) {
	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return records[a].Time.Compare(records[b].Time)
	})

	sorted := make([]EventRecord, len(records))
	for i, idx := range order {
		sorted[i] = records[idx]
		if i > 0 && sorted[i].Time.Equal(sorted[i-1].Time) {
			first, second := lines[order[i-1]], lines[idx]
			if first > second {
				first, second = second, first
			}
			return nil, &DuplicateKeyError{Time: sorted[i].Time, FirstLine: first, Line: second}
		}
	}

	return &Table{records: sorted}, nil
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Records returns a copy of the records in time order.
func (t *Table) Records() []EventRecord { return slices.Clone(t.records) }

// At returns the i-th record in time order.
func (t *Table) At(i int) EventRecord { return t.records[i] }

// Times returns the timestamps in order.
func (t *Table) Times() []time.Time {
	out := make([]time.Time, len(t.records))
	for i, r := range t.records {
		out[i] = r.Time
	}
	return out
}

// Start returns the earliest timestamp. ok is false for an empty table.
func (t *Table) Start() (start time.Time, ok bool) {
	if len(t.records) == 0 {
		return time.Time{}, false
	}
	return t.records[0].Time, true
}

// End returns the latest timestamp. ok is false for an empty table.
func (t *Table) End() (end time.Time, ok bool) {
	if len(t.records) == 0 {
		return time.Time{}, false
	}
	return t.records[len(t.records)-1].Time, true
}

// Span returns the time between the first and last record.
func (t *Table) Span() time.Duration {
	start, ok := t.Start()
	if !ok {
		return 0
	}
	end, _ := t.End()
	return end.Sub(start)
}
