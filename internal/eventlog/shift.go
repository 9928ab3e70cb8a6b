package eventlog

import (
	"math/rand/v2"
	"time"
)

// Bounds of the random shift. They are absolute durations, not calendar
// months or years.
const (
	MinRandomShift = 30 * 24 * time.Hour
	MaxRandomShift = 730 * 24 * time.Hour
)

// Offset describes how Shift moves the timestamps of a table. It is
// implemented by DurationOffset, AnchorOffset and RandomOffset.
type Offset interface {
	// apply returns the shifted records and the duration every record moved.
	apply(records []EventRecord) ([]EventRecord, time.Duration)
}

// Shift moves every timestamp according to o and returns the duration each
// record moved. Order and uniqueness are preserved since every offset is a
// strictly increasing mapping. Repeated calls compose.
func (t *Table) Shift(o Offset) time.Duration {
	records, moved := o.apply(t.records)
	t.records = records
	return moved
}

// DurationOffset adds a fixed span to every timestamp.
type DurationOffset time.Duration

func (d DurationOffset) apply(records []EventRecord) ([]EventRecord, time.Duration) {
	return Shifted(records, time.Duration(d)), time.Duration(d)
}

// AnchorOffset moves the earliest record to the given time and keeps the
// spacing of all others. On an empty table it does nothing.
type AnchorOffset time.Time

func (a AnchorOffset) apply(records []EventRecord) ([]EventRecord, time.Duration) {
	if len(records) == 0 {
		return records, 0
	}
	anchor := time.Time(a)
	return Anchored(records, anchor), anchor.Sub(records[0].Time)
}

// RandSource yields floats uniformly distributed in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Float64() float64
}

// globalRand is the runtime-seeded math/rand/v2 generator.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// RandomOffset shifts the table into the past by a duration drawn uniformly
// from [Min, Max], rounded to the whole second. Zero Min/Max mean
// MinRandomShift/MaxRandomShift; a nil Rand uses the global generator.
type RandomOffset struct {
	Min, Max time.Duration
	Rand     RandSource
}

// Draw picks the (negative) duration a shift would apply.
func (r RandomOffset) Draw() time.Duration {
	lo, hi := r.Min, r.Max
	if lo <= 0 {
		lo = MinRandomShift
	}
	if hi <= 0 {
		hi = MaxRandomShift
	}
	if hi < lo {
		lo, hi = hi, lo
	}

	src := r.Rand
	if src == nil {
		src = globalRand{}
	}

	magnitude := float64(lo) + src.Float64()*float64(hi-lo)
	return -time.Duration(magnitude).Round(time.Second)
}

func (r RandomOffset) apply(records []EventRecord) ([]EventRecord, time.Duration) {
	return DurationOffset(r.Draw()).apply(records)
}

// Shifted returns a copy of records with d added to every timestamp.
func Shifted(records []EventRecord, d time.Duration) []EventRecord {
	out := make([]EventRecord, len(records))
	for i, rec := range records {
		rec.Time = rec.Time.Add(d)
		out[i] = rec
	}
	return out
}

// Anchored returns a copy of records where the first record sits at anchor
// and record i sits at anchor + (records[i] - records[0]). records must be
// sorted; an empty input has no earliest record and yields an empty result.
func Anchored(records []EventRecord, anchor time.Time) []EventRecord {
	out := make([]EventRecord, len(records))
	if len(records) == 0 {
		return out
	}
	start := records[0].Time
	for i, rec := range records {
		rec.Time = anchor.Add(rec.Time.Sub(start))
		out[i] = rec
	}
	return out
}
