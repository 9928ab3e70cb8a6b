package eventlog

import (
	"errors"
	"fmt"
	"time"
)

// Sentinels for errors.Is. Each typed error below matches exactly one.
var (
	ErrParse         = errors.New("invalid event row")
	ErrDuplicateKey  = errors.New("duplicate timestamp")
	ErrIO            = errors.New("event log i/o")
	ErrInvalidOffset = errors.New("invalid shift offset")
	ErrFieldCount    = errors.New("wrong number of columns")
)

// ParseError reports a row that could not be turned into an EventRecord.
// Line is 1-indexed as shown in a text editor.
type ParseError struct {
	Line   int
	Column string // "time", "row", ...
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("line %d: invalid %s: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// DuplicateKeyError reports two rows carrying the same timestamp.
type DuplicateKeyError struct {
	Time      time.Time
	FirstLine int
	Line      int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("line %d: duplicate timestamp %s (first seen on line %d)",
		e.Line, e.Time.Format(time.DateTime), e.FirstLine)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// IOError wraps a failure to open, read, create or write an event log.
type IOError struct {
	Op   string // "open", "read", "create", "write", "close"
	Path string // empty for plain readers and writers
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s event log: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s event log %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
