package eventlog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "bad time",
			err:      &ParseError{Line: 4, Column: "time", Value: "nope", Err: errors.New("bad")},
			wantCode: "LOG001",
		},
		{
			name:     "duplicate",
			err:      &DuplicateKeyError{Time: time.Unix(0, 0), FirstLine: 1, Line: 2},
			wantCode: "LOG002",
		},
		{
			name:     "column count",
			err:      &ParseError{Line: 1, Column: "row", Err: fmt.Errorf("%w: got 2, want 3", ErrFieldCount)},
			wantCode: "LOG003",
		},
		{
			name:     "wrapped parse error",
			err:      fmt.Errorf("load x.csv: %w", &ParseError{Line: 1, Column: "time", Err: errors.New("bad")}),
			wantCode: "LOG001",
		},
		{
			name:     "open failure",
			err:      &IOError{Op: "open", Path: "x.csv", Err: os.ErrNotExist},
			wantCode: "IO001",
		},
		{
			name:     "write failure",
			err:      fmt.Errorf("save y.csv: %w", &IOError{Op: "write", Err: errors.New("disk full")}),
			wantCode: "IO002",
		},
		{
			name:     "invalid offset",
			err:      fmt.Errorf("%w: %q", ErrInvalidOffset, "soon"),
			wantCode: "SHF001",
		},
		{
			name:     "config",
			err:      errors.New("config validation: LOG_LEVEL bad"),
			wantCode: "CFG001",
		},
		{
			name:     "unknown",
			err:      errors.New("something else"),
			wantCode: "ERR000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := MapError(tt.err)
			if msg.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, msg.Code, tt.wantCode)
			}
			if msg.Message == "" || msg.Action == "" {
				t.Errorf("MapError(%v) = %+v, want message and action", tt.err, msg)
			}
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	if msg := MapError(nil); msg != (UserMessage{}) {
		t.Errorf("MapError(nil) = %+v, want zero value", msg)
	}
	if s := FormatUserError(nil); s != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", s)
	}
}

func TestFormatUserError(t *testing.T) {
	err := &DuplicateKeyError{Time: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), FirstLine: 1, Line: 3}
	got := FormatUserError(err)

	for _, want := range []string{"(Code: LOG002)", "Remove or adjust", "line 3", "2021-01-01 00:00:00"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatUserError() = %q, missing %q", got, want)
		}
	}
}

func TestIsUserFacing(t *testing.T) {
	if IsUserFacing(nil) {
		t.Error("IsUserFacing(nil) = true")
	}
	if !IsUserFacing(&IOError{Op: "read", Err: errors.New("x")}) {
		t.Error("IsUserFacing(IOError) = false")
	}
	if IsUserFacing(errors.New("mystery")) {
		t.Error("IsUserFacing(unknown) = true")
	}
}
