package eventlog

// error_messages.go maps errors to user-friendly messages with codes for
// support reference. Codes are grouped by category:
//
// # Log Errors (LOG001-LOG099)
//
//	LOG001 - Invalid row: a time value could not be parsed
//	         Action: Check the time column reads like 2020/4/1(Wed) 09:15:42
//
//	LOG002 - Duplicate timestamp: two events share the same second
//	         Action: Remove or adjust one of the rows
//
//	LOG003 - Column count: a row does not have exactly three columns
//	         Action: Quote tags that contain commas
//
// # File Errors (IO001-IO099)
//
//	IO001 - Unreadable source: the event log could not be opened or read
//	IO002 - Unwritable destination: the output could not be created or written
//
// # Shift Errors (SHF001-SHF099)
//
//	SHF001 - Invalid offset: the shift text is not "random", a duration or a timestamp
//
// # Configuration Errors (CFG001-CFG099)
//
//	CFG001 - Configuration: a setting failed validation

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage is a user-facing description of an error.
type UserMessage struct {
	Message string // What happened
	Action  string // What the user can do about it
	Code    string // Support reference, e.g. "LOG002"
}

// errorMatcher picks a message for errors it recognizes.
type errorMatcher struct {
	match func(err error) bool
	msg   UserMessage
}

func is(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

func contains(pattern string) func(error) bool {
	return func(err error) bool { return strings.Contains(strings.ToLower(err.Error()), pattern) }
}

func ioOp(ops ...string) func(error) bool {
	return func(err error) bool {
		var ioErr *IOError
		if !errors.As(err, &ioErr) {
			return false
		}
		for _, op := range ops {
			if ioErr.Op == op {
				return true
			}
		}
		return false
	}
}

// errorMatchers is ordered: more specific entries come first.
var errorMatchers = []errorMatcher{
	// =========================================================================
	// Log Errors (LOG001-LOG003)
	// =========================================================================
	{
		match: is(ErrFieldCount),
		msg: UserMessage{
			Message: "A row does not have exactly three columns",
			Action:  "Each line needs tag number, time and tag; quote tags that contain commas",
			Code:    "LOG003",
		},
	},
	{
		match: is(ErrDuplicateKey),
		msg: UserMessage{
			Message: "Two events have the same timestamp",
			Action:  "Remove or adjust one of the duplicated rows",
			Code:    "LOG002",
		},
	},
	{
		match: is(ErrParse),
		msg: UserMessage{
			Message: "A row could not be read",
			Action:  "Check the time column reads like 2020/4/1(Wed) 09:15:42",
			Code:    "LOG001",
		},
	},

	// =========================================================================
	// File Errors (IO001-IO002)
	// =========================================================================
	{
		match: ioOp("open", "read"),
		msg: UserMessage{
			Message: "The event log could not be read",
			Action:  "Check the file path and permissions",
			Code:    "IO001",
		},
	},
	{
		match: ioOp("create", "write", "close"),
		msg: UserMessage{
			Message: "The output file could not be written",
			Action:  "Check the output directory exists and is writable",
			Code:    "IO002",
		},
	},

	// =========================================================================
	// Shift and Configuration Errors
	// =========================================================================
	{
		match: is(ErrInvalidOffset),
		msg: UserMessage{
			Message: "The shift value was not understood",
			Action:  `Use "random", a duration such as -36h or 30d, or a timestamp`,
			Code:    "SHF001",
		},
	},
	{
		match: contains("config"),
		msg: UserMessage{
			Message: "The configuration is invalid",
			Action:  "Check environment variables and the config file",
			Code:    "CFG001",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Run again with --log-level debug for details",
	Code:    "ERR000",
}

// MapError converts an error to a user-friendly message. Typed errors are
// matched through errors.Is/As, so wrapping with %w keeps the mapping.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	for _, m := range errorMatchers {
		if m.match(err) {
			return m.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders "Message (Code: XXX). Action" followed by the
// underlying error, which names the offending row or value.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}
	msg := MapError(err)
	return fmt.Sprintf("%s (Code: %s). %s\n  %v", msg.Message, msg.Code, msg.Action, err)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
