package eventlog

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// RandomKeyword selects RandomOffset in ParseOffset.
const RandomKeyword = "random"

// dayRegex matches a leading day count such as "30d", "-1.5 days", "2 day".
// Whatever follows is handed to time.ParseDuration.
var dayRegex = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?)\s*(?:days?|d)(.*)$`)

// anchorLayouts are tried after the app's own time format.
var anchorLayouts = []string{
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02 15:04:05",
	time.DateOnly,
}

// ParseOffset interprets user text as an Offset:
//
//	""  or "random"           RandomOffset{}
//	"-36h", "30d", "1 day 2h" DurationOffset
//	"2021-01-01 08:00:00"     AnchorOffset (also RFC 3339, app layout, date only)
//
// Anchors are truncated to the second. A zone in RFC 3339 input is dropped
// and its wall clock kept, matching the zone-less timestamps in the log.
func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, RandomKeyword) {
		return RandomOffset{}, nil
	}

	if d, err := ParseDuration(s); err == nil {
		return DurationOffset(d), nil
	}

	if t, err := ParseTime(s); err == nil {
		return AnchorOffset(t), nil
	}
	for _, layout := range anchorLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
			return AnchorOffset(wall), nil
		}
	}

	return nil, fmt.Errorf("%w: %q (want %q, a duration like -36h or 30d, or a timestamp)",
		ErrInvalidOffset, s, RandomKeyword)
}

// ParseDuration extends time.ParseDuration with a leading day count:
// "30d", "30 days", "-1d12h". The sign applies to the whole value.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	m := dayRegex.FindStringSubmatch(s)
	if m == nil {
		return time.ParseDuration(s)
	}

	days, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid day count %q: %w", m[2], err)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	ns := days * float64(24*time.Hour)
	if ns >= float64(math.MaxInt64) {
		return 0, fmt.Errorf("invalid duration %q: overflow", s)
	}
	d := time.Duration(ns)

	if rest := strings.TrimSpace(m[3]); rest != "" {
		if rest[0] == '+' || rest[0] == '-' {
			return 0, fmt.Errorf("invalid duration %q: sign must lead", s)
		}
		extra, err := time.ParseDuration(strings.ReplaceAll(rest, " ", ""))
		if err != nil {
			return 0, err
		}
		if extra > time.Duration(math.MaxInt64)-d {
			return 0, fmt.Errorf("invalid duration %q: overflow", s)
		}
		d += extra
	}

	if m[1] == "-" {
		d = -d
	}
	return d, nil
}
