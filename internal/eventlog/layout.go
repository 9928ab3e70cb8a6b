package eventlog

// layout.go handles the time column of the TimeStamp export:
//
//	2020/4/1(Wed) 09:15:42     as found in app exports
//	2020/4/1(wed)　09:15:42    as written back (U+3000 separator)
//
// Reading is lenient about the weekday text and the separator; writing is
// fixed so the app accepts the file again.

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FullWidthSpace separates date and clock in files the app imports.
const FullWidthSpace = "　"

// timeRegex matches the time column. The year is written without padding,
// so years below 1000 have fewer digits. \p{Zs} covers U+3000 and other
// space separators that RE2's \s does not.
var timeRegex = regexp.MustCompile(
	`^(\d{1,4})/(\d{1,2})/(\d{1,2})\((\p{L}+)\)[\s\p{Zs}]+(\d{1,2}):(\d{2}):(\d{2})$`,
)

// Layout controls how timestamps are rendered on write.
type Layout struct {
	// Weekdays holds the abbreviation for each day, indexed by time.Weekday.
	// Names are lowercased when written.
	Weekdays [7]string

	// Separator sits between the closing parenthesis and the clock.
	Separator string
}

// DefaultLayout renders English abbreviations and a full-width space.
var DefaultLayout = Layout{
	Weekdays:  [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Separator: FullWidthSpace,
}

// NewLayout builds a Layout from configuration values. An empty weekdays
// list or separator keeps the default for that part.
func NewLayout(weekdays []string, separator string) (Layout, error) {
	l := DefaultLayout
	if len(weekdays) > 0 {
		if len(weekdays) != 7 {
			return Layout{}, fmt.Errorf("weekday names: need 7 (Sunday first), got %d", len(weekdays))
		}
		for i, name := range weekdays {
			name = strings.TrimSpace(name)
			if name == "" {
				return Layout{}, fmt.Errorf("weekday names: entry %d is empty", i)
			}
			l.Weekdays[i] = name
		}
	}
	if separator != "" {
		l.Separator = separator
	}
	return l, nil
}

// Format renders t as "YYYY/M/D(www)<sep>HH:MM:SS" with the weekday
// lowercased.
func (l Layout) Format(t time.Time) string {
	return l.format(t, cases.Lower(language.Und))
}

// format lets a writer reuse one Caser across rows.
func (l Layout) format(t time.Time, lower cases.Caser) string {
	sep := l.Separator
	if sep == "" {
		sep = FullWidthSpace
	}
	wd := lower.String(l.Weekdays[t.Weekday()])
	return fmt.Sprintf("%d/%d/%d(%s)%s%02d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), wd, sep, t.Hour(), t.Minute(), t.Second())
}

// ParseTime parses the time column. The weekday text is not checked
// against the date. The result is in UTC.
func ParseTime(s string) (time.Time, error) {
	m := timeRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, errors.New("expected YYYY/M/D(Day) HH:MM:SS")
	}

	// The regex guarantees digits, so Atoi cannot fail here.
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[5])
	minute, _ := strconv.Atoi(m[6])
	sec, _ := strconv.Atoi(m[7])

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", month)
	}
	if hour > 23 || minute > 59 || sec > 59 {
		return time.Time{}, fmt.Errorf("clock %02d:%02d:%02d out of range", hour, minute, sec)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC)
	// time.Date normalizes Feb 30 into March; reject instead.
	if day < 1 || t.Day() != day {
		return time.Time{}, fmt.Errorf("day %d out of range for %04d/%d", day, year, month)
	}
	return t, nil
}
