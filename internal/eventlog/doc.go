// Package eventlog reads, time-shifts and writes the CSV event log exported
// by the TimeStamp tagging app.
//
// The package has no CLI or storage dependencies and can be used by the
// tagshift command, other tools, or tests without modification.
//
// # File Format
//
// Each line is one event with exactly three columns and no header:
//
//	tag_number,time,tag
//	3,2020/4/1(wed)　09:15:42,Running
//
// The time column is "YYYY/M/D(Weekday) HH:MM:SS". On read the weekday is
// treated as layout text and any whitespace (ASCII or U+3000) may separate
// the date from the clock. On write the weekday is derived from the date and
// lowercased, and the separator is U+3000, which is what the app expects.
//
// # Table
//
// A [Table] holds [EventRecord] values sorted by time with unique
// timestamps. Both properties are checked once at load and preserved by
// every [Offset]:
//
//	tbl, err := eventlog.Load("timestamps.csv")
//	if err != nil {
//	    return err
//	}
//	tbl.Shift(eventlog.RandomOffset{})
//	return tbl.Save("anonymized.csv")
//
// # Shifting
//
// Three offsets are supported:
//
//   - [DurationOffset]: add a fixed span to every timestamp.
//   - [AnchorOffset]: move the earliest record to a given time, keeping spacing.
//   - [RandomOffset]: a uniform draw between 30 and 730 days into the past,
//     applied as a duration offset.
//
// [ParseOffset] turns user text ("random", "-36h", "30 days", a timestamp)
// into one of these.
//
// # Error Handling
//
// Failures are reported as [*ParseError], [*DuplicateKeyError] or
// [*IOError]. [MapError] converts any of them into a coded [UserMessage]:
//
//   - LOG001-LOG003: row and timestamp problems
//   - IO001-IO002: unreadable source, unwritable destination
//   - SHF001: offset text not understood
//   - CFG001: configuration
package eventlog
