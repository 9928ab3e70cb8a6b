package eventlog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleLog is out of order on purpose and mixes separators and weekday case.
const sampleLog = "2,2020/4/2(Thu) 18:30:00,Walking\n" +
	"3,2020/4/1(Wed)　09:15:42,Running\n" +
	"1,2020/4/1(wed) 12:00:00,\"Lunch, with team\"\n"

func TestRead(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleLog))
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	want := []EventRecord{
		{TagNumber: "3", Time: time.Date(2020, 4, 1, 9, 15, 42, 0, time.UTC), Tag: "Running"},
		{TagNumber: "1", Time: time.Date(2020, 4, 1, 12, 0, 0, 0, time.UTC), Tag: "Lunch, with team"},
		{TagNumber: "2", Time: time.Date(2020, 4, 2, 18, 30, 0, 0, time.UTC), Tag: "Walking"},
	}
	assert.Equal(t, want, tbl.Records())
}

func TestRead_SortedStrictlyIncreasing(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleLog))
	require.NoError(t, err)

	times := tbl.Times()
	for i := 1; i < len(times); i++ {
		assert.True(t, times[i].After(times[i-1]), "times[%d]=%v not after times[%d]=%v", i, times[i], i-1, times[i-1])
	}
}

func TestRead_KeepsFieldsVerbatim(t *testing.T) {
	input := "007,2020/4/1(Wed) 09:15:42,  padded tag \n" +
		"x-1,2020/4/1(Wed) 09:15:43,\n"

	tbl, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "007", tbl.At(0).TagNumber)
	assert.Equal(t, "  padded tag ", tbl.At(0).Tag)
	assert.Equal(t, "x-1", tbl.At(1).TagNumber)
	assert.Equal(t, "", tbl.At(1).Tag)
}

func TestRead_SkipsBOMAndBlankLines(t *testing.T) {
	input := "\xEF\xBB\xBF3,2020/4/1(Wed) 09:15:42,Running\n\n\n4,2020/4/1(Wed) 10:00:00,Rest\n"

	tbl, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "3", tbl.At(0).TagNumber)
}

func TestRead_Empty(t *testing.T) {
	tbl, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	_, ok := tbl.Start()
	assert.False(t, ok)
}

func TestRead_ParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLine   int
		wantColumn string
		wantCount  bool
	}{
		{
			name:       "too few columns",
			input:      "3,2020/4/1(Wed) 09:15:42,Running\n4,2020/4/1(Wed) 10:00:00\n",
			wantLine:   2,
			wantColumn: "row",
			wantCount:  true,
		},
		{
			name:       "too many columns",
			input:      "3,2020/4/1(Wed) 09:15:42,Running,extra\n",
			wantLine:   1,
			wantColumn: "row",
			wantCount:  true,
		},
		{
			name:       "bad timestamp",
			input:      "3,2020/4/1(Wed) 09:15:42,Running\n\n4,yesterday,Rest\n",
			wantLine:   3,
			wantColumn: "time",
		},
		{
			name:       "bare quote",
			input:      "3,2020/4/1(Wed) 09:15:42,Run\"ning\n",
			wantLine:   1,
			wantColumn: "row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, tbl, "no partial table on failure")

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.ErrorIs(t, err, ErrParse)
			assert.Equal(t, tt.wantLine, pe.Line)
			assert.Equal(t, tt.wantColumn, pe.Column)
			assert.Equal(t, tt.wantCount, errors.Is(err, ErrFieldCount))
			assert.Contains(t, err.Error(), "line ")
		})
	}
}

func TestRead_BadTimestampMessageNamesValue(t *testing.T) {
	_, err := Read(strings.NewReader("4,2020/4/31(Thu) 10:00:00,Rest\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"2020/4/31(Thu) 10:00:00"`)
	assert.Contains(t, err.Error(), "line 1")
}

func TestRead_DuplicateTimestamp(t *testing.T) {
	input := "1,2021/1/1(fri) 00:00:00,First\n" +
		"2,2021/1/1(Fri) 00:00:01,Second\n" +
		"3,2021/1/1(Fri)　00:00:00,Third\n"

	tbl, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, tbl)

	var de *DuplicateKeyError
	require.ErrorAs(t, err, &de)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NotErrorIs(t, err, ErrParse)
	assert.Equal(t, 1, de.FirstLine)
	assert.Equal(t, 3, de.Line)
	assert.True(t, de.Time.Equal(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestRead_ReaderFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := Read(iotest.ErrReader(boom))
	require.Error(t, err)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrIO)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timestamps.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o644))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := Load(path)
	require.Error(t, err)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ParseErrorMentionsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,not a time,x\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.ErrorIs(t, err, ErrParse)
}
