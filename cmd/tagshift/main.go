// Command tagshift loads a TimeStamp app export, shifts every timestamp and
// writes the result in the same format.
//
//	tagshift --shift random --output anon.csv timestamps.csv
//	tagshift --shift -36h timestamps.csv > shifted.csv
//	tagshift --shift "2021-01-01 08:00:00" timestamps.csv
package main

import (
	"fmt"
	"os"

	"github.com/JonMunkholm/tagshift/internal/eventlog"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), eventlog.FormatUserError(err))
		os.Exit(1)
	}
}
