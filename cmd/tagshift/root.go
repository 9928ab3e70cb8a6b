package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/JonMunkholm/tagshift/internal/config"
	"github.com/JonMunkholm/tagshift/internal/eventlog"
	"github.com/JonMunkholm/tagshift/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// stdioPath selects stdin for input and stdout for output.
const stdioPath = "-"

type rootOptions struct {
	shift      string
	output     string
	configPath string
	logLevel   string
	logFormat  string
	seed       uint64
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tagshift [flags] <input.csv>",
		Short: "Shift the timestamps of a TimeStamp app event log",
		Long: `tagshift reads the CSV exported by the TimeStamp app, moves every
timestamp by the same offset and writes it back in the format the app imports.

--shift accepts:
  random                  a random 30-730 day shift into the past (default)
  -36h, 30d, "-2 days 3h" a fixed duration
  "2021-01-01 08:00:00"   a new time for the earliest event; spacing is kept

Use "-" as input to read stdin. Without --output the result goes to stdout.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.shift, "shift", "s", "", `offset: "random", a duration or a timestamp (default from SHIFT_DEFAULT, else random)`)
	flags.StringVarP(&opts.output, "output", "o", stdioPath, "output file, - for stdout")
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json (overrides LOG_FORMAT)")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for --shift random, for reproducible output")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions, input string) error {
	// A .env file only fills variables the environment does not already set.
	envErr := godotenv.Load()

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}

	level, format := cfg.Logging.Level, cfg.Logging.Format
	if cmd.Flags().Changed("log-level") {
		level = opts.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		format = opts.logFormat
	}
	logging.SetupWriter(cmd.ErrOrStderr(), level, format)

	ctx, _ := logging.WithRunID(cmd.Context())
	log := logging.WithFields(ctx, "input", input)
	if envErr == nil {
		log.Info("loaded .env file")
	} else {
		log.Debug("no .env file found, using environment variables")
	}
	log.Debug("configuration loaded", "config", cfg.String())

	layout, err := eventlog.NewLayout(cfg.Timestamp.Weekdays, cfg.Timestamp.Separator)
	if err != nil {
		return fmt.Errorf("config timestamp layout: %w", err)
	}

	shiftText := cfg.Shift.Default
	if cmd.Flags().Changed("shift") {
		shiftText = opts.shift
	}
	offset, err := eventlog.ParseOffset(shiftText)
	if err != nil {
		return err
	}
	if r, ok := offset.(eventlog.RandomOffset); ok {
		r.Min, r.Max = cfg.Shift.RandomMin, cfg.Shift.RandomMax
		if cmd.Flags().Changed("seed") {
			r.Rand = rand.New(rand.NewPCG(opts.seed, opts.seed))
		}
		offset = r
	}

	ioOpts := []eventlog.Option{eventlog.WithLayout(layout), eventlog.WithLogger(log)}

	var tbl *eventlog.Table
	if input == stdioPath {
		tbl, err = eventlog.Read(cmd.InOrStdin(), ioOpts...)
	} else {
		tbl, err = eventlog.Load(input, ioOpts...)
	}
	if err != nil {
		return err
	}

	moved := tbl.Shift(offset)

	if opts.output == stdioPath || opts.output == "" {
		err = tbl.Write(cmd.OutOrStdout(), ioOpts...)
	} else {
		err = tbl.Save(opts.output, ioOpts...)
	}
	if err != nil {
		return err
	}

	log.Info("event log shifted",
		"rows", tbl.Len(),
		"shift", moved.String(),
		"output", opts.output,
	)
	return nil
}
