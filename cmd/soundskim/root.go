// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/soundskim/sound"
)

var version = "0.1.0"

var (
	flagLogLevel string
	flagLogFile  string
	flagJobs     int
	flagProgress bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "soundskim",
	Short: "Cheaply scan sound files into frame indexes",
	Long: `soundskim walks a sound file's container structure once and records
per-frame offsets, lengths and gains without decoding the whole file.
The subcommands report on the resulting index: stream metadata, word
boundaries suggested by the gain profile, and content fingerprints.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(flagLogLevel, flagLogFile)
	},
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	loadEnv()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagLogLevel, "log-level", envOr("SOUNDSKIM_LOG_LEVEL", "info"),
		"log level (debug, info, warn, error)")
	flags.StringVar(&flagLogFile, "log-file", envOr("SOUNDSKIM_LOG_FILE", ""),
		"also append JSON logs to this rotated file")
	flags.IntVar(&flagJobs, "jobs", envOrInt("SOUNDSKIM_JOBS", 4),
		"how many files to scan concurrently")
	flags.BoolVar(&flagProgress, "progress", false,
		"print scan progress to stderr")
}

// jobs clamps --jobs to a usable worker count.
func jobs() int {
	if flagJobs < 1 {
		return 1
	}
	return flagJobs
}

// scanOne builds the index for a single file, honoring cancellation
// through ctx and, when --progress is set, drawing a percentage meter
// on stderr.
func scanOne(ctx context.Context, reg *sound.Registry, path string) (*sound.Index, error) {
	progress := sound.ContextProgress(ctx)
	if flagProgress {
		inner := progress
		progress = func(fraction float64) bool {
			fmt.Fprintf(os.Stderr, "\r%s: %3.0f%%", path, fraction*100)
			if fraction >= 1 {
				fmt.Fprintln(os.Stderr)
			}
			return inner(fraction)
		}
	}

	logger.Debug("scanning", zap.String("path", path))

	idx, err := reg.Build(path, progress)
	if err != nil {
		return nil, err
	}

	logger.Debug("scanned",
		zap.String("path", path),
		zap.Int("frames", idx.NumFrames()),
		zap.Duration("duration", idx.Duration()),
	)

	return idx, nil
}
