// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/soundskim"
	"github.com/ik5/soundskim/sound"
)

var flagFingerprintFrames int

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <file>...",
	Short: "Print each file's leading-frames fingerprint",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFingerprint,
}

func init() {
	fingerprintCmd.Flags().IntVar(&flagFingerprintFrames, "frames",
		sound.DefaultFingerprintFrames, "how many leading frames to digest")
	rootCmd.AddCommand(fingerprintCmd)
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	reg := soundskim.DefaultRegistry()
	sums := make([]string, len(args))
	errs := make([]error, len(args))

	var group errgroup.Group
	group.SetLimit(jobs())
	for i, path := range args {
		i, path := i, path
		group.Go(func() error {
			idx, err := scanOne(ctx, reg, path)
			if err != nil {
				errs[i] = err
				return nil
			}
			sums[i], errs[i] = sound.FingerprintFrames(idx, path, flagFingerprintFrames)
			return nil
		})
	}
	_ = group.Wait()

	failed := 0
	for i, path := range args {
		if errs[i] != nil {
			logger.Error("fingerprint failed", zap.String("path", path), zap.Error(errs[i]))
			failed++
			continue
		}

		fmt.Printf("%s  %s\n", sums[i], path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}

	return nil
}
