// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/soundskim"
	"github.com/ik5/soundskim/sound"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>...",
	Short: "Scan files and report their frame index metadata",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	reg := soundskim.DefaultRegistry()
	indexes := make([]*sound.Index, len(args))
	errs := make([]error, len(args))

	var group errgroup.Group
	group.SetLimit(jobs())
	for i, path := range args {
		i, path := i, path
		group.Go(func() error {
			indexes[i], errs[i] = scanOne(ctx, reg, path)
			return nil
		})
	}
	_ = group.Wait()

	failed := 0
	for i, path := range args {
		if errs[i] != nil {
			logger.Error("scan failed", zap.String("path", path), zap.Error(errs[i]))
			failed++
			continue
		}

		printIndex(path, indexes[i])
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}

	return nil
}

func printIndex(path string, idx *sound.Index) {
	frameDur := time.Duration(idx.SamplesPerFrame()) * time.Second /
		time.Duration(idx.SampleRate())

	fmt.Printf("%s:\n", path)
	fmt.Printf("  filetype      %s\n", idx.Filetype())
	fmt.Printf("  sample rate   %d Hz\n", idx.SampleRate())
	fmt.Printf("  channels      %d\n", idx.Channels())
	fmt.Printf("  frames        %d (%s each)\n", idx.NumFrames(), frameDur)
	fmt.Printf("  duration      %s\n", idx.Duration())
	fmt.Printf("  file size     %d bytes\n", idx.FileSizeBytes())
	fmt.Printf("  avg bitrate   %d kbps\n", idx.AvgBitrateKbps())

	if gain, ok, err := sound.MaxGain(idx, 0, idx.NumFrames()); err == nil && ok {
		fmt.Printf("  max gain      %d\n", gain)
	}
	if gain, ok, err := sound.AverageGain(idx, 0, idx.NumFrames()); err == nil && ok {
		fmt.Printf("  average gain  %d\n", gain)
	}

	if idx.Seekable() {
		fmt.Printf("  seekable      yes\n")
	} else {
		fmt.Printf("  seekable      no\n")
	}
}
