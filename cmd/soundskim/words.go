// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ik5/soundskim"
	"github.com/ik5/soundskim/sound"
)

var wordsCmd = &cobra.Command{
	Use:   "words <file>",
	Short: "Report the word spans a file's gain profile suggests",
	Args:  cobra.ExactArgs(1),
	RunE:  runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	idx, err := scanOne(ctx, soundskim.DefaultRegistry(), args[0])
	if err != nil {
		return err
	}

	words, err := sound.Words(idx, 0, idx.NumFrames())
	if err != nil {
		return err
	}

	if len(words) == 0 {
		fmt.Println("no words detected")
		return nil
	}

	for _, word := range words {
		fmt.Printf("%6d..%-6d  %10s .. %-10s\n",
			word.Start, word.End,
			idx.FrameTime(word.Start), idx.FrameTime(word.End))
	}

	return nil
}
