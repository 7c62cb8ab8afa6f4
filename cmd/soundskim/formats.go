// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/soundskim"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the file extensions the built-in backends claim",
	Run:   runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) {
	for _, ext := range soundskim.DefaultRegistry().Extensions() {
		fmt.Println(ext)
	}
}
