package main

import (
	"fmt"
	"strconv"
	"strings"

	"example.com/gapedit/pkg/editor"
	"github.com/spf13/cobra"
)

// newLinesCmd prints the line index of a file: the line count and the
// offset of every newline.
func newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines <file>",
		Short: "Print the line count and newline offsets of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := editor.Open(args[0], editor.Options{})
			if err != nil {
				return err
			}
			offsets := d.NewlineOffsets()
			parts := make([]string, len(offsets))
			for i, off := range offsets {
				parts[i] = strconv.Itoa(off)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bytes: %d\n", d.Len())
			fmt.Fprintf(out, "lines: %d\n", d.LineCount())
			fmt.Fprintf(out, "newlines: %s\n", strings.Join(parts, " "))
			return nil
		},
	}
}
