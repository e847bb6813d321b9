package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rybkr/blockslide/internal/board"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "presets",
		Short: "List the built-in puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range board.PresetNames() {
				start, goal, err := board.Preset(name)
				if err != nil {
					return err
				}
				heading(out, "%s (%dx%d, %d blocks, %d in goal)",
					name, start.Rows(), start.Cols(), start.Len(), goal.Len())
				fmt.Fprint(out, indent(start.Format(), "  "))
			}
			return nil
		},
	})
}
