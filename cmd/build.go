package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	chordFlags(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build [root]",
	Short: "Builds a quartal or quintal chord",
	Long: `Builds a chord by stacking the chosen interval above each voice in turn,
e.g. "quartal build C4 -n 4" gives C4-F4-Bb4-Eb5.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cr := requestFromFlags(cmd)
		if len(args) == 1 {
			cr.Root = args[0]
		}
		return runRequest(cmd, cr)
	},
}
