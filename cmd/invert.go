package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	chordFlags(invertCmd)
	invertCmd.Flags().StringP("mode", "m", "", "inversion mode: standard or full (default from config)")
	rootCmd.AddCommand(invertCmd)
}

var invertCmd = &cobra.Command{
	Use:   "invert <count>",
	Short: "Inverts a chord from its root position",
	Long: `Inverts a freshly built chord count times. Standard mode raises the lowest
voice one octave per step; full mode raises it until it is the highest voice.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invert: count %q is not a number", args[0])
		}
		cr := requestFromFlags(cmd)
		cr.Inversion = count
		return runRequest(cmd, cr)
	},
}
