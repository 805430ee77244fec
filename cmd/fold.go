package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	chordFlags(foldCmd)
	foldCmd.Flags().IntP("invert", "i", 0, "inversion applied before folding")
	foldCmd.Flags().StringP("mode", "m", "", "inversion mode: standard or full (default from config)")
	rootCmd.AddCommand(foldCmd)
}

var foldCmd = &cobra.Command{
	Use:   "fold <levels>...",
	Short: "Folds the top voices of a chord down an octave",
	Long: `Applies each fold in order to the (optionally inverted) chord. A fold of n
lowers the top n voices by one octave; repeated folds lower the same voices
again, e.g. "quartal fold 1 1 -i 1 -m full".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cr := requestFromFlags(cmd)
		cr.Inversion, _ = cmd.Flags().GetInt("invert")
		for _, arg := range args {
			levels, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("fold: level %q is not a number", arg)
			}
			cr.Folds = append(cr.Folds, levels)
		}
		return runRequest(cmd, cr)
	},
}
