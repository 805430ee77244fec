package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsphweid/quartal/config"
	"github.com/jsphweid/quartal/logging"
)

var (
	v      = config.NewViper()
	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "quartal",
	Short: "Quartal and quintal chord voicings",
	Long: `Builds chords by stacking perfect fourths (quartal) or perfect fifths
(quintal) and re-voices them by inversion and octave folding.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (auto, console, json)")
	flags.StringP("output", "o", "", "output format (table, plain, json)")

	v.BindPFlag("log.level", flags.Lookup("log-level"))
	v.BindPFlag("log.format", flags.Lookup("log-format"))
	v.BindPFlag("output", flags.Lookup("output"))
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	l, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger = l.With(zap.String("command", cmd.Name()))
	return nil
}

func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// chordFlags registers the flags every chord command accepts.
func chordFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("root", "r", "", "root pitch, e.g. C4 or Bb3 (default from config)")
	cmd.Flags().IntP("size", "n", 0, "number of voices, 2 to 5 (default from config)")
	cmd.Flags().StringP("unit", "u", "", "stacked interval: quartal or quintal (default from config)")
}

// requestFromFlags starts from the configured defaults and applies only the
// flags the user set, so an explicit --size 0 still reaches validation.
func requestFromFlags(cmd *cobra.Command) chordRequest {
	s := defaultRequest()
	flags := cmd.Flags()
	if flags.Changed("root") {
		s.Root, _ = flags.GetString("root")
	}
	if flags.Changed("size") {
		s.Size, _ = flags.GetInt("size")
	}
	if flags.Changed("unit") {
		s.Unit, _ = flags.GetString("unit")
	}
	if flags.Lookup("mode") != nil && flags.Changed("mode") {
		s.Mode, _ = flags.GetString("mode")
	}
	return s
}

func runRequest(cmd *cobra.Command, cr chordRequest) error {
	c, stages, err := cr.realize()
	if err != nil {
		logger.Debug("chord request rejected", zap.Error(err))
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	logger.Debug("chord realized",
		zap.String("voicing", c.String()),
		zap.Int("inversion", c.Inversion()),
		zap.String("mode", c.Mode().String()),
		zap.Ints("folds", cr.Folds))
	return renderStages(cmd.OutOrStdout(), cfg.Output, stages)
}
