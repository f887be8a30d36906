package cli

import (
	"submix/internal/config"
	"submix/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "submix",
	Short: "Merge SRT subtitle tracks with per-track styling",
	Long: `Submix merges two or more SubRip subtitle tracks into a single output
track so a player can display several languages or text layers at once, each
with its own color, size, weight and screen position.

Subtitle bodies carrying vector path data (on-screen graphics burned into a
subtitle stream) are kept byte-for-byte and can be deduplicated across tracks.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
		c, err := config.Load()
		if err != nil {
			logger.Warnw("Falling back to built-in defaults", "error", err)
			c = config.Default()
		}
		cfg = c
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
