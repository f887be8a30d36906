package cli

import (
	"fmt"

	"submix/internal/merger"
	"submix/internal/pattern"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Merge a directory of episode pairs",
	Long: `Pair subtitle files from two filename patterns by episode number and
merge each pair into its own output file. A failing episode is logged and
skipped; the rest of the batch continues.

Examples:
  submix batch --dir ./season1 --sub1-pattern "*_jp.srt" --sub2-pattern "*_en.srt"
  submix batch --dir . --sub1-pattern "*jpn*.srt" --sub2-pattern "*eng*.srt" --sub2-color yellow -d ./merged`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	f := batchCmd.Flags()
	f.String("dir", ".", "Directory containing the subtitle files")
	f.StringP("output-dir", "d", "", "Output directory (default same as --dir)")
	f.StringP("encoding", "e", "", "Output encoding (default $SUBMIX_OUTPUT_ENCODING or utf-8)")
	f.String("sub1-pattern", "", "Glob for the first track of each pair")
	f.String("sub2-pattern", "", "Glob for the second track of each pair")
	f.Bool("filter-overlay", false, "Drop duplicate vector overlay entries sharing a timestamp")
	f.Bool("no-text", false, "Drop plain text entries, keep only vector overlays")
	f.Bool("preserve-overlay", true, "Keep vector overlay path data untouched")

	f.String("sub1-color", "white", "Color for the first track (name or hex)")
	f.Int("sub1-size", 0, "Font size for the first track")
	f.Bool("sub1-top", false, "Position the first track at the top of the screen")
	f.Bool("sub1-bold", false, "Make the first track bold")
	f.String("sub1-codec", "", "Encoding tried first for the first track (default $SUBMIX_INPUT_CODEC)")
	f.Int("sub1-offset", 0, "Timing offset in milliseconds, recorded for downstream sync tools")

	f.String("sub2-color", "yellow", "Color for the second track (name or hex)")
	f.Int("sub2-size", 0, "Font size for the second track")
	f.Bool("sub2-top", false, "Position the second track at the top of the screen")
	f.Bool("sub2-bold", false, "Make the second track bold")
	f.String("sub2-codec", "", "Encoding tried first for the second track (default $SUBMIX_INPUT_CODEC)")
	f.Int("sub2-offset", 0, "Timing offset in milliseconds, recorded for downstream sync tools")

	batchCmd.MarkFlagRequired("sub1-pattern")
	batchCmd.MarkFlagRequired("sub2-pattern")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	outDir, _ := cmd.Flags().GetString("output-dir")
	if outDir == "" {
		outDir = dir
	}
	outEnc, _ := cmd.Flags().GetString("encoding")
	if outEnc == "" {
		outEnc = cfg.OutputEncoding
	}
	glob1, _ := cmd.Flags().GetString("sub1-pattern")
	glob2, _ := cmd.Flags().GetString("sub2-pattern")
	filterOverlay, _ := cmd.Flags().GetBool("filter-overlay")
	noText, _ := cmd.Flags().GetBool("no-text")

	pairs, err := pattern.MatchPairs(dir, glob1, glob2)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no episode pairs matched %q and %q in %s", glob1, glob2, dir)
	}

	logger.Infow("Starting batch merge",
		"dir", dir,
		"pairs", len(pairs),
	)

	merged := 0
	for _, p := range pairs {
		logger.Infow("Processing episode",
			"episode", p.Episode,
			"sub1", p.Sub1,
			"sub2", p.Sub2,
		)

		sess := merger.NewSession(outDir, p.OutputName, outEnc, logger)
		sess.EnableOverlayFilter(filterOverlay)
		sess.SuppressTextEntries(noText)

		if err := sess.Add(p.Sub1, trackOptions(cmd, "sub1")); err != nil {
			logger.Errorw("Skipping episode", "episode", p.Episode, "error", err)
			continue
		}
		if err := sess.Add(p.Sub2, trackOptions(cmd, "sub2")); err != nil {
			logger.Errorw("Skipping episode", "episode", p.Episode, "error", err)
			continue
		}
		if err := sess.Merge(); err != nil {
			logger.Errorw("Skipping episode", "episode", p.Episode, "error", err)
			continue
		}
		merged++
	}

	fmt.Printf("Merged %d of %d episode pairs into %s\n", merged, len(pairs), outDir)
	return nil
}
