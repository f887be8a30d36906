package cli

import (
	"fmt"
	"path/filepath"

	"submix/internal/merger"
	"submix/internal/style"

	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge two subtitle files into one",
	Long: `Merge two SRT files into a single output track, wrapping each input in
its own color, size, weight and screen position.

Examples:
  submix merge --sub1 fa.srt --sub2 en.srt -o merged.srt
  submix merge --sub1 signs.srt --sub2 dialogue.srt --sub2-color yellow --sub2-size 24 --sub2-bold
  submix merge --sub1 stars.srt --filter-overlay --no-text -o overlays_only.srt`,
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	f := mergeCmd.Flags()
	f.StringP("output", "o", "merged.srt", "Output file name")
	f.StringP("output-dir", "d", ".", "Output directory")
	f.StringP("encoding", "e", "", "Output encoding (default $SUBMIX_OUTPUT_ENCODING or utf-8)")
	f.Bool("filter-overlay", false, "Drop duplicate vector overlay entries sharing a timestamp")
	f.Bool("no-text", false, "Drop plain text entries, keep only vector overlays")
	f.Bool("preserve-overlay", true, "Keep vector overlay path data untouched")

	f.String("sub1", "", "First subtitle file path")
	f.String("sub1-color", "white", "Color for the first subtitle (name or hex)")
	f.Int("sub1-size", 0, "Font size for the first subtitle")
	f.Bool("sub1-top", false, "Position the first subtitle at the top of the screen")
	f.Bool("sub1-bold", false, "Make the first subtitle bold")
	f.String("sub1-codec", "", "Encoding tried first for the first subtitle (default $SUBMIX_INPUT_CODEC)")
	f.Int("sub1-offset", 0, "Timing offset in milliseconds, recorded for downstream sync tools")

	f.String("sub2", "", "Second subtitle file path")
	f.String("sub2-color", "yellow", "Color for the second subtitle (name or hex)")
	f.Int("sub2-size", 0, "Font size for the second subtitle")
	f.Bool("sub2-top", false, "Position the second subtitle at the top of the screen")
	f.Bool("sub2-bold", false, "Make the second subtitle bold")
	f.String("sub2-codec", "", "Encoding tried first for the second subtitle (default $SUBMIX_INPUT_CODEC)")
	f.Int("sub2-offset", 0, "Timing offset in milliseconds, recorded for downstream sync tools")

	mergeCmd.MarkFlagRequired("sub1")
}

func runMerge(cmd *cobra.Command, args []string) error {
	outName, _ := cmd.Flags().GetString("output")
	outDir, _ := cmd.Flags().GetString("output-dir")
	outEnc, _ := cmd.Flags().GetString("encoding")
	if outEnc == "" {
		outEnc = cfg.OutputEncoding
	}
	filterOverlay, _ := cmd.Flags().GetBool("filter-overlay")
	noText, _ := cmd.Flags().GetBool("no-text")

	sub1, _ := cmd.Flags().GetString("sub1")
	sub2, _ := cmd.Flags().GetString("sub2")

	sess := merger.NewSession(outDir, outName, outEnc, logger)
	sess.EnableOverlayFilter(filterOverlay)
	sess.SuppressTextEntries(noText)

	logger.Infow("Adding subtitle", "address", sub1)
	if err := sess.Add(sub1, trackOptions(cmd, "sub1")); err != nil {
		return err
	}

	if sub2 != "" {
		logger.Infow("Adding subtitle", "address", sub2)
		if err := sess.Add(sub2, trackOptions(cmd, "sub2")); err != nil {
			return err
		}
	}

	if err := sess.Merge(); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(filepath.Join(outDir, outName))
	fmt.Printf("Merged subtitle written: %s\n", absOutput)
	return nil
}

// trackOptions collects the --subN-* flag group into engine options.
func trackOptions(cmd *cobra.Command, prefix string) merger.AddOptions {
	color, _ := cmd.Flags().GetString(prefix + "-color")
	size, _ := cmd.Flags().GetInt(prefix + "-size")
	top, _ := cmd.Flags().GetBool(prefix + "-top")
	bold, _ := cmd.Flags().GetBool(prefix + "-bold")
	codec, _ := cmd.Flags().GetString(prefix + "-codec")
	offset, _ := cmd.Flags().GetInt(prefix + "-offset")
	preserve, _ := cmd.Flags().GetBool("preserve-overlay")

	if codec == "" {
		codec = cfg.InputCodec
	}

	return merger.AddOptions{
		Codec:                 codec,
		Color:                 style.ColorHex(color),
		Size:                  size,
		Bold:                  bold,
		AnchorTop:             top,
		TimeOffset:            offset,
		PreserveVectorOverlay: preserve,
	}
}
