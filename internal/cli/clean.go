package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"submix/internal/merger"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [subtitle_file]",
	Short: "Deduplicate vector overlay entries in a single file",
	Long: `Rewrite one SRT file keeping the first vector overlay entry per
timestamp and dropping the duplicates that some muxers emit. Placeholder
"--" blocks are removed as well.

Examples:
  submix clean stars.srt
  submix clean stars.srt --no-text -o overlays_only.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringP("output", "o", "", "Output file path (default <input>_cleaned.srt)")
	cleanCmd.Flags().StringP("encoding", "e", "", "Output encoding (default $SUBMIX_OUTPUT_ENCODING or utf-8)")
	cleanCmd.Flags().Bool("no-text", false, "Remove plain text entries, keep only vector overlays")
	cleanCmd.Flags().String("codec", "", "Encoding tried first when reading (default $SUBMIX_INPUT_CODEC)")
}

func runClean(cmd *cobra.Command, args []string) error {
	input := args[0]

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		ext := filepath.Ext(input)
		output = strings.TrimSuffix(input, ext) + "_cleaned" + ext
	}
	outEnc, _ := cmd.Flags().GetString("encoding")
	if outEnc == "" {
		outEnc = cfg.OutputEncoding
	}
	noText, _ := cmd.Flags().GetBool("no-text")
	codec, _ := cmd.Flags().GetString("codec")
	if codec == "" {
		codec = cfg.InputCodec
	}

	sess := merger.NewSession(filepath.Dir(output), filepath.Base(output), outEnc, logger)
	sess.EnableOverlayFilter(true)
	sess.SuppressTextEntries(noText)

	if err := sess.Add(input, merger.AddOptions{
		Codec:                 codec,
		PreserveVectorOverlay: true,
	}); err != nil {
		return err
	}
	if err := sess.Merge(); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(output)
	fmt.Printf("Cleaned subtitle written: %s\n", absOutput)
	return nil
}
