package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"submix/internal/media"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [media_file]",
	Short: "Extract an embedded subtitle stream from a media container",
	Long: `Extract a subtitle stream from a video container and save it as an
SRT file that can be fed into merge.

Examples:
  submix extract episode01.mkv
  submix extract episode01.mkv --list
  submix extract episode01.mkv -s 1 -o episode01_jp.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntP("stream", "s", 0, "Subtitle stream index within the container")
	extractCmd.Flags().StringP("output", "o", "", "Output SRT path (default <input>.srt)")
	extractCmd.Flags().BoolP("list", "l", false, "List subtitle streams and exit")
}

func runExtract(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]

	list, _ := cmd.Flags().GetBool("list")
	ctx := context.Background()

	if list {
		streams, err := media.ListSubtitleStreams(ctx, mediaPath)
		if err != nil {
			return err
		}
		if len(streams) == 0 {
			fmt.Println("No subtitle streams found.")
			return nil
		}
		for _, s := range streams {
			fmt.Printf("%d: codec=%s language=%s title=%s\n",
				s.Index, s.Codec, s.Language, s.Title)
		}
		return nil
	}

	streamIndex, _ := cmd.Flags().GetInt("stream")
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		ext := filepath.Ext(mediaPath)
		outputPath = strings.TrimSuffix(mediaPath, ext) + ".srt"
	}

	logger.Infow("Extracting subtitle stream",
		"media", mediaPath,
		"stream", streamIndex,
		"output", outputPath,
	)

	if err := media.ExtractSubtitle(ctx, mediaPath, streamIndex, outputPath); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle extracted successfully: %s\n", absOutput)
	return nil
}
