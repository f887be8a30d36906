package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"submix/internal/encoding"

	"github.com/spf13/cobra"
)

var overlayCmd = &cobra.Command{
	Use:   "overlay [path_data]",
	Short: "Generate an SRT file carrying vector overlay path data",
	Long: `Write a one-cue SRT file whose body is vector path data wrapped in
font and positioning markup, ready to be merged over a dialogue track.

Path data uses move/curve drawing commands, e.g. "m 10.0 20.0 b 1 2 3 ...".

Examples:
  submix overlay "m 10.0 20.0 b 30 40 50 60 70 80" -o star.srt
  submix overlay --path-file star_path.txt --anchor 9 --color "#FFD700"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOverlay,
}

func init() {
	rootCmd.AddCommand(overlayCmd)

	f := overlayCmd.Flags()
	f.StringP("output", "o", "overlay.srt", "Output file path")
	f.StringP("encoding", "e", "", "Output encoding (default $SUBMIX_OUTPUT_ENCODING or utf-8)")
	f.String("path-file", "", "Read path data from a file instead of the argument")
	f.String("start", "00:00:01,000", "Cue start time")
	f.String("end", "00:00:05,000", "Cue end time")
	f.StringP("font-face", "f", "", "Font face (default $SUBMIX_OVERLAY_FONT or Brady Bunch Remastered)")
	f.Int("font-size", 0, "Font size (default $SUBMIX_OVERLAY_FONT_SIZE or 48)")
	f.String("color", "#FFFFFF", "Overlay color")
	f.Int("anchor", 9, "Screen anchor position (numpad layout, 1-9)")
}

func runOverlay(cmd *cobra.Command, args []string) error {
	pathFile, _ := cmd.Flags().GetString("path-file")

	var pathData string
	switch {
	case pathFile != "":
		raw, err := os.ReadFile(pathFile)
		if err != nil {
			return fmt.Errorf("read path data %s: %w", pathFile, err)
		}
		pathData = strings.TrimSpace(string(raw))
	case len(args) == 1:
		pathData = strings.TrimSpace(args[0])
	default:
		return fmt.Errorf("path data required: pass it as an argument or via --path-file")
	}

	output, _ := cmd.Flags().GetString("output")
	outEnc, _ := cmd.Flags().GetString("encoding")
	if outEnc == "" {
		outEnc = cfg.OutputEncoding
	}
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	face, _ := cmd.Flags().GetString("font-face")
	if face == "" {
		face = cfg.OverlayFontFace
	}
	size, _ := cmd.Flags().GetInt("font-size")
	if size == 0 {
		size = cfg.OverlayFontSize
	}
	color, _ := cmd.Flags().GetString("color")
	anchor, _ := cmd.Flags().GetInt("anchor")

	body := fmt.Sprintf(`<font face="%s" size="%d" color="%s">{\an%d}%s</font>`,
		face, size, color, anchor, pathData)
	content := fmt.Sprintf("1\n%s --> %s\n%s\n\n", start, end, body)

	encoded, err := encoding.Encode(outEnc, content)
	if err != nil {
		return fmt.Errorf("encode overlay subtitle: %w", err)
	}
	data := append(encoding.BOM(outEnc), encoded...)

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write overlay subtitle %s: %w", output, err)
	}

	absOutput, _ := filepath.Abs(output)
	fmt.Printf("Overlay subtitle written: %s\n", absOutput)
	return nil
}
