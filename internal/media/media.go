// Package media pulls embedded subtitle streams out of video containers so
// they can be merged like standalone SRT files.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// subtitle stream inside a media container
type Stream struct {
	Index    int // position among the container's subtitle streams
	Codec    string
	Language string
	Title    string
}

// JSON output from ffprobe
type ffprobeOutput struct {
	Streams []struct {
		Index     int    `json:"index"`
		CodecName string `json:"codec_name"`
		Tags      struct {
			Language string `json:"language"`
			Title    string `json:"title"`
		} `json:"tags"`
	} `json:"streams"`
}

func ffprobePath() string {
	if p := os.Getenv("SUBMIX_FFPROBE_PATH"); p != "" {
		return p
	}
	return "ffprobe"
}

// ListSubtitleStreams returns the subtitle streams of a media file.
func ListSubtitleStreams(ctx context.Context, path string) ([]Stream, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", path)
	}

	cmd := exec.CommandContext(ctx, ffprobePath(),
		"-v", "error",
		"-select_streams", "s",
		"-show_streams",
		"-print_format", "json",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe ffprobeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	streams := make([]Stream, 0, len(probe.Streams))
	for i, s := range probe.Streams {
		streams = append(streams, Stream{
			Index:    i,
			Codec:    s.CodecName,
			Language: s.Tags.Language,
			Title:    s.Tags.Title,
		})
	}
	return streams, nil
}

// ExtractSubtitle converts subtitle stream streamIndex of input to an SRT
// file at output.
func ExtractSubtitle(ctx context.Context, input string, streamIndex int, output string) error {
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return fmt.Errorf("media file not found: %s", input)
	}

	err := ffmpeg.Input(input).
		Output(output, ffmpeg.KwArgs{
			"map": fmt.Sprintf("0:s:%d", streamIndex),
			"c:s": "srt",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg subtitle extraction failed: %w", err)
	}
	return nil
}
