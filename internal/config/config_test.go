package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "utf-8", cfg.OutputEncoding)
	assert.Equal(t, "utf-8", cfg.InputCodec)
	assert.Equal(t, "Brady Bunch Remastered", cfg.OverlayFontFace)
	assert.Equal(t, 48, cfg.OverlayFontSize)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SUBMIX_OUTPUT_ENCODING", "utf-16le")
	t.Setenv("SUBMIX_INPUT_CODEC", "shift-jis")
	t.Setenv("SUBMIX_OVERLAY_FONT_SIZE", "36")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "utf-16le", cfg.OutputEncoding)
	assert.Equal(t, "shift-jis", cfg.InputCodec)
	assert.Equal(t, 36, cfg.OverlayFontSize)
}

func TestDefaultMatchesLoad(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
