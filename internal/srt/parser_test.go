package srt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlocks(t *testing.T) {
	text := `1
00:00:01,000 --> 00:00:02,000
Hello

2
00:00:03,000 --> 00:00:04,000
--

3
00:00:05,000

4
00:00:06,000 --> 00:00:07,000
Line one
Line two
`
	blocks := ParseBlocks(text)
	require.Len(t, blocks, 2)

	assert.Equal(t, "1", blocks[0].Index)
	assert.Equal(t, "00:00:01,000 --> 00:00:02,000", blocks[0].TimeRange)
	assert.Equal(t, []string{"Hello"}, blocks[0].Body)

	assert.Equal(t, "4", blocks[1].Index)
	assert.Equal(t, []string{"Line one", "Line two"}, blocks[1].Body)
}

func TestParseBlocksCRLF(t *testing.T) {
	text := "1\r\n00:00:01,000 --> 00:00:02,000\r\nHello\r\n\r\n2\r\n00:00:03,000 --> 00:00:04,000\r\nWorld\r\n"
	blocks := ParseBlocks(text)
	require.Len(t, blocks, 2)
	assert.Equal(t, []string{"Hello"}, blocks[0].Body)
	assert.Equal(t, []string{"World"}, blocks[1].Body)
}

func TestParseBlocksBlankSeparatorWithSpaces(t *testing.T) {
	text := "1\n00:00:01,000 --> 00:00:02,000\nHello\n \n2\n00:00:03,000 --> 00:00:04,000\nWorld\n"
	blocks := ParseBlocks(text)
	require.Len(t, blocks, 2)
}

func TestParseBlocksEmptyInput(t *testing.T) {
	assert.Empty(t, ParseBlocks(""))
	assert.Empty(t, ParseBlocks("\n\n\n"))
}

func TestKey(t *testing.T) {
	tests := []struct {
		timeRange string
		want      MergeKey
		wantErr   bool
	}{
		{"00:00:01,000 --> 00:00:02,000", 1, false},
		{"00:01:30,500 --> 00:01:32,000", 90, false},
		{"01:02:03,999 --> 01:02:05,000", 3723, false},
		{"01:02:03.500 --> 01:02:05.000", 3723, false},
		{"10:00:00,000 --> 10:00:01,000", 36000, false},
		{"not a time range", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.timeRange, func(t *testing.T) {
			key, err := Key(tt.timeRange)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestKeyIgnoresSubSeconds(t *testing.T) {
	a, err := Key("00:00:01,100 --> 00:00:02,000")
	require.NoError(t, err)
	b, err := Key("00:00:01,900 --> 00:00:03,000")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMergeKeyString(t *testing.T) {
	assert.Equal(t, "01:02:03", MergeKey(3723).String())
	assert.Equal(t, "00:00:00", MergeKey(0).String())
}
