package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

func TestResolveUTF8(t *testing.T) {
	text, codec, err := Resolve([]byte("Hello, world!"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", codec)
	assert.Equal(t, "Hello, world!", text)
}

func TestResolveStripsUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Hello")...)
	text, codec, err := Resolve(data, "")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", codec)
	assert.Equal(t, "Hello", text)
}

func TestResolveFallsBackToShiftJIS(t *testing.T) {
	raw, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte("こんにちは"))
	require.NoError(t, err)

	text, codec, err := Resolve(raw, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "shift-jis", codec)
	assert.Equal(t, "こんにちは", text)
}

func TestResolveUTF16LEWithBOM(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	raw, err := enc.Bytes([]byte("Hello"))
	require.NoError(t, err)

	text, codec, err := Resolve(raw, "")
	require.NoError(t, err)
	assert.Equal(t, "utf-16le", codec)
	assert.Equal(t, "Hello", text)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		ok        bool
	}{
		{"utf-8", "utf-8", true},
		{"UTF-8", "utf-8", true},
		{"utf_8", "utf-8", true},
		{"cp932", "shift-jis", true},
		{"Shift_JIS", "shift-jis", true},
		{"latin-1", "iso-8859-1", true},
		{"Windows-1256", "windows-1256", true},
		{"ucs-2", "utf-16le", true},
		{"klingon", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical, ok := Lookup(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.canonical, canonical)
		})
	}
}

func TestBOM(t *testing.T) {
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, BOM("utf-8"))
	assert.Equal(t, []byte{0xFF, 0xFE}, BOM("utf-16le"))
	assert.Equal(t, []byte{0xFE, 0xFF}, BOM("utf-16be"))
	assert.Equal(t, []byte{0xFF, 0xFE, 0x00, 0x00}, BOM("utf-32le"))
	assert.Equal(t, []byte{0x00, 0x00, 0xFE, 0xFF}, BOM("utf-32be"))
	assert.Nil(t, BOM("shift-jis"))
	assert.Nil(t, BOM("windows-1252"))
	assert.Nil(t, BOM("nonsense"))
}

func TestEncodeStrict(t *testing.T) {
	b, err := Encode("windows-1252", "Hello")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), b)

	_, err = Encode("windows-1252", "こんにちは")
	require.Error(t, err)
}

func TestEncodeReplacing(t *testing.T) {
	b, err := EncodeReplacing("windows-1252", "Hi こんにちは")
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestEncodeUnknownCodec(t *testing.T) {
	_, err := Encode("klingon", "Hello")
	require.Error(t, err)
}

func TestDecodeError(t *testing.T) {
	err := &DecodeError{Address: "ep01.srt", Attempted: []string{"utf-8", "shift-jis"}}
	assert.Contains(t, err.Error(), "ep01.srt")
	assert.Contains(t, err.Error(), "utf-8")
	assert.Contains(t, err.Error(), "shift-jis")
}
