// Package encoding resolves the text encoding of subtitle sources and
// handles byte-order-marks for the serialized output.
package encoding

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

type codec struct {
	name string // canonical name
	enc  xencoding.Encoding
	bom  []byte // output byte-order-mark, nil for encodings without one
	unit int    // code unit width in bytes
}

var codecs = []codec{
	{"utf-8", unicode.UTF8, []byte{0xEF, 0xBB, 0xBF}, 1},
	{"utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), []byte{0xFF, 0xFE}, 2},
	{"utf-16be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), []byte{0xFE, 0xFF}, 2},
	{"utf-32le", utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), []byte{0xFF, 0xFE, 0x00, 0x00}, 4},
	{"utf-32be", utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), []byte{0x00, 0x00, 0xFE, 0xFF}, 4},
	{"shift-jis", japanese.ShiftJIS, nil, 1},
	{"euc-jp", japanese.EUCJP, nil, 1},
	{"gb18030", simplifiedchinese.GB18030, nil, 1},
	{"big5", traditionalchinese.Big5, nil, 1},
	{"euc-kr", korean.EUCKR, nil, 1},
	{"windows-1252", charmap.Windows1252, nil, 1},
	{"windows-1251", charmap.Windows1251, nil, 1},
	{"windows-1256", charmap.Windows1256, nil, 1},
	{"iso-8859-1", charmap.ISO8859_1, nil, 1},
}

// fallbackChain is consulted after the preferred codec. The UTF-16/32
// family is deliberately absent: without a BOM any even-length buffer
// "decodes", so those are only tried via BOM sniffing or when requested.
var fallbackChain = []string{
	"utf-8",
	"shift-jis",
	"euc-jp",
	"gb18030",
	"big5",
	"euc-kr",
	"windows-1252",
	"windows-1251",
	"windows-1256",
	"iso-8859-1",
}

var aliases = map[string]string{
	"utf8":      "utf-8",
	"utf16":     "utf-16le",
	"utf16le":   "utf-16le",
	"utf16be":   "utf-16be",
	"ucs2":      "utf-16le",
	"utf32":     "utf-32le",
	"utf32le":   "utf-32le",
	"utf32be":   "utf-32be",
	"shiftjis":  "shift-jis",
	"sjis":      "shift-jis",
	"cp932":     "shift-jis",
	"ms932":     "shift-jis",
	"eucjp":     "euc-jp",
	"gbk":       "gb18030",
	"gb2312":    "gb18030",
	"cp936":     "gb18030",
	"euckr":     "euc-kr",
	"cp949":     "euc-kr",
	"cp1252":    "windows-1252",
	"ansi":      "windows-1252",
	"cp1251":    "windows-1251",
	"cp1256":    "windows-1256",
	"arabic":    "windows-1256",
	"latin1":    "iso-8859-1",
	"iso88591":  "iso-8859-1",
	"iso8859-1": "iso-8859-1",
}

var byName = func() map[string]codec {
	m := make(map[string]codec, len(codecs))
	for _, c := range codecs {
		m[c.name] = c
	}
	return m
}()

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

// Lookup maps a codec name or alias to its canonical name.
func Lookup(name string) (string, bool) {
	n := normalize(name)
	for _, c := range codecs {
		if normalize(c.name) == n {
			return c.name, true
		}
	}
	if canonical, ok := aliases[n]; ok {
		return canonical, true
	}
	return "", false
}

// BOM returns the byte-order-mark for a codec, or nil if the codec has none.
func BOM(name string) []byte {
	canonical, ok := Lookup(name)
	if !ok {
		return nil
	}
	c := byName[canonical]
	if c.bom == nil {
		return nil
	}
	out := make([]byte, len(c.bom))
	copy(out, c.bom)
	return out
}

// sniffBOM identifies a Unicode codec from a leading byte-order-mark.
// utf-32le must be checked before utf-16le since their BOMs share a prefix.
func sniffBOM(data []byte) (string, bool) {
	for _, name := range []string{"utf-32le", "utf-32be", "utf-16le", "utf-16be", "utf-8"} {
		if bom := byName[name].bom; bytes.HasPrefix(data, bom) {
			return name, true
		}
	}
	return "", false
}

// Resolve decodes data, trying a BOM-identified codec, then the preferred
// codec, then the fallback chain. The first codec that decodes the whole
// buffer cleanly wins; its canonical name is returned alongside the text.
func Resolve(data []byte, preferred string) (string, string, error) {
	var order []string
	if name, ok := sniffBOM(data); ok {
		order = append(order, name)
	}
	if preferred != "" {
		if name, ok := Lookup(preferred); ok {
			order = append(order, name)
		}
	}
	order = append(order, fallbackChain...)

	tried := make(map[string]bool)
	var attempted []string
	for _, name := range order {
		if tried[name] {
			continue
		}
		tried[name] = true
		attempted = append(attempted, name)

		text, ok := decode(byName[name], data)
		if !ok {
			continue
		}
		// a leading BOM belongs to the transport, not the text
		return strings.TrimPrefix(text, "\ufeff"), name, nil
	}

	return "", "", &DecodeError{Attempted: attempted}
}

func decode(c codec, data []byte) (string, bool) {
	if c.unit > 1 && len(data)%c.unit != 0 {
		return "", false
	}
	if c.name == "utf-8" {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}

	out, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	text := string(out)
	// x/text decoders substitute U+FFFD for malformed input instead of
	// failing, so a substitution marks the candidate as a mismatch
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", false
	}
	return text, true
}

// Encode converts text to the target codec, failing on unrepresentable runes.
func Encode(name, text string) ([]byte, error) {
	canonical, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
	return byName[canonical].enc.NewEncoder().Bytes([]byte(text))
}

// EncodeReplacing converts text to the target codec, substituting
// unrepresentable runes instead of failing.
func EncodeReplacing(name, text string) ([]byte, error) {
	canonical, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
	enc := xencoding.ReplaceUnsupported(byName[canonical].enc.NewEncoder())
	return enc.Bytes([]byte(text))
}
