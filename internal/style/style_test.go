package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeRoundTrip(t *testing.T) {
	out := Compose("Hello world", Options{Color: Red, Size: 24, Bold: true})
	assert.Equal(t, `<font size="24" color="#FF0000"><b>Hello world</b></font>`, out)
	assert.Equal(t, "Hello world", StripMarkup(out))
}

func TestComposeColorOnly(t *testing.T) {
	out := Compose("Hello", Options{Color: White})
	assert.Equal(t, `<font color="#FFFFFF">Hello</font>`, out)
}

func TestComposeNoStyling(t *testing.T) {
	assert.Equal(t, "Hello", Compose("Hello", Options{}))
}

func TestComposeKeepsExistingFace(t *testing.T) {
	out := Compose(`<font face="Arial" color="#00FF00">Hi</font>`, Options{Color: Yellow})
	assert.Equal(t, `<font face="Arial" color="#FFFF00">Hi</font>`, out)
}

func TestComposeAnchorTop(t *testing.T) {
	out := Compose("Hello", Options{Color: Yellow, AnchorTop: true})
	assert.Equal(t, `{\an8}<font color="#FFFF00">Hello</font>`, out)
}

func TestComposeMultiLine(t *testing.T) {
	out := Compose("One\nTwo", Options{Color: Red})
	assert.Equal(t, "<font color=\"#FF0000\">One</font>\n<font color=\"#FF0000\">Two</font>", out)
}

func TestComposeSkipsBlankLines(t *testing.T) {
	out := Compose("Hello\n\n<font></font>", Options{Color: Red})
	assert.Equal(t, `<font color="#FF0000">Hello</font>`, out)
}

func TestComposeEmptyBody(t *testing.T) {
	assert.Equal(t, "", Compose("<font></font>", Options{Color: Red}))
	assert.Equal(t, "", Compose("", Options{Color: Red}))
}

func TestIsVectorOverlay(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"bare path", `{\an7}m 10.5 20.3 b 1 2 3 4 5 6`, true},
		{"wrapped path", `<font face="Brady Bunch Remastered" size="48" color="#FFFFFF">{\an9}m 747.5 413.7 b 747 414 747 414 747 414</font>`, true},
		{"integer coordinates", `{\an9}m 10 20 b 30 40 50 60`, true},
		{"plain text", "Hello world", false},
		{"path without anchor", "m 10.5 20.3 b 1 2 3", false},
		{"anchor without path", `{\an8}Hello`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsVectorOverlay(tt.body))
		})
	}
}

func TestComposeOverlayPreservesMarkup(t *testing.T) {
	body := `<font face="Comic Sans" size="36" color="#FFD700">{\an9}m 10.5 20.3 b 1 2 3 4 5 6</font>`
	out := Compose(body, Options{Color: Red, Size: 24, Bold: true, PreserveVectorOverlay: true})
	assert.Equal(t, body, out)
}

func TestComposeOverlayAppliesDefaults(t *testing.T) {
	out := Compose(`{\an7}m 1.0 2.0 b 3 4 5 6 7 8`, Options{PreserveVectorOverlay: true})
	assert.Equal(t,
		`<font face="Brady Bunch Remastered" size="48" color="#FFFFFF">{\an7}m 1.0 2.0 b 3 4 5 6 7 8</font>`,
		out)
}

func TestComposeOverlayDisabled(t *testing.T) {
	// without preserve, overlay bodies go through generic styling like text
	body := `{\an7}m 1.0 2.0 b 3 4 5 6 7 8`
	out := Compose(body, Options{Color: Red, PreserveVectorOverlay: false})
	assert.Equal(t, `<font color="#FF0000">m 1.0 2.0 b 3 4 5 6 7 8</font>`, out)
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, White, ColorHex("white"))
	assert.Equal(t, Yellow, ColorHex("Yellow"))
	assert.Equal(t, Green, ColorHex(" green "))
	assert.Equal(t, "#ABCDEF", ColorHex("#ABCDEF"))
}
