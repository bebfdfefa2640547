package colors

import "strings"

// Escape is the ESC byte that starts every SGR sequence.
const Escape = "\x1b"

// Reset is the full SGR reset sequence.
const Reset = Escape + "[0m"

// Attribute is an SGR text attribute code.
type Attribute int

const (
	// AttrNone is not an SGR code: a spec carrying it never paints.
	AttrNone          Attribute = -1
	AttrReset         Attribute = 0
	AttrBold          Attribute = 1
	AttrDim           Attribute = 2
	AttrItalic        Attribute = 3
	AttrUnderline     Attribute = 4
	AttrBlink         Attribute = 5
	AttrRapidBlink    Attribute = 6
	AttrReverse       Attribute = 7
	AttrHidden        Attribute = 8
	AttrStrikethrough Attribute = 9
)

// ResetCode returns the SGR code that turns the attribute off, or 0 when the
// attribute has no paired reset.
func (a Attribute) ResetCode() int {
	switch a {
	case AttrBold:
		return 21
	case AttrDim:
		return 22
	case AttrItalic:
		return 23
	case AttrUnderline:
		return 24
	case AttrBlink:
		return 25
	case AttrRapidBlink:
		return 26
	case AttrReverse:
		return 27
	case AttrHidden, AttrStrikethrough:
		return 28
	default:
		return 0
	}
}

// String returns the canonical rule-file token for the attribute.
func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return "unknown"
}

// Foreground is an SGR foreground color code.
type Foreground int

const (
	FgBlack         Foreground = 30
	FgRed           Foreground = 31
	FgGreen         Foreground = 32
	FgYellow        Foreground = 33
	FgBlue          Foreground = 34
	FgMagenta       Foreground = 35
	FgCyan          Foreground = 36
	FgWhite         Foreground = 37
	FgDefault       Foreground = 39
	FgBrightBlack   Foreground = 90
	FgBrightRed     Foreground = 91
	FgBrightGreen   Foreground = 92
	FgBrightYellow  Foreground = 93
	FgBrightBlue    Foreground = 94
	FgBrightMagenta Foreground = 95
	FgBrightCyan    Foreground = 96
	FgBrightWhite   Foreground = 97
)

// String returns the canonical rule-file token, or "" for the default color.
func (f Foreground) String() string {
	return foregroundNames[f]
}

// Background is an SGR background color code.
type Background int

const (
	BgBlack         Background = 40
	BgRed           Background = 41
	BgGreen         Background = 42
	BgYellow        Background = 43
	BgBlue          Background = 44
	BgMagenta       Background = 45
	BgCyan          Background = 46
	BgWhite         Background = 47
	BgDefault       Background = 49
	BgBrightBlack   Background = 100
	BgBrightRed     Background = 101
	BgBrightGreen   Background = 102
	BgBrightYellow  Background = 103
	BgBrightBlue    Background = 104
	BgBrightMagenta Background = 105
	BgBrightCyan    Background = 106
	BgBrightWhite   Background = 107
)

// String returns the canonical rule-file token, or "" for the default color.
func (b Background) String() string {
	return backgroundNames[b]
}

var attributeTable = map[string]Attribute{
	"none":          AttrNone,
	"unchanged":     AttrNone,
	"default":       AttrReset,
	"bold":          AttrBold,
	"dark":          AttrDim,
	"italic":        AttrItalic,
	"underline":     AttrUnderline,
	"blink":         AttrBlink,
	"rapidblink":    AttrRapidBlink,
	"reverse":       AttrReverse,
	"concealed":     AttrHidden,
	"strikethrough": AttrStrikethrough,
}

var foregroundTable = map[string]Foreground{
	"black":          FgBlack,
	"red":            FgRed,
	"green":          FgGreen,
	"yellow":         FgYellow,
	"blue":           FgBlue,
	"magenta":        FgMagenta,
	"cyan":           FgCyan,
	"white":          FgWhite,
	"bright_black":   FgBrightBlack,
	"bright_red":     FgBrightRed,
	"bright_green":   FgBrightGreen,
	"bright_yellow":  FgBrightYellow,
	"bright_blue":    FgBrightBlue,
	"bright_magenta": FgBrightMagenta,
	"bright_cyan":    FgBrightCyan,
	"bright_white":   FgBrightWhite,
}

var backgroundTable = map[string]Background{
	"on_black":          BgBlack,
	"on_red":            BgRed,
	"on_green":          BgGreen,
	"on_yellow":         BgYellow,
	"on_blue":           BgBlue,
	"on_magenta":        BgMagenta,
	"on_cyan":           BgCyan,
	"on_white":          BgWhite,
	"on_bright_black":   BgBrightBlack,
	"on_bright_red":     BgBrightRed,
	"on_bright_green":   BgBrightGreen,
	"on_bright_yellow":  BgBrightYellow,
	"on_bright_blue":    BgBrightBlue,
	"on_bright_magenta": BgBrightMagenta,
	"on_bright_cyan":    BgBrightCyan,
	"on_bright_white":   BgBrightWhite,
}

// "unchanged" is an alias, so the reverse map is spelled out.
var attributeNames = map[Attribute]string{
	AttrNone:          "none",
	AttrReset:         "default",
	AttrBold:          "bold",
	AttrDim:           "dark",
	AttrItalic:        "italic",
	AttrUnderline:     "underline",
	AttrBlink:         "blink",
	AttrRapidBlink:    "rapidblink",
	AttrReverse:       "reverse",
	AttrHidden:        "concealed",
	AttrStrikethrough: "strikethrough",
}

var (
	foregroundNames = invert(foregroundTable)
	backgroundNames = invert(backgroundTable)
)

func invert[K comparable](m map[string]K) map[K]string {
	out := make(map[K]string, len(m))
	for name, code := range m {
		out[code] = name
	}
	return out
}

// ResolveAttribute looks up an attribute name, ignoring case.
func ResolveAttribute(name string) (Attribute, bool) {
	a, ok := attributeTable[strings.ToLower(name)]
	return a, ok
}

// ResolveForeground looks up a foreground color name, ignoring case.
func ResolveForeground(name string) (Foreground, bool) {
	f, ok := foregroundTable[strings.ToLower(name)]
	return f, ok
}

// ResolveBackground looks up a background color name, ignoring case.
func ResolveBackground(name string) (Background, bool) {
	b, ok := backgroundTable[strings.ToLower(name)]
	return b, ok
}
