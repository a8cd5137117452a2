package beautylog

import (
	"strconv"
	"strings"
)

// Color is a console color in the 16-color terminal palette
type Color int

// ColorNone leaves the terminal color untouched
const (
	ColorNone Color = iota
	ColorBlack
	ColorDarkBlue
	ColorDarkGreen
	ColorDarkCyan
	ColorDarkRed
	ColorDarkMagenta
	ColorDarkYellow
	ColorGray
	ColorDarkGray
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorYellow
	ColorWhite
)

// Color mode values for Config.ColorMode
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

const ansiReset = "\033[0m"

var colorNames = map[string]Color{
	"":             ColorNone,
	"none":         ColorNone,
	"black":        ColorBlack,
	"dark_blue":    ColorDarkBlue,
	"dark_green":   ColorDarkGreen,
	"dark_cyan":    ColorDarkCyan,
	"dark_red":     ColorDarkRed,
	"dark_magenta": ColorDarkMagenta,
	"dark_yellow":  ColorDarkYellow,
	"gray":         ColorGray,
	"dark_gray":    ColorDarkGray,
	"blue":         ColorBlue,
	"green":        ColorGreen,
	"cyan":         ColorCyan,
	"red":          ColorRed,
	"magenta":      ColorMagenta,
	"yellow":       ColorYellow,
	"white":        ColorWhite,
}

// ANSI SGR foreground codes; background is foreground + 10
var ansiForeground = map[Color]int{
	ColorBlack:       30,
	ColorDarkRed:     31,
	ColorDarkGreen:   32,
	ColorDarkYellow:  33,
	ColorDarkBlue:    34,
	ColorDarkMagenta: 35,
	ColorDarkCyan:    36,
	ColorGray:        37,
	ColorDarkGray:    90,
	ColorRed:         91,
	ColorGreen:       92,
	ColorYellow:      93,
	ColorBlue:        94,
	ColorMagenta:     95,
	ColorCyan:        96,
	ColorWhite:       97,
}

// ParseColor converts a color name such as "dark_gray" to a Color.
// Empty string and "none" map to ColorNone.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	c, ok := colorNames[key]
	if !ok {
		return ColorNone, fmtErrorf("unknown color: '%s'", name)
	}
	return c, nil
}

// consoleStyle is the resolved color pair for one level
type consoleStyle struct {
	fg Color
	bg Color
}

// sequence returns the escape sequence that applies the style, "" if nothing to set
func (s consoleStyle) sequence() string {
	var codes []string
	if code, ok := ansiForeground[s.fg]; ok {
		codes = append(codes, strconv.Itoa(code))
	}
	if code, ok := ansiForeground[s.bg]; ok {
		codes = append(codes, strconv.Itoa(code+10))
	}
	if len(codes) == 0 {
		return ""
	}
	return "\033[" + strings.Join(codes, ";") + "m"
}
