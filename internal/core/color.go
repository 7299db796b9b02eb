package core

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a fill color for a screen cell or drawable, stored as a "#RRGGBB"
// hex string so the same value works for lipgloss and for image/color.
type Color string

// Predefined colors. The first four form the default game palette.
const (
	ColorDefault Color = ""
	ColorRed     Color = "#FF5252"
	ColorYellow  Color = "#FFEB3B"
	ColorGreen   Color = "#4CAF50"
	ColorBlue    Color = "#2196F3"
	ColorWhite   Color = "#FFFFFF"
	ColorGray    Color = "#8A8A8A"
)

// DefaultPalette returns the four gate colors used when no palette is configured.
func DefaultPalette() []Color {
	return []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue}
}

// ParseColor validates a hex color string and returns it in upper-case
// "#RRGGBB" form.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorDefault, err
	}
	return Color(strings.ToUpper(c.Hex())), nil
}

// RGBA converts the color for image-based renderers.
// ColorDefault and unparseable values map to opaque white.
func (c Color) RGBA() color.RGBA {
	cf, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// String returns the hex representation.
func (c Color) String() string {
	if c == ColorDefault {
		return "default"
	}
	return string(c)
}
