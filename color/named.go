package color

import (
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// FromHex parses a 3/4/6/8-digit hex color literal, leading # included.
func FromHex(s string) (Color, bool) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, false
	}
	return parseLiteral(s)
}

// FromName looks up a CSS named color from the standard sRGB table
// (including transparent).
func FromName(name string) (Color, bool) {
	for _, r := range name {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return Color{}, false
		}
	}
	return parseLiteral(strings.ToLower(name))
}

func parseLiteral(s string) (Color, bool) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, false
	}
	return NewRGB(c.R*100, c.G*100, c.B*100, c.A*100), true
}
