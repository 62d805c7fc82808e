package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numeric channels are rounded to 10 decimal digits before rendering so
// conversion float noise never reaches the output.
func round10(v float64) float64 {
	return math.Round(v*1e10) / 1e10
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(round10(v), 'f', -1, 64)
}

func fmtByte(v float64) string {
	// 0-100 percentage scale back to a 0-255 channel byte; the decimal
	// scaling keeps exact halves exact (50 -> 127.5 -> 128), a binary
	// 2.55 multiply does not
	return strconv.Itoa(int(math.Round(round10(v * 255 / 100))))
}

func (c Color) opaque() bool {
	return round10(c.alpha) == 100
}

// StringModern renders the color using the modern space-separated
// syntax: rgb(R% G% B%[ / A%]), hsl(H S% L%[ / A%]),
// hwb(H W% B%[ / A%]). The alpha slot is omitted when opaque.
func (c Color) StringModern() string {
	var b strings.Builder
	switch c.space {
	case SpaceHsl:
		fmt.Fprintf(&b, "hsl(%s %s%% %s%%", fmtNum(c.hue), fmtNum(c.saturation), fmtNum(c.lightness))
	case SpaceHwb:
		fmt.Fprintf(&b, "hwb(%s %s%% %s%%", fmtNum(c.hue), fmtNum(c.whiteness), fmtNum(c.blackness))
	default:
		rgb := c.ToRGB()
		fmt.Fprintf(&b, "rgb(%s%% %s%% %s%%", fmtNum(rgb.red), fmtNum(rgb.green), fmtNum(rgb.blue))
	}
	if !c.opaque() {
		fmt.Fprintf(&b, " / %s%%", fmtNum(c.alpha))
	}
	b.WriteByte(')')
	return b.String()
}

// StringLegacy renders the color using the comma-separated legacy
// syntax: rgb(R, G, B) with 0-255 channels or rgba(...) when
// translucent, hsl(H, S%, L%)/hsla(...). HWB has no legacy form and is
// rendered through its RGB equivalent.
func (c Color) StringLegacy() string {
	switch c.space {
	case SpaceHsl:
		if c.opaque() {
			return fmt.Sprintf("hsl(%s, %s%%, %s%%)", fmtNum(c.hue), fmtNum(c.saturation), fmtNum(c.lightness))
		}
		return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", fmtNum(c.hue), fmtNum(c.saturation), fmtNum(c.lightness), fmtNum(c.alpha/100))
	default:
		rgb := c.ToRGB()
		if c.opaque() {
			return fmt.Sprintf("rgb(%s, %s, %s)", fmtByte(rgb.red), fmtByte(rgb.green), fmtByte(rgb.blue))
		}
		return fmt.Sprintf("rgba(%s, %s, %s, %s)", fmtByte(rgb.red), fmtByte(rgb.green), fmtByte(rgb.blue), fmtNum(c.alpha/100))
	}
}

// String renders the legacy form, the default output syntax.
func (c Color) String() string {
	return c.StringLegacy()
}
