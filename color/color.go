package color

import "math"

// Color is an immutable color value. It is canonical in exactly one
// colorspace; hue is kept in sync across spaces so conversions do not
// destroy it for achromatic colors. All channels except hue are on a
// 0-100 scale, hue is wrapped into [0,360), alpha is 0-100.
type Color struct {
	space Space

	red, green, blue      float64 // valid when space == SpaceRgb
	saturation, lightness float64 // valid when space == SpaceHsl
	whiteness, blackness  float64 // valid when space == SpaceHwb

	hue   float64
	alpha float64
}

// NewRGB constructs an RGB color; the hue is derived from the channels.
func NewRGB(red, green, blue, alpha float64) Color {
	red, green, blue = clampPct(red), clampPct(green), clampPct(blue)
	return Color{
		space: SpaceRgb,
		red:   red, green: green, blue: blue,
		hue:   rgb2hue(red, green, blue, 0),
		alpha: clampPct(alpha),
	}
}

// NewHSL constructs an HSL color.
func NewHSL(hue, saturation, lightness, alpha float64) Color {
	return Color{
		space:      SpaceHsl,
		hue:        wrapHue(hue),
		saturation: clampPct(saturation),
		lightness:  clampPct(lightness),
		alpha:      clampPct(alpha),
	}
}

// NewHWB constructs an HWB color.
func NewHWB(hue, whiteness, blackness, alpha float64) Color {
	return Color{
		space:     SpaceHwb,
		hue:       wrapHue(hue),
		whiteness: clampPct(whiteness),
		blackness: clampPct(blackness),
		alpha:     clampPct(alpha),
	}
}

// Space returns the canonical colorspace of the color.
func (c Color) Space() Space { return c.space }

// Hue returns the hue angle in [0,360).
func (c Color) Hue() float64 { return c.hue }

// Alpha returns the alpha channel, 0-100.
func (c Color) Alpha() float64 { return c.alpha }

// RGB returns the red, green and blue channels, converting if needed.
func (c Color) RGB() (r, g, b float64) {
	rgb := c.ToRGB()
	return rgb.red, rgb.green, rgb.blue
}

// HSL returns the hue, saturation and lightness channels.
func (c Color) HSL() (h, s, l float64) {
	hsl := c.ToHSL()
	return hsl.hue, hsl.saturation, hsl.lightness
}

// HWB returns the hue, whiteness and blackness channels.
func (c Color) HWB() (h, w, b float64) {
	hwb := c.ToHWB()
	return hwb.hue, hwb.whiteness, hwb.blackness
}

// ToRGB returns the color converted to the RGB space. The hue is
// carried over unchanged so achromatic colors keep it.
func (c Color) ToRGB() Color {
	switch c.space {
	case SpaceRgb:
		return c
	case SpaceHsl:
		r, g, b := hsl2rgb(c.hue, c.saturation, c.lightness)
		return Color{space: SpaceRgb, red: r, green: g, blue: b, hue: c.hue, alpha: c.alpha}
	default:
		r, g, b := hwb2rgb(c.hue, c.whiteness, c.blackness)
		return Color{space: SpaceRgb, red: r, green: g, blue: b, hue: c.hue, alpha: c.alpha}
	}
}

// ToHSL returns the color converted to the HSL space.
func (c Color) ToHSL() Color {
	switch c.space {
	case SpaceHsl:
		return c
	default:
		rgb := c.ToRGB()
		s, l := rgb2sl(rgb.red, rgb.green, rgb.blue)
		return Color{space: SpaceHsl, hue: rgb.hue, saturation: s, lightness: l, alpha: c.alpha}
	}
}

// ToHWB returns the color converted to the HWB space.
func (c Color) ToHWB() Color {
	switch c.space {
	case SpaceHwb:
		return c
	default:
		rgb := c.ToRGB()
		w := math.Min(rgb.red, math.Min(rgb.green, rgb.blue))
		b := 100 - math.Max(rgb.red, math.Max(rgb.green, rgb.blue))
		return Color{space: SpaceHwb, hue: rgb.hue, whiteness: w, blackness: b, alpha: c.alpha}
	}
}

// To converts the color into the requested space.
func (c Color) To(space Space) Color {
	switch space {
	case SpaceHsl:
		return c.ToHSL()
	case SpaceHwb:
		return c.ToHWB()
	default:
		return c.ToRGB()
	}
}

// Channel returns the value of the requested channel, converting the
// color to the channel's owning space first.
func (c Color) Channel(ch Channel) float64 {
	switch ch {
	case ChannelAlpha:
		return c.alpha
	case ChannelHue:
		return c.hue
	case ChannelRed:
		r, _, _ := c.RGB()
		return r
	case ChannelGreen:
		_, g, _ := c.RGB()
		return g
	case ChannelBlue:
		_, _, b := c.RGB()
		return b
	case ChannelSaturation:
		_, s, _ := c.HSL()
		return s
	case ChannelLightness:
		_, _, l := c.HSL()
		return l
	case ChannelWhiteness:
		_, w, _ := c.HWB()
		return w
	default:
		_, _, b := c.HWB()
		return b
	}
}

// WithChannel returns a new color with the requested channel set. The
// color is converted into the channel's owning space; non-hue channels
// clamp to [0,100], hue wraps into [0,360). Setting an RGB channel
// refreshes the cached hue using the previous hue as a stability hint.
func (c Color) WithChannel(ch Channel, v float64) Color {
	switch ch {
	case ChannelAlpha:
		c.alpha = clampPct(v)
		return c
	case ChannelHue:
		out := c
		if c.space == SpaceRgb {
			out = c.ToHSL()
		}
		out.hue = wrapHue(v)
		return out
	case ChannelRed, ChannelGreen, ChannelBlue:
		out := c.ToRGB()
		switch ch {
		case ChannelRed:
			out.red = clampPct(v)
		case ChannelGreen:
			out.green = clampPct(v)
		default:
			out.blue = clampPct(v)
		}
		out.hue = rgb2hue(out.red, out.green, out.blue, c.hue)
		return out
	case ChannelSaturation:
		out := c.ToHSL()
		out.saturation = clampPct(v)
		return out
	case ChannelLightness:
		out := c.ToHSL()
		out.lightness = clampPct(v)
		return out
	case ChannelWhiteness:
		out := c.ToHWB()
		out.whiteness = clampPct(v)
		return out
	default:
		out := c.ToHWB()
		out.blackness = clampPct(v)
		return out
	}
}

func clampPct(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
