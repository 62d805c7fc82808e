package color

import "math"

// Blend linearly interpolates from base toward other in the requested
// colorspace. percentage is the weight toward other: 0 keeps base, 100
// yields other. Alpha is interpolated only when blendAlpha is set,
// otherwise base's alpha is kept.
func Blend(base, other Color, percentage float64, space Space, blendAlpha bool) Color {
	add := percentage / 100
	sub := 1 - add

	alpha := base.alpha
	if blendAlpha {
		alpha = base.alpha*sub + other.alpha*add
	}

	switch space {
	case SpaceHsl:
		h1, s1, l1 := base.HSL()
		h2, s2, l2 := other.HSL()
		return NewHSL(h1*sub+h2*add, s1*sub+s2*add, l1*sub+l2*add, alpha)
	case SpaceHwb:
		h1, w1, b1 := base.HWB()
		h2, w2, b2 := other.HWB()
		return NewHWB(h1*sub+h2*add, w1*sub+w2*add, b1*sub+b2*add, alpha)
	default:
		r1, g1, b1 := base.RGB()
		r2, g2, b2 := other.RGB()
		out := NewRGB(r1*sub+r2*add, g1*sub+g2*add, b1*sub+b2*add, alpha)
		// keep the hue stable when the result is achromatic
		out.hue = rgb2hue(out.red, out.green, out.blue, base.hue*sub+other.hue*add)
		return out
	}
}

// Shade blends the color toward pure black in the HWB space.
func Shade(c Color, percentage float64) Color {
	hwb := c.ToHWB()
	black := NewHWB(hwb.hue, 0, 100, c.alpha)
	return Blend(hwb, black, percentage, SpaceHwb, false)
}

// Tint blends the color toward pure white in the HWB space.
func Tint(c Color, percentage float64) Color {
	hwb := c.ToHWB()
	white := NewHWB(hwb.hue, 100, 0, c.alpha)
	return Blend(hwb, white, percentage, SpaceHwb, false)
}

// Contrast implements the CSS contrast() adjuster. The maximum-contrast
// extreme (pure white or pure black at the color's hue) is picked by
// luminance; when that extreme exceeds the 4.5 threshold the result is
// blended from it toward the minimum color still above the threshold,
// otherwise toward the extreme itself. percentage 0 keeps maximum
// contrast, 100 yields the minimum-contrast color.
func Contrast(c Color, percentage float64) Color {
	hwb := c.ToHWB()

	var extreme Color
	if Luminance(c) < 0.5 {
		extreme = NewHWB(hwb.hue, 100, 0, c.alpha)
	} else {
		extreme = NewHWB(hwb.hue, 0, 100, c.alpha)
	}

	minContrast := extreme
	if ContrastRatio(c, extreme) > 4.5 {
		minContrast = minContrastColor(hwb, extreme)
	}
	return Blend(extreme, minContrast, percentage, SpaceHwb, false)
}

// minContrastColor bisects between the color and the maximum-contrast
// extreme for the color closest to base whose contrast ratio against it
// is still above 4.5. Whiteness and blackness move in integer steps;
// each iteration halves the remaining interval so the search is
// bounded.
func minContrastColor(base, extreme Color) Color {
	minW, minB := base.whiteness, base.blackness
	maxW, maxB := extreme.whiteness, extreme.blackness
	result := extreme

	for math.Abs(minW-maxW) > 1 || math.Abs(minB-maxB) > 1 {
		midW := math.Round((maxW + minW) / 2)
		midB := math.Round((maxB + minB) / 2)
		mid := NewHWB(base.hue, midW, midB, base.alpha)
		if ContrastRatio(mid, base) > 4.5 {
			maxW, maxB = midW, midB
			result = mid
		} else {
			minW, minB = midW, midB
		}
	}
	return result
}
