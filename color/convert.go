package color

import "math"

// Colorspace math follows the CSS Color specification formulas. All
// channels are on a 0-100 scale, hue in degrees.

// rgb2hue computes the hue angle of an RGB color. Achromatic colors
// (max == min) have no hue of their own, the fallback keeps round trips
// from destroying a previously known hue.
func rgb2hue(r, g, b, fallback float64) float64 {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min
	if delta == 0 {
		return wrapHue(fallback)
	}

	var hue float64
	switch max {
	case r:
		hue = (g - b) / delta
	case g:
		hue = 2 + (b-r)/delta
	default:
		hue = 4 + (r-g)/delta
	}
	return wrapHue(hue * 60)
}

// rgb2sl computes the saturation and lightness of an RGB color.
func rgb2sl(r, g, b float64) (s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	l = (max + min) / 2
	if delta == 0 {
		return 0, l
	}
	s = delta / (100 - math.Abs(2*l-100)) * 100
	return s, l
}

// hsl2rgb converts HSL channels to RGB channels.
func hsl2rgb(h, s, l float64) (r, g, b float64) {
	var t2 float64
	if l <= 50 {
		t2 = l * (s + 100) / 100
	} else {
		t2 = l + s - l*s/100
	}
	t1 := 2*l - t2

	r = hue2channel(t1, t2, h+120)
	g = hue2channel(t1, t2, h)
	b = hue2channel(t1, t2, h-120)
	return r, g, b
}

func hue2channel(t1, t2, hue float64) float64 {
	hue = wrapHue(hue)
	switch {
	case hue < 60:
		return t1 + (t2-t1)*hue/60
	case hue < 180:
		return t2
	case hue < 240:
		return t1 + (t2-t1)*(240-hue)/60
	default:
		return t1
	}
}

// hwb2rgb converts HWB channels to RGB channels. Whiteness and
// blackness are normalized when their sum exceeds 100.
func hwb2rgb(h, w, b float64) (float64, float64, float64) {
	if sum := w + b; sum > 100 {
		w = w / sum * 100
		b = b / sum * 100
	}

	// start from the pure hue and mix in white and black
	pr, pg, pb := hsl2rgb(h, 100, 50)
	f := func(ch float64) float64 {
		return ch*(100-w-b)/100 + w
	}
	return f(pr), f(pg), f(pb)
}

// Luminance returns the relative luminance of the color in [0,1], per
// the sRGB piecewise linearization with the 0.03928 breakpoint.
func Luminance(c Color) float64 {
	r, g, b := c.RGB()
	lin := func(ch float64) float64 {
		v := ch / 100
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(r) + 0.7152*lin(g) + 0.0722*lin(b)
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// (L1+0.05)/(L2+0.05) with L1 the lighter of the two.
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
