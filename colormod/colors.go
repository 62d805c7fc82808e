package colormod

import (
	"cmod/color"
	"cmod/css"
)

// Argument transforms shared by the color-function grammars. Legacy
// 0-255 channel bytes and 0-1 alpha numbers are rescaled to the 0-100
// percentage scale the color model uses; the byte scale factor is
// applied as v*100/255, not a binary 2.55 divide, so exact byte values
// survive repeated adjustments without drift.

func argRGBNumber(n *css.Node) (any, bool) {
	v, ok := parseNumber(n)
	if !ok {
		return nil, false
	}
	return v * 100 / 255, true
}

func argPercentage(n *css.Node) (any, bool) {
	v, ok := parsePercentage(n)
	if !ok {
		return nil, false
	}
	return v, true
}

func argAlpha(n *css.Node) (any, bool) {
	if v, ok := parsePercentage(n); ok {
		return v, true
	}
	if v, ok := parseNumber(n); ok {
		return v * 100, true
	}
	return nil, false
}

func argHue(n *css.Node) (any, bool) {
	v, ok := parseHue(n)
	if !ok {
		return nil, false
	}
	return v, true
}

func argHexColor(n *css.Node) (any, bool) {
	if n == nil || !isHexColor(n) {
		return nil, false
	}
	c, ok := color.FromHex(n.Value)
	if !ok {
		return nil, false
	}
	return c, true
}

// toColor resolves a node to a base color. Dispatch order is fixed:
// rgb/rgba, hsl/hsla, hwb, nested color-mod, hex literal, named color;
// the first recognizer that applies wins.
func (t *Transformer) toColor(n *css.Node, props Props, mode UnresolvedMode) (*color.Color, error) {
	switch {
	case isFunction(n, "rgb", "rgba"):
		return t.rgbColor(n, mode)
	case isFunction(n, "hsl", "hsla"):
		return t.hslColor(n, mode)
	case isFunction(n, "hwb"):
		return t.hwbColor(n, mode)
	case isFunction(n, "color-mod"):
		return t.evalColorMod(n, props, mode)
	case isHexColor(n):
		c, _ := color.FromHex(n.Value)
		return &c, nil
	case isNamedColor(n):
		c, _ := color.FromName(n.Value)
		return &c, nil
	default:
		return nil, t.unresolved(mode, n, "Expected a color")
	}
}

func (t *Transformer) rgbColor(n *css.Node, mode UnresolvedMode) (*color.Color, error) {
	vals := matchArgs(n.Nodes,
		[]argFunc{argRGBNumber, argRGBNumber, argRGBNumber, sep(isSlash), argAlpha},
		[]argFunc{argPercentage, argPercentage, argPercentage, sep(isSlash), argAlpha},
		[]argFunc{argRGBNumber, sep(isComma), argRGBNumber, sep(isComma), argRGBNumber, sep(isComma), argAlpha},
		[]argFunc{argPercentage, sep(isComma), argPercentage, sep(isComma), argPercentage, sep(isComma), argAlpha},
		[]argFunc{argRGBNumber, argRGBNumber, argRGBNumber},
		[]argFunc{argPercentage, argPercentage, argPercentage},
		[]argFunc{argRGBNumber, sep(isComma), argRGBNumber, sep(isComma), argRGBNumber},
		[]argFunc{argPercentage, sep(isComma), argPercentage, sep(isComma), argPercentage},
	)
	if len(vals) == 0 {
		return nil, t.unresolved(mode, n, "Expected a valid rgb() function")
	}
	alpha := 100.0
	if len(vals) == 4 {
		alpha = vals[3].(float64)
	}
	c := color.NewRGB(vals[0].(float64), vals[1].(float64), vals[2].(float64), alpha)
	return &c, nil
}

func (t *Transformer) hslColor(n *css.Node, mode UnresolvedMode) (*color.Color, error) {
	vals := matchArgs(n.Nodes,
		[]argFunc{argHue, argPercentage, argPercentage, sep(isSlash), argAlpha},
		[]argFunc{argHue, sep(isComma), argPercentage, sep(isComma), argPercentage, sep(isComma), argAlpha},
		[]argFunc{argHue, argPercentage, argPercentage},
		[]argFunc{argHue, sep(isComma), argPercentage, sep(isComma), argPercentage},
	)
	if len(vals) == 0 {
		return nil, t.unresolved(mode, n, "Expected a valid hsl() function")
	}
	alpha := 100.0
	if len(vals) == 4 {
		alpha = vals[3].(float64)
	}
	c := color.NewHSL(vals[0].(float64), vals[1].(float64), vals[2].(float64), alpha)
	return &c, nil
}

func (t *Transformer) hwbColor(n *css.Node, mode UnresolvedMode) (*color.Color, error) {
	vals := matchArgs(n.Nodes,
		[]argFunc{argHue, argPercentage, argPercentage, sep(isSlash), argAlpha},
		[]argFunc{argHue, sep(isComma), argPercentage, sep(isComma), argPercentage, sep(isComma), argAlpha},
		[]argFunc{argHue, argPercentage, argPercentage},
		[]argFunc{argHue, sep(isComma), argPercentage, sep(isComma), argPercentage},
	)
	if len(vals) == 0 {
		return nil, t.unresolved(mode, n, "Expected a valid hwb() function")
	}
	alpha := 100.0
	if len(vals) == 4 {
		alpha = vals[3].(float64)
	}
	c := color.NewHWB(vals[0].(float64), vals[1].(float64), vals[2].(float64), alpha)
	return &c, nil
}
