package colormod

import (
	"strings"

	"cmod/color"
	"cmod/css"
)

// adjusterFunc applies one adjuster call to the accumulating color.
// On an unparseable argument list it reports through the unresolved
// policy and leaves the color unchanged so the fold can continue.
type adjusterFunc func(t *Transformer, c color.Color, n *css.Node, props Props, mode UnresolvedMode) (color.Color, error)

// adjusters maps adjuster names (including one-letter aliases) to their
// transforms. Populated in init, not at declaration: blend() resolves
// its color argument through the evaluator, which dispatches back
// through this table, and the package would not compile with the
// resulting initialization cycle. Lookup is by lowercased name.
var adjusters map[string]adjusterFunc

func init() {
	adjusters = buildAdjusters()
}

func buildAdjusters() map[string]adjusterFunc {
	m := make(map[string]adjusterFunc)
	register := func(fn adjusterFunc, names ...string) {
		for _, name := range names {
			m[name] = fn
		}
	}

	register(channelAdjuster("a", color.ChannelAlpha, argAlpha), "a", "alpha")
	register(channelAdjuster("red", color.ChannelRed, argRGBChannel), "red")
	register(channelAdjuster("green", color.ChannelGreen, argRGBChannel), "green")
	register(channelAdjuster("blue", color.ChannelBlue, argRGBChannel), "blue")
	register(channelAdjuster("saturation", color.ChannelSaturation, argPercentage), "s", "saturation")
	register(channelAdjuster("lightness", color.ChannelLightness, argPercentage), "l", "lightness")
	register(channelAdjuster("whiteness", color.ChannelWhiteness, argPercentage), "w", "whiteness")
	register(channelAdjuster("blackness", color.ChannelBlackness, argPercentage), "b", "blackness")
	register(hueAdjuster, "h", "hue")
	register(rgbAdjuster, "rgb")
	register(blendAdjuster(false), "blend")
	register(blendAdjuster(true), "blenda")
	register(shadeAdjuster, "shade")
	register(tintAdjuster, "tint")
	register(contrastAdjuster, "contrast")
	return m
}

// argRGBChannel accepts either a legacy 0-255 number or a percentage
// for the red/green/blue channel adjusters.
func argRGBChannel(n *css.Node) (any, bool) {
	if v, ok := parsePercentage(n); ok {
		return v, true
	}
	return argRGBNumber(n)
}

// channelAdjuster builds the common single-channel adjuster accepting
// `[+|-] value`, `* percentage` or a bare value.
func channelAdjuster(name string, ch color.Channel, value argFunc) adjusterFunc {
	return func(t *Transformer, c color.Color, n *css.Node, props Props, mode UnresolvedMode) (color.Color, error) {
		vals := matchArgs(splitSign(n.Nodes),
			[]argFunc{lit("+", "-"), value},
			[]argFunc{lit("*"), argPercentage},
			[]argFunc{value},
		)
		if len(vals) == 0 {
			return c, t.unresolved(mode, n, "Expected a valid "+name+"() adjuster")
		}

		cur := c.Channel(ch)
		if len(vals) == 1 {
			return c.WithChannel(ch, vals[0].(float64)), nil
		}
		v := vals[1].(float64)
		switch vals[0].(string) {
		case "+":
			return c.WithChannel(ch, cur+v), nil
		case "-":
			return c.WithChannel(ch, cur-v), nil
		default: // *
			return c.WithChannel(ch, cur*v/100), nil
		}
	}
}

// hueAdjuster rotates, scales or sets the hue angle; the result is
// always wrapped into [0,360).
func hueAdjuster(t *Transformer, c color.Color, n *css.Node, props Props, mode UnresolvedMode) (color.Color, error) {
	vals := matchArgs(splitSign(n.Nodes),
		[]argFunc{lit("+", "-", "*"), argHue},
		[]argFunc{argHue},
	)
	if len(vals) == 0 {
		return c, t.unresolved(mode, n, "Expected a valid hue() adjuster")
	}

	cur := c.Hue()
	if len(vals) == 1 {
		return c.WithChannel(color.ChannelHue, vals[0].(float64)), nil
	}
	v := vals[1].(float64)
	switch vals[0].(string) {
	case "+":
		return c.WithChannel(color.ChannelHue, cur+v), nil
	case "-":
		return c.WithChannel(color.ChannelHue, cur-v), nil
	default: // *
		return c.WithChannel(color.ChannelHue, cur*v), nil
	}
}

// rgbAdjuster shifts all three channels at once: by explicit amounts,
// by another color's channels, or by a uniform scale. The candidate
// grammars are tried in that order.
func rgbAdjuster(t *Transformer, c color.Color, n *css.Node, props Props, mode UnresolvedMode) (color.Color, error) {
	vals := matchArgs(splitSign(n.Nodes),
		[]argFunc{lit("+", "-"), argRGBNumber, argRGBNumber, argRGBNumber},
		[]argFunc{lit("+", "-"), argPercentage, argPercentage, argPercentage},
		[]argFunc{lit("+", "-"), argHexColor},
		[]argFunc{lit("*"), argPercentage},
	)
	if len(vals) == 0 {
		return c, t.unresolved(mode, n, "Expected a valid rgb() adjuster")
	}

	r, g, b := c.RGB()
	switch len(vals) {
	case 4:
		dr, dg, db := vals[1].(float64), vals[2].(float64), vals[3].(float64)
		if vals[0].(string) == "-" {
			dr, dg, db = -dr, -dg, -db
		}
		return withRGB(c, r+dr, g+dg, b+db), nil
	default:
		if vals[0].(string) == "*" {
			f := vals[1].(float64) / 100
			return withRGB(c, r*f, g*f, b*f), nil
		}
		or, og, ob := vals[1].(color.Color).RGB()
		if vals[0].(string) == "-" {
			or, og, ob = -or, -og, -ob
		}
		return withRGB(c, r+or, g+og, b+ob), nil
	}
}

func withRGB(c color.Color, r, g, b float64) color.Color {
	out := c.WithChannel(color.ChannelRed, r)
	out = out.WithChannel(color.ChannelGreen, g)
	return out.WithChannel(color.ChannelBlue, b)
}

// blendAdjuster interpolates toward another color: `<color>
// <percentage> <colorspace>?`, colorspace defaulting to rgb. blenda
// additionally interpolates the alpha channel.
func blendAdjuster(blendAlpha bool) adjusterFunc {
	return func(t *Transformer, c color.Color, n *css.Node, props Props, mode UnresolvedMode) (color.Color, error) {
		argColor := func(arg *css.Node) (any, bool) {
			if arg == nil {
				return nil, false
			}
			// sub-attempts never surface, only the exhausted whole does
			col, err := t.toColor(arg, props, UnresolvedModeIgnore)
			if err != nil || col == nil {
				return nil, false
			}
			return *col, true
		}
		argSpace := func(arg *css.Node) (any, bool) {
			if arg == nil || arg.Type != css.NodeWord {
				return nil, false
			}
			sp, err := color.ParseSpace(strings.ToLower(arg.Value))
			if err != nil {
				return nil, false
			}
			return sp, true
		}

		vals := matchArgs(n.Nodes,
			[]argFunc{argColor, argPercentage, argSpace},
			[]argFunc{argColor, argPercentage},
		)
		if len(vals) == 0 {
			return c, t.unresolved(mode, n, "Expected a valid blend() adjuster")
		}

		space := color.SpaceRgb
		if len(vals) == 3 {
			space = vals[2].(color.Space)
		}
		return color.Blend(c, vals[0].(color.Color), vals[1].(float64), space, blendAlpha), nil
	}
}

func shadeAdjuster(t *Transformer, c color.Color, n *css.Node, props Props, mode UnresolvedMode) (color.Color, error) {
	vals := matchArgs(n.Nodes, []argFunc{argPercentage})
	if len(vals) == 0 {
		return c, t.unresolved(mode, n, "Expected a valid shade() adjuster")
	}
	return color.Shade(c, vals[0].(float64)), nil
}

func tintAdjuster(t *Transformer, c color.Color, n *css.Node, props Props, mode UnresolvedMode) (color.Color, error) {
	vals := matchArgs(n.Nodes, []argFunc{argPercentage})
	if len(vals) == 0 {
		return c, t.unresolved(mode, n, "Expected a valid tint() adjuster")
	}
	return color.Tint(c, vals[0].(float64)), nil
}

func contrastAdjuster(t *Transformer, c color.Color, n *css.Node, props Props, mode UnresolvedMode) (color.Color, error) {
	vals := matchArgs(n.Nodes, []argFunc{argPercentage})
	if len(vals) == 0 {
		return c, t.unresolved(mode, n, "Expected a valid contrast() adjuster")
	}
	return color.Contrast(c, vals[0].(float64)), nil
}

// applyAdjusters folds adjuster calls over the base color left to
// right. Unrecognized adjusters report through the unresolved policy
// and leave the accumulating color untouched for that step.
func (t *Transformer) applyAdjusters(c color.Color, nodes []*css.Node, props Props, mode UnresolvedMode) (color.Color, error) {
	for _, n := range nodes {
		if n.Type != css.NodeFunction {
			if err := t.unresolved(mode, n, "Expected a valid color adjuster"); err != nil {
				return c, err
			}
			continue
		}
		fn, ok := adjusters[strings.ToLower(n.Value)]
		if !ok {
			if err := t.unresolved(mode, n, "Expected a valid color adjuster"); err != nil {
				return c, err
			}
			continue
		}
		next, err := fn(t, c, n, props, mode)
		if err != nil {
			return c, err
		}
		c = next
	}
	return c, nil
}
