package colormod

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"cmod/color"
	"cmod/css"
)

var (
	customPropRe = regexp.MustCompile(`^--[A-Za-z][\w-]*$`)
	hexColorRe   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}(?:[0-9a-fA-F]{2})?|[0-9a-fA-F]{3}[0-9a-fA-F]?)$`)
)

// IsCustomPropertyName reports whether s is a valid custom property
// name of the form --name.
func IsCustomPropertyName(s string) bool {
	return customPropRe.MatchString(s)
}

// meaningful filters out whitespace and comment nodes.
func meaningful(nodes []*css.Node) []*css.Node {
	out := make([]*css.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == css.NodeSpace || n.Type == css.NodeComment {
			continue
		}
		out = append(out, n)
	}
	return out
}

func isFunction(n *css.Node, names ...string) bool {
	if n == nil || n.Type != css.NodeFunction {
		return false
	}
	for _, name := range names {
		if strings.EqualFold(n.Value, name) {
			return true
		}
	}
	return false
}

func isValue(n *css.Node, v string) bool {
	return n != nil && (n.Type == css.NodeWord || n.Type == css.NodeDiv) && n.Value == v
}

func isComma(n *css.Node) bool { return isValue(n, ",") }
func isSlash(n *css.Node) bool { return isValue(n, "/") }

func isHexColor(n *css.Node) bool {
	return n != nil && n.Type == css.NodeWord && hexColorRe.MatchString(n.Value)
}

func isNamedColor(n *css.Node) bool {
	if n == nil || n.Type != css.NodeWord {
		return false
	}
	_, ok := color.FromName(n.Value)
	return ok
}

// parseNumber parses a plain CSS number token, no unit allowed.
func parseNumber(n *css.Node) (float64, bool) {
	if n == nil || n.Type != css.NodeWord {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parsePercentage parses a percentage token. The literal 0 counts as a
// unitless zero-percentage.
func parsePercentage(n *css.Node) (float64, bool) {
	if n == nil || n.Type != css.NodeWord {
		return 0, false
	}
	if n.Value == "0" {
		return 0, true
	}
	num, ok := strings.CutSuffix(n.Value, "%")
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// hueUnits maps angle units to their factor toward degrees. Order
// matters: grad must be tried before rad.
var hueUnits = []struct {
	suffix string
	factor float64
}{
	{"grad", 0.9},
	{"rad", 180 / math.Pi},
	{"deg", 1},
	{"turn", 360},
}

// parseHue parses a hue-bearing angle token: deg/grad/rad/turn or a
// unitless number taken as degrees. The result is not wrapped, callers
// wrap after arithmetic.
func parseHue(n *css.Node) (float64, bool) {
	if n == nil || n.Type != css.NodeWord {
		return 0, false
	}
	lower := strings.ToLower(n.Value)
	for _, u := range hueUnits {
		if num, ok := strings.CutSuffix(lower, u.suffix); ok {
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return 0, false
			}
			return v * u.factor, true
		}
	}
	v, err := strconv.ParseFloat(lower, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
