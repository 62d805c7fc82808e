package colormod

import (
	"go.uber.org/zap"

	"cmod/color"
	"cmod/css"
)

// Transformer resolves color-mod() call sites inside declaration value
// trees. It is not safe for concurrent use; call sites within one tree
// are evaluated sequentially in source order.
type Transformer struct {
	opts     Options
	log      *zap.Logger
	warnings []*UnresolvedError
}

// New creates a transformer. A nil logger disables logging.
func New(opts Options, log *zap.Logger) *Transformer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Stringify == nil {
		opts.Stringify = color.Color.StringLegacy
	}
	return &Transformer{opts: opts, log: log.Named("color-mod")}
}

// Warnings returns the positioned diagnostics collected so far under
// the warn policy, in encounter order.
func (t *Transformer) Warnings() []*UnresolvedError {
	return t.warnings
}

// unresolved reports a construct that matched no expected grammar.
// Under throw it returns the error, under warn it records and logs a
// positioned diagnostic, under ignore it is silent; warn and ignore
// both leave the call site verbatim.
func (t *Transformer) unresolved(mode UnresolvedMode, n *css.Node, msg string) error {
	switch mode {
	case UnresolvedModeIgnore:
		return nil
	case UnresolvedModeWarn:
		ue := &UnresolvedError{Message: msg, Token: n.String(), Offset: n.Offset}
		t.warnings = append(t.warnings, ue)
		t.log.Warn("Unresolved construct",
			zap.String("cause", msg), zap.String("token", ue.Token), zap.Int("offset", ue.Offset))
		return nil
	default:
		return &UnresolvedError{Message: msg, Token: n.String(), Offset: n.Offset}
	}
}

// TransformNodes resolves every color-mod() call site in the tree,
// replacing each with a single word node holding the stringified
// result. Resolution is depth-first in source order; a call site that
// fails under warn or ignore is left verbatim. Reports whether any
// replacement happened.
func (t *Transformer) TransformNodes(nodes []*css.Node, props Props) (bool, error) {
	changed := false
	for i := range nodes {
		n := nodes[i]
		if isFunction(n, "color-mod") {
			repl, err := t.transformCallSite(n, props)
			if err != nil {
				return changed, err
			}
			if repl != nil {
				nodes[i] = repl
				changed = true
			}
			continue
		}
		if len(n.Nodes) > 0 {
			c, err := t.TransformNodes(n.Nodes, props)
			changed = changed || c
			if err != nil {
				return changed, err
			}
		}
	}
	return changed, nil
}

// TransformValue parses a declaration value, resolves it, and returns
// the serialized result. The input is returned unchanged when no call
// site resolved.
func (t *Transformer) TransformValue(value string, props Props) (string, bool, error) {
	nodes, err := css.ParseValue(value)
	if err != nil {
		return value, false, err
	}
	changed, err := t.TransformNodes(nodes, props)
	if err != nil {
		return value, false, err
	}
	if !changed {
		return value, false, nil
	}
	return css.Raw(nodes), true, nil
}

func (t *Transformer) transformCallSite(n *css.Node, props Props) (*css.Node, error) {
	c, err := t.evalColorMod(n, props, t.opts.Unresolved)
	if err != nil || c == nil {
		return nil, err
	}
	out := t.opts.Stringify(*c)
	t.log.Debug("Resolved color-mod()", zap.String("from", n.String()), zap.String("to", out))
	return css.NewWord(out, n.Offset), nil
}

// evalColorMod evaluates one color-mod() call: var() inlining, base
// color (a full color literal or a bare hue seeding hsl(H 100% 50%)),
// then the adjuster fold.
func (t *Transformer) evalColorMod(n *css.Node, props Props, mode UnresolvedMode) (*color.Color, error) {
	if t.opts.TransformVars {
		n.Nodes = expandVariables(n.Nodes, props)
	}

	args := meaningful(n.Nodes)
	if len(args) == 0 {
		return nil, t.unresolved(mode, n, "Expected a color")
	}

	var base color.Color
	if deg, ok := parseHue(args[0]); ok {
		base = color.NewHSL(deg, 100, 50, 100)
	} else {
		c, err := t.toColor(args[0], props, mode)
		if err != nil || c == nil {
			return nil, err
		}
		base = *c
	}

	result, err := t.applyAdjusters(base, args[1:], props, mode)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
