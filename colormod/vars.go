package colormod

import (
	"regexp"

	"cmod/css"
)

// Props maps custom property names (--name) to their parsed values.
// The resolver never mutates table entries; referenced values are
// deep-copied before any nested expansion.
type Props map[string][]*css.Node

var looseVarRe = regexp.MustCompile(`(?i)var\(`)

// maxExpandDepth bounds reference chains; a self-referential custom
// property would otherwise recurse until the stack overflows.
const maxExpandDepth = 32

// expandVariables resolves var() references depth-first against the
// custom property table and returns the rewritten node list. A var()
// whose property is unknown falls back to its fallback clause when one
// is present; otherwise the reference is left in place and fails later
// color parsing under the caller's unresolved policy.
func expandVariables(nodes []*css.Node, props Props) []*css.Node {
	return expandVars(nodes, props, 0)
}

func expandVars(nodes []*css.Node, props Props, depth int) []*css.Node {
	if depth > maxExpandDepth {
		return nodes
	}
	out := make([]*css.Node, 0, len(nodes))
	for _, n := range nodes {
		if !isFunction(n, "var") {
			if len(n.Nodes) > 0 {
				n.Nodes = expandVars(n.Nodes, props, depth+1)
			}
			out = append(out, n)
			continue
		}

		name, fallback := splitVarArgs(n)
		if value, ok := props[name]; ok {
			clone := css.CloneNodes(value)
			// textual pre-check before structural expansion saves the
			// recursion on values that reference nothing
			if looseVarRe.MatchString(css.Raw(clone)) {
				clone = expandVars(clone, props, depth+1)
			}
			out = append(out, clone...)
			continue
		}
		if len(fallback) > 0 {
			out = append(out, expandVars(css.CloneNodes(fallback), props, depth+1)...)
			continue
		}
		out = append(out, n)
	}
	return out
}

// splitVarArgs picks the referenced property name and the fallback
// node sequence (everything after the first comma) out of a var() call.
func splitVarArgs(n *css.Node) (name string, fallback []*css.Node) {
	for i, child := range n.Nodes {
		if name == "" {
			if child.Type == css.NodeWord && IsCustomPropertyName(child.Value) {
				name = child.Value
			}
			continue
		}
		if child.Type == css.NodeDiv && child.Value == "," {
			fallback = n.Nodes[i+1:]
			// drop leading whitespace of the fallback
			for len(fallback) > 0 && fallback[0].Type == css.NodeSpace {
				fallback = fallback[1:]
			}
			break
		}
	}
	return name, fallback
}
