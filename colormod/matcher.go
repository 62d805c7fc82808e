package colormod

import "cmod/css"

// argFunc inspects one argument node and either produces a value or
// reports that the candidate pattern does not apply at this position.
// The node is nil when the pattern is longer than the argument list.
type argFunc func(n *css.Node) (any, bool)

// skip is the result of a matched separator position; it is consumed by
// the matcher and not handed to the caller.
type skip struct{}

// sep adapts a separator predicate into a pattern position.
func sep(pred func(*css.Node) bool) argFunc {
	return func(n *css.Node) (any, bool) {
		if pred(n) {
			return skip{}, true
		}
		return nil, false
	}
}

// lit matches one of the given operator literals and yields it.
func lit(values ...string) argFunc {
	return func(n *css.Node) (any, bool) {
		for _, v := range values {
			if isValue(n, v) {
				return v, true
			}
		}
		return nil, false
	}
}

// splitSign splits a leading + or - off signed numeric tokens so the
// operator can be matched as its own position; the lexer folds the sign
// into the number, yet "+10%" and "+ 10%" are the same adjustment.
func splitSign(nodes []*css.Node) []*css.Node {
	out := make([]*css.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == css.NodeWord && len(n.Value) > 1 &&
			(n.Value[0] == '+' || n.Value[0] == '-') &&
			(n.Value[1] >= '0' && n.Value[1] <= '9' || n.Value[1] == '.') {
			out = append(out,
				css.NewWord(string(n.Value[0]), n.Offset),
				css.NewWord(n.Value[1:], n.Offset+1))
			continue
		}
		out = append(out, n)
	}
	return out
}

// matchArgs filters the function's children down to meaningful nodes
// and tries the candidate patterns in order, returning the values
// produced by the first pattern whose every position resolves. Failed
// candidates never surface; exhausting all of them returns nil. Nodes
// past the end of a pattern are not consulted, so longer overloads must
// be listed before their shorter prefixes.
func matchArgs(nodes []*css.Node, patterns ...[]argFunc) []any {
	args := meaningful(nodes)
	for _, pattern := range patterns {
		values := make([]any, 0, len(pattern))
		matched := true
		for i, fn := range pattern {
			var n *css.Node
			if i < len(args) {
				n = args[i]
			}
			v, ok := fn(n)
			if !ok {
				matched = false
				break
			}
			if _, isSep := v.(skip); !isSep {
				values = append(values, v)
			}
		}
		if matched {
			return values
		}
	}
	return nil
}
