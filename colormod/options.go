package colormod

import "cmod/color"

// Stringifier renders a resolved color back to CSS text.
type Stringifier func(color.Color) string

// Options controls a transform run.
type Options struct {
	// Unresolved selects what happens when a construct cannot be
	// parsed: a hard failure, a positioned warning with the call site
	// left verbatim, or a silent skip.
	Unresolved UnresolvedMode
	// Stringify renders the final color. Defaults to the legacy
	// comma syntax.
	Stringify Stringifier
	// TransformVars inlines var() references before color evaluation.
	TransformVars bool
}

// DefaultOptions returns the default transform behavior: hard failures,
// legacy output syntax, var() inlining enabled.
func DefaultOptions() Options {
	return Options{
		Unresolved:    UnresolvedModeThrow,
		Stringify:     color.Color.StringLegacy,
		TransformVars: true,
	}
}
