// Package colormod resolves CSS color-mod() expressions inside parsed
// declaration values: it substitutes var() references, interprets the
// base color, folds adjuster calls over it and replaces the call site
// with the final color string.
package colormod

// Specification of how unresolvable constructs are reported.
// ENUM(throw, warn, ignore)
type UnresolvedMode int
