package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single property declaration inside a rule. Value is
// kept verbatim as written in the source.
type Declaration struct {
	Property string
	Value    string
	Custom   bool // --name custom property declaration
}

// Rule represents a single CSS rule (selector group + declarations in
// source order).
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// SelectorParts returns the comma-separated selectors of the group,
// trimmed.
func (r *Rule) SelectorParts() []string {
	parts := strings.Split(r.Selector, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// AtRule represents an @-rule, either a simple one (@import ...;) or a
// block one (@media ... { ... }) with nested items.
type AtRule struct {
	Name         string // includes the @, e.g. "@media"
	Params       string // prelude text after the name, trimmed
	HasBlock     bool
	Items        []Item        // nested items for block rules
	Declarations []Declaration // direct declarations (@font-face and the like)
}

// Item is a single stylesheet item. Exactly one field is non-nil.
type Item struct {
	Rule    *Rule
	AtRule  *AtRule
	Comment *string
}

// Stylesheet is a parsed CSS stylesheet.
type Stylesheet struct {
	Items    []Item
	Warnings []string
}

// Rules returns all rules in the stylesheet in source order, including
// rules nested inside block at-rules.
func (s *Stylesheet) Rules() []*Rule {
	var out []*Rule
	var walk func(items []Item)
	walk = func(items []Item) {
		for _, item := range items {
			switch {
			case item.Rule != nil:
				out = append(out, item.Rule)
			case item.AtRule != nil:
				walk(item.AtRule.Items)
			}
		}
	}
	walk(s.Items)
	return out
}

// AtRules returns all at-rules in source order, including at-rules
// nested inside other block at-rules.
func (s *Stylesheet) AtRules() []*AtRule {
	var out []*AtRule
	var walk func(items []Item)
	walk = func(items []Item) {
		for _, item := range items {
			if item.AtRule != nil {
				out = append(out, item.AtRule)
				walk(item.AtRule.Items)
			}
		}
	}
	walk(s.Items)
	return out
}

// RulesBySelector returns all rules whose raw selector matches.
func (s *Stylesheet) RulesBySelector(selector string) []*Rule {
	var matches []*Rule
	for _, r := range s.Rules() {
		if r.Selector == selector {
			matches = append(matches, r)
		}
	}
	return matches
}

// WriteTo writes the stylesheet in source order, implementing
// io.WriterTo. Declaration order within a rule is preserved.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	return writeItems(w, s.Items, 0)
}

func writeItems(w io.Writer, items []Item, depth int) (int64, error) {
	var total int64
	for i, item := range items {
		var n int64
		var err error

		switch {
		case item.Comment != nil:
			m, er := fmt.Fprintf(w, "%s%s\n", indent(depth), *item.Comment)
			n, err = int64(m), er
		case item.AtRule != nil:
			n, err = writeAtRule(w, item.AtRule, depth)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, depth)
		}

		total += n
		if err != nil {
			return total, err
		}

		// blank line between top-level items
		if depth == 0 && i < len(items)-1 {
			m, er := fmt.Fprint(w, "\n")
			total += int64(m)
			if er != nil {
				return total, er
			}
		}
	}
	return total, nil
}

func writeRule(w io.Writer, r *Rule, depth int) (int64, error) {
	var total int64

	n, err := fmt.Fprintf(w, "%s%s {\n", indent(depth), r.Selector)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, d := range r.Declarations {
		n, err = fmt.Fprintf(w, "%s\t%s: %s;\n", indent(depth), d.Property, d.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent(depth))
	total += int64(n)
	return total, err
}

func writeAtRule(w io.Writer, a *AtRule, depth int) (int64, error) {
	var total int64

	head := a.Name
	if a.Params != "" {
		head += " " + a.Params
	}
	if !a.HasBlock {
		n, err := fmt.Fprintf(w, "%s%s;\n", indent(depth), head)
		return int64(n), err
	}

	n, err := fmt.Fprintf(w, "%s%s {\n", indent(depth), head)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, d := range a.Declarations {
		n, err = fmt.Fprintf(w, "%s\t%s: %s;\n", indent(depth), d.Property, d.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	m, err := writeItems(w, a.Items, depth+1)
	total += m
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent(depth))
	total += int64(n)
	return total, err
}

func indent(depth int) string {
	return strings.Repeat("\t", depth)
}
