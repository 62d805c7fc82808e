// Package convert drives color-mod() resolution across whole
// stylesheets: it harvests custom properties, transforms every
// declaration value and serializes the result.
package convert

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cmod/colormod"
	"cmod/css"
)

// Options controls a stylesheet pass.
type Options struct {
	// Unresolved, Stringify and TransformVars configure the underlying
	// expression transformer.
	Unresolved    colormod.UnresolvedMode
	Stringify     colormod.Stringifier
	TransformVars bool
	// Props are externally supplied custom properties; properties
	// harvested from the stylesheet itself take precedence.
	Props colormod.Props
	// RemoveCustomProperties deletes harvested custom property
	// declarations from the output.
	RemoveCustomProperties bool
}

// Processor applies color-mod() resolution to stylesheets.
type Processor struct {
	log   *zap.Logger
	tr    *colormod.Transformer
	opts  Options
	debug bool
}

// NewProcessor creates a stylesheet processor.
func NewProcessor(opts Options, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("transform")
	return &Processor{
		log:   log,
		tr:    colormod.New(colormod.Options{Unresolved: opts.Unresolved, Stringify: opts.Stringify, TransformVars: opts.TransformVars}, log),
		opts:  opts,
		debug: log.Core().Enabled(zap.DebugLevel),
	}
}

// Warnings returns diagnostics collected under the warn policy.
func (p *Processor) Warnings() []*colormod.UnresolvedError {
	return p.tr.Warnings()
}

// Stylesheet resolves every color-mod() expression in the sheet in
// source order, covering both regular rules and declarations sitting
// directly on an at-rule (@font-face and the like). Under the throw
// policy the first failure aborts with a contextualized error; value
// tokenization problems never abort and are aggregated instead.
func (p *Processor) Stylesheet(sheet *css.Stylesheet) error {
	props := MergeProps(p.opts.Props, HarvestProps(sheet, p.log))

	var errs error
	for _, rule := range sheet.Rules() {
		if err := p.declarations(rule.Selector, rule.Declarations, props, &errs); err != nil {
			return err
		}
	}
	for _, ar := range sheet.AtRules() {
		if len(ar.Declarations) == 0 {
			continue
		}
		where := ar.Name
		if ar.Params != "" {
			where += " " + ar.Params
		}
		if err := p.declarations(where, ar.Declarations, props, &errs); err != nil {
			return err
		}
	}

	if p.opts.RemoveCustomProperties {
		removeCustomProperties(sheet)
	}
	return errs
}

func (p *Processor) declarations(where string, decls []css.Declaration, props colormod.Props, errs *error) error {
	for i := range decls {
		d := &decls[i]
		if !strings.Contains(strings.ToLower(d.Value), "color-mod(") {
			continue
		}

		nodes, err := css.ParseValue(d.Value)
		if err != nil {
			*errs = multierr.Append(*errs, fmt.Errorf("%s { %s }: %w", where, d.Property, err))
			continue
		}
		if p.debug {
			p.log.Debug("Parsed declaration value",
				zap.String("context", where),
				zap.String("property", d.Property),
				zap.String("tree", css.DumpNodes(nodes)))
		}

		changed, err := p.tr.TransformNodes(nodes, props)
		if err != nil {
			return multierr.Append(*errs, fmt.Errorf("%s { %s }: %w", where, d.Property, err))
		}
		if changed {
			d.Value = css.Raw(nodes)
		}
	}
	return nil
}

// removeCustomProperties drops custom property declarations from the
// root-level rules they were harvested from; rules left without any
// declarations are dropped entirely.
func removeCustomProperties(sheet *css.Stylesheet) {
	items := sheet.Items[:0]
	for _, item := range sheet.Items {
		if item.Rule != nil && selectorTargetsRoot(item.Rule.Selector) {
			kept := item.Rule.Declarations[:0]
			for _, d := range item.Rule.Declarations {
				if !d.Custom {
					kept = append(kept, d)
				}
			}
			item.Rule.Declarations = kept
			if len(kept) == 0 {
				continue
			}
		}
		items = append(items, item)
	}
	sheet.Items = items
}
