package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cmod/colormod"
	"cmod/css"
)

// HarvestProps collects custom property declarations from the
// stylesheet's :root and html rules into a custom property table.
func HarvestProps(sheet *css.Stylesheet, log *zap.Logger) colormod.Props {
	if log == nil {
		log = zap.NewNop()
	}
	props := make(colormod.Props)
	for _, rule := range sheet.Rules() {
		if !selectorTargetsRoot(rule.Selector) {
			continue
		}
		for _, d := range rule.Declarations {
			if !d.Custom || !colormod.IsCustomPropertyName(d.Property) {
				continue
			}
			nodes, err := css.ParseValue(d.Value)
			if err != nil {
				log.Debug("Skipping unparseable custom property", zap.String("property", d.Property), zap.Error(err))
				continue
			}
			props[d.Property] = nodes
		}
	}
	return props
}

// MergeProps merges custom property tables; later tables win.
func MergeProps(tables ...colormod.Props) colormod.Props {
	out := make(colormod.Props)
	for _, t := range tables {
		for name, value := range t {
			out[name] = value
		}
	}
	return out
}

// LoadProps reads custom properties from a file. YAML and JSON files
// hold a flat map from --name to a CSS value string (YAML being a JSON
// superset, one decoder covers both); CSS files are harvested like the
// input stylesheet.
func LoadProps(path string, log *zap.Logger) (colormod.Props, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read variables from %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		var m map[string]string
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("unable to decode variables from %q: %w", path, err)
		}
		props := make(colormod.Props, len(m))
		for name, value := range m {
			if !colormod.IsCustomPropertyName(name) {
				return nil, fmt.Errorf("invalid custom property name %q in %q", name, path)
			}
			nodes, err := css.ParseValue(value)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %q in %q: %w", name, path, err)
			}
			props[name] = nodes
		}
		return props, nil
	case ".css":
		sheet := css.NewParser(log).Parse(data, path)
		return HarvestProps(sheet, log), nil
	default:
		return nil, fmt.Errorf("unsupported variables file %q (expected .yaml, .yml, .json or .css)", path)
	}
}

// selectorTargetsRoot reports whether any selector of the group is the
// document root (:root or html).
func selectorTargetsRoot(selector string) bool {
	for _, part := range strings.Split(selector, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == ":root" || part == "html" {
			return true
		}
	}
	return false
}
