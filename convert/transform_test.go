package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cmod/color"
	"cmod/colormod"
	"cmod/css"
)

func defaultOptions() Options {
	return Options{
		Unresolved:    colormod.UnresolvedModeThrow,
		Stringify:     color.Color.StringLegacy,
		TransformVars: true,
	}
}

func TestProcessor_Stylesheet(t *testing.T) {
	sheet := css.NewParser(nil).ParseString(`:root {
	--brand: #336699;
}

a {
	color: color-mod(var(--brand) blackness(+10%));
	background: white;
}

@media screen {
	b {
		border-color: color-mod(red shade(50%));
	}
}`)

	p := NewProcessor(defaultOptions(), nil)
	if err := p.Stylesheet(sheet); err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}

	a := sheet.RulesBySelector("a")[0]
	if a.Declarations[0].Value != "rgb(51, 89, 128)" {
		t.Errorf("color = %q, want rgb(51, 89, 128)", a.Declarations[0].Value)
	}
	if a.Declarations[1].Value != "white" {
		t.Errorf("untouched declaration changed: %q", a.Declarations[1].Value)
	}

	b := sheet.RulesBySelector("b")[0]
	if b.Declarations[0].Value != "rgb(128, 0, 0)" {
		t.Errorf("nested rule border-color = %q, want rgb(128, 0, 0)", b.Declarations[0].Value)
	}
}

func TestProcessor_AtRuleDeclarations(t *testing.T) {
	sheet := css.NewParser(nil).ParseString(`@font-face {
	font-family: brand;
	color: color-mod(red tint(50%));
}`)

	p := NewProcessor(defaultOptions(), nil)
	if err := p.Stylesheet(sheet); err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}

	ars := sheet.AtRules()
	if len(ars) != 1 || len(ars[0].Declarations) != 2 {
		t.Fatalf("AtRules() = %+v, want one @font-face with two declarations", ars)
	}
	if got := ars[0].Declarations[1].Value; got != "rgb(255, 128, 128)" {
		t.Errorf("at-rule declaration = %q, want rgb(255, 128, 128)", got)
	}
}

func TestProcessor_ExternalPropsLoseToStylesheet(t *testing.T) {
	sheet := css.NewParser(nil).ParseString(`:root { --brand: red; }
a { color: color-mod(var(--brand) tint(50%)); }`)

	opts := defaultOptions()
	opts.Props = colormod.Props{"--brand": mustValue(t, "blue")}

	p := NewProcessor(opts, nil)
	if err := p.Stylesheet(sheet); err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}

	got := sheet.RulesBySelector("a")[0].Declarations[0].Value
	if got != "rgb(255, 128, 128)" {
		t.Errorf("color = %q, stylesheet custom property should win over external table", got)
	}
}

func TestProcessor_RemoveCustomProperties(t *testing.T) {
	sheet := css.NewParser(nil).ParseString(`:root {
	--brand: red;
}

a {
	color: color-mod(var(--brand) shade(50%));
}`)

	opts := defaultOptions()
	opts.RemoveCustomProperties = true

	p := NewProcessor(opts, nil)
	if err := p.Stylesheet(sheet); err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}

	if len(sheet.RulesBySelector(":root")) != 0 {
		t.Error("Emptied :root rule should be dropped")
	}

	var b strings.Builder
	if _, err := sheet.WriteTo(&b); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	want := "a {\n\tcolor: rgb(128, 0, 0);\n}\n"
	if b.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestProcessor_KeepsNonCustomRootDeclarations(t *testing.T) {
	sheet := css.NewParser(nil).ParseString(`:root {
	--brand: red;
	color: black;
}`)

	opts := defaultOptions()
	opts.RemoveCustomProperties = true

	p := NewProcessor(opts, nil)
	if err := p.Stylesheet(sheet); err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}

	rules := sheet.RulesBySelector(":root")
	if len(rules) != 1 {
		t.Fatal(":root rule with remaining declarations should be kept")
	}
	if len(rules[0].Declarations) != 1 || rules[0].Declarations[0].Property != "color" {
		t.Errorf("Declarations = %+v, want only color", rules[0].Declarations)
	}
}

func TestProcessor_ThrowAborts(t *testing.T) {
	sheet := css.NewParser(nil).ParseString(`a { color: color-mod(nope); }`)

	p := NewProcessor(defaultOptions(), nil)
	err := p.Stylesheet(sheet)
	if err == nil {
		t.Fatal("Expected error under throw policy")
	}
	if !strings.Contains(err.Error(), "a { color }") {
		t.Errorf("error lacks rule context: %v", err)
	}
}

func TestProcessor_WarnCollects(t *testing.T) {
	sheet := css.NewParser(nil).ParseString(`a { color: color-mod(nope); border-color: color-mod(red tint(50%)); }`)

	opts := defaultOptions()
	opts.Unresolved = colormod.UnresolvedModeWarn

	p := NewProcessor(opts, nil)
	if err := p.Stylesheet(sheet); err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}

	if len(p.Warnings()) != 1 {
		t.Errorf("Warnings() = %d, want 1", len(p.Warnings()))
	}
	decls := sheet.RulesBySelector("a")[0].Declarations
	if decls[0].Value != "color-mod(nope)" {
		t.Errorf("failed declaration changed: %q", decls[0].Value)
	}
	if decls[1].Value != "rgb(255, 128, 128)" {
		t.Errorf("good declaration not transformed: %q", decls[1].Value)
	}
}

func TestHarvestProps(t *testing.T) {
	sheet := css.NewParser(nil).ParseString(`:root { --a: red; }
html { --b: #336699; }
div { --c: blue; }
:root, .dark { --d: black; }`)

	props := HarvestProps(sheet, nil)

	for _, want := range []string{"--a", "--b", "--d"} {
		if _, ok := props[want]; !ok {
			t.Errorf("HarvestProps missing %s", want)
		}
	}
	if _, ok := props["--c"]; ok {
		t.Error("HarvestProps picked up custom property outside :root/html")
	}
	if got := css.Raw(props["--b"]); got != "#336699" {
		t.Errorf("--b = %q, want #336699", got)
	}
}

func TestMergeProps(t *testing.T) {
	a := colormod.Props{"--x": mustValue(t, "red"), "--y": mustValue(t, "blue")}
	b := colormod.Props{"--x": mustValue(t, "green")}

	merged := MergeProps(a, b)
	if css.Raw(merged["--x"]) != "green" {
		t.Error("later table should win")
	}
	if css.Raw(merged["--y"]) != "blue" {
		t.Error("missing entry from first table")
	}
}

func TestLoadProps(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "vars.yaml")
		writeFile(t, path, "--brand: \"#336699\"\n--accent: red\n")

		props, err := LoadProps(path, nil)
		if err != nil {
			t.Fatalf("LoadProps() error = %v", err)
		}
		if css.Raw(props["--brand"]) != "#336699" || css.Raw(props["--accent"]) != "red" {
			t.Errorf("props = %v", props)
		}
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "vars.json")
		writeFile(t, path, `{"--brand": "#336699"}`)

		props, err := LoadProps(path, nil)
		if err != nil {
			t.Fatalf("LoadProps() error = %v", err)
		}
		if css.Raw(props["--brand"]) != "#336699" {
			t.Errorf("props = %v", props)
		}
	})

	t.Run("css", func(t *testing.T) {
		path := filepath.Join(dir, "vars.css")
		writeFile(t, path, ":root { --brand: #336699; }")

		props, err := LoadProps(path, nil)
		if err != nil {
			t.Fatalf("LoadProps() error = %v", err)
		}
		if css.Raw(props["--brand"]) != "#336699" {
			t.Errorf("props = %v", props)
		}
	})

	t.Run("bad name", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "brand: red\n")

		if _, err := LoadProps(path, nil); err == nil {
			t.Error("Expected error for name without -- prefix")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "vars.txt")
		writeFile(t, path, "--brand: red")

		if _, err := LoadProps(path, nil); err == nil {
			t.Error("Expected error for unsupported file type")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadProps(filepath.Join(dir, "nope.yaml"), nil); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}

func mustValue(t *testing.T, s string) []*css.Node {
	t.Helper()
	nodes, err := css.ParseValue(s)
	if err != nil {
		t.Fatalf("ParseValue(%q) error = %v", s, err)
	}
	return nodes
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
