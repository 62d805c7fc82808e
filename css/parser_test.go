package css

import (
	"strings"
	"testing"
)

func TestParser_BasicRule(t *testing.T) {
	sheet := NewParser(nil).ParseString(`a { color: red; text-decoration: none; }`)

	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("Rules() = %d, want 1", len(rules))
	}
	r := rules[0]
	if r.Selector != "a" {
		t.Errorf("Selector = %q, want a", r.Selector)
	}
	if len(r.Declarations) != 2 {
		t.Fatalf("Declarations = %d, want 2", len(r.Declarations))
	}
	if r.Declarations[0].Property != "color" || r.Declarations[0].Value != "red" {
		t.Errorf("First declaration = %+v", r.Declarations[0])
	}
	if r.Declarations[1].Property != "text-decoration" || r.Declarations[1].Value != "none" {
		t.Errorf("Second declaration = %+v", r.Declarations[1])
	}
}

func TestParser_SelectorGroup(t *testing.T) {
	sheet := NewParser(nil).ParseString(`h1, h2, .title { font-weight: bold; }`)

	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("Rules() = %d, want 1", len(rules))
	}
	parts := rules[0].SelectorParts()
	if len(parts) != 3 {
		t.Fatalf("SelectorParts() = %v, want 3 parts", parts)
	}
	if parts[0] != "h1" || parts[1] != "h2" || parts[2] != ".title" {
		t.Errorf("SelectorParts() = %v", parts)
	}
}

func TestParser_CustomProperties(t *testing.T) {
	sheet := NewParser(nil).ParseString(`:root {
	--brand: #336699;
	--fallback: red;
	color: black;
}`)

	rules := sheet.RulesBySelector(":root")
	if len(rules) != 1 {
		t.Fatalf("RulesBySelector(:root) = %d, want 1", len(rules))
	}
	r := rules[0]
	if len(r.Declarations) != 3 {
		t.Fatalf("Declarations = %d, want 3", len(r.Declarations))
	}
	if !r.Declarations[0].Custom || r.Declarations[0].Property != "--brand" || r.Declarations[0].Value != "#336699" {
		t.Errorf("Custom property = %+v", r.Declarations[0])
	}
	if r.Declarations[2].Custom {
		t.Error("color declaration marked as custom property")
	}
}

func TestParser_AtRules(t *testing.T) {
	sheet := NewParser(nil).ParseString(`@import url("base.css");

@media screen {
	a { color: blue; }
}

@font-face {
	font-family: "Test";
}`)

	if len(sheet.Items) != 3 {
		t.Fatalf("Items = %d, want 3", len(sheet.Items))
	}

	imp := sheet.Items[0].AtRule
	if imp == nil || imp.Name != "@import" || imp.HasBlock {
		t.Errorf("First item = %+v, want simple @import", sheet.Items[0])
	}

	media := sheet.Items[1].AtRule
	if media == nil || media.Name != "@media" || !media.HasBlock {
		t.Fatalf("Second item = %+v, want @media block", sheet.Items[1])
	}
	if media.Params != "screen" {
		t.Errorf("@media params = %q, want screen", media.Params)
	}
	if len(media.Items) != 1 || media.Items[0].Rule == nil {
		t.Fatalf("@media nested items = %+v, want one rule", media.Items)
	}

	ff := sheet.Items[2].AtRule
	if ff == nil || ff.Name != "@font-face" {
		t.Fatalf("Third item = %+v, want @font-face", sheet.Items[2])
	}
	if len(ff.Declarations) != 1 || ff.Declarations[0].Property != "font-family" {
		t.Errorf("@font-face declarations = %+v", ff.Declarations)
	}
}

func TestParser_RulesRecursesIntoAtRules(t *testing.T) {
	sheet := NewParser(nil).ParseString(`@media print {
	a { color: black; }
	p { margin: 0; }
}
b { font-weight: bold; }`)

	rules := sheet.Rules()
	if len(rules) != 3 {
		t.Fatalf("Rules() = %d, want 3 (two nested, one top)", len(rules))
	}
}

func TestParser_Comments(t *testing.T) {
	sheet := NewParser(nil).ParseString(`/* header */
a { color: red; }`)

	if len(sheet.Items) != 2 {
		t.Fatalf("Items = %d, want 2", len(sheet.Items))
	}
	if sheet.Items[0].Comment == nil || *sheet.Items[0].Comment != "/* header */" {
		t.Errorf("First item = %+v, want comment", sheet.Items[0])
	}
}

func TestStylesheet_WriteTo(t *testing.T) {
	input := `a { color: red; }
@media screen {
	b { color: blue; }
}`
	sheet := NewParser(nil).ParseString(input)

	var b strings.Builder
	n, err := sheet.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	got := b.String()
	if int64(len(got)) != n {
		t.Errorf("WriteTo() reported %d bytes, wrote %d", n, len(got))
	}

	want := "a {\n\tcolor: red;\n}\n\n@media screen {\n\tb {\n\t\tcolor: blue;\n\t}\n}\n"
	if got != want {
		t.Errorf("WriteTo():\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStylesheet_WriteToRoundTrip(t *testing.T) {
	input := "a {\n\tcolor: red;\n}\n"
	sheet := NewParser(nil).ParseString(input)

	var b strings.Builder
	if _, err := sheet.WriteTo(&b); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if b.String() != input {
		t.Errorf("Round trip changed output:\ngot:\n%s\nwant:\n%s", b.String(), input)
	}
}

func TestParser_DeclarationOutsideRule(t *testing.T) {
	sheet := NewParser(nil).ParseString(`color: red;`)
	if len(sheet.Warnings) == 0 {
		t.Error("Expected warning for declaration outside of any rule")
	}
}
