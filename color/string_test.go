package color

import (
	"testing"
)

func TestStringLegacy(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"opaque rgb", NewRGB(100, 0, 0, 100), "rgb(255, 0, 0)"},
		{"translucent rgb", NewRGB(100, 0, 0, 50), "rgba(255, 0, 0, 0.5)"},
		{"byte rounding", NewRGB(20, 40, 60, 100), "rgb(51, 102, 153)"},
		{"half byte rounds up", NewRGB(50, 0, 0, 100), "rgb(128, 0, 0)"},
		{"opaque hsl", NewHSL(120, 100, 50, 100), "hsl(120, 100%, 50%)"},
		{"translucent hsl", NewHSL(120, 100, 50, 25), "hsla(120, 100%, 50%, 0.25)"},
		{"hwb renders rgb bytes", NewHWB(0, 0, 20, 100), "rgb(204, 0, 0)"},
		{"translucent hwb renders rgba", NewHWB(0, 0, 20, 50), "rgba(204, 0, 0, 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.StringLegacy(); got != tt.want {
				t.Errorf("StringLegacy() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringModern(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"opaque rgb", NewRGB(100, 0, 0, 100), "rgb(100% 0% 0%)"},
		{"translucent rgb", NewRGB(100, 0, 0, 50), "rgb(100% 0% 0% / 50%)"},
		{"opaque hsl", NewHSL(210, 50, 40, 100), "hsl(210 50% 40%)"},
		{"translucent hwb", NewHWB(210, 20, 40, 75), "hwb(210 20% 40% / 75%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.StringModern(); got != tt.want {
				t.Errorf("StringModern() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString_AlphaElision(t *testing.T) {
	// alpha only one float ulp below 100 still counts as opaque after rounding
	c := NewRGB(0, 0, 0, 100-1e-12)
	if got := c.StringLegacy(); got != "rgb(0, 0, 0)" {
		t.Errorf("StringLegacy() = %q, want alpha elided", got)
	}
	// but a real fraction is kept
	c = NewRGB(0, 0, 0, 99.9)
	if got := c.StringLegacy(); got != "rgba(0, 0, 0, 0.999)" {
		t.Errorf("StringLegacy() = %q, want rgba(0, 0, 0, 0.999)", got)
	}
}

func TestString_RoundsFloatNoise(t *testing.T) {
	// conversion noise must not leak into output
	c := NewHSL(210, 100, 50, 100).ToRGB()
	if got := c.StringModern(); got != "rgb(0% 50% 100%)" {
		t.Errorf("StringModern() = %q, want rgb(0%% 50%% 100%%)", got)
	}
}

func TestString_DefaultIsLegacy(t *testing.T) {
	c := NewRGB(100, 0, 0, 100)
	if c.String() != c.StringLegacy() {
		t.Error("String() should match StringLegacy()")
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#ff0000", "rgb(255, 0, 0)", true},
		{"#f00", "rgb(255, 0, 0)", true},
		{"#33669980", "rgba(51, 102, 153, 0.5019607843)", true},
		{"ff0000", "", false},
		{"#zzz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, ok := FromHex(tt.in)
			if ok != tt.ok {
				t.Fatalf("FromHex(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got := c.StringLegacy(); got != tt.want {
				t.Errorf("FromHex(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromName(t *testing.T) {
	c, ok := FromName("red")
	if !ok {
		t.Fatal("FromName(red) failed")
	}
	if got := c.StringLegacy(); got != "rgb(255, 0, 0)" {
		t.Errorf("FromName(red) = %q", got)
	}

	if _, ok := FromName("RebeccaPurple"); !ok {
		t.Error("FromName should be case insensitive")
	}
	if _, ok := FromName("notacolorname"); ok {
		t.Error("FromName accepted a non-color")
	}
	if _, ok := FromName("#ff0000"); ok {
		t.Error("FromName accepted a hex literal")
	}
}
