package colour

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestIsHex(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"#fff", true},
		{"#ffff", true},
		{"#3b82f6", true},
		{"#3B82F6", true},
		{"#3b82f680", true},
		{"  #3b82f6  ", true},
		{"3b82f6", false},
		{"#3b82f", false},
		{"#ggg", false},
		{"", false},
		{"#", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsHex(tt.input); got != tt.want {
				t.Errorf("IsHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsNamed(t *testing.T) {
	for _, name := range []string{"red", "RebeccaPurple", " tomato "} {
		if !IsNamed(name) {
			t.Errorf("IsNamed(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "reddish", "#ff0000"} {
		if IsNamed(name) {
			t.Errorf("IsNamed(%q) = true, want false", name)
		}
	}
}

func TestNotation(t *testing.T) {
	tests := []struct {
		input   string
		want    Model
		wantErr bool
	}{
		{"#3b82f6", ModelHex, false},
		{"navy", ModelHex, false},
		{"rgb(0 0 0)", ModelRGB, false},
		{"RGBA(0, 0, 0, 0.5)", ModelRGB, false},
		{"hsl(0 0% 0%)", ModelHSL, false},
		{"hsla(0, 0%, 0%, 1)", ModelHSL, false},
		{"oklab(0.5 0 0)", ModelOKLab, false},
		{"oklch(0.5 0 0)", ModelOKLCH, false},
		{"lab(50 0 0)", "", true},
		{"rgb(0 0 0", "", true},
		{"plain", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Notation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Notation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnparseable) {
				t.Errorf("Notation(%q) error = %v, want ErrUnparseable", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Notation(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseEquivalentNotations(t *testing.T) {
	// All of these describe pure red.
	inputs := []string{
		"#f00",
		"#ff0000",
		"#ff0000ff",
		"red",
		"rgb(255, 0, 0)",
		"rgb(255 0 0)",
		"rgb(100% 0% 0%)",
		"rgba(255, 0, 0, 0.5)",
		"rgb(255 0 0 / 50%)",
		"hsl(0, 100%, 50%)",
		"hsl(0deg 100% 50%)",
		"hsl(1turn 100 50)",
		"hsla(360, 100%, 50%, 1)",
	}

	want, err := Parse("#ff0000")
	if err != nil {
		t.Fatalf("Parse(#ff0000) error = %v", err)
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", input, err)
			}
			if !closeOKLCH(got, want, 1e-6) {
				t.Errorf("Parse(%q) = %+v, want %+v", input, got, want)
			}
		})
	}
}

func TestParseKnownValues(t *testing.T) {
	// Reference OKLCH for sRGB red.
	got, err := Parse("#ff0000")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if math.Abs(got.L-0.628) > 0.002 || math.Abs(got.C-0.2577) > 0.002 || math.Abs(got.H-29.23) > 0.1 {
		t.Errorf("Parse(#ff0000) = %+v, want approx {0.628 0.2577 29.23}", got)
	}

	grey, err := Parse("#808080")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if grey.C != 0 || grey.H != 0 {
		t.Errorf("Parse(#808080) chroma/hue = %v/%v, want 0/0", grey.C, grey.H)
	}
}

func TestParseGreysAreAchromatic(t *testing.T) {
	inputs := []string{"#808080", "gray", "white", "black", "rgb(128 128 128)", "hsl(0 0% 50%)", "hsl(200 0% 20%)"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", input, err)
			}
			if got.C != 0 || got.H != 0 {
				t.Errorf("Parse(%q) = %+v, want zero chroma and hue", input, got)
			}
		})
	}
}

func TestParseRebeccaPurple(t *testing.T) {
	got, err := Parse("RebeccaPurple")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	hex, err := Format(got, ModelHex)
	if err != nil {
		t.Fatalf("Format error = %v", err)
	}
	if hex != "#663399" {
		t.Errorf("Format(Parse(RebeccaPurple)) = %q, want #663399", hex)
	}
}

func TestParseOKLCH(t *testing.T) {
	tests := []struct {
		input string
		want  OKLCH
	}{
		{"oklch(0.6 0.15 250)", OKLCH{L: 0.6, C: 0.15, H: 250}},
		{"oklch(60% 0.15 250deg)", OKLCH{L: 0.6, C: 0.15, H: 250}},
		{"oklch(60 37.5% 250)", OKLCH{L: 0.6, C: 0.15, H: 250}},
		{"oklch(0.6 0.15 -110)", OKLCH{L: 0.6, C: 0.15, H: 250}},
		{"oklch(0.6 0.15 610 / 0.5)", OKLCH{L: 0.6, C: 0.15, H: 250}},
		{"oklch(0.6 0 250)", OKLCH{L: 0.6, C: 0, H: 0}},
		{"oklch(0.6 0.15 none)", OKLCH{L: 0.6, C: 0.15, H: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !closeOKLCH(got, tt.want, 1e-9) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOKLab(t *testing.T) {
	got, err := Parse("oklab(0.5 0.1 0)")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	want := OKLCH{L: 0.5, C: 0.1, H: 0}
	if !closeOKLCH(got, want, 1e-9) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}

	got, err = Parse("oklab(0.5 0 -25%)")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	want = OKLCH{L: 0.5, C: 0.1, H: 270}
	if !closeOKLCH(got, want, 1e-9) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"#12",
		"#xyzxyz",
		"notacolour",
		"rgb(1 2)",
		"rgb(1 2 3 4 5)",
		"rgb(a b c)",
		"rgb(1 2 3 /)",
		"hsl(10% 50% 50%)",
		"rgb(0 0 0 / garbage)",
		"rgb(0, 0, 0, garbage)",
		"rgb(0 0 0 / 1 / 2)",
		"rgb(0 0 0 / */ body{display:none} /*)",
		"oklch(0.5 0.1 NaN)",
		"cmyk(0 0 0 0)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", input)
			}
			if !errors.Is(err, ErrUnparseable) {
				t.Errorf("Parse(%q) error = %v, want ErrUnparseable", input, err)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	red, err := Parse("#ff0000")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}

	tests := []struct {
		name  string
		c     OKLCH
		model Model
		want  string
	}{
		{"hex", red, ModelHex, "#ff0000"},
		{"rgb", red, ModelRGB, "rgb(255 0 0)"},
		{"hsl", red, ModelHSL, "hsl(0 100% 50%)"},
		{"oklch", OKLCH{L: 0.6, C: 0.15, H: 250}, ModelOKLCH, "oklch(0.6 0.15 250)"},
		{"oklch rounding", OKLCH{L: 0.123456789, C: 0.0000001, H: 12.5}, ModelOKLCH, "oklch(0.12346 0 12.5)"},
		{"oklab", OKLCH{L: 0.5, C: 0.1, H: 0}, ModelOKLab, "oklab(0.5 0.1 0)"},
		{"oklab negative", OKLCH{L: 0.5, C: 0.1, H: 180}, ModelOKLab, "oklab(0.5 -0.1 0)"},
		{"white", OKLCH{L: 1, C: 0, H: 0}, ModelHex, "#ffffff"},
		{"black", OKLCH{L: 0, C: 0, H: 0}, ModelRGB, "rgb(0 0 0)"},
		{"grey hsl", OKLCH{L: 1, C: 0, H: 0}, ModelHSL, "hsl(0 0% 100%)"},
		{"black hsl", OKLCH{L: 0, C: 0, H: 0}, ModelHSL, "hsl(0 0% 0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.c, tt.model)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatGreysHaveEqualChannels(t *testing.T) {
	for _, l := range []float64{0.05, 0.2, 0.35, 0.5, 0.6, 0.7, 0.85, 0.97, 0.99} {
		c := OKLCH{L: l}

		hex, err := Format(c, ModelHex)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if hex[1:3] != hex[3:5] || hex[3:5] != hex[5:7] {
			t.Errorf("Format(L=%g, hex) = %q, want equal channels", l, hex)
		}

		hslValue, err := Format(c, ModelHSL)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if !strings.HasPrefix(hslValue, "hsl(0 0% ") {
			t.Errorf("Format(L=%g, hsl) = %q, want zero hue and saturation", l, hslValue)
		}
	}
}

func TestFormatHSLMatchesHex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#ff0000", "hsl(0 100% 50%)"},
		{"#00ff00", "hsl(120 100% 50%)"},
		{"#0000ff", "hsl(240 100% 50%)"},
		{"white", "hsl(0 0% 100%)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			got, err := Format(c, ModelHSL)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%q, hsl) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatUnsupported(t *testing.T) {
	_, err := Format(OKLCH{L: 0.5}, Model("cmyk"))
	if !errors.Is(err, ErrUnsupportedModel) {
		t.Errorf("Format() error = %v, want ErrUnsupportedModel", err)
	}
}

func TestFormatOutOfGamutIsClamped(t *testing.T) {
	got, err := Format(OKLCH{L: 0.9, C: 0.4, H: 140}, ModelHex)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !IsHex(got) || len(got) != 7 {
		t.Errorf("Format() = %q, want #rrggbb", got)
	}
}

func TestRoundTripOKLCH(t *testing.T) {
	in := OKLCH{L: 0.7, C: 0.12, H: 200}
	s, err := Format(in, ModelOKLCH)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", s, err)
	}
	if !closeOKLCH(in, out, 1e-9) {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func closeOKLCH(a, b OKLCH, tol float64) bool {
	dh := math.Abs(a.H - b.H)
	if dh > 180 {
		dh = 360 - dh
	}
	return math.Abs(a.L-b.L) <= tol && math.Abs(a.C-b.C) <= tol && dh <= math.Max(tol, 1e-6)*100
}
