package profile

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestHighlightSide(t *testing.T) {
	tests := []struct {
		name   string
		value1 float64
		value2 float64
		mode   HighlightMode
		want   Side
	}{
		{"greater first", 3, 1, HighlightGreater, Side1},
		{"greater second", 1, 3, HighlightGreater, Side2},
		{"greater tie", 2, 2, HighlightGreater, SideNone},
		{"lower first", 1, 3, HighlightLower, Side1},
		{"lower second", 3, 1, HighlightLower, Side2},
		{"lower tie", 2, 2, HighlightLower, SideNone},
		{"none", 1, 3, HighlightNone, SideNone},
		{"unrecognized", 1, 3, HighlightMode("bigger"), SideNone},
		{"negative values", -5, -2, HighlightGreater, Side2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HighlightSide(tt.value1, tt.value2, tt.mode)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestHighlightSide_Symmetry(t *testing.T) {
	values := []float64{-10, -1.5, 0, 0.1, 2, 7, 100}
	for _, a := range values {
		for _, b := range values {
			greater := HighlightSide(a, b, HighlightGreater)
			lower := HighlightSide(a, b, HighlightLower)

			switch {
			case a == b:
				if greater != SideNone || lower != SideNone {
					t.Errorf("(%v, %v): expected no highlight on tie, got %s/%s", a, b, greater, lower)
				}
			case a > b:
				if greater != Side1 || lower != Side2 {
					t.Errorf("(%v, %v): expected side1/side2, got %s/%s", a, b, greater, lower)
				}
			default:
				if greater != Side2 || lower != Side1 {
					t.Errorf("(%v, %v): expected side2/side1, got %s/%s", a, b, greater, lower)
				}
			}
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value     float64
		valueType ValueType
		unit      string
		want      string
	}{
		{1.25, TypeFloat, "", "1.3"},
		{2, TypeFloat, "", "2.0"},
		{13.2, TypeFloat, "%", "13.2%"},
		{7, TypeFloat, "", "7.0"},
		{-1.25, TypeFloat, "", "-1.3"},
		{1.04, TypeFloat, "", "1.0"},
		{0.15, TypeFloat, "", "0.1"},
		{1.45, TypeFloat, "", "1.4"},
		{2.675, TypeFloat, "", "2.7"},
		{0.05, TypeFloat, "", "0.1"},
		{0.25, TypeFloat, "", "0.3"},
		{-2.75, TypeFloat, "", "-2.8"},
		{24, TypeInt, "", "24"},
		{2.1, TypeInt, "", "2.1"},
		{18, ValueType("other"), " pts", "18 pts"},
		{0, "", "", "0"},
	}

	for _, tt := range tests {
		got := FormatValue(tt.value, tt.valueType, tt.unit)
		if got != tt.want {
			t.Errorf("FormatValue(%v, %q, %q): expected %q, got %q", tt.value, tt.valueType, tt.unit, tt.want, got)
		}
	}
}

func TestFormatValue_LargeFinite(t *testing.T) {
	tests := []struct {
		value  float64
		prefix string
	}{
		{1e308, "100000000000000001"},
		{-1e308, "-100000000000000001"},
		{math.MaxFloat64, "179769313486231570"},
	}

	for _, tt := range tests {
		got := FormatValue(tt.value, TypeFloat, "")
		if strings.Contains(got, "Inf") {
			t.Errorf("FormatValue(%g): expected a finite rendering, got %q", tt.value, got)
		}
		if !strings.HasPrefix(got, tt.prefix) || !strings.HasSuffix(got, ".0") {
			t.Errorf("FormatValue(%g): expected %s... with one decimal, got %q", tt.value, tt.prefix, got)
		}
	}

	result, err := Evaluate(ComparisonInput{Value1: 1e308, Value2: 1, Type: TypeFloat, HighlightMode: HighlightGreater})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Highlight != Side1 {
		t.Errorf("expected side1, got %s", result.Highlight)
	}
	if strings.Contains(result.Display1, "Inf") {
		t.Errorf("expected finite display, got %q", result.Display1)
	}
}

func TestEvaluate(t *testing.T) {
	result, err := Evaluate(ComparisonInput{
		Value1:        13.2,
		Value2:        15.5,
		Type:          TypeFloat,
		Unit:          "%",
		HighlightMode: HighlightGreater,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Highlight != Side2 {
		t.Errorf("expected side2, got %s", result.Highlight)
	}
	if result.Display1 != "13.2%" {
		t.Errorf("expected display1 '13.2%%', got %q", result.Display1)
	}
	if result.Display2 != "15.5%" {
		t.Errorf("expected display2 '15.5%%', got %q", result.Display2)
	}
}

func TestEvaluate_InvalidInput(t *testing.T) {
	inputs := []ComparisonInput{
		{Value1: math.NaN(), Value2: 1},
		{Value1: 1, Value2: math.Inf(1)},
		{Value1: math.Inf(-1), Value2: 1},
	}

	for _, in := range inputs {
		_, err := Evaluate(in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Evaluate(%v, %v): expected ErrInvalidInput, got %v", in.Value1, in.Value2, err)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	in := ComparisonInput{Value1: 2.1, Value2: 7, Type: TypeFloat, HighlightMode: HighlightLower}

	first, err := Evaluate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Evaluate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(" 15.5 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 15.5 {
		t.Errorf("expected 15.5, got %v", v)
	}

	for _, raw := range []string{"", "abc", "NaN", "Inf", "12%"} {
		if _, err := ParseValue(raw); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseValue(%q): expected ErrInvalidInput, got %v", raw, err)
		}
	}
}

func TestSide_MarshalText(t *testing.T) {
	for side, want := range map[Side]string{SideNone: "none", Side1: "side1", Side2: "side2"} {
		got, err := side.MarshalText()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
