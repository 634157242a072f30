// Package profile builds the Game Profile screen model for a two-player match.
package profile

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when a compared value is not a usable number.
var ErrInvalidInput = errors.New("invalid input")

// HighlightMode selects which direction of a comparison is emphasized.
type HighlightMode string

const (
	HighlightNone    HighlightMode = ""
	HighlightGreater HighlightMode = "greater"
	HighlightLower   HighlightMode = "lower"
)

// ValueType controls how a compared value is rendered.
type ValueType string

const (
	TypeFloat ValueType = "float"
	TypeInt   ValueType = "int"
)

// Side identifies which of the two compared values is highlighted.
type Side int

const (
	SideNone Side = iota
	Side1
	Side2
)

// String returns the JSON-friendly name of the side.
func (s Side) String() string {
	switch s {
	case Side1:
		return "side1"
	case Side2:
		return "side2"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ComparisonInput holds the two raw values of a statistic and how to present them.
type ComparisonInput struct {
	Value1        float64
	Value2        float64
	Type          ValueType
	Unit          string
	HighlightMode HighlightMode
}

// ComparisonResult is the outcome of evaluating a ComparisonInput.
type ComparisonResult struct {
	Highlight Side   `json:"highlight"`
	Display1  string `json:"display1"`
	Display2  string `json:"display2"`
}

// Evaluate decides which value to highlight and formats both for display.
func Evaluate(in ComparisonInput) (ComparisonResult, error) {
	if err := checkNumber(in.Value1); err != nil {
		return ComparisonResult{}, fmt.Errorf("value1: %w", err)
	}
	if err := checkNumber(in.Value2); err != nil {
		return ComparisonResult{}, fmt.Errorf("value2: %w", err)
	}

	return ComparisonResult{
		Highlight: HighlightSide(in.Value1, in.Value2, in.HighlightMode),
		Display1:  FormatValue(in.Value1, in.Type, in.Unit),
		Display2:  FormatValue(in.Value2, in.Type, in.Unit),
	}, nil
}

// HighlightSide returns the side holding the better value for the given mode.
// Ties and unrecognized modes highlight neither side.
func HighlightSide(value1, value2 float64, mode HighlightMode) Side {
	switch mode {
	case HighlightGreater:
		if value1 > value2 {
			return Side1
		} else if value2 > value1 {
			return Side2
		}
	case HighlightLower:
		if value1 < value2 {
			return Side1
		} else if value2 < value1 {
			return Side2
		}
	}
	return SideNone
}

// FormatValue renders a single value with its unit appended.
func FormatValue(value float64, valueType ValueType, unit string) string {
	var converted string
	switch valueType {
	case TypeFloat:
		converted = formatTenths(value)
	default:
		converted = strconv.FormatFloat(value, 'f', -1, 64)
	}
	return converted + unit
}

// ParseValue converts a textual value into a number suitable for Evaluate.
func ParseValue(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidInput)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, raw)
	}
	if err := checkNumber(v); err != nil {
		return 0, err
	}
	return v, nil
}

// formatTenths rounds the exact binary value to one decimal, halves away
// from zero. FormatFloat alone rounds ties to even (1.25 to "1.2").
func formatTenths(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return new(big.Rat).SetFloat64(v).FloatString(1)
}

func checkNumber(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v is not a finite number", ErrInvalidInput, v)
	}
	return nil
}
