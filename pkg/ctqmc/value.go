package ctqmc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the semantic type of a parameter value
type Kind int

const (
	KindInt Kind = iota + 1
	KindFloat
	KindString
)

// String returns the type name used in listings and error messages
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a parameter value: an integer, a float or a string.
// The zero Value has no kind and never matches a baseline default.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Int returns an integer value
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Float returns a floating-point value
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// Text returns a string value
func Text(v string) Value {
	return Value{kind: KindString, s: v}
}

// Kind returns the value's type tag
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer payload and whether the value is an integer
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Float returns the float payload and whether the value is a float
func (v Value) Float() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// Text returns the string payload and whether the value is a string
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindString
}

// String renders the value the way it appears in solver.ctqmc.in
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	default:
		return "<nil>"
	}
}

// formatFloat always keeps a decimal point or an exponent so the solver
// reads the value back as real: 2 -> "2.0", 1e-5 -> "1e-05".
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseLiteral reads a command-line literal the way a keyword argument
// would be written: "10" is an integer, "2.0" or "1e-3" a float, and
// anything else a string. Surrounding quotes force a string.
func ParseLiteral(s string) Value {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return Text(s[1 : len(s)-1])
		}
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}

	// ParseFloat also accepts "inf", "nan" and "infinity"; those stay strings
	if f, err := strconv.ParseFloat(s, 64); err == nil && !strings.ContainsAny(strings.ToLower(s), "ainty") {
		return Float(f)
	}

	return Text(s)
}

// ParseAs parses s as a value of the given kind
func ParseAs(kind Kind, s string) (Value, error) {
	switch kind {
	case KindInt:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid integer %q: %w", s, err)
		}
		return Int(i), nil
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", s, err)
		}
		return Float(f), nil
	case KindString:
		return Text(s), nil
	default:
		return Value{}, fmt.Errorf("unsupported parameter type: %s", kind)
	}
}

// Param is a single key/value pair
type Param struct {
	Key   string
	Value Value
}

// P is shorthand for building a Param
func P(key string, value Value) Param {
	return Param{Key: key, Value: value}
}
