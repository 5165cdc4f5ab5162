package ctqmc

import (
	"fmt"
	"strings"
)

// Variant identifies a quantum impurity solver of the CT-QMC family
type Variant int

const (
	Azalea Variant = iota
	Gardenia
	Narcissus
	Begonia
	Lavender
	Pansy
	Manjushaka
)

var variantNames = [...]string{
	Azalea:     "azalea",
	Gardenia:   "gardenia",
	Narcissus:  "narcissus",
	Begonia:    "begonia",
	Lavender:   "lavender",
	Pansy:      "pansy",
	Manjushaka: "manjushaka",
}

var variantDescriptions = [...]string{
	Azalea:     "generic parameter set",
	Gardenia:   "adds ordering, quadrature, vertex and frequency-binning keys",
	Narcissus:  "gardenia keys plus environment screening and retardation",
	Begonia:    "adds segment and partition keys",
	Lavender:   "gardenia keys plus segment and partition keys",
	Pansy:      "adds double occupancy and partition keys",
	Manjushaka: "adds truncation, occupancy window and the full matrix-element key set",
}

// Variants returns every supported solver in declaration order
func Variants() []Variant {
	out := make([]Variant, len(variantNames))
	for i := range variantNames {
		out[i] = Variant(i)
	}
	return out
}

// ParseVariant maps a solver name, in any letter case, to its Variant
func ParseVariant(name string) (Variant, error) {
	lower := strings.ToLower(name)
	for i, n := range variantNames {
		if n == lower {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}

// String returns the solver's lower-case name
func (v Variant) String() string {
	if !v.valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Description returns a one-line summary of the solver
func (v Variant) Description() string {
	if !v.valid() {
		return ""
	}
	return variantDescriptions[v]
}

func (v Variant) valid() bool {
	return v >= 0 && int(v) < len(variantNames)
}
