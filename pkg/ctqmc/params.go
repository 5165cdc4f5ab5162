// Package ctqmc builds solver.ctqmc.in, the input file of the CT-QMC
// quantum impurity solvers. A Params value is bound to one solver variant,
// collects user overrides, checks them against the solver's defaults and
// writes them out one "key : value" line each.
package ctqmc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultFilename is the file the solvers read their parameters from
const DefaultFilename = "solver.ctqmc.in"

// keyWidth is the column the ':' separator is aligned to
const keyWidth = 8

// Params holds the overrides staged for one solver
type Params struct {
	variant  Variant
	baseline *Table
	keys     []string
	values   map[string]Value
}

// New creates a parameter set for the named solver (case-insensitive)
func New(solver string) (*Params, error) {
	v, err := ParseVariant(solver)
	if err != nil {
		return nil, err
	}
	return NewForVariant(v), nil
}

// NewForVariant creates a parameter set for the given solver
func NewForVariant(v Variant) *Params {
	return &Params{
		variant:  v,
		baseline: v.Baseline(),
		values:   make(map[string]Value),
	}
}

// Variant returns the solver the set is bound to
func (p *Params) Variant() Variant {
	return p.variant
}

// Baseline returns the solver's defaults
func (p *Params) Baseline() *Table {
	return p.baseline
}

// Set stages overrides. A key that is already staged keeps its position
// and takes the new value. Nothing is validated here; see Check.
func (p *Params) Set(params ...Param) {
	for _, param := range params {
		if _, exists := p.values[param.Key]; !exists {
			p.keys = append(p.keys, param.Key)
		}
		p.values[param.Key] = param.Value
	}
}

// Get returns the staged value for key
func (p *Params) Get(key string) (Value, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Overrides returns the staged pairs in staging order
func (p *Params) Overrides() []Param {
	out := make([]Param, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, Param{Key: k, Value: p.values[k]})
	}
	return out
}

// Len returns the number of staged keys
func (p *Params) Len() int {
	return len(p.keys)
}

// Check validates the staged overrides in staging order and returns the
// first problem: a *KeyError for a key the solver does not recognize, or a
// *ValueError when a value's type differs from the default's.
func (p *Params) Check() error {
	for _, k := range p.keys {
		if err := p.checkOne(k); err != nil {
			return err
		}
	}
	return nil
}

// Problems returns every failing override in staging order
func (p *Params) Problems() []error {
	var errs []error
	for _, k := range p.keys {
		if err := p.checkOne(k); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (p *Params) checkOne(key string) error {
	def, ok := p.baseline.Get(key)
	if !ok {
		return &KeyError{Key: key, Variant: p.variant}
	}
	if got := p.values[key]; got.Kind() != def.Kind() {
		return &ValueError{Key: key, Value: got, Want: def.Kind()}
	}
	return nil
}

// WriteTo renders the staged overrides in the solver's input format.
// Baseline defaults that were never overridden are not written.
func (p *Params) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, k := range p.keys {
		n, err := io.WriteString(w, FormatLine(k, p.values[k]))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteFile writes the staged overrides to path, truncating any existing
// file. It does not call Check.
func (p *Params) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err := p.WriteTo(bw); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Write writes the staged overrides to solver.ctqmc.in in the current
// working directory
func (p *Params) Write() error {
	return p.WriteFile(DefaultFilename)
}

// FormatLine renders one parameter line, e.g. "mune    : 2.0\n"
func FormatLine(key string, value Value) string {
	pad := keyWidth - len(key)
	if pad < 1 {
		pad = 1
	}
	return key + strings.Repeat(" ", pad) + ": " + value.String() + "\n"
}
