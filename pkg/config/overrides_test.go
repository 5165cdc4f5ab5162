package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/picogrid/ctqmc-input/pkg/ctqmc"
)

func TestParseOverrides(t *testing.T) {
	data := []byte(`variant: Manjushaka
params:
  isscf: 2
  mune: 2.0
  nsweep: 10000000
  label: "10"
  note: hello
`)

	o, err := ParseOverrides(data)
	if err != nil {
		t.Fatalf("ParseOverrides failed: %v", err)
	}
	if o.Variant != "Manjushaka" {
		t.Errorf("Expected variant 'Manjushaka', got '%s'", o.Variant)
	}

	want := []struct {
		key  string
		kind ctqmc.Kind
		text string
	}{
		{"isscf", ctqmc.KindInt, "2"},
		{"mune", ctqmc.KindFloat, "2.0"},
		{"nsweep", ctqmc.KindInt, "10000000"},
		{"label", ctqmc.KindString, "10"},
		{"note", ctqmc.KindString, "hello"},
	}
	if len(o.Params) != len(want) {
		t.Fatalf("Expected %d params, got %d", len(want), len(o.Params))
	}
	for i, w := range want {
		p := o.Params[i]
		if p.Key != w.key {
			t.Errorf("Param %d: expected key %s, got %s", i, w.key, p.Key)
		}
		if p.Value.Kind() != w.kind {
			t.Errorf("%s: expected kind %s, got %s", w.key, w.kind, p.Value.Kind())
		}
		if p.Value.String() != w.text {
			t.Errorf("%s: expected %q, got %q", w.key, w.text, p.Value.String())
		}
	}
}

func TestParseOverridesEmpty(t *testing.T) {
	for _, in := range []string{"", "params:\n", "variant: azalea\n"} {
		o, err := ParseOverrides([]byte(in))
		if err != nil {
			t.Fatalf("ParseOverrides(%q) failed: %v", in, err)
		}
		if len(o.Params) != 0 {
			t.Errorf("Expected no params for %q, got %d", in, len(o.Params))
		}
	}
}

func TestParseOverridesErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"top-level list", "- a\n- b\n", "mapping"},
		{"unknown field", "solver: azalea\n", "unknown field"},
		{"params list", "params:\n  - 1\n", "params must be a mapping"},
		{"boolean value", "params:\n  isscf: true\n", "isscf"},
		{"nested value", "params:\n  U:\n    a: 1\n", "U"},
		{"bad yaml", "params: [\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOverrides([]byte(tt.in))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("Expected error containing %q, got %v", tt.msg, err)
			}
		})
	}
}

func TestSaveAndLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "overrides.yaml")
	in := &Overrides{
		Variant: "narcissus",
		Params:  ctqmc.Narcissus.Baseline().Params(),
	}
	in.Params = append(in.Params, ctqmc.P("tag", ctqmc.Text("2.0")))

	if err := SaveOverrides(path, in); err != nil {
		t.Fatalf("SaveOverrides failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "U: 4.0") {
		t.Errorf("Expected float default to keep its decimal point, got:\n%s", data)
	}

	out, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}
	if out.Variant != in.Variant {
		t.Errorf("Expected variant %s, got %s", in.Variant, out.Variant)
	}
	if len(out.Params) != len(in.Params) {
		t.Fatalf("Expected %d params, got %d", len(in.Params), len(out.Params))
	}
	for i := range in.Params {
		if out.Params[i] != in.Params[i] {
			t.Errorf("Param %d: expected %s=%s (%s), got %s=%s (%s)", i,
				in.Params[i].Key, in.Params[i].Value, in.Params[i].Value.Kind(),
				out.Params[i].Key, out.Params[i].Value, out.Params[i].Value.Kind())
		}
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read overrides file") {
		t.Errorf("Unexpected error: %v", err)
	}
}
