package ctqmc

import (
	"errors"
	"strings"
	"testing"
)

func TestGenericTable(t *testing.T) {
	g := Generic()
	if g.Len() != 30 {
		t.Errorf("Expected 30 generic keys, got %d", g.Len())
	}
	if keys := g.Keys(); keys[0] != "isscf" || keys[len(keys)-1] != "alpha" {
		t.Errorf("Unexpected generic key order: %v", keys)
	}

	v, _ := g.Get("nsweep")
	if i, ok := v.Int(); !ok || i != 20000000 {
		t.Errorf("Expected nsweep 20000000, got %s", v)
	}
	v, _ = g.Get("part")
	if f, ok := v.Float(); !ok || f != 0.5 {
		t.Errorf("Expected part 0.5, got %s", v)
	}
}

func TestVariantBaselines(t *testing.T) {
	tests := []struct {
		variant Variant
		extra   []string
	}{
		{Azalea, nil},
		{Gardenia, []string{"isort", "isvrt", "lemax", "legrd", "chmax", "chgrd", "nffrq", "nbfrq"}},
		{Narcissus, []string{"isort", "isvrt", "lemax", "legrd", "chmax", "chgrd", "nffrq", "nbfrq", "isscr", "lc", "wc"}},
		{Begonia, []string{"nzero", "npart"}},
		{Lavender, []string{"isort", "isvrt", "lemax", "legrd", "chmax", "chgrd", "nffrq", "nbfrq", "nzero", "npart"}},
		{Pansy, []string{"idoub", "npart"}},
		{Manjushaka, []string{"isort", "isvrt", "lemax", "legrd", "chmax", "chgrd", "nffrq", "nbfrq", "itrun", "nmini", "nmaxi", "idoub", "npart"}},
	}

	generic := Generic()
	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			base := tt.variant.Baseline()
			for _, k := range generic.Keys() {
				if !base.Has(k) {
					t.Errorf("Expected generic key %s in %s", k, tt.variant)
				}
			}

			extra := tt.variant.Extra()
			if strings.Join(extra, ",") != strings.Join(tt.extra, ",") {
				t.Errorf("Expected extra keys %v, got %v", tt.extra, extra)
			}
			if base.Len() != generic.Len()+len(tt.extra) {
				t.Errorf("Expected %d keys, got %d", generic.Len()+len(tt.extra), base.Len())
			}
		})
	}
}

func TestExtraKeyDefaults(t *testing.T) {
	base := Manjushaka.Baseline()
	tests := []struct {
		key  string
		want string
		kind Kind
	}{
		{"nmaxi", "2", KindInt},
		{"nmini", "0", KindInt},
		{"legrd", "20001", KindInt},
		{"npart", "4", KindInt},
	}
	for _, tt := range tests {
		v, ok := base.Get(tt.key)
		if !ok {
			t.Fatalf("Expected %s in manjushaka baseline", tt.key)
		}
		if v.Kind() != tt.kind || v.String() != tt.want {
			t.Errorf("%s: expected %s %s, got %s %s", tt.key, tt.kind, tt.want, v.Kind(), v)
		}
	}

	lc, _ := Narcissus.Baseline().Get("lc")
	if lc.Kind() != KindFloat {
		t.Errorf("Expected lc to be a float, got %s", lc.Kind())
	}
}

func TestTableIsCopiedOnRead(t *testing.T) {
	keys := Azalea.Baseline().Keys()
	keys[0] = "mutated"
	if Azalea.Baseline().Keys()[0] != "isscf" {
		t.Error("Expected baseline keys to be unaffected by caller mutation")
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(strings.ToUpper(v.String()))
		if err != nil {
			t.Fatalf("ParseVariant(%q) failed: %v", v, err)
		}
		if got != v {
			t.Errorf("Expected %s, got %s", v, got)
		}
		if v.Description() == "" {
			t.Errorf("Expected a description for %s", v)
		}
	}

	if _, err := ParseVariant("Hibiscus"); !errors.Is(err, ErrUnknownSolver) {
		t.Errorf("Expected ErrUnknownSolver, got %v", err)
	}
	if len(Variants()) != 7 {
		t.Errorf("Expected 7 variants, got %d", len(Variants()))
	}
}
