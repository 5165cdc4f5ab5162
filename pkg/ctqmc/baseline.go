package ctqmc

// Table is an ordered, read-only set of parameter defaults
type Table struct {
	keys   []string
	values map[string]Value
}

// Get returns the default for key
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Has reports whether key is a recognized parameter
func (t *Table) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Keys returns the parameter names in table order
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Params returns every default in table order
func (t *Table) Params() []Param {
	out := make([]Param, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, Param{Key: k, Value: t.values[k]})
	}
	return out
}

// Len returns the number of parameters
func (t *Table) Len() int {
	return len(t.keys)
}

// compose builds a table from groups of defaults. A key repeated in a
// later group keeps its first position and takes the later value.
func compose(groups ...[]Param) *Table {
	t := &Table{values: make(map[string]Value)}
	for _, group := range groups {
		for _, p := range group {
			if _, exists := t.values[p.Key]; !exists {
				t.keys = append(t.keys, p.Key)
			}
			t.values[p.Key] = p.Value
		}
	}
	return t
}

// genericKeys is the parameter set shared by every solver
var genericKeys = []Param{
	P("isscf", Int(2)),
	P("issun", Int(2)),
	P("isspn", Int(1)),
	P("isbin", Int(2)),
	P("nband", Int(1)),
	P("nspin", Int(2)),
	P("norbs", Int(2)),
	P("ncfgs", Int(4)),
	P("niter", Int(20)),
	P("mkink", Int(1024)),
	P("mfreq", Int(8193)),
	P("nfreq", Int(128)),
	P("ntime", Int(1024)),
	P("nflip", Int(20000)),
	P("ntherm", Int(200000)),
	P("nsweep", Int(20000000)),
	P("nwrite", Int(2000000)),
	P("nclean", Int(100000)),
	P("nmonte", Int(10)),
	P("ncarlo", Int(10)),
	P("U", Float(4.0)),
	P("Uc", Float(4.0)),
	P("Uv", Float(4.0)),
	P("Jz", Float(0.0)),
	P("Js", Float(0.0)),
	P("Jp", Float(0.0)),
	P("mune", Float(2.0)),
	P("beta", Float(8.0)),
	P("part", Float(0.5)),
	P("alpha", Float(0.7)),
}

// orderingKeys: orthogonal polynomial, vertex and frequency-binning controls
var orderingKeys = []Param{
	P("isort", Int(1)),
	P("isvrt", Int(1)),
	P("lemax", Int(32)),
	P("legrd", Int(20001)),
	P("chmax", Int(32)),
	P("chgrd", Int(20001)),
	P("nffrq", Int(32)),
	P("nbfrq", Int(8)),
}

// screeningKeys: dynamic screening and retarded interaction
var screeningKeys = []Param{
	P("isscr", Int(1)),
	P("lc", Float(1.0)),
	P("wc", Float(1.0)),
}

var zeroKeys = []Param{
	P("nzero", Int(128)),
}

var partitionKeys = []Param{
	P("npart", Int(4)),
}

var doubleOccupancyKeys = []Param{
	P("idoub", Int(1)),
}

// truncationKeys: Hilbert space truncation and occupancy window
var truncationKeys = []Param{
	P("itrun", Int(1)),
	P("nmini", Int(0)),
	P("nmaxi", Int(2)),
}

var baselines = map[Variant]*Table{
	Azalea:     compose(genericKeys),
	Gardenia:   compose(genericKeys, orderingKeys),
	Narcissus:  compose(genericKeys, orderingKeys, screeningKeys),
	Begonia:    compose(genericKeys, zeroKeys, partitionKeys),
	Lavender:   compose(genericKeys, orderingKeys, zeroKeys, partitionKeys),
	Pansy:      compose(genericKeys, doubleOccupancyKeys, partitionKeys),
	Manjushaka: compose(genericKeys, orderingKeys, truncationKeys, doubleOccupancyKeys, partitionKeys),
}

// Generic returns the parameter set shared by every solver
func Generic() *Table {
	return baselines[Azalea]
}

// Baseline returns the defaults recognized by the solver
func (v Variant) Baseline() *Table {
	if t, ok := baselines[v]; ok {
		return t
	}
	return compose()
}

// Extra returns the keys the solver adds over the generic set, in table order
func (v Variant) Extra() []string {
	generic := Generic()
	var out []string
	for _, k := range v.Baseline().keys {
		if !generic.Has(k) {
			out = append(out, k)
		}
	}
	return out
}
