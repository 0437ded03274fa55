package transform

import (
	"fmt"
	"sort"

	"csv-rewriter/internal/config"
	"csv-rewriter/internal/diagnostic"
)

// Record is one parsed input line: input column header to raw value.
type Record map[string]string

// Func derives an output value from the raw record. The column spec
// supplies the source field name(s) the transform reads.
type Func func(rec Record, spec *config.ColumnSpec) string

type entry struct {
	fn Func
	// minSources is the number of source fields the transform consumes.
	minSources int
}

// Registry holds named transforms and provides lookup and config checking.
type Registry struct {
	entries map[string]entry
}

// NewRegistry creates a registry with the built-in catalog registered.
// tipoDovuto is the code-to-description mapping used by map_tipo_dovuto.
func NewRegistry(tipoDovuto map[string]string) *Registry {
	r := &Registry{entries: make(map[string]entry)}

	r.Register("extract_belfiore", 1, ExtractBelfiore)
	r.Register("tipo_persona", 1, TipoPersona)
	r.Register("extract_cf", 1, ExtractCF)
	r.Register("extract_piva", 1, ExtractPIVA)
	r.Register("extract_ragione_sociale", 2, ExtractRagioneSociale)
	r.Register("extract_cognome", 2, ExtractCognome)
	r.Register("extract_nome", 2, ExtractNome)
	r.Register("map_tipo_dovuto", 1, MapTipoDovuto(tipoDovuto))

	return r
}

// Register adds a transform under the given tag. minSources declares how
// many source fields the transform reads from the column spec.
func (r *Registry) Register(tag string, minSources int, fn Func) {
	r.entries[tag] = entry{fn: fn, minSources: minSources}
}

// Get returns the transform registered under tag, or nil and false.
func (r *Registry) Get(tag string) (Func, bool) {
	e, ok := r.entries[tag]
	if !ok {
		return nil, false
	}

	return e.fn, true
}

// Has returns true if a transform with the given tag exists.
func (r *Registry) Has(tag string) bool {
	_, ok := r.entries[tag]
	return ok
}

// Names returns all registered tags, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for tag := range r.entries {
		names = append(names, tag)
	}

	sort.Strings(names)

	return names
}

// Check validates every transform reference in the configuration against
// the registry: the tag must exist and the column must declare enough
// source fields for it.
func (r *Registry) Check(cfg *config.Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for i := range cfg.Columns {
		col := &cfg.Columns[i]
		if col.Transform == "" {
			continue
		}

		e, ok := r.entries[col.Transform]
		if !ok {
			res.AddError("unknown_transform",
				fmt.Sprintf("unknown transform %q (known: %v)", col.Transform, r.Names()), col.Name)
			continue
		}

		if got := len(col.Sources()); got < e.minSources {
			res.AddError("transform_needs_sources",
				fmt.Sprintf("transform %q needs %d source field(s), column declares %d",
					col.Transform, e.minSources, got), col.Name)
		}
	}

	return res
}
