package pipeline

import (
	"strconv"

	"csv-rewriter/internal/coerce"
	"csv-rewriter/internal/config"
	"csv-rewriter/internal/diagnostic"
	"csv-rewriter/internal/transform"
)

// Plan is the validated, resolved column plan for one configuration:
// for each output column, where its value comes from and how it is shaped.
type Plan struct {
	cfg *config.Config
	reg *transform.Registry

	// autoSeq marks the column indexes fed by the sequence counter.
	autoSeq []int
}

// NewPlan validates the configuration against the registry and builds the
// column plan. Any configuration error is fatal here, before any file is
// touched.
func NewPlan(cfg *config.Config, reg *transform.Registry) (*Plan, error) {
	diags := config.Validate(cfg)
	diags.Merge(*reg.Check(cfg))

	if err := diags.Error(); err != nil {
		return nil, err
	}

	p := &Plan{cfg: cfg, reg: reg}

	for i := range cfg.Columns {
		if cfg.Columns[i].IsAutoSequence() {
			p.autoSeq = append(p.autoSeq, i)
		}
	}

	return p, nil
}

// Config returns the configuration backing this plan.
func (p *Plan) Config() *config.Config {
	return p.cfg
}

// Header returns the output header row in declared order.
func (p *Plan) Header() []string {
	return p.cfg.ColumnNames()
}

// Resolve produces the logical record for one raw input record: exactly one
// resolved field per configured column, in declared order.
func (p *Plan) Resolve(rec RawRecord, seq *Sequence) LogicalRecord {
	out := make(LogicalRecord, len(p.cfg.Columns))
	for i := range p.cfg.Columns {
		out[i] = p.resolveColumn(rec, &p.cfg.Columns[i], seq)
	}

	return out
}

// resolveColumn resolves one column. Resolution order: auto-sequence,
// transform, raw fetch; then type coercion; then default substitution when
// the coerced value is empty. A source column missing from the input file
// is not fatal and flows through the same default logic.
func (p *Plan) resolveColumn(rec RawRecord, col *config.ColumnSpec, seq *Sequence) ResolvedField {
	if col.IsAutoSequence() {
		return ResolvedField{Name: col.Name, Value: strconv.Itoa(seq.Next(col.Name))}
	}

	var value string

	if col.Transform != "" {
		// Registered: NewPlan fails on unknown tags.
		fn, _ := p.reg.Get(col.Transform)
		value = fn(rec, col)
	} else {
		value = rec[col.Source]
	}

	value = coerce.Apply(value, col.Type, col.MaxWidth)

	if value == "" && col.Default != "" {
		value = coerce.Truncate(col.Default, col.MaxWidth)
	}

	return ResolvedField{Name: col.Name, Value: value}
}

// CheckOnly runs validation without building a plan, returning the full
// diagnostics for reporting.
func CheckOnly(cfg *config.Config, reg *transform.Registry) *diagnostic.Diagnostics {
	diags := config.Validate(cfg)
	diags.Merge(*reg.Check(cfg))

	return diags
}
