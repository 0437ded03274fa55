package pipeline

import (
	"strconv"

	"csv-rewriter/internal/config"
	"csv-rewriter/internal/transform"
)

// Pipeline orchestrates the column plan and the row expander for one input
// file. It owns the file's sequence counter; build a fresh Pipeline per file.
type Pipeline struct {
	plan *Plan
	seq  *Sequence
}

// New validates the configuration and creates a pipeline for one file.
func New(cfg *config.Config, reg *transform.Registry) (*Pipeline, error) {
	plan, err := NewPlan(cfg, reg)
	if err != nil {
		return nil, err
	}

	return FromPlan(plan), nil
}

// FromPlan creates a pipeline for one file from an already validated plan.
// Used by the batch runner to validate once and reset the counter per file.
func FromPlan(plan *Plan) *Pipeline {
	return &Pipeline{plan: plan, seq: NewSequence()}
}

// Header returns the output header row.
func (p *Pipeline) Header() []string {
	return p.plan.Header()
}

// Process transforms one raw record into zero or more physical rows:
// column resolution, then installment expansion, then optional per-row
// renumbering of auto-sequence columns.
func (p *Pipeline) Process(rec RawRecord) []PhysicalRow {
	cfg := p.plan.Config()

	logical := p.plan.Resolve(rec, p.seq)
	rows := Expand(logical, cfg.RateColumn, cfg.TotalRateColumn)

	// By default replicated rows share the logical record's sequence
	// number. With sequence_per_physical_row every physical row draws a
	// fresh number; the first replica keeps the one Resolve consumed, so
	// numbering stays monotonic from 1 across the file.
	if cfg.SequencePerPhysicalRow {
		for _, idx := range p.plan.autoSeq {
			name := cfg.Columns[idx].Name
			for i := 1; i < len(rows); i++ {
				rows[i][idx] = strconv.Itoa(p.seq.Next(name))
			}
		}
	}

	return rows
}

// Run processes a whole file's records in order, concatenating the
// expanded rows.
func (p *Pipeline) Run(records []RawRecord) []PhysicalRow {
	var out []PhysicalRow
	for _, rec := range records {
		out = append(out, p.Process(rec)...)
	}

	return out
}
