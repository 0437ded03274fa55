package pipeline

import "csv-rewriter/internal/transform"

// RawRecord is one parsed input line, immutable once handed to the pipeline.
type RawRecord = transform.Record

// ResolvedField is one output column name with its final string value.
type ResolvedField struct {
	Name  string
	Value string
}

// LogicalRecord is the ordered resolution of one input row, one field per
// configured output column, before installment expansion.
type LogicalRecord []ResolvedField

// PhysicalRow is one materialized output row, values in declared column order.
type PhysicalRow []string

// Values materializes the logical record into a physical row.
func (r LogicalRecord) Values() PhysicalRow {
	row := make(PhysicalRow, len(r))
	for i := range r {
		row[i] = r[i].Value
	}

	return row
}

// index returns the position of the named field, or -1.
func (r LogicalRecord) index(name string) int {
	for i := range r {
		if r[i].Name == name {
			return i
		}
	}

	return -1
}

// Sequence is the per-file counter backing auto-sequence columns. Each
// column draws from its own 1-based stream so two auto-numbered columns
// do not interleave.
type Sequence struct {
	counters map[string]int
}

// NewSequence creates a fresh counter set; every stream starts at 1.
func NewSequence() *Sequence {
	return &Sequence{counters: make(map[string]int)}
}

// Next returns the next value for the given column's stream.
func (s *Sequence) Next(column string) int {
	s.counters[column]++
	return s.counters[column]
}
