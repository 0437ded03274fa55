package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=ColumnType -linecomment -output=columntype_string.go

// ColumnType declares how a raw field value is coerced before output.
type ColumnType int

const (
	// TypeInvalid is the zero value; normalization replaces it with
	// TypeAlphanumeric so absent "type" keys behave as pass-through.
	TypeInvalid ColumnType = iota // invalid

	TypeAlphabetic   // alphabetic
	TypeNumeric      // numeric
	TypeDate         // date
	TypeBoolean      // boolean
	TypeAlphanumeric // alphanumeric
)

// ParseColumnType parses a lowercase type name into a ColumnType.
func ParseColumnType(name string) (ColumnType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alphabetic":
		return TypeAlphabetic, nil
	case "numeric":
		return TypeNumeric, nil
	case "date":
		return TypeDate, nil
	case "boolean", "bool":
		return TypeBoolean, nil
	case "alphanumeric", "":
		return TypeAlphanumeric, nil
	default:
		return TypeInvalid, fmt.Errorf("unknown column type %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t ColumnType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by encoding/json).
func (t *ColumnType) UnmarshalText(text []byte) error {
	parsed, err := ParseColumnType(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *ColumnType) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	return t.UnmarshalText([]byte(s))
}

// AutoSequence is the source sentinel marking a column whose value is a
// 1-based counter maintained per output file, independent of input data.
const AutoSequence = "@sequence"

// ColumnSpec describes one output column: where its value comes from and
// how it is reshaped on the way out.
//
// YAML/JSON formats supported per entry:
//   - Bare string: "Progressivo" (pass-through of the same-named input column)
//   - Full object: {name: ..., type: ..., source: ..., transform: ..., dim: ...}
type ColumnSpec struct {
	// Name is the output header for this column.
	Name string `yaml:"name" json:"name"`

	// Type selects the value coercion. Defaults to alphanumeric.
	Type ColumnType `yaml:"type,omitempty" json:"type,omitempty"`

	// MaxWidth truncates the final value to this many characters when > 0.
	// Truncation, never padding: downstream fixed-width systems must fit.
	MaxWidth int `yaml:"dim,omitempty" json:"dim,omitempty"`

	// Source names the input column(s) feeding this output column.
	// Multiple inputs are comma-separated; transforms define how many they
	// consume. The sentinel "@sequence" makes this an auto-numbered column.
	// Defaults to Name.
	Source string `yaml:"source,omitempty" json:"source,omitempty"`

	// Default substitutes the value when coercion/transform yields empty.
	Default string `yaml:"default,omitempty" json:"default,omitempty"`

	// Transform is the tag of a registered transform deriving the value
	// from the raw record. Unknown tags fail validation at startup.
	Transform string `yaml:"transform,omitempty" json:"transform,omitempty"`
}

// IsAutoSequence returns true if this column is fed by the sequence counter.
func (c *ColumnSpec) IsAutoSequence() bool {
	return c.Source == AutoSequence
}

// Sources splits the comma-separated source list into trimmed names.
func (c *ColumnSpec) Sources() []string {
	if c.Source == "" {
		return nil
	}

	parts := strings.Split(c.Source, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}

	return out
}

// columnSpec is a tag-preserving alias used to break unmarshal recursion.
type columnSpec ColumnSpec

// UnmarshalYAML implements yaml.Unmarshaler, accepting either a bare column
// name or a full spec object.
func (c *ColumnSpec) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		*c = ColumnSpec{Name: s}
		return nil
	}

	var full columnSpec
	if err := unmarshal(&full); err != nil {
		return err
	}

	*c = ColumnSpec(full)

	return nil
}

// UnmarshalJSON implements json.Unmarshaler with the same shorthand rules.
func (c *ColumnSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ColumnSpec{Name: s}
		return nil
	}

	var full columnSpec
	if err := json.Unmarshal(data, &full); err != nil {
		return fmt.Errorf("expected column name or column spec object: %w", err)
	}

	*c = ColumnSpec(full)

	return nil
}

// Config is the root of a rewriter configuration file.
type Config struct {
	// Columns is the ordered list of output columns.
	Columns []ColumnSpec `yaml:"columns" json:"columns"`

	// DateColumns / NumericColumns are the basic-variant flat type lists.
	// Normalization folds them into per-column Type; an explicit per-column
	// type wins over a flat list entry.
	DateColumns    []string `yaml:"date_columns,omitempty" json:"date_columns,omitempty"`
	NumericColumns []string `yaml:"numeric_columns,omitempty" json:"numeric_columns,omitempty"`

	// RateColumn names the output column overwritten with the 1-based
	// installment index during row expansion.
	RateColumn string `yaml:"rate_column,omitempty" json:"rate_column,omitempty"`

	// TotalRateColumn names the output column holding the installment
	// count. Empty disables replication entirely.
	TotalRateColumn string `yaml:"total_rate_column,omitempty" json:"total_rate_column,omitempty"`

	// TipoDovutoMapping maps due-type codes to descriptions for the
	// map_tipo_dovuto transform. Unmapped codes pass through unchanged.
	TipoDovutoMapping map[string]string `yaml:"tipo_dovuto_mapping,omitempty" json:"tipo_dovuto_mapping,omitempty"`

	// Delimiter is the input field separator. Defaults to ";".
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`

	// ZipName overrides the output archive stem (default "<stem>_processed").
	ZipName string `yaml:"zip_name,omitempty" json:"zip_name,omitempty"`

	// PulisciInput deletes each input file after it is processed successfully.
	PulisciInput bool `yaml:"pulisci_input,omitempty" json:"pulisci_input,omitempty"`

	// PulisciOutput clears the output directory before the run starts.
	PulisciOutput bool `yaml:"pulisci_output,omitempty" json:"pulisci_output,omitempty"`

	// SequencePerPhysicalRow makes auto-sequence columns number every
	// physical output row after installment expansion. When false (default)
	// the counter advances once per logical input record and replicated
	// rows share the number.
	SequencePerPhysicalRow bool `yaml:"sequence_per_physical_row,omitempty" json:"sequence_per_physical_row,omitempty"`
}

// ColumnNames returns the output header in declared order.
func (c *Config) ColumnNames() []string {
	names := make([]string, len(c.Columns))
	for i := range c.Columns {
		names[i] = c.Columns[i].Name
	}

	return names
}

// DelimiterRune returns the input delimiter as a rune.
func (c *Config) DelimiterRune() (rune, error) {
	runes := []rune(c.Delimiter)
	if len(runes) != 1 {
		return 0, errors.New("delimiter must be a single character")
	}

	return runes[0], nil
}
