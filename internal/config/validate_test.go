package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateYAML(t *testing.T, yaml string) (*Config, []string) {
	t.Helper()

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	diags := Validate(cfg)

	codes := make([]string, 0, len(diags.Errors))
	for _, d := range diags.Errors {
		codes = append(codes, d.Code)
	}

	return cfg, codes
}

func TestValidate_OK(t *testing.T) {
	_, codes := validateYAML(t, `
columns:
  - name: Numero_Rata
  - name: Rateizzazione
rate_column: Numero_Rata
total_rate_column: Rateizzazione
`)
	assert.Empty(t, codes)
}

func TestValidate_NoColumns(t *testing.T) {
	_, codes := validateYAML(t, "columns: []")
	assert.Equal(t, []string{"no_columns"}, codes)
}

func TestValidate_DuplicateColumn(t *testing.T) {
	_, codes := validateYAML(t, "columns: [A, B, A]")
	assert.Contains(t, codes, "duplicate_column")
}

func TestValidate_UnnamedColumn(t *testing.T) {
	_, codes := validateYAML(t, `
columns:
  - name: ""
    type: date
`)
	assert.Contains(t, codes, "unnamed_column")
}

func TestValidate_NegativeWidth(t *testing.T) {
	_, codes := validateYAML(t, `
columns:
  - name: A
    dim: -1
`)
	assert.Contains(t, codes, "invalid_width")
}

func TestValidate_SequenceWithTransform(t *testing.T) {
	_, codes := validateYAML(t, `
columns:
  - name: A
    source: "@sequence"
    transform: extract_cf
`)
	assert.Contains(t, codes, "sequence_with_transform")
}

func TestValidate_RateColumnsMustBeOutputs(t *testing.T) {
	_, codes := validateYAML(t, `
columns: [A]
rate_column: Numero_Rata
total_rate_column: Rateizzazione
`)
	assert.Contains(t, codes, "rate_column_not_found")
	assert.Contains(t, codes, "total_rate_column_not_found")
}

func TestValidate_TotalWithoutRateWarns(t *testing.T) {
	cfg, err := Parse([]byte(`
columns: [Rateizzazione]
total_rate_column: Rateizzazione
`))
	require.NoError(t, err)

	diags := Validate(cfg)
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "rate_column_missing", diags.Warnings[0].Code)
}

func TestValidate_InvalidDelimiter(t *testing.T) {
	_, codes := validateYAML(t, `
columns: [A]
delimiter: ";;"
`)
	assert.Contains(t, codes, "invalid_delimiter")
}

func TestValidate_NilConfig(t *testing.T) {
	diags := Validate(nil)
	assert.True(t, diags.HasErrors())
}
