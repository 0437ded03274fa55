package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-rewriter/internal/config"
	"csv-rewriter/internal/transform"
)

const installmentConfig = `
columns:
  - name: Progressivo
  - name: Codice_Fiscale
    source: CF
  - name: Data_Emissione
    type: date
    source: Data
  - name: Importo_Totale
    type: numeric
    source: Importo
  - name: Rateizzazione
  - name: Numero_Rata
    source: Rata
rate_column: Numero_Rata
total_rate_column: Rateizzazione
`

func installmentPipeline(t *testing.T, extra string) *Pipeline {
	t.Helper()

	cfg, err := config.Parse([]byte(installmentConfig + extra))
	require.NoError(t, err)

	pl, err := New(cfg, transform.NewRegistry(cfg.TipoDovutoMapping))
	require.NoError(t, err)

	return pl
}

func installmentFixture() []RawRecord {
	return []RawRecord{
		{"Progressivo": "1", "CF": "RSSMRA80A01H501U", "Data": "15/01/2025", "Importo": "1.234,56", "Rateizzazione": "3", "Rata": "1"},
		{"Progressivo": "2", "CF": "VRDLGU75B02H501X", "Data": "20/01/2025", "Importo": "500,00", "Rateizzazione": "2", "Rata": "1"},
	}
}

func TestPipeline_InstallmentScenario(t *testing.T) {
	pl := installmentPipeline(t, "")

	rows := pl.Run(installmentFixture())
	require.Len(t, rows, 5)

	// Record 1 expands into installments 1..3, record 2 into 1..2, in
	// that order.
	expected := []PhysicalRow{
		{"1", "RSSMRA80A01H501U", "20250115", "123456", "3", "1"},
		{"1", "RSSMRA80A01H501U", "20250115", "123456", "3", "2"},
		{"1", "RSSMRA80A01H501U", "20250115", "123456", "3", "3"},
		{"2", "VRDLGU75B02H501X", "20250120", "50000", "2", "1"},
		{"2", "VRDLGU75B02H501X", "20250120", "50000", "2", "2"},
	}
	assert.Equal(t, expected, rows)
}

func TestPipeline_Idempotent(t *testing.T) {
	first := installmentPipeline(t, "").Run(installmentFixture())
	second := installmentPipeline(t, "").Run(installmentFixture())

	assert.Equal(t, first, second)
}

const sequenceConfig = `
columns:
  - name: Progressivo
    source: "@sequence"
  - name: Rateizzazione
  - name: Numero_Rata
    source: Rata
rate_column: Numero_Rata
total_rate_column: Rateizzazione
`

func sequenceFixture() []RawRecord {
	return []RawRecord{
		{"Rateizzazione": "2", "Rata": "1"},
		{"Rateizzazione": "1", "Rata": "1"},
	}
}

func TestPipeline_SequencePerLogicalRecord(t *testing.T) {
	cfg, err := config.Parse([]byte(sequenceConfig))
	require.NoError(t, err)

	pl, err := New(cfg, transform.NewRegistry(nil))
	require.NoError(t, err)

	rows := pl.Run(sequenceFixture())
	require.Len(t, rows, 3)

	// Replicated rows share the logical record's number.
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[2][0])
}

func TestPipeline_SequencePerPhysicalRow(t *testing.T) {
	cfg, err := config.Parse([]byte(sequenceConfig + "sequence_per_physical_row: true\n"))
	require.NoError(t, err)

	pl, err := New(cfg, transform.NewRegistry(nil))
	require.NoError(t, err)

	rows := pl.Run(sequenceFixture())
	require.Len(t, rows, 3)

	// Every physical row draws a fresh number, monotonic from 1.
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "3", rows[2][0])
}

func TestPipeline_CounterRestartsPerPipeline(t *testing.T) {
	cfg, err := config.Parse([]byte(sequenceConfig))
	require.NoError(t, err)

	plan, err := NewPlan(cfg, transform.NewRegistry(nil))
	require.NoError(t, err)

	// One pipeline per file: the counter restarts at 1 for the next file.
	for i := 0; i < 2; i++ {
		rows := FromPlan(plan).Run(sequenceFixture())
		require.NotEmpty(t, rows)
		assert.Equal(t, "1", rows[0][0])
	}
}

func TestPipeline_TransformColumns(t *testing.T) {
	yaml := `
columns:
  - name: Tipo_Persona
    source: Identificativo
    transform: tipo_persona
  - name: Cognome
    source: Denominazione,Identificativo
    transform: extract_cognome
  - name: Nome
    source: Denominazione,Identificativo
    transform: extract_nome
  - name: Ragione_Sociale
    source: Denominazione,Identificativo
    transform: extract_ragione_sociale
  - name: Tipo_Dovuto
    source: Codice_Tipo
    transform: map_tipo_dovuto
tipo_dovuto_mapping:
  "001": TARI
`
	cfg, err := config.Parse([]byte(yaml))
	require.NoError(t, err)

	pl, err := New(cfg, transform.NewRegistry(cfg.TipoDovutoMapping))
	require.NoError(t, err)

	rows := pl.Run([]RawRecord{
		{"Identificativo": "RSSMRA80A01H501U", "Denominazione": "ROSSI MARIO", "Codice_Tipo": "001"},
		{"Identificativo": "12345678901", "Denominazione": "ACME SRL", "Codice_Tipo": "9999"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, PhysicalRow{"F", "ROSSI", "MARIO", "", "TARI"}, rows[0])
	assert.Equal(t, PhysicalRow{"G", "", "", "ACME SRL", "9999"}, rows[1])
}

func TestPipeline_EmptyInput(t *testing.T) {
	pl := installmentPipeline(t, "")
	assert.Empty(t, pl.Run(nil))
}
