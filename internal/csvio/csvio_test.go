package csvio

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-rewriter/internal/pipeline"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestReadFile(t *testing.T) {
	path := writeTemp(t, "flusso.csv", "CF;Data;Importo\nRSSMRA80A01H501U;15/01/2025;1.234,56\nVRDLGU75B02H501X;20/01/2025;500,00\n")

	header, records, err := ReadFile(path, ';')
	require.NoError(t, err)

	assert.Equal(t, []string{"CF", "Data", "Importo"}, header)
	require.Len(t, records, 2)
	assert.Equal(t, "RSSMRA80A01H501U", records[0]["CF"])
	assert.Equal(t, "500,00", records[1]["Importo"])
}

func TestReadFile_ShortAndLongRows(t *testing.T) {
	path := writeTemp(t, "ragged.csv", "A;B;C\n1;2\n1;2;3;4\n")

	_, records, err := ReadFile(path, ';')
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Short rows leave missing columns unset, long rows drop extras.
	assert.Equal(t, "", records[0]["C"])
	assert.Equal(t, "3", records[1]["C"])
}

func TestReadFile_Errors(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"), ';')
	assert.Error(t, err)

	empty := writeTemp(t, "empty.csv", "")
	_, _, err = ReadFile(empty, ';')
	assert.Error(t, err)

	malformed := writeTemp(t, "bad.csv", "A;B\n\"unclosed;1\n")
	_, _, err = ReadFile(malformed, ';')
	assert.Error(t, err)
}

func TestRenderCSV(t *testing.T) {
	content, err := RenderCSV(
		[]string{"A", "B"},
		[]pipeline.PhysicalRow{{"1", "x"}, {"2", "y, z"}},
	)
	require.NoError(t, err)

	assert.Equal(t, "A,B\n1,x\n2,\"y, z\"\n", string(content))
}

func TestOutputNames(t *testing.T) {
	archive, inner := OutputNames("input/flusso_2025.csv", "")
	assert.Equal(t, "flusso_2025_processed.zip", archive)
	assert.Equal(t, "flusso_2025_processed.csv", inner)

	archive, inner = OutputNames("input/flusso_2025.csv", "export")
	assert.Equal(t, "export.zip", archive)
	assert.Equal(t, "export.csv", inner)
}

func TestWriteZip_RoundTrip(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out", "flusso_processed.zip")
	content := []byte("A,B\n1,2\n")

	require.NoError(t, WriteZip(outPath, "flusso_processed.csv", content))

	zr, err := zip.OpenReader(outPath)
	require.NoError(t, err)
	defer zr.Close()

	require.Len(t, zr.File, 1)
	assert.Equal(t, "flusso_processed.csv", zr.File[0].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}
