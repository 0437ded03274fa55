package csvio

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"csv-rewriter/internal/common"
	"csv-rewriter/internal/pipeline"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// RenderCSV renders the header and rows as comma-delimited CSV text.
// Output is always comma-delimited regardless of the input delimiter.
func RenderCSV(header []string, rows []pipeline.PhysicalRow) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// OutputNames derives the archive and inner file names for an input file.
// The stem defaults to "<input-stem>_processed"; a non-empty zipName
// override replaces it.
func OutputNames(inputPath, zipName string) (archive, inner string) {
	stem := common.Stem(inputPath) + "_processed"
	if zipName != "" {
		stem = zipName
	}

	return stem + ".zip", stem + ".csv"
}

// WriteZip writes the CSV content straight into a DEFLATE-compressed ZIP
// archive at outPath, creating the output directory if needed.
func WriteZip(outPath, innerName string, content []byte) error {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)

	w, err := zw.Create(innerName)
	if err != nil {
		return fmt.Errorf("failed to add %s to archive: %w", innerName, err)
	}

	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("failed to write %s into archive: %w", innerName, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("writing archive %s: %w", outPath, err)
	}

	return nil
}
