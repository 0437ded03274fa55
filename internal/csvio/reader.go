// Package csvio provides the file-level collaborators around the record
// pipeline: delimited reading, CSV rendering, and ZIP packaging.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"

	"csv-rewriter/internal/pipeline"
)

// ReadFile parses a delimited text file with a header row into raw records.
// Rows shorter than the header leave the missing columns unset; extra
// fields beyond the header are dropped. A file that cannot be read or
// parsed is a file-level error: the caller skips it and moves on.
func ReadFile(path string, delimiter rune) ([]string, []pipeline.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("file %s is empty", path)
	}

	header := rows[0]
	records := make([]pipeline.RawRecord, 0, len(rows)-1)

	for _, row := range rows[1:] {
		rec := make(pipeline.RawRecord, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}

		records = append(records, rec)
	}

	return header, records, nil
}
