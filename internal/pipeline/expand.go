package pipeline

import (
	"strconv"
	"strings"
)

// Expand replicates a logical record into one physical row per installment.
//
// The installment count N is the resolved totalRateColumn value parsed as
// an integer (the column plan has already applied any numeric coercion).
// N rows are produced in strictly ascending installment order, identical
// except for rateColumn, which carries the 1-based index. Row order
// governs the output file and is a correctness property.
//
// Fail-soft: when replication is not configured, either column is missing
// from the record, or N parses to <= 0, exactly one row is emitted with
// the rate column left at its originally resolved value.
func Expand(rec LogicalRecord, rateColumn, totalRateColumn string) []PhysicalRow {
	single := []PhysicalRow{rec.Values()}

	if rateColumn == "" || totalRateColumn == "" {
		return single
	}

	rateIdx := rec.index(rateColumn)
	totalIdx := rec.index(totalRateColumn)

	if rateIdx < 0 || totalIdx < 0 {
		return single
	}

	total, err := strconv.Atoi(strings.TrimSpace(rec[totalIdx].Value))
	if err != nil || total <= 0 {
		return single
	}

	rows := make([]PhysicalRow, 0, total)

	for i := 1; i <= total; i++ {
		row := rec.Values()
		row[rateIdx] = strconv.Itoa(i)
		rows = append(rows, row)
	}

	return rows
}
