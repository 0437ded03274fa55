package config

import (
	"fmt"

	"csv-rewriter/internal/common"
	"csv-rewriter/internal/diagnostic"
)

// Validate performs structural validation of a normalized configuration.
// Transform tags are validated separately against the transform registry;
// everything here can be checked from the config alone.
//
// Any error diagnostic is fatal at startup: no file is processed with a
// broken configuration.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "configuration is nil", "")
		return res
	}

	if common.IsEmpty(cfg.Columns) {
		res.AddError("no_columns", "no output columns configured", "")
		return res
	}

	if _, err := cfg.DelimiterRune(); err != nil {
		res.AddError("invalid_delimiter", fmt.Sprintf("invalid delimiter %q: %v", cfg.Delimiter, err), "")
	}

	seen := map[string]struct{}{}

	for i := range cfg.Columns {
		col := &cfg.Columns[i]

		if col.Name == "" {
			res.AddError("unnamed_column", fmt.Sprintf("column at position %d has no name", i+1), "")
			continue
		}

		if _, ok := seen[col.Name]; ok {
			res.AddError("duplicate_column", fmt.Sprintf("duplicate output column %q", col.Name), col.Name)
			continue
		}

		seen[col.Name] = struct{}{}

		if col.MaxWidth < 0 {
			res.AddError("invalid_width", fmt.Sprintf("negative width %d", col.MaxWidth), col.Name)
		}

		if col.IsAutoSequence() && col.Transform != "" {
			res.AddError("sequence_with_transform",
				"auto-sequence columns cannot use a transform", col.Name)
		}
	}

	// Replication settings must point at declared output columns; the
	// expander reads the installment count from the resolved record.
	if cfg.RateColumn != "" {
		if _, ok := seen[cfg.RateColumn]; !ok {
			res.AddError("rate_column_not_found",
				fmt.Sprintf("rate_column %q is not an output column", cfg.RateColumn), cfg.RateColumn)
		}
	}

	if cfg.TotalRateColumn != "" {
		if _, ok := seen[cfg.TotalRateColumn]; !ok {
			res.AddError("total_rate_column_not_found",
				fmt.Sprintf("total_rate_column %q is not an output column", cfg.TotalRateColumn), cfg.TotalRateColumn)
		}

		if cfg.RateColumn == "" {
			res.AddWarning("rate_column_missing",
				"total_rate_column is set but rate_column is not; rows will not be replicated", "")
		}
	}

	return res
}
