// Package config provides the declarative configuration schema, parsing,
// normalization, and validation for the CSV rewriter.
//
// Configuration is the single source of truth that turns a generic CSV
// copy into a deterministic reformatting run.
//
// # Key capabilities
//
//   - Per-column output specs (name, type, width, source, default, transform)
//   - Basic-variant shorthand: bare column names plus flat date_columns /
//     numeric_columns lists, folded into per-column types at load time
//   - Auto-sequence columns via the "@sequence" source sentinel
//   - Installment replication settings (rate_column / total_rate_column)
//   - Code-to-description mapping for the map_tipo_dovuto transform
//   - Fail-fast validation with stable diagnostic codes
//
// # Schema Overview
//
// YAML (advanced variant):
//
//	delimiter: ";"
//	columns:
//	  - name: Progressivo
//	    source: "@sequence"
//	  - name: Data_Emissione
//	    type: date
//	  - name: Importo_Totale
//	    type: numeric
//	  - name: Comune
//	    source: Codice_Fiscale
//	    transform: extract_belfiore
//	    dim: 4
//	rate_column: Numero_Rata
//	total_rate_column: Rateizzazione
//	tipo_dovuto_mapping:
//	  "001": "TARI"
//
// JSON (basic variant, config.json):
//
//	{"columns": ["Progressivo", "Data", "Importo"],
//	 "date_columns": ["Data"], "numeric_columns": ["Importo"]}
//
// A column listed as a bare string becomes an alphanumeric pass-through of
// the input column with the same name.
package config
