// Package transform provides the registry of named derivation transforms
// referenced by column specs.
//
// A transform is a pure function deriving an output value from one or more
// raw input fields of the same record: substring extraction from composite
// identifiers, person-type classification, and code-to-description mapping.
//
// The registry is built once at startup; configurations referencing an
// unregistered tag fail fast before any file is processed.
//
// # Catalog
//
//   - extract_belfiore: Belfiore municipality code from a codice fiscale
//   - tipo_persona: F/G person-type classification of an identifier
//   - extract_cf / extract_piva: identifier split by structural pattern
//   - extract_ragione_sociale / extract_cognome / extract_nome: composite
//     name decomposition gated on person type
//   - map_tipo_dovuto: due-type code to description lookup
package transform
