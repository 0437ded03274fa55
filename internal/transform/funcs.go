package transform

import (
	"regexp"
	"strings"

	"csv-rewriter/internal/config"
)

// Identifier patterns. A codice fiscale is 16 alphanumeric characters
// (letter substitutions for omocodia keep this looser than the strict
// letter/digit layout); a partita IVA is exactly 11 digits.
var (
	cfPattern   = regexp.MustCompile(`^[A-Za-z0-9]{16}$`)
	pivaPattern = regexp.MustCompile(`^[0-9]{11}$`)
)

// Belfiore municipality code position inside a codice fiscale.
const (
	belfioreOffset = 11
	belfioreLen    = 4
)

// Person-type codes emitted by TipoPersona.
const (
	PersonaFisica    = "F"
	PersonaGiuridica = "G"
)

func sourceValue(rec Record, spec *config.ColumnSpec, idx int) string {
	sources := spec.Sources()
	if idx >= len(sources) {
		return ""
	}

	return strings.TrimSpace(rec[sources[idx]])
}

// classify returns the person-type code for an identifier, or "" when the
// identifier matches neither pattern.
func classify(id string) string {
	switch {
	case cfPattern.MatchString(id):
		return PersonaFisica
	case pivaPattern.MatchString(id):
		return PersonaGiuridica
	default:
		return ""
	}
}

// ExtractBelfiore extracts the 4-character Belfiore municipality code at
// its fixed offset in a codice fiscale. Inputs shorter than the expected
// offset+length yield "".
func ExtractBelfiore(rec Record, spec *config.ColumnSpec) string {
	v := sourceValue(rec, spec, 0)
	if len(v) < belfioreOffset+belfioreLen {
		return ""
	}

	return v[belfioreOffset : belfioreOffset+belfioreLen]
}

// TipoPersona classifies an identifier as physical person ("F", codice
// fiscale) or legal person ("G", partita IVA). Anything else yields "".
func TipoPersona(rec Record, spec *config.ColumnSpec) string {
	return classify(sourceValue(rec, spec, 0))
}

// ExtractCF returns the identifier only when it is a codice fiscale.
func ExtractCF(rec Record, spec *config.ColumnSpec) string {
	v := sourceValue(rec, spec, 0)
	if !cfPattern.MatchString(v) {
		return ""
	}

	return v
}

// ExtractPIVA returns the identifier only when it is a partita IVA.
func ExtractPIVA(rec Record, spec *config.ColumnSpec) string {
	v := sourceValue(rec, spec, 0)
	if !pivaPattern.MatchString(v) {
		return ""
	}

	return v
}

// Name decomposition transforms read two source fields: the composite name
// and the identifier that decides the person type.
//
// For physical persons the composite name is "Surname Name"; the first
// whitespace-delimited token is the surname and the remainder the given
// name. Multi-word surnames are split wrong by this rule; that matches the
// upstream exports and is a documented limitation, not a defect.

// ExtractRagioneSociale returns the full composite name for legal persons,
// "" otherwise.
func ExtractRagioneSociale(rec Record, spec *config.ColumnSpec) string {
	if classify(sourceValue(rec, spec, 1)) != PersonaGiuridica {
		return ""
	}

	return sourceValue(rec, spec, 0)
}

// ExtractCognome returns the surname component for physical persons, "" otherwise.
func ExtractCognome(rec Record, spec *config.ColumnSpec) string {
	if classify(sourceValue(rec, spec, 1)) != PersonaFisica {
		return ""
	}

	fields := strings.Fields(sourceValue(rec, spec, 0))
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// ExtractNome returns the given-name component for physical persons, "" otherwise.
func ExtractNome(rec Record, spec *config.ColumnSpec) string {
	if classify(sourceValue(rec, spec, 1)) != PersonaFisica {
		return ""
	}

	fields := strings.Fields(sourceValue(rec, spec, 0))
	if len(fields) < 2 {
		return ""
	}

	return strings.Join(fields[1:], " ")
}

// MapTipoDovuto returns a transform that maps a due-type code to its
// description. Unmapped codes pass through as-is so unknown codes stay
// traceable in the output.
func MapTipoDovuto(mapping map[string]string) Func {
	return func(rec Record, spec *config.ColumnSpec) string {
		code := sourceValue(rec, spec, 0)
		if desc, ok := mapping[code]; ok {
			return desc
		}

		return code
	}
}
