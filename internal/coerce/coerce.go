// Package coerce provides the pure value coercions applied to raw CSV
// fields before output: date reformatting, numeric normalization, boolean
// canonicalization, and width truncation.
//
// Coercions never fail the batch. Malformed input collapses to the empty
// string and the column plan substitutes the configured default.
package coerce

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"csv-rewriter/internal/config"
)

// Input and output date layouts. Calendar dates only, no timezone.
const (
	dateLayoutIn  = "02/01/2006"
	dateLayoutOut = "20060102"
)

// Apply coerces a raw value according to the declared column type and
// truncates the result to maxWidth characters when maxWidth > 0.
func Apply(raw string, typ config.ColumnType, maxWidth int) string {
	var out string

	switch typ {
	case config.TypeDate:
		out = Date(raw)
	case config.TypeNumeric:
		out = Numeric(raw)
	case config.TypeBoolean:
		out = Boolean(raw)
	default:
		// alphabetic and alphanumeric are pass-through
		out = raw
	}

	return Truncate(out, maxWidth)
}

// Date reformats DD/MM/YYYY into YYYYMMDD. Unparseable input yields "".
func Date(raw string) string {
	t, err := time.Parse(dateLayoutIn, strings.TrimSpace(raw))
	if err != nil {
		return ""
	}

	return t.Format(dateLayoutOut)
}

// Numeric strips grouping and decimal separators, yielding the digit-only
// representation expected by fixed-width downstream systems:
//
//	"1.234,56" -> "123456"
//	"500,00"   -> "50000"
//	"3"        -> "3"
//
// The comma is treated as the decimal mark and the dot as a grouping
// separator (locale of the source exports). Values that do not parse as a
// number after separator normalization yield "". Signs are dropped: the
// target format carries absolute amounts only.
func Numeric(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	canon := strings.ReplaceAll(s, ".", "")
	canon = strings.ReplaceAll(canon, ",", ".")

	if _, err := decimal.NewFromString(canon); err != nil {
		return ""
	}

	var b strings.Builder

	for _, r := range canon {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// booleanVocabulary maps the accepted spellings to the canonical S/N form.
var booleanVocabulary = map[string]string{
	"S": "S", "SI": "S", "Y": "S", "YES": "S", "TRUE": "S", "1": "S",
	"N": "N", "NO": "N", "FALSE": "N", "0": "N",
}

// Boolean maps a small fixed vocabulary to the canonical "S"/"N" pair used
// by the legacy consumers. Unrecognized input yields "".
func Boolean(raw string) string {
	return booleanVocabulary[strings.ToUpper(strings.TrimSpace(raw))]
}

// Truncate cuts a value to maxWidth characters (runes). Oversized values
// are silently truncated, never padded: documents must fit.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}

	return string(runes[:maxWidth])
}
