// Package extract implements the deterministic extraction strategies for
// 7/12 land-record transcripts: Devanagari numeral normalization, bilingual
// label/value pattern matching, coordinate location with range validation,
// and the non-destructive merge into claim-form state.
//
// Everything in this package is pure: no I/O, no network calls, no shared
// state. The pipeline package wires these strategies behind the OCR and
// generative-model collaborators.
package extract

import "strings"

// devanagariZero is the code point of '०'. The ten Devanagari digits are
// contiguous, so normalization is a single offset calculation per rune.
const devanagariZero = '०'

// NormalizeNumerals replaces every Devanagari digit with its ASCII
// equivalent and leaves all other characters untouched. Inputs without
// Devanagari digits pass through unchanged.
func NormalizeNumerals(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= devanagariZero && r <= devanagariZero+9 {
			return '0' + (r - devanagariZero)
		}
		return r
	}, s)
}
