package extract

import (
	"regexp"
	"strings"

	"github.com/didaco97/SIH2025-sub000/pkg/models"
)

// fieldPattern is one candidate label/value expression for a field. When
// exclude is non-empty, a captured value starting with that token is
// rejected and later occurrences are tried instead; this keeps the printed
// form-template word "नमुना" from satisfying the village pattern.
type fieldPattern struct {
	re      *regexp.Regexp
	exclude string
}

// fieldRule binds a field to its ordered pattern list. Patterns are tried
// in declaration order: Devanagari label first, Latin fallback last, so a
// bilingual page resolves to the Devanagari match. Adding another label
// variant is a data change here, not new branching.
type fieldRule struct {
	field    models.FieldName
	numeric  bool
	patterns []fieldPattern
}

var fieldRules = []fieldRule{
	{
		field: models.FieldVillage,
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`गाव\s*[:\-]+\s*([^\s\n]+)`), exclude: "नमुना"},
			{re: regexp.MustCompile(`(?i)Village\s*[:\-]+\s*([^\s\n]+)`)},
		},
	},
	{
		field: models.FieldTaluka,
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`तालुका\s*[:\-]+\s*([^\s\n]+)`)},
			{re: regexp.MustCompile(`(?i)Taluka\s*[:\-]+\s*([^\s\n]+)`)},
		},
	},
	{
		field: models.FieldDistrict,
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`जिल्हा\s*[:\-]+\s*([^\s\n]+)`)},
			{re: regexp.MustCompile(`(?i)District\s*[:\-]+\s*([^\s\n]+)`)},
		},
	},
	{
		field:   models.FieldSurveyNumber,
		numeric: true,
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`भूमापन\s*क्रमांक\s*[:\-\s]*([\w/]+)`)},
			{re: regexp.MustCompile(`गट\s*क्रमांक\s*[:\-\s]*([\w/]+)`)},
			{re: regexp.MustCompile(`(?i)Survey\s*No\.?\s*[:\-\s]*([\w/]+)`)},
		},
	},
	{
		field: models.FieldOwnerName,
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`खातेदारांची\s*नावे\s*[:\-]*\s*([^\n]+)`)},
			{re: regexp.MustCompile(`खातेदार\s*[:\-]*\s*([^\n]+)`)},
			{re: regexp.MustCompile(`(?i)Name\s*[:\-]*\s*([^\n]+)`)},
		},
	},
	{
		field:   models.FieldArea,
		numeric: true,
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`एकूण\s*[:\-\s]*([\d.०-९]+)`)},
			{re: regexp.MustCompile(`क्षेत्र\s*[:\-\s]*([\d.०-९]+)`)},
			{re: regexp.MustCompile(`(?i)Area\s*[:\-\s]*([\d.]+)`)},
		},
	},
	{
		field:   models.FieldCultivableArea,
		numeric: true,
		patterns: []fieldPattern{
			{re: regexp.MustCompile(`पोट\s*खराब\s*[:\-\s]*([\d.०-९]+)`)},
			{re: regexp.MustCompile(`(?i)Pot\s*Kharab\s*[:\-\s]*([\d.]+)`)},
		},
	},
	// coordinates are handled by the coordinate locator, never by label
	// patterns; the field stays at the sentinel here.
}

// Fields runs every field's pattern list against a raw transcript and
// returns a complete record: matched fields carry their trimmed (and, for
// numeric fields, numeral-normalized) value, everything else the sentinel.
func Fields(transcript string) models.StructuredRecord {
	record := models.NewStructuredRecord()
	for _, rule := range fieldRules {
		value, ok := firstMatch(transcript, rule.patterns)
		if !ok {
			continue
		}
		if rule.numeric {
			value = NormalizeNumerals(value)
		}
		record.Set(rule.field, value)
	}
	return record
}

// firstMatch evaluates patterns in order and returns the first accepted
// capture. A capture starting with the pattern's excluded token is skipped
// and the same pattern keeps scanning later occurrences, so a template
// header does not mask a real value further down the page.
func firstMatch(text string, patterns []fieldPattern) (string, bool) {
	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			raw := m[1]
			if p.exclude != "" && strings.HasPrefix(raw, p.exclude) {
				continue
			}
			if value := trimPunct(raw); value != "" {
				return value, true
			}
		}
	}
	return "", false
}

// trimPunct strips surrounding colons, dashes, periods and whitespace from
// a captured value.
func trimPunct(s string) string {
	return strings.Trim(s, ":-. \t")
}
