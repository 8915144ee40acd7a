package extract

import (
	"regexp"
	"strings"

	"github.com/didaco97/SIH2025-sub000/pkg/models"
)

var nonNumericRe = regexp.MustCompile(`[^\d.]`)

// Merge fills blank claim-form fields from an extracted record and returns
// the updated state. Fields the user has already populated are never
// overwritten; extraction may run after manual corrections and must not
// regress them. The farmer name stays manual: owner names from the 7/12
// khatedar list land in OtherNames.
func Merge(record models.StructuredRecord, form models.FormFieldState) models.FormFieldState {
	if record == nil {
		return form
	}

	form.OtherNames = fillBlank(form.OtherNames, record, models.FieldOwnerName)
	form.Village = fillBlank(form.Village, record, models.FieldVillage)
	form.Taluka = fillBlank(form.Taluka, record, models.FieldTaluka)
	form.District = fillBlank(form.District, record, models.FieldDistrict)
	form.SurveyNo = fillBlank(form.SurveyNo, record, models.FieldSurveyNumber)

	// Area is filled with digits and decimal point only, dropping unit
	// suffixes like "Ha" the document or model may include.
	if strings.TrimSpace(form.Area) == "" && record.Found(models.FieldArea) {
		if cleaned := nonNumericRe.ReplaceAllString(record.Get(models.FieldArea), ""); cleaned != "" {
			form.Area = cleaned
		}
	}

	form.Description = appendAutoNote(form.Description, record)
	return form
}

// appendAutoNote records what was auto-detected in the free-text
// description. The note is added once; re-merging the same outcome leaves
// the description unchanged.
func appendAutoNote(description string, record models.StructuredRecord) string {
	note := "Auto-detected from 7/12:\nSurvey No: " + record.Get(models.FieldSurveyNumber) +
		"\nCoordinates: " + record.Get(models.FieldCoordinates)
	if strings.Contains(description, note) {
		return description
	}
	return strings.TrimSpace(description + "\n\n" + note)
}

func fillBlank(current string, record models.StructuredRecord, field models.FieldName) string {
	if strings.TrimSpace(current) != "" {
		return current
	}
	if !record.Found(field) {
		return current
	}
	return record.Get(field)
}
