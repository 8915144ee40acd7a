package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/didaco97/SIH2025-sub000/pkg/models"
)

func TestParseRecordPlainJSON(t *testing.T) {
	record, err := parseRecord(`{
		"surveyNumber": "45/2",
		"ownerName": "Ramesh Patil",
		"village": "Sonari",
		"taluka": "Newasa",
		"district": "Ahmednagar",
		"area": "1.35 Ha",
		"cultivableArea": "Not Found",
		"coordinates": "Not Found"
	}`)
	require.NoError(t, err)

	assert.Equal(t, "45/2", record.Get(models.FieldSurveyNumber))
	assert.Equal(t, "Ramesh Patil", record.Get(models.FieldOwnerName))
	assert.Equal(t, "Sonari", record.Get(models.FieldVillage))
	assert.Equal(t, "1.35 Ha", record.Get(models.FieldArea))
	assert.Equal(t, models.NotFound, record.Get(models.FieldCoordinates))
}

func TestParseRecordStripsFences(t *testing.T) {
	record, err := parseRecord("```json\n{\"village\": \"Sonari\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Sonari", record.Get(models.FieldVillage))

	record, err = parseRecord("```\n{\"village\": \"Sonari\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Sonari", record.Get(models.FieldVillage))
}

func TestParseRecordDropsHallucinatedKeys(t *testing.T) {
	record, err := parseRecord(`{"village": "Sonari", "pincode": "414603", "confidence": 0.9}`)
	require.NoError(t, err)

	assert.Equal(t, "Sonari", record.Get(models.FieldVillage))
	// Only the closed field set survives parsing.
	assert.Len(t, record, len(models.AllFields))
	for key := range record {
		assert.Contains(t, models.AllFields, key)
	}
}

func TestParseRecordMissingKeysBecomeSentinel(t *testing.T) {
	record, err := parseRecord(`{"village": "Sonari"}`)
	require.NoError(t, err)

	for _, f := range models.AllFields {
		if f == models.FieldVillage {
			continue
		}
		assert.Equal(t, models.NotFound, record.Get(f), "field %s", f)
	}
}

func TestParseRecordRejectsNonJSON(t *testing.T) {
	_, err := parseRecord("I could not read the document, sorry.")
	assert.Error(t, err)

	_, err = parseRecord("")
	assert.Error(t, err)
}

func TestBuildPromptNamesEveryField(t *testing.T) {
	prompt := buildPrompt("some transcript")

	for _, f := range models.AllFields {
		assert.Contains(t, prompt, string(f))
	}
	assert.Contains(t, prompt, "some transcript")
	assert.Contains(t, prompt, "7/12")
}
