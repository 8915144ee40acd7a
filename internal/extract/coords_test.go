package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/didaco97/SIH2025-sub000/pkg/models"
)

func TestLocateInText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLat float64
		wantLng float64
		found   bool
	}{
		{
			name:    "lat long labels",
			text:    "Lat 19.54841° Long 74.188663°",
			wantLat: 19.54841,
			wantLng: 74.188663,
			found:   true,
		},
		{
			name:    "bare decimal pair",
			text:    "GPS Map Camera\n19.54841, 74.188663\nSonari, Maharashtra",
			wantLat: 19.54841,
			wantLng: 74.188663,
			found:   true,
		},
		{
			name:    "latitude longitude words",
			text:    "Latitude: 19.5 Longitude: 74.1",
			wantLat: 19.5,
			wantLng: 74.1,
			found:   true,
		},
		{
			name:    "hemisphere letters",
			text:    "N 19.5, E 74.1",
			wantLat: 19.5,
			wantLng: 74.1,
			found:   true,
		},
		{
			name:  "no coordinates",
			text:  "गाव: Sonari तालुका: Newasa",
			found: false,
		},
		{
			name:  "empty text",
			text:  "",
			found: false,
		},
		{
			name: "out of range pair rejected",
			// Parses under the bare-pair pattern but fails longitude
			// validation; no other pattern matches, so no result.
			text:  "19.54841, 195.188663",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := LocateInText(tt.text)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.wantLat, c.Latitude, 1e-9)
				assert.InDelta(t, tt.wantLng, c.Longitude, 1e-9)
			}
		})
	}
}

func TestLocateInTextNeverPartial(t *testing.T) {
	// A latitude with no parseable longitude must not produce a pair.
	_, ok := LocateInText("Lat 19.54841°")
	assert.False(t, ok)
}

func TestParseCoordinateValue(t *testing.T) {
	c, ok := ParseCoordinateValue("19.5°, 74.2°")
	require.True(t, ok)
	assert.InDelta(t, 19.5, c.Latitude, 1e-9)
	assert.InDelta(t, 74.2, c.Longitude, 1e-9)

	_, ok = ParseCoordinateValue(models.NotFound)
	assert.False(t, ok)

	_, ok = ParseCoordinateValue("")
	assert.False(t, ok)

	// Out-of-range longitude fails the same validation as pattern matches.
	_, ok = ParseCoordinateValue("19.5°, 195.2°")
	assert.False(t, ok)
}

func TestLocateCoordinatesStructuredFirst(t *testing.T) {
	record := models.NewStructuredRecord()
	record.Set(models.FieldCoordinates, "18.1°, 73.9°")

	// The structured value wins over a different pair in the transcript.
	c, ok := LocateCoordinates(record, "Lat 19.5 Long 74.1")
	require.True(t, ok)
	assert.InDelta(t, 18.1, c.Latitude, 1e-9)
	assert.InDelta(t, 73.9, c.Longitude, 1e-9)
}

func TestLocateCoordinatesInvalidStructuredFallsThrough(t *testing.T) {
	record := models.NewStructuredRecord()
	record.Set(models.FieldCoordinates, "19.5°, 195.2°")

	c, ok := LocateCoordinates(record, "Lat 19.54841° Long 74.188663°")
	require.True(t, ok)
	assert.InDelta(t, 19.54841, c.Latitude, 1e-9)
	assert.InDelta(t, 74.188663, c.Longitude, 1e-9)
}

func TestLocateCoordinatesNilRecord(t *testing.T) {
	c, ok := LocateCoordinates(nil, "Lat 19.5 Long 74.1")
	require.True(t, ok)
	assert.InDelta(t, 19.5, c.Latitude, 1e-9)
	assert.InDelta(t, 74.1, c.Longitude, 1e-9)
}

func TestCoordinatesString(t *testing.T) {
	c := models.Coordinates{Latitude: 19.54841, Longitude: 74.188663}
	assert.Equal(t, "19.548410, 74.188663", c.String())
}
