package extract

import (
	"regexp"
	"strconv"

	"github.com/didaco97/SIH2025-sub000/pkg/models"
)

// coordPatterns are tried in priority order against raw transcript text.
// GPS camera overlays print coordinates in a handful of layouts; the first
// pattern whose two captures parse and pass range validation wins.
var coordPatterns = []*regexp.Regexp{
	// "Lat 19.54841° Long 74.188663°"
	regexp.MustCompile(`(?i)Lat\s*(-?\d+\.?\d*)°?\s*Long\s*(-?\d+\.?\d*)°?`),
	// "19.54841°, 74.188663°" or comma/space separated decimals
	regexp.MustCompile(`(-?\d{1,3}\.\d{2,})\s*°?\s*[,\s]+(-?\d{1,3}\.\d{2,})\s*°?`),
	// "Latitude: 19.54841 Longitude: 74.188663"
	regexp.MustCompile(`(?i)lat[itude]*\s*[:=]?\s*(-?\d+\.?\d*)\s*[°,\s]+long[itude]*\s*[:=]?\s*(-?\d+\.?\d*)`),
	// "N 19.54841, E 74.188663". The hemisphere letters only anchor the
	// match; S/W do not negate the values, so southern or western overlays
	// come out positive unless the sign is printed.
	regexp.MustCompile(`(?i)[NS]\s*(-?\d+\.?\d*)\s*[,\s]+[EW]\s*(-?\d+\.?\d*)`),
}

// coordValueRe parses a coordinate string reported by the generative model,
// e.g. "19.5°, 74.2°".
var coordValueRe = regexp.MustCompile(`(-?\d+\.?\d*)[°\s,]+(-?\d+\.?\d*)`)

// LocateInText searches a transcript for a geographic coordinate pair.
// A match that parses but fails range validation is discarded and the
// remaining patterns are still tried; the result is never a partially
// valid pair.
func LocateInText(text string) (models.Coordinates, bool) {
	for _, re := range coordPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if c, ok := parsePair(m[1], m[2]); ok {
			return c, true
		}
	}
	return models.Coordinates{}, false
}

// ParseCoordinateValue parses and validates a coordinate string from a
// structured record. The generative model is a higher-priority source than
// transcript patterns but not an infallible one, so its value is held to
// the same range validation.
func ParseCoordinateValue(value string) (models.Coordinates, bool) {
	if value == "" || value == models.NotFound {
		return models.Coordinates{}, false
	}
	m := coordValueRe.FindStringSubmatch(value)
	if m == nil {
		return models.Coordinates{}, false
	}
	return parsePair(m[1], m[2])
}

// LocateCoordinates resolves the coordinate pair for a record/transcript
// combination: the structured record's claim is validated first, then the
// transcript patterns.
func LocateCoordinates(record models.StructuredRecord, transcript string) (models.Coordinates, bool) {
	if record != nil && record.Found(models.FieldCoordinates) {
		if c, ok := ParseCoordinateValue(record.Get(models.FieldCoordinates)); ok {
			return c, true
		}
	}
	return LocateInText(transcript)
}

func parsePair(latStr, lngStr string) (models.Coordinates, bool) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	c := models.Coordinates{Latitude: lat, Longitude: lng}
	if !c.Valid() {
		return models.Coordinates{}, false
	}
	return c, true
}
