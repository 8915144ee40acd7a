package models

import "fmt"

// NotFound is the sentinel value used for any field that could not be
// extracted. Downstream form-fill logic relies on every field being present
// with this value rather than the key being absent.
const NotFound = "Not Found"

// FieldName identifies one of the eight fields extracted from a 7/12 land
// record. The set is closed; extractors must never emit other names.
type FieldName string

const (
	FieldSurveyNumber   FieldName = "surveyNumber"
	FieldOwnerName      FieldName = "ownerName"
	FieldVillage        FieldName = "village"
	FieldTaluka         FieldName = "taluka"
	FieldDistrict       FieldName = "district"
	FieldArea           FieldName = "area"
	FieldCultivableArea FieldName = "cultivableArea"
	FieldCoordinates    FieldName = "coordinates"
)

// AllFields lists every extractable field in display order.
var AllFields = []FieldName{
	FieldSurveyNumber,
	FieldOwnerName,
	FieldVillage,
	FieldTaluka,
	FieldDistrict,
	FieldArea,
	FieldCultivableArea,
	FieldCoordinates,
}

// StructuredRecord maps every FieldName to an extracted value or NotFound.
// Records are complete by construction: use NewStructuredRecord and Set.
type StructuredRecord map[FieldName]string

// NewStructuredRecord returns a record with every field set to NotFound.
func NewStructuredRecord() StructuredRecord {
	r := make(StructuredRecord, len(AllFields))
	for _, f := range AllFields {
		r[f] = NotFound
	}
	return r
}

// Set stores a value for a field, substituting NotFound for blank input.
func (r StructuredRecord) Set(f FieldName, value string) {
	if value == "" {
		r[f] = NotFound
		return
	}
	r[f] = value
}

// Get returns the value for a field, or NotFound if the record was built
// without NewStructuredRecord and is missing the key.
func (r StructuredRecord) Get(f FieldName) string {
	if v, ok := r[f]; ok && v != "" {
		return v
	}
	return NotFound
}

// Found reports whether a field holds a real extracted value.
func (r StructuredRecord) Found(f FieldName) bool {
	v, ok := r[f]
	return ok && v != "" && v != NotFound
}

// RasterPage is one page of a source document rendered to an encoded image
// by the external rasterizer. Number is 1-based and fixes transcript order.
type RasterPage struct {
	Number int    // 1-based page index
	Image  []byte // encoded raster image (PNG/JPEG)
}

// ExtractionOutcome is the per-document result of a pipeline run. It is
// created once per submission and never mutated afterwards.
type ExtractionOutcome struct {
	// RawText is the concatenated transcript of all pages in page order.
	RawText string `json:"rawText"`

	// Record is the accepted structured record, or nil when neither the
	// generative model nor pattern fallback produced one.
	Record StructuredRecord `json:"structuredRecord"`

	// Warning carries a non-fatal structured-extraction failure message.
	// The rest of the outcome is still usable when it is set.
	Warning string `json:"extractionWarning,omitempty"`
}

// Coordinates is a validated latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the pair is inside geographic range.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// String renders the pair in the six-decimal form used for form fill.
func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
}

// FormFieldState is the caller-owned claim-form state that extraction
// results are merged into. Blank fields are fillable; populated fields
// represent manual user input and are never overwritten.
type FormFieldState struct {
	FarmerName  string // always manual, never auto-filled
	OtherNames  string // co-owner names from the 7/12 khatedar list
	Village     string
	Taluka      string
	District    string
	SurveyNo    string
	Area        string
	Description string
}
