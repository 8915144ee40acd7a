package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/didaco97/SIH2025-sub000/pkg/models"
)

// fakeEngine transcribes by image content lookup.
type fakeEngine struct {
	texts map[string]string
	errs  map[string]error
	calls int
}

func (f *fakeEngine) Transcribe(_ context.Context, image []byte) (string, error) {
	f.calls++
	key := string(image)
	if err, ok := f.errs[key]; ok {
		return "", err
	}
	return f.texts[key], nil
}

// fakeExtractor returns canned records keyed by transcript.
type fakeExtractor struct {
	records map[string]models.StructuredRecord
	err     error
	calls   int
}

func (f *fakeExtractor) Extract(_ context.Context, transcript string) (models.StructuredRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if rec, ok := f.records[transcript]; ok {
		return rec, nil
	}
	return nil, errors.New("no canned record for transcript")
}

func recordWithVillage(village string) models.StructuredRecord {
	r := models.NewStructuredRecord()
	r.Set(models.FieldVillage, village)
	return r
}

func pages(images ...string) []models.RasterPage {
	ps := make([]models.RasterPage, len(images))
	for i, img := range images {
		ps[i] = models.RasterPage{Number: i + 1, Image: []byte(img)}
	}
	return ps
}

func TestRunFirstSuccessWins(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{
		"img1": "page one text",
		"img2": "page two text",
	}}
	extractor := &fakeExtractor{records: map[string]models.StructuredRecord{
		"page one text": recordWithVillage("FromPageOne"),
		"page two text": recordWithVillage("FromPageTwo"),
	}}

	outcome, err := New(engine, extractor).Run(context.Background(), pages("img1", "img2"))
	require.NoError(t, err)

	// Page one's record is frozen for the whole document.
	assert.Equal(t, "FromPageOne", outcome.Record.Get(models.FieldVillage))

	// Once a record is accepted, later pages do not call the model.
	assert.Equal(t, 1, extractor.calls)

	// Raw text still accumulates across all pages, in page order.
	assert.Equal(t, "page one text\n--- Page 2 ---\npage two text", outcome.RawText)
	assert.Empty(t, outcome.Warning)
}

func TestRunEmptyTranscriptShortCircuits(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{"img1": ""}}
	extractor := &fakeExtractor{err: errors.New("must not be called")}

	outcome, err := New(engine, extractor).Run(context.Background(), pages("img1"))
	require.NoError(t, err)

	// No model call, no warning, all-sentinel record.
	assert.Equal(t, 0, extractor.calls)
	assert.Empty(t, outcome.Warning)
	assert.Empty(t, outcome.RawText)
	require.NotNil(t, outcome.Record)
	for _, f := range models.AllFields {
		assert.Equal(t, models.NotFound, outcome.Record.Get(f))
	}
}

func TestRunExtractorFailureFallsBackToPatterns(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{
		"img1": "गाव: Sonari\nतालुका: Newasa",
	}}
	extractor := &fakeExtractor{err: errors.New("model unavailable")}

	outcome, err := New(engine, extractor).Run(context.Background(), pages("img1"))
	require.NoError(t, err)

	assert.Contains(t, outcome.Warning, "model unavailable")
	assert.Equal(t, "Sonari", outcome.Record.Get(models.FieldVillage))
	assert.Equal(t, "Newasa", outcome.Record.Get(models.FieldTaluka))
	assert.Equal(t, "गाव: Sonari\nतालुका: Newasa", outcome.RawText)
}

func TestRunNilExtractorUsesPatterns(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{"img1": "Village: Sonari"}}

	outcome, err := New(engine, nil).Run(context.Background(), pages("img1"))
	require.NoError(t, err)

	assert.Equal(t, "Sonari", outcome.Record.Get(models.FieldVillage))
	assert.Empty(t, outcome.Warning)
}

func TestRunTranscriptionFailureIsFatal(t *testing.T) {
	engine := &fakeEngine{
		texts: map[string]string{"img1": "page one text"},
		errs:  map[string]error{"img2": errors.New("vision unreachable")},
	}
	extractor := &fakeExtractor{records: map[string]models.StructuredRecord{
		"page one text": recordWithVillage("FromPageOne"),
	}}

	outcome, err := New(engine, extractor).Run(context.Background(), pages("img1", "img2"))

	// No partial result, even though page one succeeded.
	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.Contains(t, err.Error(), "page 2")
}

func TestRunNoPages(t *testing.T) {
	_, err := New(&fakeEngine{}, nil).Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoPages)
}

func TestRunLaterPageExtractsWhenFirstFails(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{
		"img1": "page one text",
		"img2": "page two text",
	}}
	extractor := &fakeExtractor{records: map[string]models.StructuredRecord{
		// No record for page one: the canned lookup fails there, the
		// pipeline records a warning and page two's record is accepted.
		"page two text": recordWithVillage("FromPageTwo"),
	}}

	outcome, err := New(engine, extractor).Run(context.Background(), pages("img1", "img2"))
	require.NoError(t, err)

	assert.Equal(t, "FromPageTwo", outcome.Record.Get(models.FieldVillage))
	assert.Equal(t, 2, extractor.calls)
	assert.NotEmpty(t, outcome.Warning)
}

func TestLocateCoordinatesSkipsFailedImages(t *testing.T) {
	engine := &fakeEngine{
		texts: map[string]string{"img2": "Lat 19.54841° Long 74.188663°"},
		errs:  map[string]error{"img1": errors.New("unreadable")},
	}

	coords, err := New(engine, nil).LocateCoordinates(context.Background(),
		[][]byte{[]byte("img1"), []byte("img2")})
	require.NoError(t, err)

	assert.InDelta(t, 19.54841, coords.Latitude, 1e-9)
	assert.InDelta(t, 74.188663, coords.Longitude, 1e-9)
}

func TestLocateCoordinatesStructuredRecordFirst(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{"img1": "Lat 19.5 Long 74.1"}}

	structured := models.NewStructuredRecord()
	structured.Set(models.FieldCoordinates, "18.1°, 73.9°")
	extractor := &fakeExtractor{records: map[string]models.StructuredRecord{
		"Lat 19.5 Long 74.1": structured,
	}}

	coords, err := New(engine, extractor).LocateCoordinates(context.Background(),
		[][]byte{[]byte("img1")})
	require.NoError(t, err)

	assert.InDelta(t, 18.1, coords.Latitude, 1e-9)
	assert.InDelta(t, 73.9, coords.Longitude, 1e-9)
}

func TestLocateCoordinatesInvalidStructuredFallsThrough(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{"img1": "Lat 19.5 Long 74.1"}}

	structured := models.NewStructuredRecord()
	structured.Set(models.FieldCoordinates, "19.5°, 195.2°")
	extractor := &fakeExtractor{records: map[string]models.StructuredRecord{
		"Lat 19.5 Long 74.1": structured,
	}}

	coords, err := New(engine, extractor).LocateCoordinates(context.Background(),
		[][]byte{[]byte("img1")})
	require.NoError(t, err)

	// The out-of-range structured pair is rejected; the transcript pattern
	// supplies the result.
	assert.InDelta(t, 19.5, coords.Latitude, 1e-9)
	assert.InDelta(t, 74.1, coords.Longitude, 1e-9)
}

func TestLocateCoordinatesNotFound(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{
		"img1": "no gps overlay here",
		"img2": "",
	}}

	_, err := New(engine, nil).LocateCoordinates(context.Background(),
		[][]byte{[]byte("img1"), []byte("img2")})
	assert.ErrorIs(t, err, ErrNoCoordinates)
}
