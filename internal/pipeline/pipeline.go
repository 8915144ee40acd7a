// Package pipeline orchestrates the per-document extraction run: page
// transcription, generative structured extraction with graceful
// degradation, pattern fallback, and outcome assembly. It also runs the
// coordinate-extraction batch over geotagged proof photos.
//
// Pages are processed strictly sequentially. Transcript accumulation order
// is an observable invariant, and resolving a page fully before the next
// begins avoids generative-model calls once a record has been accepted.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/didaco97/SIH2025-sub000/internal/extract"
	"github.com/didaco97/SIH2025-sub000/internal/logger"
	"github.com/didaco97/SIH2025-sub000/internal/ocr"
	"github.com/didaco97/SIH2025-sub000/pkg/models"
)

// Pipeline errors
var (
	// ErrNoPages is returned when a document run receives no raster pages.
	ErrNoPages = errors.New("no raster pages to process")

	// ErrNoCoordinates signals that no image in a coordinate batch yielded a
	// validated pair. Callers must not substitute a stale or zero pair.
	ErrNoCoordinates = errors.New("no coordinates found in supplied images")
)

// StructuredExtractor is the generative-model collaborator. A nil extractor
// disables structured extraction; the pipeline then relies on pattern
// fallback alone.
type StructuredExtractor interface {
	Extract(ctx context.Context, transcript string) (models.StructuredRecord, error)
}

// Pipeline runs document and coordinate extractions. Instances are safe for
// concurrent use: each run owns its own accumulator state.
type Pipeline struct {
	engine    ocr.TranscriptionEngine
	extractor StructuredExtractor
	log       zerolog.Logger
}

// New creates a pipeline. extractor may be nil when no generative API key
// is configured.
func New(engine ocr.TranscriptionEngine, extractor StructuredExtractor) *Pipeline {
	return &Pipeline{
		engine:    engine,
		extractor: extractor,
		log:       logger.WithComponent("pipeline"),
	}
}

// Run executes the extraction pipeline over the ordered raster pages of one
// document.
//
// Transcription failure on any page is fatal: the run returns an error and
// no partial outcome. Structured-extraction failures are non-fatal and
// surface as the outcome's Warning. The first page to yield a structured
// record freezes the record for the whole document; later pages still
// contribute raw text but never overwrite it.
func (p *Pipeline) Run(ctx context.Context, pages []models.RasterPage) (*models.ExtractionOutcome, error) {
	const op = "Run"

	if len(pages) == 0 {
		return nil, fmt.Errorf("pipeline: %s: %w", op, ErrNoPages)
	}

	var rawText strings.Builder
	var record models.StructuredRecord
	var warning string

	for i, page := range pages {
		text, err := p.engine.Transcribe(ctx, page.Image)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %s: page %d transcription failed: %w", op, page.Number, err)
		}

		if i > 0 {
			fmt.Fprintf(&rawText, "\n--- Page %d ---\n", page.Number)
		}
		rawText.WriteString(text)

		// Structured extraction runs once per document, on the first page
		// with a non-empty transcript. An empty transcript never reaches
		// the model.
		if record != nil || p.extractor == nil || strings.TrimSpace(text) == "" {
			continue
		}

		candidate, err := p.extractor.Extract(ctx, text)
		if err != nil {
			warning = fmt.Sprintf("structured extraction failed: %v", err)
			p.log.Warn().Err(err).Int("page", page.Number).Msg("Structured extraction failed, will fall back to patterns")
			continue
		}

		record = candidate
		p.log.Info().Int("page", page.Number).Msg("Structured record accepted")
	}

	outcome := &models.ExtractionOutcome{
		RawText: rawText.String(),
		Warning: warning,
	}

	if record != nil {
		outcome.Record = record
		return outcome, nil
	}

	// Pattern fallback over the accumulated transcript. On an all-empty
	// transcript this still yields a complete all-sentinel record.
	outcome.Record = extract.Fields(outcome.RawText)
	p.log.Info().Msg("Pattern fallback record produced")
	return outcome, nil
}

// RunImage is the single-image convenience used by the submission endpoint,
// which accepts exactly one encoded image per call.
func (p *Pipeline) RunImage(ctx context.Context, image []byte) (*models.ExtractionOutcome, error) {
	return p.Run(ctx, []models.RasterPage{{Number: 1, Image: image}})
}

// LocateCoordinates searches a batch of proof-photo images for a validated
// coordinate pair. For each image the structured record's coordinate claim
// is validated first, then the transcript patterns. Per-image transcription
// failures are logged and skipped; if the batch is exhausted the caller
// receives ErrNoCoordinates.
func (p *Pipeline) LocateCoordinates(ctx context.Context, images [][]byte) (models.Coordinates, error) {
	for i, image := range images {
		text, err := p.engine.Transcribe(ctx, image)
		if err != nil {
			p.log.Warn().Err(err).Int("image", i+1).Msg("Skipping image: transcription failed")
			continue
		}

		var record models.StructuredRecord
		if p.extractor != nil && strings.TrimSpace(text) != "" {
			record, err = p.extractor.Extract(ctx, text)
			if err != nil {
				p.log.Warn().Err(err).Int("image", i+1).Msg("Structured extraction failed, trying transcript patterns")
				record = nil
			}
		}

		if c, ok := extract.LocateCoordinates(record, text); ok {
			p.log.Info().Int("image", i+1).Str("coordinates", c.String()).Msg("Coordinates extracted")
			return c, nil
		}
	}

	return models.Coordinates{}, ErrNoCoordinates
}
