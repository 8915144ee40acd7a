// Package ocr provides the transcription engine boundary for the extraction
// pipeline: turning one encoded raster page image into its raw text
// transcript.
//
// Two engines are available, both backed by Google Cloud:
//   - Google Cloud Vision document text detection (default)
//   - Document AI OCR processors (set OCR_ENGINE=documentai)
//
// Required Environment Variables:
//   - GOOGLE_APPLICATION_CREDENTIALS: Path to service account JSON file, OR
//   - GOOGLE_CREDENTIALS: Inline JSON credentials string
//
// The pipeline treats transcription failures as fatal for the document:
// with no text there is nothing for either extraction strategy to consume.
// An image that transcribes to no text at all is not an error; the engine
// returns an empty transcript and the pipeline short-circuits extraction.
package ocr

import "context"

// TranscriptionEngine turns one encoded raster page into raw transcript
// text. Implementations must return an empty string, not an error, for a
// page that contains no readable text.
type TranscriptionEngine interface {
	Transcribe(ctx context.Context, image []byte) (string, error)
}
