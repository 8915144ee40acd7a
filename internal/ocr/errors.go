package ocr

import (
	"errors"
	"fmt"
)

// Common transcription errors
var (
	// ErrImageTooLarge is returned when the image exceeds the maximum size
	// for synchronous processing (20MB for both Google engines).
	ErrImageTooLarge = errors.New("image exceeds the maximum size limit (20MB)")

	// ErrEmptyImage is returned when no image bytes were provided.
	ErrEmptyImage = errors.New("no image data provided")

	// ErrTranscriptionFailed is returned when the engine rejects the page or
	// is unreachable.
	ErrTranscriptionFailed = errors.New("transcription failed")

	// ErrMissingCredentials is returned when neither GOOGLE_APPLICATION_CREDENTIALS
	// nor GOOGLE_CREDENTIALS environment variables are configured.
	ErrMissingCredentials = errors.New("missing Google Cloud credentials: set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS environment variable")

	// ErrInvalidConfiguration is returned when engine configuration is
	// incomplete, e.g. a Document AI processor without a project ID.
	ErrInvalidConfiguration = errors.New("invalid transcription engine configuration")
)

// OCRError wraps errors with additional context about the transcription failure.
type OCRError struct {
	// Op is the operation that failed (e.g., "Transcribe").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *OCRError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ocr: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("ocr: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *OCRError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *OCRError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// WrapOCRError wraps an error as an OCRError if it isn't already one.
func WrapOCRError(op string, err error, details string) error {
	if err == nil {
		return nil
	}

	var ocrErr *OCRError
	if errors.As(err, &ocrErr) {
		return err // Already wrapped
	}

	return &OCRError{Op: op, Err: err, Details: details}
}
