package ocr_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/didaco97/SIH2025-sub000/internal/ocr"
)

// Example demonstrates transcribing one scanned 7/12 page image.
func Example() {
	// Credentials come from the environment:
	// GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	engine, err := ocr.NewGoogleVisionEngine(ctx)
	if err != nil {
		log.Fatalf("Failed to create transcription engine: %v", err)
	}
	defer engine.Close()

	image, err := os.ReadFile("satbara-page1.png")
	if err != nil {
		log.Fatalf("Failed to read page image: %v", err)
	}

	text, err := engine.Transcribe(ctx, image)
	if err != nil {
		log.Fatalf("Failed to transcribe page: %v", err)
	}

	fmt.Printf("Transcript (%d characters):\n%s\n", len(text), text)
}

// ExampleDocumentAIEngine demonstrates the Document AI engine, selected in
// production with OCR_ENGINE=documentai.
func ExampleDocumentAIEngine() {
	ctx := context.Background()

	engine, err := ocr.NewDocumentAIEngine(ctx, ocr.DocumentAIConfig{
		ProjectID:   "my-project",
		Location:    "us",
		ProcessorID: "my-ocr-processor",
	})
	if err != nil {
		log.Fatalf("Failed to create transcription engine: %v", err)
	}
	defer engine.Close()

	image, err := os.ReadFile("satbara-page1.png")
	if err != nil {
		log.Fatalf("Failed to read page image: %v", err)
	}

	text, err := engine.Transcribe(ctx, image)
	if err != nil {
		log.Fatalf("Failed to transcribe page: %v", err)
	}

	fmt.Println(text)
}
