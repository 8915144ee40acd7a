package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/didaco97/SIH2025-sub000/internal/config"
	"github.com/didaco97/SIH2025-sub000/internal/genai"
	"github.com/didaco97/SIH2025-sub000/internal/logger"
	"github.com/didaco97/SIH2025-sub000/internal/ocr"
	"github.com/didaco97/SIH2025-sub000/internal/pipeline"
)

// buildPipeline assembles the transcription engine and optional generative
// extractor the way the configuration asks for. A missing generative API
// key only disables structured extraction; missing OCR credentials fail
// here, before any page is processed.
func buildPipeline(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pipeline.Pipeline, error) {
	var engine ocr.TranscriptionEngine
	var err error

	switch cfg.OCREngine {
	case config.EngineDocumentAI:
		engine, err = ocr.NewDocumentAIEngine(ctx, ocr.DocumentAIConfig{
			ProjectID:   cfg.GoogleCloudProject,
			Location:    cfg.GoogleCloudLocation,
			ProcessorID: cfg.DocumentAIProcessorID,
		})
	default:
		engine, err = ocr.NewGoogleVisionEngine(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create transcription engine: %w", err)
	}

	var extractor pipeline.StructuredExtractor
	if cfg.StructuredExtractionEnabled() {
		extractor, err = genai.NewGeminiExtractor(genai.Config{
			APIKey:  cfg.GenAIAPIKey,
			BaseURL: cfg.GenAIBaseURL,
			Model:   cfg.GenAIModel,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create structured extractor: %w", err)
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, structured extraction disabled; pattern fallback only")
	}

	return pipeline.New(engine, extractor), nil
}

// createContextWithTimeout creates a context with timeout and signal handling
func createContextWithTimeout(timeoutSecs int, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSecs)*time.Second)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info().
				Str("signal", sig.String()).
				Msg("Received interrupt signal, canceling processing")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// loadConfig wraps config.Load with a component logger for command use.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		log := logger.WithComponent("cmd")
		log.Error().Err(err).Msg("Configuration invalid")
		return nil, err
	}
	return cfg, nil
}
