package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/didaco97/SIH2025-sub000/internal/logger"
)

// Supported OCR engine names for the OCR_ENGINE variable.
const (
	EngineVision     = "vision"
	EngineDocumentAI = "documentai"
)

type Config struct {
	// OCR Engine Configuration
	OCREngine string // "vision" (default) or "documentai"

	// Google Cloud Configuration (shared by both engines)
	GoogleCloudProject  string
	GoogleCloudLocation string

	// Document AI Configuration (documentai engine only)
	DocumentAIProcessorID string

	// Generative Extraction Configuration
	GenAIAPIKey  string
	GenAIBaseURL string
	GenAIModel   string

	// HTTP Server Configuration
	ServerAddr string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads configuration from the environment. Google Cloud credentials
// themselves stay in GOOGLE_CREDENTIALS / GOOGLE_APPLICATION_CREDENTIALS and
// are consumed by the engine clients directly; a missing generative API key
// is not an error because the pipeline degrades to pattern extraction.
func Load() (*Config, error) {
	config := &Config{
		OCREngine:             strings.ToLower(getEnv("OCR_ENGINE", EngineVision)),
		GoogleCloudProject:    getEnv("GOOGLE_CLOUD_PROJECT", ""),
		GoogleCloudLocation:   getEnv("GOOGLE_CLOUD_LOCATION", "us"),
		DocumentAIProcessorID: getEnv("DOCUMENT_AI_PROCESSOR_ID", ""),
		GenAIAPIKey:           getEnv("GEMINI_API_KEY", ""),
		GenAIBaseURL:          getEnv("GENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		GenAIModel:            getEnv("GENAI_MODEL", "gemini-2.0-flash"),
		ServerAddr:            getEnv("SERVER_ADDR", ":8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:         getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:             getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.OCREngine {
	case EngineVision:
	case EngineDocumentAI:
		if c.GoogleCloudProject == "" {
			return fmt.Errorf("GOOGLE_CLOUD_PROJECT is required when OCR_ENGINE=documentai")
		}
		if c.DocumentAIProcessorID == "" {
			return fmt.Errorf("DOCUMENT_AI_PROCESSOR_ID is required when OCR_ENGINE=documentai")
		}
	default:
		return fmt.Errorf("unknown OCR_ENGINE %q (expected %q or %q)", c.OCREngine, EngineVision, EngineDocumentAI)
	}
	return nil
}

// StructuredExtractionEnabled reports whether a generative API key is
// configured.
func (c *Config) StructuredExtractionEnabled() bool {
	return c.GenAIAPIKey != ""
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
