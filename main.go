package main

import (
	stdlog "log"

	"github.com/joho/godotenv"

	"github.com/didaco97/SIH2025-sub000/cmd"
	"github.com/didaco97/SIH2025-sub000/internal/config"
	"github.com/didaco97/SIH2025-sub000/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		stdlog.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load configuration; fall back to default logging when it is invalid
	// so the command layer can report the configuration error itself.
	cfg, err := config.Load()
	if err != nil {
		stdlog.Printf("Warning: Could not load configuration: %v", err)
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			stdlog.Fatalf("Failed to initialize logger: %v", err)
		}
	} else {
		if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
			stdlog.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	cmd.Execute()
}
