package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/didaco97/SIH2025-sub000/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "satbara",
	Short: "Satbara - 7/12 land-record field extraction",
	Long: `Satbara extracts structured field data from scanned Maharashtra 7/12
land-record documents and geotagged proof photos.

Documents are transcribed with a cloud OCR engine, structured with a
generative model when one is configured, and completed with bilingual
pattern extraction as a fallback. Results auto-fill crop-insurance claim
forms without overwriting manual edits.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
