package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/didaco97/SIH2025-sub000/internal/logger"
	"github.com/didaco97/SIH2025-sub000/pkg/models"
)

var extractCmd = &cobra.Command{
	Use:   "extract [image-file...]",
	Short: "Extract 7/12 record fields from scanned document images",
	Long: `Transcribe one or more scanned 7/12 document page images and extract the
structured field record. Multiple files are treated as the ordered pages of
a single document.

The raw transcript, the structured record (generative model result when
available, bilingual pattern fallback otherwise) and any non-fatal
extraction warning are printed as JSON.

Required environment variables:
  GOOGLE_APPLICATION_CREDENTIALS - Path to service account JSON file, OR
  GOOGLE_CREDENTIALS - Inline JSON credentials string

Optional:
  GEMINI_API_KEY - enables generative structured extraction`,
	Example: `  # Extract fields from a scanned page
  satbara extract satbara-page1.png

  # Multi-page document, pages in order
  satbara extract page1.png page2.png -o outcome.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().Bool("text", false, "Print the raw transcript only")
	extractCmd.Flags().Int("timeout", 300, "Processing timeout in seconds")
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract")

	outputPath, _ := cmd.Flags().GetString("output")
	textOnly, _ := cmd.Flags().GetBool("text")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	pages, err := loadPages(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := createContextWithTimeout(timeoutSecs, log)
	defer cancel()

	pipe, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	log.Info().
		Int("pages", len(pages)).
		Str("engine", cfg.OCREngine).
		Bool("structured_extraction", cfg.StructuredExtractionEnabled()).
		Msg("Starting document extraction")

	outcome, err := pipe.Run(ctx, pages)
	if err != nil {
		log.Error().Err(err).Msg("Document extraction failed")
		return err
	}

	if outcome.Warning != "" {
		log.Warn().Str("warning", outcome.Warning).Msg("Extraction completed with warning")
	}

	var output []byte
	if textOnly {
		output = []byte(outcome.RawText)
	} else {
		output, err = json.MarshalIndent(outcome, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal outcome: %w", err)
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, output, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Info().Str("output_file", outputPath).Msg("Outcome written")
		return nil
	}

	fmt.Println(string(output))
	return nil
}

// loadPages reads the page image files in argument order. PDFs are the
// rasterizer collaborator's job; only already-rasterized images are
// accepted here.
func loadPages(paths []string) ([]models.RasterPage, error) {
	pages := make([]models.RasterPage, 0, len(paths))
	for i, path := range paths {
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil, fmt.Errorf("%s: PDF input is not supported; rasterize pages to images first", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("image file is empty: %s", path)
		}
		pages = append(pages, models.RasterPage{Number: i + 1, Image: data})
	}
	return pages, nil
}
