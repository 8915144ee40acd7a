package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/didaco97/SIH2025-sub000/internal/logger"
	"github.com/didaco97/SIH2025-sub000/internal/pipeline"
)

var coordsCmd = &cobra.Command{
	Use:   "coords [photo-file...]",
	Short: "Extract farm coordinates from geotagged proof photos",
	Long: `Scan one or more geotagged proof photos for a latitude/longitude pair.

Each photo is transcribed and searched in turn; GPS camera overlays in
several common layouts are recognized. The first validated pair wins.
A photo that fails to transcribe is skipped, and if no photo yields a
valid pair the command exits with an explicit not-found error.`,
	Example: `  # Extract coordinates from proof photos
  satbara coords proof1.jpg proof2.jpg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCoords,
}

func init() {
	rootCmd.AddCommand(coordsCmd)

	coordsCmd.Flags().Int("timeout", 120, "Processing timeout in seconds")
}

func runCoords(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("coords")

	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	images := make([][]byte, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read photo %s: %w", path, err)
		}
		images = append(images, data)
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

	log.Info().Int("photos", len(images)).Msg("Starting coordinate extraction")

	coords, err := pipe.LocateCoordinates(ctx, images)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoCoordinates) {
			return fmt.Errorf("no coordinates found in %d photo(s)", len(images))
		}
		return err
	}

	fmt.Println(coords.String())
	return nil
}
