// Package server exposes the extraction pipeline over HTTP: a submission
// endpoint that turns one encoded document image into an extraction
// outcome, and a coordinate endpoint that scans proof-photo batches.
package server

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/didaco97/SIH2025-sub000/internal/logger"
	"github.com/didaco97/SIH2025-sub000/internal/ocr"
	"github.com/didaco97/SIH2025-sub000/internal/pipeline"
	"github.com/didaco97/SIH2025-sub000/pkg/models"
)

// Extractor is the pipeline surface the handlers depend on.
type Extractor interface {
	RunImage(ctx context.Context, image []byte) (*models.ExtractionOutcome, error)
	LocateCoordinates(ctx context.Context, images [][]byte) (models.Coordinates, error)
}

// Server wires the extraction pipeline into a gin router.
type Server struct {
	pipe Extractor
	log  zerolog.Logger
}

// New creates a server around an extraction pipeline.
func New(pipe Extractor) *Server {
	return &Server{
		pipe: pipe,
		log:  logger.WithComponent("server"),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/ocr", s.handleExtract)
	api.POST("/coordinates", s.handleCoordinates)

	return r
}

type extractRequest struct {
	Image string `json:"image"`
}

type coordinatesRequest struct {
	Images []string `json:"images"`
}

// handleExtract runs the document pipeline over one submitted image and
// returns {rawText, structuredRecord, extractionWarning}. Raw text is
// always present on success even when both extraction strategies failed.
func (s *Server) handleExtract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image data is required"})
		return
	}

	image, err := decodeImage(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image data is not valid base64"})
		return
	}

	outcome, err := s.pipe.RunImage(c.Request.Context(), image)
	if err != nil {
		s.log.Error().Err(err).Msg("Document extraction failed")
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// handleCoordinates scans a batch of proof photos for a validated
// coordinate pair. Not finding one is a normal result, never a pipeline
// failure.
func (s *Server) handleCoordinates(c *gin.Context) {
	var req coordinatesRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Images) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image is required"})
		return
	}

	images := make([][]byte, 0, len(req.Images))
	for _, enc := range req.Images {
		img, err := decodeImage(enc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image data is not valid base64"})
			return
		}
		images = append(images, img)
	}

	coords, err := s.pipe.LocateCoordinates(c.Request.Context(), images)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoCoordinates) {
			c.JSON(http.StatusOK, gin.H{"found": false})
			return
		}
		s.log.Error().Err(err).Msg("Coordinate extraction failed")
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":       true,
		"latitude":    coords.Latitude,
		"longitude":   coords.Longitude,
		"coordinates": coords.String(),
	})
}

// decodeImage accepts raw base64 or a data URL and returns the image bytes.
func decodeImage(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	return base64.StdEncoding.DecodeString(payload)
}

// statusFromError maps pipeline failures to HTTP statuses: configuration
// errors are server-side, engine rejections propagate their status code,
// anything else is a generic server error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, ocr.ErrMissingCredentials), errors.Is(err, ocr.ErrInvalidConfiguration):
		return http.StatusInternalServerError
	case errors.Is(err, ocr.ErrEmptyImage), errors.Is(err, ocr.ErrImageTooLarge), errors.Is(err, pipeline.ErrNoPages):
		return http.StatusBadRequest
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.InvalidArgument:
			return http.StatusBadRequest
		case codes.Unauthenticated:
			return http.StatusUnauthorized
		case codes.PermissionDenied:
			return http.StatusForbidden
		case codes.ResourceExhausted:
			return http.StatusTooManyRequests
		case codes.Unavailable, codes.DeadlineExceeded:
			return http.StatusServiceUnavailable
		}
	}

	return http.StatusInternalServerError
}
