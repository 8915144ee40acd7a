package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/didaco97/SIH2025-sub000/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OCR_ENGINE", "")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.EngineVision, cfg.OCREngine)
}

func TestLoadConfigLogsAndReturnsValidationError(t *testing.T) {
	t.Setenv("OCR_ENGINE", "tesseract")

	cfg, err := loadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "OCR_ENGINE")
}
