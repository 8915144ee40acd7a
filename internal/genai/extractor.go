// Package genai implements the structured-extraction adapter: it asks a
// generative model to read a raw 7/12 transcript and return the eight
// extraction fields as JSON. Model errors and malformed responses are
// always non-fatal for the pipeline, which degrades to pattern extraction.
package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/didaco97/SIH2025-sub000/internal/logger"
	"github.com/didaco97/SIH2025-sub000/pkg/models"
)

// Extractor turns a raw transcript into a candidate structured record.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (models.StructuredRecord, error)
}

// Config configures the generative extraction client.
type Config struct {
	APIKey  string
	BaseURL string // OpenAI-compatible endpoint; defaults to Gemini's
	Model   string
}

// GeminiExtractor implements Extractor against Gemini's OpenAI-compatible
// chat endpoint.
type GeminiExtractor struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

// NewGeminiExtractor creates an extractor from explicit configuration.
func NewGeminiExtractor(cfg Config) (*GeminiExtractor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("genai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &GeminiExtractor{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		log:    logger.WithComponent("genai-extractor"),
	}, nil
}

// Extract sends the transcript with the fixed field-extraction prompt and
// parses the response into a complete structured record.
func (g *GeminiExtractor) Extract(ctx context.Context, transcript string) (models.StructuredRecord, error) {
	const op = "Extract"

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.1,
		MaxTokens:   1024,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(transcript),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("genai: %s: model request failed: %w", op, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("genai: %s: no response choices", op)
	}

	content := resp.Choices[0].Message.Content
	g.log.Debug().Str("response", content).Msg("Received model response")

	record, err := parseRecord(content)
	if err != nil {
		return nil, fmt.Errorf("genai: %s: %w", op, err)
	}

	return record, nil
}

// buildPrompt returns the fixed instruction template naming exactly the
// eight fields with 7/12 document context, followed by the transcript.
func buildPrompt(transcript string) string {
	var b strings.Builder
	b.WriteString(`Extract the following fields from this Marathi 7/12 land record document text into a pure JSON object.
Analyze the text carefully. It is a 7/12 extract from Maharashtra, India.

Fields to extract:
- surveyNumber (Format: "123" or "123/1A")
- ownerName (List all names found under "Khatedar", separated by commas)
- village (Village Name / Gaav)
- taluka (Taluka Name)
- district (District Name / Jilha)
- area (Total Area in Hectare or R, e.g., "1.35 Ha")
- cultivableArea (Pot Kharab or Cultivable, if mentioned)
- coordinates (Any latitude/longitude found in text, else "Not Found")

If a field is not found, return it as "Not Found".
Do not include markdown code blocks. Just the raw JSON string.

Document Text:
`)
	b.WriteString(transcript)
	return b.String()
}

// candidateRecord mirrors the eight fields of the closed field set. Any
// extra keys the model hallucinates are dropped by the decoder.
type candidateRecord struct {
	SurveyNumber   string `json:"surveyNumber"`
	OwnerName      string `json:"ownerName"`
	Village        string `json:"village"`
	Taluka         string `json:"taluka"`
	District       string `json:"district"`
	Area           string `json:"area"`
	CultivableArea string `json:"cultivableArea"`
	Coordinates    string `json:"coordinates"`
}

// parseRecord strips any fenced-code delimiters from the model response and
// parses it into a complete structured record. Blank fields become the
// sentinel; unknown keys never survive.
func parseRecord(content string) (models.StructuredRecord, error) {
	jsonStr := strings.ReplaceAll(content, "```json", "")
	jsonStr = strings.ReplaceAll(jsonStr, "```", "")
	jsonStr = strings.TrimSpace(jsonStr)

	var candidate candidateRecord
	if err := json.Unmarshal([]byte(jsonStr), &candidate); err != nil {
		return nil, fmt.Errorf("failed to parse model response as JSON: %w", err)
	}

	record := models.NewStructuredRecord()
	record.Set(models.FieldSurveyNumber, candidate.SurveyNumber)
	record.Set(models.FieldOwnerName, candidate.OwnerName)
	record.Set(models.FieldVillage, candidate.Village)
	record.Set(models.FieldTaluka, candidate.Taluka)
	record.Set(models.FieldDistrict, candidate.District)
	record.Set(models.FieldArea, candidate.Area)
	record.Set(models.FieldCultivableArea, candidate.CultivableArea)
	record.Set(models.FieldCoordinates, candidate.Coordinates)
	return record, nil
}
