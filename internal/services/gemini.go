package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"google.golang.org/genai"

	"alfredoptarigan/smart-talent/internal/config"
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateSpeech(ctx context.Context, text string) (*SpeechAudio, error)
}

// SpeechAudio is raw audio returned by the TTS model.
type SpeechAudio struct {
	Data     []byte
	MIMEType string
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
	embedModel  string
	ttsModel    string
	voice       string
}

func NewGeminiService(cfg config.GeminiConfig) (GeminiService, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, config.ErrMissingCredential
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:      client,
		modelName:   cfg.Model,
		temperature: cfg.Temperature,
		embedModel:  cfg.EmbedModel,
		ttsModel:    cfg.TTSModel,
		voice:       cfg.Voice,
	}, nil
}

// GenerateText sends the prompt once. There is no retry: a failed call is
// reported to the user, who decides whether to try again.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	temperature := g.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), genConfig)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", &TransportError{Op: "generate content", Cause: err}
	}

	if resp == nil {
		log.Println("❌ Gemini API returned nil response")
		return "", ErrEmptyResponse
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		log.Println("❌ No text content in response")
		return "", ErrEmptyResponse
	}

	log.Printf("📊 Gemini response received: %d characters\n", len(text))
	return text, nil
}

func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	text = truncateUTF8(text, maxEmbedBytes)

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, &TransportError{Op: "generate embedding", Cause: err}
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

const maxEmbedBytes = 40000

// truncateUTF8 cuts text to at most limit bytes without splitting a rune.
func truncateUTF8(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit]
}

// GenerateSpeech asks the TTS model to read text aloud. The model answers
// with 16-bit mono PCM at 24kHz.
func (g *geminiService) GenerateSpeech(ctx context.Context, text string) (*SpeechAudio, error) {
	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: g.voice,
				},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.ttsModel, genai.Text(text), genConfig)
	if err != nil {
		return nil, &TransportError{Op: "generate speech", Cause: err}
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return &SpeechAudio{
				Data:     part.InlineData.Data,
				MIMEType: part.InlineData.MIMEType,
			}, nil
		}
	}

	return nil, ErrEmptyResponse
}
