package services

import (
	"context"
	"log"
	"strings"
	"time"

	"alfredoptarigan/smart-talent/internal/models"
)

type SpeechService interface {
	Speak(ctx context.Context, text string) (*models.Utterance, error)
}

type speechService struct {
	geminiService  GeminiService
	storageService StorageService
	retain         time.Duration
}

// NewSpeechService synthesizes utterances and keeps each audio file for its
// playback time plus retain, then removes it.
func NewSpeechService(geminiService GeminiService, storageService StorageService, retain time.Duration) SpeechService {
	return &speechService{
		geminiService:  geminiService,
		storageService: storageService,
		retain:         retain,
	}
}

func (s *speechService) Speak(ctx context.Context, text string) (*models.Utterance, error) {
	utterance := &models.Utterance{Text: text}
	if strings.TrimSpace(text) == "" {
		return utterance, nil
	}

	audio, err := s.geminiService.GenerateSpeech(ctx, text)
	if err != nil {
		return utterance, err
	}

	data, ext, contentType, duration := encodeSpeech(audio)
	stored, err := s.storageService.SaveFile(ctx, "speech", ext, contentType, data)
	if err != nil {
		return utterance, err
	}

	playback := StartPlayback(duration)
	go s.expire(stored.Name, playback)

	utterance.AudioURL = stored.URL
	utterance.DurationMS = duration.Milliseconds()
	return utterance, nil
}

func (s *speechService) expire(filename string, playback *Playback) {
	<-playback.Done()

	timer := time.NewTimer(s.retain)
	defer timer.Stop()
	<-timer.C

	if err := s.storageService.DeleteFile(context.Background(), filename); err != nil {
		log.Printf("⚠️  Failed to remove speech file %s: %v", filename, err)
	}
}

type silentSpeechService struct{}

// NewSilentSpeechService returns utterances without audio.
func NewSilentSpeechService() SpeechService {
	return silentSpeechService{}
}

func (silentSpeechService) Speak(ctx context.Context, text string) (*models.Utterance, error) {
	return &models.Utterance{Text: text}, nil
}
