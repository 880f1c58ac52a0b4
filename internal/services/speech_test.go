package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeechService_SpeakStoresAndExpiresAudio(t *testing.T) {
	gemini := &fakeGemini{speech: &SpeechAudio{Data: make([]byte, 2400), MIMEType: "audio/L16;rate=24000"}}
	storage := NewLocalStorageService(t.TempDir())
	require.NoError(t, storage.EnsureReady(context.Background()))
	svc := NewSpeechService(gemini, storage, 10*time.Millisecond)

	utterance, err := svc.Speak(context.Background(), "Tell me about your strengths.")

	require.NoError(t, err)
	assert.Equal(t, "Tell me about your strengths.", utterance.Text)
	assert.Equal(t, int64(50), utterance.DurationMS)
	require.NotEmpty(t, utterance.AudioURL)

	path, err := storage.GetFilePath(utterance.AudioURL[len("/audio/"):])
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return os.IsNotExist(err)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSpeechService_FailureKeepsText(t *testing.T) {
	gemini := &fakeGemini{speechErr: errors.New("tts unavailable")}
	svc := NewSpeechService(gemini, NewLocalStorageService(t.TempDir()), 0)

	utterance, err := svc.Speak(context.Background(), "Hello")

	assert.Error(t, err)
	require.NotNil(t, utterance)
	assert.Equal(t, "Hello", utterance.Text)
	assert.Empty(t, utterance.AudioURL)
}

func TestSpeechService_BlankTextIsSilent(t *testing.T) {
	gemini := &fakeGemini{speechErr: errors.New("should not be called")}
	svc := NewSpeechService(gemini, NewLocalStorageService(t.TempDir()), 0)

	utterance, err := svc.Speak(context.Background(), "  ")

	require.NoError(t, err)
	assert.Empty(t, utterance.AudioURL)
}

func TestSilentSpeechService(t *testing.T) {
	utterance, err := NewSilentSpeechService().Speak(context.Background(), "Hi")

	require.NoError(t, err)
	assert.Equal(t, "Hi", utterance.Text)
	assert.Zero(t, utterance.DurationMS)
}
