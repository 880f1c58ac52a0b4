package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/smart-talent/internal/config"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audio")
	storage := NewLocalStorageService(dir)
	ctx := context.Background()

	require.NoError(t, storage.EnsureReady(ctx))

	stored, err := storage.SaveFile(ctx, "speech", ".wav", "audio/wav", []byte("RIFF"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Name, "speech_"))
	assert.True(t, strings.HasSuffix(stored.Name, ".wav"))
	assert.Equal(t, "/audio/"+stored.Name, stored.URL)

	path, err := storage.GetFilePath(stored.Name)
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(content))

	require.NoError(t, storage.DeleteFile(ctx, stored.Name))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, storage.DeleteFile(ctx, stored.Name))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	storage := NewLocalStorageService(t.TempDir())

	for _, name := range []string{"", "../secret", "a/b.wav", ".env"} {
		_, err := storage.GetFilePath(name)
		assert.Error(t, err, name)
	}
}

func TestNewStorageService_UnknownBackend(t *testing.T) {
	_, err := NewStorageService(context.Background(), config.StorageConfig{Backend: "ftp"})

	assert.Error(t, err)
}

func TestNewStorageService_DefaultsToLocal(t *testing.T) {
	storage, err := NewStorageService(context.Background(), config.StorageConfig{AudioPath: t.TempDir()})

	require.NoError(t, err)
	assert.IsType(t, &localStorageService{}, storage)
}
