package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestChunkText_GroupsSentences(t *testing.T) {
	text := "What is a goroutine? Explain channels.\n\nHow does the scheduler work! Describe select."

	chunks := NewTextChunker().ChunkText(text, 45)

	assert.Equal(t, []string{
		"What is a goroutine? Explain channels.",
		"How does the scheduler work! Describe select.",
	}, chunks)
}

func TestChunkText_RespectsMaxSize(t *testing.T) {
	text := strings.Repeat("Short sentence here. ", 50)

	chunks := NewTextChunker().ChunkText(text, 100)

	assert.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 100)
	}
	assert.Equal(t, strings.TrimSpace(text), strings.Join(chunks, " "))
}

func TestChunkText_LongSentenceStandsAlone(t *testing.T) {
	long := strings.Repeat("a", 30) + "."

	chunks := NewTextChunker().ChunkText("Hi. "+long+" Bye.", 10)

	assert.Equal(t, []string{"Hi.", long, "Bye."}, chunks)
}

func TestChunkText_Empty(t *testing.T) {
	assert.Empty(t, NewTextChunker().ChunkText("  \n ", 100))
}

func TestChunkText_KeepsTrailingFragment(t *testing.T) {
	chunks := NewTextChunker().ChunkText("Complete sentence. trailing fragment", 1000)

	assert.Equal(t, []string{"Complete sentence. trailing fragment"}, chunks)
}
