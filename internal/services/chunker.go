package services

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type TextChunker interface {
	ChunkText(text string, maxChunkSize int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText groups whole sentences into chunks of at most maxChunkSize
// runes. A single sentence longer than that becomes its own chunk.
func (tc *textChunker) ChunkText(text string, maxChunkSize int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, sentence := range splitIntoSentences(text) {
		n := utf8.RuneCountInString(sentence)
		if currentLen > 0 && currentLen+1+n > maxChunkSize {
			flush()
		}
		if currentLen > 0 {
			current.WriteString(" ")
			currentLen++
		}
		current.WriteString(sentence)
		currentLen += n
	}
	flush()

	return chunks
}

// splitIntoSentences keeps each terminator with its sentence.
func splitIntoSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	pendingSpace := false

	for _, r := range text {
		if unicode.IsSpace(r) {
			pendingSpace = current.Len() > 0
			continue
		}
		if pendingSpace {
			current.WriteRune(' ')
			pendingSpace = false
		}
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
			pendingSpace = false
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
