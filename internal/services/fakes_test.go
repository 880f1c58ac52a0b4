package services

import (
	"context"
	"sync"

	"alfredoptarigan/smart-talent/internal/models"
)

type fakeGemini struct {
	mu      sync.Mutex
	prompts []string
	reply   func(prompt string) (string, error)

	embedding []float32
	embedErr  error
	embedded  []string

	speech    *SpeechAudio
	speechErr error
}

func replyWith(text string) *fakeGemini {
	return &fakeGemini{reply: func(string) (string, error) { return text, nil }}
}

func failWith(err error) *fakeGemini {
	return &fakeGemini{reply: func(string) (string, error) { return "", err }}
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	return f.reply(prompt)
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.embedded = append(f.embedded, text)
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return f.embedding, nil
}

func (f *fakeGemini) GenerateSpeech(ctx context.Context, text string) (*SpeechAudio, error) {
	if f.speechErr != nil {
		return nil, f.speechErr
	}
	return f.speech, nil
}

func (f *fakeGemini) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type fakeSink struct {
	sets []*models.InterviewQuestionSet
}

func (s *fakeSink) Enqueue(set *models.InterviewQuestionSet) {
	s.sets = append(s.sets, set)
}

type fakeQdrant struct {
	mu       sync.Mutex
	upserts  []QuestionEntry
	deleted  []string
	results  []models.QuestionSearchResult
	lastKind models.QuestionKind
	lastSize int
}

func (q *fakeQdrant) InitCollection(ctx context.Context) error { return nil }

func (q *fakeQdrant) UpsertQuestion(ctx context.Context, entry QuestionEntry, embedding []float32) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.upserts = append(q.upserts, entry)
	return nil
}

func (q *fakeQdrant) SearchQuestions(ctx context.Context, queryEmbedding []float32, kind models.QuestionKind, limit int) ([]models.QuestionSearchResult, error) {
	q.lastKind = kind
	q.lastSize = limit
	return q.results, nil
}

func (q *fakeQdrant) DeleteSource(ctx context.Context, source string) error {
	q.deleted = append(q.deleted, source)
	return nil
}

func (q *fakeQdrant) upserted() []QuestionEntry {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]QuestionEntry(nil), q.upserts...)
}
