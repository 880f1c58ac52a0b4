package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/smart-talent/internal/models"
)

func TestWorker_IndexesQueuedSets(t *testing.T) {
	qdrant := &fakeQdrant{}
	bank := NewQuestionBankService(&fakeGemini{embedding: []float32{1}}, qdrant)
	w := NewWorker(bank, 2, 10)
	w.Start(context.Background())
	defer w.Stop()

	w.Enqueue(&models.InterviewQuestionSet{
		Kind:    models.QuestionKindHR,
		Context: "3 years of experience",
		Questions: []models.InterviewQuestion{
			{Question: "Tell me about a conflict.", IdealAnswer: "..."},
			{Question: "Why this company?"},
		},
	})

	assert.Eventually(t, func() bool {
		return len(qdrant.upserted()) == 2
	}, time.Second, 10*time.Millisecond)

	entry := qdrant.upserted()[0]
	assert.Equal(t, models.QuestionKindHR, entry.Kind)
	assert.Equal(t, "3 years of experience", entry.Context)
}

func TestWorker_DropsWhenFull(t *testing.T) {
	bank := NewQuestionBankService(&fakeGemini{embedding: []float32{1}}, &fakeQdrant{})
	w := NewWorker(bank, 1, 1)

	set := &models.InterviewQuestionSet{Kind: models.QuestionKindMock, Questions: []models.InterviewQuestion{{Question: "q"}}}
	done := make(chan struct{})
	go func() {
		// not started: the second enqueue must not block
		w.Enqueue(set)
		w.Enqueue(set)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}
}

func TestWorker_EnqueueAfterStop(t *testing.T) {
	qdrant := &fakeQdrant{}
	bank := NewQuestionBankService(&fakeGemini{embedding: []float32{1}}, qdrant)
	w := NewWorker(bank, 1, 10)
	w.Start(context.Background())
	w.Stop()
	w.Stop()

	w.Enqueue(&models.InterviewQuestionSet{Kind: models.QuestionKindHR, Questions: []models.InterviewQuestion{{Question: "q"}}})

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, qdrant.upserted())
}
