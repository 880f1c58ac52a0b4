package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/smart-talent/internal/models"
)

func TestQuestionBank_Index(t *testing.T) {
	gemini := &fakeGemini{embedding: []float32{0.1, 0.2}}
	qdrant := &fakeQdrant{}
	bank := NewQuestionBankService(gemini, qdrant)

	err := bank.Index(context.Background(), QuestionEntry{Question: "What is a mutex?", Kind: models.QuestionKindTechnical})

	require.NoError(t, err)
	assert.Equal(t, []string{"What is a mutex?"}, gemini.embedded)
	require.Len(t, qdrant.upserted(), 1)
}

func TestQuestionBank_IndexSkipsBlankQuestions(t *testing.T) {
	gemini := &fakeGemini{}
	qdrant := &fakeQdrant{}
	bank := NewQuestionBankService(gemini, qdrant)

	require.NoError(t, bank.Index(context.Background(), QuestionEntry{Question: " "}))

	assert.Empty(t, gemini.embedded)
	assert.Empty(t, qdrant.upserted())
}

func TestQuestionBank_Search(t *testing.T) {
	gemini := &fakeGemini{embedding: []float32{0.3}}
	qdrant := &fakeQdrant{results: []models.QuestionSearchResult{{Question: "What is a mutex?", Score: 0.9}}}
	bank := NewQuestionBankService(gemini, qdrant)

	results, err := bank.Search(context.Background(), "locking", models.QuestionKindTechnical, 0)

	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, models.QuestionKindTechnical, qdrant.lastKind)
	assert.Equal(t, 5, qdrant.lastSize)
}

func TestQuestionBank_SearchValidation(t *testing.T) {
	bank := NewQuestionBankService(&fakeGemini{}, &fakeQdrant{})

	_, err := bank.Search(context.Background(), "", "", 5)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = bank.Search(context.Background(), "locking", "trivia", 5)
	assert.ErrorAs(t, err, &validationErr)
}

func TestQuestionPointID_IsStable(t *testing.T) {
	a := QuestionPointID(models.QuestionKindHR, "Tell me about yourself.")
	b := QuestionPointID(models.QuestionKindHR, "Tell me about yourself.")
	c := QuestionPointID(models.QuestionKindMock, "Tell me about yourself.")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
