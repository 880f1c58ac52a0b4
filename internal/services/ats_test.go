package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/smart-talent/internal/models"
)

type fakeEvaluationRepo struct {
	created []*models.Evaluation
	err     error
}

func (r *fakeEvaluationRepo) Create(eval *models.Evaluation) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, eval)
	return nil
}

func (r *fakeEvaluationRepo) FindByID(id uuid.UUID) (*models.Evaluation, error) {
	return nil, errors.New("not used")
}

func (r *fakeEvaluationRepo) FindRecent(limit int) ([]models.Evaluation, error) {
	return nil, nil
}

func TestATSService_Evaluate(t *testing.T) {
	gemini := replyWith("Sure! Here you go:\n" + `{"JD Match": "70%", "MissingKeywords": ["Kafka"], "Strengths": "Go"}` + "\nGood luck.")
	repo := &fakeEvaluationRepo{}
	svc := NewATSService(gemini, repo)

	report, err := svc.Evaluate(context.Background(), "resume text", "job description")

	require.NoError(t, err)
	assert.Equal(t, 70.0, report.Result.MatchPercentage)
	assert.Equal(t, 70, report.Progress)
	assert.Equal(t, []string{"Kafka"}, report.Result.MissingKeywords)
	assert.Equal(t, 1, gemini.calls())
	assert.Contains(t, gemini.prompts[0], "Resume: resume text")

	require.Len(t, repo.created, 1)
	assert.Equal(t, report.ID, repo.created[0].ID)
	assert.Equal(t, "Kafka", repo.created[0].MissingKeywords)
}

func TestATSService_EmptyResumeSkipsModel(t *testing.T) {
	gemini := replyWith("{}")
	svc := NewATSService(gemini, nil)

	_, err := svc.Evaluate(context.Background(), "   ", "job description")

	assert.ErrorIs(t, err, ErrPDFExtraction)
	assert.Equal(t, 0, gemini.calls())
}

func TestATSService_EmptyJobDescription(t *testing.T) {
	gemini := replyWith("{}")
	svc := NewATSService(gemini, nil)

	_, err := svc.Evaluate(context.Background(), "resume", "")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, gemini.calls())
}

func TestATSService_ModelFailureIsNotRetried(t *testing.T) {
	gemini := failWith(&TransportError{Op: "generate content", Cause: errors.New("unavailable")})
	svc := NewATSService(gemini, nil)

	_, err := svc.Evaluate(context.Background(), "resume", "jd")

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 1, gemini.calls())
}

func TestATSService_NoJSONKeepsRawText(t *testing.T) {
	svc := NewATSService(replyWith("I'm sorry, I can't do that."), nil)

	_, err := svc.Evaluate(context.Background(), "resume", "jd")

	assert.ErrorIs(t, err, ErrNoJSONFound)
	assert.Equal(t, "I'm sorry, I can't do that.", RawResponse(err))
}

func TestATSService_StoreFailureDoesNotFailEvaluation(t *testing.T) {
	repo := &fakeEvaluationRepo{err: errors.New("db down")}
	svc := NewATSService(replyWith(`{"JD Match": "150%"}`), repo)

	report, err := svc.Evaluate(context.Background(), "resume", "jd")

	require.NoError(t, err)
	assert.Equal(t, 150.0, report.Result.MatchPercentage)
	assert.Equal(t, 100, report.Progress)
}
