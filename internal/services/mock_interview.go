package services

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/smart-talent/internal/models"
)

const (
	fallbackQuestion    = "Tell me about your strengths."
	fallbackIdealAnswer = "I am adaptable, a problem solver, and a team player."

	defaultDuration = "5 min"
	customDuration  = "Custom"

	// ClosingSpeech is read aloud on the summary page.
	ClosingSpeech = "The interview is now complete. Here are your final insights. Thank you for practicing!"
)

// ClosingRemarks are shown under the summary. They are fixed text, not
// generated from the answers.
var ClosingRemarks = []string{
	"Key Strengths: Based on your responses, you showed strong problem-solving skills and adaptability.",
	"Areas for Improvement: Consider providing more structured answers with examples.",
}

// DurationOptions are the durations offered on the setup form.
var DurationOptions = []string{"5 min", "10 min", "15 min", "20 min", customDuration}

// Phase is the step inside an in-progress interview.
type Phase string

const (
	PhaseAwaitingQuestion Phase = "awaiting_question"
	PhaseAwaitingAnswer   Phase = "awaiting_answer"
)

type MockInterviewService interface {
	Start(setup models.MockSetupRequest) (*models.MockInterviewSession, error)
	EnsureQuestion(ctx context.Context, session *models.MockInterviewSession) models.InterviewQuestion
	SubmitAnswer(ctx context.Context, session *models.MockInterviewSession, answer string) (*models.MockResponse, error)
	Restart(session *models.MockInterviewSession)
}

type mockInterviewService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	sink          QuestionSink
}

// NewMockInterviewService builds the mock interview state machine. sink may be nil.
func NewMockInterviewService(geminiService GeminiService, sink QuestionSink) MockInterviewService {
	return &mockInterviewService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		sink:          sink,
	}
}

// CurrentPhase reports where an in-progress session is. It is empty outside
// the in-progress state.
func CurrentPhase(session *models.MockInterviewSession) Phase {
	if session.State != models.StateInProgress {
		return ""
	}
	if session.CurrentQuestion == nil {
		return PhaseAwaitingQuestion
	}
	return PhaseAwaitingAnswer
}

// QuestionCount maps the duration choice to a number of questions, one per
// minute. "Custom" takes customMinutes, which must be within 1 to 60.
func QuestionCount(duration string, customMinutes int) (int, error) {
	duration = strings.TrimSpace(duration)
	if duration == "" {
		duration = defaultDuration
	}

	if strings.EqualFold(duration, customDuration) {
		if customMinutes < 1 || customMinutes > 60 {
			return 0, &ValidationError{Field: "CustomDuration", Message: "must be between 1 and 60 minutes"}
		}
		return customMinutes, nil
	}

	fields := strings.Fields(duration)
	minutes, err := strconv.Atoi(fields[0])
	if err != nil || minutes < 1 {
		return 0, &ValidationError{Field: "Duration", Message: "must look like \"10 min\""}
	}
	return minutes, nil
}

func (s *mockInterviewService) Start(setup models.MockSetupRequest) (*models.MockInterviewSession, error) {
	setup.JobRole = strings.TrimSpace(setup.JobRole)
	setup.JobDescription = strings.TrimSpace(setup.JobDescription)
	setup.CompanyName = strings.TrimSpace(setup.CompanyName)

	if err := ValidateRequest(setup); err != nil {
		return nil, err
	}

	total, err := QuestionCount(setup.Duration, setup.CustomDuration)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &models.MockInterviewSession{
		ID:             uuid.New(),
		State:          models.StateInProgress,
		JobRole:        setup.JobRole,
		CompanyName:    setup.CompanyName,
		JobDescription: setup.JobDescription,
		TotalQuestions: total,
		Responses:      []models.MockResponse{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	log.Printf("🎤 Mock interview %s started: %s at %s, %d questions", session.ID, session.JobRole, session.CompanyName, total)
	return session, nil
}

// EnsureQuestion returns the cached question, generating one first if
// needed. Any failure to get a usable question falls back to a canned one so
// the interview never stalls.
func (s *mockInterviewService) EnsureQuestion(ctx context.Context, session *models.MockInterviewSession) models.InterviewQuestion {
	if session.CurrentQuestion != nil {
		question := models.InterviewQuestion{Question: *session.CurrentQuestion}
		if session.IdealAnswer != nil {
			question.IdealAnswer = *session.IdealAnswer
		}
		return question
	}

	question := s.generateQuestion(ctx, session)
	session.CurrentQuestion = &question.Question
	session.IdealAnswer = &question.IdealAnswer
	return question
}

func (s *mockInterviewService) generateQuestion(ctx context.Context, session *models.MockInterviewSession) models.InterviewQuestion {
	fallback := models.InterviewQuestion{Question: fallbackQuestion, IdealAnswer: fallbackIdealAnswer}

	prompt := s.promptBuilder.BuildMockQuestionPrompt(session.JobRole, session.CompanyName)
	response, err := s.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("⚠️  Mock question generation failed, using fallback: %v", err)
		return fallback
	}

	mapping, err := ExtractJSON(response)
	if err != nil {
		log.Printf("⚠️  Mock question was not valid JSON, using fallback: %v", err)
		return fallback
	}

	question := stringOr(mapping["question"], "")
	if strings.TrimSpace(question) == "" {
		log.Println("⚠️  Mock question response had no question, using fallback")
		return fallback
	}

	generated := models.InterviewQuestion{
		Question:    question,
		IdealAnswer: stringOr(mapping["ideal_answer"], ""),
	}

	if s.sink != nil {
		s.sink.Enqueue(&models.InterviewQuestionSet{
			Kind:      models.QuestionKindMock,
			Context:   session.JobRole + " at " + session.CompanyName,
			Questions: []models.InterviewQuestion{generated},
		})
	}

	return generated
}

// SubmitAnswer asks for feedback on the answer, logs the exchange and moves
// to the next question. The session is left untouched on any error.
func (s *mockInterviewService) SubmitAnswer(ctx context.Context, session *models.MockInterviewSession, answer string) (*models.MockResponse, error) {
	switch session.State {
	case models.StateSummary:
		return nil, ErrInterviewFinished
	case models.StateInProgress:
	default:
		return nil, ErrInterviewNotStarted
	}

	if strings.TrimSpace(answer) == "" {
		return nil, &ValidationError{Field: "Answer", Message: "Please provide an answer."}
	}
	if session.CurrentQuestion == nil {
		return nil, &ValidationError{Field: "Question", Message: "no question has been asked yet"}
	}

	question := *session.CurrentQuestion
	prompt := s.promptBuilder.BuildMockFeedbackPrompt(question, answer)

	feedback, err := s.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("❌ Mock feedback failed: %v", err)
		return nil, err
	}

	response := models.MockResponse{
		SessionID:  session.ID,
		Position:   session.CurrentQuestionIndex,
		Question:   question,
		UserAnswer: answer,
		Feedback:   strings.TrimSpace(feedback),
	}
	session.Responses = append(session.Responses, response)
	session.CurrentQuestionIndex++
	session.CurrentQuestion = nil
	session.IdealAnswer = nil

	if session.CurrentQuestionIndex >= session.TotalQuestions {
		session.State = models.StateSummary
		log.Printf("🎯 Mock interview %s finished after %d questions", session.ID, session.CurrentQuestionIndex)
	}

	return &response, nil
}

// Restart clears everything and returns the session to setup.
func (s *mockInterviewService) Restart(session *models.MockInterviewSession) {
	session.State = models.StateSetup
	session.JobRole = ""
	session.CompanyName = ""
	session.JobDescription = ""
	session.TotalQuestions = 0
	session.CurrentQuestionIndex = 0
	session.CurrentQuestion = nil
	session.IdealAnswer = nil
	session.Responses = []models.MockResponse{}
}
