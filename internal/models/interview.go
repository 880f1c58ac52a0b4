package models

import (
	"time"

	"github.com/google/uuid"
)

// InterviewQuestion is one generated question with the answer the model
// considers ideal.
type InterviewQuestion struct {
	Question    string `json:"question"`
	IdealAnswer string `json:"ideal_answer"`
}

type QuestionKind string

const (
	QuestionKindTechnical QuestionKind = "technical"
	QuestionKindHR        QuestionKind = "hr"
	QuestionKindMock      QuestionKind = "mock"
	QuestionKindReference QuestionKind = "reference"
)

// InterviewQuestionSet is regenerated wholesale on every request.
type InterviewQuestionSet struct {
	Kind      QuestionKind        `json:"kind"`
	Context   string              `json:"context"`
	Questions []InterviewQuestion `json:"questions"`
}

type InterviewState string

const (
	StateSetup      InterviewState = "setup"
	StateInProgress InterviewState = "in_progress"
	StateSummary    InterviewState = "summary"
)

// MockInterviewSession holds one user's mock interview. It is loaded by the
// caller, mutated by the state machine and saved back.
type MockInterviewSession struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	State                InterviewState `gorm:"type:text;not null;default:'setup'" json:"state"`
	JobRole              string         `gorm:"type:text" json:"job_role"`
	CompanyName          string         `gorm:"type:text" json:"company_name"`
	JobDescription       string         `gorm:"type:text" json:"job_description"`
	TotalQuestions       int            `json:"total_questions"`
	CurrentQuestionIndex int            `json:"current_question_index"`
	CurrentQuestion      *string        `gorm:"type:text" json:"current_question,omitempty"`
	IdealAnswer          *string        `gorm:"type:text" json:"ideal_answer,omitempty"`
	Responses            []MockResponse `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"responses"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func (MockInterviewSession) TableName() string {
	return "mock_interview_sessions"
}

// MockResponse is one answered question in the session log.
type MockResponse struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	SessionID  uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Position   int       `json:"position"`
	Question   string    `gorm:"type:text" json:"question"`
	UserAnswer string    `gorm:"type:text" json:"user_answer"`
	Feedback   string    `gorm:"type:text" json:"feedback"`
}

func (MockResponse) TableName() string {
	return "mock_interview_responses"
}

// Finished reports whether the session has reached its summary.
func (s *MockInterviewSession) Finished() bool {
	return s.State == StateSummary
}

// QuestionNumber is the 1-based number of the question being asked.
func (s *MockInterviewSession) QuestionNumber() int {
	return s.CurrentQuestionIndex + 1
}
