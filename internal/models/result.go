package models

import "mime/multipart"

// ATSRequest is the ATS evaluation form.
type ATSRequest struct {
	JobDescription string                `form:"job_description" validate:"required"`
	Resume         *multipart.FileHeader `form:"-" validate:"required"`
}

// TechnicalQuestionsRequest is the technical interview preparation form.
// ResumeText comes from the uploaded PDF, or from the previous page when
// asking for more questions.
type TechnicalQuestionsRequest struct {
	JobDescription string `form:"job_description" validate:"required"`
	ResumeText     string `form:"resume_text" validate:"required"`
}

// HRQuestionsRequest is the HR interview preparation form.
type HRQuestionsRequest struct {
	Experience *int `form:"experience" validate:"required,min=0,max=50"`
}

// MockSetupRequest is the mock interview setup form.
type MockSetupRequest struct {
	JobRole        string `form:"job_role" json:"job_role" validate:"required"`
	JobDescription string `form:"job_description" json:"job_description" validate:"required"`
	CompanyName    string `form:"company_name" json:"company_name" validate:"required"`
	Duration       string `form:"duration" json:"duration"`
	CustomDuration int    `form:"custom_duration" json:"custom_duration"`
}

// MockAnswerRequest carries the typed answer to the current question.
type MockAnswerRequest struct {
	Answer string `form:"answer" json:"answer"`
}

// Utterance is a spoken line the page plays alongside the avatar.
type Utterance struct {
	Text       string `json:"text"`
	AudioURL   string `json:"audio_url,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

type ErrorResponse struct {
	Error       string `json:"error"`
	Code        int    `json:"code"`
	RawResponse string `json:"raw_response,omitempty"`
}

type QuestionsResponse struct {
	Kind      QuestionKind        `json:"kind"`
	Questions []InterviewQuestion `json:"questions"`
}

// MockInterviewResponse is the JSON view of the mock interview. After an
// answer it carries the feedback and, until the summary, the next question.
type MockInterviewResponse struct {
	Session      *MockInterviewSession `json:"session"`
	Feedback     *MockResponse         `json:"feedback,omitempty"`
	NextQuestion *InterviewQuestion    `json:"next_question,omitempty"`
	Speech       []Utterance           `json:"speech,omitempty"`
	Closing      []string              `json:"closing,omitempty"`
}

type QuestionSearchResult struct {
	Question    string       `json:"question"`
	IdealAnswer string       `json:"ideal_answer,omitempty"`
	Kind        QuestionKind `json:"kind"`
	Score       float32      `json:"score"`
}
