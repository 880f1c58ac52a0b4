package models

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationResult is the typed view of an ATS response. Every field is
// optional on the wire and carries a default once presented.
type EvaluationResult struct {
	MatchPercentage            float64  `json:"match_percentage"`
	MissingKeywords            []string `json:"missing_keywords"`
	Strengths                  string   `json:"strengths"`
	AreasForImprovement        string   `json:"areas_for_improvement"`
	SuggestedSkills            []string `json:"suggested_skills"`
	FormattingRecommendations  string   `json:"formatting_recommendations"`
	ProfileSummary             string   `json:"profile_summary"`
	CertificateRecommendations []string `json:"certificate_recommendations"`
}

// Section is one rendered block of a result page.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EvaluationReport is what the ATS page renders for one submission.
type EvaluationReport struct {
	ID       uuid.UUID        `json:"id"`
	Result   EvaluationResult `json:"result"`
	Progress int              `json:"progress"`
	Sections []Section        `json:"sections"`
}

// Evaluation is the stored history record of an ATS submission.
type Evaluation struct {
	ID                         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobDescription             string    `gorm:"type:text" json:"job_description"`
	ResumeChars                int       `json:"resume_chars"`
	MatchPercentage            float64   `gorm:"type:decimal(6,2)" json:"match_percentage"`
	MissingKeywords            string    `gorm:"type:text" json:"missing_keywords"`
	Strengths                  string    `gorm:"type:text" json:"strengths"`
	AreasForImprovement        string    `gorm:"type:text" json:"areas_for_improvement"`
	SuggestedSkills            string    `gorm:"type:text" json:"suggested_skills"`
	FormattingRecommendations  string    `gorm:"type:text" json:"formatting_recommendations"`
	ProfileSummary             string    `gorm:"type:text" json:"profile_summary"`
	CertificateRecommendations string    `gorm:"type:text" json:"certificate_recommendations"`
	RawResponse                string    `gorm:"type:text" json:"-"`
	CreatedAt                  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}
