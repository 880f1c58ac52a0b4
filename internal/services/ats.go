package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/smart-talent/internal/models"
	"alfredoptarigan/smart-talent/internal/repositories"
)

type ATSService interface {
	Evaluate(ctx context.Context, resumeText, jobDescription string) (*models.EvaluationReport, error)
}

type atsService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	evalRepo      repositories.EvaluationRepository
}

// NewATSService wires the ATS evaluation flow. evalRepo may be nil, in which
// case results are not kept.
func NewATSService(geminiService GeminiService, evalRepo repositories.EvaluationRepository) ATSService {
	return &atsService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		evalRepo:      evalRepo,
	}
}

func (s *atsService) Evaluate(ctx context.Context, resumeText, jobDescription string) (*models.EvaluationReport, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrPDFExtraction
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &ValidationError{Field: "JobDescription", Message: "is required"}
	}

	prompt := s.promptBuilder.BuildATSEvaluationPrompt(resumeText, jobDescription)
	log.Printf("📝 ATS evaluation prompt length: %d characters", len(prompt))

	response, err := s.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("❌ ATS evaluation failed: %v", err)
		return nil, err
	}

	mapping, err := ExtractJSON(response)
	if err != nil {
		log.Printf("❌ Failed to parse ATS evaluation response: %v", err)
		return nil, err
	}

	result := ToEvaluationResult(mapping)
	report := &models.EvaluationReport{
		ID:       uuid.New(),
		Result:   result,
		Progress: ProgressValue(result.MatchPercentage),
		Sections: Present(mapping, ATSFields),
	}

	s.store(report, jobDescription, len(resumeText), response)

	log.Printf("✅ ATS evaluation completed: %.1f%% match", result.MatchPercentage)
	return report, nil
}

// store keeps a history record. A failed write is logged and does not fail
// the evaluation the user is waiting for.
func (s *atsService) store(report *models.EvaluationReport, jobDescription string, resumeChars int, raw string) {
	if s.evalRepo == nil {
		return
	}

	result := report.Result
	record := &models.Evaluation{
		ID:                         report.ID,
		JobDescription:             jobDescription,
		ResumeChars:                resumeChars,
		MatchPercentage:            result.MatchPercentage,
		MissingKeywords:            strings.Join(result.MissingKeywords, listDelimiter),
		Strengths:                  result.Strengths,
		AreasForImprovement:        result.AreasForImprovement,
		SuggestedSkills:            strings.Join(result.SuggestedSkills, listDelimiter),
		FormattingRecommendations:  result.FormattingRecommendations,
		ProfileSummary:             result.ProfileSummary,
		CertificateRecommendations: strings.Join(result.CertificateRecommendations, listDelimiter),
		RawResponse:                raw,
		CreatedAt:                  time.Now(),
	}

	if err := s.evalRepo.Create(record); err != nil {
		log.Printf("⚠️  Failed to store evaluation %s: %v", report.ID, err)
	}
}
