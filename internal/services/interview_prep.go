package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	"alfredoptarigan/smart-talent/internal/models"
)

type InterviewPrepService interface {
	GenerateTechnical(ctx context.Context, jobDescription, resumeText string) (*models.InterviewQuestionSet, error)
	GenerateHR(ctx context.Context, yearsOfExperience int) (*models.InterviewQuestionSet, error)
}

type interviewPrepService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	sink          QuestionSink
}

// NewInterviewPrepService builds the preparation flow. sink may be nil.
func NewInterviewPrepService(geminiService GeminiService, sink QuestionSink) InterviewPrepService {
	return &interviewPrepService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		sink:          sink,
	}
}

func (s *interviewPrepService) GenerateTechnical(ctx context.Context, jobDescription, resumeText string) (*models.InterviewQuestionSet, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &ValidationError{Field: "JobDescription", Message: "is required"}
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrPDFExtraction
	}

	prompt := s.promptBuilder.BuildTechnicalQuestionsPrompt(jobDescription, resumeText)
	return s.generate(ctx, prompt, models.QuestionKindTechnical, jobDescription)
}

func (s *interviewPrepService) GenerateHR(ctx context.Context, yearsOfExperience int) (*models.InterviewQuestionSet, error) {
	if yearsOfExperience < 0 || yearsOfExperience > 50 {
		return nil, &ValidationError{Field: "Experience", Message: "must be between 0 and 50"}
	}

	prompt := s.promptBuilder.BuildHRQuestionsPrompt(yearsOfExperience)
	return s.generate(ctx, prompt, models.QuestionKindHR, strconv.Itoa(yearsOfExperience)+" years of experience")
}

func (s *interviewPrepService) generate(ctx context.Context, prompt string, kind models.QuestionKind, subject string) (*models.InterviewQuestionSet, error) {
	log.Printf("🤖 Generating %s interview questions...", kind)

	response, err := s.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	mapping, err := ExtractJSON(response)
	if err != nil {
		log.Printf("❌ Failed to parse %s questions: %v", kind, err)
		return nil, err
	}

	set := &models.InterviewQuestionSet{
		Kind:      kind,
		Context:   subject,
		Questions: parseQuestions(mapping["questions"]),
	}
	log.Printf("✅ Generated %d %s questions", len(set.Questions), kind)

	if s.sink != nil && len(set.Questions) > 0 {
		s.sink.Enqueue(set)
	}

	return set, nil
}

func parseQuestions(value any) []models.InterviewQuestion {
	items, ok := value.([]any)
	if !ok {
		return []models.InterviewQuestion{}
	}

	questions := make([]models.InterviewQuestion, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		questions = append(questions, models.InterviewQuestion{
			Question:    stringOr(entry["question"], ""),
			IdealAnswer: stringOr(entry["ideal_answer"], ""),
		})
	}
	return questions
}
