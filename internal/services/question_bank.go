package services

import (
	"context"
	"fmt"
	"strings"

	"alfredoptarigan/smart-talent/internal/models"
)

const defaultSearchLimit = 5

// QuestionBankService embeds questions and keeps them searchable.
type QuestionBankService interface {
	Index(ctx context.Context, entry QuestionEntry) error
	Search(ctx context.Context, query string, kind models.QuestionKind, limit int) ([]models.QuestionSearchResult, error)
}

type questionBankService struct {
	geminiService GeminiService
	qdrantService QdrantService
}

func NewQuestionBankService(geminiService GeminiService, qdrantService QdrantService) QuestionBankService {
	return &questionBankService{
		geminiService: geminiService,
		qdrantService: qdrantService,
	}
}

func (s *questionBankService) Index(ctx context.Context, entry QuestionEntry) error {
	if strings.TrimSpace(entry.Question) == "" {
		return nil
	}

	embedding, err := s.geminiService.GenerateEmbedding(ctx, entry.Question)
	if err != nil {
		return fmt.Errorf("failed to embed question: %w", err)
	}

	return s.qdrantService.UpsertQuestion(ctx, entry, embedding)
}

func (s *questionBankService) Search(ctx context.Context, query string, kind models.QuestionKind, limit int) ([]models.QuestionSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &ValidationError{Field: "q", Message: "search query is required"}
	}
	switch kind {
	case "", models.QuestionKindTechnical, models.QuestionKindHR, models.QuestionKindMock, models.QuestionKindReference:
	default:
		return nil, &ValidationError{Field: "kind", Message: "unknown question kind"}
	}
	if limit <= 0 || limit > 50 {
		limit = defaultSearchLimit
	}

	embedding, err := s.geminiService.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}

	return s.qdrantService.SearchQuestions(ctx, embedding, kind, limit)
}
