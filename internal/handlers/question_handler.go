package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-talent/internal/models"
	"alfredoptarigan/smart-talent/internal/services"
)

type QuestionHandler struct {
	questionBank services.QuestionBankService
}

// NewQuestionHandler serves the question bank. questionBank is nil when
// Qdrant is disabled.
func NewQuestionHandler(questionBank services.QuestionBankService) *QuestionHandler {
	return &QuestionHandler{
		questionBank: questionBank,
	}
}

// HandleSearch handles GET /api/v1/questions/search?q=&kind=&limit=
func (h *QuestionHandler) HandleSearch(c *fiber.Ctx) error {
	if h.questionBank == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Question bank is disabled")
	}

	results, err := h.questionBank.Search(
		c.UserContext(),
		c.Query("q"),
		models.QuestionKind(c.Query("kind")),
		c.QueryInt("limit", 0),
	)
	if err != nil {
		return respondError(c, err, "", nil)
	}

	return c.JSON(fiber.Map{
		"results": results,
	})
}
