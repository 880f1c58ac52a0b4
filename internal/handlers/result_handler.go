package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/smart-talent/internal/repositories"
)

type ResultHandler struct {
	evalRepo repositories.EvaluationRepository
}

// NewResultHandler serves stored ATS evaluations. evalRepo is nil when the
// database is disabled.
func NewResultHandler(evalRepo repositories.EvaluationRepository) *ResultHandler {
	return &ResultHandler{
		evalRepo: evalRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	if h.evalRepo == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Evaluation history is disabled")
	}

	evalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid evaluation ID format",
		})
	}

	evaluation, err := h.evalRepo.FindByID(evalID)
	if err != nil {
		return respondError(c, err, "", nil)
	}

	return c.JSON(evaluation)
}

func (h *ResultHandler) HandleListRecent(c *fiber.Ctx) error {
	if h.evalRepo == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Evaluation history is disabled")
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	evaluations, err := h.evalRepo.FindRecent(limit)
	if err != nil {
		return respondError(c, err, "", nil)
	}

	return c.JSON(fiber.Map{
		"evaluations": evaluations,
	})
}
