package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-talent/internal/models"
	"alfredoptarigan/smart-talent/internal/services"
)

const takeNotes = "Take notes for better understanding!"

var (
	errMissingTechnicalInput = &services.ValidationError{Message: "Please provide both Job Description and Resume."}
	errMissingExperience     = &services.ValidationError{Field: "experience", Message: "Please enter your experience level."}
)

type InterviewHandler struct {
	prepService services.InterviewPrepService
	pdfParser   services.PDFParserService
	maxFileSize int64
}

func NewInterviewHandler(
	prepService services.InterviewPrepService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *InterviewHandler {
	return &InterviewHandler{
		prepService: prepService,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
	}
}

func pageDataFor(kind models.QuestionKind) fiber.Map {
	return fiber.Map{
		"Title":  "AI-Powered Interview Preparation",
		"Active": "interview",
		"Kind":   string(kind),
	}
}

// HandlePage handles GET /interview
func (h *InterviewHandler) HandlePage(c *fiber.Ctx) error {
	kind := models.QuestionKindTechnical
	if c.Query("type") == string(models.QuestionKindHR) {
		kind = models.QuestionKindHR
	}

	return respond(c, fiber.StatusOK, "interview", pageDataFor(kind), fiber.Map{
		"kinds": []models.QuestionKind{models.QuestionKindTechnical, models.QuestionKindHR},
	})
}

// HandleTechnical handles POST /interview/technical. Every call regenerates
// the whole set, which is how "More Questions" works.
func (h *InterviewHandler) HandleTechnical(c *fiber.Ctx) error {
	data := pageDataFor(models.QuestionKindTechnical)

	req := models.TechnicalQuestionsRequest{
		JobDescription: strings.TrimSpace(c.FormValue("job_description")),
		ResumeText:     strings.TrimSpace(c.FormValue("resume_text")),
	}
	data["JobDescription"] = req.JobDescription

	file, err := resumeUpload(c, h.maxFileSize)
	if err != nil {
		return respondError(c, err, "interview", data)
	}
	if file != nil {
		text, err := h.pdfParser.ExtractUploadedText(file)
		if err != nil {
			return respondError(c, err, "interview", data)
		}
		req.ResumeText = text
	}

	if err := services.ValidateRequest(req); err != nil {
		return respondError(c, errMissingTechnicalInput, "interview", data)
	}
	data["ResumeText"] = req.ResumeText

	set, err := h.prepService.GenerateTechnical(c.UserContext(), req.JobDescription, req.ResumeText)
	if err != nil {
		return respondError(c, err, "interview", data)
	}

	data["Questions"] = set.Questions
	data["Notice"] = takeNotes
	return respond(c, fiber.StatusOK, "interview", data, models.QuestionsResponse{
		Kind:      set.Kind,
		Questions: set.Questions,
	})
}

// HandleHR handles POST /interview/hr
func (h *InterviewHandler) HandleHR(c *fiber.Ctx) error {
	data := pageDataFor(models.QuestionKindHR)

	var req models.HRQuestionsRequest
	if raw := strings.TrimSpace(c.FormValue("experience")); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(c, &services.ValidationError{Field: "experience", Message: "must be a whole number of years"}, "interview", data)
		}
		req.Experience = &years
		data["Experience"] = years
	}

	if req.Experience == nil {
		return respondError(c, errMissingExperience, "interview", data)
	}
	if err := services.ValidateRequest(req); err != nil {
		return respondError(c, err, "interview", data)
	}

	set, err := h.prepService.GenerateHR(c.UserContext(), *req.Experience)
	if err != nil {
		return respondError(c, err, "interview", data)
	}

	data["Questions"] = set.Questions
	data["Notice"] = takeNotes
	return respond(c, fiber.StatusOK, "interview", data, models.QuestionsResponse{
		Kind:      set.Kind,
		Questions: set.Questions,
	})
}
