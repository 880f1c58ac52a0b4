package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-talent/internal/models"
	"alfredoptarigan/smart-talent/internal/services"
)

var errMissingATSInput = &services.ValidationError{Message: "Please provide both Job Description and Resume."}

type ATSHandler struct {
	atsService  services.ATSService
	pdfParser   services.PDFParserService
	maxFileSize int64
}

func NewATSHandler(
	atsService services.ATSService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *ATSHandler {
	return &ATSHandler{
		atsService:  atsService,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
	}
}

func (h *ATSHandler) pageData() fiber.Map {
	return fiber.Map{
		"Title":         "Smart Talent Intelligent",
		"Active":        "ats",
		"MaxFileSizeMB": h.maxFileSize / (1024 * 1024),
	}
}

// HandlePage handles GET /ats
func (h *ATSHandler) HandlePage(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, "ats", h.pageData(), fiber.Map{
		"max_file_size": h.maxFileSize,
	})
}

// HandleEvaluate handles POST /ats
func (h *ATSHandler) HandleEvaluate(c *fiber.Ctx) error {
	data := h.pageData()

	req := models.ATSRequest{
		JobDescription: strings.TrimSpace(c.FormValue("job_description")),
	}
	data["JobDescription"] = req.JobDescription

	file, err := resumeUpload(c, h.maxFileSize)
	if err != nil {
		return respondError(c, err, "ats", data)
	}
	req.Resume = file

	if err := services.ValidateRequest(req); err != nil {
		return respondError(c, errMissingATSInput, "ats", data)
	}

	resumeText, err := h.pdfParser.ExtractUploadedText(req.Resume)
	if err != nil {
		return respondError(c, err, "ats", data)
	}

	report, err := h.atsService.Evaluate(c.UserContext(), resumeText, req.JobDescription)
	if err != nil {
		return respondError(c, err, "ats", data)
	}

	data["Report"] = report
	return respond(c, fiber.StatusOK, "ats", data, report)
}
