package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-talent/internal/models"
	"alfredoptarigan/smart-talent/internal/repositories"
	"alfredoptarigan/smart-talent/internal/services"
)

const layout = "layouts/main"

// wantsHTML is true for browsers. Clients that send no Accept header, or
// */*, get JSON.
func wantsHTML(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML
}

// respond renders view inside the page layout for browsers and writes
// payload as JSON for everyone else.
func respond(c *fiber.Ctx, status int, view string, data fiber.Map, payload any) error {
	if wantsHTML(c) {
		return c.Status(status).Render(view, data, layout)
	}
	return c.Status(status).JSON(payload)
}

// respondError maps err to a status code. Browsers get view re-rendered
// with the error shown above the form they submitted.
func respondError(c *fiber.Ctx, err error, view string, data fiber.Map) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("❌ %s %s failed: %v", c.Method(), c.Path(), err)
	}

	message := err.Error()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		message = fe.Message
	}
	raw := services.RawResponse(err)

	if wantsHTML(c) {
		if view == "" {
			view = "error"
		}
		if data == nil {
			data = fiber.Map{"Title": "Error", "Active": ""}
		}
		data["Error"] = message
		data["RawResponse"] = raw
		data["Status"] = status
		return c.Status(status).Render(view, data, layout)
	}

	return c.Status(status).JSON(models.ErrorResponse{
		Error:       message,
		Code:        status,
		RawResponse: raw,
	})
}

// StatusFor is the HTTP status for an error raised anywhere in the app.
func StatusFor(err error) int {
	var validationErr *services.ValidationError
	var transportErr *services.TransportError
	var fe *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrPDFExtraction):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInterviewFinished),
		errors.Is(err, services.ErrInterviewNotStarted):
		return fiber.StatusConflict
	case errors.Is(err, repositories.ErrSessionNotFound),
		errors.Is(err, repositories.ErrEvaluationNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &transportErr),
		errors.Is(err, services.ErrEmptyResponse),
		errors.Is(err, services.ErrNoJSONFound),
		errors.Is(err, services.ErrMalformedJSON):
		return fiber.StatusBadGateway
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the app-wide fallback for errors returned by handlers and
// middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err, "", nil)
}

// resumeUpload returns the uploaded résumé, or nil when none was sent.
func resumeUpload(c *fiber.Ctx, maxFileSize int64) (*multipart.FileHeader, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		return nil, nil
	}

	if file.Size > maxFileSize {
		return nil, &services.ValidationError{
			Field:   "resume",
			Message: fmt.Sprintf("File size exceeds the %dMB limit. Please upload a smaller file.", maxFileSize/(1024*1024)),
		}
	}

	return file, nil
}
