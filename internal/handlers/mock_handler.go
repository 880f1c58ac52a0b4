package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/smart-talent/internal/models"
	"alfredoptarigan/smart-talent/internal/repositories"
	"alfredoptarigan/smart-talent/internal/services"
)

var errIncompleteSetup = &services.ValidationError{Message: "Please fill in all fields before starting the interview."}

// setupFields are the setup form fields that must not be blank.
var setupFields = map[string]bool{"JobRole": true, "JobDescription": true, "CompanyName": true}

type MockHandler struct {
	mockService   services.MockInterviewService
	sessionRepo   repositories.SessionRepository
	speechService services.SpeechService
	cookieName    string
}

func NewMockHandler(
	mockService services.MockInterviewService,
	sessionRepo repositories.SessionRepository,
	speechService services.SpeechService,
	cookieName string,
) *MockHandler {
	return &MockHandler{
		mockService:   mockService,
		sessionRepo:   sessionRepo,
		speechService: speechService,
		cookieName:    cookieName,
	}
}

// loadSession returns the browser's session, or a fresh one in setup when
// the cookie is missing or points at nothing.
func (h *MockHandler) loadSession(c *fiber.Ctx) (*models.MockInterviewSession, bool, error) {
	if id, err := uuid.Parse(c.Cookies(h.cookieName)); err == nil {
		session, err := h.sessionRepo.FindByID(id)
		if err == nil {
			return session, true, nil
		}
		if !errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, false, err
		}
	}

	return &models.MockInterviewSession{
		ID:        uuid.New(),
		State:     models.StateSetup,
		Responses: []models.MockResponse{},
	}, false, nil
}

func (h *MockHandler) saveSession(c *fiber.Ctx, session *models.MockInterviewSession) error {
	if err := h.sessionRepo.Save(session); err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    session.ID.String(),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// speak never fails: without audio the page still shows the text.
func (h *MockHandler) speak(ctx context.Context, text string) []models.Utterance {
	utterance, err := h.speechService.Speak(ctx, text)
	if err != nil {
		log.Printf("⚠️  Speech unavailable, continuing with text only: %v", err)
	}
	if utterance == nil {
		utterance = &models.Utterance{Text: text}
	}
	return []models.Utterance{*utterance}
}

func (h *MockHandler) viewData(session *models.MockInterviewSession) fiber.Map {
	data := fiber.Map{
		"Title":           "AI Mock Interview",
		"Active":          "mock",
		"Session":         session,
		"State":           string(session.State),
		"DurationOptions": services.DurationOptions,
	}

	switch session.State {
	case models.StateInProgress:
		data["Phase"] = string(services.CurrentPhase(session))
		if session.CurrentQuestion != nil {
			data["Question"] = *session.CurrentQuestion
		}
	case models.StateSummary:
		data["Closing"] = services.ClosingRemarks
	}

	return data
}

// HandlePage handles GET /mock
func (h *MockHandler) HandlePage(c *fiber.Ctx) error {
	session, _, err := h.loadSession(c)
	if err != nil {
		return respondError(c, err, "", nil)
	}

	response := models.MockInterviewResponse{Session: session}

	switch session.State {
	case models.StateInProgress:
		question := h.mockService.EnsureQuestion(c.UserContext(), session)
		if err := h.saveSession(c, session); err != nil {
			return respondError(c, err, "", nil)
		}
		response.Speech = h.speak(c.UserContext(), question.Question)
	case models.StateSummary:
		response.Closing = services.ClosingRemarks
		response.Speech = h.speak(c.UserContext(), services.ClosingSpeech)
	}

	data := h.viewData(session)
	data["Speech"] = response.Speech
	return respond(c, fiber.StatusOK, "mock", data, response)
}

// HandleStart handles POST /mock/start. It replaces whatever session the
// browser had.
func (h *MockHandler) HandleStart(c *fiber.Ctx) error {
	previous, stored, err := h.loadSession(c)
	if err != nil {
		return respondError(c, err, "", nil)
	}

	var req models.MockSetupRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.NewError(fiber.StatusBadRequest, "Invalid request payload"), "", nil)
	}

	session, err := h.mockService.Start(req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) && setupFields[validationErr.Field] {
			err = errIncompleteSetup
		}
		data := h.viewData(previous)
		data["State"] = string(models.StateSetup)
		data["Setup"] = req
		return respondError(c, err, "mock", data)
	}

	if stored {
		if err := h.sessionRepo.Delete(previous.ID); err != nil && !errors.Is(err, repositories.ErrSessionNotFound) {
			log.Printf("⚠️  Failed to drop previous session %s: %v", previous.ID, err)
		}
	}

	question := h.mockService.EnsureQuestion(c.UserContext(), session)
	if err := h.saveSession(c, session); err != nil {
		return respondError(c, err, "", nil)
	}

	if wantsHTML(c) {
		return c.Redirect("/mock", fiber.StatusSeeOther)
	}

	return c.Status(fiber.StatusCreated).JSON(models.MockInterviewResponse{
		Session: session,
		Speech:  h.speak(c.UserContext(), question.Question),
	})
}

// HandleAnswer handles POST /mock/answer. The page shows the feedback,
// plays it, then moves on to the next question or the summary.
func (h *MockHandler) HandleAnswer(c *fiber.Ctx) error {
	session, _, err := h.loadSession(c)
	if err != nil {
		return respondError(c, err, "", nil)
	}

	var req models.MockAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.NewError(fiber.StatusBadRequest, "Invalid request payload"), "", nil)
	}

	feedback, err := h.mockService.SubmitAnswer(c.UserContext(), session, strings.TrimSpace(req.Answer))
	if err != nil {
		data := h.viewData(session)
		if session.State == models.StateSummary {
			data["Closing"] = services.ClosingRemarks
		}
		return respondError(c, err, "mock", data)
	}

	// The next question is ready before the feedback is shown, so the
	// following answer never finds the session without one.
	var next *models.InterviewQuestion
	if session.State == models.StateInProgress {
		question := h.mockService.EnsureQuestion(c.UserContext(), session)
		next = &question
	}

	if err := h.saveSession(c, session); err != nil {
		return respondError(c, err, "", nil)
	}

	response := models.MockInterviewResponse{
		Session:      session,
		Feedback:     feedback,
		NextQuestion: next,
		Speech:       h.speak(c.UserContext(), feedback.Feedback),
	}
	// Browsers hear the next question when the page advances to it.
	if next != nil && !wantsHTML(c) {
		response.Speech = append(response.Speech, h.speak(c.UserContext(), next.Question)...)
	}

	data := h.viewData(session)
	data["Phase"] = "feedback"
	data["Feedback"] = feedback
	data["Speech"] = response.Speech
	return respond(c, fiber.StatusOK, "mock", data, response)
}

// HandleRestart handles POST /mock/restart
func (h *MockHandler) HandleRestart(c *fiber.Ctx) error {
	session, _, err := h.loadSession(c)
	if err != nil {
		return respondError(c, err, "", nil)
	}

	h.mockService.Restart(session)
	if err := h.saveSession(c, session); err != nil {
		return respondError(c, err, "", nil)
	}

	if wantsHTML(c) {
		return c.Redirect("/mock", fiber.StatusSeeOther)
	}
	return c.JSON(models.MockInterviewResponse{Session: session})
}
