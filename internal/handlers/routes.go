package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	ATS       *ATSHandler
	Interview *InterviewHandler
	Mock      *MockHandler
	Audio     *AudioHandler
	Result    *ResultHandler
	Question  *QuestionHandler
}

func SetupRoutes(app *fiber.App, h Handlers) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/ats")
	})

	app.Get("/ats", h.ATS.HandlePage)
	app.Post("/ats", h.ATS.HandleEvaluate)

	app.Get("/interview", h.Interview.HandlePage)
	app.Post("/interview/technical", h.Interview.HandleTechnical)
	app.Post("/interview/hr", h.Interview.HandleHR)

	app.Get("/mock", h.Mock.HandlePage)
	app.Post("/mock/start", h.Mock.HandleStart)
	app.Post("/mock/answer", h.Mock.HandleAnswer)
	app.Post("/mock/restart", h.Mock.HandleRestart)

	app.Get("/audio/:name", h.Audio.HandleGetAudio)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/evaluations", h.Result.HandleListRecent)
	api.Get("/evaluations/:id", h.Result.HandleGetResult)
	api.Get("/questions/search", h.Question.HandleSearch)
}
