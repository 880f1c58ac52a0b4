package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/smart-talent/internal/config"
	"alfredoptarigan/smart-talent/internal/handlers"
	"alfredoptarigan/smart-talent/internal/repositories"
	"alfredoptarigan/smart-talent/internal/services"
	"alfredoptarigan/smart-talent/internal/views"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize repositories
	var evalRepo repositories.EvaluationRepository
	sessionRepo := repositories.NewMemorySessionRepository(cfg.Session.TTL)

	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		evalRepo = repositories.NewEvaluationRepository(db)
		if cfg.Session.Store == "postgres" {
			sessionRepo = repositories.NewSessionRepository(db)
		}
	} else {
		log.Println("ℹ️  Database disabled, evaluation history is off")
	}
	log.Printf("✅ Repositories initialized (sessions: %s)", cfg.Session.Store)

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize the question bank
	var questionBank services.QuestionBankService
	var sink services.QuestionSink
	var worker services.Worker

	if cfg.Qdrant.Enabled {
		qdrantService, err := services.NewQdrantService(cfg.Qdrant)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}
		if err := qdrantService.InitCollection(ctx); err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
		}

		questionBank = services.NewQuestionBankService(geminiService, qdrantService)
		worker = services.NewWorker(questionBank, cfg.Worker.Concurrency, cfg.Worker.QueueSize)
		worker.Start(ctx)
		sink = worker
		log.Println("✅ Qdrant question bank initialized")
	}

	// Initialize storage and speech
	storageService, err := services.NewStorageService(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("❌ Failed to initialize storage: %v", err)
	}

	speechService := services.NewSilentSpeechService()
	if cfg.Speech.Enabled {
		if err := storageService.EnsureReady(ctx); err != nil {
			log.Fatalf("❌ Failed to prepare audio storage: %v", err)
		}
		speechService = services.NewSpeechService(geminiService, storageService, cfg.Speech.Retain)
	}

	pdfParser := services.NewPDFParserService()
	atsService := services.NewATSService(geminiService, evalRepo)
	prepService := services.NewInterviewPrepService(geminiService, sink)
	mockService := services.NewMockInterviewService(geminiService, sink)
	log.Println("✅ Services initialized successfully")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Smart Talent",
		Immutable:    true,
		Views:        views.New(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.SetupRoutes(app, handlers.Handlers{
		ATS:       handlers.NewATSHandler(atsService, pdfParser, cfg.Storage.MaxFileSize),
		Interview: handlers.NewInterviewHandler(prepService, pdfParser, cfg.Storage.MaxFileSize),
		Mock:      handlers.NewMockHandler(mockService, sessionRepo, speechService, cfg.Session.CookieName),
		Audio:     handlers.NewAudioHandler(storageService),
		Result:    handlers.NewResultHandler(evalRepo),
		Question:  handlers.NewQuestionHandler(questionBank),
	})
	log.Println("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if worker != nil {
			worker.Stop()
		}
		cancel()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Open http://localhost%s in your browser\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
