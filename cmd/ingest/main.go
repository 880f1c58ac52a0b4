package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alfredoptarigan/smart-talent/internal/config"
	"alfredoptarigan/smart-talent/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load and query the interview question bank",
	Long:  "Loads reference interview material from PDF files into the Qdrant question bank and searches what is stored there.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// questionBank connects to Gemini and Qdrant using the server's configuration.
func questionBank() (services.QuestionBankService, services.QdrantService, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Gemini: %w", err)
	}

	qdrantService, err := services.NewQdrantService(cfg.Qdrant)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Qdrant: %w", err)
	}

	return services.NewQuestionBankService(geminiService, qdrantService), qdrantService, nil
}
