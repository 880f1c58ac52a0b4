package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/smart-talent/internal/models"
	"alfredoptarigan/smart-talent/internal/services"
)

var loadCmd = &cobra.Command{
	Use:   "load [pdf files...]",
	Short: "Chunk PDF files and store them in the question bank",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLoad,
}

var (
	loadKind      string
	loadChunkSize int
	loadReplace   bool
)

func init() {
	loadCmd.Flags().StringVar(&loadKind, "kind", string(models.QuestionKindReference), "Question kind stored with each chunk")
	loadCmd.Flags().IntVar(&loadChunkSize, "chunk-size", 800, "Maximum characters per chunk")
	loadCmd.Flags().BoolVar(&loadReplace, "replace", true, "Remove earlier chunks of the same file first")

	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	bank, qdrantService, err := questionBank()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := qdrantService.InitCollection(ctx); err != nil {
		return fmt.Errorf("failed to initialize collection: %w", err)
	}

	pdfParser := services.NewPDFParserService()
	chunker := services.NewTextChunker()

	failed := 0
	for _, path := range args {
		stored, err := loadFile(ctx, bank, qdrantService, pdfParser, chunker, path)
		if err != nil {
			log.Printf("❌ %s: %v", path, err)
			failed++
			continue
		}
		log.Printf("✅ %s: %d chunks stored", path, stored)
	}

	log.Printf("📊 Done: %d succeeded, %d failed", len(args)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func loadFile(
	ctx context.Context,
	bank services.QuestionBankService,
	qdrantService services.QdrantService,
	pdfParser services.PDFParserService,
	chunker services.TextChunker,
	path string,
) (int, error) {
	log.Printf("📄 Processing: %s", path)

	content, err := pdfParser.ExtractFileText(path)
	if err != nil {
		return 0, err
	}
	log.Printf("   Pages: %d, characters: %d", content.PageCount, len(content.Text))

	source := filepath.Base(path)
	if loadReplace {
		if err := qdrantService.DeleteSource(ctx, source); err != nil {
			return 0, err
		}
	}

	name := strings.TrimSuffix(source, filepath.Ext(source))
	stored := 0
	for _, chunk := range chunker.ChunkText(content.Text, loadChunkSize) {
		entry := services.QuestionEntry{
			Question: chunk,
			Kind:     models.QuestionKind(loadKind),
			Context:  name,
			Source:   source,
		}
		if err := bank.Index(ctx, entry); err != nil {
			return stored, err
		}
		stored++
	}

	return stored, nil
}
