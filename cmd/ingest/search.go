package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/smart-talent/internal/models"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find stored questions similar to a query",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var (
	searchKind  string
	searchLimit int
)

func init() {
	searchCmd.Flags().StringVar(&searchKind, "kind", "", "Only return questions of this kind")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 5, "Maximum number of results")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	bank, _, err := questionBank()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results, err := bank.Search(ctx, strings.Join(args, " "), models.QuestionKind(searchKind), searchLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, result := range results {
		fmt.Fprintf(out, "%d. [%s %.3f] %s\n", i+1, result.Kind, result.Score, result.Question)
		if result.IdealAnswer != "" {
			fmt.Fprintf(out, "   %s\n", result.IdealAnswer)
		}
	}
	return nil
}
