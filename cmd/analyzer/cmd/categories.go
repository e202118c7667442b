package cmd

import (
	"context"
	"fmt"
	"os"

	"golang-statement-analyzer/cmd/analyzer/config"
	"golang-statement-analyzer/internal/classify"
	"golang-statement-analyzer/internal/engine"
	"golang-statement-analyzer/internal/ledger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var categoriesFile string

// categoriesCmd lists the categories present in a statement, or the
// built-in taxonomy when no file is given.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List transaction categories",
	Long: `Categories lists the spending categories the analyzer knows about.
With --file it parses the statement and lists the categories actually
assigned, each with its coarse group.

Examples:
  analyzer categories
  analyzer categories --file statement.csv`,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)

	categoriesCmd.Flags().StringVarP(&categoriesFile, "file", "i", "", "statement file to list categories for")
}

func runCategories(cmd *cobra.Command, args []string) error {
	if categoriesFile == "" {
		printBuiltinCategories()
		return nil
	}

	if err := validateFileExists(categoriesFile, "statement file"); err != nil {
		return err
	}

	statementConfig, err := config.CreateStatementConfig(categoriesFile, true, false)
	if err != nil {
		return fmt.Errorf("failed to create statement config: %w", err)
	}

	eng := engine.NewEngine()
	result, err := eng.AnalyzeFile(context.Background(), categoriesFile, statementConfig)
	if err != nil {
		return err
	}

	for _, category := range ledger.Categories(result.Transactions) {
		fmt.Fprintf(os.Stdout, "%-30s %s\n", category, classify.CoarseCategoryOf(category))
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "%d transactions scanned\n", len(result.Transactions))
	}

	return nil
}

func printBuiltinCategories() {
	seen := make(map[string]bool)
	for _, rule := range classify.BuiltinRules() {
		if seen[rule.Category] {
			continue
		}
		seen[rule.Category] = true
		fmt.Fprintf(os.Stdout, "%-30s %s\n", rule.Category, classify.CoarseCategoryOf(rule.Category))
	}
}
