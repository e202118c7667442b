package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang-statement-analyzer/cmd/analyzer/config"
	"golang-statement-analyzer/internal/engine"
	"golang-statement-analyzer/internal/ledger"
	"golang-statement-analyzer/internal/models"
	"golang-statement-analyzer/internal/normalize"
	"golang-statement-analyzer/internal/reporter"
	pkgerrors "golang-statement-analyzer/pkg/errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flags for the analyze command
var (
	statementFile string
	outputFormat  string
	outputFile    string
	startDate     string
	endDate       string
	categoryName  string
	searchText    string
	rulesFile     string
	autoDetect    bool
	deriveAmount  bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a bank statement export",
	Long: `Analyze parses a bank statement CSV, assigns a spending category to
every transaction, and reports summary metrics, per-category and
per-month breakdowns, and the top merchants by spend.

Examples:
  # Basic analysis
  analyzer analyze --file statement.csv

  # Restrict to a date range (DD/MM/YYYY)
  analyzer analyze --file statement.csv --start-date 01/01/2024 --end-date 31/03/2024

  # Only one category, as JSON written to a file
  analyzer analyze --file statement.csv --category "Eat out" \
    --output-format json --output-file report.json

  # Free-text search over transaction descriptions
  analyzer analyze --file statement.csv --search zomato

  # Custom classification rules layered on top of the built-ins
  analyzer analyze --file statement.csv --rules my-rules.yaml`,

	PreRunE: validateAnalyzeFlags,
	RunE:    runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Required flags
	analyzeCmd.Flags().StringVarP(&statementFile, "file", "i", "", "path to statement CSV file (required)")

	// Output flags
	analyzeCmd.Flags().StringVarP(&outputFormat, "output-format", "f", "console", "output format: console, json, csv")
	analyzeCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "output file path (default: stdout)")

	// Filtering flags
	analyzeCmd.Flags().StringVar(&startDate, "start-date", "", "filter start date (DD/MM/YYYY or YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&endDate, "end-date", "", "filter end date (DD/MM/YYYY or YYYY-MM-DD)")
	analyzeCmd.Flags().StringVarP(&categoryName, "category", "c", "", "only transactions with this exact category")
	analyzeCmd.Flags().StringVarP(&searchText, "search", "s", "", "only transactions whose description contains this text")

	// Input handling flags
	analyzeCmd.Flags().StringVar(&rulesFile, "rules", "", "YAML file with custom classification rules")
	analyzeCmd.Flags().BoolVar(&autoDetect, "auto-detect", true, "auto-detect the CSV delimiter")
	analyzeCmd.Flags().BoolVar(&deriveAmount, "derive-amount", false, "synthesize a signed amount column from credit/debit")

	analyzeCmd.MarkFlagRequired("file")

	// Bind flags to viper
	viper.BindPFlag("file", analyzeCmd.Flags().Lookup("file"))
	viper.BindPFlag("output-format", analyzeCmd.Flags().Lookup("output-format"))
	viper.BindPFlag("output-file", analyzeCmd.Flags().Lookup("output-file"))
	viper.BindPFlag("start-date", analyzeCmd.Flags().Lookup("start-date"))
	viper.BindPFlag("end-date", analyzeCmd.Flags().Lookup("end-date"))
	viper.BindPFlag("category", analyzeCmd.Flags().Lookup("category"))
	viper.BindPFlag("search", analyzeCmd.Flags().Lookup("search"))
	viper.BindPFlag("rules", analyzeCmd.Flags().Lookup("rules"))
	viper.BindPFlag("auto-detect", analyzeCmd.Flags().Lookup("auto-detect"))
	viper.BindPFlag("derive-amount", analyzeCmd.Flags().Lookup("derive-amount"))
}

func validateAnalyzeFlags(cmd *cobra.Command, args []string) error {
	// Get values from viper (allows override from config file)
	statementFile = viper.GetString("file")
	outputFormat = viper.GetString("output-format")
	outputFile = viper.GetString("output-file")
	startDate = viper.GetString("start-date")
	endDate = viper.GetString("end-date")
	categoryName = viper.GetString("category")
	searchText = viper.GetString("search")
	rulesFile = viper.GetString("rules")
	autoDetect = viper.GetBool("auto-detect")
	deriveAmount = viper.GetBool("derive-amount")

	if statementFile == "" {
		return fmt.Errorf("file is required")
	}

	if err := validateFileExists(statementFile, "statement file"); err != nil {
		return err
	}

	if rulesFile != "" {
		if err := validateFileExists(rulesFile, "rules file"); err != nil {
			return err
		}
	}

	validFormats := map[string]bool{"console": true, "json": true, "csv": true}
	if !validFormats[outputFormat] {
		return fmt.Errorf("invalid output format '%s'. Valid formats: console, json, csv", outputFormat)
	}

	// Validate dates
	var start, end string
	if startDate != "" {
		parsed, ok := normalize.ParseDate(startDate)
		if !ok {
			return fmt.Errorf("invalid start date '%s'. Use DD/MM/YYYY or YYYY-MM-DD", startDate)
		}
		start = parsed.Format("2006-01-02")
	}
	if endDate != "" {
		parsed, ok := normalize.ParseDate(endDate)
		if !ok {
			return fmt.Errorf("invalid end date '%s'. Use DD/MM/YYYY or YYYY-MM-DD", endDate)
		}
		end = parsed.Format("2006-01-02")
	}
	if start != "" && end != "" && start > end {
		return fmt.Errorf("start date cannot be after end date")
	}

	// Validate output file directory exists if specified
	if outputFile != "" {
		dir := filepath.Dir(outputFile)
		if dir != "." {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				return fmt.Errorf("output directory does not exist: %s", dir)
			}
		}
	}

	return nil
}

func validateFileExists(filePath, description string) error {
	if filePath == "" {
		return fmt.Errorf("%s path cannot be empty", description)
	}

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s does not exist: %s", description, filePath)
	}
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", description, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a file: %s", description, filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("%s is not readable: %w", description, err)
	}
	file.Close()

	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Starting analysis...\n")
		fmt.Fprintf(os.Stderr, "Statement file: %s\n", statementFile)
		fmt.Fprintf(os.Stderr, "Output format: %s\n", outputFormat)
		if outputFile != "" {
			fmt.Fprintf(os.Stderr, "Output file: %s\n", outputFile)
		}
	}

	statementConfig, err := config.CreateStatementConfig(statementFile, autoDetect, deriveAmount)
	if err != nil {
		return fmt.Errorf("failed to create statement config: %w", err)
	}

	classifier, err := config.CreateClassifier(rulesFile)
	if err != nil {
		return fmt.Errorf("failed to load classification rules: %w", err)
	}

	eng := engine.NewEngineWithClassifier(classifier)
	result, err := eng.AnalyzeFile(ctx, statementFile, statementConfig)
	if err != nil {
		// analyzer errors carry category-specific exit codes
		if analyzerErr, ok := pkgerrors.AsAnalyzerError(err); ok {
			fmt.Fprintf(os.Stderr, "Error: %s\n", analyzerErr.Error())
			os.Exit(analyzerErr.GetExitCode())
		}
		return err
	}

	if viper.GetBool("verbose") && result.Stats.HasErrors() {
		fmt.Fprintf(os.Stderr, "Parse completed with %d row errors:\n", result.Stats.ErrorCount)
		for _, sample := range result.Stats.GetSampleErrors(5) {
			fmt.Fprintf(os.Stderr, "  %s\n", sample)
		}
	}

	txs := ledger.Filter(result.Transactions, models.FilterState{
		StartDate: startDate,
		EndDate:   endDate,
		Category:  categoryName,
		Search:    searchText,
	})

	report := reporter.BuildReport(statementFile, txs)

	reportConfig := config.CreateReportConfig(outputFormat)
	generator, err := reporter.NewReportGenerator(reportConfig)
	if err != nil {
		return fmt.Errorf("failed to create report generator: %w", err)
	}

	writer := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	if err := generator.GenerateReport(report, writer); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if outputFile != "" && viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outputFile)
	}

	return nil
}
