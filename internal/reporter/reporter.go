// Package reporter renders analysis results for people and machines:
// a console summary for interactive use, JSON for downstream tooling,
// and a CSV export of the categorized ledger.
package reporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang-statement-analyzer/internal/classify"
	"golang-statement-analyzer/internal/ledger"
	"golang-statement-analyzer/internal/models"
)

// OutputFormat represents the supported report output formats.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
)

// IsValid checks if the output format is supported
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatConsole, FormatJSON, FormatCSV:
		return true
	default:
		return false
	}
}

// ReportConfig holds configuration options for report generation
type ReportConfig struct {
	Format OutputFormat `json:"format"`

	// Detail level options
	IncludeCategorySummary bool `json:"include_category_summary"`
	IncludeCoarseSummary   bool `json:"include_coarse_summary"`
	IncludeMonthlyTrend    bool `json:"include_monthly_trend"`
	IncludeTopMerchants    bool `json:"include_top_merchants"`
	IncludeParseStats      bool `json:"include_parse_stats"`

	// CSV options
	CSVDelimiter rune `json:"csv_delimiter"`
	CSVHeaders   bool `json:"csv_headers"`
}

// DefaultReportConfig returns a default report configuration
func DefaultReportConfig() *ReportConfig {
	return &ReportConfig{
		Format:                 FormatConsole,
		IncludeCategorySummary: true,
		IncludeCoarseSummary:   true,
		IncludeMonthlyTrend:    true,
		IncludeTopMerchants:    true,
		IncludeParseStats:      true,
		CSVDelimiter:           ',',
		CSVHeaders:             true,
	}
}

// Validate validates the report configuration
func (c *ReportConfig) Validate() error {
	if !c.Format.IsValid() {
		return fmt.Errorf("invalid output format: %s", c.Format)
	}
	return nil
}

// Report is the complete analysis output for one statement file.
type Report struct {
	FilePath      string                  `json:"file_path"`
	GeneratedAt   time.Time               `json:"generated_at"`
	Metrics       models.Metrics          `json:"metrics"`
	Aggregates    models.Aggregates       `json:"aggregates"`
	CoarseSummary []models.CategoryAmount `json:"coarse_summary"`
	Categories    []string                `json:"categories"`

	// Transactions back the CSV export; JSON output drops them to keep
	// reports small.
	Transactions []models.Transaction `json:"transactions,omitempty"`
}

// BuildReport derives a full report from a categorized transaction set.
func BuildReport(filePath string, txs []models.Transaction) *Report {
	agg := ledger.ComputeAggregates(txs)
	return &Report{
		FilePath:      filePath,
		GeneratedAt:   time.Now(),
		Metrics:       ledger.ComputeMetrics(txs),
		Aggregates:    agg,
		CoarseSummary: ledger.CoarseSummary(agg.CategorySummary),
		Categories:    ledger.Categories(txs),
		Transactions:  txs,
	}
}

// ReportGenerator renders reports in the configured format
type ReportGenerator struct {
	config *ReportConfig
}

// NewReportGenerator creates a new report generator with the specified configuration
func NewReportGenerator(config *ReportConfig) (*ReportGenerator, error) {
	if config == nil {
		config = DefaultReportConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid report configuration: %w", err)
	}
	return &ReportGenerator{config: config}, nil
}

// GenerateReport renders the report to the provided writer
func (rg *ReportGenerator) GenerateReport(report *Report, writer io.Writer) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}

	switch rg.config.Format {
	case FormatConsole:
		return rg.generateConsoleReport(report, writer)
	case FormatJSON:
		return rg.generateJSONReport(report, writer)
	case FormatCSV:
		return rg.generateCSVReport(report, writer)
	default:
		return fmt.Errorf("unsupported output format: %s", rg.config.Format)
	}
}

// generateConsoleReport renders a human-readable summary
func (rg *ReportGenerator) generateConsoleReport(report *Report, writer io.Writer) error {
	fmt.Fprintf(writer, "STATEMENT ANALYSIS REPORT\n")
	fmt.Fprintf(writer, "File: %s\n", report.FilePath)
	fmt.Fprintf(writer, "Generated: %s\n\n", report.GeneratedAt.Format(time.RFC3339))

	fmt.Fprintf(writer, "=== SUMMARY ===\n")
	rg.printMetrics(report.Metrics, writer)
	fmt.Fprintf(writer, "\n")

	if rg.config.IncludeCategorySummary && len(report.Aggregates.CategorySummary) > 0 {
		fmt.Fprintf(writer, "=== SPENDING BY CATEGORY ===\n")
		rg.printCategoryTable(report.Aggregates.CategorySummary, writer)
		fmt.Fprintf(writer, "\n")
	}

	if rg.config.IncludeCoarseSummary && len(report.CoarseSummary) > 0 {
		fmt.Fprintf(writer, "=== SPENDING BY GROUP ===\n")
		rg.printCategoryTable(report.CoarseSummary, writer)
		fmt.Fprintf(writer, "\n")
	}

	if rg.config.IncludeMonthlyTrend && len(report.Aggregates.MonthlyTrend) > 0 {
		fmt.Fprintf(writer, "=== MONTHLY TREND ===\n")
		for _, row := range report.Aggregates.MonthlyTrend {
			fmt.Fprintf(writer, "%-10s %15s\n", row.Month, row.Amount.StringFixed(2))
		}
		fmt.Fprintf(writer, "\n")
	}

	if rg.config.IncludeTopMerchants && len(report.Aggregates.TopMerchants) > 0 {
		fmt.Fprintf(writer, "=== TOP MERCHANTS ===\n")
		for i, row := range report.Aggregates.TopMerchants {
			fmt.Fprintf(writer, "%2d. %-40s %15s\n", i+1, truncate(row.Merchant, 40), row.Amount.StringFixed(2))
		}
		fmt.Fprintf(writer, "\n")
	}

	return nil
}

func (rg *ReportGenerator) printMetrics(m models.Metrics, writer io.Writer) {
	fmt.Fprintf(writer, "%-25s %d\n", "Transactions:", m.NumTransactions)
	fmt.Fprintf(writer, "%-25s %d\n", "Months Covered:", m.Months)
	fmt.Fprintf(writer, "%-25s %s\n", "Total Credit:", m.TotalCredit.StringFixed(2))
	fmt.Fprintf(writer, "%-25s %s\n", "Total Debit:", m.TotalDebit.StringFixed(2))
	fmt.Fprintf(writer, "%-25s %s\n", "Net Balance:", m.NetBalance.StringFixed(2))
	fmt.Fprintf(writer, "%-25s %s\n", "Avg Monthly Credit:", m.AvgCredit.StringFixed(2))
	fmt.Fprintf(writer, "%-25s %s\n", "Avg Monthly Debit:", m.AvgDebit.StringFixed(2))
}

func (rg *ReportGenerator) printCategoryTable(rows []models.CategoryAmount, writer io.Writer) {
	for _, row := range rows {
		fmt.Fprintf(writer, "%-30s %15s\n", row.Category, row.Amount.StringFixed(2))
	}
}

// generateJSONReport renders the report as indented JSON. The transaction
// list is omitted; the CSV format is the transaction-level export.
func (rg *ReportGenerator) generateJSONReport(report *Report, writer io.Writer) error {
	trimmed := *report
	trimmed.Transactions = nil

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(&trimmed)
}

// generateCSVReport exports the categorized ledger, one transaction per row
func (rg *ReportGenerator) generateCSVReport(report *Report, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)
	csvWriter.Comma = rg.config.CSVDelimiter
	defer csvWriter.Flush()

	if rg.config.CSVHeaders {
		if err := csvWriter.Write([]string{"date", "description", "credit", "debit", "category", "group"}); err != nil {
			return err
		}
	}

	for _, tx := range report.Transactions {
		record := []string{
			tx.Date,
			tx.Merchant(),
			tx.Credit.StringFixed(2),
			tx.Debit.StringFixed(2),
			tx.Category,
			classify.CoarseCategoryOf(tx.Category).String(),
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
