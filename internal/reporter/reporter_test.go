package reporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"golang-statement-analyzer/internal/models"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{Date: "05/01/2024", Description: "UPI-zomato-1234", Narration: "zomato", Debit: decimal.NewFromInt(300), Category: "Eat out"},
		{Date: "10/01/2024", Description: "NEFT-stonewain pay", Narration: "stonewain pay", Credit: decimal.NewFromInt(50000), Category: "Salary"},
		{Date: "15/02/2024", Description: "blinkit order", Narration: "blinkit order", Debit: decimal.NewFromInt(800), Category: "Grocery"},
	}
}

func TestBuildReport(t *testing.T) {
	report := BuildReport("statement.csv", sampleTransactions())

	if report.FilePath != "statement.csv" {
		t.Errorf("FilePath = %q", report.FilePath)
	}
	if report.Metrics.NumTransactions != 3 {
		t.Errorf("NumTransactions = %d, expected 3", report.Metrics.NumTransactions)
	}
	if len(report.Aggregates.CategorySummary) != 3 {
		t.Errorf("CategorySummary rows = %d, expected 3", len(report.Aggregates.CategorySummary))
	}
	if len(report.CoarseSummary) == 0 {
		t.Error("expected coarse summary rows")
	}
	if len(report.Categories) != 3 {
		t.Errorf("Categories = %v", report.Categories)
	}
}

func TestGenerateConsoleReport(t *testing.T) {
	generator, err := NewReportGenerator(nil)
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	var buf bytes.Buffer
	report := BuildReport("statement.csv", sampleTransactions())
	if err := generator.GenerateReport(report, &buf); err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"STATEMENT ANALYSIS REPORT",
		"=== SUMMARY ===",
		"=== SPENDING BY CATEGORY ===",
		"=== SPENDING BY GROUP ===",
		"=== MONTHLY TREND ===",
		"=== TOP MERCHANTS ===",
		"Eat out",
		"50000.00",
		"2024-01",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("console output missing %q", want)
		}
	}
}

func TestGenerateJSONReport(t *testing.T) {
	config := DefaultReportConfig()
	config.Format = FormatJSON
	generator, err := NewReportGenerator(config)
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	var buf bytes.Buffer
	report := BuildReport("statement.csv", sampleTransactions())
	if err := generator.GenerateReport(report, &buf); err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON output does not parse: %v", err)
	}

	if decoded["file_path"] != "statement.csv" {
		t.Errorf("file_path = %v", decoded["file_path"])
	}
	if _, ok := decoded["transactions"]; ok {
		t.Error("JSON report should omit the transaction list")
	}
	if _, ok := decoded["aggregates"]; !ok {
		t.Error("JSON report missing aggregates")
	}
}

func TestGenerateCSVReport(t *testing.T) {
	config := DefaultReportConfig()
	config.Format = FormatCSV
	generator, err := NewReportGenerator(config)
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	var buf bytes.Buffer
	report := BuildReport("statement.csv", sampleTransactions())
	if err := generator.GenerateReport(report, &buf); err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("CSV output does not parse: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("records = %d, expected header + 3 rows", len(records))
	}

	header := records[0]
	expected := []string{"date", "description", "credit", "debit", "category", "group"}
	for i := range expected {
		if header[i] != expected[i] {
			t.Errorf("header[%d] = %q, expected %q", i, header[i], expected[i])
		}
	}

	if records[1][4] != "Eat out" {
		t.Errorf("category = %q", records[1][4])
	}
	if records[1][5] != "Discretionary" {
		t.Errorf("group = %q", records[1][5])
	}
	if records[2][2] != "50000.00" {
		t.Errorf("credit = %q", records[2][2])
	}
}

func TestGenerateReportInvalidFormat(t *testing.T) {
	config := DefaultReportConfig()
	config.Format = "xml"
	if _, err := NewReportGenerator(config); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestGenerateReportNil(t *testing.T) {
	generator, err := NewReportGenerator(nil)
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}
	if err := generator.GenerateReport(nil, &bytes.Buffer{}); err == nil {
		t.Error("expected error for nil report")
	}
}
