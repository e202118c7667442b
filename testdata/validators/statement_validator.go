package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"golang-statement-analyzer/internal/engine"
	"golang-statement-analyzer/internal/ledger"
	"golang-statement-analyzer/internal/models"
)

// Validates that a statement file survives the full pipeline: every row
// becomes a transaction, every transaction ends up categorized, and the
// aggregate series preserve the ledger totals. Used against generated
// files before they are committed as fixtures.
func main() {
	var (
		input        = flag.String("input", "", "Statement CSV file to validate (required)")
		maxUnmatched = flag.Float64("max-unclassified", 0.25, "Maximum tolerated Unclassified ratio")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	eng := engine.NewEngine()
	result, err := eng.AnalyzeFile(context.Background(), *input, nil)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	txs := result.Transactions
	if len(txs) != result.Stats.RecordsParsed {
		log.Fatalf("Row count mismatch: %d rows parsed, %d transactions produced",
			result.Stats.RecordsParsed, len(txs))
	}

	unclassified := 0
	for i, tx := range txs {
		if tx.Category == "" {
			log.Fatalf("Transaction %d has no category: %s", i, tx)
		}
		if tx.Category == models.CategoryUnclassified {
			unclassified++
		}
	}

	ratio := 0.0
	if len(txs) > 0 {
		ratio = float64(unclassified) / float64(len(txs))
	}
	if ratio > *maxUnmatched {
		log.Fatalf("Unclassified ratio %.2f exceeds limit %.2f", ratio, *maxUnmatched)
	}

	metrics := ledger.ComputeMetrics(txs)
	agg := ledger.ComputeAggregates(txs)

	col := models.ResolveAmountColumn(txs)
	total := metrics.TotalDebit
	if col == models.AmountColumnAmount {
		total = metrics.TotalCredit.Sub(metrics.TotalDebit)
	}

	categoryTotal := decimal.Zero
	for _, row := range agg.CategorySummary {
		categoryTotal = categoryTotal.Add(row.Amount)
	}
	if !categoryTotal.Equal(total) {
		log.Fatalf("Category summary total %s does not match ledger total %s", categoryTotal, total)
	}

	fmt.Printf("OK: %d transactions, %d categories, %d months, %.1f%% unclassified\n",
		len(txs), len(agg.CategorySummary), metrics.Months, ratio*100)
}
