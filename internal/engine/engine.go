// Package engine ties the pipeline together: parse a statement file, turn
// its rows into categorized transactions, and publish the result as the
// current ledger. A Loader guards against overlapping loads so that only
// the most recently requested file ever becomes current.
package engine

import (
	"context"

	"golang-statement-analyzer/internal/classify"
	"golang-statement-analyzer/internal/models"
	"golang-statement-analyzer/internal/normalize"
	"golang-statement-analyzer/internal/parsers"
	"golang-statement-analyzer/pkg/logger"
)

// Engine converts raw statement rows into categorized transactions.
type Engine struct {
	classifier *classify.Classifier
	logger     logger.Logger
}

// NewEngine creates an engine using the built-in classification rules
func NewEngine() *Engine {
	return NewEngineWithClassifier(classify.NewClassifier())
}

// NewEngineWithClassifier creates an engine with a custom classifier,
// typically one carrying user-defined rules on top of the built-ins.
func NewEngineWithClassifier(classifier *classify.Classifier) *Engine {
	return &Engine{
		classifier: classifier,
		logger:     logger.GetGlobalLogger().WithComponent("engine"),
	}
}

// ProcessRows normalizes and classifies raw rows in order. Every input row
// yields exactly one transaction; rows are never dropped here. Transactions
// that arrive with a category keep it, everything else gets classified, and
// no transaction leaves without a category.
func (e *Engine) ProcessRows(rows []models.RawRow) []models.Transaction {
	txs := make([]models.Transaction, 0, len(rows))

	var tracker *logger.ProgressTracker
	if len(rows) >= 10000 {
		tracker = logger.NewProgressTracker(logger.ProgressConfig{
			Operation: "process_rows",
			Total:     int64(len(rows)),
			Logger:    e.logger,
		})
	}

	for _, row := range rows {
		tx := normalize.NormalizeRow(row)
		tx = e.classifier.ClassifyTransaction(tx)
		if tx.Category == "" {
			tx.Category = models.CategoryUnclassified
		}
		txs = append(txs, tx)
		if tracker != nil {
			tracker.Increment()
		}
	}

	if tracker != nil {
		tracker.Complete()
	}

	e.logger.WithField("transactions", len(txs)).Debug("Processed statement rows")
	return txs
}

// LoadResult is the outcome of loading one statement file.
type LoadResult struct {
	FilePath     string
	Transactions []models.Transaction
	Stats        *parsers.ParseStats
}

// AnalyzeFile parses and processes a single statement file end to end.
func (e *Engine) AnalyzeFile(ctx context.Context, filePath string, config *parsers.StatementConfig) (*LoadResult, error) {
	parser, err := parsers.NewStatementParser(config)
	if err != nil {
		return nil, err
	}

	rows, stats, err := parser.ParseStatementWithContext(ctx, filePath)
	if err != nil {
		return nil, err
	}

	return &LoadResult{
		FilePath:     filePath,
		Transactions: e.ProcessRows(rows),
		Stats:        stats,
	}, nil
}
