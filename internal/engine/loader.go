package engine

import (
	"context"
	"sync"

	"golang-statement-analyzer/internal/models"
	"golang-statement-analyzer/internal/parsers"
	"golang-statement-analyzer/pkg/errors"
	"golang-statement-analyzer/pkg/logger"
)

// Loader serializes statement loads and keeps the current ledger. Each
// Load call bumps a generation counter; a load that finishes after a newer
// one started discards its result instead of publishing it, so the ledger
// only ever reflects the most recently requested file.
type Loader struct {
	engine *Engine
	logger logger.Logger

	mu         sync.Mutex
	generation uint64
	current    []models.Transaction
	filePath   string
}

// NewLoader creates a loader around the given engine
func NewLoader(engine *Engine) *Loader {
	return &Loader{
		engine: engine,
		logger: logger.GetGlobalLogger().WithComponent("loader"),
	}
}

// Load parses and processes filePath and, if no newer load has started in
// the meantime, publishes the result as the current ledger. A superseded
// load returns its result to the caller along with a superseded-parse
// error so the caller knows the ledger was not updated.
func (l *Loader) Load(ctx context.Context, filePath string, config *parsers.StatementConfig) (*LoadResult, error) {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.mu.Unlock()

	l.logger.WithFields(logger.Fields{
		"file_path":  filePath,
		"generation": gen,
	}).Debug("Starting statement load")

	result, err := l.engine.AnalyzeFile(ctx, filePath, config)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		l.logger.WithFields(logger.Fields{
			"file_path":  filePath,
			"generation": gen,
			"latest":     l.generation,
		}).Warn("Discarding superseded statement load")
		return result, errors.AnalysisError(errors.CodeSupersededParse, "load", nil).
			WithContext("file_path", filePath)
	}

	l.current = result.Transactions
	l.filePath = filePath
	return result, nil
}

// Current returns the published ledger and the file it came from. The
// returned slice is shared and must be treated as read-only.
func (l *Loader) Current() ([]models.Transaction, string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current, l.filePath
}

// Reset clears the published ledger
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	l.current = nil
	l.filePath = ""
}
