package parsers

import (
	"context"
	"io"
	"strings"

	"golang-statement-analyzer/internal/models"
	"golang-statement-analyzer/internal/normalize"
	"golang-statement-analyzer/pkg/logger"
)

// StatementParser reads a bank statement CSV into raw rows. Every column
// of the source file survives into the row; canonical interpretation
// happens downstream in the normalizer.
type StatementParser struct {
	base   *BaseParser
	config *StatementConfig
	logger logger.Logger
}

// NewStatementParser creates a parser for the given statement configuration
func NewStatementParser(config *StatementConfig) (*StatementParser, error) {
	if config == nil {
		config = DefaultStatementConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	parseConfig := DefaultParseConfig()
	parseConfig.Delimiter = config.Delimiter
	parseConfig.HasHeader = config.HasHeader

	return &StatementParser{
		base:   NewBaseParser(parseConfig),
		config: config,
		logger: logger.GetGlobalLogger().WithComponent("statement_parser"),
	}, nil
}

// ParseStatement parses a statement file into raw rows
func (p *StatementParser) ParseStatement(filePath string) ([]models.RawRow, *ParseStats, error) {
	return p.ParseStatementWithContext(context.Background(), filePath)
}

// ParseStatementWithContext parses a statement file, honoring cancellation.
// Row-level problems are recorded in the returned stats without aborting
// the parse; only file-level failures return an error.
func (p *StatementParser) ParseStatementWithContext(ctx context.Context, filePath string) ([]models.RawRow, *ParseStats, error) {
	p.logger.WithFields(logger.Fields{
		"file_path": filePath,
		"config":    p.config.Name,
	}).Info("Parsing statement file")

	file, reader, err := p.base.OpenFile(filePath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	parseCtx := NewParseContext(ctx)
	stats := NewParseStats()

	if err := p.base.ReadHeaders(reader, parseCtx); err != nil {
		return nil, stats, err
	}

	var rows []models.RawRow
	for {
		record, err := p.base.ReadRecord(reader, parseCtx)
		if err == io.EOF {
			break
		}
		if err != nil {
			parseCtx.AddError(0, "record", "", "unreadable record", err)
			stats.RecordsSkipped++
			continue
		}

		row := p.buildRow(parseCtx, record, stats)
		reconcileAmounts(&row, p.config.DeriveAmount)
		rows = append(rows, row)
		stats.RecordsParsed++
	}

	stats.TotalLines = parseCtx.LineNumber
	stats.Errors = append(stats.Errors, parseCtx.Errors...)
	stats.ErrorCount = len(stats.Errors)

	p.logger.WithFields(logger.Fields{
		"file_path": filePath,
		"stats":     stats.String(),
	}).Info("Finished parsing statement file")

	return rows, stats, nil
}

// buildRow pairs record fields with headers into an ordered row. Fields
// beyond the header width are dropped and flagged; missing trailing fields
// are simply absent.
func (p *StatementParser) buildRow(parseCtx *ParseContext, record []string, stats *ParseStats) models.RawRow {
	row := models.NewRawRow()

	for i, header := range parseCtx.Headers {
		if i >= len(record) {
			break
		}
		row.Set(p.canonicalName(header), strings.TrimSpace(record[i]))
	}

	if len(record) > len(parseCtx.Headers) {
		stats.AddError(&ParseError{
			Line:    parseCtx.LineNumber,
			Column:  len(parseCtx.Headers),
			Field:   "record",
			Message: "row has more fields than headers, extras dropped",
		})
	}

	return row
}

// canonicalName applies the configured header renames, case-insensitively
func (p *StatementParser) canonicalName(header string) string {
	if len(p.config.Renames) == 0 {
		return header
	}
	if renamed, ok := p.config.Renames[header]; ok {
		return renamed
	}
	lowered := strings.ToLower(header)
	for source, renamed := range p.config.Renames {
		if strings.ToLower(source) == lowered {
			return renamed
		}
	}
	return header
}

// reconcileAmounts bridges the two monetary shapes statement exports use.
//
// An export with a single signed amount column gets credit and debit
// columns derived from it: positive amounts become credits, negative
// amounts become debit magnitudes. An export with separate credit and
// debit columns gets a signed amount column (credit minus debit) only
// when deriveAmount is set, so the default pipeline preserves which
// shape the source file had.
func reconcileAmounts(row *models.RawRow, deriveAmount bool) {
	amount, hasAmount := row.Lookup(normalize.AmountAliases...)
	_, hasCredit := row.Lookup(normalize.CreditAliases...)
	_, hasDebit := row.Lookup(normalize.DebitAliases...)

	if hasAmount && !hasCredit && !hasDebit {
		value, err := models.ParseDecimalFromString(amount)
		if err != nil {
			return
		}
		if value.IsNegative() {
			row.Set("debit", value.Abs().String())
		} else {
			row.Set("credit", value.String())
		}
		return
	}

	if deriveAmount && !hasAmount && (hasCredit || hasDebit) {
		credit, _ := row.Lookup(normalize.CreditAliases...)
		debit, _ := row.Lookup(normalize.DebitAliases...)
		net := models.DecimalOrZero(credit).Sub(models.DecimalOrZero(debit))
		row.Set("amount", net.String())
	}
}
