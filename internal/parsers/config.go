package parsers

import (
	"bufio"
	"os"
	"strings"

	"golang-statement-analyzer/pkg/errors"
)

// StatementConfig describes how to read one bank's statement export.
type StatementConfig struct {
	// Name identifies the configuration in logs
	Name string

	// Delimiter separates fields in the export, comma by default
	Delimiter rune

	// HasHeader is true when the first row names the columns. Exports
	// without headers are rejected; every known bank emits them.
	HasHeader bool

	// Renames maps source header names to canonical column names, for
	// exports whose headers match no built-in alias. Keys are matched
	// case-insensitively.
	Renames map[string]string

	// DeriveAmount synthesizes a signed amount column from separate
	// credit and debit columns. Off by default: exports with separate
	// columns keep their native shape so debit-based summaries stay
	// faithful to the source.
	DeriveAmount bool
}

// DefaultStatementConfig returns the configuration used when nothing is
// known about the export format.
func DefaultStatementConfig() *StatementConfig {
	return &StatementConfig{
		Name:      "generic",
		Delimiter: ',',
		HasHeader: true,
	}
}

// Validate checks the configuration for usable values
func (c *StatementConfig) Validate() error {
	if c.Delimiter == 0 {
		return errors.ConfigurationError(errors.CodeInvalidConfig, "delimiter", "empty", nil)
	}
	if !c.HasHeader {
		return errors.ConfigurationError(errors.CodeInvalidConfig, "has_header", false, nil).
			WithSuggestion("statement exports must include a header row")
	}
	return nil
}

// candidate delimiters checked during auto-detection, in preference order
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// AutoDetectStatementConfig sniffs the delimiter from the file's header
// line and returns a matching configuration. The delimiter producing the
// most fields wins; ties go to the earlier candidate.
func AutoDetectStatementConfig(filePath string) (*StatementConfig, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileError(errors.CodeFileNotFound, filePath, err)
		}
		return nil, errors.FileError(errors.CodeDirectoryError, filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.FileError(errors.CodeFileCorrupted, filePath, err)
		}
		return nil, errors.ValidationError(errors.CodeMissingField, "file_content", "empty", nil).
			WithSuggestion("Ensure the file contains header and data rows")
	}
	headerLine := scanner.Text()

	config := DefaultStatementConfig()
	config.Name = "auto-detected"

	bestCount := 0
	for _, delim := range candidateDelimiters {
		count := strings.Count(headerLine, string(delim))
		if count > bestCount {
			bestCount = count
			config.Delimiter = delim
		}
	}

	return config, nil
}
