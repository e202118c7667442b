// Package config builds the component configurations the CLI hands to the
// engine, parser and reporter layers.
package config

import (
	"fmt"

	"golang-statement-analyzer/internal/classify"
	"golang-statement-analyzer/internal/parsers"
	"golang-statement-analyzer/internal/reporter"
	"golang-statement-analyzer/pkg/logger"
)

// CreateStatementConfig builds the parser configuration for a statement
// file, optionally sniffing the delimiter from the file itself.
func CreateStatementConfig(filePath string, autoDetect, deriveAmount bool) (*parsers.StatementConfig, error) {
	var statementConfig *parsers.StatementConfig

	if autoDetect {
		detected, err := parsers.AutoDetectStatementConfig(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to auto-detect statement format: %w", err)
		}
		statementConfig = detected
	} else {
		statementConfig = parsers.DefaultStatementConfig()
	}

	statementConfig.DeriveAmount = deriveAmount
	return statementConfig, nil
}

// CreateClassifier builds the transaction classifier, layering custom
// rules from rulesFile (when given) after the built-in table.
func CreateClassifier(rulesFile string) (*classify.Classifier, error) {
	if rulesFile == "" {
		return classify.NewClassifier(), nil
	}

	rules, err := classify.LoadRules(rulesFile)
	if err != nil {
		return nil, err
	}
	return classify.NewClassifierWithRules(rules), nil
}

// CreateReportConfig builds the report configuration for an output format
func CreateReportConfig(format string) *reporter.ReportConfig {
	reportConfig := reporter.DefaultReportConfig()
	reportConfig.Format = reporter.OutputFormat(format)
	return reportConfig
}

// CreateLoggerConfig builds the logger configuration for the CLI session
func CreateLoggerConfig(verbose bool) *logger.Config {
	if verbose {
		return logger.DebugConfig()
	}
	loggerConfig := logger.DefaultConfig()
	loggerConfig.Level = logger.WarnLevel
	return loggerConfig
}
