package errors

import (
	"errors"
	"testing"
)

func TestAnalyzerError(t *testing.T) {
	tests := []struct {
		name       string
		category   ErrorCategory
		code       ErrorCode
		message    string
		cause      error
		expectCode int
	}{
		{
			name:       "file error",
			category:   CategoryFile,
			code:       CodeFileNotFound,
			message:    "file not found",
			cause:      errors.New("no such file"),
			expectCode: 2,
		},
		{
			name:       "parse error",
			category:   CategoryParse,
			code:       CodeInvalidFormat,
			message:    "invalid format",
			cause:      nil,
			expectCode: 3,
		},
		{
			name:       "configuration error",
			category:   CategoryConfiguration,
			code:       CodeInvalidConfig,
			message:    "invalid config",
			cause:      errors.New("missing field"),
			expectCode: 4,
		},
		{
			name:       "analysis error",
			category:   CategoryAnalysis,
			code:       CodeEmptyLedger,
			message:    "no transactions loaded",
			cause:      nil,
			expectCode: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err *AnalyzerError
			if tt.cause != nil {
				err = Wrap(tt.cause, tt.category, tt.code, tt.message)
			} else {
				err = New(tt.category, tt.code, tt.message)
			}

			if err.Category != tt.category {
				t.Errorf("expected category %s, got %s", tt.category, err.Category)
			}
			if err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, err.Code)
			}
			if err.Message != tt.message {
				t.Errorf("expected message %s, got %s", tt.message, err.Message)
			}

			if err.GetExitCode() != tt.expectCode {
				t.Errorf("expected exit code %d, got %d", tt.expectCode, err.GetExitCode())
			}

			if err.Error() != tt.message {
				t.Errorf("expected error string %s, got %s", tt.message, err.Error())
			}

			if tt.cause != nil && err.Unwrap() != tt.cause {
				t.Errorf("expected to unwrap to %v, got %v", tt.cause, err.Unwrap())
			}
		})
	}
}

func TestAnalyzerErrorWithContext(t *testing.T) {
	err := New(CategoryParse, CodeInvalidData, "test error").
		WithContext("file", "statement.csv").
		WithContext("line", 42).
		WithSuggestion("check the data format")

	if err.Context["file"] != "statement.csv" {
		t.Errorf("expected context file=statement.csv, got %v", err.Context["file"])
	}
	if err.Context["line"] != 42 {
		t.Errorf("expected context line=42, got %v", err.Context["line"])
	}
	if err.Suggestion != "check the data format" {
		t.Errorf("expected suggestion, got %s", err.Suggestion)
	}

	// suggestion appears in the error string
	expected := "test error (suggestion: check the data format)"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestSpecificErrorConstructors(t *testing.T) {
	t.Run("FileError", func(t *testing.T) {
		err := FileError(CodeFileNotFound, "/path/to/statement.csv", errors.New("io error"))
		if err.Category != CategoryFile {
			t.Errorf("expected file category, got %s", err.Category)
		}
		if err.Context["file_path"] != "/path/to/statement.csv" {
			t.Errorf("expected file_path in context, got %v", err.Context["file_path"])
		}
		if err.Suggestion == "" {
			t.Error("expected a suggestion to be set")
		}
	})

	t.Run("ParseError", func(t *testing.T) {
		err := ParseError(CodeInvalidData, "statement.csv", 10, "debit", "abc", nil)
		if err.Category != CategoryParse {
			t.Errorf("expected parse category, got %s", err.Category)
		}
		if err.Context["line"] != 10 {
			t.Errorf("expected line=10, got %v", err.Context["line"])
		}
		if err.Context["column"] != "debit" {
			t.Errorf("expected column=debit, got %v", err.Context["column"])
		}
	})

	t.Run("AnalysisError", func(t *testing.T) {
		err := AnalysisError(CodeSupersededParse, "load", nil)
		if err.Category != CategoryAnalysis {
			t.Errorf("expected analysis category, got %s", err.Category)
		}
		if err.Code != CodeSupersededParse {
			t.Errorf("expected superseded code, got %s", err.Code)
		}
	})
}

func TestErrorSummary(t *testing.T) {
	errs := []*AnalyzerError{
		FileError(CodeFileNotFound, "a.csv", nil),
		ParseError(CodeInvalidData, "b.csv", 3, "amount", "x", nil),
		ParseError(CodeInvalidData, "b.csv", 7, "date", "y", nil),
	}

	summary := NewErrorSummary(errs)

	if summary.Total != 3 {
		t.Errorf("expected 3 errors, got %d", summary.Total)
	}
	if summary.ByCategory[CategoryParse] != 2 {
		t.Errorf("expected 2 parse errors, got %d", summary.ByCategory[CategoryParse])
	}
	if !summary.HasCategory(CategoryFile) {
		t.Error("expected file category in summary")
	}
	if !summary.HasCode(CodeInvalidData) {
		t.Error("expected invalid_data code in summary")
	}
	if summary.HasCode(CodeEmptyLedger) {
		t.Error("did not expect empty_ledger code in summary")
	}

	// highest category exit code wins
	if summary.GetExitCode() != 3 {
		t.Errorf("expected exit code 3, got %d", summary.GetExitCode())
	}
}

func TestIsAnalyzerError(t *testing.T) {
	analyzerErr := New(CategoryFile, CodeFileNotFound, "nope")
	plainErr := errors.New("plain")

	if !IsAnalyzerError(analyzerErr) {
		t.Error("expected true for analyzer error")
	}
	if IsAnalyzerError(plainErr) {
		t.Error("expected false for plain error")
	}
}

func TestAsAnalyzerError(t *testing.T) {
	original := New(CategoryParse, CodeInvalidFormat, "bad format")

	extracted, ok := AsAnalyzerError(original)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if extracted.Code != CodeInvalidFormat {
		t.Errorf("expected invalid_format, got %s", extracted.Code)
	}

	if _, ok := AsAnalyzerError(errors.New("plain")); ok {
		t.Error("expected extraction to fail for plain error")
	}
}

func TestWrapIfNeeded(t *testing.T) {
	original := New(CategoryFile, CodeFileNotFound, "original")
	wrapped := WrapIfNeeded(original, CategoryInternal, CodeUnexpectedError, "new message")
	if wrapped != original {
		t.Error("expected analyzer errors to pass through unwrapped")
	}

	plain := errors.New("plain")
	wrapped = WrapIfNeeded(plain, CategoryInternal, CodeUnexpectedError, "wrapped")
	if wrapped.Category != CategoryInternal {
		t.Errorf("expected internal category, got %s", wrapped.Category)
	}
	if wrapped.Unwrap() != plain {
		t.Error("expected wrapped error to unwrap to the original")
	}
}
