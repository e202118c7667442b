package normalize

import (
	"testing"
	"time"
)

func TestParseDateSlashFormats(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"full year", "05/03/2024", "2024-03-05"},
		{"two digit year below pivot", "05/03/24", "2024-03-05"},
		{"two digit year above pivot", "05/03/99", "1999-03-05"},
		{"pivot boundary", "01/01/50", "1950-01-01"},
		{"just below pivot", "01/01/49", "2049-01-01"},
		{"single digit day and month", "5/3/2024", "2024-03-05"},
		{"surrounding whitespace", "  05/03/2024  ", "2024-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseDate(tt.input)
			if !ok {
				t.Fatalf("ParseDate(%q) failed, expected success", tt.input)
			}
			if got := parsed.Format("2006-01-02"); got != tt.expected {
				t.Errorf("ParseDate(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDateTwoDigitYearRoundTrip(t *testing.T) {
	short, ok := ParseDate("05/03/24")
	if !ok {
		t.Fatal("expected 05/03/24 to parse")
	}
	long, ok := ParseDate("05/03/2024")
	if !ok {
		t.Fatal("expected 05/03/2024 to parse")
	}
	if !short.Equal(long) {
		t.Errorf("two digit year mismatch: %v != %v", short, long)
	}
}

func TestParseDateGenericLayouts(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2024-03-05", "2024-03-05"},
		{"2024-03-05 10:30:00", "2024-03-05"},
		{"2024-03-05T10:30:00", "2024-03-05"},
		{"05-03-2024", "2024-03-05"},
		{"Mar 5, 2024", "2024-03-05"},
		{"March 5, 2024", "2024-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, ok := ParseDate(tt.input)
			if !ok {
				t.Fatalf("ParseDate(%q) failed, expected success", tt.input)
			}
			if got := parsed.Format("2006-01-02"); got != tt.expected {
				t.Errorf("ParseDate(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	inputs := []string{
		"",
		"not a date",
		"99/99/2024",
		"05/03",
		"05/03/2024/01",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, ok := ParseDate(input); ok {
				t.Errorf("ParseDate(%q) succeeded, expected failure", input)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got := MonthKey(date); got != "2024-03" {
		t.Errorf("MonthKey = %s, expected 2024-03", got)
	}
}

func TestMonthOf(t *testing.T) {
	month, ok := MonthOf("05/03/2024")
	if !ok {
		t.Fatal("expected month extraction to succeed")
	}
	if month != "2024-03" {
		t.Errorf("MonthOf = %s, expected 2024-03", month)
	}

	if _, ok := MonthOf("garbage"); ok {
		t.Error("expected month extraction to fail for unparsable date")
	}
}
