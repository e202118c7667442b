package classify

import (
	"testing"

	"golang-statement-analyzer/internal/models"
)

func TestCoarseCategoryOf(t *testing.T) {
	tests := []struct {
		category string
		expected models.CoarseCategory
	}{
		{"Salary", models.CoarseIncome},
		{"Income", models.CoarseIncome},
		{"Grocery", models.CoarseEssentials},
		{"Insurance", models.CoarseEssentials},
		{"Child Education", models.CoarseEssentials},
		{"Society Maintenance", models.CoarseEssentials},
		{"House Maintenance", models.CoarseEssentials},
		{"Cash Withdrawal", models.CoarseEssentials},
		{"Eat out", models.CoarseDiscretionary},
		{"Entertainment", models.CoarseDiscretionary},
		{"Clothing", models.CoarseDiscretionary},
		{"Parking", models.CoarseDiscretionary},
		{"Transport", models.CoarseDiscretionary},
		{"Self Care", models.CoarseDiscretionary},
		{"Internet/Subscriptions", models.CoarseDiscretionary},
		{"Learning & Development", models.CoarseDiscretionary},
		{"Gifts", models.CoarseDiscretionary},
		{"Investments", models.CoarseInvestments},
		{"PPF", models.CoarseInvestments},
		{"Fund Transfer", models.CoarseTransfers},
		{"Reimbursement", models.CoarseTransfers},
		{"Unclassified", models.CoarseOther},
		{"Medicals", models.CoarseOther},
		{"Credit Card", models.CoarseOther},
		{"", models.CoarseOther},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := CoarseCategoryOf(tt.category); got != tt.expected {
				t.Errorf("CoarseCategoryOf(%q) = %q, expected %q", tt.category, got, tt.expected)
			}
		})
	}
}

func TestCoarseCategoryIncomeRequiresExactMatch(t *testing.T) {
	// substring matching would misfile these; income must match exactly
	tests := []struct {
		category string
		expected models.CoarseCategory
	}{
		{"Rental Income", models.CoarseEssentials}, // "rent" substring wins in essentials
		{"Salary Advance", models.CoarseOther},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := CoarseCategoryOf(tt.category); got != tt.expected {
				t.Errorf("CoarseCategoryOf(%q) = %q, expected %q", tt.category, got, tt.expected)
			}
		})
	}
}

func TestCoarseCategoryCaseInsensitive(t *testing.T) {
	if got := CoarseCategoryOf("GROCERY"); got != models.CoarseEssentials {
		t.Errorf("CoarseCategoryOf(GROCERY) = %q, expected Essentials", got)
	}
	if got := CoarseCategoryOf("salary"); got != models.CoarseIncome {
		t.Errorf("CoarseCategoryOf(salary) = %q, expected Income", got)
	}
}
