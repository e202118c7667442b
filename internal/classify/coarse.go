package classify

import (
	"strings"

	"golang-statement-analyzer/internal/models"
)

// Coarse bucket membership. Matching is substring-based on the lowercased
// fine category, except income which requires exact equality so that
// categories merely containing "income" do not leak into it.
var (
	incomeExact = []string{"salary", "income"}

	essentialsTerms = []string{
		"grocery", "essentials", "insurance", "child education", "education",
		"society maintenance", "house maintenance", "rent", "utility",
		"atm", "cash withdrawal",
	}

	discretionaryTerms = []string{
		"eat out", "entertainment", "clothing", "parking", "transport",
		"self care", "internet/subscriptions", "learning & development",
		"gift", "book", "bookmyshow", "travel", "shopping",
	}

	investmentTerms = []string{"investments", "investment", "ppf", "fd", "savings"}

	transferTerms = []string{"fund transfer", "transfer", "reimbursement"}
)

// CoarseCategoryOf maps a fine-grained category to one of the six coarse
// buckets. Buckets are checked in priority order (income, essentials,
// discretionary, investments, transfers) so a category matching several
// term lists lands in the highest-priority one. Unknown categories map
// to Other.
func CoarseCategoryOf(category string) models.CoarseCategory {
	lowered := strings.ToLower(category)

	for _, term := range incomeExact {
		if lowered == term {
			return models.CoarseIncome
		}
	}
	if containsAny(lowered, essentialsTerms) {
		return models.CoarseEssentials
	}
	if containsAny(lowered, discretionaryTerms) {
		return models.CoarseDiscretionary
	}
	if containsAny(lowered, investmentTerms) {
		return models.CoarseInvestments
	}
	if containsAny(lowered, transferTerms) {
		return models.CoarseTransfers
	}
	return models.CoarseOther
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
