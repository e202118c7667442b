package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"golang-statement-analyzer/internal/models"
)

// smallDebitCeiling bounds the small-purchase fallback: debits strictly
// between zero and this value with no prior category default to Grocery.
var smallDebitCeiling = decimal.NewFromInt(200)

// Classifier matches narrations against an ordered rule list. The zero
// value is not usable; construct with NewClassifier.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a classifier over the built-in rule table.
func NewClassifier() *Classifier {
	return &Classifier{rules: BuiltinRules()}
}

// NewClassifierWithRules returns a classifier over an explicit rule list.
// Callers own the ordering; the first matching rule wins.
func NewClassifierWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify determines a category for a transaction from its cleaned
// narration, debit magnitude and any category already assigned upstream.
//
// The narration is lowercased and scanned against the rules in order; the
// first match decides. With no match, a small debit (between 0 and 200
// exclusive) on a transaction with no prior category falls back to Grocery.
// Everything else is Unclassified. Classify never echoes existingCategory
// back; a prior category only suppresses the small-debit fallback.
func (c *Classifier) Classify(narration string, debit decimal.Decimal, existingCategory string) string {
	lowered := strings.ToLower(narration)
	for _, rule := range c.rules {
		if rule.Pattern.MatchString(lowered) {
			return rule.Category
		}
	}

	if debit.IsPositive() && debit.LessThan(smallDebitCeiling) && models.IsCategoryUnassigned(existingCategory) {
		return CategoryGrocery
	}

	return models.CategoryUnclassified
}

// ClassifyTransaction fills in the transaction's category when it has none.
// Transactions that arrive with a category keep it untouched.
func (c *Classifier) ClassifyTransaction(tx models.Transaction) models.Transaction {
	if !models.IsCategoryUnassigned(tx.Category) {
		return tx
	}
	tx.Category = c.Classify(tx.Narration, tx.Debit, tx.Category)
	return tx
}
