// Package ledger holds the loaded transaction set and derives filtered
// views, summary metrics and aggregate series from it. All operations are
// pure: they read the input slice and return fresh values, so a ledger can
// be shared across concurrent readers without locking.
package ledger

import (
	"strings"

	"golang-statement-analyzer/internal/models"
	"golang-statement-analyzer/internal/normalize"
)

// Filter returns the transactions satisfying every active field of the
// filter state. Empty fields are no-ops and an all-empty state returns a
// copy of the input. Date bounds compare parsed dates; a transaction whose
// date cannot be parsed fails any active date bound. The category filter is
// exact equality and search is a case-insensitive substring match on the
// transaction's search text.
func Filter(txs []models.Transaction, state models.FilterState) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))

	startDate, hasStart := normalize.ParseDate(state.StartDate)
	endDate, hasEnd := normalize.ParseDate(state.EndDate)
	search := strings.ToLower(strings.TrimSpace(state.Search))

	for _, tx := range txs {
		if hasStart || hasEnd {
			txDate, ok := normalize.ParseDate(tx.Date)
			if !ok {
				continue
			}
			if hasStart && txDate.Before(startDate) {
				continue
			}
			if hasEnd && txDate.After(endDate) {
				continue
			}
		}

		if state.Category != "" && tx.Category != state.Category {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(tx.SearchText()), search) {
			continue
		}

		out = append(out, tx)
	}

	return out
}

// Categories returns the distinct categories present in the transaction
// set, in first-appearance order. Transactions without a category count
// under the Unclassified sentinel.
func Categories(txs []models.Transaction) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tx := range txs {
		category := tx.Category
		if category == "" {
			category = models.CategoryUnclassified
		}
		if !seen[category] {
			seen[category] = true
			out = append(out, category)
		}
	}
	return out
}
