// Package normalize reconciles heterogeneous bank statement rows into the
// canonical transaction shape. It owns the column alias lists, the narration
// cleaning pipeline, and date parsing; classification lives in the classify
// package and is applied by the engine on top of the normalized shell.
package normalize

import (
	"regexp"
	"strings"

	"golang-statement-analyzer/internal/models"
)

// Alias priority lists for the canonical columns. Order matters: the first
// spelling with a non-empty value wins. Banks disagree on header casing and
// spacing, so every observed variant is enumerated explicitly rather than
// probed dynamically.
var (
	CreditAliases = []string{"credit", "Credit", "Credit Amount", "credit amount", "CreditAmount", "CREDIT"}
	DebitAliases  = []string{"debit", "Debit", "Debit Amount", "debit amount", "DebitAmount", "DEBIT"}
	AmountAliases = []string{"amount", "Amount", "AMOUNT"}
	DateAliases   = []string{"date", "Date", "DATE", "txn date", "Txn Date", "value date", "Value Date", "transaction date", "Transaction Date"}

	NarrationAliases   = []string{"narration", "Narration", "NARRATION", "description", "Description", "DESCRIPTION"}
	DescriptionAliases = []string{"description", "Description", "DESCRIPTION"}
	CategoryAliases    = []string{"category", "Category", "CATEGORY"}
)

// Narration cleaning steps, applied in order. Each operates on the output of
// the previous step.
var (
	digitsPattern     = regexp.MustCompile(`[0-9]+`)
	nonLetterPattern  = regexp.MustCompile(`[^a-zA-Z\s]`)
	noiseTokenPattern = regexp.MustCompile(`(?i)upi|okicici|gpay`)
)

// CleanNarration strips noise from a free-text narration prior to
// classification: digits are removed, non-letter characters become spaces,
// known payment-rail tokens are dropped case-insensitively, and the result
// is trimmed. The output contains only letters and internal whitespace;
// empty input yields empty output.
func CleanNarration(s string) string {
	s = digitsPattern.ReplaceAllString(s, "")
	s = nonLetterPattern.ReplaceAllString(s, " ")
	s = noiseTokenPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// canonicalKeys is the set of column names consumed by NormalizeRow.
// Anything outside it passes through untouched on the output record.
var canonicalKeys = buildCanonicalKeySet()

func buildCanonicalKeySet() map[string]bool {
	set := make(map[string]bool)
	for _, group := range [][]string{
		CreditAliases, DebitAliases, AmountAliases, DateAliases,
		NarrationAliases, DescriptionAliases, CategoryAliases,
	} {
		for _, key := range group {
			set[key] = true
		}
	}
	return set
}

// NormalizeRow converts one raw row into a best-effort canonical Transaction
// shell. Missing optional fields degrade to defaults (zero amounts, empty
// strings); NormalizeRow never fails. Only already-columnar credit, debit
// and amount shapes are handled here; reconciling a lone signed amount into
// credit/debit is the column-mapping collaborator's job.
func NormalizeRow(row models.RawRow) models.Transaction {
	tx := models.Transaction{}

	if date, ok := row.Lookup(DateAliases...); ok {
		tx.Date = strings.TrimSpace(date)
	}

	if desc, ok := row.Lookup(DescriptionAliases...); ok {
		tx.Description = strings.TrimSpace(desc)
	}

	if narr, ok := row.Lookup(NarrationAliases...); ok {
		tx.Narration = CleanNarration(narr)
	}

	if credit, ok := row.Lookup(CreditAliases...); ok {
		tx.Credit = models.DecimalOrZero(credit)
	}

	if debit, ok := row.Lookup(DebitAliases...); ok {
		tx.Debit = models.DecimalOrZero(debit)
	}

	if amount, ok := row.Lookup(AmountAliases...); ok {
		if parsed, err := models.ParseDecimalFromString(amount); err == nil {
			tx.Amount = parsed
			tx.HasAmount = true
		}
	}

	if category, ok := row.Lookup(CategoryAliases...); ok {
		tx.Category = strings.TrimSpace(category)
	}

	// Non-destructive merge: unrecognized columns ride along in original order
	for _, key := range row.Keys() {
		if canonicalKeys[key] {
			continue
		}
		value, _ := row.Get(key)
		if tx.Extra == nil {
			tx.Extra = make(map[string]string)
		}
		tx.Extra[key] = value
		tx.ExtraKeys = append(tx.ExtraKeys, key)
	}

	return tx
}
