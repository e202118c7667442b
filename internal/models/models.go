// Package models defines the canonical data types shared by the statement
// analysis engine: raw input rows, normalized transactions, filter state,
// and the aggregate output records consumed by the presentation layer.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category sentinels. CategoryUnclassified is the explicit default assigned
// by the engine; CategoryUncategorized appears in some source files and is
// treated as equally unassigned.
const (
	CategoryUnclassified  = "Unclassified"
	CategoryUncategorized = "Uncategorized"
)

// IsCategoryUnassigned reports whether a category value counts as "no
// category yet" for classification purposes.
func IsCategoryUnassigned(category string) bool {
	switch strings.TrimSpace(category) {
	case "", CategoryUncategorized, CategoryUnclassified:
		return true
	default:
		return false
	}
}

// RawRow is an ordered key/value record produced by CSV parsing. Column
// names are not standardized across banks, so lookups go through explicit
// alias lists rather than fixed struct fields. Insertion order of keys is
// preserved so passthrough fields keep their original column order.
type RawRow struct {
	keys   []string
	values map[string]string
}

// NewRawRow creates an empty RawRow
func NewRawRow() RawRow {
	return RawRow{
		keys:   make([]string, 0),
		values: make(map[string]string),
	}
}

// Set stores a value under the given column name, preserving first-set order
func (r *RawRow) Set(key, value string) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under the exact column name
func (r RawRow) Get(key string) (string, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Lookup returns the first non-empty value found under any of the given
// column names, in order. The alias order is a priority list.
func (r RawRow) Lookup(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		if value, ok := r.values[alias]; ok && strings.TrimSpace(value) != "" {
			return value, true
		}
	}
	return "", false
}

// Keys returns the column names in insertion order
func (r RawRow) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of columns in the row
func (r RawRow) Len() int {
	return len(r.keys)
}

// Transaction is the canonical, engine-owned transaction record. Every
// Transaction has non-empty-safe Date, Narration, Category, Credit and Debit
// after normalization (blank/zero when the source row lacked them).
// Transactions are immutable after creation; filtering and aggregation
// always produce new slices.
type Transaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	Narration   string          `json:"narration"`
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	Amount      decimal.Decimal `json:"amount,omitempty"`
	HasAmount   bool            `json:"-"`
	Category    string          `json:"category"`

	// Extra holds unrecognized source columns, preserved but never
	// interpreted. ExtraKeys keeps their original order.
	Extra     map[string]string `json:"-"`
	ExtraKeys []string          `json:"-"`
}

// Merchant returns the grouping key used for merchant rankings:
// the original description, falling back to the cleaned narration.
func (t Transaction) Merchant() string {
	if t.Description != "" {
		return t.Description
	}
	return t.Narration
}

// SearchText returns the text the free-text filter matches against.
// Same description-then-narration fallback as Merchant.
func (t Transaction) SearchText() string {
	if t.Description != "" {
		return t.Description
	}
	return t.Narration
}

// String returns a string representation of the Transaction
func (t Transaction) String() string {
	return fmt.Sprintf("Transaction{Date: %s, Narration: %s, Credit: %s, Debit: %s, Category: %s}",
		t.Date, t.Narration, t.Credit.String(), t.Debit.String(), t.Category)
}

// AmountColumn selects which monetary column drives single-value
// aggregations (category summary, monthly trend, top merchants).
type AmountColumn string

const (
	// AmountColumnAmount uses the signed net amount field
	AmountColumnAmount AmountColumn = "amount"
	// AmountColumnDebit uses the debit magnitude field
	AmountColumnDebit AmountColumn = "debit"
)

// ResolveAmountColumn picks the amount column for a transaction set: the
// signed amount if the first record carries one, otherwise the debit column.
func ResolveAmountColumn(txs []Transaction) AmountColumn {
	if len(txs) > 0 && txs[0].HasAmount {
		return AmountColumnAmount
	}
	return AmountColumnDebit
}

// ValueFor returns the transaction's value under the given amount column
func (t Transaction) ValueFor(col AmountColumn) decimal.Decimal {
	if col == AmountColumnAmount {
		return t.Amount
	}
	return t.Debit
}

// FilterState holds the ephemeral filter inputs that fully determine a
// filtered view of the ledger. Empty fields are no-ops; active fields
// combine with logical AND.
type FilterState struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Category  string `json:"category"`
	Search    string `json:"search"`
}

// IsZero reports whether no filter is active
func (f FilterState) IsZero() bool {
	return f.StartDate == "" && f.EndDate == "" && f.Category == "" && f.Search == ""
}

// CoarseCategory is one of the six fixed top-level buckets used for
// high-level visualization. It is derived from the fine category on demand
// and never stored on the Transaction.
type CoarseCategory string

const (
	CoarseIncome        CoarseCategory = "Income"
	CoarseEssentials    CoarseCategory = "Essentials"
	CoarseDiscretionary CoarseCategory = "Discretionary"
	CoarseInvestments   CoarseCategory = "Investments/Savings"
	CoarseTransfers     CoarseCategory = "Transfers"
	CoarseOther         CoarseCategory = "Other"
)

// String returns the string representation of the CoarseCategory
func (c CoarseCategory) String() string {
	return string(c)
}

// IsValid checks if the coarse category is one of the six buckets
func (c CoarseCategory) IsValid() bool {
	switch c {
	case CoarseIncome, CoarseEssentials, CoarseDiscretionary,
		CoarseInvestments, CoarseTransfers, CoarseOther:
		return true
	default:
		return false
	}
}

// Metrics holds the headline summary numbers for a (possibly filtered)
// transaction set. Averages are per distinct calendar month present in the
// set, zero when no month is derivable.
type Metrics struct {
	TotalCredit     decimal.Decimal `json:"total_credit"`
	TotalDebit      decimal.Decimal `json:"total_debit"`
	NetBalance      decimal.Decimal `json:"net_balance"`
	NumTransactions int             `json:"num_transactions"`
	AvgCredit       decimal.Decimal `json:"avg_credit"`
	AvgDebit        decimal.Decimal `json:"avg_debit"`
	Months          int             `json:"months"`
}

// CategoryAmount is one row of the per-category summary
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlyAmount is one row of the monthly trend series, keyed by YYYY-MM
type MonthlyAmount struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// MerchantAmount is one row of the top-merchants ranking
type MerchantAmount struct {
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlyFlow is one row of the credit-vs-debit time series
type MonthlyFlow struct {
	Month  string          `json:"month"`
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
}

// MonthlyCategoryRow is one month of the month-by-category breakdown.
// Categories preserve first-seen order within the month.
type MonthlyCategoryRow struct {
	Month      string           `json:"month"`
	Categories []CategoryAmount `json:"-"`
}

// MarshalJSON emits the month plus one dynamic key per category, matching
// the chart consumer's expected shape: {"month":"2024-01","Grocery":123,...}
func (m MonthlyCategoryRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	monthKey, err := json.Marshal("month")
	if err != nil {
		return nil, err
	}
	monthValue, err := json.Marshal(m.Month)
	if err != nil {
		return nil, err
	}
	buf.Write(monthKey)
	buf.WriteByte(':')
	buf.Write(monthValue)

	for _, ca := range m.Categories {
		key, err := json.Marshal(ca.Category)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(ca.Amount)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Aggregates bundles the five derived series computed over a transaction set
type Aggregates struct {
	CategorySummary []CategoryAmount     `json:"category_summary"`
	MonthlyTrend    []MonthlyAmount      `json:"monthly_trend"`
	MonthlyCategory []MonthlyCategoryRow `json:"monthly_category"`
	TopMerchants    []MerchantAmount     `json:"top_merchants"`
	IncomeVsExpense []MonthlyFlow        `json:"income_vs_expense"`
}

// Utility functions for type conversion

// ParseDecimalFromString parses a decimal value from string with validation
func ParseDecimalFromString(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount string cannot be empty")
	}

	// Remove common currency symbols and thousand separators
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal format '%s': %w", s, err)
	}

	return d, nil
}

// DecimalOrZero parses a decimal value, degrading to zero on any failure.
// Normalization never rejects a row for a malformed amount.
func DecimalOrZero(s string) decimal.Decimal {
	d, err := ParseDecimalFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
