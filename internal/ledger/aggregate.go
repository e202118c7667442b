package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"golang-statement-analyzer/internal/classify"
	"golang-statement-analyzer/internal/models"
	"golang-statement-analyzer/internal/normalize"
)

// TopMerchantLimit caps the merchant ranking length.
const TopMerchantLimit = 10

// orderedSums accumulates decimal totals per key while remembering
// first-insertion order. Map iteration order would scramble chart output,
// so every grouped series goes through this.
type orderedSums struct {
	keys []string
	sums map[string]decimal.Decimal
}

func newOrderedSums() *orderedSums {
	return &orderedSums{sums: make(map[string]decimal.Decimal)}
}

func (o *orderedSums) add(key string, amount decimal.Decimal) {
	if _, ok := o.sums[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.sums[key] = o.sums[key].Add(amount)
}

// ComputeMetrics derives the headline numbers for a transaction set.
// Averages divide the credit and debit totals by the count of distinct
// parseable months; with no parseable month both averages are zero.
func ComputeMetrics(txs []models.Transaction) models.Metrics {
	m := models.Metrics{
		TotalCredit: decimal.Zero,
		TotalDebit:  decimal.Zero,
		NetBalance:  decimal.Zero,
		AvgCredit:   decimal.Zero,
		AvgDebit:    decimal.Zero,
	}

	months := make(map[string]bool)
	for _, tx := range txs {
		m.TotalCredit = m.TotalCredit.Add(tx.Credit)
		m.TotalDebit = m.TotalDebit.Add(tx.Debit)
		if month, ok := normalize.MonthOf(tx.Date); ok {
			months[month] = true
		}
	}

	m.NetBalance = m.TotalCredit.Sub(m.TotalDebit)
	m.NumTransactions = len(txs)
	m.Months = len(months)

	if m.Months > 0 {
		divisor := decimal.NewFromInt(int64(m.Months))
		m.AvgCredit = m.TotalCredit.Div(divisor)
		m.AvgDebit = m.TotalDebit.Div(divisor)
	}

	return m
}

// ComputeAggregates derives the five chart series from a transaction set.
// The single-value series (category summary, monthly trend, top merchants,
// monthly category breakdown) read the resolved amount column; income vs
// expense always reads the credit and debit columns. Rows with unparsable
// dates are skipped by the month-keyed series but still count toward the
// category summary and merchant ranking.
func ComputeAggregates(txs []models.Transaction) models.Aggregates {
	col := models.ResolveAmountColumn(txs)

	categories := newOrderedSums()
	monthly := newOrderedSums()
	merchants := newOrderedSums()
	monthlyCredit := newOrderedSums()
	monthlyDebit := newOrderedSums()

	type monthCategories struct {
		month string
		sums  *orderedSums
	}
	var monthCategoryOrder []string
	monthCategory := make(map[string]*monthCategories)

	for _, tx := range txs {
		value := tx.ValueFor(col)

		category := tx.Category
		if category == "" {
			category = models.CategoryUnclassified
		}
		categories.add(category, value)

		if merchant := tx.Merchant(); merchant != "" {
			merchants.add(merchant, value.Abs())
		}

		month, ok := normalize.MonthOf(tx.Date)
		if !ok {
			continue
		}

		monthly.add(month, value)
		monthlyCredit.add(month, tx.Credit)
		monthlyDebit.add(month, tx.Debit)

		mc, ok := monthCategory[month]
		if !ok {
			mc = &monthCategories{month: month, sums: newOrderedSums()}
			monthCategory[month] = mc
			monthCategoryOrder = append(monthCategoryOrder, month)
		}
		mc.sums.add(category, value)
	}

	agg := models.Aggregates{}

	for _, key := range categories.keys {
		agg.CategorySummary = append(agg.CategorySummary, models.CategoryAmount{
			Category: key,
			Amount:   categories.sums[key],
		})
	}

	for _, key := range monthly.keys {
		agg.MonthlyTrend = append(agg.MonthlyTrend, models.MonthlyAmount{
			Month:  key,
			Amount: monthly.sums[key],
		})
	}

	for _, month := range monthCategoryOrder {
		mc := monthCategory[month]
		row := models.MonthlyCategoryRow{Month: month}
		for _, category := range mc.sums.keys {
			row.Categories = append(row.Categories, models.CategoryAmount{
				Category: category,
				Amount:   mc.sums.sums[category],
			})
		}
		agg.MonthlyCategory = append(agg.MonthlyCategory, row)
	}

	for _, key := range merchants.keys {
		agg.TopMerchants = append(agg.TopMerchants, models.MerchantAmount{
			Merchant: key,
			Amount:   merchants.sums[key],
		})
	}
	sort.SliceStable(agg.TopMerchants, func(i, j int) bool {
		return agg.TopMerchants[i].Amount.GreaterThan(agg.TopMerchants[j].Amount)
	})
	if len(agg.TopMerchants) > TopMerchantLimit {
		agg.TopMerchants = agg.TopMerchants[:TopMerchantLimit]
	}

	for _, key := range monthlyCredit.keys {
		agg.IncomeVsExpense = append(agg.IncomeVsExpense, models.MonthlyFlow{
			Month:  key,
			Credit: monthlyCredit.sums[key],
			Debit:  monthlyDebit.sums[key],
		})
	}

	return agg
}

// CoarseSummary rolls the per-category summary up into the six coarse
// buckets, preserving the fine summary's ordering of first appearance.
func CoarseSummary(summary []models.CategoryAmount) []models.CategoryAmount {
	sums := newOrderedSums()
	for _, row := range summary {
		sums.add(classify.CoarseCategoryOf(row.Category).String(), row.Amount)
	}

	out := make([]models.CategoryAmount, 0, len(sums.keys))
	for _, key := range sums.keys {
		out = append(out, models.CategoryAmount{Category: key, Amount: sums.sums[key]})
	}
	return out
}
