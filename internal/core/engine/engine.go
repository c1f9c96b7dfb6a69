// Package engine turns a trial balance into totals, ratios, zakat and cash-flow
// statements. Every method is a pure function of its arguments; the Engine only holds
// the read-only classifier configuration.
package engine

import (
	"github.com/SscSPs/polaris_reporting/internal/core/classify"
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Engine evaluates reports against one taxonomy set.
type Engine struct {
	taxonomies *classify.Set
}

// New builds an Engine. A nil set uses the embedded default taxonomies.
func New(set *classify.Set) *Engine {
	if set == nil {
		set = classify.DefaultSet()
	}
	return &Engine{taxonomies: set}
}

// Classify exposes the general classification of a single row.
func (e *Engine) Classify(row domain.LedgerRow) (domain.Bucket, bool) {
	return e.taxonomies.General.Classify(row)
}

// nonCashCharge returns the depreciation or amortization marker for an expense row.
func (e *Engine) nonCashCharge(row domain.LedgerRow, bucket domain.Bucket) (domain.Bucket, bool) {
	if bucket != domain.BucketCOGS && bucket != domain.BucketOperatingExpenses {
		return "", false
	}
	return e.taxonomies.NonCash.Classify(row)
}

// nonCashCharges sums depreciation and amortization booked as expenses.
func (e *Engine) nonCashCharges(rows []domain.LedgerRow) (depreciation, amortization decimal.Decimal) {
	for _, row := range rows {
		b, ok := e.taxonomies.General.Classify(row)
		if !ok {
			continue
		}
		switch m, _ := e.nonCashCharge(row, b); m {
		case domain.MarkerDepreciation:
			depreciation = depreciation.Add(row.AbsBalance())
		case domain.MarkerAmortization:
			amortization = amortization.Add(row.AbsBalance())
		}
	}
	return depreciation, amortization
}

// cashOnHand sums the cash and bank buckets of the raw rows.
func (e *Engine) cashOnHand(rows []domain.LedgerRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		if b, ok := e.taxonomies.General.Classify(row); ok && (b == domain.BucketCash || b == domain.BucketBank) {
			total = total.Add(row.AbsBalance())
		}
	}
	return total
}
