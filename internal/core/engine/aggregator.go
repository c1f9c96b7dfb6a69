package engine

import (
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/SscSPs/polaris_reporting/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// maxUnclassifiedListed caps the account names echoed back in the diagnostic.
const maxUnclassifiedListed = 100

// Aggregate classifies every row with the general taxonomy and derives Totals.
//
// Bucket sums use absolute balances. Unmatched rows are left out of every bucket but
// still count towards TotalDebit/TotalCredit and the Unclassified diagnostic. Detail
// fields that come out zero while their parent is not are estimated from the parent
// using a.Fallback and named in Totals.Estimated.
func (e *Engine) Aggregate(rows []domain.LedgerRow, a domain.Assumptions) domain.Totals {
	t := domain.Totals{
		Buckets:   make(map[domain.Bucket]decimal.Decimal),
		Estimated: []string{},
		RowCount:  len(rows),
		Unclassified: domain.Unclassified{
			Accounts: []string{},
		},
	}

	for _, row := range rows {
		t.TotalDebit = t.TotalDebit.Add(row.Debit)
		t.TotalCredit = t.TotalCredit.Add(row.Credit)

		amount := row.AbsBalance()
		b, ok := e.taxonomies.General.Classify(row)
		if !ok {
			t.Unclassified.Count++
			t.Unclassified.Amount = t.Unclassified.Amount.Add(amount)
			if len(t.Unclassified.Accounts) < maxUnclassifiedListed {
				t.Unclassified.Accounts = append(t.Unclassified.Accounts, rowLabel(row))
			}
			continue
		}
		t.Buckets[b] = t.Buckets[b].Add(amount)

		switch m, _ := e.nonCashCharge(row, b); m {
		case domain.MarkerDepreciation:
			t.Depreciation = t.Depreciation.Add(amount)
		case domain.MarkerAmortization:
			t.Amortization = t.Amortization.Add(amount)
		}
	}

	parents := make(map[domain.Bucket]decimal.Decimal)
	for b, v := range t.Buckets {
		p := b.Parent()
		parents[p] = parents[p].Add(v)
	}

	t.Cash = t.Bucket(domain.BucketCash).Add(t.Bucket(domain.BucketBank))
	t.Receivables = t.Bucket(domain.BucketReceivables)
	t.Inventory = t.Bucket(domain.BucketInventory)
	t.PrepaidExpenses = t.Bucket(domain.BucketPrepaidExpenses)
	t.CurrentAssets = parents[domain.BucketCurrentAssets]
	t.FixedAssets = t.Bucket(domain.BucketFixedAssets)
	t.AccumulatedDepreciation = t.Bucket(domain.BucketAccumulatedDepreciation)
	t.NetFixedAssets = t.FixedAssets.Sub(t.AccumulatedDepreciation)
	t.Assets = t.CurrentAssets.Add(t.FixedAssets)
	t.NetBookAssets = t.CurrentAssets.Add(t.NetFixedAssets)

	t.Payables = t.Bucket(domain.BucketPayables)
	t.AccruedExpenses = t.Bucket(domain.BucketAccruedExpenses)
	t.ShortTermDebt = t.Bucket(domain.BucketShortTermDebt)
	t.LongTermDebt = t.Bucket(domain.BucketLongTermDebt)
	t.CurrentLiabilities = parents[domain.BucketCurrentLiabilities]
	t.LongTermLiabilities = parents[domain.BucketLongTermLiabilities]
	t.Liabilities = t.CurrentLiabilities.Add(t.LongTermLiabilities)

	t.RetainedEarnings = t.Bucket(domain.BucketRetainedEarnings)
	t.Equity = parents[domain.BucketEquity]

	t.Revenue = t.Bucket(domain.BucketRevenue)
	t.COGS = t.Bucket(domain.BucketCOGS)
	t.OperatingExpenses = t.Bucket(domain.BucketOperatingExpenses)
	t.Expenses = t.COGS.Add(t.OperatingExpenses)
	t.GrossProfit = t.Revenue.Sub(t.COGS)
	t.NetIncome = t.GrossProfit.Sub(t.OperatingExpenses)

	applyFallback(&t, a.Fallback)
	t.Ratios = ComputeRatios(t)
	return t
}

// applyFallback fills empty detail fields from their parent totals. Parents are never
// touched, so assets and liabilities stay exact.
func applyFallback(t *domain.Totals, f domain.FallbackAssumptions) {
	estimate := func(field string, v *decimal.Decimal, parent, share decimal.Decimal) {
		if !v.IsZero() || parent.IsZero() {
			return
		}
		*v = parent.Mul(share)
		t.Estimated = append(t.Estimated, field)
	}
	estimate("cash", &t.Cash, t.CurrentAssets, f.CashShareOfCurrentAssets)
	estimate("receivables", &t.Receivables, t.CurrentAssets, f.ReceivablesShareOfCurrentAssets)
	estimate("inventory", &t.Inventory, t.CurrentAssets, f.InventoryShareOfCurrentAssets)
	estimate("payables", &t.Payables, t.CurrentLiabilities, f.PayablesShareOfCurrentLiabs)
}

// ComputeRatios derives the standard ratios. Every ratio with a zero denominator is zero.
func ComputeRatios(t domain.Totals) domain.Ratios {
	return domain.Ratios{
		CurrentRatio: accounting.SafeDiv(t.CurrentAssets, t.CurrentLiabilities),
		QuickRatio:   accounting.SafeDiv(t.CurrentAssets.Sub(t.Inventory), t.CurrentLiabilities),
		DebtRatio:    accounting.SafeDiv(t.Liabilities, t.Assets),
		ProfitMargin: accounting.Percent(t.NetIncome, t.Revenue),
		ROA:          accounting.Percent(t.NetIncome, t.Assets),
		ROE:          accounting.Percent(t.NetIncome, t.Equity),
	}
}

func rowLabel(row domain.LedgerRow) string {
	if row.AccountName != "" {
		return row.AccountName
	}
	return row.Category
}
