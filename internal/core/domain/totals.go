package domain

import "github.com/shopspring/decimal"

// Totals is the aggregate view of one trial balance. It is recomputed from scratch on
// every request and never mutated afterwards.
type Totals struct {
	Cash                    decimal.Decimal `json:"cash"`
	Receivables             decimal.Decimal `json:"receivables"`
	Inventory               decimal.Decimal `json:"inventory"`
	PrepaidExpenses         decimal.Decimal `json:"prepaidExpenses"`
	CurrentAssets           decimal.Decimal `json:"currentAssets"`
	FixedAssets             decimal.Decimal `json:"fixedAssets"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	NetFixedAssets          decimal.Decimal `json:"netFixedAssets"`
	Assets                  decimal.Decimal `json:"assets"`
	// NetBookAssets is current assets plus NetFixedAssets. Assets stays gross.
	NetBookAssets decimal.Decimal `json:"netBookAssets"`

	Payables            decimal.Decimal `json:"payables"`
	AccruedExpenses     decimal.Decimal `json:"accruedExpenses"`
	ShortTermDebt       decimal.Decimal `json:"shortTermDebt"`
	LongTermDebt        decimal.Decimal `json:"longTermDebt"`
	CurrentLiabilities  decimal.Decimal `json:"currentLiabilities"`
	LongTermLiabilities decimal.Decimal `json:"longTermLiabilities"`
	Liabilities         decimal.Decimal `json:"liabilities"`

	Equity           decimal.Decimal `json:"equity"`
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`

	Revenue           decimal.Decimal `json:"revenue"`
	COGS              decimal.Decimal `json:"cogs"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	Expenses          decimal.Decimal `json:"expenses"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	NetIncome         decimal.Decimal `json:"netIncome"`
	Depreciation      decimal.Decimal `json:"depreciation"`
	Amortization      decimal.Decimal `json:"amortization"`

	Ratios Ratios `json:"ratios"`

	// Raw per-bucket sums before roll-up and before any estimate.
	Buckets map[Bucket]decimal.Decimal `json:"buckets"`
	// Estimated names the fields filled by the proportional fallback policy rather
	// than derived from the rows.
	Estimated []string `json:"estimated"`

	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	RowCount     int             `json:"rowCount"`
	Unclassified Unclassified    `json:"unclassified"`
}

// Ratios derived from Totals. A zero denominator yields a zero ratio.
type Ratios struct {
	CurrentRatio decimal.Decimal `json:"currentRatio"`
	QuickRatio   decimal.Decimal `json:"quickRatio"`
	DebtRatio    decimal.Decimal `json:"debtRatio"`
	ProfitMargin decimal.Decimal `json:"profitMargin"`
	ROA          decimal.Decimal `json:"roa"`
	ROE          decimal.Decimal `json:"roe"`
}

// Unclassified reports rows no rule matched. They are excluded from bucket sums.
type Unclassified struct {
	Count    int             `json:"count"`
	Amount   decimal.Decimal `json:"amount"`
	Accounts []string        `json:"accounts"`
}

// IsEstimated reports whether field was filled by the fallback policy.
func (t Totals) IsEstimated(field string) bool {
	for _, f := range t.Estimated {
		if f == field {
			return true
		}
	}
	return false
}

// Bucket returns the raw sum of b, zero when absent.
func (t Totals) Bucket(b Bucket) decimal.Decimal {
	if v, ok := t.Buckets[b]; ok {
		return v
	}
	return decimal.Zero
}
