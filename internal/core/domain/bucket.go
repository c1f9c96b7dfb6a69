package domain

// Bucket is one semantic category of the classification taxonomy.
type Bucket string

// General reporting buckets.
const (
	BucketCash                    Bucket = "cash"
	BucketBank                    Bucket = "bank"
	BucketReceivables             Bucket = "receivables"
	BucketInventory               Bucket = "inventory"
	BucketPrepaidExpenses         Bucket = "prepaidExpenses"
	BucketFixedAssets             Bucket = "fixedAssets"
	BucketAccumulatedDepreciation Bucket = "accumulatedDepreciation"
	BucketPayables                Bucket = "payables"
	BucketAccruedExpenses         Bucket = "accruedExpenses"
	BucketShortTermDebt           Bucket = "shortTermDebt"
	BucketLongTermDebt            Bucket = "longTermDebt"
	BucketEquity                  Bucket = "equity"
	BucketRetainedEarnings        Bucket = "retainedEarnings"
	BucketRevenue                 Bucket = "revenue"
	BucketCOGS                    Bucket = "cogs"
	BucketOperatingExpenses       Bucket = "operatingExpenses"
	BucketCurrentAssets           Bucket = "currentAssets"
	BucketCurrentLiabilities      Bucket = "currentLiabilities"
	BucketLongTermLiabilities     Bucket = "longTermLiabilities"
)

// Zakat-specific buckets. None of them appear in the general taxonomy.
const (
	ZakatCash                    Bucket = "zakat.cash"
	ZakatBank                    Bucket = "zakat.bank"
	ZakatReceivables             Bucket = "zakat.receivables"
	ZakatInventory               Bucket = "zakat.inventory"
	ZakatShortTermInvestments    Bucket = "zakat.shortTermInvestments"
	ZakatPrepaidExpenses         Bucket = "zakat.prepaidExpenses"
	ZakatPayables                Bucket = "zakat.payables"
	ZakatAccruedExpenses         Bucket = "zakat.accruedExpenses"
	ZakatShortTermLoans          Bucket = "zakat.shortTermLoans"
	ZakatProvisions              Bucket = "zakat.provisions"
	ZakatOtherCurrentLiabilities Bucket = "zakat.otherCurrentLiabilities"
	IncomeRevenue                Bucket = "income.revenue"
	IncomeExpense                Bucket = "income.expense"
)

// Non-cash markers used by the cash-flow engine on top of the general classification.
const (
	MarkerDepreciation Bucket = "noncash.depreciation"
	MarkerAmortization Bucket = "noncash.amortization"
)

// GeneralBuckets lists the general taxonomy in a stable order.
var GeneralBuckets = []Bucket{
	BucketCash, BucketBank, BucketReceivables, BucketInventory, BucketPrepaidExpenses,
	BucketFixedAssets, BucketAccumulatedDepreciation, BucketPayables, BucketAccruedExpenses,
	BucketShortTermDebt, BucketLongTermDebt, BucketEquity, BucketRetainedEarnings,
	BucketRevenue, BucketCOGS, BucketOperatingExpenses, BucketCurrentAssets,
	BucketCurrentLiabilities, BucketLongTermLiabilities,
}

// rollUp maps detail buckets to the parent bucket they are summed into.
var rollUp = map[Bucket]Bucket{
	BucketCash:             BucketCurrentAssets,
	BucketBank:             BucketCurrentAssets,
	BucketReceivables:      BucketCurrentAssets,
	BucketInventory:        BucketCurrentAssets,
	BucketPrepaidExpenses:  BucketCurrentAssets,
	BucketPayables:         BucketCurrentLiabilities,
	BucketAccruedExpenses:  BucketCurrentLiabilities,
	BucketShortTermDebt:    BucketCurrentLiabilities,
	BucketLongTermDebt:     BucketLongTermLiabilities,
	BucketRetainedEarnings: BucketEquity,
}

// Parent returns the bucket b rolls up into, or b itself for top-level buckets.
func (b Bucket) Parent() Bucket {
	if p, ok := rollUp[b]; ok {
		return p
	}
	return b
}

// IsValid reports whether b is a known bucket of any taxonomy.
func (b Bucket) IsValid() bool {
	_, ok := knownBuckets[b]
	return ok
}

var knownBuckets = func() map[Bucket]struct{} {
	m := make(map[Bucket]struct{})
	for _, b := range GeneralBuckets {
		m[b] = struct{}{}
	}
	for _, b := range []Bucket{
		ZakatCash, ZakatBank, ZakatReceivables, ZakatInventory, ZakatShortTermInvestments,
		ZakatPrepaidExpenses, ZakatPayables, ZakatAccruedExpenses, ZakatShortTermLoans,
		ZakatProvisions, ZakatOtherCurrentLiabilities, IncomeRevenue, IncomeExpense,
		MarkerDepreciation, MarkerAmortization,
	} {
		m[b] = struct{}{}
	}
	return m
}()
