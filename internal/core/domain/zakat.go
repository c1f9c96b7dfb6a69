package domain

import "github.com/shopspring/decimal"

// Zakat calculation methods.
const (
	ZakatMethodAssetBase = "asset-base"
	ZakatMethodIncome    = "income"
)

// ZakatableAssets are the assets counted in the zakat base. PrepaidExpenses is tracked
// for disclosure but not part of Total.
type ZakatableAssets struct {
	Cash                 decimal.Decimal `json:"cash"`
	BankAccounts         decimal.Decimal `json:"bankAccounts"`
	Receivables          decimal.Decimal `json:"receivables"`
	Inventory            decimal.Decimal `json:"inventory"`
	ShortTermInvestments decimal.Decimal `json:"shortTermInvestments"`
	PrepaidExpenses      decimal.Decimal `json:"prepaidExpenses"`
	Total                decimal.Decimal `json:"total"`
}

// DeductibleLiabilities are the liabilities subtracted from zakatable assets.
type DeductibleLiabilities struct {
	AccountsPayable         decimal.Decimal `json:"accountsPayable"`
	AccruedExpenses         decimal.Decimal `json:"accruedExpenses"`
	ShortTermLoans          decimal.Decimal `json:"shortTermLoans"`
	Provisions              decimal.Decimal `json:"provisions"`
	OtherCurrentLiabilities decimal.Decimal `json:"otherCurrentLiabilities"`
	Total                   decimal.Decimal `json:"total"`
}

// AssetBasedZakat is the authoritative computation.
type AssetBasedZakat struct {
	ZakatableAssets       ZakatableAssets       `json:"zakatableAssets"`
	DeductibleLiabilities DeductibleLiabilities `json:"deductibleLiabilities"`
	// ZakatBase is floored at zero.
	ZakatBase            decimal.Decimal `json:"zakatBase"`
	ZakatAmount          decimal.Decimal `json:"zakatAmount"`
	ZakatRate            decimal.Decimal `json:"zakatRate"`
	QuarterlyInstallment decimal.Decimal `json:"quarterlyInstallment"`
	Method               string          `json:"method"`
}

// IncomeBasedZakat is the simplified estimate from revenue minus expenses.
type IncomeBasedZakat struct {
	Revenue     decimal.Decimal `json:"revenue"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetIncome   decimal.Decimal `json:"netIncome"`
	ZakatBase   decimal.Decimal `json:"zakatBase"`
	ZakatAmount decimal.Decimal `json:"zakatAmount"`
	ZakatRate   decimal.Decimal `json:"zakatRate"`
	Method      string          `json:"method"`
}

// ZakatDifference compares the two methods. Percentage is relative to the estimate and
// zero when the estimate is zero.
type ZakatDifference struct {
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ZakatResult bundles both computations and their reconciliation.
type ZakatResult struct {
	Actual     AssetBasedZakat  `json:"actual"`
	Estimated  IncomeBasedZakat `json:"estimated"`
	Difference ZakatDifference  `json:"difference"`
}
