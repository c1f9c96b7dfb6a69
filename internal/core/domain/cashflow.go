package domain

import "github.com/shopspring/decimal"

// OperatingActivities holds the indirect-method reconciliation from net income.
// Working-capital changes carry their cash-flow sign.
type OperatingActivities struct {
	NetIncome         decimal.Decimal `json:"netIncome"`
	Depreciation      decimal.Decimal `json:"depreciation"`
	Amortization      decimal.Decimal `json:"amortization"`
	ReceivablesChange decimal.Decimal `json:"receivablesChange"`
	InventoryChange   decimal.Decimal `json:"inventoryChange"`
	PrepaidChange     decimal.Decimal `json:"prepaidChange"`
	PayablesChange    decimal.Decimal `json:"payablesChange"`
	AccruedChange     decimal.Decimal `json:"accruedChange"`
	Total             decimal.Decimal `json:"total"`
}

// InvestingActivities are derived from assumed purchase/disposal rates.
type InvestingActivities struct {
	FixedAssetsPurchases decimal.Decimal `json:"fixedAssetsPurchases"`
	FixedAssetsSales     decimal.Decimal `json:"fixedAssetsSales"`
	Investments          decimal.Decimal `json:"investments"`
	Total                decimal.Decimal `json:"total"`
}

// FinancingActivities are derived from assumed borrowing and payout rates.
type FinancingActivities struct {
	NewLoans        decimal.Decimal `json:"newLoans"`
	LoanRepayments  decimal.Decimal `json:"loanRepayments"`
	Dividends       decimal.Decimal `json:"dividends"`
	CapitalIncrease decimal.Decimal `json:"capitalIncrease"`
	Total           decimal.Decimal `json:"total"`
}

// CashFlowStatement is the indirect-method statement.
// CashEnding always equals CashBeginning + NetChange.
type CashFlowStatement struct {
	Operating     OperatingActivities `json:"operating"`
	Investing     InvestingActivities `json:"investing"`
	Financing     FinancingActivities `json:"financing"`
	NetChange     decimal.Decimal     `json:"netChange"`
	CashBeginning decimal.Decimal     `json:"cashBeginning"`
	CashEnding    decimal.Decimal     `json:"cashEnding"`
	// Assumed is true while working-capital deltas come from Assumptions rather than
	// a prior-period balance sheet.
	Assumed bool `json:"assumed"`
}
