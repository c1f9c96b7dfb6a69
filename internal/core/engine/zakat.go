package engine

import (
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/SscSPs/polaris_reporting/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var quarters = decimal.NewFromInt(4)

// ComputeZakat runs the asset-based and income-based methods over the raw rows and
// reconciles them. Both use their own taxonomies, independent of Aggregate.
func (e *Engine) ComputeZakat(rows []domain.LedgerRow, a domain.Assumptions) domain.ZakatResult {
	actual := e.assetBasedZakat(rows, a.Zakat.Rate)
	estimated := e.incomeBasedZakat(rows, a.Zakat.Rate)

	diff := actual.ZakatAmount.Sub(estimated.ZakatAmount)
	pct := decimal.Zero
	if estimated.ZakatAmount.IsPositive() {
		pct = accounting.Percent(diff, estimated.ZakatAmount)
	}

	return domain.ZakatResult{
		Actual:     actual,
		Estimated:  estimated,
		Difference: domain.ZakatDifference{Amount: diff, Percentage: pct},
	}
}

func (e *Engine) assetBasedZakat(rows []domain.LedgerRow, rate decimal.Decimal) domain.AssetBasedZakat {
	var assets domain.ZakatableAssets
	var liabs domain.DeductibleLiabilities

	for _, row := range rows {
		amount := row.AbsBalance()

		if b, ok := e.taxonomies.ZakatAssets.Classify(row); ok {
			switch b {
			case domain.ZakatCash:
				assets.Cash = assets.Cash.Add(amount)
			case domain.ZakatBank:
				assets.BankAccounts = assets.BankAccounts.Add(amount)
			case domain.ZakatReceivables:
				assets.Receivables = assets.Receivables.Add(amount)
			case domain.ZakatInventory:
				assets.Inventory = assets.Inventory.Add(amount)
			case domain.ZakatShortTermInvestments:
				assets.ShortTermInvestments = assets.ShortTermInvestments.Add(amount)
			case domain.ZakatPrepaidExpenses:
				assets.PrepaidExpenses = assets.PrepaidExpenses.Add(amount)
			}
		}

		if b, ok := e.taxonomies.ZakatLiabilities.Classify(row); ok {
			switch b {
			case domain.ZakatPayables:
				liabs.AccountsPayable = liabs.AccountsPayable.Add(amount)
			case domain.ZakatAccruedExpenses:
				liabs.AccruedExpenses = liabs.AccruedExpenses.Add(amount)
			case domain.ZakatShortTermLoans:
				liabs.ShortTermLoans = liabs.ShortTermLoans.Add(amount)
			case domain.ZakatProvisions:
				liabs.Provisions = liabs.Provisions.Add(amount)
			case domain.ZakatOtherCurrentLiabilities:
				liabs.OtherCurrentLiabilities = liabs.OtherCurrentLiabilities.Add(amount)
			}
		}
	}

	// Prepaid expenses are disclosed but not zakatable.
	assets.Total = accounting.Sum(assets.Cash, assets.BankAccounts, assets.Receivables,
		assets.Inventory, assets.ShortTermInvestments)
	liabs.Total = accounting.Sum(liabs.AccountsPayable, liabs.AccruedExpenses, liabs.ShortTermLoans,
		liabs.Provisions, liabs.OtherCurrentLiabilities)

	base := accounting.FloorZero(assets.Total.Sub(liabs.Total))
	amount := base.Mul(rate)

	return domain.AssetBasedZakat{
		ZakatableAssets:       assets,
		DeductibleLiabilities: liabs,
		ZakatBase:             base,
		ZakatAmount:           amount,
		ZakatRate:             rate,
		QuarterlyInstallment:  amount.Div(quarters),
		Method:                domain.ZakatMethodAssetBase,
	}
}

func (e *Engine) incomeBasedZakat(rows []domain.LedgerRow, rate decimal.Decimal) domain.IncomeBasedZakat {
	revenue, expenses := decimal.Zero, decimal.Zero
	for _, row := range rows {
		b, ok := e.taxonomies.Income.Classify(row)
		if !ok {
			continue
		}
		switch b {
		case domain.IncomeRevenue:
			revenue = revenue.Add(row.AbsBalance())
		case domain.IncomeExpense:
			expenses = expenses.Add(row.AbsBalance())
		}
	}

	net := revenue.Sub(expenses)
	base := accounting.FloorZero(net)
	return domain.IncomeBasedZakat{
		Revenue:     revenue,
		Expenses:    expenses,
		NetIncome:   net,
		ZakatBase:   base,
		ZakatAmount: base.Mul(rate),
		ZakatRate:   rate,
		Method:      domain.ZakatMethodIncome,
	}
}
