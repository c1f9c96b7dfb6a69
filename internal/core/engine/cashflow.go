package engine

import (
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/SscSPs/polaris_reporting/internal/utils/accounting"
)

// BuildCashFlow derives an indirect-method statement. Net income and the balance
// sheet buckets come from t; non-cash charges and opening cash are read from rows.
//
// No prior-period snapshot exists, so every working-capital change and every investing
// and financing flow is a share of the current balance taken from a.CashFlow, and the
// statement is marked Assumed. Detail balances are the raw bucket sums, never the
// fallback estimates.
func (e *Engine) BuildCashFlow(t domain.Totals, rows []domain.LedgerRow, a domain.Assumptions) domain.CashFlowStatement {
	cf := a.CashFlow
	depreciation, amortization := e.nonCashCharges(rows)

	op := domain.OperatingActivities{
		NetIncome:         t.NetIncome,
		Depreciation:      depreciation,
		Amortization:      amortization,
		ReceivablesChange: t.Bucket(domain.BucketReceivables).Mul(cf.ReceivablesGrowth).Neg(),
		InventoryChange:   t.Bucket(domain.BucketInventory).Mul(cf.InventoryGrowth).Neg(),
		PrepaidChange:     t.Bucket(domain.BucketPrepaidExpenses).Mul(cf.PrepaidGrowth).Neg(),
		PayablesChange:    t.Bucket(domain.BucketPayables).Mul(cf.PayablesGrowth),
		AccruedChange:     t.Bucket(domain.BucketAccruedExpenses).Mul(cf.AccruedGrowth),
	}
	op.Total = accounting.Sum(op.NetIncome, op.Depreciation, op.Amortization,
		op.ReceivablesChange, op.InventoryChange, op.PrepaidChange, op.PayablesChange, op.AccruedChange)

	fixed := t.Bucket(domain.BucketFixedAssets)
	inv := domain.InvestingActivities{
		FixedAssetsPurchases: fixed.Mul(cf.CapexRate).Neg(),
		FixedAssetsSales:     fixed.Mul(cf.DisposalRate),
		Investments:          cf.Investments,
	}
	inv.Total = accounting.Sum(inv.FixedAssetsPurchases, inv.FixedAssetsSales, inv.Investments)

	debt := t.Bucket(domain.BucketLongTermDebt)
	fin := domain.FinancingActivities{
		NewLoans:        debt.Mul(cf.NewLoanRate),
		LoanRepayments:  debt.Mul(cf.RepaymentRate).Neg(),
		Dividends:       t.NetIncome.Mul(cf.DividendPayout).Neg(),
		CapitalIncrease: cf.CapitalIncrease,
	}
	fin.Total = accounting.Sum(fin.NewLoans, fin.LoanRepayments, fin.Dividends, fin.CapitalIncrease)

	net := accounting.Sum(op.Total, inv.Total, fin.Total)
	begin := e.cashOnHand(rows)

	return domain.CashFlowStatement{
		Operating:     op,
		Investing:     inv,
		Financing:     fin,
		NetChange:     net,
		CashBeginning: begin,
		CashEnding:    begin.Add(net),
		Assumed:       true,
	}
}
