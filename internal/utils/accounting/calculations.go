package accounting

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SafeDiv returns num/den, or zero when den is zero. Reports never surface NaN or
// infinities.
func SafeDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// Percent returns num/den expressed as a percentage, zero when den is zero.
func Percent(num, den decimal.Decimal) decimal.Decimal {
	return SafeDiv(num, den).Mul(hundred)
}

// Sum adds the given amounts.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// FloorZero clamps negative amounts to zero.
func FloorZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// IsBalanced checks that total debits equal total credits, the basic sanity check of a
// trial balance.
func IsBalanced(totalDebit, totalCredit decimal.Decimal) bool {
	return totalDebit.Equal(totalCredit)
}
