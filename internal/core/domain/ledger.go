package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// LedgerRow is one line of a trial balance as supplied by the caller.
// Amount fields that are absent or unparseable are zero.
type LedgerRow struct {
	AccountName       string          `json:"accountName"`
	Category          string          `json:"category"`
	Debit             decimal.Decimal `json:"debit"`
	Credit            decimal.Decimal `json:"credit"`
	ExplicitBalance   decimal.Decimal `json:"balance"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	BookBalance       decimal.Decimal `json:"book_balance"`
}

// Key aliases accepted when decoding a row. Earlier keys win.
var (
	accountNameKeys = []string{"accountName", "account_name", "Account Name", "name", "اسم الحساب"}
	categoryKeys    = []string{"category", "Category", "التصنيف"}
	debitKeys       = []string{"debit", "Debit", "مدين"}
	creditKeys      = []string{"credit", "Credit", "دائن"}
	balanceKeys     = []string{"balance", "Balance", "الرصيد"}
	calculatedKeys  = []string{"calculated_balance", "calculatedBalance"}
	bookKeys        = []string{"book_balance", "bookBalance"}
)

// Balance resolves the signed balance of the row: debit minus credit when either is
// set, otherwise the first non-zero of balance, calculated_balance and book_balance.
func (r LedgerRow) Balance() decimal.Decimal {
	if !r.Debit.IsZero() || !r.Credit.IsZero() {
		return r.Debit.Sub(r.Credit)
	}
	for _, v := range []decimal.Decimal{r.ExplicitBalance, r.CalculatedBalance, r.BookBalance} {
		if !v.IsZero() {
			return v
		}
	}
	return decimal.Zero
}

// AbsBalance is the unsigned balance used for every bucket sum.
func (r LedgerRow) AbsBalance() decimal.Decimal {
	return r.Balance().Abs()
}

// NormalizedName returns the lower-cased, trimmed account name.
func (r LedgerRow) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(r.AccountName))
}

// NormalizedCategory returns the lower-cased, trimmed category label.
func (r LedgerRow) NormalizedCategory() string {
	return strings.ToLower(strings.TrimSpace(r.Category))
}

// UnmarshalJSON accepts the English, Arabic and snake_case key spellings used by the
// different producers of trial-balance data. It never fails on bad amounts.
func (r *LedgerRow) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = LedgerRow{
		AccountName:       firstString(raw, accountNameKeys),
		Category:          firstString(raw, categoryKeys),
		Debit:             firstAmount(raw, debitKeys),
		Credit:            firstAmount(raw, creditKeys),
		ExplicitBalance:   firstAmount(raw, balanceKeys),
		CalculatedBalance: firstAmount(raw, calculatedKeys),
		BookBalance:       firstAmount(raw, bookKeys),
	}
	return nil
}

func firstString(raw map[string]json.RawMessage, keys []string) string {
	for _, k := range keys {
		msg, ok := raw[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(msg, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

func firstAmount(raw map[string]json.RawMessage, keys []string) decimal.Decimal {
	for _, k := range keys {
		msg, ok := raw[k]
		if !ok {
			continue
		}
		if v := ParseAmount(msg); !v.IsZero() {
			return v
		}
	}
	return decimal.Zero
}

var arabicDigits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"٫", ".", "٬", "", ",", "", " ", "",
)

// ParseAmount coerces a JSON number, numeric string or null into a decimal.
// Anything that cannot be read as a number yields zero.
func ParseAmount(msg json.RawMessage) decimal.Decimal {
	var n json.Number
	if err := json.Unmarshal(msg, &n); err == nil {
		if d, err := decimal.NewFromString(n.String()); err == nil {
			return d
		}
		return decimal.Zero
	}

	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return decimal.Zero
	}
	return ParseAmountString(s)
}

// ParseAmountString reads a free-form numeric string. Thousand separators, spaces and
// Arabic-Indic digits are tolerated; failure yields zero.
func ParseAmountString(s string) decimal.Decimal {
	s = arabicDigits.Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
