package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRow_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantName    string
		wantCat     string
		wantBalance string
	}{
		{
			name:        "camel case keys",
			payload:     `{"accountName": "Cash", "category": "Current Assets", "debit": 100, "credit": 40}`,
			wantName:    "Cash",
			wantCat:     "Current Assets",
			wantBalance: "60",
		},
		{
			name:        "title case keys with explicit balance",
			payload:     `{"Account Name": "Bank", "Category": "Current Assets", "Balance": "1,250.50"}`,
			wantName:    "Bank",
			wantCat:     "Current Assets",
			wantBalance: "1250.5",
		},
		{
			name:        "arabic keys and digits",
			payload:     `{"اسم الحساب": "الصندوق", "التصنيف": "أصول متداولة", "الرصيد": "١٬٥٠٠٫٢٥"}`,
			wantName:    "الصندوق",
			wantCat:     "أصول متداولة",
			wantBalance: "1500.25",
		},
		{
			name:        "snake case fallback balances",
			payload:     `{"account_name": "Loan", "calculated_balance": -300, "book_balance": 999}`,
			wantName:    "Loan",
			wantBalance: "-300",
		},
		{
			name:        "book balance when nothing else",
			payload:     `{"name": "Other", "book_balance": "42"}`,
			wantName:    "Other",
			wantBalance: "42",
		},
		{
			name:        "unparseable amounts coerce to zero",
			payload:     `{"accountName": "Bad", "debit": "n/a", "credit": null, "balance": true}`,
			wantName:    "Bad",
			wantBalance: "0",
		},
		{
			name:        "debit and credit win over balance",
			payload:     `{"accountName": "X", "debit": "10", "balance": 500}`,
			wantName:    "X",
			wantBalance: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var row domain.LedgerRow
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &row))
			assert.Equal(t, tt.wantName, row.AccountName)
			assert.Equal(t, tt.wantCat, row.Category)
			want := decimal.RequireFromString(tt.wantBalance)
			assert.True(t, want.Equal(row.Balance()), "want %s, got %s", want, row.Balance())
		})
	}
}

func TestLedgerRow_UnmarshalJSON_RejectsNonObjects(t *testing.T) {
	var row domain.LedgerRow
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &row))
}

func TestLedgerRow_ZeroBalance(t *testing.T) {
	row := domain.LedgerRow{AccountName: "Cash"}
	assert.True(t, row.Balance().IsZero())
	assert.True(t, row.AbsBalance().IsZero())
}

func TestLedgerRow_AbsBalanceAndNormalization(t *testing.T) {
	row := domain.LedgerRow{AccountName: "  Accounts PAYABLE ", Category: " Current Liabilities", Credit: decimal.NewFromInt(250)}
	assert.Equal(t, "-250", row.Balance().String())
	assert.Equal(t, "250", row.AbsBalance().String())
	assert.Equal(t, "accounts payable", row.NormalizedName())
	assert.Equal(t, "current liabilities", row.NormalizedCategory())
}

func TestParseAmountString(t *testing.T) {
	tests := map[string]string{
		"1,234.56": "1234.56",
		" 12 500 ": "12500",
		"٣٤٥":      "345",
		"-7.5":     "-7.5",
		"":         "0",
		"abc":      "0",
	}
	for in, want := range tests {
		got := domain.ParseAmountString(in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "%q: want %s, got %s", in, want, got)
	}
}
