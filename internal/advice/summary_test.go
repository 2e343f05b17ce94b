package advice

import (
	"strings"
	"testing"

	"saldo/internal/core"
)

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		month string
		want  string
	}{
		{"2024-03", "2024-02"},
		{"2024-01", "2023-12"},
		{"2024-12", "2024-11"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := PreviousMonth(tt.month); got != tt.want {
			t.Errorf("PreviousMonth(%q) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	accounts := []core.Account{
		{ID: "a", Name: "Checking"},
		{ID: "b", Name: "Savings"},
	}
	txs := []core.Transaction{
		{Date: "2024-03-05", Type: core.Income, MainCategory: core.IncomeWork, Amount: 2000, AccountID: "a"},
		{Date: "2024-03-08", Type: core.Income, MainCategory: core.IncomeInvestment, Amount: 150, AccountID: "b"},
		{Date: "2024-03-12", Type: core.Expense, MainCategory: "Living", Amount: 800, AccountID: "a"},
		// Previous month.
		{Date: "2024-02-05", Type: core.Income, MainCategory: core.IncomeWork, Amount: 1800, AccountID: "a"},
		{Date: "2024-02-20", Type: core.Expense, MainCategory: "Living", Amount: 1000, AccountID: "a"},
		// Outside both months: ignored.
		{Date: "2023-12-01", Type: core.Expense, MainCategory: "Tax", Amount: 9999, AccountID: "a"},
	}

	s := BuildSummary(accounts, txs, "2024-03")

	if s.Income != 2150 {
		t.Errorf("Income = %v, want 2150", s.Income)
	}
	if s.Expense != 800 {
		t.Errorf("Expense = %v, want 800", s.Expense)
	}
	if s.InvestmentIncome != 150 {
		t.Errorf("InvestmentIncome = %v, want 150", s.InvestmentIncome)
	}
	if s.LastMonthSurplus != 800 {
		t.Errorf("LastMonthSurplus = %v, want 800", s.LastMonthSurplus)
	}
	if len(s.AccountNames) != 2 || s.AccountNames[0] != "Checking" {
		t.Errorf("AccountNames = %v", s.AccountNames)
	}
}

func TestPromptContainsFigures(t *testing.T) {
	s := Summary{
		Month:            "2024-03",
		Income:           2150,
		Expense:          800,
		InvestmentIncome: 150,
		LastMonthSurplus: 800,
		AccountNames:     []string{"Checking", "Savings"},
	}
	p := s.Prompt()
	for _, want := range []string{"2150.00", "800.00", "150.00", "Checking, Savings"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
