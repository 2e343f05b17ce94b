package core

import "testing"

func TestAccountBalances(t *testing.T) {
	accounts := []Account{
		{ID: "checking", Name: "Checking", InitialBalance: 1000},
		{ID: "savings", Name: "Savings", InitialBalance: 5000},
	}
	txs := []Transaction{
		{ID: "t1", Seq: 1, Date: "2024-01-05", Type: Income, MainCategory: IncomeWork, Amount: 500, AccountID: "checking"},
		{ID: "t2", Seq: 2, Date: "2024-01-10", Type: Expense, MainCategory: "Living", Amount: 200, AccountID: "checking"},
	}

	balances := AccountBalances(accounts, txs)

	if got := balances["checking"]; got != 1300 {
		t.Fatalf("checking balance = %v, want 1300", got)
	}
	if got := balances["savings"]; got != 5000 {
		t.Fatalf("untouched account balance = %v, want 5000", got)
	}
	if got := NetAssets(balances); got != 6300 {
		t.Fatalf("NetAssets = %v, want 6300", got)
	}
}

func TestAccountBalancesEmpty(t *testing.T) {
	balances := AccountBalances(nil, nil)
	if len(balances) != 0 {
		t.Fatalf("expected empty map, got %v", balances)
	}
	if got := NetAssets(balances); got != 0 {
		t.Fatalf("NetAssets of nothing = %v, want 0", got)
	}
}

func TestAccountBalancesDanglingReference(t *testing.T) {
	accounts := []Account{{ID: "a", Name: "A", InitialBalance: 100}}
	txs := []Transaction{
		{ID: "t1", Seq: 1, Date: "2024-01-01", Type: Income, MainCategory: IncomeWork, Amount: 50, AccountID: "a"},
		{ID: "t2", Seq: 2, Date: "2024-01-02", Type: Expense, MainCategory: "Living", Amount: 999, AccountID: "deleted"},
	}

	balances := AccountBalances(accounts, txs)

	if len(balances) != 1 {
		t.Fatalf("dangling reference created an entry: %v", balances)
	}
	if got := balances["a"]; got != 150 {
		t.Fatalf("balance = %v, want 150", got)
	}
	if got := NetAssets(balances); got != 150 {
		t.Fatalf("NetAssets = %v, want 150", got)
	}
}

func TestAccountBalancesOrderIndependent(t *testing.T) {
	accounts := []Account{{ID: "a", Name: "A", InitialBalance: 0}}
	forward := []Transaction{
		{ID: "t1", Seq: 1, Date: "2024-02-01", Type: Income, MainCategory: IncomeWork, Amount: 100, AccountID: "a"},
		{ID: "t2", Seq: 2, Date: "2024-02-01", Type: Expense, MainCategory: "Living", Amount: 40, AccountID: "a"},
	}
	reversed := []Transaction{forward[1], forward[0]}

	if a, b := AccountBalances(accounts, forward)["a"], AccountBalances(accounts, reversed)["a"]; a != b || a != 60 {
		t.Fatalf("order changed the fold: forward %v, reversed %v, want 60", a, b)
	}
}
