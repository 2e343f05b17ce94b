package memory

import (
	"context"
	"testing"

	"saldo/internal/core"
	"saldo/internal/snapshot"
)

func TestLoadEmpty(t *testing.T) {
	s := New()
	snap, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Accounts) != 0 || len(snap.Transactions) != 0 {
		t.Fatalf("fresh store not empty: %+v", snap)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New()
	in := snapshot.Snapshot{
		Accounts: []core.Account{{ID: "a", Name: "Checking", InitialBalance: 100}},
		Transactions: []core.Transaction{
			{ID: "t1", Seq: 1, Date: "2024-01-05", Type: core.Income, MainCategory: core.IncomeWork, Amount: 50, AccountID: "a"},
		},
	}

	if err := s.Save(context.Background(), in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.Accounts) != 1 || out.Accounts[0].ID != "a" {
		t.Fatalf("accounts = %+v", out.Accounts)
	}
	if len(out.Transactions) != 1 || out.Transactions[0].ID != "t1" {
		t.Fatalf("transactions = %+v", out.Transactions)
	}
}

func TestLoadReturnsCopies(t *testing.T) {
	s := New()
	s.Seed(snapshot.Snapshot{Accounts: []core.Account{{ID: "a", Name: "A"}}})

	first, _ := s.Load(context.Background())
	first.Accounts[0].Name = "mutated"

	second, _ := s.Load(context.Background())
	if second.Accounts[0].Name != "A" {
		t.Fatalf("store state leaked through Load: %+v", second.Accounts)
	}
}
