package storage

import (
	"context"
	"path/filepath"
	"testing"

	"saldo/internal/core"
	"saldo/internal/snapshot"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "saldo.db"), nil)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadEmptyDatabase(t *testing.T) {
	s := newTestStore(t)
	snap, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Accounts) != 0 || len(snap.Transactions) != 0 {
		t.Fatalf("fresh database not empty: %+v", snap)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	in := snapshot.Snapshot{
		Accounts: []core.Account{
			{ID: "a", Name: "Checking", InitialBalance: 1000, Color: "#10b981"},
			{ID: "b", Name: "Savings", InitialBalance: 5000, Color: "#3b82f6"},
		},
		Transactions: []core.Transaction{
			{ID: "t1", Seq: 1, Date: "2024-01-05", Type: core.Income, MainCategory: core.IncomeWork, Amount: 2000, AccountID: "a"},
			{ID: "t2", Seq: 2, Date: "2024-01-10", Type: core.Expense, MainCategory: "Living", SubCategory: "Rent & mortgage", Amount: 800, Note: "january", AccountID: "a"},
		},
	}

	if err := s.Save(context.Background(), in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(out.Accounts) != 2 || out.Accounts[0].ID != "a" || out.Accounts[1].InitialBalance != 5000 {
		t.Fatalf("accounts = %+v", out.Accounts)
	}
	if len(out.Transactions) != 2 {
		t.Fatalf("transactions = %+v", out.Transactions)
	}
	tx := out.Transactions[1]
	if tx.Seq != 2 || tx.SubCategory != "Rent & mortgage" || tx.Note != "january" {
		t.Fatalf("transaction = %+v", tx)
	}
}

func TestSaveReplacesState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := snapshot.Snapshot{
		Accounts: []core.Account{{ID: "a", Name: "A"}},
		Transactions: []core.Transaction{
			{ID: "t1", Seq: 1, Date: "2024-01-01", Type: core.Income, MainCategory: core.IncomeWork, Amount: 10, AccountID: "a"},
		},
	}
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := snapshot.Snapshot{Accounts: []core.Account{{ID: "b", Name: "B"}}}
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.Accounts) != 1 || out.Accounts[0].ID != "b" {
		t.Fatalf("stale accounts survived: %+v", out.Accounts)
	}
	if len(out.Transactions) != 0 {
		t.Fatalf("stale transactions survived: %+v", out.Transactions)
	}
}
