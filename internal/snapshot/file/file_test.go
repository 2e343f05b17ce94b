package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"saldo/internal/core"
	"saldo/internal/snapshot"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, dir
}

func TestLoadFreshDirectory(t *testing.T) {
	s, _ := newStore(t)
	snap, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Accounts) != 0 || len(snap.Transactions) != 0 {
		t.Fatalf("fresh directory not empty: %+v", snap)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, dir := newStore(t)
	in := snapshot.Snapshot{
		Accounts: []core.Account{
			{ID: "a", Name: "Checking", InitialBalance: 1000, Color: "#10b981"},
		},
		Transactions: []core.Transaction{
			{ID: "t1", Seq: 1, Date: "2024-01-05", Type: core.Expense, MainCategory: "Living", SubCategory: "Food & groceries", Amount: 42.5, Note: "weekly shop", AccountID: "a"},
		},
	}

	if err := s.Save(context.Background(), in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	for _, name := range []string{"accounts.json", "transactions.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s on disk: %v", name, err)
		}
	}

	out, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.Accounts) != 1 || out.Accounts[0].Color != "#10b981" {
		t.Fatalf("accounts = %+v", out.Accounts)
	}
	tx := out.Transactions[0]
	if tx.Seq != 1 || tx.SubCategory != "Food & groceries" || tx.Amount != 42.5 {
		t.Fatalf("transaction = %+v", tx)
	}
}

func TestMalformedFileStartsEmpty(t *testing.T) {
	s, dir := newStore(t)
	if err := os.WriteFile(filepath.Join(dir, "accounts.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	snap, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load should tolerate corruption, got %v", err)
	}
	if len(snap.Accounts) != 0 {
		t.Fatalf("corrupt file produced accounts: %+v", snap.Accounts)
	}
}

func TestSaveEmptyWritesValidArrays(t *testing.T) {
	s, dir := newStore(t)
	if err := s.Save(context.Background(), snapshot.Snapshot{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	for _, name := range []string{"accounts.json", "transactions.json"} {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(raw) != "[]" {
			t.Fatalf("empty %s encoded as %q, want []", name, raw)
		}
	}

	snap, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Accounts == nil || len(snap.Accounts) != 0 {
		t.Fatalf("accounts after empty save = %#v", snap.Accounts)
	}
}
