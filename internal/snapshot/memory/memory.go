package memory

import (
	"context"
	"sync"

	"saldo/internal/core"
	"saldo/internal/snapshot"
)

// Store keeps the snapshot in process memory. State does not survive a
// restart; useful for tests and local experiments.
type Store struct {
	mu   sync.Mutex
	snap snapshot.Snapshot
}

func New() *Store {
	return &Store{}
}

// Seed pre-loads a snapshot, replacing whatever is held.
func (s *Store) Seed(snap snapshot.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = clone(snap)
}

func (s *Store) Load(_ context.Context) (snapshot.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.snap), nil
}

func (s *Store) Save(_ context.Context, snap snapshot.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = clone(snap)
	return nil
}

// clone guards against callers mutating slices after handing them over.
func clone(snap snapshot.Snapshot) snapshot.Snapshot {
	out := snapshot.Snapshot{}
	if snap.Accounts != nil {
		out.Accounts = append([]core.Account(nil), snap.Accounts...)
	}
	if snap.Transactions != nil {
		out.Transactions = append([]core.Transaction(nil), snap.Transactions...)
	}
	return out
}
