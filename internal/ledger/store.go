package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"saldo/internal/core"
	"saldo/internal/snapshot"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Store is the in-memory ledger with save-through persistence: every
// mutation rewrites the full snapshot before it commits, so the persisted
// state is never behind what callers have observed.
type Store struct {
	mu      sync.Mutex
	persist snapshot.Store
	logger  *slog.Logger

	accounts []core.Account
	txs      []core.Transaction
	nextSeq  int64
}

// Open loads the persisted snapshot into a ready Store. Non-finite amounts
// are zeroed on the way in, and legacy records without a Seq get one
// assigned in stored order so same-day ordering stays deterministic.
func Open(ctx context.Context, persist snapshot.Store, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	snap, err := persist.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	core.SanitizeAccounts(snap.Accounts)
	core.SanitizeTransactions(snap.Transactions)

	var maxSeq int64
	for _, tx := range snap.Transactions {
		if tx.Seq > maxSeq {
			maxSeq = tx.Seq
		}
	}
	for i := range snap.Transactions {
		if snap.Transactions[i].Seq == 0 {
			maxSeq++
			snap.Transactions[i].Seq = maxSeq
		}
	}

	logger.Info("ledger loaded",
		"accounts", len(snap.Accounts),
		"transactions", len(snap.Transactions))

	return &Store{
		persist:  persist,
		logger:   logger,
		accounts: snap.Accounts,
		txs:      snap.Transactions,
		nextSeq:  maxSeq + 1,
	}, nil
}

// Accounts returns a copy of all accounts in creation order.
func (s *Store) Accounts() []core.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Account(nil), s.accounts...)
}

// Transactions returns a copy of all transactions in insertion order.
func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txs...)
}

// CreateAccount validates, assigns an id and persists a new account.
func (s *Store) CreateAccount(ctx context.Context, a core.Account) (core.Account, error) {
	if err := a.Validate(); err != nil {
		return core.Account{}, err
	}
	a.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := append(append([]core.Account(nil), s.accounts...), a)
	if err := s.save(ctx, accounts, s.txs); err != nil {
		return core.Account{}, err
	}
	s.accounts = accounts
	return a, nil
}

// DeleteAccount removes an account. Its transactions stay in the ledger as
// dangling references: they drop out of balances but remain visible in the
// record list, matching how balances treat unknown account ids.
func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrAccountNotFound
	}

	accounts := make([]core.Account, 0, len(s.accounts)-1)
	accounts = append(accounts, s.accounts[:idx]...)
	accounts = append(accounts, s.accounts[idx+1:]...)
	if err := s.save(ctx, accounts, s.txs); err != nil {
		return err
	}
	s.accounts = accounts
	return nil
}

// CreateTransaction validates, assigns id and sequence, and persists a new
// transaction.
func (s *Store) CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	tx.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx.Seq = s.nextSeq
	txs := append(append([]core.Transaction(nil), s.txs...), tx)
	if err := s.save(ctx, s.accounts, txs); err != nil {
		return core.Transaction{}, err
	}
	s.txs = txs
	s.nextSeq++
	return tx, nil
}

// DeleteTransaction removes a transaction and returns it, so callers can
// propagate the deletion downstream.
func (s *Store) DeleteTransaction(ctx context.Context, id string) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.txs {
		if s.txs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Transaction{}, ErrTransactionNotFound
	}

	removed := s.txs[idx]
	txs := make([]core.Transaction, 0, len(s.txs)-1)
	txs = append(txs, s.txs[:idx]...)
	txs = append(txs, s.txs[idx+1:]...)
	if err := s.save(ctx, s.accounts, txs); err != nil {
		return core.Transaction{}, err
	}
	s.txs = txs
	return removed, nil
}

// save persists the candidate state. Callers commit to their in-memory
// slices only after save succeeds, keeping memory and disk consistent on
// failure. Must be called with the mutex held.
func (s *Store) save(ctx context.Context, accounts []core.Account, txs []core.Transaction) error {
	snap := snapshot.Snapshot{Accounts: accounts, Transactions: txs}
	if err := s.persist.Save(ctx, snap); err != nil {
		s.logger.Error("snapshot save failed", "error", err)
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
