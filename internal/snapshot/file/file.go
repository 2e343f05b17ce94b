package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"saldo/internal/core"
	"saldo/internal/snapshot"
)

const (
	accountsFile     = "accounts.json"
	transactionsFile = "transactions.json"
)

// Store persists the snapshot as two JSON documents in a directory.
// Writes go through a temp file and rename so a crash mid-write leaves the
// previous state intact.
type Store struct {
	dir    string
	logger *slog.Logger
}

func New(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

func (s *Store) Load(_ context.Context) (snapshot.Snapshot, error) {
	var snap snapshot.Snapshot
	snap.Accounts = loadJSON[core.Account](s, accountsFile)
	snap.Transactions = loadJSON[core.Transaction](s, transactionsFile)
	return snap, nil
}

func (s *Store) Save(_ context.Context, snap snapshot.Snapshot) error {
	// Nil slices would encode as "null"; the files always hold an array.
	if snap.Accounts == nil {
		snap.Accounts = []core.Account{}
	}
	if snap.Transactions == nil {
		snap.Transactions = []core.Transaction{}
	}
	if err := s.writeJSON(accountsFile, snap.Accounts); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	if err := s.writeJSON(transactionsFile, snap.Transactions); err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	return nil
}

// loadJSON reads one collection. A missing file is a fresh install; a
// corrupt file is logged and treated as empty rather than blocking startup.
func loadJSON[T any](s *Store, name string) []T {
	path := filepath.Join(s.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("unreadable snapshot file, starting empty", "path", path, "error", err)
		}
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.logger.Warn("malformed snapshot file, starting empty", "path", path, "error", err)
		return nil
	}
	return out
}

func (s *Store) writeJSON(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
