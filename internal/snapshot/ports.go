package snapshot

import (
	"context"

	"saldo/internal/core"
)

// Snapshot is the full persisted state: every account and every
// transaction. Persistence is whole-state on purpose; the ledger is small
// and the write pattern is save-through on each mutation, so partial
// updates buy nothing but failure modes.
type Snapshot struct {
	Accounts     []core.Account     `json:"accounts"`
	Transactions []core.Transaction `json:"transactions"`
}

// Store persists and restores snapshots.
type Store interface {
	// Load returns the last saved snapshot. A missing or unreadable
	// snapshot yields an empty one, never an error the caller must
	// distinguish; implementations log what they discarded.
	Load(ctx context.Context) (Snapshot, error)

	// Save replaces the persisted state with the given snapshot.
	Save(ctx context.Context, snap Snapshot) error
}
