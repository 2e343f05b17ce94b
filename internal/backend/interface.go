package backend

import (
	"context"

	"saldo/internal/snapshot"
)

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Result carries the snapshot store and its optional cleanup.
type Result struct {
	Store   snapshot.Store
	Cleanup CleanupFunc
}

// Factory creates snapshot stores based on configuration.
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for store creation.
type Config struct {
	Type Type

	// File backend
	DataDir string

	// SQLite backend
	SQLiteDBPath string
}

// Type selects the persistence backend.
type Type string

const (
	MemoryBackend Type = "memory"
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}
