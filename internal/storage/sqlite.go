package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"saldo/internal/core"
	"saldo/internal/snapshot"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists snapshots in a local SQLite database. Save replaces
// the whole state inside one transaction, mirroring the whole-snapshot
// write model of the other backends.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (snapshot.Snapshot, error) {
	var snap snapshot.Snapshot

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, initial_balance, color FROM accounts ORDER BY rowid`)
	if err != nil {
		return snap, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a core.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.InitialBalance, &a.Color); err != nil {
			return snap, fmt.Errorf("scan account: %w", err)
		}
		snap.Accounts = append(snap.Accounts, a)
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("iterate accounts: %w", err)
	}

	txRows, err := s.db.QueryContext(ctx,
		`SELECT id, seq, date, type, main_category, sub_category, amount, note, account_id
		 FROM transactions ORDER BY seq`)
	if err != nil {
		return snap, fmt.Errorf("query transactions: %w", err)
	}
	defer txRows.Close()
	for txRows.Next() {
		var tx core.Transaction
		if err := txRows.Scan(&tx.ID, &tx.Seq, &tx.Date, &tx.Type, &tx.MainCategory,
			&tx.SubCategory, &tx.Amount, &tx.Note, &tx.AccountID); err != nil {
			return snap, fmt.Errorf("scan transaction: %w", err)
		}
		snap.Transactions = append(snap.Transactions, tx)
	}
	if err := txRows.Err(); err != nil {
		return snap, fmt.Errorf("iterate transactions: %w", err)
	}

	return snap, nil
}

func (s *SQLiteStore) Save(ctx context.Context, snap snapshot.Snapshot) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	if _, err := dbTx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("clear accounts: %w", err)
	}

	for _, a := range snap.Accounts {
		if _, err := dbTx.ExecContext(ctx,
			`INSERT INTO accounts (id, name, initial_balance, color) VALUES (?, ?, ?, ?)`,
			a.ID, a.Name, a.InitialBalance, a.Color); err != nil {
			return fmt.Errorf("insert account %s: %w", a.ID, err)
		}
	}
	for _, tx := range snap.Transactions {
		if _, err := dbTx.ExecContext(ctx,
			`INSERT INTO transactions (id, seq, date, type, main_category, sub_category, amount, note, account_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			tx.ID, tx.Seq, tx.Date, tx.Type, tx.MainCategory, tx.SubCategory,
			tx.Amount, tx.Note, tx.AccountID); err != nil {
			return fmt.Errorf("insert transaction %s: %w", tx.ID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}

	s.logger.Debug("snapshot saved",
		"accounts", len(snap.Accounts),
		"transactions", len(snap.Transactions))
	return nil
}
