package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

type (
	// TxType is the direction of a transaction. Amounts are stored as
	// absolute magnitudes; the sign is always derived from the type.
	TxType string

	// Account is a named virtual bucket with a starting balance.
	// Immutable once created, except for deletion.
	Account struct {
		ID             string  `json:"id"`
		Name           string  `json:"name"`
		InitialBalance float64 `json:"initialBalance"`
		Color          string  `json:"color"`
	}

	// Transaction is a single dated income or expense event tied to one
	// account. Seq is a monotonic insertion counter assigned by the ledger
	// store; it is the deterministic tie-break for same-day ordering
	// (transaction IDs are random and carry no creation order).
	Transaction struct {
		ID           string  `json:"id"`
		Seq          int64   `json:"seq"`
		Date         string  `json:"date"` // ISO "YYYY-MM-DD"
		Type         TxType  `json:"type"`
		MainCategory string  `json:"mainCategory"`
		SubCategory  string  `json:"subCategory,omitempty"`
		Amount       float64 `json:"amount"`
		Note         string  `json:"note,omitempty"`
		AccountID    string  `json:"accountId"`
	}
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyName       = errors.New("empty account name")
	ErrEmptyCategory   = errors.New("empty main category")
	ErrEmptyAccountRef = errors.New("no account selected")
)

// DayLayout is the wire format for calendar days. Month keys ("YYYY-MM")
// are its 7-character prefix.
const DayLayout = "2006-01-02"

// ParseDay parses an ISO calendar day into a midnight-UTC time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Day formats a time as an ISO calendar day, dropping the time of day.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// MonthOf returns the "YYYY-MM" month key of an ISO day string.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

func (t TxType) Valid() bool {
	return t == Income || t == Expense
}

// Signed returns the amount with the sign implied by the type.
func (tx Transaction) Signed() float64 {
	if tx.Type == Expense {
		return -tx.Amount
	}
	return tx.Amount
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if math.IsNaN(a.InitialBalance) || math.IsInf(a.InitialBalance, 0) {
		return ErrInvalidAmount
	}
	return nil
}

func (tx Transaction) Validate() error {
	if _, err := ParseDay(tx.Date); err != nil {
		return err
	}
	if !tx.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(tx.MainCategory) == "" {
		return ErrEmptyCategory
	}
	if tx.Amount < 0 || math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(tx.AccountID) == "" {
		return ErrEmptyAccountRef
	}
	return nil
}

// sanitizeNumber maps NaN and infinities to 0. Persisted snapshots may come
// from foreign writers; the engine treats non-finite numbers as zero instead
// of poisoning every downstream sum.
func sanitizeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SanitizeAccounts normalizes non-finite initial balances in place.
func SanitizeAccounts(accounts []Account) {
	for i := range accounts {
		accounts[i].InitialBalance = sanitizeNumber(accounts[i].InitialBalance)
	}
}

// SanitizeTransactions normalizes non-finite amounts in place.
func SanitizeTransactions(txs []Transaction) {
	for i := range txs {
		txs[i].Amount = sanitizeNumber(txs[i].Amount)
	}
}
