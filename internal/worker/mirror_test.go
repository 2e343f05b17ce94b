package worker

import (
	"context"
	"errors"
	"testing"

	"saldo/internal/amqp"
	"saldo/internal/core"
	"saldo/internal/sheets/memory"
)

func validTx() core.Transaction {
	return core.Transaction{
		ID:           "t1",
		Seq:          1,
		Date:         "2024-01-05",
		Type:         core.Expense,
		MainCategory: "Living",
		Amount:       42,
		AccountID:    "a",
	}
}

func TestHandleCreated(t *testing.T) {
	store := memory.New()
	w := NewMirrorWorker(store, nil)

	if err := w.Handle(context.Background(), amqp.NewTransactionCreated(validTx())); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	rows := store.Rows()
	if len(rows) != 1 || rows[0].ID != "t1" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestHandleDeletedIsAcknowledged(t *testing.T) {
	store := memory.New()
	w := NewMirrorWorker(store, nil)

	if err := w.Handle(context.Background(), amqp.NewTransactionDeleted(validTx())); err != nil {
		t.Fatalf("delete op should ack without error, got %v", err)
	}
	if len(store.Rows()) != 0 {
		t.Fatal("delete op must not touch the sheet")
	}
}

func TestHandleUnknownOpIsDropped(t *testing.T) {
	w := NewMirrorWorker(memory.New(), nil)
	msg := &amqp.TransactionMirrorMessage{Op: "renamed", Transaction: validTx()}

	if err := w.Handle(context.Background(), msg); err != nil {
		t.Fatalf("unknown op should be dropped without error, got %v", err)
	}
}

type failingAppender struct{}

func (failingAppender) AppendTransaction(context.Context, core.Transaction) (string, error) {
	return "", errors.New("quota exceeded")
}

func TestHandleAppendFailurePropagates(t *testing.T) {
	w := NewMirrorWorker(failingAppender{}, nil)

	if err := w.Handle(context.Background(), amqp.NewTransactionCreated(validTx())); err == nil {
		t.Fatal("append failure should propagate for requeue")
	}
}
