package worker

import (
	"context"
	"fmt"
	"log/slog"

	"saldo/internal/amqp"
	"saldo/internal/sheets"
)

// MirrorWorker consumes transaction mirror messages and appends them to an
// external sheet. Messages carry the full transaction payload, so the
// worker needs no access to the server's snapshot store.
type MirrorWorker struct {
	appender sheets.TransactionAppender
	logger   *slog.Logger
}

func NewMirrorWorker(appender sheets.TransactionAppender, logger *slog.Logger) *MirrorWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &MirrorWorker{appender: appender, logger: logger}
}

// Handle processes one mirror message. Returning an error requeues the
// delivery, so only retryable failures may propagate: an append failure is
// retryable, an unknown op is not and is dropped with a warning. Deletions
// are acknowledged without touching the sheet; the mirror is an append-only
// audit log and removing rows would rewrite history.
func (w *MirrorWorker) Handle(ctx context.Context, msg *amqp.TransactionMirrorMessage) error {
	switch msg.Op {
	case amqp.OpCreated:
		ref, err := w.appender.AppendTransaction(ctx, msg.Transaction)
		if err != nil {
			return fmt.Errorf("append transaction %s: %w", msg.Transaction.ID, err)
		}
		w.logger.InfoContext(ctx, "transaction mirrored",
			"transaction_id", msg.Transaction.ID,
			"row_ref", ref)
		return nil

	case amqp.OpDeleted:
		w.logger.WarnContext(ctx, "transaction deleted in ledger, mirror row kept",
			"transaction_id", msg.Transaction.ID)
		return nil

	default:
		w.logger.WarnContext(ctx, "unknown mirror op, dropping message",
			"op", msg.Op,
			"transaction_id", msg.Transaction.ID)
		return nil
	}
}

// Run consumes mirror messages until the context is cancelled.
func (w *MirrorWorker) Run(ctx context.Context, client *amqp.Client) error {
	return client.ConsumeTransactionMirror(ctx, func(msg *amqp.TransactionMirrorMessage) error {
		return w.Handle(ctx, msg)
	})
}
