package sheets

import (
	"context"

	"saldo/internal/core"
)

// TransactionAppender is the outbound port for the mirror worker: append
// one transaction as a row in an external sheet. Deletions are not part of
// the port; the spreadsheet is an append-only audit mirror, not a replica.
type TransactionAppender interface {
	AppendTransaction(ctx context.Context, tx core.Transaction) (rowRef string, err error)
}
