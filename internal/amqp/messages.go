package amqp

import (
	"encoding/json"
	"time"

	"saldo/internal/core"
)

const (
	OpCreated = "created"
	OpDeleted = "deleted"
)

// TransactionMirrorMessage carries one ledger mutation to the mirror
// worker. It embeds the full transaction payload: the worker has no access
// to the server's snapshot store, so the message must be self-contained.
type TransactionMirrorMessage struct {
	Op          string           `json:"op"`
	Transaction core.Transaction `json:"transaction"`
	Timestamp   time.Time        `json:"timestamp"`
}

func NewTransactionCreated(tx core.Transaction) *TransactionMirrorMessage {
	return &TransactionMirrorMessage{Op: OpCreated, Transaction: tx, Timestamp: time.Now()}
}

func NewTransactionDeleted(tx core.Transaction) *TransactionMirrorMessage {
	return &TransactionMirrorMessage{Op: OpDeleted, Transaction: tx, Timestamp: time.Now()}
}

func (m *TransactionMirrorMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionMirrorMessageFromJSON(data []byte) (*TransactionMirrorMessage, error) {
	var msg TransactionMirrorMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
