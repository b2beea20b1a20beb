package amqp

import (
	"encoding/json"
	"time"
)

// TransactionRecordedMessage announces a freshly persisted ledger entry to
// the export worker. It carries only identifiers; the worker fetches the full
// record from the database.
type TransactionRecordedMessage struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTransactionRecordedMessage creates a recorded message for a transaction.
func NewTransactionRecordedMessage(id, tenantID string) *TransactionRecordedMessage {
	return &TransactionRecordedMessage{
		ID:        id,
		TenantID:  tenantID,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *TransactionRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionRecordedMessageFromJSON parses a message from JSON bytes.
func TransactionRecordedMessageFromJSON(data []byte) (*TransactionRecordedMessage, error) {
	var msg TransactionRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
