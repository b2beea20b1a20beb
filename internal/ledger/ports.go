package ledger

import (
	"context"
	"errors"

	"tally/internal/core"
)

// ErrUserNotFound is returned by UserStore implementations when no user
// matches the given id.
var ErrUserNotFound = errors.New("user not found")

// UserRecord is the raw user row as the store returns it. The identity
// resolver re-validates it before constructing a core.Actor; nothing else
// should consume it.
type UserRecord struct {
	ID       string
	Email    string
	TenantID string
	Role     string
}

// Ports for the persistence collaborator.
type (
	UserStore interface {
		FindUserByID(ctx context.Context, id string) (UserRecord, error)
	}

	TransactionStore interface {
		// InsertTransaction persists the record and returns it as stored,
		// with the generated id and timestamps filled in.
		InsertTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error)

		// ListTransactions returns every transaction for the tenant ordered
		// by date descending. An empty tenant ledger is a valid empty result.
		ListTransactions(ctx context.Context, tenantID string) ([]core.Transaction, error)

		// ListTransactionEntries returns the narrow (kind, amount) projection
		// used by the summary; it avoids materializing full records.
		ListTransactionEntries(ctx context.Context, tenantID string) ([]core.EntryAmount, error)
	}
)

// RecordedPublisher announces a freshly persisted transaction to the export
// pipeline. Publishing is best-effort: the ledger write has already succeeded
// by the time it runs.
type RecordedPublisher interface {
	PublishTransactionRecorded(ctx context.Context, id, tenantID string) error
}
