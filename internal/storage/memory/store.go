package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tally/internal/core"
	"tally/internal/ledger"
)

// Store is a mutex-guarded in-memory implementation of the ledger store
// ports. It backs tests and the DATA_BACKEND=memory mode.
type Store struct {
	mu    sync.Mutex
	users map[string]ledger.UserRecord
	txs   []core.Transaction
}

func New() *Store {
	return &Store{users: make(map[string]ledger.UserRecord)}
}

// SeedUser registers a user record for later resolution.
func (s *Store) SeedUser(rec ledger.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[rec.ID] = rec
}

// FindUserByID implements ledger.UserStore.
func (s *Store) FindUserByID(_ context.Context, id string) (ledger.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return ledger.UserRecord{}, ledger.ErrUserNotFound
	}
	return rec, nil
}

// InsertTransaction implements ledger.TransactionStore.
func (s *Store) InsertTransaction(_ context.Context, tx core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	tx.ID = uuid.NewString()
	tx.CreatedAt = now
	tx.UpdatedAt = now
	s.txs = append(s.txs, tx)
	return tx, nil
}

// ListTransactions implements ledger.TransactionStore, ordered by date
// descending with insertion time as tie-break.
func (s *Store) ListTransactions(_ context.Context, tenantID string) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []core.Transaction
	for _, tx := range s.txs {
		if tx.TenantID == tenantID {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ListTransactionEntries implements ledger.TransactionStore.
func (s *Store) ListTransactionEntries(_ context.Context, tenantID string) ([]core.EntryAmount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []core.EntryAmount
	for _, tx := range s.txs {
		if tx.TenantID == tenantID {
			out = append(out, core.EntryAmount{Kind: tx.Kind, Amount: tx.Amount})
		}
	}
	return out, nil
}
