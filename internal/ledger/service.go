package ledger

import (
	"context"
	"log/slog"
	"time"

	"tally/internal/core"
)

// Service orchestrates the ledger operations. Every operation runs the same
// fixed pipeline: permission enforcement, then tenant ownership, then (for
// writes) input validation, then the single store round trip. Each stage
// fails fast and its error propagates unmodified; the ordering guarantees an
// unauthorized caller never learns whether the target tenant or its data
// exist.
type Service struct {
	store     TransactionStore
	publisher RecordedPublisher
	now       func() time.Time
}

func NewService(store TransactionStore, publisher RecordedPublisher) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

// RecordTransaction validates raw input and persists it as a new ledger entry
// for tenantID. The canonical record takes its tenant from the verified
// argument, never from the payload, and its createdBy from the actor; an
// absent date defaults to today at write time. The persisted record, with the
// store-generated id and timestamps, is returned.
func (s *Service) RecordTransaction(ctx context.Context, actor core.Actor, tenantID string, in core.TransactionInput) (core.Transaction, error) {
	if err := core.EnforcePermission(actor, core.PermissionWrite); err != nil {
		return core.Transaction{}, err
	}
	if err := core.VerifyTenantOwnership(actor, tenantID); err != nil {
		return core.Transaction{}, err
	}

	draft, err := core.ValidateInput(in)
	if err != nil {
		return core.Transaction{}, err
	}

	date := draft.Date
	if date == "" {
		date = s.now().UTC().Format(core.DateLayout)
	}

	tx := core.Transaction{
		TenantID:    tenantID,
		Kind:        draft.Kind,
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: draft.Description,
		Date:        date,
		CreatedBy:   actor.ID,
	}

	persisted, err := s.store.InsertTransaction(ctx, tx)
	if err != nil {
		return core.Transaction{}, &core.StorageError{Op: "insert transaction", Err: err}
	}

	slog.InfoContext(ctx, "Transaction recorded",
		"id", persisted.ID,
		"tenant_id", persisted.TenantID,
		"type", persisted.Kind,
		"category", persisted.Category)

	// Export notification is best-effort: the record is already durable.
	if s.publisher != nil {
		if err := s.publisher.PublishTransactionRecorded(ctx, persisted.ID, persisted.TenantID); err != nil {
			slog.ErrorContext(ctx, "Failed to publish recorded message",
				"id", persisted.ID, "error", err)
		}
	}

	return persisted, nil
}

// ListTransactions returns the tenant's ledger, most recent date first. An
// empty ledger is a valid empty result, not an error.
func (s *Service) ListTransactions(ctx context.Context, actor core.Actor, tenantID string) ([]core.Transaction, error) {
	if err := core.EnforcePermission(actor, core.PermissionRead); err != nil {
		return nil, err
	}
	if err := core.VerifyTenantOwnership(actor, tenantID); err != nil {
		return nil, err
	}

	txs, err := s.store.ListTransactions(ctx, tenantID)
	if err != nil {
		return nil, &core.StorageError{Op: "list transactions", Err: err}
	}
	return txs, nil
}

// Summarize reduces the tenant's transaction set into its financial summary.
func (s *Service) Summarize(ctx context.Context, actor core.Actor, tenantID string) (core.FinancialSummary, error) {
	if err := core.EnforcePermission(actor, core.PermissionRead); err != nil {
		return core.FinancialSummary{}, err
	}
	if err := core.VerifyTenantOwnership(actor, tenantID); err != nil {
		return core.FinancialSummary{}, err
	}

	entries, err := s.store.ListTransactionEntries(ctx, tenantID)
	if err != nil {
		return core.FinancialSummary{}, &core.StorageError{Op: "list transaction entries", Err: err}
	}
	return core.Summarize(entries), nil
}
