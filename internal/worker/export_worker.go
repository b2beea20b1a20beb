package worker

import (
	"context"
	"fmt"
	"log/slog"

	"tally/internal/amqp"
	"tally/internal/core"
	"tally/internal/export"
	"tally/internal/storage"
)

// TransactionSource is the slice of the repository the export worker needs.
type TransactionSource interface {
	GetTransaction(ctx context.Context, id string) (core.Transaction, error)
	ListPendingExports(ctx context.Context, limit int) ([]storage.PendingExport, error)
	MarkExported(ctx context.Context, id string) error
	MarkExportError(ctx context.Context, id string) error
}

// ExportWorker pushes recorded transactions into the external report. It is
// driven by AMQP messages and backed by a periodic catch-up sweep for
// messages that never arrived.
type ExportWorker struct {
	source    TransactionSource
	appender  export.RowAppender
	batchSize int
}

func NewExportWorker(source TransactionSource, appender export.RowAppender, batchSize int) *ExportWorker {
	return &ExportWorker{
		source:    source,
		appender:  appender,
		batchSize: batchSize,
	}
}

// HandleRecordedMessage processes a single recorded message: load the full
// transaction from the database and append it to the report. Returning an
// error requeues the message.
func (w *ExportWorker) HandleRecordedMessage(ctx context.Context, msg *amqp.TransactionRecordedMessage) error {
	slog.InfoContext(ctx, "Processing recorded message",
		"id", msg.ID,
		"tenant_id", msg.TenantID)

	tx, err := w.source.GetTransaction(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("get transaction from storage: %w", err)
	}

	return w.exportTransaction(ctx, tx)
}

// ProcessPendingExports sweeps transactions the message path missed, oldest
// first, up to the configured batch size. A single failed row is marked and
// skipped so it cannot wedge the whole sweep.
func (w *ExportWorker) ProcessPendingExports(ctx context.Context) error {
	pending, err := w.source.ListPendingExports(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("list pending exports: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending exports", "count", len(pending))

	for _, p := range pending {
		tx, err := w.source.GetTransaction(ctx, p.ID)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load pending transaction",
				"id", p.ID, "error", err)
			continue
		}
		if err := w.exportTransaction(ctx, tx); err != nil {
			slog.ErrorContext(ctx, "Failed to export pending transaction",
				"id", p.ID, "error", err)
		}
	}
	return nil
}

func (w *ExportWorker) exportTransaction(ctx context.Context, tx core.Transaction) error {
	ref, err := w.appender.AppendTransaction(ctx, tx)
	if err != nil {
		if markErr := w.source.MarkExportError(ctx, tx.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark export error",
				"id", tx.ID, "error", markErr)
		}
		return fmt.Errorf("append transaction: %w", err)
	}

	if err := w.source.MarkExported(ctx, tx.ID); err != nil {
		return fmt.Errorf("mark exported: %w", err)
	}

	slog.InfoContext(ctx, "Transaction exported",
		"id", tx.ID,
		"tenant_id", tx.TenantID,
		"row_ref", ref)
	return nil
}
