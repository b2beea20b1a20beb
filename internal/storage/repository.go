package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"tally/internal/core"
	"tally/internal/ledger"
)

// Export states for the worker's catch-up sweep.
const (
	ExportPending = "pending"
	ExportDone    = "exported"
	ExportError   = "error"
)

// SQLiteRepository is the persistence collaborator backed by a local sqlite
// file. It implements both ledger store ports. Amounts are stored as exact
// decimal strings, never as floats.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// FindUserByID implements ledger.UserStore.
func (r *SQLiteRepository) FindUserByID(ctx context.Context, id string) (ledger.UserRecord, error) {
	const query = `SELECT id, email, tenant_id, role FROM users WHERE id = ?`

	var rec ledger.UserRecord
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.Email, &rec.TenantID, &rec.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.UserRecord{}, ledger.ErrUserNotFound
	}
	if err != nil {
		return ledger.UserRecord{}, fmt.Errorf("find user by id: %w", err)
	}
	return rec, nil
}

// InsertTransaction implements ledger.TransactionStore. The repository owns
// id generation and timestamps; the returned record is the persisted truth.
func (r *SQLiteRepository) InsertTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	const query = `INSERT INTO transactions
		(id, tenant_id, type, amount, category, description, date, created_by, created_at, updated_at, export_state)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	tx.ID = uuid.NewString()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	var description sql.NullString
	if tx.Description != "" {
		description = sql.NullString{String: tx.Description, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.TenantID, string(tx.Kind), tx.Amount.String(), tx.Category,
		description, tx.Date, tx.CreatedBy, tx.CreatedAt, tx.UpdatedAt, ExportPending)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", tx.ID,
		"tenant_id", tx.TenantID,
		"type", tx.Kind,
		"amount", tx.Amount.String())

	return tx, nil
}

// ListTransactions implements ledger.TransactionStore. Ordered by date
// descending with insertion time as a stable tie-break.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, tenantID string) ([]core.Transaction, error) {
	const query = `SELECT id, tenant_id, type, amount, category, description, date, created_by, created_at, updated_at
		FROM transactions
		WHERE tenant_id = ?
		ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// ListTransactionEntries implements ledger.TransactionStore with the narrow
// (kind, amount) projection the summary needs.
func (r *SQLiteRepository) ListTransactionEntries(ctx context.Context, tenantID string) ([]core.EntryAmount, error) {
	const query = `SELECT type, amount FROM transactions WHERE tenant_id = ?`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list transaction entries: %w", err)
	}
	defer rows.Close()

	var entries []core.EntryAmount
	for rows.Next() {
		var kind, amount string
		if err := rows.Scan(&kind, &amount); err != nil {
			return nil, fmt.Errorf("scan transaction entry: %w", err)
		}
		amt, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse stored amount %q: %w", amount, err)
		}
		entries = append(entries, core.EntryAmount{Kind: core.Kind(kind), Amount: amt})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transaction entries: %w", err)
	}
	return entries, nil
}

// GetTransaction retrieves a single transaction by id for the export worker.
func (r *SQLiteRepository) GetTransaction(ctx context.Context, id string) (core.Transaction, error) {
	const query = `SELECT id, tenant_id, type, amount, category, description, date, created_by, created_at, updated_at
		FROM transactions WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	tx, err := scanTransaction(row)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}
	return tx, nil
}

// PendingExport identifies a transaction the export sweep still has to push.
type PendingExport struct {
	ID        string
	TenantID  string
	CreatedAt time.Time
}

// ListPendingExports returns transactions not yet exported, oldest first.
func (r *SQLiteRepository) ListPendingExports(ctx context.Context, limit int) ([]PendingExport, error) {
	const query = `SELECT id, tenant_id, created_at FROM transactions
		WHERE export_state = ?
		ORDER BY created_at ASC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, ExportPending, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending exports: %w", err)
	}
	defer rows.Close()

	var pending []PendingExport
	for rows.Next() {
		var p PendingExport
		if err := rows.Scan(&p.ID, &p.TenantID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pending export: %w", err)
		}
		pending = append(pending, p)
	}
	return pending, rows.Err()
}

// MarkExported marks a transaction as successfully exported.
func (r *SQLiteRepository) MarkExported(ctx context.Context, id string) error {
	return r.setExportState(ctx, id, ExportDone)
}

// MarkExportError marks a transaction whose export attempt failed.
func (r *SQLiteRepository) MarkExportError(ctx context.Context, id string) error {
	return r.setExportState(ctx, id, ExportError)
}

func (r *SQLiteRepository) setExportState(ctx context.Context, id, state string) error {
	const query = `UPDATE transactions SET export_state = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, state, id); err != nil {
		return fmt.Errorf("set export state: %w", err)
	}
	slog.DebugContext(ctx, "Export state updated", "id", id, "state", state)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		tx          core.Transaction
		kind        string
		amount      string
		description sql.NullString
	)
	err := row.Scan(&tx.ID, &tx.TenantID, &kind, &amount, &tx.Category,
		&description, &tx.Date, &tx.CreatedBy, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse stored amount %q: %w", amount, err)
	}
	tx.Kind = core.Kind(kind)
	tx.Amount = amt
	tx.Description = description.String
	return tx, nil
}
