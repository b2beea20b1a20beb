package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"tally/internal/core"
	"tally/internal/ledger"
)

func amt(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFindUserByID(t *testing.T) {
	store := New()
	store.SeedUser(ledger.UserRecord{ID: "u1", Email: "a@b.test", TenantID: "t1", Role: "viewer"})

	rec, err := store.FindUserByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if rec.TenantID != "t1" || rec.Role != "viewer" {
		t.Fatalf("unexpected record %+v", rec)
	}

	if _, err := store.FindUserByID(context.Background(), "missing"); !errors.Is(err, ledger.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListTransactionsOrderAndIsolation(t *testing.T) {
	store := New()
	ctx := context.Background()

	seed := []core.Transaction{
		{TenantID: "t1", Kind: core.KindIncome, Amount: amt("10"), Category: "a", Date: "2025-01-01", CreatedBy: "u1"},
		{TenantID: "t1", Kind: core.KindExpense, Amount: amt("5"), Category: "b", Date: "2025-03-01", CreatedBy: "u1"},
		{TenantID: "t2", Kind: core.KindIncome, Amount: amt("99"), Category: "c", Date: "2025-02-01", CreatedBy: "u2"},
	}
	for _, tx := range seed {
		if _, err := store.InsertTransaction(ctx, tx); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	txs, err := store.ListTransactions(ctx, "t1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions for t1, got %d", len(txs))
	}
	if txs[0].Date != "2025-03-01" || txs[1].Date != "2025-01-01" {
		t.Fatalf("expected date-descending order, got %s then %s", txs[0].Date, txs[1].Date)
	}
	for _, tx := range txs {
		if tx.TenantID != "t1" {
			t.Fatalf("tenant t2 data leaked into t1 listing: %+v", tx)
		}
		if tx.ID == "" {
			t.Fatalf("insert should assign an id")
		}
	}

	entries, err := store.ListTransactionEntries(ctx, "t1")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}
