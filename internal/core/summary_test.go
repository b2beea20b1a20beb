package core

import "testing"

func TestSummarizeBasic(t *testing.T) {
	got := Summarize([]EntryAmount{
		{Kind: KindIncome, Amount: dec("500")},
		{Kind: KindExpense, Amount: dec("150")},
	})
	if !got.TotalIncome.Equal(dec("500")) {
		t.Fatalf("totalIncome = %s, want 500", got.TotalIncome)
	}
	if !got.TotalExpense.Equal(dec("150")) {
		t.Fatalf("totalExpense = %s, want 150", got.TotalExpense)
	}
	if !got.Balance.Equal(dec("350")) {
		t.Fatalf("balance = %s, want 350", got.Balance)
	}
	if got.TransactionCount != 2 {
		t.Fatalf("transactionCount = %d, want 2", got.TransactionCount)
	}
}

func TestSummarizeRoundsOnceAfterSummation(t *testing.T) {
	// Already-stored floating data may carry more than two decimals; the
	// totals are rounded once, at the end, not per addend.
	got := Summarize([]EntryAmount{
		{Kind: KindIncome, Amount: dec("100.333")},
		{Kind: KindExpense, Amount: dec("50.667")},
	})
	if !got.TotalIncome.Equal(dec("100.33")) {
		t.Fatalf("totalIncome = %s, want 100.33", got.TotalIncome)
	}
	if !got.TotalExpense.Equal(dec("50.67")) {
		t.Fatalf("totalExpense = %s, want 50.67", got.TotalExpense)
	}
	if !got.Balance.Equal(dec("49.66")) {
		t.Fatalf("balance = %s, want 49.66", got.Balance)
	}
}

func TestSummarizeNoPerAddendRounding(t *testing.T) {
	// Each addend alone rounds to 0.33/0.34; summed first they make 1.00.
	got := Summarize([]EntryAmount{
		{Kind: KindIncome, Amount: dec("0.333")},
		{Kind: KindIncome, Amount: dec("0.333")},
		{Kind: KindIncome, Amount: dec("0.334")},
	})
	if !got.TotalIncome.Equal(dec("1.00")) {
		t.Fatalf("totalIncome = %s, want 1.00", got.TotalIncome)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if !got.TotalIncome.IsZero() || !got.TotalExpense.IsZero() || !got.Balance.IsZero() {
		t.Fatalf("empty set should be all zeros, got %+v", got)
	}
	if got.TransactionCount != 0 {
		t.Fatalf("empty set count = %d, want 0", got.TransactionCount)
	}
}

func TestSummarizeExcludesUnknownKinds(t *testing.T) {
	got := Summarize([]EntryAmount{
		{Kind: KindIncome, Amount: dec("10")},
		{Kind: Kind("transfer"), Amount: dec("99")},
		{Kind: KindExpense, Amount: dec("4")},
	})
	if !got.TotalIncome.Equal(dec("10")) || !got.TotalExpense.Equal(dec("4")) {
		t.Fatalf("unknown kind leaked into totals: %+v", got)
	}
	if got.TransactionCount != 2 {
		t.Fatalf("unknown kind should not inflate count, got %d", got.TransactionCount)
	}
}
