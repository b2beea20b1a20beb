package core

import "github.com/shopspring/decimal"

// Summarize reduces a tenant's (kind, amount) projection into a
// FinancialSummary. Both totals accumulate at full precision and are rounded
// to two decimal places exactly once, after summation, so per-addend rounding
// error cannot compound; decimal.Round rounds half away from zero. The
// balance is the difference of the two already-rounded totals and needs no
// further rounding.
//
// Rows whose kind is neither income nor expense contribute to neither total
// and are excluded from the transaction count as well; corrupted rows must
// not inflate the count of a summary they took no part in.
func Summarize(entries []EntryAmount) FinancialSummary {
	income := decimal.Zero
	expense := decimal.Zero
	count := 0

	for _, e := range entries {
		switch e.Kind {
		case KindIncome:
			income = income.Add(e.Amount)
			count++
		case KindExpense:
			expense = expense.Add(e.Amount)
			count++
		}
	}

	totalIncome := income.Round(2)
	totalExpense := expense.Round(2)

	return FinancialSummary{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Balance:          totalIncome.Sub(totalExpense),
		TransactionCount: count,
	}
}
