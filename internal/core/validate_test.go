package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestValidateInputAccepts(t *testing.T) {
	cases := []TransactionInput{
		{Kind: "income", Amount: dec("0.01"), Category: "Dues"},
		{Kind: "expense", Amount: dec("1000000.00"), Category: "Rent", Date: "2025-06-30"},
		{Kind: "income", Amount: dec("500"), Category: "  Grants  ", Description: "  annual grant  "},
	}
	for i, in := range cases {
		if _, err := ValidateInput(in); err != nil {
			t.Fatalf("case %d: expected ok, got %v", i, err)
		}
	}
}

func TestValidateInputNormalizes(t *testing.T) {
	draft, err := ValidateInput(TransactionInput{
		Kind:        "expense",
		Amount:      dec("12.50"),
		Category:    "  Utilities ",
		Description: "   ",
		Date:        "2025-01-15",
	})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if draft.Category != "Utilities" {
		t.Fatalf("category should be trimmed, got %q", draft.Category)
	}
	if draft.Description != "" {
		t.Fatalf("whitespace-only description should become absent, got %q", draft.Description)
	}
	if draft.Kind != KindExpense {
		t.Fatalf("expected expense kind, got %q", draft.Kind)
	}
}

func TestValidateInputRejects(t *testing.T) {
	cases := []struct {
		name  string
		in    TransactionInput
		field string
	}{
		{"unknown kind", TransactionInput{Kind: "transfer", Amount: dec("1"), Category: "c"}, "type"},
		{"case-sensitive kind", TransactionInput{Kind: "Income", Amount: dec("1"), Category: "c"}, "type"},
		{"zero amount", TransactionInput{Kind: "income", Amount: dec("0"), Category: "c"}, "amount"},
		{"negative amount", TransactionInput{Kind: "income", Amount: dec("-5"), Category: "c"}, "amount"},
		{"three decimals", TransactionInput{Kind: "income", Amount: dec("100.333"), Category: "c"}, "amount"},
		{"missing category", TransactionInput{Kind: "income", Amount: dec("1")}, "category"},
		{"whitespace category", TransactionInput{Kind: "income", Amount: dec("1"), Category: "   "}, "category"},
		{"long category", TransactionInput{Kind: "income", Amount: dec("1"), Category: strings.Repeat("x", 101)}, "category"},
		{"long description", TransactionInput{Kind: "income", Amount: dec("1"), Category: "c", Description: strings.Repeat("x", 501)}, "description"},
		{"bad date format", TransactionInput{Kind: "income", Amount: dec("1"), Category: "c", Date: "15-01-2025"}, "date"},
		{"impossible date", TransactionInput{Kind: "income", Amount: dec("1"), Category: "c", Date: "2025-02-30"}, "date"},
	}
	for _, tc := range cases {
		_, err := ValidateInput(tc.in)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		found := false
		for _, f := range vErr.Fields {
			if f.Field == tc.field {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: expected a %q field error, got %+v", tc.name, tc.field, vErr.Fields)
		}
	}
}

func TestValidateInputCollectsAllFields(t *testing.T) {
	_, err := ValidateInput(TransactionInput{
		Kind:   "transfer",
		Amount: dec("-1"),
		Date:   "bad",
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 4 {
		t.Fatalf("expected all 4 field violations reported, got %d: %+v", len(vErr.Fields), vErr.Fields)
	}
}
