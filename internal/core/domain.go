package core

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleTreasurer Role = "treasurer"
	RoleViewer    Role = "viewer"

	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"

	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

type (
	// Role is the access level granted to an actor within its tenant.
	Role string

	// Permission is a single capability a role may hold.
	Permission string

	// Kind distinguishes money coming in from money going out.
	Kind string

	// Actor is the authenticated party performing an operation. Actors are
	// built only by the identity resolver after the raw store record has
	// been re-validated; an Actor value always has a tenant and a known role.
	Actor struct {
		ID       string
		Email    string
		TenantID string
		Role     Role
	}

	// Transaction is a single ledger entry owned by exactly one tenant.
	// Amount is always positive with at most two fractional digits; an empty
	// Description means the field is absent. Date is a calendar date in
	// YYYY-MM-DD form with no time component.
	Transaction struct {
		ID          string          `json:"id"`
		TenantID    string          `json:"tenant_id"`
		Kind        Kind            `json:"type"`
		Amount      decimal.Decimal `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description,omitempty"`
		Date        string          `json:"date"`
		CreatedBy   string          `json:"created_by"`
		CreatedAt   time.Time       `json:"created_at"`
		UpdatedAt   time.Time       `json:"updated_at"`
	}

	// TransactionInput is the untrusted payload for recording a transaction.
	TransactionInput struct {
		Kind        string          `json:"type"`
		Amount      decimal.Decimal `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Date        string          `json:"date"`
	}

	// Draft is the canonical form of a validated TransactionInput: kind is a
	// known enum value, category and description are trimmed, and an
	// empty-after-trim description has been normalized to absent.
	Draft struct {
		Kind        Kind
		Amount      decimal.Decimal
		Category    string
		Description string
		Date        string
	}

	// EntryAmount is the narrow (kind, amount) projection the summary
	// reduction works on; it never needs ids or descriptions.
	EntryAmount struct {
		Kind   Kind
		Amount decimal.Decimal
	}

	// FinancialSummary is the derived income/expense/balance/count aggregate
	// for one tenant. It is recomputed from the live transaction set on every
	// request and never persisted.
	FinancialSummary struct {
		TotalIncome      decimal.Decimal `json:"totalIncome"`
		TotalExpense     decimal.Decimal `json:"totalExpense"`
		Balance          decimal.Decimal `json:"balance"`
		TransactionCount int             `json:"transactionCount"`
	}
)

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleTreasurer || r == RoleViewer
}

// Valid reports whether the kind is income or expense.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// DateLayout is the calendar-date format used across the ledger.
const DateLayout = "2006-01-02"
