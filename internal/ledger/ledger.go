// Package ledger owns the transaction and category records of all tenants
// and provides owner-scoped access to them.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Kind discriminates between money coming in and going out. The sign of a
// transaction is derived from its kind, amounts are always positive.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Kinds lists all valid transaction and category kinds.
var Kinds = []Kind{KindIncome, KindExpense}

// Valid reports whether the kind is one of the known kinds.
func (k Kind) Valid() bool {
	return slices.Contains(Kinds, k)
}

// Transaction represents a single income or expense record of a tenant.
type Transaction struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	OwnerID   uint64    `json:"ownerId" gorm:"index"`
	CreatedAt time.Time `json:"createdAt"`
	TransactionEditable
}

// TransactionEditable represents all user configurable parameters of a transaction.
type TransactionEditable struct {
	Description string          `json:"description" example:"Weekly groceries"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(10,2)" example:"54.99"`
	Kind        Kind            `json:"kind" example:"expense"`
	Category    string          `json:"category" example:"Food & Dining"`
	Date        time.Time       `json:"date" example:"2024-02-10T00:00:00Z"`
}

// Categories are referenced by name, not enforced to exist. A transaction
// may name a category that was never created; display layers fall back to a
// default color in that case.
func (e TransactionEditable) validate() error {
	fields := make(map[string]string)

	if e.Description == "" {
		fields["description"] = "description is required"
	}

	if !e.Amount.IsPositive() {
		fields["amount"] = "amount must be positive"
	}

	if !e.Kind.Valid() {
		fields["kind"] = "kind must be one of: income, expense"
	}

	if e.Date.IsZero() {
		fields["date"] = "date is required"
	}

	if len(fields) > 0 {
		return ValidationError{Fields: fields}
	}

	return nil
}

// TransactionPatch is a partial update of a transaction. Nil fields are left
// untouched. The ID, owner and creation timestamp cannot be changed.
type TransactionPatch struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Kind        *Kind            `json:"kind"`
	Category    *string          `json:"category"`
	Date        *time.Time       `json:"date"`
}

// apply merges the patch over an existing editable and returns the result.
func (p TransactionPatch) apply(e TransactionEditable) TransactionEditable {
	if p.Description != nil {
		e.Description = *p.Description
	}

	if p.Amount != nil {
		e.Amount = *p.Amount
	}

	if p.Kind != nil {
		e.Kind = *p.Kind
	}

	if p.Category != nil {
		e.Category = *p.Category
	}

	if p.Date != nil {
		e.Date = normalizeDate(*p.Date)
	}

	return e
}

// Category represents display metadata for grouping transactions.
// Categories are immutable once created.
type Category struct {
	ID      uint64 `json:"id" gorm:"primaryKey"`
	OwnerID uint64 `json:"ownerId" gorm:"index"`
	CategoryEditable
}

// CategoryEditable represents all user configurable parameters of a category.
type CategoryEditable struct {
	Name  string `json:"name" example:"Food & Dining"`
	Kind  Kind   `json:"kind" example:"expense"`
	Color string `json:"color" example:"#f59e0b"`
}

func (e CategoryEditable) validate() error {
	fields := make(map[string]string)

	if e.Name == "" {
		fields["name"] = "name is required"
	}

	if !e.Kind.Valid() {
		fields["kind"] = "kind must be one of: income, expense"
	}

	if e.Color == "" {
		fields["color"] = "color is required"
	}

	if len(fields) > 0 {
		return ValidationError{Fields: fields}
	}

	return nil
}

// normalizeDate truncates a date to midnight UTC. Transactions carry
// calendar dates, not points in time.
func normalizeDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
