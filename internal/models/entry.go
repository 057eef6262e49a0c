package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNegativeAmount is returned when an entry is built with an amount below zero
var ErrNegativeAmount = errors.New("amount must not be negative")

// FinancialEntry represents one income or expense transaction.
// Values are immutable once constructed.
type FinancialEntry struct {
	id        uuid.UUID
	amount    decimal.Decimal
	category  string
	isExpense bool
}

// NewFinancialEntry creates an entry with a freshly generated ID
func NewFinancialEntry(amount decimal.Decimal, category string, isExpense bool) (FinancialEntry, error) {
	if amount.IsNegative() {
		return FinancialEntry{}, fmt.Errorf("entry %q: %w", category, ErrNegativeAmount)
	}

	return FinancialEntry{
		id:        uuid.New(),
		amount:    amount,
		category:  category,
		isExpense: isExpense,
	}, nil
}

// MustFinancialEntry is like NewFinancialEntry but panics on invalid input.
// Only meant for literal data.
func MustFinancialEntry(amount decimal.Decimal, category string, isExpense bool) FinancialEntry {
	entry, err := NewFinancialEntry(amount, category, isExpense)
	if err != nil {
		panic(err)
	}
	return entry
}

func (e FinancialEntry) ID() uuid.UUID           { return e.id }
func (e FinancialEntry) Amount() decimal.Decimal { return e.amount }
func (e FinancialEntry) Category() string        { return e.category }
func (e FinancialEntry) IsExpense() bool         { return e.isExpense }

// Direction returns the human label for the flow of money
func (e FinancialEntry) Direction() string {
	if e.isExpense {
		return "Expense"
	}
	return "Income"
}
