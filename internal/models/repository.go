package models

import (
	"github.com/shopspring/decimal"
)

// EntryRepository holds the fixed list of entries shown by the tracker.
// The list is built once and never changes for the lifetime of the process.
type EntryRepository struct {
	entries []FinancialEntry
}

// NewEntryRepository creates a repository over the given entries, preserving order
func NewEntryRepository(entries []FinancialEntry) *EntryRepository {
	stored := make([]FinancialEntry, len(entries))
	copy(stored, entries)

	return &EntryRepository{entries: stored}
}

// NewSampleRepository creates the repository with the built-in budget entries
func NewSampleRepository() *EntryRepository {
	return NewEntryRepository(SampleEntries())
}

// SampleEntries returns the hardcoded budget entries in display order
func SampleEntries() []FinancialEntry {
	return []FinancialEntry{
		MustFinancialEntry(decimal.NewFromInt(3000), "Income", false),
		MustFinancialEntry(decimal.NewFromInt(120), "Groceries", true),
		MustFinancialEntry(decimal.NewFromInt(500), "Technology", true),
		MustFinancialEntry(decimal.NewFromInt(10), "Subscription", true),
	}
}

// Entries returns a copy of the stored entries
func (r *EntryRepository) Entries() []FinancialEntry {
	out := make([]FinancialEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns the number of entries
func (r *EntryRepository) Count() int {
	return len(r.entries)
}
