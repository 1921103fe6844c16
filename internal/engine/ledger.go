package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/patrimonio/wealth-backend/internal/model"
)

// BalanceEntry is one ledger row with the balance after applying it.
type BalanceEntry struct {
	Transaction model.Transaction
	Balance     float64
}

// RunningBalance computes the chronological running balance over the
// given transactions. The input order does not matter: entries are
// sorted ascending by date, ties kept in input order, and signed
// amounts accumulate in that sequence. The balance is always computed
// on date-ascending order regardless of how the result is later
// sorted for display.
func RunningBalance(transactions []model.Transaction) []BalanceEntry {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	entries := make([]BalanceEntry, len(sorted))
	var balance float64
	for i, tx := range sorted {
		balance += tx.Amount
		entries[i] = BalanceEntry{Transaction: tx, Balance: balance}
	}
	return entries
}

// CashPositionAt computes the cumulative cash position at the given
// date: the sum of every transaction amount dated on or before it.
// The position is recomputed from the inputs on every call, never
// cached.
func CashPositionAt(transactions []model.Transaction, date time.Time) float64 {
	var sum float64
	for _, tx := range transactions {
		if !tx.Date.After(date) {
			sum += tx.Amount
		}
	}
	return sum
}

// SortField selects the display ordering of ledger entries.
type SortField string

// Display sort fields. Display ordering is purely presentational and
// independent of the balance computation.
const (
	SortByDate        SortField = "date"
	SortByAmount      SortField = "amount"
	SortByDescription SortField = "description"
	SortByCategory    SortField = "category"
)

// SortForDisplay reorders computed balance entries for presentation.
// The balances themselves are untouched; they were fixed by the
// date-ascending accumulation in RunningBalance.
func SortForDisplay(entries []BalanceEntry, field SortField, descending bool) []BalanceEntry {
	sorted := make([]BalanceEntry, len(entries))
	copy(sorted, entries)

	less := func(i, j int) bool {
		a, b := sorted[i].Transaction, sorted[j].Transaction
		switch field {
		case SortByAmount:
			return a.Amount < b.Amount
		case SortByDescription:
			return strings.ToLower(a.Description) < strings.ToLower(b.Description)
		case SortByCategory:
			return strings.ToLower(deref(a.Category)) < strings.ToLower(deref(b.Category))
		default:
			return a.Date.Before(b.Date)
		}
	}
	if descending {
		sort.SliceStable(sorted, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(sorted, less)
	}
	return sorted
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
