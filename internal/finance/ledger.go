package finance

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Expense is one category line of a Ledger.
type Expense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Share is a category's fraction of the ledger total, in [0, 1].
type Share struct {
	Category string
	Fraction float64
}

// Ledger maps category names to monthly amounts. Categories are unique and
// keep insertion order, which only matters for display.
type Ledger struct {
	items []Expense
	index map[string]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// Add appends a category. The name must be new and the amount a
// non-negative number.
func (l *Ledger) Add(category string, amount float64) error {
	name := strings.TrimSpace(category)
	if name == "" {
		return fmt.Errorf("%w: category name is empty", ErrInvalidArgument)
	}
	if !isFinite(amount) || amount < 0 {
		return fmt.Errorf("%w: %s amount %v must be a non-negative number", ErrInvalidArgument, name, amount)
	}
	if l.index == nil {
		l.index = make(map[string]int)
	}
	if _, ok := l.index[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
	}
	l.index[name] = len(l.items)
	l.items = append(l.items, Expense{Category: name, Amount: amount})
	return nil
}

// Len returns the number of categories.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Items returns a copy of the lines in insertion order.
func (l *Ledger) Items() []Expense {
	out := make([]Expense, len(l.items))
	copy(out, l.items)
	return out
}

// Amount returns the amount recorded for category.
func (l *Ledger) Amount(category string) (float64, bool) {
	i, ok := l.index[category]
	if !ok {
		return 0, false
	}
	return l.items[i].Amount, true
}

// Total sums every category.
func (l *Ledger) Total() float64 {
	return lo.SumBy(l.items, func(e Expense) float64 { return e.Amount })
}

// Columns splits the lines into two display columns.
func (l *Ledger) Columns() (left, right []Expense) {
	return SplitColumns(l.Items())
}

// Shares returns each category's fraction of the total.
func (l *Ledger) Shares() []Share {
	return SharesOf(l.items)
}

// SplitColumns splits expenses for a two-column layout. The left column
// holds the first len/2 lines.
func SplitColumns(items []Expense) (left, right []Expense) {
	mid := len(items) / 2
	return items[:mid], items[mid:]
}

// SharesOf returns each expense's fraction of their sum. Every fraction is
// zero when the sum is zero.
func SharesOf(items []Expense) []Share {
	total := lo.SumBy(items, func(e Expense) float64 { return e.Amount })
	return lo.Map(items, func(e Expense, _ int) Share {
		s := Share{Category: e.Category}
		if total > 0 {
			s.Fraction = e.Amount / total
		}
		return s
	})
}
