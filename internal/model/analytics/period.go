// Package analytics turns ledger data into windowed views: category and
// description breakdowns, budget utilization and the dashboard summary.
package analytics

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

const monthLabelLayout = "2006-01"

// Window is an inclusive date range. Start is midnight of the first day,
// End is the last instant of the last day.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Contains reports whether a calendar day lies inside the window.
func (w Window) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

type Resolver struct {
	clock func() time.Time
}

func NewResolver(clock func() time.Time) *Resolver {
	if clock == nil {
		clock = time.Now
	}
	return &Resolver{clock: clock}
}

// Resolve picks the window for a view. When both bounds are valid dates
// they are used as is; otherwise the window is the most recent month that
// has expenses.
func (r *Resolver) Resolve(exps []expense.Expense, start, end string) (Window, error) {
	from, okFrom := expense.ParseDate(start)
	to, okTo := expense.ParseDate(end)
	if !okFrom || !okTo {
		return r.MostRecentMonth(exps), nil
	}
	if to.Before(from) {
		return Window{}, errors.Wrapf(customerr.ErrInvalidDateRange, "%s to %s", start, end)
	}
	return Window{
		Start: from,
		End:   now.With(to).EndOfDay(),
		Label: fmt.Sprintf("%s to %s", start, end),
	}, nil
}

// MostRecentMonth returns the calendar month of the latest valid expense
// date, or the current month when there is none.
func (r *Resolver) MostRecentMonth(exps []expense.Expense) Window {
	latest := ""
	for _, exp := range exps {
		if _, ok := exp.Day(); ok && exp.Date > latest {
			latest = exp.Date
		}
	}

	var month time.Time
	if day, ok := expense.ParseDate(latest); ok {
		month = day
	} else {
		t := r.clock()
		month = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return monthWindow(month)
}

func monthWindow(day time.Time) Window {
	n := now.With(day)
	start := n.BeginningOfMonth()
	return Window{
		Start: start,
		End:   n.EndOfMonth(),
		Label: start.Format(monthLabelLayout),
	}
}

// FilterExpenses keeps expenses whose date is valid and inside the window.
func FilterExpenses(exps []expense.Expense, w Window) []expense.Expense {
	res := make([]expense.Expense, 0)
	for _, exp := range exps {
		if day, ok := exp.Day(); ok && w.Contains(day) {
			res = append(res, exp)
		}
	}
	return res
}
