package expense

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-ledger/internal/entity/money"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

// DateLayout is the calendar date format of Expense.Date.
const DateLayout = "2006-01-02"

type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Date        string    `json:"date"`
	CategoryID  string    `json:"categoryId"`
	Description string    `json:"description"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Draft holds raw input for creating or replacing an expense.
type Draft struct {
	Amount      string
	Date        string
	CategoryID  string
	Description string
	Notes       string
}

func New(id string, createdAt time.Time, draft Draft) (Expense, error) {
	exp := Expense{ID: id, CreatedAt: createdAt}
	if err := exp.Apply(draft); err != nil {
		return Expense{}, err
	}
	return exp, nil
}

// Apply replaces every field except ID and CreatedAt.
// The expense is left untouched when the draft amount is invalid.
func (e *Expense) Apply(draft Draft) error {
	amount, err := ParseAmount(draft.Amount)
	if err != nil {
		return err
	}
	e.Amount = amount
	e.Date = strings.TrimSpace(draft.Date)
	e.CategoryID = strings.TrimSpace(draft.CategoryID)
	e.Description = strings.TrimSpace(draft.Description)
	e.Notes = strings.TrimSpace(draft.Notes)
	return nil
}

// Day returns the parsed date; ok is false when Date is not a calendar date.
func (e Expense) Day() (day time.Time, ok bool) {
	return ParseDate(e.Date)
}

// ParseAmount accepts finite numbers strictly greater than zero.
func ParseAmount(raw string) (float64, error) {
	amount, err := money.Parse(raw)
	if err != nil {
		return 0, errors.Wrap(customerr.ErrInvalidAmount, err.Error())
	}
	if amount <= 0 {
		return 0, errors.Wrapf(customerr.ErrInvalidAmount, "amount %q is not positive", raw)
	}
	return amount, nil
}

// ParseDate parses a zero padded YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, bool) {
	if len(s) != len(DateLayout) {
		return time.Time{}, false
	}
	day, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// Draft converts a stored expense back to input form, handy for partial edits.
func (e Expense) Draft() Draft {
	return Draft{
		Amount:      money.Format(e.Amount),
		Date:        e.Date,
		CategoryID:  e.CategoryID,
		Description: e.Description,
		Notes:       e.Notes,
	}
}

// SortByDateDesc orders expenses newest first, keeping expenses
// without a valid date at the end. The sort is stable.
func SortByDateDesc(exps []Expense) {
	sort.SliceStable(exps, func(i, j int) bool {
		di, okI := exps[i].Day()
		dj, okJ := exps[j].Day()
		if okI != okJ {
			return okI
		}
		return okI && di.After(dj)
	})
}
