package budget

import (
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/expense-ledger/internal/entity/money"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

// Budgets maps a category id to its spending ceiling.
// A missing key means no budget, which is not the same as a zero budget.
type Budgets map[string]float64

// ParseAmount accepts finite numbers greater than or equal to zero.
func ParseAmount(raw string) (float64, error) {
	amount, err := money.Parse(raw)
	if err != nil {
		return 0, errors.Wrap(customerr.ErrInvalidAmount, err.Error())
	}
	if amount < 0 {
		return 0, errors.Wrapf(customerr.ErrInvalidAmount, "budget %q is negative", raw)
	}
	return amount, nil
}

func (b Budgets) Get(categoryID string) (float64, bool) {
	amount, ok := b[categoryID]
	return amount, ok
}

func (b Budgets) Clone() Budgets {
	res := make(Budgets, len(b))
	for k, v := range b {
		res[k] = v
	}
	return res
}

// Equal reports whether both mappings hold the same entries.
func (b Budgets) Equal(other Budgets) bool {
	if len(b) != len(other) {
		return false
	}
	for k, v := range b {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Assignment is one "<category>=<amount>" argument. An empty amount clears
// the budget.
type Assignment struct {
	Category string
	Amount   string
}

// ParseAssignments returns false when an argument is not of that form.
func ParseAssignments(args []string) ([]Assignment, bool) {
	res := make([]Assignment, 0, len(args))
	for _, arg := range args {
		name, amount, found := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, false
		}
		res = append(res, Assignment{Category: name, Amount: strings.TrimSpace(amount)})
	}
	return res, true
}

// Inputs keys the amounts by category id. A category reached twice, under
// any spelling, fails with ErrRepeatedCategory.
func Inputs(assignments []Assignment, categoryID func(ref string) (string, error)) (map[string]string, error) {
	res := make(map[string]string, len(assignments))
	for _, a := range assignments {
		id, err := categoryID(a.Category)
		if err != nil {
			return nil, err
		}
		if _, seen := res[id]; seen {
			return nil, errors.Wrapf(customerr.ErrRepeatedCategory, "category %q", a.Category)
		}
		res[id] = a.Amount
	}
	return res, nil
}
