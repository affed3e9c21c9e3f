package expense

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

func Test_OnNew_ShouldCoerceAmountAndTrimText(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	exp, err := New("e1", created, Draft{
		Amount:      " 12.50 ",
		Date:        "2024-05-01",
		CategoryID:  "c1",
		Description: "  Coffee ",
		Notes:       "\tto go\n",
	})

	require.NoError(t, err)
	assert.Equal(t, Expense{
		ID:          "e1",
		Amount:      12.5,
		Date:        "2024-05-01",
		CategoryID:  "c1",
		Description: "Coffee",
		Notes:       "to go",
		CreatedAt:   created,
	}, exp)
}

func Test_OnNew_ShouldRejectInvalidAmounts(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-3", "1e400"} {
		_, err := New("e1", time.Now(), Draft{Amount: raw, Date: "2024-05-01"})
		assert.True(t, errors.Is(err, customerr.ErrInvalidAmount), raw)
	}
}

func Test_OnApply_ShouldKeepExpenseWhenAmountInvalid(t *testing.T) {
	exp := Expense{ID: "e1", Amount: 3, Description: "Tea"}

	err := exp.Apply(Draft{Amount: "nope", Description: "Coffee"})

	assert.Error(t, err)
	assert.Equal(t, "Tea", exp.Description)
	assert.Equal(t, 3.0, exp.Amount)
}

func Test_ParseDate(t *testing.T) {
	cases := map[string]bool{
		"2024-03-02":  true,
		"2024-02-29":  true,
		"2023-02-29":  false,
		"2024-3-02":   false,
		"2024-13-01":  false,
		"02.03.2024":  false,
		"":            false,
		"2024-03-02x": false,
	}
	for in, want := range cases {
		_, ok := ParseDate(in)
		assert.Equal(t, want, ok, in)
	}
}

func Test_OnDraft_ShouldRoundTripAmount(t *testing.T) {
	exp := Expense{Amount: 12.5, Date: "2024-05-01", CategoryID: "c1"}

	again, err := New("e2", time.Now(), exp.Draft())

	require.NoError(t, err)
	assert.Equal(t, 12.5, again.Amount)
}

func Test_OnSortByDateDesc_ShouldPutInvalidDatesLast(t *testing.T) {
	exps := []Expense{
		{ID: "bad", Date: "yesterday"},
		{ID: "old", Date: "2024-01-15"},
		{ID: "new", Date: "2024-03-02"},
		{ID: "same-a", Date: "2024-02-01"},
		{ID: "same-b", Date: "2024-02-01"},
	}

	SortByDateDesc(exps)

	ids := make([]string, 0, len(exps))
	for _, e := range exps {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"new", "same-a", "same-b", "old", "bad"}, ids)
}
