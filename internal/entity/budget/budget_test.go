package budget

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

func Test_OnParseAmount_ShouldAllowZero(t *testing.T) {
	v, err := ParseAmount("0")

	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func Test_OnParseAmount_ShouldRejectNegativeAndGarbage(t *testing.T) {
	for _, raw := range []string{"-1", "ten", ""} {
		_, err := ParseAmount(raw)
		assert.True(t, errors.Is(err, customerr.ErrInvalidAmount), raw)
	}
}

func Test_Budgets_ShouldDistinguishZeroFromMissing(t *testing.T) {
	b := Budgets{"c1": 0}

	v, ok := b.Get("c1")
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)

	_, ok = b.Get("c2")
	assert.False(t, ok)
}

func Test_Budgets_CloneAndEqual(t *testing.T) {
	b := Budgets{"c1": 10, "c2": 0}
	c := b.Clone()

	assert.True(t, b.Equal(c))
	c["c1"] = 11
	assert.False(t, b.Equal(c))
	assert.Equal(t, 10.0, b["c1"])
}

func Test_OnParseAssignments_ShouldTrimAndKeepBlankAmounts(t *testing.T) {
	got, ok := ParseAssignments([]string{"Food=100", " Fun = "})

	require.True(t, ok)
	assert.Equal(t, []Assignment{{Category: "Food", Amount: "100"}, {Category: "Fun", Amount: ""}}, got)

	_, ok = ParseAssignments([]string{"Food"})
	assert.False(t, ok)
	_, ok = ParseAssignments([]string{"=5"})
	assert.False(t, ok)
}

func Test_OnInputsWithSameCategoryTwice_ShouldFail(t *testing.T) {
	byName := func(ref string) (string, error) {
		switch ref {
		case "Food", "food":
			return "c1", nil
		case "Fun":
			return "c3", nil
		}
		return "", errors.Wrap(customerr.ErrNotFound, ref)
	}

	inputs, err := Inputs([]Assignment{{Category: "Food", Amount: "1"}, {Category: "Fun"}}, byName)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"c1": "1", "c3": ""}, inputs)

	_, err = Inputs([]Assignment{{Category: "Food", Amount: "1"}, {Category: "food", Amount: "2"}}, byName)
	assert.True(t, errors.Is(err, customerr.ErrRepeatedCategory))

	_, err = Inputs([]Assignment{{Category: "Nope", Amount: "1"}}, byName)
	assert.True(t, errors.Is(err, customerr.ErrNotFound))
}
