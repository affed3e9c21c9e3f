package category

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

func Test_OnDefaults_ShouldSeedFiveDefaultCategories(t *testing.T) {
	n := 0
	cats := Defaults(func() string {
		n++
		return strconv.Itoa(n)
	})

	require.Len(t, cats, 5)
	assert.Equal(t, "Food", cats[0].Name)
	assert.Equal(t, "Other", cats[4].Name)
	for _, c := range cats {
		assert.True(t, c.IsDefault)
		assert.NotEmpty(t, c.ID)
	}
}

func Test_OnNew_ShouldApplyDefaultsAndTrimName(t *testing.T) {
	cat, err := New("c1", Draft{Name: "  Pets "})

	require.NoError(t, err)
	assert.Equal(t, Category{ID: "c1", Name: "Pets", Color: DefaultColor, Icon: DefaultIcon}, cat)
}

func Test_OnNew_ShouldRejectBlankName(t *testing.T) {
	_, err := New("c1", Draft{Name: "   "})

	assert.True(t, errors.Is(err, customerr.ErrInvalidName))
}

func Test_OnApply_ShouldKeepIsDefaultAndBlankFields(t *testing.T) {
	cat := Category{ID: "c1", Name: "Food", Color: "#FF6384", Icon: "🍔", IsDefault: true}

	require.NoError(t, cat.Apply(Draft{Name: "Groceries", Icon: "🛒"}))

	assert.Equal(t, Category{ID: "c1", Name: "Groceries", Color: "#FF6384", Icon: "🛒", IsDefault: true}, cat)
}

func Test_HasName_ShouldIgnoreCase(t *testing.T) {
	cat := Category{Name: "food"}

	assert.True(t, cat.HasName("FOOD"))
	assert.True(t, cat.HasName(" Food "))
	assert.False(t, cat.HasName("Fo od"))
}
