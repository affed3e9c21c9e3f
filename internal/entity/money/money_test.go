package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnParse_ShouldAcceptDecimalInput(t *testing.T) {
	v, err := Parse(" 12.50")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	_, err = Parse("12,50")
	assert.Error(t, err)
}

func Test_Total_ShouldNotDrift(t *testing.T) {
	var total Total
	total.Add(0.1)
	total.Add(0.2)

	assert.Equal(t, 0.3, total.Float64())
}

func Test_Format(t *testing.T) {
	assert.Equal(t, "12.5", Format(12.5))
	assert.Equal(t, "100", Format(100))
}
