package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/config"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

func Test_OnBuildWithSQLite_ShouldPersistBetweenRuns(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")
	cfg, err := config.Parse([]byte("storage:\n  driver: sqlite\n  path: " + path + "\n"))
	require.NoError(t, err)

	c, err := Build(ctx, cfg)
	require.NoError(t, err)
	cats, err := c.Ledger.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 5)
	_, err = c.Ledger.AddExpense(ctx, expense.Draft{Amount: "12.50", Date: "2024-05-01", CategoryID: cats[0].ID, Description: "Coffee"})
	require.NoError(t, err)
	c.Close()

	c, err = Build(ctx, cfg)
	require.NoError(t, err)
	defer c.Close()

	report, err := c.Generator.Analytics(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-05", report.Window.Label)
	assert.Equal(t, 12.5, report.Total)
	assert.Equal(t, cats[0].Name, report.Categories[0].Name)

	again, err := c.Ledger.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, cats, again)
}
