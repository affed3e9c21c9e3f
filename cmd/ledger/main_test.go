package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "storage:\n  driver: sqlite\n  path: " + filepath.Join(dir, "ledger.db") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	return path
}

func run(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func Test_OnAddExpenseAndReport_ShouldShowSpending(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, cfg, "category", "add", "Coffee", "--icon", "☕")
	require.NoError(t, err)
	_, err = run(t, cfg, "expense", "add", "3.5", "coffee", "--date", "2024-05-02", "--description", "Latte")
	require.NoError(t, err)
	_, err = run(t, cfg, "expense", "add", "20", "Food", "--date", "2024-05-03", "--description", "Lunch")
	require.NoError(t, err)

	out, err := run(t, cfg, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "Spending for 2024-05")
	assert.Contains(t, out, "☕ Coffee: 3.50")
	assert.Contains(t, out, "Total: 23.50 (2 expenses)")

	out, err = run(t, cfg, "expense", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Latte")
	assert.Contains(t, out, "Coffee")
}

func Test_OnBudgetSetAndGet_ShouldResolveCategoryByName(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, cfg, "budget", "set", "food", "150")
	require.NoError(t, err)

	out, err := run(t, cfg, "budget", "get", "Food")
	require.NoError(t, err)
	assert.Equal(t, "Food: 150\n", out)

	out, err = run(t, cfg, "budget", "save", "Transport=40")
	require.NoError(t, err)
	assert.Equal(t, "Budgets saved\n", out)

	out, err = run(t, cfg, "budget", "get", "Food")
	require.NoError(t, err)
	assert.Equal(t, "Food has no budget\n", out)
}

func Test_OnDeleteUnknownCategory_ShouldFailWithNotFound(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, cfg, "category", "delete", "Nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, customerr.ErrNotFound))
	assert.Equal(t, customerr.UserMessage(customerr.ErrNotFound), describeError(err))
}

func Test_OnBudgetSaveWithSameCategoryTwice_ShouldKeepBudgets(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, cfg, "budget", "set", "Food", "150")
	require.NoError(t, err)

	_, err = run(t, cfg, "budget", "save", "Food=1", "food=2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, customerr.ErrRepeatedCategory))

	_, err = run(t, cfg, "budget", "save", "Food")
	require.Error(t, err)

	out, err := run(t, cfg, "budget", "get", "Food")
	require.NoError(t, err)
	assert.Equal(t, "Food: 150\n", out)
}
