package root_test

import (
	"testing"

	"fjacquet/budget-sync/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "budget-sync", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Long, "reconciles category budgets")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestInit_Flags(t *testing.T) {
	root.Init()

	for name, short := range map[string]string{"ledger": "l", "budgets": "b", "format": "f", "output": "o"} {
		flag := root.Cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, short, flag.Shorthand)
	}
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("log-level"))
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("log-format"))
}

func TestSetup(t *testing.T) {
	originalFlags := root.SharedFlags
	originalOverrides := root.LogOverrides
	t.Cleanup(func() {
		root.SharedFlags = originalFlags
		root.LogOverrides = originalOverrides
		root.AppConfig = nil
		root.AppContainer = nil
	})

	root.SharedFlags = root.CommonFlags{}
	root.LogOverrides = root.LogFlags{Level: "debug"}

	require.NoError(t, root.Setup())
	require.NotNil(t, root.GetContainer())
	assert.Equal(t, "debug", root.GetConfig().Log.Level)
	assert.Equal(t, root.GetConfig().Data.BudgetsFile, root.SharedFlags.Budgets)
	assert.Equal(t, root.GetConfig().Report.Format, root.SharedFlags.Format)
}
