package root_test

import (
	"bytes"
	"errors"
	"testing"

	"fjacquet/insurance-summary/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "insurance-summary", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "payroll insurance")
	assert.Contains(t, root.Cmd.Long, "one sheet per insurance category")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"config", "log-level", "log-format"} {
		flag := root.Cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Empty(t, flag.DefValue)
		assert.NotEmpty(t, flag.Usage)
	}

	// Init is idempotent.
	assert.NotPanics(t, root.Init)
}

func TestSetup_BuildsContainer(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	root.Flags.LogLevel = "debug"
	t.Cleanup(func() { root.Flags.LogLevel = "" })

	cmd := &cobra.Command{Use: "check"}
	require.NoError(t, root.Setup(cmd, nil))
	require.NotNil(t, root.AppContainer)
	assert.Equal(t, "debug", root.AppContainer.GetConfig().Log.Level)
	assert.Equal(t, "Insurance_Summary.xlsx", root.AppContainer.GetConfig().Output.File)
}

func TestSetup_InvalidConfig(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("INSSUM_OUTPUT_MODE", "sideways")

	err := root.Setup(&cobra.Command{Use: "check"}, nil)
	assert.Error(t, err)
}

func TestExecute_ReportsErrors(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	fail := &cobra.Command{
		Use: "fail-check",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("broken input")
		},
	}
	quiet := &cobra.Command{
		Use: "quiet-check",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.Join(root.ErrReported, errors.New("shown already"))
		},
	}
	root.Cmd.AddCommand(fail, quiet)
	t.Cleanup(func() { root.Cmd.RemoveCommand(fail, quiet) })

	var errOut bytes.Buffer
	root.Cmd.SetArgs([]string{"fail-check"})
	assert.Equal(t, 1, root.Execute(&errOut))
	assert.Equal(t, "Error: broken input\n", errOut.String())

	errOut.Reset()
	root.Cmd.SetArgs([]string{"quiet-check"})
	assert.Equal(t, 1, root.Execute(&errOut))
	assert.Empty(t, errOut.String())

	root.Cmd.SetArgs([]string{"--help"})
	root.Cmd.SetOut(&bytes.Buffer{})
	assert.Equal(t, 0, root.Execute(&errOut))
}
