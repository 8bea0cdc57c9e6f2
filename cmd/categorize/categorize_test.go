package categorize_test

import (
	"bytes"
	"testing"

	"fjacquet/insurance-summary/cmd/categorize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize MEMO", categorize.Cmd.Use)
	assert.Contains(t, categorize.Cmd.Short, "Categorize")
	assert.NotNil(t, categorize.Cmd.RunE)

	flag := categorize.Cmd.Flags().Lookup("explain")
	require.NotNil(t, flag)
	assert.Equal(t, "e", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		memo    string
		explain bool
		want    string
	}{
		{"health", "Health Insurance premium", false, "Health Insurance\n"},
		{"s-corp health", "S-Corp Health Insurance", false, "not applicable\n"},
		{"advantage", "Insurance - Advantage Group", false, "Advantage Group Insurance\n"},
		{"unrelated", "Net pay", false, "not applicable\n"},
		{"explained", "Dental Insurance", true, "Dental Insurance (contains \"Dental Insurance\")\n"},
		{"explained exclusion", "Health Insurance", true, "Health Insurance (contains \"Health Insurance\" without \"S-Corp\")\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, categorize.Describe(&out, tt.memo, tt.explain))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestCategorizeCommand_JoinsArguments(t *testing.T) {
	var out bytes.Buffer
	categorize.Cmd.SetOut(&out)
	categorize.Cmd.SetArgs([]string{"WI", "SUI", "Employer"})

	require.NoError(t, categorize.Cmd.Execute())
	assert.Equal(t, "WI SUI Employer\n", out.String())
}
