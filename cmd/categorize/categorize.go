// Package categorize handles memo categorization commands
package categorize

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/insurance-summary/internal/categorizer"

	"github.com/spf13/cobra"
)

// NotApplicable is printed for memos no rule matches.
const NotApplicable = "not applicable"

var explain bool

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize MEMO",
	Short: "Categorize a payroll memo",
	Long: `Categorize a payroll memo into an insurance category using the same rules
as the summary command. Prints the category, or "not applicable".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Describe(cmd.OutOrStdout(), strings.Join(args, " "), explain)
	},
}

func init() {
	Cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Show which rule matched")
}

// Describe prints the category of memo, and with explain the matching rule.
func Describe(out io.Writer, memo string, explain bool) error {
	rule, ok := categorizer.Match(memo)
	if !ok {
		_, err := fmt.Fprintln(out, NotApplicable)
		return err
	}
	if !explain {
		_, err := fmt.Fprintln(out, rule.Category)
		return err
	}
	reason := fmt.Sprintf("contains %q", rule.Marker)
	if len(rule.Exclude) > 0 {
		reason += fmt.Sprintf(" without %q", strings.Join(rule.Exclude, `", "`))
	}
	_, err := fmt.Fprintf(out, "%s (%s)\n", rule.Category, reason)
	return err
}
