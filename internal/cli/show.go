// internal/cli/show.go
package metricspanel

import (
	"github.com/spf13/cobra"
)

// newShowCmd represents the 'show' command group for displaying resources.
func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Group commands for displaying resources",
		Long:  `The 'show' command groups subcommands that display resources or information related to metricspanel.`,
	}
	showCmd.AddCommand(newShowConfigCmd())
	return showCmd
}
