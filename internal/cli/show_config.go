// internal/cli/show_config.go
package metricspanel

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/metricspanel/internal/appconfig"
	"github.com/spf13/cobra"
)

// newShowConfigCmd implements 'show config'.
func newShowConfigCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show config settings",
		Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags and environment accordingly.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig()
			if dump {
				_, err := pp.Fprintln(cmd.OutOrStdout(), cfg)
				return err
			}
			appconfig.ShowConfig(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "pretty-print the resolved configuration struct")
	return cmd
}
