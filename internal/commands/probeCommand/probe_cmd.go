package probeCommand

import (
	"fmt"

	"github.com/redjax/droidutil/internal/app"
	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
	"github.com/spf13/cobra"
)

func NewProbeCmd(a *app.App) *cobra.Command {
	probeCmd := &cobra.Command{
		Use:   "probe [capability...]",
		Short: "Report which hardware and platform features the device has",
		Long: `Query device capabilities and print one row per capability.

Each row is supported, unsupported, or query failed when the device could not
answer. Without arguments every capability is probed. Run 'droidutil probe list'
for the accepted names.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.Device()
			ctx := cmd.Context()

			var caps []deviceservice.Capability
			if len(args) == 0 {
				caps = d.ProbeAll(ctx)
			} else {
				for _, name := range args {
					c, err := d.Probe(ctx, name)
					if err != nil {
						return err
					}
					caps = append(caps, c)
				}
			}

			renderCapabilities(cmd.OutOrStdout(), caps)
			return nil
		},
	}

	probeCmd.AddCommand(newListCmd())
	probeCmd.AddCommand(newPackageCmd(a))

	return probeCmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List capability names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range deviceservice.CapabilityNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newPackageCmd(a *app.App) *cobra.Command {
	var ignoreState bool

	cmd := &cobra.Command{
		Use:   "package <name>",
		Short: "Check whether a package is installed and enabled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.Device().IsPackageInstalled(cmd.Context(), args[0], ignoreState)
			c.Name = deviceservice.CapabilityName(args[0])
			renderCapabilities(cmd.OutOrStdout(), []deviceservice.Capability{c})
			return nil
		},
	}

	cmd.Flags().BoolVar(&ignoreState, "ignore-state", false, "Count disabled packages as installed")

	return cmd
}
