package actionCommand

import (
	"fmt"

	"github.com/redjax/droidutil/internal/app"
	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
	"github.com/spf13/cobra"
)

// Registry entries reached through a flag of another subcommand.
var flagOnly = map[string]bool{
	"screenshot-region": true,
}

func NewActionCmd(a *app.App) *cobra.Command {
	actionCmd := &cobra.Command{
		Use:   "action",
		Short: "Run a one-shot device command, i.e. action screenshot",
	}

	for _, act := range deviceservice.Actions() {
		if flagOnly[act.Name] {
			continue
		}
		if act.Name == "screenshot" {
			actionCmd.AddCommand(newScreenshotCmd(a, act))
			continue
		}
		actionCmd.AddCommand(newActionSubCmd(a, act))
	}

	return actionCmd
}

func newActionSubCmd(a *app.App, act deviceservice.Action) *cobra.Command {
	return &cobra.Command{
		Use:   act.Name,
		Short: act.Description,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, a, act.Name)
		},
	}
}

func newScreenshotCmd(a *app.App, act deviceservice.Action) *cobra.Command {
	var region bool

	cmd := &cobra.Command{
		Use:   act.Name,
		Short: act.Description,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := act.Name
			if region {
				name = "screenshot-region"
			}
			return runAction(cmd, a, name)
		},
	}

	cmd.Flags().BoolVar(&region, "region", false, "Select a region instead of the full screen")

	return cmd
}

func runAction(cmd *cobra.Command, a *app.App, name string) error {
	msg, err := a.Device().Run(cmd.Context(), name)
	if err != nil {
		return err
	}
	if msg != "" {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	return nil
}
