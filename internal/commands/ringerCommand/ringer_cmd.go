package ringerCommand

import (
	"fmt"

	"github.com/redjax/droidutil/internal/app"
	"github.com/spf13/cobra"
)

func NewRingerCmd(a *app.App) *cobra.Command {
	ringerCmd := &cobra.Command{
		Use:   "ringer",
		Short: "Read and change the ringer mode",
	}

	ringerCmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the current ringer mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := a.Device().RingerMode(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mode)
			return nil
		},
	})

	ringerCmd.AddCommand(&cobra.Command{
		Use:   "cycle",
		Short: "Advance the ringer: normal to vibrate, vibrate to normal with priority only, silent to normal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.Device().CycleRingerMode(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	})

	ringerCmd.AddCommand(&cobra.Command{
		Use:   "hush",
		Short: "Vibrate or mute according to the hush gesture setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Device().TriggerHushMute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Mode, res.Guidance)
			return nil
		},
	})

	return ringerCmd
}
