// The root command for the CLI.
// This root 'composes' the subcommands and provides global flags like --serial.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/redjax/droidutil/internal/app"
	"github.com/redjax/droidutil/internal/commands/actionCommand"
	"github.com/redjax/droidutil/internal/commands/batteryCommand"
	"github.com/redjax/droidutil/internal/commands/doctorCommand"
	"github.com/redjax/droidutil/internal/commands/panelCommand"
	"github.com/redjax/droidutil/internal/commands/probeCommand"
	"github.com/redjax/droidutil/internal/commands/ringerCommand"
	"github.com/redjax/droidutil/internal/version"
)

// NewRootCmd builds the command tree around a.
func NewRootCmd(a *app.App) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "droidutil",
		Short: "Probe and control an Android device over adb",
		Long: `Query device capabilities and run one-shot system actions (notification
shade, ringer mode, screenshots, screen power, camera) on an Android device
reached through adb, waydroid or a local shell.

Configuration is read from --config (yaml, json, toml or .env), then
DROIDUTIL_* environment variables, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Load(cmd.Flags(), cfgFile)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json, toml or .env)")
	flags.BoolP("debug", "D", false, "Enable debug logging to stderr")
	flags.StringP("serial", "s", "", "Device serial, as listed by adb devices")
	flags.String("adb", "adb", "Path to the adb binary")
	flags.String("transport", "adb", "How to reach the device: adb, waydroid or local")
	flags.Duration("timeout", 0, "Per-command timeout (default from config, 10s)")
	flags.String("log-file", "", "Also write logs to this rotating file")

	rootCmd.AddCommand(probeCommand.NewProbeCmd(a))
	rootCmd.AddCommand(batteryCommand.NewBatteryCmd(a))
	rootCmd.AddCommand(ringerCommand.NewRingerCmd(a))
	rootCmd.AddCommand(actionCommand.NewActionCmd(a))
	rootCmd.AddCommand(panelCommand.NewPanelCmd(a))
	rootCmd.AddCommand(doctorCommand.NewDoctorCmd(a))
	rootCmd.AddCommand(version.NewSelfCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	a := app.New()
	err := NewRootCmd(a).Execute()
	a.Close()

	cobra.CheckErr(err)
}
