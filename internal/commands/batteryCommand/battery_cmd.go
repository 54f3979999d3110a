package batteryCommand

import (
	"fmt"

	"github.com/redjax/droidutil/internal/app"
	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
	"github.com/spf13/cobra"
)

func NewBatteryCmd(a *app.App) *cobra.Command {
	batteryCmd := &cobra.Command{
		Use:   "battery",
		Short: "Battery readings",
	}

	batteryCmd.AddCommand(newTempCmd(a))

	return batteryCmd
}

func newTempCmd(a *app.App) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "temp",
		Short: "Print the battery temperature",
		Long: `Print the battery temperature in Celsius or Fahrenheit.

Readings ending in exactly half a degree print truncated and without a unit,
e.g. "21" for 21.5°C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.TemperatureUnit()
			if cmd.Flags().Changed("unit") {
				var err error
				if u, err = deviceservice.ParseTemperatureUnit(unit); err != nil {
					return err
				}
			}

			temp, err := a.Device().BatteryTemperature(cmd.Context(), u)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), temp)
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "c", "Temperature unit: c or f")

	return cmd
}
