package doctorCommand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/redjax/droidutil/internal/app"
	"github.com/redjax/droidutil/internal/services/deviceService/adb"
	hostservice "github.com/redjax/droidutil/internal/services/hostService"
	"github.com/redjax/droidutil/internal/utils/spinner"
	"github.com/redjax/droidutil/internal/utils/terminal"
	"github.com/spf13/cobra"
)

// Swapped in tests.
var (
	gatherHost  = hostservice.GatherHostInfo
	listDevices = adb.ListDevices
	startSpin   = spinner.StartSpinner
)

var errUnreachable = errors.New("device unreachable")

func NewDoctorCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the host can reach a device",
		Long: `Print host details, resolve the transport binary, list attached devices
and run a test command on the configured device.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context(), cmd.OutOrStdout(), a)
		},
	}
}

func transportBinary(a *app.App) string {
	return adb.TransportBinary(a.Config.ADB.Transport, a.Config.ADB.Path)
}

func runDoctor(ctx context.Context, w io.Writer, a *app.App) error {
	host, err := gatherHost(ctx, transportBinary(a))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, host.Format())

	if !host.TransportFound() {
		fmt.Fprintf(w, "%s %s is not on PATH; set adb.path or --adb\n", terminal.Mark(false), host.Transport)
		return fmt.Errorf("%w: %s not found", errUnreachable, host.Transport)
	}

	if a.Config.ADB.Transport == adb.TransportADB {
		stop := startSpin("Listing attached devices")
		devices, err := listDevices(ctx, host.TransportPath)
		stop()

		if err != nil {
			fmt.Fprintf(w, "%s adb devices: %v\n", terminal.Mark(false), err)
		} else {
			writeDevices(w, devices, a.Config.ADB.Serial)
		}
	}

	stop := startSpin("Querying device")
	model, err := a.Shell().Run(ctx, "getprop", "ro.product.model")
	var release string
	if err == nil {
		release, err = a.Shell().Run(ctx, "getprop", "ro.build.version.release")
	}
	stop()

	if err != nil {
		fmt.Fprintf(w, "%s device shell: %v\n", terminal.Mark(false), err)
		return fmt.Errorf("%w: %v", errUnreachable, err)
	}

	fmt.Fprintf(w, "%s device shell: %s (Android %s)\n", terminal.Mark(true),
		strings.TrimSpace(model), strings.TrimSpace(release))
	return nil
}

func writeDevices(w io.Writer, devices []adb.Attached, serial string) {
	if len(devices) == 0 {
		fmt.Fprintf(w, "%s no devices attached\n", terminal.Mark(false))
		return
	}

	fmt.Fprintln(w, "Attached devices:")
	for _, d := range devices {
		marker := " "
		if serial != "" && d.Serial == serial {
			marker = "*"
		}
		model := d.Model
		if model == "" {
			model = "-"
		}
		fmt.Fprintf(w, " %s %s %-20s %-14s %s\n", marker, terminal.Mark(d.Ready()), d.Serial, d.State, model)
	}
	if serial == "" && len(devices) > 1 {
		fmt.Fprintln(w, terminal.WarnStyle.Render("  several devices attached; pick one with --serial"))
	}
}
