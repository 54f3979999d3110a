package panelCommand

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/redjax/droidutil/internal/app"
	"github.com/redjax/droidutil/internal/commands/panelCommand/ui"
	"github.com/spf13/cobra"
)

func NewPanelCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "panel",
		Short: "Pick and run device actions from an interactive list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(ui.New(cmd.Context(), a.Device()), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
