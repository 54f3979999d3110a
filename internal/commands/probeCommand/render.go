package probeCommand

import (
	"errors"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/redjax/droidutil/internal/utils/terminal"

	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
)

func styleSupport(s deviceservice.Support) string {
	switch s {
	case deviceservice.Supported:
		return terminal.OKStyle.Render(s.String())
	case deviceservice.QueryFailed:
		return terminal.ErrorStyle.Render(s.String())
	default:
		return terminal.MutedStyle.Render(s.String())
	}
}

// detail explains a non-positive answer.
func detail(c deviceservice.Capability) string {
	if c.Err == nil {
		return ""
	}
	var cmdErr *deviceservice.CommandError
	if errors.As(c.Err, &cmdErr) {
		return cmdErr.Err.Error()
	}
	return c.Err.Error()
}

// renderCapabilities writes caps as a table.
func renderCapabilities(w io.Writer, caps []deviceservice.Capability) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Capability", "Status", "Detail"})

	for _, c := range caps {
		t.AppendRow(table.Row{string(c.Name), styleSupport(c.Support), detail(c)})
	}

	t.Render()
}
