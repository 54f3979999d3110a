package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	deviceservice "github.com/redjax/droidutil/internal/services/deviceService"
	"github.com/redjax/droidutil/internal/utils/terminal"
)

// Runner executes a named action. *deviceservice.Device satisfies it.
type Runner interface {
	Run(ctx context.Context, name string) (string, error)
}

type actionItem struct {
	action deviceservice.Action
}

func (i actionItem) FilterValue() string { return i.action.Name }
func (i actionItem) Title() string       { return i.action.Name }
func (i actionItem) Description() string { return i.action.Description }

type keyMap struct {
	Run  key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Run:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type actionDoneMsg struct {
	name string
	msg  string
	err  error
}

type Model struct {
	ctx    context.Context
	runner Runner
	list   list.Model
	tui    *terminal.ResponsiveTUIHelper

	running   string
	status    string
	statusErr bool
}

// reserved rows below the list: status and help lines
const reservedLines = 3

func New(ctx context.Context, runner Runner) Model {
	acts := deviceservice.Actions()
	items := make([]list.Item, len(acts))
	for i, a := range acts {
		items[i] = actionItem{action: a}
	}

	tui := terminal.NewResponsiveTUIHelper()
	w, h := tui.GetSize()

	l := list.New(items, list.NewDefaultDelegate(), w, h-reservedLines)
	l.Title = "Device actions"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.Styles.Title = terminal.TitleStyle

	return Model{ctx: ctx, runner: runner, list: l, tui: tui}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) runAction(name string) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.runner.Run(m.ctx, name)
		return actionDoneMsg{name: name, msg: msg, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.tui.HandleWindowSizeMsg(msg) {
		w, _ := m.tui.GetSize()
		m.list.SetSize(w, m.tui.AvailableHeight(reservedLines))
		return m, nil
	}

	switch msg := msg.(type) {
	case actionDoneMsg:
		m.running = ""
		m.statusErr = msg.err != nil
		switch {
		case msg.err != nil:
			m.status = fmt.Sprintf("%s failed: %v", msg.name, msg.err)
		case msg.msg != "":
			m.status = fmt.Sprintf("%s: %s", msg.name, msg.msg)
		default:
			m.status = msg.name + ": done"
		}
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Run):
			if m.running != "" {
				return m, nil
			}
			item, ok := m.list.SelectedItem().(actionItem)
			if !ok {
				return m, nil
			}
			m.running = item.action.Name
			m.status = "running " + item.action.Name + "..."
			m.statusErr = false
			return m, m.runAction(item.action.Name)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sections []string
	sections = append(sections, m.list.View())

	switch {
	case m.status == "":
		sections = append(sections, "")
	case m.statusErr:
		sections = append(sections, terminal.ErrorStyle.Render(m.status))
	default:
		sections = append(sections, terminal.OKStyle.Render(m.status))
	}

	help := "↑/↓: navigate • /: filter • enter: run • q: quit"
	sections = append(sections, m.tui.CreateResponsiveHelpLine(help, terminal.MutedStyle))

	return strings.Join(sections, "\n")
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}
