package terminal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResponsiveTUIHelper tracks the terminal size for bubbletea models.
type ResponsiveTUIHelper struct {
	width  int
	height int
}

// NewResponsiveTUIHelper creates a helper with 80x24 until the first resize.
func NewResponsiveTUIHelper() *ResponsiveTUIHelper {
	return &ResponsiveTUIHelper{
		width:  80,
		height: 24,
	}
}

func (h *ResponsiveTUIHelper) SetSize(width, height int) {
	h.width = width
	h.height = height
}

func (h *ResponsiveTUIHelper) GetSize() (int, int) {
	return h.width, h.height
}

// HandleWindowSizeMsg records the size carried by a tea.WindowSizeMsg and
// reports whether msg was one.
func (h *ResponsiveTUIHelper) HandleWindowSizeMsg(msg tea.Msg) bool {
	size, ok := msg.(tea.WindowSizeMsg)
	if ok {
		h.SetSize(size.Width, size.Height)
	}
	return ok
}

// GetContentWidth returns the width left after borders and padding, at least 40.
func (h *ResponsiveTUIHelper) GetContentWidth() int {
	contentWidth := h.width - 8
	if contentWidth < 40 {
		contentWidth = 40
	}
	return contentWidth
}

// AvailableHeight returns the rows left after reservedLines, at least 1.
func (h *ResponsiveTUIHelper) AvailableHeight(reservedLines int) int {
	available := h.height - reservedLines
	if available < 1 {
		return 1
	}
	return available
}

// CreateResponsiveHelpLine renders helpText centered across the terminal.
func (h *ResponsiveTUIHelper) CreateResponsiveHelpLine(helpText string, style lipgloss.Style) string {
	return style.
		Width(h.width).
		Align(lipgloss.Center).
		Render(helpText)
}
