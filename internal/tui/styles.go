package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary = lipgloss.Color("12")  // bright blue
	colorDim     = lipgloss.Color("240") // gray
	colorError   = lipgloss.Color("9")   // bright red
	colorBorder  = lipgloss.Color("238") // dark gray
	colorBarBg   = lipgloss.Color("235") // near black, like a bar

	// Title row
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	// The rendered bar
	styleBar = lipgloss.NewStyle().
			Background(colorBarBg).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	// History panel
	stylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	styleError = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)
