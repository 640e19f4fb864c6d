package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Dim

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("51")).
				Bold(true)

	brandSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")) // Green

	brandUnselectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	brandCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("58")) // Dark yellowish highlight

	groupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("33"))

	leafHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	selectedHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	placeholderStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.Color("241"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
