package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#a14573"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	digestStyle = lipgloss.NewStyle().
			Italic(true).
			Width(72)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#287b78")).
			Bold(true)

	quoteStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("103"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a14573"))

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)
