package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
)

// TitleBar style for the screen heading.
var TitleBar = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Padding(0, 1).
	MarginBottom(1)

// SelectedItem style for the currently highlighted choice or result.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// NormalItem style for unselected entries.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// CreatorText style for the creator line under a result title.
var CreatorText = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 3)

// URLText style for the link line under a result title.
var URLText = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Underline(true).
	Padding(0, 3)

// ScoreBadge style for the similarity percentage.
var ScoreBadge = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// ModeBadge style for the result-mode tag in the heading.
var ModeBadge = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for the error bar.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("160")).
	Padding(0, 1)
