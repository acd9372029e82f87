package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/tasktable/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Row text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Status colors
	Uninitiated lipgloss.Color
	InProgress  lipgloss.Color
	Completed   lipgloss.Color

	// Priority colors
	Low    lipgloss.Color
	Medium lipgloss.Color
	High   lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Uninitiated: lipgloss.Color("#74B9FF"), // Light blue
	InProgress:  lipgloss.Color("#FDCB6E"), // Yellow
	Completed:   lipgloss.Color("#00B894"), // Green

	Low:    lipgloss.Color("#636E72"), // Gray
	Medium: lipgloss.Color("#FDCB6E"), // Yellow
	High:   lipgloss.Color("#D63031"), // Red
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	HeaderInfo lipgloss.Style

	// Table
	TableHeader lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Cursor      lipgloss.Style
	Empty       lipgloss.Style

	// Status badges
	StatusUninitiated lipgloss.Style
	StatusInProgress  lipgloss.Style
	StatusCompleted   lipgloss.Style

	// Priority
	PriorityLow    lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityHigh   lipgloss.Style

	// Footer
	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	Pagination lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt       lipgloss.Style
	InputLabel        lipgloss.Style
	InputLabelFocused lipgloss.Style
	InputReadOnly     lipgloss.Style

	// Notifications
	ErrorMsg  lipgloss.Style
	NoticeMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),

		Row: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		RowSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected).
			Background(Colors.Background),

		Cursor: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		StatusUninitiated: lipgloss.NewStyle().Foreground(Colors.Uninitiated),
		StatusInProgress:  lipgloss.NewStyle().Foreground(Colors.InProgress),
		StatusCompleted:   lipgloss.NewStyle().Foreground(Colors.Completed),

		PriorityLow:    lipgloss.NewStyle().Foreground(Colors.Low),
		PriorityMedium: lipgloss.NewStyle().Foreground(Colors.Medium),
		PriorityHigh:   lipgloss.NewStyle().Foreground(Colors.High).Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		Pagination: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		InputLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(12),

		InputLabelFocused: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true).
			Width(12),

		InputReadOnly: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		NoticeMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),
	}
}

// StatusStyle returns the style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusUninitiated:
		return s.StatusUninitiated
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusCompleted:
		return s.StatusCompleted
	default:
		return s.Row
	}
}

// PriorityStyle returns the style for a given priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityMedium:
		return s.PriorityMedium
	case domain.PriorityHigh:
		return s.PriorityHigh
	default:
		return s.PriorityLow
	}
}
