// Package ui is the terminal shell of the dashboard: sidebar, search tabs and
// form, the trades grid with its popovers, and the search results overlay.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Slate900 = lipgloss.Color("#1e293b")
	Slate700 = lipgloss.Color("#334155")
	Slate400 = lipgloss.Color("#94a3b8")
	Slate100 = lipgloss.Color("#f1f5f9")
	White    = lipgloss.Color("#ffffff")
	Accent   = lipgloss.Color("#38bdf8")
	Danger   = lipgloss.Color("#e53935")
	Success  = lipgloss.Color("#8BC34A")
)

// Styles holds every style the shell renders with.
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style
	Panel         lipgloss.Style
	FocusedPanel  lipgloss.Style
	Label         lipgloss.Style
	Header        lipgloss.Style
	HeaderFocused lipgloss.Style
	Cursor        lipgloss.Style
	Badge         lipgloss.Style
	Muted         lipgloss.Style
	Error         lipgloss.Style
	OK            lipgloss.Style
	Popover       lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(White).Background(Slate900).Padding(0, 1),
		Tab:           lipgloss.NewStyle().Foreground(Slate400).Padding(0, 2),
		ActiveTab:     lipgloss.NewStyle().Bold(true).Underline(true).Foreground(Accent).Padding(0, 2),
		Sidebar:       lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(Slate700),
		SidebarItem:   lipgloss.NewStyle().Foreground(Slate400).Padding(0, 1),
		SidebarActive: lipgloss.NewStyle().Bold(true).Foreground(White).Background(Slate700).Padding(0, 1),
		Panel:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Slate700).Padding(0, 1),
		FocusedPanel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Accent).Padding(0, 1),
		Label:         lipgloss.NewStyle().Foreground(Slate400),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(White).Background(Slate900),
		HeaderFocused: lipgloss.NewStyle().Bold(true).Foreground(Slate900).Background(Accent),
		Cursor:        lipgloss.NewStyle().Background(Slate700).Foreground(Slate100),
		Badge:         lipgloss.NewStyle().Foreground(Accent),
		Muted:         lipgloss.NewStyle().Foreground(Slate400),
		Error:         lipgloss.NewStyle().Foreground(Danger),
		OK:            lipgloss.NewStyle().Foreground(Success),
		Popover:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Accent).Padding(0, 1),
	}
}
