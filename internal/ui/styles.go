// Package ui implements the interactive storefront terminal interface:
// product browsing with debounced search, the cart sidebar, and the
// register/login forms.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#00a278")
	colorAccent  = lipgloss.Color("#45c09f")
	colorMuted   = lipgloss.Color("240")
	colorError   = lipgloss.Color("#e53935")
	colorSuccess = lipgloss.Color("#8BC34A")
	colorWarning = lipgloss.Color("#FFC107")
)

// Styles holds every lipgloss style the views use. Built once at startup.
type Styles struct {
	Header       lipgloss.Style
	HeaderUser   lipgloss.Style
	Pane         lipgloss.Style
	PaneFocused  lipgloss.Style
	PaneTitle    lipgloss.Style
	ProductName  lipgloss.Style
	ProductMeta  lipgloss.Style
	Cursor       lipgloss.Style
	CartTotal    lipgloss.Style
	Empty        lipgloss.Style
	Help         lipgloss.Style
	ToastInfo    lipgloss.Style
	ToastError   lipgloss.Style
	ToastSuccess lipgloss.Style
	FormLabel    lipgloss.Style
	FormError    lipgloss.Style
}

func DefaultStyles() Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1)

	return Styles{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1),
		HeaderUser:   lipgloss.NewStyle().Foreground(colorAccent),
		Pane:         pane,
		PaneFocused:  pane.BorderForeground(colorPrimary),
		PaneTitle:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		ProductName:  lipgloss.NewStyle().Bold(true),
		ProductMeta:  lipgloss.NewStyle().Foreground(colorMuted),
		Cursor:       lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		CartTotal:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Empty:        lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Help:         lipgloss.NewStyle().Foreground(colorMuted),
		ToastInfo:    lipgloss.NewStyle().Foreground(colorWarning),
		ToastError:   lipgloss.NewStyle().Foreground(colorError),
		ToastSuccess: lipgloss.NewStyle().Foreground(colorSuccess),
		FormLabel:    lipgloss.NewStyle().Foreground(colorAccent),
		FormError:    lipgloss.NewStyle().Foreground(colorError),
	}
}
