package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/taskdeck/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Grid
	Header       lipgloss.Style
	Cell         lipgloss.Style
	CellSelected lipgloss.Style
	RowCursor    lipgloss.Style

	// Heat tinting
	Heat func(color domain.HeatColor) lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusMode  lipgloss.Style
	StatusHint  lipgloss.Style
	StatusDirty lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	PromptKey    lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1),

		Cell: lipgloss.NewStyle().
			Padding(0, 1),

		CellSelected: lipgloss.NewStyle().
			Padding(0, 1).
			Background(Surface1).
			Bold(true),

		RowCursor: lipgloss.NewStyle().
			Background(Surface0),

		Heat: func(color domain.HeatColor) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(HeatColors[color])
		},

		StatusBar: lipgloss.NewStyle().
			Background(Mantle).
			Foreground(Text),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Mantle).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Subtext0),

		StatusDirty: lipgloss.NewStyle().
			Foreground(Peach).
			Bold(true),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Mauve).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),

		PromptKey: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		ToastInfo: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Text).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			Background(Green).
			Foreground(Mantle).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			Background(Yellow).
			Foreground(Mantle).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			Background(Red).
			Foreground(Mantle).
			Padding(0, 1),
	}
}
