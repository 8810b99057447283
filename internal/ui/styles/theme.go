package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/taskdeck/internal/domain"
)

// Catppuccin Macchiato palette
var (
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Overlay0 = lipgloss.Color("#6e738d")
	Subtext0 = lipgloss.Color("#a5adcb")
	Text     = lipgloss.Color("#cad3f5")

	Red    = lipgloss.Color("#ed8796")
	Peach  = lipgloss.Color("#f5a97f")
	Yellow = lipgloss.Color("#eed49f")
	Green  = lipgloss.Color("#a6da95")
	Sky    = lipgloss.Color("#91d7e3")
	Blue   = lipgloss.Color("#8aadf4")
	Mauve  = lipgloss.Color("#c6a0f6")
)

// HeatColors maps the domain heat-map colors onto the palette.
var HeatColors = map[domain.HeatColor]lipgloss.Color{
	domain.HeatBlue:   Sky,
	domain.HeatRed:    Red,
	domain.HeatYellow: Yellow,
	domain.HeatOrange: Peach,
	domain.HeatGreen:  Green,
	domain.HeatGray:   Overlay0,
}

// PriorityColors maps priorities to colors for the priority cell.
var PriorityColors = map[domain.Priority]lipgloss.Color{
	domain.PriorityLow:    Overlay0,
	domain.PriorityMedium: Yellow,
	domain.PriorityHigh:   Peach,
	domain.PriorityUrgent: Red,
}
