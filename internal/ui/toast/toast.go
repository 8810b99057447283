// Package toast renders transient status messages.
package toast

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/taskdeck/internal/types"
	"github.com/riordanpawley/taskdeck/internal/ui/styles"
)

// Renderer draws a stack of toasts in the bottom-right corner.
type Renderer struct {
	styles *styles.Styles
}

// New creates a toast renderer with the given styles.
func New(s *styles.Styles) *Renderer {
	return &Renderer{styles: s}
}

// Render stacks toasts vertically, right-aligned. Returns an empty
// string when there is nothing to show.
func (r *Renderer) Render(toasts []types.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	maxWidth := width / 2
	if maxWidth > 60 {
		maxWidth = 60
	}

	var rendered []string
	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		msg := t.Message
		if len(msg) > maxWidth {
			msg = msg[:maxWidth-1] + "…"
		}
		rendered = append(rendered, style.Render(msg))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

func (r *Renderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
