package domain

import "time"

// HeatColor is the derived, non-persisted display tint of a task row.
type HeatColor int

const (
	HeatGray   HeatColor = iota // nothing notable
	HeatGreen                   // in progress
	HeatOrange                  // urgent priority
	HeatYellow                  // due today
	HeatRed                     // overdue
	HeatBlue                    // completed
)

func (c HeatColor) String() string {
	return [...]string{"gray", "green", "orange", "yellow", "red", "blue"}[c]
}

// Heat computes the heat-map color for a task against the given day.
// The precedence order is fixed: Completed wins regardless of date,
// then overdue, due-today, Urgent priority, InProgress, and the gray
// fallback. Date comparisons use calendar days in today's location.
func Heat(t Task, today time.Time) HeatColor {
	if t.Status == StatusCompleted {
		return HeatBlue
	}
	if t.DueDate != nil {
		y1, m1, d1 := t.DueDate.Date()
		y2, m2, d2 := today.Date()
		due := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
		day := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
		if due.Before(day) {
			return HeatRed
		}
		if due.Equal(day) {
			return HeatYellow
		}
	}
	if t.Priority == PriorityUrgent {
		return HeatOrange
	}
	if t.Status == StatusInProgress {
		return HeatGreen
	}
	return HeatGray
}
