package formatter

import (
	"fmt"
	"time"
)

// FormatDate renders a date in the dd.mm.yyyy form used across the app.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02.01.2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return FormatDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return FormatDate(t)
	}
}

// DeadlineStyled renders a date with urgency coloring: red when past or
// within 2 days, yellow within a week.
func DeadlineStyled(t time.Time) string {
	if t.IsZero() {
		return Dim("—")
	}
	text := FormatDate(t)
	days := int(time.Until(t).Hours() / 24)
	switch {
	case days < 0, days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}
