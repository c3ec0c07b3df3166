package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
)

// RenderElementTable renders one line per element: kind, label, dates,
// progress bar, and status.
func RenderElementTable(elements []*domain.Element) string {
	if len(elements) == 0 {
		return StyleDim.Render("no elements")
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%-12s %-24s %-23s %-15s %s",
		"KIND", "LABEL", "DATES", "PROGRESS", "STATUS")))
	b.WriteString("\n")

	for _, e := range elements {
		b.WriteString(RenderElementLine(e))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderElementLine renders a single element row.
func RenderElementLine(e *domain.Element) string {
	start, end := e.Span()
	dates := start.Format(domain.DateLayout)
	if !domain.SameDay(start, end) {
		dates += " .. " + end.Format(domain.DateLayout)
	}

	return fmt.Sprintf("%-12s %-24s %-23s %s %s",
		StylePurple.Render(string(e.Kind)),
		e.Label,
		dates,
		RenderProgress(e.Progress/100, 8),
		StatusStyle(e.Status).Render(string(e.Status)))
}
