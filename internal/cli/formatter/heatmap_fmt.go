package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/heatmap/internal/contract"
	"github.com/alexanderramin/heatmap/internal/domain"
	"github.com/alexanderramin/heatmap/internal/grid"
)

const (
	cellGlyph  = "■"
	cellWidth  = 2 // glyph plus gap
	labelWidth = 4 // "Sun "
)

// FormatHeatmap renders a terminal preview of the week grid: a summary
// line, month header, seven weekday rows and a legend.
func FormatHeatmap(resp *contract.HeatmapResponse) string {
	var b strings.Builder

	b.WriteString(Header("Activity Overview"))
	b.WriteString("\n")
	detail := fmt.Sprintf(" active in %s", resp.Period)
	if resp.Mock {
		detail += " (sample data)"
	}
	b.WriteString(Bold(CountNoun(resp.ActiveDays, "day", "days")))
	b.WriteString(Dim(detail))
	b.WriteString("\n\n")

	if len(resp.Weeks) == 0 {
		b.WriteString(Dim("No activity records."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(RenderMonthHeader(resp.Months))
	b.WriteString("\n")
	b.WriteString(RenderGrid(resp.Weeks, resp.Period))
	b.WriteString("\n")
	b.WriteString(RenderLegend())
	b.WriteString("\n")
	return b.String()
}

// RenderMonthHeader lays month labels over their week columns. A label
// that does not fit its span is left out.
func RenderMonthHeader(months []domain.MonthSpan) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for _, m := range months {
		width := m.Span * cellWidth
		if len(m.Label) < width {
			b.WriteString(m.Label + strings.Repeat(" ", width-len(m.Label)))
		} else {
			b.WriteString(strings.Repeat(" ", width))
		}
	}
	return StyleFg.Render(strings.TrimRight(b.String(), " "))
}

// RenderGrid draws one row per weekday, Sunday first. Padding days outside
// period are left blank.
func RenderGrid(weeks []domain.Week, period domain.Period) string {
	rows := make([]string, 0, len(domain.DayNames))
	for day, name := range domain.DayNames {
		cells := make([]string, len(weeks))
		for i, w := range weeks {
			rec := w[day]
			if !period.Contains(rec.Date) {
				cells[i] = " "
				continue
			}
			cells[i] = LevelStyle(rec.Level).Render(cellGlyph)
		}
		rows = append(rows, Dim(fmt.Sprintf("%-*s", labelWidth, name))+strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

// RenderLegend renders "Less ■ ■ ■ ■ ■ More".
func RenderLegend() string {
	cells := make([]string, len(domain.Levels))
	for i, l := range domain.Levels {
		cells[i] = LevelStyle(l).Render(cellGlyph)
	}
	return Dim("Less ") + strings.Join(cells, " ") + Dim(" More")
}

// FormatMonths renders month spans as a table.
func FormatMonths(months []domain.MonthSpan) string {
	rows := make([][]string, len(months))
	for i, m := range months {
		rows[i] = []string{m.Label, strconv.Itoa(m.Span)}
	}
	return RenderTable([]string{"MONTH", "WEEKS"}, rows)
}

// FormatActiveDays lists the hover description of every active day in the period.
func FormatActiveDays(resp *contract.HeatmapResponse) string {
	var b strings.Builder
	for _, r := range resp.Records {
		if r.Count == 0 || !resp.Period.Contains(r.Date) {
			continue
		}
		b.WriteString(grid.Describe(r, resp.Period))
		b.WriteString("\n")
	}
	return b.String()
}
