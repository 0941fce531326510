package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/JustSimplyTom/HACKATHON/internal/analytics"
	"github.com/JustSimplyTom/HACKATHON/internal/calendar"
	"github.com/JustSimplyTom/HACKATHON/internal/search"
	"github.com/JustSimplyTom/HACKATHON/internal/task"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tabStyle      = lipgloss.NewStyle().Faint(true)
	activeTab     = lipgloss.NewStyle().Bold(true).Underline(true)
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	todayStyle    = lipgloss.NewStyle().Reverse(true)
	outMonthStyle = lipgloss.NewStyle().Faint(true)
	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Planner"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.renderForm())
	} else {
		now := time.Now()
		switch m.view {
		case viewDashboard:
			b.WriteString(m.renderDashboard(now))
		case viewList:
			b.WriteString(m.renderList(now))
		case viewCalendar:
			b.WriteString(m.renderCalendar(now))
		case viewAnalytics:
			b.WriteString(m.renderAnalytics(now))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(tabStyle.Render(m.renderHelp()))
	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, int(viewCount))
	for v := viewDashboard; v < viewCount; v++ {
		label := fmt.Sprintf("%d:%s", int(v)+1, v)
		if v == m.view {
			parts = append(parts, activeTab.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderDashboard(now time.Time) string {
	s := analytics.Compute(m.tasks, now)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total %d  •  Completed %d  •  Pending %d  •  Overdue %s\n\n",
		s.Total, s.Completed, s.Pending, overdueCount(s.Overdue)))

	upcoming := task.Filter(m.tasks, func(t task.Task) bool {
		return !t.Completed && t.DueWithin(7*24*time.Hour, now)
	})
	task.SortByDeadline(upcoming)
	b.WriteString("Due in the next 7 days\n")
	if len(upcoming) == 0 {
		b.WriteString(tabStyle.Render("  nothing due this week"))
		b.WriteString("\n")
	}
	for _, t := range upcoming {
		b.WriteString("  " + m.renderTaskLine(t, now, false) + "\n")
	}

	recent := task.Filter(m.tasks, func(t task.Task) bool {
		return t.CompletedWithin(7*24*time.Hour, now)
	})
	b.WriteString("\nRecently completed\n")
	if len(recent) == 0 {
		b.WriteString(tabStyle.Render("  none this week"))
		b.WriteString("\n")
	}
	for _, t := range recent {
		b.WriteString("  " + doneStyle.Render(t.Title) + "\n")
	}
	return b.String()
}

func (m Model) renderList(now time.Time) string {
	var b strings.Builder
	if m.mode == modeSearch || m.query != "" {
		b.WriteString("Search: ")
		if m.mode == modeSearch {
			b.WriteString(m.input.View())
		} else {
			b.WriteString(m.query)
		}
		b.WriteString("\n\n")
	}

	visible := m.visibleTasks()
	if len(visible) == 0 {
		if m.query != "" {
			b.WriteString("No tasks match the search.")
		} else {
			b.WriteString("No tasks yet. Press 'a' to add one.")
		}
		b.WriteString("\n")
		return b.String()
	}

	for i, t := range visible {
		cursor := " "
		if m.cursor == i && m.mode != modeSearch {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, m.renderTaskLine(t, now, true)))
	}
	return b.String()
}

func (m Model) renderTaskLine(t task.Task, now time.Time, checkbox bool) string {
	var b strings.Builder
	if checkbox {
		if t.Completed {
			b.WriteString("[x] ")
		} else {
			b.WriteString("[ ] ")
		}
	}

	title := t.Title
	switch {
	case t.Completed:
		title = doneStyle.Render(title)
	case t.IsOverdue(now):
		title = overdueStyle.Render(title)
	}
	b.WriteString(title)

	extras := make([]string, 0, 4)
	extras = append(extras, t.Deadline.Local().Format("2006-01-02"))
	if t.Category != "" {
		extras = append(extras, string(t.Category))
	}
	if t.Priority != "" {
		extras = append(extras, string(t.Priority))
	}
	if t.EstimatedHours > 0 {
		extras = append(extras, fmt.Sprintf("%gh", t.EstimatedHours))
	}
	b.WriteString(tabStyle.Render(" [" + strings.Join(extras, " | ") + "]"))
	return b.String()
}

func (m Model) renderCalendar(now time.Time) string {
	year, month, _ := m.calFocus.Local().Date()
	cells := calendar.MonthGrid(year, month)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d\n", month, year))
	b.WriteString(tabStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	for i, c := range cells {
		stats := calendar.DayStats(m.tasks, c.Date, now)
		cell := fmt.Sprintf("%3d", c.Date.Day())
		switch {
		case sameDay(c.Date, m.calFocus):
			cell = todayStyle.Render(cell)
		case !c.InMonth:
			cell = outMonthStyle.Render(cell)
		case stats.Overdue > 0:
			cell = overdueStyle.Render(cell)
		case stats.Total > 0 && stats.Pending == 0:
			cell = goodStyle.Render(cell)
		case stats.Total > 0:
			cell = lipgloss.NewStyle().Bold(true).Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	day := m.calFocus
	stats := calendar.DayStats(m.tasks, day, now)
	b.WriteString(fmt.Sprintf("\n%s — %d task(s): %d overdue, %d pending, %d completed\n",
		day.Local().Format("Mon Jan 2"), stats.Total, stats.Overdue, stats.Pending, stats.Completed))

	due := task.Filter(m.tasks, func(t task.Task) bool { return t.DueOn(day) })
	task.SortByDeadline(due)
	for _, t := range due {
		b.WriteString("  " + m.renderTaskLine(t, now, true) + "\n")
	}
	return b.String()
}

func (m Model) renderAnalytics(now time.Time) string {
	s := analytics.Compute(m.tasks, now)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total tasks        %d\n", s.Total))
	b.WriteString(fmt.Sprintf("Completed          %d (%d%%)\n", s.Completed, s.CompletionRate))
	b.WriteString(fmt.Sprintf("Pending            %d\n", s.Pending))
	b.WriteString(fmt.Sprintf("Overdue            %s (%d%%)\n", overdueCount(s.Overdue), s.OverdueRate))
	b.WriteString(fmt.Sprintf("Completed (7d)     %d\n", s.RecentlyCompleted))
	b.WriteString(fmt.Sprintf("Created (7d)       %d\n", s.RecentlyCreated))
	b.WriteString(fmt.Sprintf("Avg completion     %.1f day(s)\n", s.AvgCompletionDays))

	insights := analytics.Insights(s)
	if len(insights) > 0 {
		b.WriteString("\nInsights\n")
		for _, in := range insights {
			line := "  • " + in.Message
			switch in.Tone {
			case analytics.ToneGood:
				line = goodStyle.Render(line)
			case analytics.ToneWarn:
				line = warnStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func (m Model) renderForm() string {
	f := m.form
	fields := formFields()
	values := []string{f.title, f.desc, f.deadline, f.category, f.priority, f.estimated}

	var b strings.Builder
	if f.editID == "" {
		b.WriteString("New task\n\n")
	} else {
		b.WriteString("Edit task\n\n")
	}
	for i, name := range fields {
		prefix := " "
		if i == f.index {
			prefix = ">"
		}
		val := values[i]
		if i == f.index {
			val = m.input.View()
		} else if strings.TrimSpace(val) == "" {
			val = tabStyle.Render("(empty)")
		}
		b.WriteString(fmt.Sprintf("%s %-28s : %s\n", prefix, name, val))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	k := m.cfg.Keys
	switch m.view {
	case viewCalendar:
		return fmt.Sprintf("%s/%s month • arrows day • %s today • %s add • %s quit",
			k.PrevMonth, k.NextMonth, k.Today, k.Add, k.Quit)
	case viewList:
		return fmt.Sprintf("%s/%s move • %s add • %s edit • space toggle • %s delete • %s search • tab view • %s quit",
			k.Up, k.Down, k.Add, k.Edit, k.Delete, k.Search, k.Quit)
	default:
		return fmt.Sprintf("tab/1-4 switch view • %s add • %s quit", k.Add, k.Quit)
	}
}

// visibleTasks applies the live search filter and the list ordering.
func (m Model) visibleTasks() []task.Task {
	visible := task.Filter(m.tasks, func(t task.Task) bool {
		return search.Matches(m.query, t.SearchText())
	})
	task.SortByDeadline(visible)
	return visible
}

func overdueCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if n > 0 {
		return overdueStyle.Render(s)
	}
	return s
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Local().Date()
	y2, m2, d2 := b.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
