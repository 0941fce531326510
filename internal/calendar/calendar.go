// Package calendar builds the fixed six-week month grid used by the
// calendar view and buckets tasks into its days.
package calendar

import (
	"time"

	"github.com/JustSimplyTom/HACKATHON/internal/task"
)

// GridSize is the cell count of every month grid: six rows of seven days.
const GridSize = 6 * 7

// DayCell is one slot in the month grid. Cells padded in from the adjacent
// months carry InMonth=false.
type DayCell struct {
	Date    time.Time
	InMonth bool
}

// MonthGrid returns exactly GridSize cells for the given month: leading
// days from the previous month back to Sunday, every day of the month, then
// trailing days from the next month. Weeks start on Sunday.
func MonthGrid(year int, month time.Month) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lead := int(first.Weekday())

	cells := make([]DayCell, 0, GridSize)
	for i := lead; i > 0; i-- {
		cells = append(cells, DayCell{Date: first.AddDate(0, 0, -i), InMonth: false})
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()
	for d := 0; d < daysInMonth; d++ {
		cells = append(cells, DayCell{Date: first.AddDate(0, 0, d), InMonth: true})
	}

	next := first.AddDate(0, 1, 0)
	for i := 0; len(cells) < GridSize; i++ {
		cells = append(cells, DayCell{Date: next.AddDate(0, 0, i), InMonth: false})
	}
	return cells
}

// Stats counts the tasks due on one calendar day by status.
type Stats struct {
	Overdue   int
	Pending   int
	Completed int
	Total     int
}

// DayStats buckets tasks whose deadline falls on day (local date match).
// Overdue counts only incomplete tasks whose deadline instant is strictly
// before now; Pending is everything else still open.
func DayStats(tasks []task.Task, day, now time.Time) Stats {
	var s Stats
	for _, t := range tasks {
		if !t.DueOn(day) {
			continue
		}
		s.Total++
		switch {
		case t.Completed:
			s.Completed++
		case t.IsOverdue(now):
			s.Overdue++
		}
	}
	s.Pending = s.Total - s.Completed - s.Overdue
	return s
}
