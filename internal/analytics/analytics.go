// Package analytics derives summary statistics and qualitative insights
// from the task collection. Everything here is a pure function of the
// tasks and an explicit evaluation instant.
package analytics

import (
	"math"
	"time"

	"github.com/JustSimplyTom/HACKATHON/internal/task"
)

const recentWindow = 7 * 24 * time.Hour

// Snapshot is the aggregate the analytics view renders. Rates are whole
// percentages, AvgCompletionDays is rounded to one decimal.
type Snapshot struct {
	Total             int
	Completed         int
	Pending           int
	Overdue           int
	CompletionRate    int
	OverdueRate       int
	RecentlyCompleted int
	RecentlyCreated   int
	AvgCompletionDays float64
}

// Compute aggregates tasks at the instant now. An empty collection yields
// all zeroes; no division by zero anywhere.
func Compute(tasks []task.Task, now time.Time) Snapshot {
	var s Snapshot
	s.Total = len(tasks)

	var latencySum float64
	var latencyCount int
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
		if t.IsOverdue(now) {
			s.Overdue++
		}
		if t.CompletedWithin(recentWindow, now) {
			s.RecentlyCompleted++
		}
		if t.CreatedWithin(recentWindow, now) {
			s.RecentlyCreated++
		}
		if t.Completed && t.CompletedAt != nil {
			days := math.Ceil(t.CompletedAt.Sub(t.CreatedAt).Hours() / 24)
			latencySum += days
			latencyCount++
		}
	}

	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = roundPercent(s.Completed, s.Total)
		s.OverdueRate = roundPercent(s.Overdue, s.Total)
	}
	if latencyCount > 0 {
		s.AvgCompletionDays = math.Round(latencySum/float64(latencyCount)*10) / 10
	}
	return s
}

// roundPercent rounds 100*part/total half-up to a whole percentage.
func roundPercent(part, total int) int {
	return int(math.Floor(100*float64(part)/float64(total) + 0.5))
}
