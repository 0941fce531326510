package analytics

import "fmt"

// Tone classifies an insight for rendering.
type Tone int

const (
	ToneGood Tone = iota
	ToneInfo
	ToneWarn
)

// Insight is one qualitative message derived from a snapshot band.
type Insight struct {
	Tone    Tone
	Message string
}

// Insights maps snapshot figures onto fixed threshold bands. The bands are
// independent: completion, overdue, average completion time, and recent
// activity can all fire in the same snapshot.
func Insights(s Snapshot) []Insight {
	var out []Insight

	if s.Total > 0 {
		switch {
		case s.CompletionRate >= 90:
			out = append(out, Insight{ToneGood, "Outstanding completion rate. You finish nearly everything you start."})
		case s.CompletionRate >= 80:
			out = append(out, Insight{ToneGood, "Strong completion rate. Keep the momentum going."})
		case s.CompletionRate >= 60:
			out = append(out, Insight{ToneInfo, "Solid progress, with room to close out a few more tasks."})
		case s.CompletionRate >= 40:
			out = append(out, Insight{ToneInfo, "About half of your tasks get finished. Try narrowing your focus."})
		case s.CompletionRate >= 1:
			out = append(out, Insight{ToneWarn, "Low completion rate. Consider breaking tasks into smaller steps."})
		default:
			out = append(out, Insight{ToneWarn, "Nothing completed yet. Pick one small task and finish it."})
		}
	}

	switch {
	case s.Overdue == 0 && s.Total > 0:
		out = append(out, Insight{ToneGood, "No overdue tasks. You're ahead of every deadline."})
	case s.OverdueRate >= 30:
		out = append(out, Insight{ToneWarn, fmt.Sprintf("%d tasks are overdue. Reschedule or drop what no longer matters.", s.Overdue)})
	case s.Overdue > 0:
		out = append(out, Insight{ToneInfo, fmt.Sprintf("%d overdue task(s) need attention.", s.Overdue)})
	}

	switch {
	case s.AvgCompletionDays > 0 && s.AvgCompletionDays <= 1:
		out = append(out, Insight{ToneGood, "You typically finish tasks within a day of creating them."})
	case s.AvgCompletionDays >= 7:
		out = append(out, Insight{ToneWarn, fmt.Sprintf("Tasks take %.1f days on average. Earlier starts may help.", s.AvgCompletionDays)})
	case s.AvgCompletionDays > 0:
		out = append(out, Insight{ToneInfo, fmt.Sprintf("Average completion time is %.1f days.", s.AvgCompletionDays)})
	}

	switch {
	case s.RecentlyCompleted >= 5:
		out = append(out, Insight{ToneGood, fmt.Sprintf("%d tasks completed this week. Productive stretch.", s.RecentlyCompleted)})
	case s.RecentlyCreated > 0 && s.RecentlyCompleted == 0:
		out = append(out, Insight{ToneInfo, "New tasks this week but none finished yet."})
	}

	return out
}
