package report

import (
	"sort"

	"github.com/TheraTrack/practice-service/internal/session"
)

// GoalFrequency counts how often each goal appears across the given
// sessions. The result is sorted ascending by frequency so the bar
// chart grows left to right; ties order by goal name.
func GoalFrequency(sessions []session.FilteredSession) []GoalCount {
	counts := map[string]int{}
	for _, s := range sessions {
		for _, goal := range s.Goals {
			if goal == "" {
				continue
			}
			counts[goal]++
		}
	}

	result := make([]GoalCount, 0, len(counts))
	for goal, count := range counts {
		result = append(result, GoalCount{Goal: goal, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count < result[j].Count
		}
		return result[i].Goal < result[j].Goal
	})

	return result
}
