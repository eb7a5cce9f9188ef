package summary

import (
	"sort"

	"exec-dashboard-go/internal/metrics"
	"exec-dashboard-go/internal/types"
)

// Digest is the condensed payload handed to the external insight
// collaborator. Raw records never leave this process; only these
// aggregates do.
type Digest struct {
	Totals             Totals           `json:"totals"`
	TopCallAssignees   []types.KeyCount `json:"topAssignedToCalls"`
	TopEmailAssignees  []types.KeyCount `json:"topAssignedToEmails"`
	TopTopics          []types.KeyCount `json:"topTopics"`
	TopOutcomes        []types.KeyCount `json:"topOutcomes"`
	StatusDistribution []types.KeyCount `json:"statusDistribution"`
	TrendHighlights    TrendHighlights  `json:"trendHighlights"`
}

type Totals struct {
	Activities  int `json:"activities"`
	Calls       int `json:"calls"`
	Emails      int `json:"emails"`
	ActiveUsers int `json:"activeUsers"`
}

type TrendHighlights struct {
	HighestDay types.TimeSeriesPoint `json:"highestDay"`
	LowestDay  types.TimeSeriesPoint `json:"lowestDay"`
}

// Build condenses the activity data between from and to into a digest.
func Build(calls []types.CallRecord, emails []types.EmailRecord, from, to string) Digest {
	overview := metrics.ComputeOverviewMetrics(calls, emails, from, to)
	sales := metrics.ComputeSalesMetrics(calls, from, to)
	emailMetrics := metrics.ComputeEmailsMetrics(emails, from, to)

	// Merge the per-day call and email series, keeping first-seen date
	// order so count ties resolve the same way every run.
	counts := make(map[string]int)
	var order []string
	for _, p := range overview.CallsByDay {
		if _, seen := counts[p.Date]; !seen {
			order = append(order, p.Date)
		}
		counts[p.Date] += p.Count
	}
	for _, p := range overview.EmailsByDay {
		if _, seen := counts[p.Date]; !seen {
			order = append(order, p.Date)
		}
		counts[p.Date] += p.Count
	}
	trend := make([]types.TimeSeriesPoint, 0, len(order))
	for _, d := range order {
		trend = append(trend, types.TimeSeriesPoint{Date: d, Count: counts[d]})
	}
	sort.SliceStable(trend, func(i, j int) bool { return trend[i].Count < trend[j].Count })

	var highlights TrendHighlights
	if len(trend) > 0 {
		highlights.LowestDay = trend[0]
		highlights.HighestDay = trend[len(trend)-1]
	}

	return Digest{
		Totals: Totals{
			Activities:  overview.TotalActivities,
			Calls:       overview.TotalCalls,
			Emails:      overview.TotalEmails,
			ActiveUsers: overview.ActiveUsers,
		},
		TopCallAssignees:   truncate(sales.CallsByUser, 3),
		TopEmailAssignees:  truncate(emailMetrics.EmailsByUser, 3),
		TopTopics:          truncate(sales.CallsByTopic, 3),
		TopOutcomes:        truncate(sales.CallsByOutcome, 3),
		StatusDistribution: truncate(emailMetrics.EmailsByStatus, 5),
		TrendHighlights:    highlights,
	}
}

func truncate(list []types.KeyCount, n int) []types.KeyCount {
	if len(list) > n {
		return list[:n]
	}
	return list
}
