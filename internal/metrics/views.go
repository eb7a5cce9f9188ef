package metrics

import "exec-dashboard-go/internal/types"

// Per-view compositions of the aggregation primitives. Each is a pure
// function of (records, from, to) and recomputes on every request.

type OverviewMetrics struct {
	TotalActivities int                     `json:"totalActivities"`
	TotalCalls      int                     `json:"totalCalls"`
	TotalEmails     int                     `json:"totalEmails"`
	ActiveUsers     int                     `json:"activeUsers"`
	CallsByDay      []types.TimeSeriesPoint `json:"callsByDay"`
	EmailsByDay     []types.TimeSeriesPoint `json:"emailsByDay"`
	TopAccounts     []types.KeyCount        `json:"topAccounts"`
}

type SalesMetrics struct {
	CallsByUser    []types.KeyCount        `json:"callsByUser"`
	CallsByOutcome []types.KeyCount        `json:"callsByOutcome"`
	CallsByTopic   []types.KeyCount        `json:"callsByTopic"`
	CallsTrend     []types.TimeSeriesPoint `json:"callsTrend"`
}

type EmailsMetrics struct {
	EmailsByUser   []types.KeyCount        `json:"emailsByUser"`
	EmailsByStatus []types.KeyCount        `json:"emailsByStatus"`
	EmailsTrend    []types.TimeSeriesPoint `json:"emailsTrend"`
	TopSubjects    []types.KeyCount        `json:"topSubjects"`
}

type SupportMetrics struct {
	CallsByOutcome []types.KeyCount        `json:"callsByOutcome"`
	EmailsByStatus []types.KeyCount        `json:"emailsByStatus"`
	Trend          []types.TimeSeriesPoint `json:"trend"`
	TopPerformers  []types.KeyCount        `json:"topPerformers"`
}

func ComputeOverviewMetrics(calls []types.CallRecord, emails []types.EmailRecord, from, to string) OverviewMetrics {
	callsInRange := FilterByDateRange(calls, from, to)
	emailsInRange := FilterByDateRange(emails, from, to)

	users := make(map[string]struct{})
	for _, c := range callsInRange {
		users[c.AssignedTo] = struct{}{}
	}
	for _, e := range emailsInRange {
		users[e.AssignedTo] = struct{}{}
	}

	// Top accounts span both activity types.
	accounts := make([]string, 0, len(callsInRange)+len(emailsInRange))
	for _, c := range callsInRange {
		accounts = append(accounts, c.AccountName)
	}
	for _, e := range emailsInRange {
		accounts = append(accounts, e.CompanyAccount)
	}

	return OverviewMetrics{
		TotalActivities: len(callsInRange) + len(emailsInRange),
		TotalCalls:      len(callsInRange),
		TotalEmails:     len(emailsInRange),
		ActiveUsers:     len(users),
		CallsByDay:      AggregateByDate(callsInRange),
		EmailsByDay:     AggregateByDate(emailsInRange),
		TopAccounts:     topN(AggregateBy(accounts, func(a string) string { return a }), 5),
	}
}

func ComputeSalesMetrics(calls []types.CallRecord, from, to string) SalesMetrics {
	callsInRange := FilterByDateRange(calls, from, to)
	return SalesMetrics{
		CallsByUser:    AggregateBy(callsInRange, func(c types.CallRecord) string { return c.AssignedTo }),
		CallsByOutcome: AggregateBy(callsInRange, func(c types.CallRecord) string { return c.Outcome }),
		CallsByTopic:   AggregateBy(callsInRange, func(c types.CallRecord) string { return c.Topic }),
		CallsTrend:     AggregateByDate(callsInRange),
	}
}

func ComputeEmailsMetrics(emails []types.EmailRecord, from, to string) EmailsMetrics {
	emailsInRange := FilterByDateRange(emails, from, to)
	return EmailsMetrics{
		EmailsByUser:   AggregateBy(emailsInRange, func(e types.EmailRecord) string { return e.AssignedTo }),
		EmailsByStatus: AggregateBy(emailsInRange, func(e types.EmailRecord) string { return e.Status }),
		EmailsTrend:    AggregateByDate(emailsInRange),
		TopSubjects:    topN(AggregateBy(emailsInRange, func(e types.EmailRecord) string { return e.Subject }), 10),
	}
}

func ComputeSupportMetrics(calls []types.CallRecord, emails []types.EmailRecord, from, to string) SupportMetrics {
	callsInRange := FilterByDateRange(calls, from, to)
	emailsInRange := FilterByDateRange(emails, from, to)

	trendCounts := make(map[string]int)
	for _, c := range callsInRange {
		trendCounts[c.Date]++
	}
	for _, e := range emailsInRange {
		trendCounts[e.Date]++
	}

	performers := make([]string, 0, len(callsInRange)+len(emailsInRange))
	for _, c := range callsInRange {
		performers = append(performers, c.AssignedTo)
	}
	for _, e := range emailsInRange {
		performers = append(performers, e.AssignedTo)
	}

	return SupportMetrics{
		CallsByOutcome: AggregateBy(callsInRange, func(c types.CallRecord) string { return c.Outcome }),
		EmailsByStatus: AggregateBy(emailsInRange, func(e types.EmailRecord) string { return e.Status }),
		Trend:          seriesFromCounts(trendCounts),
		TopPerformers:  topN(AggregateBy(performers, func(u string) string { return u }), 5),
	}
}
