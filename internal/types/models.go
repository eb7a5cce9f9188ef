package types

// CallRecord is one logged call activity, normalized from a spreadsheet
// row. Date is always a valid ISO yyyy-MM-dd string; rows without a
// resolvable date never become records.
type CallRecord struct {
	Date         string `json:"date"`
	ActivityType string `json:"activityType"`
	Subject      string `json:"subject"`
	AssignedTo   string `json:"assignedTo"`
	AccountName  string `json:"accountName"`
	RelatedTo    string `json:"relatedTo"`
	Topic        string `json:"topic"`
	Outcome      string `json:"outcome"`
}

func (r CallRecord) ActivityDate() string { return r.Date }

// EmailRecord is one logged email activity.
type EmailRecord struct {
	Date           string `json:"date"`
	AssignedTo     string `json:"assignedTo"`
	ActivityType   string `json:"activityType"`
	CompanyAccount string `json:"companyAccount"`
	Opportunity    string `json:"opportunity"`
	Contact        string `json:"contact"`
	Lead           string `json:"lead"`
	Subject        string `json:"subject"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	Task           string `json:"task"`
	TaskSubtype    string `json:"taskSubtype"`
}

func (r EmailRecord) ActivityDate() string { return r.Date }

// KeyCount is the output shape of every group-by aggregation, sorted by
// count descending.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TimeSeriesPoint is one day's activity count; series are sorted
// ascending by date.
type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// MonthlyValue is one metric reading for one month. A nil Value means no
// data was recorded for the period, which charts treat differently from
// zero activity.
type MonthlyValue struct {
	Month string   `json:"month"`
	Value *float64 `json:"value"`
}
