package domain

// StatField names a report attribute reports can be counted by.
type StatField string

const (
	StatByStatus   StatField = "status"
	StatByCategory StatField = "category"
	StatByPriority StatField = "priority"
)

// StatCount is one grouped-count entry; Value is the raw grouping key and
// may be empty when the underlying field was never set.
type StatCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// DailyCount is one day of the trailing 30-day series, Date as YYYY-MM-DD.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ReportStats struct {
	ByStatus   []StatCount  `json:"status_stats"`
	ByCategory []StatCount  `json:"category_stats"`
	ByPriority []StatCount  `json:"priority_stats"`
	Daily      []DailyCount `json:"daily_reports"`
}
