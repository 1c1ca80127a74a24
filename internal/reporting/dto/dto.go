package dto

import "time"

// Window is a named time range scoping an aggregation.
type Window string

const (
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

// Start returns the inclusive lower bound of the window relative to now.
// The second result is false for the unbounded all-time window (and for any
// unrecognized value, which the original treated as all-time too).
func (w Window) Start(now time.Time) (time.Time, bool) {
	now = now.UTC()
	switch w {
	case WindowToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	case WindowWeek:
		return now.AddDate(0, 0, -7), true
	case WindowMonth:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

type SalesSummary struct {
	TotalRevenue float64 `db:"total_revenue"`
	TotalItems   int     `db:"total_items"`
}

type TrendPoint struct {
	Date  string  `db:"sale_date"` // Calendar day, YYYY-MM-DD
	Total float64 `db:"daily_total"`
}

type ProductRank struct {
	Name      string  `db:"name"`
	UnitsSold int     `db:"units_sold"`
	Revenue   float64 `db:"revenue"`
}

type CategoryTotal struct {
	Category string  `db:"category"`
	Total    float64 `db:"total"`
}

type StaffPerformance struct {
	Name      string  `db:"name"`
	Revenue   float64 `db:"revenue"`
	ItemsSold int     `db:"items_sold"`
}

type CustomerSpend struct {
	Name       string  `db:"name"`
	TotalSpent float64 `db:"total_spent"`
}

// BucketTotal is one row of a fixed-bucket histogram (season, month, age group).
type BucketTotal struct {
	Bucket string  `db:"bucket"`
	Total  float64 `db:"total"`
}
