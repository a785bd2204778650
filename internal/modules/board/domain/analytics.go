package domain

// DailyCount is one day's report volume.
type DailyCount struct {
	Date  string
	Count int
}

type Predictions struct {
	NextWeekEstimate int
	Trend            string
}

type ImpactMetrics struct {
	ResolutionRate    float64
	AvgResolutionDays float64
}

// Analytics is the aggregate snapshot served to volunteers.
type Analytics struct {
	TotalReports         int
	ResolvedReports      int
	CategoryDistribution map[string]int
	DailyReports         []DailyCount
	Predictions          Predictions
	Impact               ImpactMetrics
}
