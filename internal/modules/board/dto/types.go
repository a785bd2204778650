package dto

type LeaderEntryOutput struct {
	Rank          int
	Badge         string
	Name          string
	Points        int
	Contributions int
	Level         string
}

type LeaderboardOutput struct {
	Users      []LeaderEntryOutput
	Volunteers []LeaderEntryOutput
}

type DailyCountOutput struct {
	Date  string
	Count int
}

type AnalyticsOutput struct {
	TotalReports         int
	ResolvedReports      int
	CategoryDistribution map[string]int
	DailyReports         []DailyCountOutput
	NextWeekEstimate     int
	Trend                string
	ResolutionRate       float64
	AvgResolutionDays    float64
}
