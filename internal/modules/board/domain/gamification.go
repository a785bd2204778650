package domain

// Point awards mirror the server's scoring so projected totals shown
// locally match what the server will eventually report.
const (
	PointsReportSubmitted = 10
	PointsReportVerified  = 5
	PointsProblemSolved   = 25
)

type Level struct {
	Name      string
	MinPoints int
}

var levels = []Level{
	{Name: "Newcomer", MinPoints: 0},
	{Name: "Contributor", MinPoints: 50},
	{Name: "Guardian", MinPoints: 200},
	{Name: "Champion", MinPoints: 500},
}

// LevelFor maps a point total to its level.
func LevelFor(points int) Level {
	current := levels[0]
	for _, level := range levels {
		if points >= level.MinPoints {
			current = level
		}
	}
	return current
}
