package domain

import "sort"

// LeaderEntry is one contributor on the leaderboard.
type LeaderEntry struct {
	ID            string
	Name          string
	Points        int
	Contributions int
}

// Score is the ranking metric. User entries carry a contributions
// count, volunteer entries carry points; whichever is populated wins.
func (e LeaderEntry) Score() int {
	if e.Contributions > e.Points {
		return e.Contributions
	}
	return e.Points
}

// Leaderboards holds the two boards the server publishes side by side.
type Leaderboards struct {
	Users      []LeaderEntry
	Volunteers []LeaderEntry
}

// Rank orders entries by score descending, name ascending on ties.
// Server order is never trusted.
func Rank(entries []LeaderEntry) []LeaderEntry {
	ranked := make([]LeaderEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score() != ranked[j].Score() {
			return ranked[i].Score() > ranked[j].Score()
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

// Badge returns the marker for a 1-based rank. The podium gets medals,
// everyone else a plain ordinal marker.
func Badge(rank int) string {
	switch rank {
	case 1:
		return "🏆"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "  "
	}
}
