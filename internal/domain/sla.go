package domain

// TeamMinutes is one bucket of elapsed business time attributed to a team.
type TeamMinutes struct {
	Team    string `json:"team"`
	Minutes int    `json:"minutes"`
}

// TeamTimeSpan attributes elapsed business minutes to each team a ticket
// passed through. Buckets keep first-appearance order; immutable once built.
type TeamTimeSpan struct {
	PerTeam      []TeamMinutes `json:"slaPerTeam"`
	TotalMinutes int           `json:"slaTotalMinutes"`
}

// Minutes returns the accumulated minutes for a team, zero when absent.
func (s *TeamTimeSpan) Minutes(team string) int {
	for _, bucket := range s.PerTeam {
		if bucket.Team == team {
			return bucket.Minutes
		}
	}
	return 0
}
