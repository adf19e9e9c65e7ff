package footballdata

// matchesResponse is the subset of GET /v4/matches the client reads
type matchesResponse struct {
	Matches []matchDTO `json:"matches"`
}

type matchDTO struct {
	ID          int64          `json:"id"`
	UTCDate     string         `json:"utcDate"`
	Status      string         `json:"status"`
	HomeTeam    teamDTO        `json:"homeTeam"`
	AwayTeam    teamDTO        `json:"awayTeam"`
	Competition competitionDTO `json:"competition"`
}

type teamDTO struct {
	Name string `json:"name"`
}

type competitionDTO struct {
	Name string `json:"name"`
}
