package footballdata

import "github.com/pfrederiksen/match-alert/internal/match"

func toMatch(dto matchDTO) match.Match {
	return match.Match{
		ID:          dto.ID,
		UTCDate:     dto.UTCDate,
		HomeTeam:    dto.HomeTeam.Name,
		AwayTeam:    dto.AwayTeam.Name,
		Competition: dto.Competition.Name,
		Status:      dto.Status,
	}
}

// toMatches keeps the API order and never returns nil
func toMatches(dtos []matchDTO) []match.Match {
	matches := make([]match.Match, 0, len(dtos))
	for _, dto := range dtos {
		matches = append(matches, toMatch(dto))
	}
	return matches
}
