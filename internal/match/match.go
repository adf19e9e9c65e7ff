package match

import (
	"fmt"
	"strings"
)

// AlertHeader is the first line of every alert message
const AlertHeader = "Avoid public transport during these match times:"

// unknownTeam replaces a team name the API has not published yet
const unknownTeam = "TBD"

// Match represents a scheduled football fixture
type Match struct {
	ID          int64  `json:"id,omitempty"`
	UTCDate     string `json:"utc_date"` // Kick-off timestamp, verbatim from the API
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	Competition string `json:"competition,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Line renders the match as "<utcDate> - <home> vs <away>"
func (m Match) Line() string {
	return fmt.Sprintf("%s - %s vs %s", m.UTCDate, teamName(m.HomeTeam), teamName(m.AwayTeam))
}

// BuildMessage joins one line per match under the alert header.
// Returns an empty string when there are no matches.
func BuildMessage(matches []Match) string {
	if len(matches) == 0 {
		return ""
	}

	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, m.Line())
	}

	return AlertHeader + "\n\n" + strings.Join(lines, "\n")
}

func teamName(name string) string {
	if strings.TrimSpace(name) == "" {
		return unknownTeam
	}
	return name
}
