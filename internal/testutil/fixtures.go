package testutil

import (
	"fmt"
	"time"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/domain/teams"
)

// ConferenceNames returns 15 distinct names such as W01..W15.
func ConferenceNames(prefix string) []string {
	names := make([]string, 0, 15)
	for i := 1; i <= 15; i++ {
		names = append(names, fmt.Sprintf("%s%02d", prefix, i))
	}
	return names
}

// Roster builds a 30-team roster: W01..W15 in the West and E01..E15 in the East.
func Roster() []teams.Team {
	var out []teams.Team
	for _, n := range ConferenceNames("W") {
		out = append(out, teams.Team{Name: n, Conference: teams.ConferenceWest})
	}
	for _, n := range ConferenceNames("E") {
		out = append(out, teams.Team{Name: n, Conference: teams.ConferenceEast})
	}
	return out
}

// Result builds a game result on date.
func Result(date time.Time, winner, loser string) domaingames.Result {
	return domaingames.Result{Date: date, Winner: winner, Loser: loser}
}

// HomeWin builds a game row won by the home side.
func HomeWin(date time.Time, home, away string) domaingames.Game {
	return domaingames.Game{Date: date, Home: home, Away: away, Winner: domaingames.SideHome}
}
