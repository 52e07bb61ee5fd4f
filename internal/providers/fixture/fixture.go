package fixture

import (
	"context"
	"time"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/domain/teams"
)

const defaultSeasonGames = 82

// Provider returns the 2016-17 league roster and a generated, deterministic season
// useful for local runs without input files.
type Provider struct {
	opener      time.Time
	seasonGames int
}

// New creates a fixture provider whose season opens on 2016-10-25.
func New() *Provider {
	return &Provider{
		opener:      time.Date(2016, 10, 25, 0, 0, 0, 0, time.UTC),
		seasonGames: defaultSeasonGames,
	}
}

// FetchRoster returns all 30 teams, east first, in a fixed order.
func (p *Provider) FetchRoster(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	out := make([]teams.Team, len(roster))
	copy(out, roster)
	return out, nil
}

// FetchGames returns one game per team per day until every team has played a full
// season. Pairings rotate round-robin style; the stronger side usually wins.
func (p *Provider) FetchGames(ctx context.Context) ([]domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := len(roster)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	gs := make([]domaingames.Game, 0, n/2*p.seasonGames)
	for round := 0; round < p.seasonGames; round++ {
		date := p.opener.AddDate(0, 0, round)
		for j := 0; j < n/2; j++ {
			a, b := order[j], order[n-1-j]
			if round%2 == 1 {
				a, b = b, a
			}
			gs = append(gs, domaingames.Game{
				Date:   date,
				Home:   roster[a].Name,
				Away:   roster[b].Name,
				Winner: pickWinner(a, b, round),
			})
		}
		// Rotate everyone except the first slot.
		last := order[n-1]
		copy(order[2:], order[1:n-1])
		order[1] = last
	}
	return gs, nil
}

func pickWinner(home, away, round int) domaingames.Side {
	homeWins := strength[home] >= strength[away]
	if (home+away+round)%5 == 0 {
		homeWins = !homeWins
	}
	if homeWins {
		return domaingames.SideHome
	}
	return domaingames.SideAway
}

var roster = []teams.Team{
	{Name: "Atlanta Hawks", Division: "Southeast", Conference: teams.ConferenceEast},
	{Name: "Boston Celtics", Division: "Atlantic", Conference: teams.ConferenceEast},
	{Name: "Brooklyn Nets", Division: "Atlantic", Conference: teams.ConferenceEast},
	{Name: "Charlotte Hornets", Division: "Southeast", Conference: teams.ConferenceEast},
	{Name: "Chicago Bulls", Division: "Central", Conference: teams.ConferenceEast},
	{Name: "Cleveland Cavaliers", Division: "Central", Conference: teams.ConferenceEast},
	{Name: "Detroit Pistons", Division: "Central", Conference: teams.ConferenceEast},
	{Name: "Indiana Pacers", Division: "Central", Conference: teams.ConferenceEast},
	{Name: "Miami Heat", Division: "Southeast", Conference: teams.ConferenceEast},
	{Name: "Milwaukee Bucks", Division: "Central", Conference: teams.ConferenceEast},
	{Name: "New York Knicks", Division: "Atlantic", Conference: teams.ConferenceEast},
	{Name: "Orlando Magic", Division: "Southeast", Conference: teams.ConferenceEast},
	{Name: "Philadelphia 76ers", Division: "Atlantic", Conference: teams.ConferenceEast},
	{Name: "Toronto Raptors", Division: "Atlantic", Conference: teams.ConferenceEast},
	{Name: "Washington Wizards", Division: "Southeast", Conference: teams.ConferenceEast},
	{Name: "Dallas Mavericks", Division: "Southwest", Conference: teams.ConferenceWest},
	{Name: "Denver Nuggets", Division: "Northwest", Conference: teams.ConferenceWest},
	{Name: "Golden State Warriors", Division: "Pacific", Conference: teams.ConferenceWest},
	{Name: "Houston Rockets", Division: "Southwest", Conference: teams.ConferenceWest},
	{Name: "LA Clippers", Division: "Pacific", Conference: teams.ConferenceWest},
	{Name: "Los Angeles Lakers", Division: "Pacific", Conference: teams.ConferenceWest},
	{Name: "Memphis Grizzlies", Division: "Southwest", Conference: teams.ConferenceWest},
	{Name: "Minnesota Timberwolves", Division: "Northwest", Conference: teams.ConferenceWest},
	{Name: "New Orleans Pelicans", Division: "Southwest", Conference: teams.ConferenceWest},
	{Name: "Oklahoma City Thunder", Division: "Northwest", Conference: teams.ConferenceWest},
	{Name: "Phoenix Suns", Division: "Pacific", Conference: teams.ConferenceWest},
	{Name: "Portland Trail Blazers", Division: "Northwest", Conference: teams.ConferenceWest},
	{Name: "Sacramento Kings", Division: "Pacific", Conference: teams.ConferenceWest},
	{Name: "San Antonio Spurs", Division: "Southwest", Conference: teams.ConferenceWest},
	{Name: "Utah Jazz", Division: "Northwest", Conference: teams.ConferenceWest},
}

// strength is indexed like roster; higher wins more often.
var strength = []int{
	18, 27, 1, 12, 15, 28, 11, 16, 14, 17, 8, 5, 3, 26, 24,
	9, 13, 30, 29, 22, 2, 19, 7, 6, 20, 4, 10, 10, 25, 23,
}
