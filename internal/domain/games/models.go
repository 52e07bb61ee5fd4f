package games

import (
	"fmt"
	"time"
)

// Side identifies which team in a game row won.
type Side string

const (
	SideHome Side = "Home"
	SideAway Side = "Away"
)

// Game is one row of the results source: the date it was played, both teams and the
// winning side. Ties are not representable; every game has exactly one winner.
type Game struct {
	Date   time.Time `json:"date"`
	Home   string    `json:"home"`
	Away   string    `json:"away"`
	Winner Side      `json:"winner"`
}

// Result is a game reduced to what the standings need.
type Result struct {
	Date   time.Time `json:"date"`
	Winner string    `json:"winner"`
	Loser  string    `json:"loser"`
}

// Result derives the winner and loser names from the winner indicator.
func (g Game) Result() (Result, error) {
	switch g.Winner {
	case SideHome:
		return Result{Date: g.Date, Winner: g.Home, Loser: g.Away}, nil
	case SideAway:
		return Result{Date: g.Date, Winner: g.Away, Loser: g.Home}, nil
	default:
		return Result{}, fmt.Errorf("unknown winner indicator %q", g.Winner)
	}
}

// Results converts a game list, failing on the first row with a bad indicator.
func Results(gs []Game) ([]Result, error) {
	out := make([]Result, 0, len(gs))
	for i, g := range gs {
		r, err := g.Result()
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Elimination records the day a team could no longer reach the playoff cutoff.
type Elimination struct {
	Team       string    `json:"team"`
	Conference string    `json:"conference"`
	Date       time.Time `json:"date"`
}
