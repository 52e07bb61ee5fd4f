package providers

import (
	"context"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/domain/teams"
)

// RosterSource supplies the teams of every conference with their conference label.
type RosterSource interface {
	FetchRoster(ctx context.Context) ([]teams.Team, error)
}

// ResultSource supplies a season's games. Dates must be non-decreasing; sources do
// not reorder rows.
type ResultSource interface {
	FetchGames(ctx context.Context) ([]domaingames.Game, error)
}

// DataProvider combines both source capabilities.
type DataProvider interface {
	RosterSource
	ResultSource
}
