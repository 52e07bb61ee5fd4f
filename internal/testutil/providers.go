package testutil

import (
	"context"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/domain/teams"
)

// GoodProvider returns the provided roster and games with no error.
type GoodProvider struct {
	Teams []teams.Team
	Games []domaingames.Game
}

func (p GoodProvider) FetchRoster(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return p.Teams, nil
}

func (p GoodProvider) FetchGames(ctx context.Context) ([]domaingames.Game, error) {
	_ = ctx
	return p.Games, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchRoster(ctx context.Context) ([]teams.Team, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchGames(ctx context.Context) ([]domaingames.Game, error) {
	return nil, p.Err
}

// RecordingSink collects eliminations and optionally fails.
type RecordingSink struct {
	Got []domaingames.Elimination
	Err error
}

func (s *RecordingSink) Emit(e domaingames.Elimination) error {
	if s.Err != nil {
		return s.Err
	}
	s.Got = append(s.Got, e)
	return nil
}
