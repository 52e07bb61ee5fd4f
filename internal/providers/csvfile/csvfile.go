// Package csvfile reads rosters and season results from CSV exports of the league
// spreadsheet.
//
// Roster rows are team,conference or team,division,conference. Result rows are
// date,home,away[,...],winner where winner is Home or Away. A header row is skipped
// when present; any other malformed row fails the whole load.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/domain/teams"
	"github.com/preston-bernstein/nba-standings/internal/providers"
	"github.com/preston-bernstein/nba-standings/internal/timeutil"
)

const (
	minRosterFields = 2
	minResultFields = 4
)

// Provider loads the roster and results from two files on disk.
type Provider struct {
	rosterPath  string
	resultsPath string
	open        func(string) (io.ReadCloser, error)
}

// New creates a provider reading from the given paths.
func New(rosterPath, resultsPath string) *Provider {
	return &Provider{
		rosterPath:  rosterPath,
		resultsPath: resultsPath,
		open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// FetchRoster reads and parses the roster file.
func (p *Provider) FetchRoster(ctx context.Context) ([]teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := p.open(p.rosterPath)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()
	return ParseRoster(f, p.rosterPath)
}

// FetchGames reads and parses the results file.
func (p *Provider) FetchGames(ctx context.Context) ([]domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := p.open(p.resultsPath)
	if err != nil {
		return nil, fmt.Errorf("open results: %w", err)
	}
	defer f.Close()
	return ParseGames(f, p.resultsPath)
}

// ParseRoster parses roster rows from r. source names the input in errors.
func ParseRoster(r io.Reader, source string) ([]teams.Team, error) {
	var out []teams.Team
	err := eachRecord(r, source, func(line int, first bool, rec []string) error {
		if len(rec) < minRosterFields {
			return &providers.RowError{Source: source, Line: line, Err: providers.ErrFieldCount}
		}
		name := strings.TrimSpace(rec[0])
		team := teams.Team{Name: name, Conference: strings.TrimSpace(rec[len(rec)-1])}
		if len(rec) > minRosterFields {
			team.Division = strings.TrimSpace(rec[1])
			team.Conference = strings.TrimSpace(rec[2])
		}
		if first && isHeader(team.Name, "team") {
			return nil
		}
		if team.Name == "" || team.Conference == "" {
			return &providers.RowError{Source: source, Line: line, Err: errors.New("empty team or conference")}
		}
		out = append(out, team)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParseGames parses result rows from r in file order. source names the input in errors.
func ParseGames(r io.Reader, source string) ([]domaingames.Game, error) {
	var out []domaingames.Game
	err := eachRecord(r, source, func(line int, first bool, rec []string) error {
		if len(rec) < minResultFields {
			return &providers.RowError{Source: source, Line: line, Err: providers.ErrFieldCount}
		}
		rawDate := strings.TrimSpace(rec[0])
		if first && isHeader(rawDate, "date") {
			return nil
		}
		date, err := timeutil.ParseGameDate(rawDate)
		if err != nil {
			return &providers.RowError{Source: source, Line: line, Err: fmt.Errorf("%w: %q", providers.ErrBadDate, rawDate)}
		}
		winner, err := parseSide(rec[len(rec)-1])
		if err != nil {
			return &providers.RowError{Source: source, Line: line, Err: err}
		}
		g := domaingames.Game{
			Date:   date,
			Home:   strings.TrimSpace(rec[1]),
			Away:   strings.TrimSpace(rec[2]),
			Winner: winner,
		}
		if g.Home == "" || g.Away == "" {
			return &providers.RowError{Source: source, Line: line, Err: errors.New("empty team name")}
		}
		out = append(out, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func eachRecord(r io.Reader, source string, fn func(line int, first bool, rec []string) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first := true
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			rowErr := &providers.RowError{Source: source, Err: err}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				rowErr.Line = parseErr.Line
			}
			return rowErr
		}
		if blank(rec) {
			continue
		}
		line, _ := reader.FieldPos(0)
		if err := fn(line, first, rec); err != nil {
			return err
		}
		first = false
	}
}

func parseSide(raw string) (domaingames.Side, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "home":
		return domaingames.SideHome, nil
	case "away":
		return domaingames.SideAway, nil
	default:
		return "", fmt.Errorf("%w: %q", providers.ErrUnknownWinner, raw)
	}
}

func isHeader(value, want string) bool {
	return strings.EqualFold(strings.TrimSpace(value), want)
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
