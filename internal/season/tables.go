package season

import (
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-standings/internal/domain/teams"
	"github.com/preston-bernstein/nba-standings/internal/standings"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultConferences is the order tables are checked and reported in.
var DefaultConferences = []string{teams.ConferenceWest, teams.ConferenceEast}

// ErrDuplicateConference is returned when a conference label is listed twice.
var ErrDuplicateConference = errors.New("conference listed more than once")

// BuildTables seeds one table per conference label from the roster, keeping roster
// order inside each conference. Labels match case-insensitively; teams in other
// conferences are ignored.
func BuildTables(roster []teams.Team, conferences []string, opts ...standings.Option) ([]*standings.Table, error) {
	if len(conferences) == 0 {
		conferences = DefaultConferences
	}
	for i, conf := range conferences {
		for _, prev := range conferences[:i] {
			if teams.SameConference(conf, prev) {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateConference, strings.TrimSpace(conf))
			}
		}
	}
	tables := make([]*standings.Table, 0, len(conferences))
	for _, conf := range conferences {
		var names []string
		for _, team := range roster {
			if team.InConference(conf) {
				names = append(names, team.Name)
			}
		}
		table, err := standings.NewTable(displayName(conf), names, opts...)
		if err != nil {
			return nil, fmt.Errorf("build %s table: %w", conf, err)
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func displayName(conf string) string {
	return cases.Title(language.English).String(strings.TrimSpace(conf))
}
