package standings

import (
	"errors"
	"fmt"
	"sort"
	"time"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
)

const (
	// ConferenceSize is the number of teams every conference table holds.
	ConferenceSize = 15
	// DefaultSeasonGames is the length of a regular season.
	DefaultSeasonGames = 82
	// DefaultPlayoffSeeds is how many teams per conference qualify.
	DefaultPlayoffSeeds = 8
)

var (
	ErrConferenceSize = errors.New("conference must have exactly 15 teams")
	ErrDuplicateTeam  = errors.New("duplicate team in conference")
	ErrEmptyTeamName  = errors.New("team name required")
)

// Standing is a read-only row of a ranked conference table.
type Standing struct {
	Rank       int     `json:"rank"`
	Team       string  `json:"team"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinPct     float64 `json:"winPct"`
	Eliminated bool    `json:"eliminated"`
}

// Option customises a Table.
type Option func(*Table)

// WithSeasonGames overrides the number of games each team plays.
func WithSeasonGames(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.seasonGames = n
		}
	}
}

// WithPlayoffSeeds overrides how many teams qualify. The last qualifier is the cutoff
// every lower team is measured against.
func WithPlayoffSeeds(n int) Option {
	return func(t *Table) {
		if n > 0 && n < ConferenceSize {
			t.playoffSeeds = n
		}
	}
}

// Table owns the records of one conference. The set of team names is fixed at
// construction; ranking reorders the teams but never adds or removes any.
type Table struct {
	conference   string
	seasonGames  int
	playoffSeeds int

	ranking []*TeamRecord
	byName  map[string]*TeamRecord
}

// NewTable seeds a conference with 0-0 records for the given names, in order.
func NewTable(conference string, names []string, opts ...Option) (*Table, error) {
	if len(names) != ConferenceSize {
		return nil, fmt.Errorf("%s: %w (got %d)", conference, ErrConferenceSize, len(names))
	}
	t := &Table{
		conference:   conference,
		seasonGames:  DefaultSeasonGames,
		playoffSeeds: DefaultPlayoffSeeds,
		ranking:      make([]*TeamRecord, 0, len(names)),
		byName:       make(map[string]*TeamRecord, len(names)),
	}
	for _, opt := range opts {
		opt(t)
	}
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%s: %w", conference, ErrEmptyTeamName)
		}
		if _, ok := t.byName[name]; ok {
			return nil, fmt.Errorf("%s: %w: %s", conference, ErrDuplicateTeam, name)
		}
		rec := NewTeamRecord(name)
		t.ranking = append(t.ranking, rec)
		t.byName[name] = rec
	}
	return t, nil
}

// Conference returns the conference label the table was built with.
func (t *Table) Conference() string {
	return t.conference
}

// SeasonGames returns the configured season length.
func (t *Table) SeasonGames() int {
	return t.seasonGames
}

// PlayoffSeeds returns how many teams qualify.
func (t *Table) PlayoffSeeds() int {
	return t.playoffSeeds
}

// Contains reports whether name plays in this conference.
func (t *Table) Contains(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Team returns a copy of the named team's record.
func (t *Table) Team(name string) (*TeamRecord, bool) {
	rec, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return rec.Clone(), true
}

// ApplyResult records a game for whichever of the two teams play in this conference
// and returns how many of its teams were updated. Names from other conferences are
// ignored, so callers pass every game to every table.
func (t *Table) ApplyResult(winner, loser string) int {
	updated := 0
	if rec, ok := t.byName[winner]; ok {
		rec.RecordWin(loser)
		updated++
	}
	if rec, ok := t.byName[loser]; ok {
		rec.RecordLoss(winner)
		updated++
	}
	return updated
}

// Rank sorts the conference best to worst and returns the resulting standings.
// Teams the comparator cannot separate keep their previous relative order.
func (t *Table) Rank() []Standing {
	sort.SliceStable(t.ranking, func(i, j int) bool {
		return Compare(t.ranking[i], t.ranking[j]) < 0
	})
	return t.Standings()
}

// Standings returns the current order without re-sorting.
func (t *Table) Standings() []Standing {
	out := make([]Standing, 0, len(t.ranking))
	for i, rec := range t.ranking {
		out = append(out, Standing{
			Rank:       i + 1,
			Team:       rec.Name,
			Wins:       rec.Wins,
			Losses:     rec.Losses,
			WinPct:     rec.WinPct,
			Eliminated: rec.Eliminated,
		})
	}
	return out
}

// CheckEliminations measures every team below the cutoff seed against it, using the
// order from the last Rank call. Newly eliminated teams are marked and returned in
// rank order, stamped with asOf.
func (t *Table) CheckEliminations(asOf time.Time) []domaingames.Elimination {
	cutoff := t.ranking[t.playoffSeeds-1]
	var out []domaingames.Elimination
	for _, rec := range t.ranking[t.playoffSeeds:] {
		if rec.Eliminated {
			continue
		}
		if !t.isEliminated(rec, cutoff) {
			continue
		}
		rec.Eliminate()
		out = append(out, domaingames.Elimination{
			Team:       rec.Name,
			Conference: t.conference,
			Date:       asOf,
		})
	}
	return out
}

func (t *Table) isEliminated(candidate, cutoff *TeamRecord) bool {
	back := GamesBack(candidate, cutoff)
	makeUp := MakeUpGames(candidate, cutoff, t.seasonGames)
	switch {
	case back > makeUp:
		return true
	case back == makeUp:
		// Level at best: the tiebreaker decides.
		return Compare(candidate, cutoff) > 0
	default:
		return false
	}
}

// GamesBack is the standard games-behind figure of candidate relative to leader.
func GamesBack(candidate, leader *TeamRecord) float64 {
	winDiff := leader.Wins - candidate.Wins
	lossDiff := leader.Losses - candidate.Losses
	return float64(winDiff-lossDiff) / 2.0
}

// MakeUpGames is the most ground candidate can still gain on leader: candidate wins
// every remaining game and leader loses every one of theirs.
func MakeUpGames(candidate, leader *TeamRecord, seasonGames int) float64 {
	return float64(candidate.RemainingGames(seasonGames))/2.0 + float64(leader.RemainingGames(seasonGames))/2.0
}
