package standings

// TeamRecord is one team's season-to-date record. It is created when its conference
// table is built and mutated in place for the rest of the season.
type TeamRecord struct {
	Name       string
	Wins       int
	Losses     int
	WinPct     float64
	Eliminated bool

	// headToHead holds wins minus losses keyed by opponent name.
	headToHead map[string]int
}

// NewTeamRecord returns a 0-0 record with no head-to-head data.
func NewTeamRecord(name string) *TeamRecord {
	return &TeamRecord{
		Name:       name,
		headToHead: make(map[string]int),
	}
}

// RecordWin adds a win against opponent.
func (r *TeamRecord) RecordWin(opponent string) {
	r.Wins++
	r.updatePct()
	r.updateHeadToHead(opponent, 1)
}

// RecordLoss adds a loss against opponent.
func (r *TeamRecord) RecordLoss(opponent string) {
	r.Losses++
	r.updatePct()
	r.updateHeadToHead(opponent, -1)
}

// HeadToHeadNet returns wins minus losses against opponent, 0 if they have not met.
func (r *TeamRecord) HeadToHeadNet(opponent string) int {
	return r.headToHead[opponent]
}

// Eliminate marks the team as out of playoff contention. There is no way back.
func (r *TeamRecord) Eliminate() {
	r.Eliminated = true
}

// GamesPlayed returns wins plus losses.
func (r *TeamRecord) GamesPlayed() int {
	return r.Wins + r.Losses
}

// RemainingGames returns how many games are left in a season of seasonGames.
func (r *TeamRecord) RemainingGames(seasonGames int) int {
	return seasonGames - r.GamesPlayed()
}

// Clone returns a deep copy so callers cannot mutate table state.
func (r *TeamRecord) Clone() *TeamRecord {
	c := *r
	c.headToHead = make(map[string]int, len(r.headToHead))
	for k, v := range r.headToHead {
		c.headToHead[k] = v
	}
	return &c
}

func (r *TeamRecord) updatePct() {
	played := r.GamesPlayed()
	if played == 0 {
		r.WinPct = 0
		return
	}
	r.WinPct = float64(r.Wins) / float64(played)
}

func (r *TeamRecord) updateHeadToHead(opponent string, change int) {
	if r.headToHead == nil {
		r.headToHead = make(map[string]int)
	}
	r.headToHead[opponent] += change
}
