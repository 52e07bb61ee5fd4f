package store

import (
	"sort"
	"sync"
	"time"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/standings"
	"github.com/preston-bernstein/nba-standings/internal/timeutil"
)

// ConferenceSnapshot is one conference's ranked table at the end of a day.
type ConferenceSnapshot struct {
	Conference string               `json:"conference"`
	Standings  []standings.Standing `json:"standings"`
}

// DaySnapshot captures every conference after a day's elimination pass.
type DaySnapshot struct {
	Date         time.Time                 `json:"date"`
	Conferences  []ConferenceSnapshot      `json:"conferences"`
	Eliminations []domaingames.Elimination `json:"eliminations"`
}

// MemoryStore keeps a thread-safe set of day snapshots in memory.
type MemoryStore struct {
	mu   sync.RWMutex
	days map[string]DaySnapshot
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		days: make(map[string]DaySnapshot),
	}
}

// SaveDay stores a snapshot, replacing any earlier one for the same date.
func (s *MemoryStore) SaveDay(snap DaySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.days[timeutil.FormatDate(snap.Date)] = cloneDay(snap)
}

// GetDay retrieves the snapshot for a YYYY-MM-DD date.
func (s *MemoryStore) GetDay(date string) (DaySnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.days[date]
	if !ok {
		return DaySnapshot{}, false
	}
	return cloneDay(snap), true
}

// ListDates returns the stored dates in ascending order.
func (s *MemoryStore) ListDates() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dates := make([]string, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Latest returns the most recent snapshot, if any.
func (s *MemoryStore) Latest() (DaySnapshot, bool) {
	dates := s.ListDates()
	if len(dates) == 0 {
		return DaySnapshot{}, false
	}
	return s.GetDay(dates[len(dates)-1])
}

func cloneDay(snap DaySnapshot) DaySnapshot {
	out := DaySnapshot{Date: snap.Date}
	out.Conferences = make([]ConferenceSnapshot, 0, len(snap.Conferences))
	for _, c := range snap.Conferences {
		rows := make([]standings.Standing, len(c.Standings))
		copy(rows, c.Standings)
		out.Conferences = append(out.Conferences, ConferenceSnapshot{Conference: c.Conference, Standings: rows})
	}
	out.Eliminations = append([]domaingames.Elimination(nil), snap.Eliminations...)
	return out
}
