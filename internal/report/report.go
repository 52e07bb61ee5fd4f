// Package report renders eliminations and standings as fixed-width text.
package report

import (
	"fmt"
	"io"
	"sync"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/standings"
	"github.com/preston-bernstein/nba-standings/internal/timeutil"
)

const (
	headerFormat      = "%8s %30s\n"
	eliminationFormat = "%-25s %10s\n"
)

// Writer is the elimination report sink. The header is written once, before the
// first line of output.
type Writer struct {
	mu         sync.Mutex
	out        io.Writer
	headerDone bool
}

// NewWriter creates a report writing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteHeader writes the column header if it has not been written yet.
func (w *Writer) WriteHeader() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.header()
}

// Emit writes one elimination line.
func (w *Writer) Emit(e domaingames.Elimination) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.header(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w.out, eliminationFormat, e.Team, timeutil.FormatReportDate(e.Date))
	return err
}

// WriteStandings lists a conference best to worst as "rank team wins losses".
func (w *Writer) WriteStandings(conference string, rows []standings.Standing) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := fmt.Fprintf(w.out, "\n%s\n", conference); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w.out, "%d %s %d %d\n", row.Rank, row.Team, row.Wins, row.Losses); err != nil {
			return err
		}
	}
	return nil
}

// caller holds w.mu
func (w *Writer) header() error {
	if w.headerDone {
		return nil
	}
	if _, err := fmt.Fprintf(w.out, headerFormat, "Team", "Elimination Date"); err != nil {
		return err
	}
	w.headerDone = true
	return nil
}
