package season

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/nba-standings/internal/domain/games"
	"github.com/preston-bernstein/nba-standings/internal/logging"
	"github.com/preston-bernstein/nba-standings/internal/metrics"
	"github.com/preston-bernstein/nba-standings/internal/standings"
	"github.com/preston-bernstein/nba-standings/internal/store"
	"github.com/preston-bernstein/nba-standings/internal/timeutil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/preston-bernstein/nba-standings/internal/season"

// ErrOutOfOrder is returned when a result is dated before the one preceding it.
var ErrOutOfOrder = errors.New("results are not in chronological order")

// Sink receives eliminations as they are decided.
type Sink interface {
	Emit(e domaingames.Elimination) error
}

// SnapshotStore keeps the standings at the end of each processed day.
type SnapshotStore interface {
	SaveDay(snap store.DaySnapshot)
}

// Option customises a Driver.
type Option func(*Driver)

// WithLogger sets the driver logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(d *Driver) { d.metrics = rec }
}

// WithSnapshots stores a DaySnapshot after every elimination pass.
func WithSnapshots(s SnapshotStore) Option {
	return func(d *Driver) { d.snapshots = s }
}

// WithSink streams each elimination to s as soon as it is decided.
func WithSink(s Sink) Option {
	return func(d *Driver) { d.sink = s }
}

// WithTracer sets the tracer used for run and pass spans. The global provider is used
// otherwise.
func WithTracer(t trace.Tracer) Option {
	return func(d *Driver) { d.tracer = t }
}

// Driver replays a season one game at a time and runs an elimination pass at the end
// of every day. It owns its tables for the duration of a run and is not safe for
// concurrent use.
type Driver struct {
	tables    []*standings.Table
	logger    *slog.Logger
	metrics   *metrics.Recorder
	snapshots SnapshotStore
	sink      Sink
	tracer    trace.Tracer
	now       func() time.Time
}

// New creates a driver over tables, which are checked in the order given.
func New(tables []*standings.Table, opts ...Option) *Driver {
	d := &Driver{
		tables: tables,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.tracer == nil {
		d.tracer = otel.Tracer(tracerName)
	}
	return d
}

// Run applies results in order and returns every elimination in the order decided:
// by day, then table order, then rank. Results must be sorted by date; a result
// dated before its predecessor aborts the run with ErrOutOfOrder.
func (d *Driver) Run(ctx context.Context, results []domaingames.Result) (elim []domaingames.Elimination, err error) {
	if len(results) == 0 {
		return nil, nil
	}

	ctx, span := d.tracer.Start(ctx, "season.run", trace.WithAttributes(
		attribute.Int("season.results", len(results)),
		attribute.Int("season.tables", len(d.tables)),
	))
	defer func() {
		span.SetAttributes(attribute.Int("season.eliminations", len(elim)))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	return d.run(ctx, results)
}

func (d *Driver) run(ctx context.Context, results []domaingames.Result) ([]domaingames.Elimination, error) {
	var all []domaingames.Elimination
	current := results[0].Date
	for i, r := range results {
		if err := ctx.Err(); err != nil {
			return all, err
		}
		if r.Date.Before(current) && !timeutil.SameDay(r.Date, current) {
			return all, fmt.Errorf("result %d dated %s after %s: %w",
				i+1, timeutil.FormatDate(r.Date), timeutil.FormatDate(current), ErrOutOfOrder)
		}
		if !timeutil.SameDay(r.Date, current) {
			elim, err := d.pass(ctx, current)
			all = append(all, elim...)
			if err != nil {
				return all, err
			}
			current = r.Date
		}
		d.apply(r)
	}

	elim, err := d.pass(ctx, current)
	all = append(all, elim...)
	return all, err
}

func (d *Driver) apply(r domaingames.Result) {
	for _, table := range d.tables {
		if table.ApplyResult(r.Winner, r.Loser) > 0 {
			d.metrics.RecordGameApplied(table.Conference())
		}
	}
}

// pass ranks every table before checking any of them.
func (d *Driver) pass(ctx context.Context, date time.Time) ([]domaingames.Elimination, error) {
	_, span := d.tracer.Start(ctx, "season.pass", trace.WithAttributes(
		attribute.String("season.date", timeutil.FormatDate(date)),
	))
	defer span.End()

	start := d.now()
	for _, table := range d.tables {
		table.Rank()
	}

	var out []domaingames.Elimination
	for _, table := range d.tables {
		for _, e := range table.CheckEliminations(date) {
			out = append(out, e)
			d.metrics.RecordElimination(e.Conference)
			logging.Info(d.logger, "team eliminated",
				logging.FieldTeam, e.Team,
				logging.FieldConference, e.Conference,
				logging.FieldDate, timeutil.FormatDate(e.Date),
			)
			if d.sink != nil {
				if err := d.sink.Emit(e); err != nil {
					span.RecordError(err)
					return out, fmt.Errorf("emit elimination for %s: %w", e.Team, err)
				}
			}
		}
	}

	if d.snapshots != nil {
		d.snapshots.SaveDay(d.snapshot(date, out))
	}

	elapsed := d.now().Sub(start)
	span.SetAttributes(attribute.Int("season.eliminations", len(out)))
	d.metrics.RecordPass(elapsed)
	logging.Debug(d.logger, "elimination pass complete",
		logging.FieldDate, timeutil.FormatDate(date),
		logging.FieldCount, len(out),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return out, nil
}

func (d *Driver) snapshot(date time.Time, elim []domaingames.Elimination) store.DaySnapshot {
	snap := store.DaySnapshot{
		Date:         date,
		Conferences:  make([]store.ConferenceSnapshot, 0, len(d.tables)),
		Eliminations: elim,
	}
	for _, table := range d.tables {
		snap.Conferences = append(snap.Conferences, store.ConferenceSnapshot{
			Conference: table.Conference(),
			Standings:  table.Standings(),
		})
	}
	return snap
}
