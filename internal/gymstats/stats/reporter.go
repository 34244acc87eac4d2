package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=reporter_mocks_test.go -package=stats_test

type workoutsLister interface {
	ListSince(ctx context.Context, from workouts.Date) ([]workouts.Workout, error)
}

// Reporter loads the workouts of a window and aggregates them. Reports are
// computed on every call.
type Reporter struct {
	workouts workoutsLister
	metrics  *metrics.Manager
	Now      func() time.Time
}

func NewReporter(workouts workoutsLister, metricsManager *metrics.Manager) *Reporter {
	return &Reporter{
		workouts: workouts,
		metrics:  metricsManager,
		Now:      time.Now,
	}
}

func (r *Reporter) Report(ctx context.Context, windowDays int, exerciseFilter string) (_ Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("stats.window", windowDays),
		attribute.String("stats.exercise", exerciseFilter),
	)

	if err := ValidateWindow(windowDays); err != nil {
		return Report{}, err
	}

	today := r.Now()
	recent, err := r.workouts.ListSince(ctx, WindowStart(today, windowDays))
	if err != nil {
		return Report{}, fmt.Errorf("stats report: %w", err)
	}

	start := time.Now()
	report := Aggregate(recent, Params{
		WindowDays:     windowDays,
		ExerciseFilter: exerciseFilter,
		Today:          today,
	})
	if r.metrics != nil {
		r.metrics.HistStatsAggregation.Observe(time.Since(start).Seconds())
	}

	span.SetAttributes(attribute.Int("stats.workouts", report.Overall.TotalWorkouts))
	return report, nil
}
