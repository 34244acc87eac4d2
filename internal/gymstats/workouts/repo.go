package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns all workouts in insertion order, each with its ordered lines.
func (r *Repo) List(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := r.queryWorkouts(
		ctx,
		`
			SELECT id, name, date, notes
			FROM workout
			ORDER BY position
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}

// ListSince returns workouts dated on or after from, in insertion order.
func (r *Repo) ListSince(ctx context.Context, from Date) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workouts.from", from.String()))

	workouts, err := r.queryWorkouts(
		ctx,
		`
			SELECT id, name, date, notes
			FROM workout
			WHERE date >= $1
			ORDER BY position
		`,
		from.Time,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts since %s: %w", from, err)
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	workouts, err := r.queryWorkouts(
		ctx,
		`
			SELECT id, name, date, notes
			FROM workout
			WHERE id = $1
		`,
		id,
	)
	if err != nil {
		return Workout{}, fmt.Errorf("get workout [%s]: %w", id, err)
	}
	if len(workouts) == 0 {
		return Workout{}, ErrWorkoutNotFound
	}

	return workouts[0], nil
}

// Save inserts the workout or replaces an existing one, header and lines
// together in one transaction. Used by imports, where both are expected.
func (r *Repo) Save(ctx context.Context, w Workout) error {
	return r.write(ctx, "repo.workouts.save", w, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`
				INSERT INTO workout (id, name, date, notes)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (id) DO UPDATE
				SET name = EXCLUDED.name, date = EXCLUDED.date, notes = EXCLUDED.notes
			`,
			w.ID, w.Name, w.Date.Time, w.Notes,
		); err != nil {
			return fmt.Errorf("save workout [%s] header: %w", w.ID, err)
		}
		return nil
	})
}

// Create inserts a new workout with its lines.
func (r *Repo) Create(ctx context.Context, w Workout) error {
	return r.write(ctx, "repo.workouts.create", w, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO workout (id, name, date, notes) VALUES ($1, $2, $3, $4)`,
			w.ID, w.Name, w.Date.Time, w.Notes,
		); err != nil {
			return fmt.Errorf("create workout [%s] header: %w", w.ID, err)
		}
		return nil
	})
}

// Replace overwrites the header and all lines of an existing workout, keeping its
// place in the list. A missing workout yields ErrWorkoutNotFound and nothing is written.
func (r *Repo) Replace(ctx context.Context, w Workout) error {
	return r.write(ctx, "repo.workouts.replace", w, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`UPDATE workout SET name = $2, date = $3, notes = $4 WHERE id = $1`,
			w.ID, w.Name, w.Date.Time, w.Notes,
		)
		if err != nil {
			return fmt.Errorf("replace workout [%s] header: %w", w.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return ErrWorkoutNotFound
		}
		return nil
	})
}

// write runs header, then swaps the lines of w, in one transaction.
func (r *Repo) write(ctx context.Context, spanName string, w Workout, header func(tx pgx.Tx) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("workout.id", w.ID),
		attribute.Int("workout.lines", len(w.Exercises)),
	)

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := header(tx); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM workout_exercise WHERE workout_id = $1`, w.ID); err != nil {
			return fmt.Errorf("write workout [%s] clear lines: %w", w.ID, err)
		}

		rows := make([][]any, 0, len(w.Exercises))
		for i, line := range w.Exercises {
			rows = append(rows, []any{
				w.ID, i, line.ExerciseID, line.ExerciseName,
				line.Sets, line.Reps, line.Weight, line.RestTime,
			})
		}
		if _, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"workout_exercise"},
			[]string{"workout_id", "position", "exercise_id", "exercise_name", "sets", "reps", "weight", "rest_time"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("write workout [%s] lines: %w", w.ID, err)
		}

		return nil
	})
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete workout [%s]: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

func (r *Repo) queryWorkouts(ctx context.Context, sql string, args ...any) ([]Workout, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		var (
			w    Workout
			date time.Time
		)
		if err := rows.Scan(&w.ID, &w.Name, &date, &w.Notes); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		w.Date = DateOf(date)
		w.Exercises = []Line{}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	if len(workouts) == 0 {
		return workouts, nil
	}

	if err := r.loadLines(ctx, workouts); err != nil {
		return nil, err
	}

	return workouts, nil
}

func (r *Repo) loadLines(ctx context.Context, workouts []Workout) error {
	ids := make([]string, 0, len(workouts))
	byID := make(map[string]int, len(workouts))
	for i, w := range workouts {
		ids = append(ids, w.ID)
		byID[w.ID] = i
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    workout_id, exercise_id, exercise_name, sets, reps, weight, rest_time
			FROM workout_exercise
			WHERE workout_id = ANY($1)
			ORDER BY workout_id, position
		`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("query lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			workoutID string
			line      Line
		)
		if err := rows.Scan(
			&workoutID,
			&line.ExerciseID,
			&line.ExerciseName,
			&line.Sets,
			&line.Reps,
			&line.Weight,
			&line.RestTime,
		); err != nil {
			return fmt.Errorf("lines scan: %w", err)
		}
		i, ok := byID[workoutID]
		if !ok {
			return errors.New("line for unexpected workout " + workoutID)
		}
		workouts[i].Exercises = append(workouts[i].Exercises, line)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("lines rows error: %w", err)
	}

	return nil
}
