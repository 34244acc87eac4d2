package catalog

import (
	"context"
	"errors"
	"fmt"

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

// List returns all exercises in insertion order.
func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, name, category, muscle_group, description
			FROM exercise
			ORDER BY position
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises [query]: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var ex Exercise
		if err := rows.Scan(
			&ex.ID,
			&ex.Name,
			&ex.Category,
			&ex.MuscleGroup,
			&ex.Description,
		); err != nil {
			return nil, fmt.Errorf("list exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, ex)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exercises [rows error]: %w", err)
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))
	return exercises, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	var ex Exercise
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    id, name, category, muscle_group, description
			FROM exercise
			WHERE id = $1
		`,
		id,
	).Scan(
		&ex.ID,
		&ex.Name,
		&ex.Category,
		&ex.MuscleGroup,
		&ex.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Exercise{}, ErrExerciseNotFound
		}
		return Exercise{}, fmt.Errorf("get exercise [query row]: %w", err)
	}

	return ex, nil
}

func (r *Repo) Add(ctx context.Context, ex Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO exercise (id, name, category, muscle_group, description)
			VALUES ($1, $2, $3, $4, $5)
		`,
		ex.ID, ex.Name, ex.Category, ex.MuscleGroup, ex.Description,
	)
	if err != nil {
		return fmt.Errorf("add exercise: %w", err)
	}

	return nil
}

// Upsert inserts the exercise or overwrites the one with the same id, keeping its list position.
func (r *Repo) Upsert(ctx context.Context, ex Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO exercise (id, name, category, muscle_group, description)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				category = EXCLUDED.category,
				muscle_group = EXCLUDED.muscle_group,
				description = EXCLUDED.description
		`,
		ex.ID, ex.Name, ex.Category, ex.MuscleGroup, ex.Description,
	)
	if err != nil {
		return fmt.Errorf("upsert exercise: %w", err)
	}

	return nil
}

func (r *Repo) Update(ctx context.Context, ex Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", ex.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE exercise
			SET name = $1, category = $2, muscle_group = $3, description = $4
			WHERE id = $5
		`,
		ex.Name, ex.Category, ex.MuscleGroup, ex.Description, ex.ID,
	)
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}
