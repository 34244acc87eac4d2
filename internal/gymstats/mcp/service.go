package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymtracker/internal/gymstats/catalog"
	"github.com/2beens/gymtracker/internal/gymstats/stats"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
)

type exerciseLister interface {
	List(ctx context.Context) ([]catalog.Exercise, error)
}

type workoutLister interface {
	List(ctx context.Context) ([]workouts.Workout, error)
}

type statsReporter interface {
	Report(ctx context.Context, windowDays int, exerciseFilter string) (stats.Report, error)
}

// contextService is what the tool handlers read from.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListExercises(ctx context.Context, category string) ([]catalog.Exercise, error)
	ListWorkouts(ctx context.Context, from, to workouts.Date) ([]workouts.Workout, error)
	WorkoutStats(ctx context.Context, windowDays int, exerciseFilter string) (stats.Report, error)
}

// ContextService exposes the catalog, the workout log and the stats to MCP clients.
type ContextService struct {
	schema    SchemaRepo
	exercises exerciseLister
	workouts  workoutLister
	stats     statsReporter
}

func NewContextService(schema SchemaRepo, exercises exerciseLister, workouts workoutLister, stats statsReporter) *ContextService {
	return &ContextService{
		schema:    schema,
		exercises: exercises,
		workouts:  workouts,
		stats:     stats,
	}
}

// GetSchema renders the workout tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymtracker DB Schema\n\nNo gymtracker tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Gymtracker DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(schemaTables, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// ListExercises returns the catalog, optionally only one category.
func (s *ContextService) ListExercises(ctx context.Context, category string) ([]catalog.Exercise, error) {
	all, err := s.exercises.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return all, nil
	}

	c, err := catalog.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	filtered := make([]catalog.Exercise, 0, len(all))
	for _, ex := range all {
		if ex.Category == c {
			filtered = append(filtered, ex)
		}
	}
	return filtered, nil
}

// ListWorkouts returns the log in insertion order, limited to [from, to] when set.
func (s *ContextService) ListWorkouts(ctx context.Context, from, to workouts.Date) ([]workouts.Workout, error) {
	all, err := s.workouts.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]workouts.Workout, 0, len(all))
	for _, w := range all {
		if !from.IsZero() && w.Date.Before(from.Time) {
			continue
		}
		if !to.IsZero() && w.Date.After(to.Time) {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered, nil
}

func (s *ContextService) WorkoutStats(ctx context.Context, windowDays int, exerciseFilter string) (stats.Report, error) {
	return s.stats.Report(ctx, windowDays, exerciseFilter)
}
