package snapshot

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/gymstats/catalog"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/users"
)

//go:generate mockgen -source=$GOFILE -destination=exporter_mocks_test.go -package=snapshot_test

type exerciseLister interface {
	List(ctx context.Context) ([]catalog.Exercise, error)
}

type workoutLister interface {
	List(ctx context.Context) ([]workouts.Workout, error)
}

type userLister interface {
	List(ctx context.Context) ([]users.User, error)
}

type Exporter struct {
	exercises exerciseLister
	workouts  workoutLister
	users     userLister
}

func NewExporter(exercises exerciseLister, workouts workoutLister, users userLister) *Exporter {
	return &Exporter{
		exercises: exercises,
		workouts:  workouts,
		users:     users,
	}
}

// Export dumps the catalog, the workout log and the users. The current user
// slot is per session and left empty.
func (e *Exporter) Export(ctx context.Context) (Snapshot, error) {
	exercises, err := e.exercises.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("export exercises: %w", err)
	}
	all, err := e.workouts.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("export workouts: %w", err)
	}
	registered, err := e.users.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("export users: %w", err)
	}

	storedUsers := make([]StoredUser, 0, len(registered))
	for _, u := range registered {
		storedUsers = append(storedUsers, StoredUser{ID: u.ID, Name: u.Name, Email: u.Email})
	}

	return Snapshot{
		Exercises: exercises,
		Workouts:  all,
		Users:     storedUsers,
	}, nil
}
