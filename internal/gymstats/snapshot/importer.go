package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymtracker/internal/gymstats/catalog"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/users"
	"github.com/2beens/gymtracker/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=importer_mocks_test.go -package=snapshot_test

type exerciseUpserter interface {
	Upsert(ctx context.Context, ex catalog.Exercise) error
}

type workoutSaver interface {
	Save(ctx context.Context, w workouts.Workout) error
}

type userAdder interface {
	Add(ctx context.Context, c users.Credentials) error
}

// category values used by the web client
var categoryAliases = map[string]string{
	"peito":  "chest",
	"costas": "back",
	"pernas": "legs",
	"ombros": "shoulders",
	"bracos": "arms",
	"braços": "arms",
}

type ImportResult struct {
	Exercises       int `json:"exercises"`
	Workouts        int `json:"workouts"`
	Users           int `json:"users"`
	SkippedWorkouts int `json:"skippedWorkouts"`
	SkippedUsers    int `json:"skippedUsers"`
}

type Importer struct {
	exercises    exerciseUpserter
	workouts     workoutSaver
	users        userAdder
	passwordCost int

	NewID func() string
}

func NewImporter(exercises exerciseUpserter, workouts workoutSaver, users userAdder, passwordCost int) *Importer {
	if passwordCost == 0 {
		passwordCost = pkg.DefaultPasswordCost
	}
	return &Importer{
		exercises:    exercises,
		workouts:     workouts,
		users:        users,
		passwordCost: passwordCost,
		NewID:        uuid.NewString,
	}
}

// Import upserts exercises and workouts by id and adds users. Invalid workouts
// and users whose email is taken are skipped and counted.
func (im *Importer) Import(ctx context.Context, s Snapshot) (ImportResult, error) {
	var result ImportResult

	for _, ex := range s.Exercises {
		category := strings.ToLower(strings.TrimSpace(string(ex.Category)))
		if alias, ok := categoryAliases[category]; ok {
			category = alias
		}
		normalized, err := catalog.Fields{
			Name:        ex.Name,
			Category:    category,
			MuscleGroup: ex.MuscleGroup,
			Description: ex.Description,
		}.Apply(catalog.Exercise{ID: ex.ID})
		if err != nil {
			return result, fmt.Errorf("import exercise [%s]: %w", ex.ID, err)
		}
		if normalized.ID == "" {
			normalized.ID = im.NewID()
		}
		if err := im.exercises.Upsert(ctx, normalized); err != nil {
			return result, fmt.Errorf("import exercise [%s]: %w", ex.ID, err)
		}
		result.Exercises++
	}

	for _, w := range s.Workouts {
		if err := validWorkout(w); err != nil {
			log.Warnf("import: skip workout [%s]: %s", w.ID, err)
			result.SkippedWorkouts++
			continue
		}
		if w.ID == "" {
			w.ID = im.NewID()
		}
		if err := im.workouts.Save(ctx, w); err != nil {
			return result, fmt.Errorf("import workout [%s]: %w", w.ID, err)
		}
		result.Workouts++
	}

	for _, u := range s.Users {
		if u.Password == "" {
			log.Warnf("import: skip user [%s] without password", u.Email)
			result.SkippedUsers++
			continue
		}
		hash, err := pkg.HashPasswordCost(u.Password, im.passwordCost)
		if err != nil {
			return result, fmt.Errorf("import user [%s], hash password: %w", u.Email, err)
		}
		id := u.ID
		if id == "" {
			id = im.NewID()
		}
		err = im.users.Add(ctx, users.Credentials{
			User: users.User{
				ID:    id,
				Name:  u.Name,
				Email: users.NormalizeEmail(u.Email),
			},
			PasswordHash: hash,
		})
		if errors.Is(err, users.ErrEmailAlreadyRegistered) {
			result.SkippedUsers++
			continue
		}
		if err != nil {
			return result, fmt.Errorf("import user [%s]: %w", u.Email, err)
		}
		result.Users++
	}

	return result, nil
}

func validWorkout(w workouts.Workout) error {
	if err := w.Validate(); err != nil {
		return err
	}
	for i, line := range w.Exercises {
		if line.Sets < 1 || line.Reps < 1 || line.Weight < 0 || line.RestTime < 0 {
			return fmt.Errorf("%w: line %d has out of range values", workouts.ErrInvalidLineValue, i)
		}
	}
	return nil
}
