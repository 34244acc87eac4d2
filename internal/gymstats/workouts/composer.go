package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/catalog"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=composer_mocks_test.go -package=workouts_test

type draftStore interface {
	Load(ctx context.Context, id string) (*Draft, error)
	Store(ctx context.Context, d *Draft) error
	Delete(ctx context.Context, id string) error
}

type workoutsRepo interface {
	Get(ctx context.Context, id string) (Workout, error)
	Create(ctx context.Context, w Workout) error
	Replace(ctx context.Context, w Workout) error
}

type exerciseLister interface {
	List(ctx context.Context) ([]catalog.Exercise, error)
}

// Header holds the draft fields that are not lines. Nil fields are left as they are.
type Header struct {
	Name  *string `json:"name,omitempty"`
	Date  *Date   `json:"date,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// Composer edits drafts stored in redis and commits them to the workout log.
type Composer struct {
	drafts  draftStore
	repo    workoutsRepo
	catalog exerciseLister
	metrics *metrics.Manager

	NewID func() string
	Now   func() time.Time
}

func NewComposer(
	drafts draftStore,
	repo workoutsRepo,
	catalog exerciseLister,
	metricsManager *metrics.Manager,
) *Composer {
	return &Composer{
		drafts:  drafts,
		repo:    repo,
		catalog: catalog,
		metrics: metricsManager,
		NewID:   uuid.NewString,
		Now:     time.Now,
	}
}

// NewDraft starts a draft dated today, or a draft editing workoutID if given.
func (c *Composer) NewDraft(ctx context.Context, workoutID string) (*Draft, error) {
	var d *Draft
	if workoutID = strings.TrimSpace(workoutID); workoutID != "" {
		w, err := c.repo.Get(ctx, workoutID)
		if err != nil {
			return nil, fmt.Errorf("new draft for workout [%s]: %w", workoutID, err)
		}
		d = DraftOf(c.NewID(), w)
	} else {
		d = NewDraft(c.NewID(), DateOf(c.Now()))
	}

	if err := c.drafts.Store(ctx, d); err != nil {
		return nil, err
	}

	log.Debugf("composer: draft [%s] created, edit: %t", d.ID, d.IsEdit())
	return d, nil
}

func (c *Composer) GetDraft(ctx context.Context, id string) (*Draft, error) {
	return c.drafts.Load(ctx, id)
}

func (c *Composer) UpdateHeader(ctx context.Context, id string, header Header) (*Draft, error) {
	return c.edit(ctx, id, func(d *Draft) error {
		if header.Name != nil {
			d.Name = *header.Name
		}
		if header.Date != nil {
			d.Date = *header.Date
		}
		if header.Notes != nil {
			d.Notes = *header.Notes
		}
		return nil
	})
}

func (c *Composer) AddLine(ctx context.Context, id string) (*Draft, error) {
	exercises, err := c.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("add line, list exercises: %w", err)
	}
	return c.edit(ctx, id, func(d *Draft) error {
		return d.AddLine(exercises)
	})
}

func (c *Composer) UpdateLine(ctx context.Context, id string, index int, field string, value any) (*Draft, error) {
	var exercises []catalog.Exercise
	if field == FieldExerciseID {
		var err error
		if exercises, err = c.catalog.List(ctx); err != nil {
			return nil, fmt.Errorf("update line, list exercises: %w", err)
		}
	}
	return c.edit(ctx, id, func(d *Draft) error {
		return d.UpdateLine(index, field, value, exercises)
	})
}

func (c *Composer) RemoveLine(ctx context.Context, id string, index int) (*Draft, error) {
	return c.edit(ctx, id, func(d *Draft) error {
		return d.RemoveLine(index)
	})
}

// Commit saves the draft as a workout and discards it. An edit draft only
// overwrites its workout, if that was deleted meanwhile the commit fails with
// ErrWorkoutNotFound. On any error the draft is kept as is.
func (c *Composer) Commit(ctx context.Context, id string) (Workout, error) {
	d, err := c.drafts.Load(ctx, id)
	if err != nil {
		return Workout{}, err
	}

	w, err := d.Commit(c.NewID)
	if err != nil {
		return Workout{}, err
	}

	save := c.repo.Create
	if d.IsEdit() {
		save = c.repo.Replace
	}
	if err := save(ctx, w); err != nil {
		return Workout{}, fmt.Errorf("commit draft [%s]: %w", id, err)
	}

	if err := c.drafts.Delete(ctx, id); err != nil && !errors.Is(err, ErrDraftNotFound) {
		// the workout is saved, a stale draft expires on its own
		log.Errorf("composer: delete committed draft [%s]: %s", id, err)
	}

	mode := "create"
	if d.IsEdit() {
		mode = "edit"
	}
	if c.metrics != nil {
		c.metrics.CounterWorkoutsCommitted.WithLabelValues(mode).Inc()
	}
	log.Debugf("composer: draft [%s] committed as workout [%s] (%s)", id, w.ID, mode)

	return w, nil
}

func (c *Composer) Discard(ctx context.Context, id string) error {
	return c.drafts.Delete(ctx, id)
}

func (c *Composer) edit(ctx context.Context, id string, change func(d *Draft) error) (*Draft, error) {
	d, err := c.drafts.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := change(d); err != nil {
		return nil, err
	}
	if err := c.drafts.Store(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
