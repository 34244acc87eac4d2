package catalog

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=catalog_test

type exercisesRepo interface {
	List(ctx context.Context) ([]Exercise, error)
	Get(ctx context.Context, id string) (Exercise, error)
	Add(ctx context.Context, ex Exercise) error
	Update(ctx context.Context, ex Exercise) error
	Delete(ctx context.Context, id string) error
}

// Service is the exercise catalog: an ordered list of exercise definitions.
// Deleting an exercise never touches the workouts referencing it.
type Service struct {
	repo    exercisesRepo
	cache   *ListCache
	metrics *metrics.Manager

	// NewID is replaceable in tests
	NewID func() string
}

func NewService(repo exercisesRepo, cache *ListCache, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		metrics: metricsManager,
		NewID:   uuid.NewString,
	}
}

func (s *Service) Create(ctx context.Context, fields Fields) (Exercise, error) {
	ex, err := fields.Apply(Exercise{ID: s.NewID()})
	if err != nil {
		return Exercise{}, err
	}

	if err := s.repo.Add(ctx, ex); err != nil {
		return Exercise{}, fmt.Errorf("create exercise: %w", err)
	}
	s.invalidate()

	if s.metrics != nil {
		s.metrics.CounterExercisesCreated.Inc()
	}
	log.Debugf("catalog: exercise created [%s] %s", ex.ID, ex.Name)

	return ex, nil
}

// Update replaces the mutable fields of the exercise with the given id.
// A missing id yields ErrExerciseNotFound.
func (s *Service) Update(ctx context.Context, id string, fields Fields) (Exercise, error) {
	ex, err := fields.Apply(Exercise{ID: id})
	if err != nil {
		return Exercise{}, err
	}

	if err := s.repo.Update(ctx, ex); err != nil {
		return Exercise{}, fmt.Errorf("update exercise [%s]: %w", id, err)
	}
	s.invalidate()

	return ex, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete exercise [%s]: %w", id, err)
	}
	s.invalidate()
	return nil
}

// List returns all exercises in insertion order.
func (s *Service) List(ctx context.Context) ([]Exercise, error) {
	var generation uint64
	if s.cache != nil {
		generation = s.cache.Generation()
		if exercises, ok := s.cache.Get(); ok {
			s.countCache("hit")
			return exercises, nil
		}
		s.countCache("miss")
	}

	exercises, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	if s.cache != nil {
		if !s.cache.Set(exercises, generation) {
			log.Tracef("catalog: list changed while loading, not cached")
		}
	}
	return exercises, nil
}

func (s *Service) Get(ctx context.Context, id string) (Exercise, error) {
	return s.repo.Get(ctx, id)
}

// First returns the first exercise in list order.
func (s *Service) First(ctx context.Context) (Exercise, error) {
	exercises, err := s.List(ctx)
	if err != nil {
		return Exercise{}, err
	}
	if len(exercises) == 0 {
		return Exercise{}, ErrCatalogEmpty
	}
	return exercises[0], nil
}

func (s *Service) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}

func (s *Service) countCache(result string) {
	if s.metrics != nil {
		s.metrics.CounterCatalogCache.WithLabelValues(result).Inc()
	}
}
