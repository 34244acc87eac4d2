package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/gymstats/workouts"
)

const (
	DefaultWindowDays = 30
	// MaxWindowDays keeps the window start inside the postgres date range.
	MaxWindowDays = 36500
	AllExercises  = "all"
)

// WindowPresets are the windows offered by clients, any positive window is accepted.
var WindowPresets = []int{7, 30, 90, 365}

var ErrInvalidWindow = errors.New("invalid stats window")

type Params struct {
	WindowDays     int
	ExerciseFilter string
	Today          time.Time
}

type ExerciseStats struct {
	ExerciseID    string        `json:"exerciseId"`
	ExerciseName  string        `json:"exerciseName"`
	TotalWorkouts int           `json:"totalWorkouts"`
	MaxWeight     float64       `json:"maxWeight"`
	AvgWeight     float64       `json:"avgWeight"`
	TotalVolume   float64       `json:"totalVolume"`
	LastWorkout   workouts.Date `json:"lastWorkout"`
	Progression   float64       `json:"progression"`
}

type OverallStats struct {
	TotalWorkouts        int     `json:"totalWorkouts"`
	TotalExercises       int     `json:"totalExercises"`
	TotalVolume          float64 `json:"totalVolume"`
	AvgWorkoutsPerWeek   float64 `json:"avgWorkoutsPerWeek"`
	ProgressingExercises int     `json:"progressingExercises"`
}

type Report struct {
	WindowDays     int             `json:"windowDays"`
	From           workouts.Date   `json:"from"`
	ExerciseFilter string          `json:"exerciseFilter"`
	Overall        OverallStats    `json:"overall"`
	Exercises      []ExerciseStats `json:"exercises"`
}

// ParseWindow reads a window in days, empty means the default window.
func ParseWindow(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultWindowDays, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidWindow, s)
	}
	if err := ValidateWindow(days); err != nil {
		return 0, err
	}
	return days, nil
}

// ValidateWindow accepts windows from 1 to MaxWindowDays.
func ValidateWindow(days int) error {
	if days <= 0 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidWindow, days)
	}
	if days > MaxWindowDays {
		return fmt.Errorf("%w: at most %d days, got %d", ErrInvalidWindow, MaxWindowDays, days)
	}
	return nil
}

// WindowStart is the first date included in a window ending today.
func WindowStart(today time.Time, windowDays int) workouts.Date {
	return workouts.DateOf(today).AddDays(-windowDays)
}

// Aggregate folds the workouts dated inside the window into per exercise and overall stats.
// The input is not modified and the result only depends on the arguments.
func Aggregate(all []workouts.Workout, params Params) Report {
	if params.WindowDays <= 0 {
		params.WindowDays = DefaultWindowDays
	}
	if params.ExerciseFilter == "" {
		params.ExerciseFilter = AllExercises
	}

	from := WindowStart(params.Today, params.WindowDays)
	filtered := make([]workouts.Workout, 0, len(all))
	for _, w := range all {
		if !w.Date.Before(from.Time) {
			filtered = append(filtered, w)
		}
	}

	perExercise := foldExercises(filtered)

	overall := OverallStats{
		TotalWorkouts:      len(filtered),
		TotalExercises:     len(perExercise),
		AvgWorkoutsPerWeek: math.Round(float64(len(filtered))/(float64(params.WindowDays)/7)*10) / 10,
	}
	for _, es := range perExercise {
		overall.TotalVolume += es.TotalVolume
		if es.Progression > 0 {
			overall.ProgressingExercises++
		}
	}

	if params.ExerciseFilter != AllExercises {
		perExercise = slices.DeleteFunc(perExercise, func(es ExerciseStats) bool {
			return es.ExerciseID != params.ExerciseFilter
		})
	}

	return Report{
		WindowDays:     params.WindowDays,
		From:           from,
		ExerciseFilter: params.ExerciseFilter,
		Overall:        overall,
		Exercises:      perExercise,
	}
}

func foldExercises(filtered []workouts.Workout) []ExerciseStats {
	perExercise := make([]ExerciseStats, 0)
	index := make(map[string]int)
	weights := make(map[string][]float64)

	for _, w := range filtered {
		for _, line := range w.Exercises {
			i, ok := index[line.ExerciseID]
			if !ok {
				i = len(perExercise)
				index[line.ExerciseID] = i
				perExercise = append(perExercise, ExerciseStats{
					ExerciseID:   line.ExerciseID,
					ExerciseName: line.ExerciseName,
					MaxWeight:    line.Weight,
					LastWorkout:  w.Date,
				})
			}

			es := &perExercise[i]
			es.TotalWorkouts++
			es.MaxWeight = max(es.MaxWeight, line.Weight)
			es.TotalVolume += line.Volume()
			if w.Date.After(es.LastWorkout.Time) {
				es.LastWorkout = w.Date
			}
			weights[line.ExerciseID] = append(weights[line.ExerciseID], line.Weight)
		}
	}

	chronological := slices.Clone(filtered)
	slices.SortStableFunc(chronological, func(a, b workouts.Workout) int {
		return a.Date.Compare(b.Date.Time)
	})

	for i := range perExercise {
		es := &perExercise[i]
		es.AvgWeight = mean(weights[es.ExerciseID])
		es.Progression = progression(chronological, es.ExerciseID)
	}

	slices.SortStableFunc(perExercise, func(a, b ExerciseStats) int {
		switch {
		case a.TotalVolume > b.TotalVolume:
			return -1
		case a.TotalVolume < b.TotalVolume:
			return 1
		default:
			return 0
		}
	})

	return perExercise
}

// progression is the weight on the exercise's first line in the last workout
// containing it, minus the same in the first one.
func progression(chronological []workouts.Workout, exerciseID string) float64 {
	var (
		first, last float64
		seen        int
	)
	for _, w := range chronological {
		i := slices.IndexFunc(w.Exercises, func(l workouts.Line) bool {
			return l.ExerciseID == exerciseID
		})
		if i < 0 {
			continue
		}
		if seen == 0 {
			first = w.Exercises[i].Weight
		}
		last = w.Exercises[i].Weight
		seen++
	}
	if seen < 2 {
		return 0
	}
	return last - first
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
