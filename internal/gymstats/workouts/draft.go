package workouts

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/2beens/gymtracker/internal/gymstats/catalog"
)

const (
	DefaultSets     = 3
	DefaultReps     = 10
	DefaultWeight   = 0
	DefaultRestTime = 60
)

// editable line fields
const (
	FieldExerciseID   = "exerciseId"
	FieldExerciseName = "exerciseName"
	FieldSets         = "sets"
	FieldReps         = "reps"
	FieldWeight       = "weight"
	FieldRestTime     = "restTime"
)

// Draft is a workout being composed. An empty WorkoutID means a new workout,
// otherwise the draft edits the workout with that id.
type Draft struct {
	ID        string `json:"id"`
	WorkoutID string `json:"workoutId,omitempty"`
	Name      string `json:"name"`
	Date      Date   `json:"date"`
	Notes     string `json:"notes"`
	Exercises []Line `json:"exercises"`
}

func NewDraft(id string, date Date) *Draft {
	return &Draft{
		ID:        id,
		Date:      date,
		Exercises: []Line{},
	}
}

// DraftOf starts editing an existing workout.
func DraftOf(id string, w Workout) *Draft {
	return &Draft{
		ID:        id,
		WorkoutID: w.ID,
		Name:      w.Name,
		Date:      w.Date,
		Notes:     w.Notes,
		Exercises: slices.Clone(w.Exercises),
	}
}

func (d *Draft) IsEdit() bool {
	return d.WorkoutID != ""
}

// AddLine appends a line for the first exercise of the catalog, with default values.
func (d *Draft) AddLine(exercises []catalog.Exercise) error {
	if len(exercises) == 0 {
		return catalog.ErrCatalogEmpty
	}
	first := exercises[0]
	d.Exercises = append(d.Exercises, Line{
		ExerciseID:   first.ID,
		ExerciseName: first.Name,
		Sets:         DefaultSets,
		Reps:         DefaultReps,
		Weight:       DefaultWeight,
		RestTime:     DefaultRestTime,
	})
	return nil
}

// UpdateLine sets one field of the line at index. On error the line is unchanged.
func (d *Draft) UpdateLine(index int, field string, value any, exercises []catalog.Exercise) error {
	if index < 0 || index >= len(d.Exercises) {
		return fmt.Errorf("%w: %d (lines: %d)", ErrLineOutOfRange, index, len(d.Exercises))
	}

	line := d.Exercises[index]
	switch field {
	case FieldExerciseID:
		id, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s must be a string", ErrInvalidLineValue, field)
		}
		i := slices.IndexFunc(exercises, func(ex catalog.Exercise) bool {
			return ex.ID == id
		})
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrUnknownExercise, id)
		}
		line.ExerciseID = id
		line.ExerciseName = exercises[i].Name
	case FieldExerciseName:
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s must be a string", ErrInvalidLineValue, field)
		}
		line.ExerciseName = name
	case FieldSets, FieldReps:
		n, err := toInt(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidLineValue, field, err)
		}
		if n < 1 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidLineValue, field)
		}
		if field == FieldSets {
			line.Sets = n
		} else {
			line.Reps = n
		}
	case FieldRestTime:
		n, err := toInt(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidLineValue, field, err)
		}
		if n < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidLineValue, field)
		}
		line.RestTime = n
	case FieldWeight:
		w, err := toFloat(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidLineValue, field, err)
		}
		if w < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidLineValue, field)
		}
		line.Weight = w
	default:
		return fmt.Errorf("%w: unknown field [%s]", ErrInvalidLineValue, field)
	}

	d.Exercises[index] = line
	return nil
}

func (d *Draft) RemoveLine(index int) error {
	if index < 0 || index >= len(d.Exercises) {
		return fmt.Errorf("%w: %d (lines: %d)", ErrLineOutOfRange, index, len(d.Exercises))
	}
	d.Exercises = slices.Delete(d.Exercises, index, index+1)
	return nil
}

// Commit turns the draft into a workout. New drafts get an id from newID, edits
// keep the id of the edited workout. The draft is not modified.
func (d *Draft) Commit(newID func() string) (Workout, error) {
	w := Workout{
		ID:        d.WorkoutID,
		Name:      strings.TrimSpace(d.Name),
		Date:      d.Date,
		Exercises: slices.Clone(d.Exercises),
		Notes:     d.Notes,
	}
	if err := w.Validate(); err != nil {
		return Workout{}, err
	}
	if w.ID == "" {
		w.ID = newID()
	}
	return w, nil
}

// toInt accepts whole numbers that fit the INTEGER columns of a line.
func toInt(value any) (int, error) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("not an integer: %v", v)
		}
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, fmt.Errorf("out of range: %v", v)
		}
		n = int64(v)
	case json.Number:
		var err error
		if n, err = v.Int64(); err != nil {
			return 0, err
		}
	case string:
		var err error
		if n, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}

	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("out of range: %d", n)
	}
	return int(n), nil
}

func toFloat(value any) (float64, error) {
	var f float64
	switch v := value.(type) {
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, err
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, err
		}
		f = n
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %v", f)
	}
	return f, nil
}
