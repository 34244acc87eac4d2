package workouts

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrDraftNotFound    = errors.New("draft not found")
	ErrDraftInvalid     = errors.New("invalid draft")
	ErrLineOutOfRange   = errors.New("line index out of range")
	ErrUnknownExercise  = errors.New("unknown exercise")
	ErrInvalidLineValue = errors.New("invalid line value")
)

const DateLayout = "2006-01-02"

// Date is a calendar date, always kept at midnight UTC.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func Today() Date {
	return DateOf(time.Now())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date [%s]: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) AddDays(days int) Date {
	return Date{d.Time.AddDate(0, 0, days)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	// tolerate full timestamps, only the date part is kept
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Line is one exercise entry of a workout. ExerciseID is a soft reference into
// the catalog and ExerciseName is a snapshot taken when the line was edited.
type Line struct {
	ExerciseID   string  `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	RestTime     int     `json:"restTime"`
}

func (l Line) Volume() float64 {
	return float64(l.Sets*l.Reps) * l.Weight
}

type Workout struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      Date   `json:"date"`
	Exercises []Line `json:"exercises"`
	Notes     string `json:"notes"`
}

// Validate checks what is needed for a workout to be persisted.
func (w Workout) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrDraftInvalid)
	}
	if w.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrDraftInvalid)
	}
	if len(w.Exercises) == 0 {
		return fmt.Errorf("%w: at least one exercise is required", ErrDraftInvalid)
	}
	return nil
}
