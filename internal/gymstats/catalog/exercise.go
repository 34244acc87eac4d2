package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidExercise  = errors.New("invalid exercise")
	ErrCatalogEmpty     = errors.New("exercise catalog is empty")
)

type Category string

var Categories = []Category{
	"chest",
	"back",
	"legs",
	"shoulders",
	"arms",
	"core",
	"cardio",
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Categories, c) {
		return "", fmt.Errorf("%w: unknown category [%s]", ErrInvalidExercise, s)
	}
	return c, nil
}

type Exercise struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	MuscleGroup string   `json:"muscleGroup"`
	Description string   `json:"description"`
}

// Fields are the user editable parts of an exercise.
type Fields struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	MuscleGroup string `json:"muscleGroup"`
	Description string `json:"description"`
}

// Apply validates the fields and returns ex with them set. ID is left untouched.
func (f Fields) Apply(ex Exercise) (Exercise, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return Exercise{}, fmt.Errorf("%w: name is required", ErrInvalidExercise)
	}
	category, err := ParseCategory(f.Category)
	if err != nil {
		return Exercise{}, err
	}

	ex.Name = name
	ex.Category = category
	ex.MuscleGroup = strings.TrimSpace(f.MuscleGroup)
	ex.Description = strings.TrimSpace(f.Description)
	return ex, nil
}
