//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/gymtracker/internal/gymstats/catalog"
	"github.com/2beens/gymtracker/internal/gymstats/stats"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) newExerciseRequest(ctx context.Context, token string, category string) catalog.Exercise {
	var ex catalog.Exercise
	s.doJSON(ctx, http.MethodPost, "/exercises", token, catalog.Fields{
		Name:        gofakeit.Adjective() + " Press " + gofakeit.LetterN(6),
		Category:    category,
		MuscleGroup: "Peitoral",
		Description: gofakeit.Sentence(6),
	}, http.StatusCreated, &ex)
	require.NotEmpty(s.T(), ex.ID)
	return ex
}

// composeWorkout drives a draft from creation to commit: one line for exerciseID
// with the given weight, dated date.
func (s *IntegrationTestSuite) composeWorkout(
	ctx context.Context,
	token, exerciseID string,
	date workouts.Date,
	weight float64,
) workouts.Workout {
	t := s.T()

	var draft workouts.Draft
	s.doJSON(ctx, http.MethodPost, "/drafts", token, nil, http.StatusCreated, &draft)
	require.NotEmpty(t, draft.ID)
	assert.Equal(t, workouts.Today(), draft.Date)
	assert.Empty(t, draft.Exercises)

	name := "Treino " + gofakeit.LetterN(4)
	s.doJSON(ctx, http.MethodPut, "/drafts/"+draft.ID, token, workouts.Header{
		Name: &name,
		Date: &date,
	}, http.StatusOK, &draft)
	assert.Equal(t, name, draft.Name)
	assert.Equal(t, date, draft.Date)

	s.doJSON(ctx, http.MethodPost, "/drafts/"+draft.ID+"/lines", token, nil, http.StatusOK, &draft)
	require.Len(t, draft.Exercises, 1)
	assert.Equal(t, workouts.DefaultSets, draft.Exercises[0].Sets)
	assert.Equal(t, workouts.DefaultReps, draft.Exercises[0].Reps)

	linePath := "/drafts/" + draft.ID + "/lines/0"
	for field, value := range map[string]any{
		workouts.FieldExerciseID: exerciseID,
		workouts.FieldWeight:     weight,
		workouts.FieldReps:       8,
	} {
		s.doJSON(ctx, http.MethodPatch, linePath, token, map[string]any{
			"field": field,
			"value": value,
		}, http.StatusOK, &draft)
	}
	require.Len(t, draft.Exercises, 1)
	assert.Equal(t, exerciseID, draft.Exercises[0].ExerciseID)
	assert.Equal(t, weight, draft.Exercises[0].Weight)
	assert.Equal(t, 8, draft.Exercises[0].Reps)

	var workout workouts.Workout
	s.doJSON(ctx, http.MethodPost, "/drafts/"+draft.ID+"/commit", token, nil, http.StatusCreated, &workout)
	require.NotEmpty(t, workout.ID)

	// committed drafts are gone
	status, _ := s.doRequest(ctx, http.MethodGet, "/drafts/"+draft.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	return workout
}

func (s *IntegrationTestSuite) TestCatalog() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registered, _ := s.registerUser(ctx)
	token := registered.Token

	ex := s.newExerciseRequest(ctx, token, "Chest")
	assert.Equal(t, catalog.Category("chest"), ex.Category)

	var listed []catalog.Exercise
	s.doJSON(ctx, http.MethodGet, "/exercises", token, nil, http.StatusOK, &listed)
	assert.Contains(t, listed, ex)

	var updated catalog.Exercise
	s.doJSON(ctx, http.MethodPut, "/exercises/"+ex.ID, token, catalog.Fields{
		Name:     "Supino Reto",
		Category: "chest",
	}, http.StatusOK, &updated)
	assert.Equal(t, ex.ID, updated.ID)
	assert.Equal(t, "Supino Reto", updated.Name)

	var got catalog.Exercise
	s.doJSON(ctx, http.MethodGet, "/exercises/"+ex.ID, token, nil, http.StatusOK, &got)
	assert.Equal(t, updated, got)

	status, _ := s.doRequest(ctx, http.MethodPost, "/exercises", token, catalog.Fields{
		Name:     "Bad",
		Category: "neck",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.doRequest(ctx, http.MethodPut, "/exercises/missing-id", token, catalog.Fields{
		Name:     "Nope",
		Category: "legs",
	})
	assert.Equal(t, http.StatusNotFound, status)

	status, body := s.doRequest(ctx, http.MethodDelete, "/exercises/"+ex.ID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "deleted", string(body))

	status, _ = s.doRequest(ctx, http.MethodGet, "/exercises/"+ex.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	s.doJSON(ctx, http.MethodGet, "/exercises", token, nil, http.StatusOK, &listed)
	assert.NotContains(t, listed, updated)
}

func (s *IntegrationTestSuite) TestWorkouts_ComposeAndStats() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registered, _ := s.registerUser(ctx)
	token := registered.Token

	ex := s.newExerciseRequest(ctx, token, "legs")

	today := workouts.Today()
	older := s.composeWorkout(ctx, token, ex.ID, today.AddDays(-10), 60)
	newer := s.composeWorkout(ctx, token, ex.ID, today, 80)
	// outside of a 30 day window
	s.composeWorkout(ctx, token, ex.ID, today.AddDays(-45), 200)

	var listed []workouts.Workout
	s.doJSON(ctx, http.MethodGet, "/workouts", token, nil, http.StatusOK, &listed)
	assert.Contains(t, listed, older)
	assert.Contains(t, listed, newer)

	var got workouts.Workout
	s.doJSON(ctx, http.MethodGet, "/workouts/"+older.ID, token, nil, http.StatusOK, &got)
	assert.Equal(t, older, got)
	require.Len(t, got.Exercises, 1)
	assert.Equal(t, ex.Name, got.Exercises[0].ExerciseName)

	var report stats.Report
	s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/stats?window=30&exercise=%s", ex.ID), token, nil, http.StatusOK, &report)
	assert.Equal(t, 30, report.WindowDays)
	assert.Equal(t, ex.ID, report.ExerciseFilter)
	require.Len(t, report.Exercises, 1)

	exStats := report.Exercises[0]
	assert.Equal(t, ex.ID, exStats.ExerciseID)
	assert.Equal(t, 2, exStats.TotalWorkouts)
	assert.Equal(t, 80.0, exStats.MaxWeight)
	assert.Equal(t, 70.0, exStats.AvgWeight)
	assert.Equal(t, 20.0, exStats.Progression)
	assert.Equal(t, today, exStats.LastWorkout)
	// 3 sets x 8 reps at 60 and at 80
	assert.Equal(t, 3*8*60.0+3*8*80.0, exStats.TotalVolume)

	status, _ := s.doRequest(ctx, http.MethodGet, "/stats?window=-1", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	// editing a workout goes through a draft seeded from it
	var draft workouts.Draft
	s.doJSON(ctx, http.MethodPost, "/drafts", token, map[string]string{"workoutId": newer.ID}, http.StatusCreated, &draft)
	assert.Equal(t, newer.ID, draft.WorkoutID)
	s.doJSON(ctx, http.MethodDelete, "/drafts/"+draft.ID+"/lines/0", token, nil, http.StatusOK, &draft)
	assert.Empty(t, draft.Exercises)

	// an empty draft can not be committed, and is kept
	status, _ = s.doRequest(ctx, http.MethodPost, "/drafts/"+draft.ID+"/commit", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = s.doRequest(ctx, http.MethodGet, "/drafts/"+draft.ID, token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.doRequest(ctx, http.MethodDelete, "/drafts/"+draft.ID, token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.doRequest(ctx, http.MethodDelete, "/workouts/"+older.ID, token, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.doRequest(ctx, http.MethodGet, "/workouts/"+older.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestWorkouts_UnknownDraft() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registered, _ := s.registerUser(ctx)

	status, _ := s.doRequest(ctx, http.MethodGet, "/drafts/not-a-draft", registered.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.doRequest(ctx, http.MethodPatch, "/drafts/not-a-draft/lines/0", registered.Token, map[string]any{
		"field": workouts.FieldSets,
		"value": 4,
	})
	assert.Equal(t, http.StatusNotFound, status)
}
