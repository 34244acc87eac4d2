package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/2beens/gymtracker/internal/gymstats/catalog"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutLog interface {
	List(ctx context.Context) ([]Workout, error)
	Get(ctx context.Context, id string) (Workout, error)
	Delete(ctx context.Context, id string) error
}

type draftComposer interface {
	NewDraft(ctx context.Context, workoutID string) (*Draft, error)
	GetDraft(ctx context.Context, id string) (*Draft, error)
	UpdateHeader(ctx context.Context, id string, header Header) (*Draft, error)
	AddLine(ctx context.Context, id string) (*Draft, error)
	UpdateLine(ctx context.Context, id string, index int, field string, value any) (*Draft, error)
	RemoveLine(ctx context.Context, id string, index int) (*Draft, error)
	Commit(ctx context.Context, id string) (Workout, error)
	Discard(ctx context.Context, id string) error
}

type Handler struct {
	workouts workoutLog
	composer draftComposer
}

func NewHandler(workouts workoutLog, composer draftComposer) *Handler {
	return &Handler{
		workouts: workouts,
		composer: composer,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	r.HandleFunc("/drafts", handler.HandleNewDraft).Methods("POST", "OPTIONS").Name("new-draft")
	r.HandleFunc("/drafts/{id}", handler.HandleGetDraft).Methods("GET", "OPTIONS").Name("get-draft")
	r.HandleFunc("/drafts/{id}", handler.HandleUpdateDraft).Methods("PUT", "OPTIONS").Name("update-draft")
	r.HandleFunc("/drafts/{id}", handler.HandleDiscardDraft).Methods("DELETE", "OPTIONS").Name("discard-draft")
	r.HandleFunc("/drafts/{id}/lines", handler.HandleAddLine).Methods("POST", "OPTIONS").Name("add-draft-line")
	r.HandleFunc("/drafts/{id}/lines/{index}", handler.HandleUpdateLine).Methods("PATCH", "OPTIONS").Name("update-draft-line")
	r.HandleFunc("/drafts/{id}/lines/{index}", handler.HandleRemoveLine).Methods("DELETE", "OPTIONS").Name("remove-draft-line")
	r.HandleFunc("/drafts/{id}/commit", handler.HandleCommit).Methods("POST", "OPTIONS").Name("commit-draft")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	workouts, err := handler.workouts.List(ctx)
	if err != nil {
		writeError(w, "list workouts", err)
		return
	}

	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	workout, err := handler.workouts.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get workout", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	if err := handler.workouts.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		writeError(w, "delete workout", err)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleNewDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.new")
	defer span.End()

	// body is optional, {"workoutId": "..."} edits an existing workout
	var params struct {
		WorkoutID string `json:"workoutId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		log.Errorf("new draft, unmarshal json params: %s", err)
		http.Error(w, "new draft failed", http.StatusBadRequest)
		return
	}

	draft, err := handler.composer.NewDraft(ctx, params.WorkoutID)
	if err != nil {
		writeError(w, "new draft", err)
		return
	}

	pkg.WriteJSON(w, draft, http.StatusCreated)
}

func (handler *Handler) HandleGetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.get")
	defer span.End()

	draft, err := handler.composer.GetDraft(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "get draft", err)
		return
	}

	pkg.WriteJSON(w, draft, http.StatusOK)
}

func (handler *Handler) HandleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.update")
	defer span.End()

	var header Header
	if err := json.NewDecoder(r.Body).Decode(&header); err != nil {
		log.Errorf("update draft, unmarshal json params: %s", err)
		http.Error(w, "update draft failed", http.StatusBadRequest)
		return
	}

	draft, err := handler.composer.UpdateHeader(ctx, mux.Vars(r)["id"], header)
	if err != nil {
		writeError(w, "update draft", err)
		return
	}

	pkg.WriteJSON(w, draft, http.StatusOK)
}

func (handler *Handler) HandleDiscardDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.discard")
	defer span.End()

	if err := handler.composer.Discard(ctx, mux.Vars(r)["id"]); err != nil {
		writeError(w, "discard draft", err)
		return
	}

	pkg.WriteTextResponseOK(w, "discarded")
}

func (handler *Handler) HandleAddLine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.addLine")
	defer span.End()

	draft, err := handler.composer.AddLine(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "add draft line", err)
		return
	}

	pkg.WriteJSON(w, draft, http.StatusOK)
}

func (handler *Handler) HandleUpdateLine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.updateLine")
	defer span.End()

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "error, bad line index", http.StatusBadRequest)
		return
	}

	var params struct {
		Field string `json:"field"`
		Value any    `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("update draft line, unmarshal json params: %s", err)
		http.Error(w, "update draft line failed", http.StatusBadRequest)
		return
	}

	draft, err := handler.composer.UpdateLine(ctx, mux.Vars(r)["id"], index, params.Field, params.Value)
	if err != nil {
		writeError(w, "update draft line", err)
		return
	}

	pkg.WriteJSON(w, draft, http.StatusOK)
}

func (handler *Handler) HandleRemoveLine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.removeLine")
	defer span.End()

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "error, bad line index", http.StatusBadRequest)
		return
	}

	draft, err := handler.composer.RemoveLine(ctx, mux.Vars(r)["id"], index)
	if err != nil {
		writeError(w, "remove draft line", err)
		return
	}

	pkg.WriteJSON(w, draft, http.StatusOK)
}

func (handler *Handler) HandleCommit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.commit")
	defer span.End()

	workout, err := handler.composer.Commit(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "commit draft", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrWorkoutNotFound), errors.Is(err, ErrDraftNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDraftInvalid),
		errors.Is(err, ErrLineOutOfRange),
		errors.Is(err, ErrInvalidLineValue),
		errors.Is(err, ErrUnknownExercise),
		errors.Is(err, catalog.ErrCatalogEmpty):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}
