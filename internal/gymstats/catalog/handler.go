package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test

type exerciseCatalog interface {
	Create(ctx context.Context, fields Fields) (Exercise, error)
	Update(ctx context.Context, id string, fields Fields) (Exercise, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Exercise, error)
	Get(ctx context.Context, id string) (Exercise, error)
}

type Handler struct {
	catalog exerciseCatalog
}

func NewHandler(catalog exerciseCatalog) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/categories", handler.HandleCategories).Methods("GET", "OPTIONS").Name("exercise-categories")
	r.HandleFunc("/exercises/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	exercises, err := handler.catalog.List(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "list exercises failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleCategories(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, Categories, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	ex, err := handler.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %s: %s", id, err)
		http.Error(w, "get exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ex, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.new")
	defer span.End()

	var fields Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Errorf("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	ex, err := handler.catalog.Create(ctx, fields)
	if err != nil {
		if errors.Is(err, ErrInvalidExercise) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add exercise: %s", err)
		http.Error(w, "add exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ex, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.update")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	var fields Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Errorf("update exercise, unmarshal json params: %s", err)
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}

	ex, err := handler.catalog.Update(ctx, id, fields)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidExercise):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		default:
			log.Errorf("update exercise %s: %s", id, err)
			http.Error(w, "update exercise failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, ex, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	if err := handler.catalog.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise %s: %s", id, err)
		http.Error(w, "delete exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}
