package stats

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsReporter interface {
	Report(ctx context.Context, windowDays int, exerciseFilter string) (Report, error)
}

type Handler struct {
	reporter statsReporter
}

func NewHandler(reporter statsReporter) *Handler {
	return &Handler{
		reporter: reporter,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("stats")
}

// HandleStats serves /stats?window=30&exercise=all
func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats")
	defer span.End()

	windowDays, err := ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		exercise = AllExercises
	}

	report, err := handler.reporter.Report(ctx, windowDays, exercise)
	if err != nil {
		if errors.Is(err, ErrInvalidWindow) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("stats report: %s", err)
		http.Error(w, "stats report failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}
