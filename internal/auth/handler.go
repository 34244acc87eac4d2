package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/users"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type identityGate interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Register(ctx context.Context, name, email, password string) (Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (users.User, error)
}

type Handler struct {
	gate identityGate
}

func NewHandler(gate identityGate) *Handler {
	return &Handler{
		gate: gate,
	}
}

type loginResponse struct {
	Token string     `json:"token"`
	User  users.User `json:"user"`
}

// SetupRoutes adds the /a/ routes. The given middlewares (rate limiting) only
// wrap login and register.
func (handler *Handler) SetupRoutes(mainRouter *mux.Router, credentialsMiddlewares ...mux.MiddlewareFunc) {
	authRouter := mainRouter.PathPrefix("/a").Subrouter()
	authRouter.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	authRouter.HandleFunc("/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("me")

	credentialsRouter := authRouter.NewRoute().Subrouter()
	credentialsRouter.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	credentialsRouter.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	credentialsRouter.Use(credentialsMiddlewares...)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var form LoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}

	session, err := handler.gate.Login(ctx, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			log.Tracef("failed login attempt for: %s", form.Email)
			span.SetStatus(codes.Error, "wrong-credentials")
			http.Error(w, "wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSON(w, loginResponse{Token: session.Token, User: session.User}, http.StatusOK)
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var form RegisterForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}

	session, err := handler.gate.Register(ctx, form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, users.ErrEmailAlreadyRegistered) {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		log.Errorf("register failed: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, loginResponse{Token: session.Token, User: session.User}, http.StatusCreated)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := r.Header.Get(TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.gate.Logout(ctx, authToken); err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	user, err := handler.gate.CurrentUser(ctx, r.Header.Get(TokenHeader))
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			log.Errorf("current user: %s", err)
		}
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func writeFieldErrors(w http.ResponseWriter, fieldErrs FieldErrors) {
	pkg.WriteJSON(w, map[string]FieldErrors{"errors": fieldErrs}, http.StatusBadRequest)
}
