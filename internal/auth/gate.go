package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/users"
	"github.com/2beens/gymtracker/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWrongCredentials = errors.New("wrong credentials")

//go:generate mockgen -source=$GOFILE -destination=gate_mocks_test.go -package=auth_test

type credentialsRepo interface {
	GetByEmail(ctx context.Context, email string) (users.Credentials, error)
	Add(ctx context.Context, c users.Credentials) error
}

type sessionService interface {
	Login(ctx context.Context, user users.User) (Session, error)
	Logout(ctx context.Context, token string) (bool, error)
	Session(ctx context.Context, token string) (Session, error)
}

type GateParams struct {
	DemoLoginEnabled bool
	// Delay is waited before login and register answer
	Delay        time.Duration
	PasswordCost int
}

// Gate checks credentials, registers users and keeps track of who is logged in.
type Gate struct {
	credentials credentialsRepo
	sessions    sessionService
	metrics     *metrics.Manager
	params      GateParams

	NewID func() string
}

func NewGate(
	credentials credentialsRepo,
	sessions sessionService,
	metricsManager *metrics.Manager,
	params GateParams,
) *Gate {
	if params.PasswordCost == 0 {
		params.PasswordCost = pkg.DefaultPasswordCost
	}
	return &Gate{
		credentials: credentials,
		sessions:    sessions,
		metrics:     metricsManager,
		params:      params,
		NewID:       uuid.NewString,
	}
}

// Login checks the credentials and opens a session. Unknown users may still get
// in with a throwaway identity when demo login is enabled.
func (g *Gate) Login(ctx context.Context, email, password string) (_ Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.gate.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := g.wait(ctx); err != nil {
		return Session{}, err
	}

	email = users.NormalizeEmail(email)
	creds, err := g.credentials.GetByEmail(ctx, email)
	switch {
	case err == nil && pkg.CheckPasswordHash(password, creds.PasswordHash):
		span.SetAttributes(attribute.String("login.outcome", "credentials"))
		g.countLogin("credentials")
		return g.sessions.Login(ctx, creds.User)
	case err != nil && !errors.Is(err, users.ErrUserNotFound):
		return Session{}, fmt.Errorf("login: %w", err)
	}

	if g.params.DemoLoginEnabled && ValidEmail(email) && len(password) >= MinPasswordLength {
		span.SetAttributes(attribute.String("login.outcome", "demo"))
		g.countLogin("demo")
		log.Debugf("gate: demo login for %s", email)
		return g.sessions.Login(ctx, users.User{
			ID:    g.NewID(),
			Name:  strings.SplitN(email, "@", 2)[0],
			Email: email,
		})
	}

	span.SetAttributes(attribute.String("login.outcome", "failed"))
	g.countLogin("failed")
	return Session{}, ErrWrongCredentials
}

// Register stores a new user and logs them in. A taken email leaves the stored users as they are.
func (g *Gate) Register(ctx context.Context, name, email, password string) (_ Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.gate.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := g.wait(ctx); err != nil {
		return Session{}, err
	}

	email = users.NormalizeEmail(email)
	if _, err := g.credentials.GetByEmail(ctx, email); err == nil {
		return Session{}, users.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, users.ErrUserNotFound) {
		return Session{}, fmt.Errorf("register: %w", err)
	}

	hash, err := pkg.HashPasswordCost(password, g.params.PasswordCost)
	if err != nil {
		return Session{}, fmt.Errorf("register, hash password: %w", err)
	}

	creds := users.Credentials{
		User: users.User{
			ID:    g.NewID(),
			Name:  strings.TrimSpace(name),
			Email: email,
		},
		PasswordHash: hash,
	}
	// the unique constraint still guards concurrent registrations
	if err := g.credentials.Add(ctx, creds); err != nil {
		return Session{}, err
	}

	if g.metrics != nil {
		g.metrics.CounterRegistrations.Inc()
	}
	log.Debugf("gate: registered user %s", creds.ID)

	return g.sessions.Login(ctx, creds.User)
}

func (g *Gate) Logout(ctx context.Context, token string) error {
	loggedOut, err := g.sessions.Logout(ctx, token)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if !loggedOut {
		return ErrSessionNotFound
	}
	return nil
}

func (g *Gate) CurrentUser(ctx context.Context, token string) (users.User, error) {
	session, err := g.sessions.Session(ctx, token)
	if err != nil {
		return users.User{}, err
	}
	return session.User, nil
}

func (g *Gate) wait(ctx context.Context) error {
	if g.params.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(g.params.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *Gate) countLogin(outcome string) {
	if g.metrics != nil {
		g.metrics.CounterLogins.WithLabelValues(outcome).Inc()
	}
}
