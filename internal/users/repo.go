package users

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ Credentials, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var c Credentials
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, name, email, password_hash
			FROM app_user
			WHERE email = $1
		`,
		email,
	).Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash)
	if err != nil {
		if pkg.IsNoRows(err) {
			return Credentials{}, ErrUserNotFound
		}
		return Credentials{}, fmt.Errorf("get user by email: %w", err)
	}

	span.SetAttributes(attribute.String("user.id", c.ID))
	return c, nil
}

// unique constraint postgres names for app_user.email
const emailUniqueConstraint = "app_user_email_key"

// Add stores new credentials. An email that is already taken yields ErrEmailAlreadyRegistered.
func (r *Repo) Add(ctx context.Context, c Credentials) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", c.ID))

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO app_user (id, name, email, password_hash)
			VALUES ($1, $2, $3, $4)
		`,
		c.ID, c.Name, c.Email, c.PasswordHash,
	)
	if err != nil {
		if pkg.IsUniqueViolationOn(err, emailUniqueConstraint) {
			return ErrEmailAlreadyRegistered
		}
		return fmt.Errorf("add user: %w", err)
	}

	return nil
}

// List returns all users in registration order, without credentials.
func (r *Repo) List(ctx context.Context) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, email
			FROM app_user
			ORDER BY created_at, id
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users [query]: %w", err)
	}
	defer rows.Close()

	all := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("list users [rows scan]: %w", err)
		}
		all = append(all, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users [rows error]: %w", err)
	}

	return all, nil
}

func (r *Repo) Count(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM app_user`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
