package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymflow/gymflow/internal/telemetry/tracing"
	"github.com/gymflow/gymflow/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, params CreateUserParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(ctx,
		`INSERT INTO users (user_name, email, password, profile_picture_url)
			VALUES ($1, $2, $3, $4) RETURNING id`,
		params.UserName, params.Email, params.PasswordHash, params.ProfilePictureURL,
	).Scan(&id)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return 0, ErrUserExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// GetByIdentifier finds a user by username or email.
func (r *Repo) GetByIdentifier(ctx context.Context, identifier string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByIdentifier")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var user User
	err = r.db.QueryRow(ctx,
		`SELECT id, user_name, email, password, profile_picture_url, created_at
			FROM users
			WHERE user_name = $1 OR email = $1`,
		identifier,
	).Scan(&user.ID, &user.UserName, &user.Email, &user.Password, &user.ProfilePictureURL, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (r *Repo) GetByID(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var user User
	err = r.db.QueryRow(ctx,
		`SELECT id, user_name, email, password, profile_picture_url, created_at
			FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.UserName, &user.Email, &user.Password, &user.ProfilePictureURL, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// Update changes the given profile fields only. Returns ErrNoChanges
// when no fields are set.
func (r *Repo) Update(ctx context.Context, id int, params UpdateUserParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Empty() {
		return ErrNoChanges
	}

	var setClauses []string
	var args []any
	addClause := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.UserName != nil {
		addClause("user_name", *params.UserName)
	}
	if params.Email != nil {
		addClause("email", *params.Email)
	}
	if params.PasswordHash != nil {
		addClause("password", *params.PasswordHash)
	}
	if params.ProfilePictureURL != nil {
		addClause("profile_picture_url", *params.ProfilePictureURL)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d`,
		strings.Join(setClauses, ", "), len(args),
	)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the user. Workouts, logged exercises and points go
// with it via FK cascades.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
