package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/gymflow/gymflow/internal/telemetry/tracing"
	"github.com/gymflow/gymflow/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, params CreateWorkoutParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := fmt.Sprintf(
		`INSERT INTO %s (user_id, name) VALUES ($1, $2) RETURNING id`,
		params.Kind.workoutTable(),
	)

	var id int
	err = r.db.QueryRow(ctx, query, params.UserID, params.Name).Scan(&id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return 0, ErrInvalidReference
		}
		return 0, fmt.Errorf("insert %s workout: %w", params.Kind, err)
	}
	return id, nil
}

// ListForUser returns the user's gym and cardio workouts merged into
// one listing.
func (r *Repo) ListForUser(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts := make([]Workout, 0)
	for _, kind := range []Kind{KindGym, KindCardio} {
		kindWorkouts, err := r.listForUser(ctx, userID, kind)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, kindWorkouts...)
	}
	return workouts, nil
}

func (r *Repo) listForUser(ctx context.Context, userID int, kind Kind) ([]Workout, error) {
	query := fmt.Sprintf(
		`SELECT id, user_id, name, created_at FROM %s WHERE user_id = $1 ORDER BY id`,
		kind.workoutTable(),
	)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s workouts: %w", kind, err)
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		w := Workout{Kind: kind}
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s workout row: %w", kind, err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s workout rows: %w", kind, err)
	}

	return workouts, nil
}

func (r *Repo) Rename(ctx context.Context, id int, kind Kind, newName string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := fmt.Sprintf(
		`UPDATE %s SET name = $1 WHERE id = $2`,
		kind.workoutTable(),
	)

	tag, err := r.db.Exec(ctx, query, newName, id)
	if err != nil {
		return fmt.Errorf("rename %s workout: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// Delete removes the workout and all its exercise associations. The
// association purge is explicit, with the FK cascade as a backstop.
func (r *Repo) Delete(ctx context.Context, id int, kind Kind) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete workout tx: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			log.Tracef("delete workout, rollback: %s", err)
		}
	}()

	purgeQuery := fmt.Sprintf(
		`DELETE FROM %s WHERE %s = $1`,
		kind.associationTable(), kind.workoutFKColumn(),
	)
	if _, err := tx.Exec(ctx, purgeQuery, id); err != nil {
		return fmt.Errorf("purge %s workout associations: %w", kind, err)
	}

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, kind.workoutTable())
	tag, err := tx.Exec(ctx, deleteQuery, id)
	if err != nil {
		return fmt.Errorf("delete %s workout: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete workout tx: %w", err)
	}
	return nil
}
