package workouts

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymflow/gymflow/internal/telemetry/tracing"
	"github.com/gymflow/gymflow/pkg"
)

type AssociationsRepo struct {
	db *pgxpool.Pool
}

func NewAssociationsRepo(db *pgxpool.Pool) *AssociationsRepo {
	return &AssociationsRepo{db: db}
}

// Add links an exercise to a workout. The unique constraint on
// (workout, exercise) turns duplicate adds into ErrExerciseAlreadyAdded
// without a separate existence check. The gym variant records the
// owning user id alongside, the cardio one does not.
func (r *AssociationsRepo) Add(ctx context.Context, params AddExerciseParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutExercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var query string
	var args []any
	if params.Kind == KindGym {
		query = `INSERT INTO gym_workout_exercise (gym_workout_id, exercise_id, user_id)
			VALUES ($1, $2, $3) RETURNING id`
		args = []any{params.WorkoutID, params.ExerciseID, params.UserID}
	} else {
		query = `INSERT INTO cardio_workout_exercise (cardio_workout_id, exercise_id)
			VALUES ($1, $2) RETURNING id`
		args = []any{params.WorkoutID, params.ExerciseID}
	}

	var id int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return 0, ErrExerciseAlreadyAdded
		}
		if pkg.IsForeignKeyViolationError(err) {
			return 0, ErrInvalidReference
		}
		return 0, fmt.Errorf("insert %s workout exercise: %w", params.Kind, err)
	}
	return id, nil
}

// ListGym returns the gym workout's exercises joined with the catalog,
// most recently added first.
func (r *AssociationsRepo) ListGym(ctx context.Context, workoutID int) (_ []GymExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutExercises.listGym")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT gwe.id, gwe.weight, gwe.reps, gwe.sets, e.id, e.name, e.photo
			FROM gym_workout_exercise gwe
			JOIN exercise e ON gwe.exercise_id = e.id
			WHERE gwe.gym_workout_id = $1
			ORDER BY gwe.id DESC`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("list gym workout exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]GymExercise, 0)
	for rows.Next() {
		var ex GymExercise
		if err := rows.Scan(
			&ex.AssociationID, &ex.Weight, &ex.Reps, &ex.Sets,
			&ex.ExerciseID, &ex.ExerciseName, &ex.ExercisePhoto,
		); err != nil {
			return nil, fmt.Errorf("scan gym workout exercise row: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("gym workout exercise rows: %w", err)
	}

	return exercises, nil
}

// ListCardio is the cardio counterpart of ListGym.
func (r *AssociationsRepo) ListCardio(ctx context.Context, workoutID int) (_ []CardioExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutExercises.listCardio")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT cwe.id, cwe.description, cwe.distance, cwe.type, e.id, e.name, e.photo
			FROM cardio_workout_exercise cwe
			JOIN exercise e ON cwe.exercise_id = e.id
			WHERE cwe.cardio_workout_id = $1
			ORDER BY cwe.id DESC`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("list cardio workout exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]CardioExercise, 0)
	for rows.Next() {
		var ex CardioExercise
		if err := rows.Scan(
			&ex.AssociationID, &ex.Description, &ex.Distance, &ex.Type,
			&ex.ExerciseID, &ex.ExerciseName, &ex.ExercisePhoto,
		); err != nil {
			return nil, fmt.Errorf("scan cardio workout exercise row: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cardio workout exercise rows: %w", err)
	}

	return exercises, nil
}

// UpdateGymDetails overwrites the logged weight, reps and sets of a gym
// association. Returns the number of affected rows (always 1 on
// success, part of the API response).
func (r *AssociationsRepo) UpdateGymDetails(ctx context.Context, associationID int, details GymDetails) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutExercises.updateGymDetails")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE gym_workout_exercise SET weight = $1, reps = $2, sets = $3 WHERE id = $4`,
		details.Weight, details.Reps, details.Sets, associationID,
	)
	if err != nil {
		return 0, fmt.Errorf("update gym workout exercise details: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, ErrAssociationNotFound
	}
	return tag.RowsAffected(), nil
}

func (r *AssociationsRepo) Delete(ctx context.Context, associationID int, kind Kind) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutExercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, kind.associationTable())

	tag, err := r.db.Exec(ctx, query, associationID)
	if err != nil {
		return fmt.Errorf("delete %s workout exercise: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAssociationNotFound
	}
	return nil
}
