package workouts

import (
	"errors"
	"time"
)

var (
	ErrWorkoutNotFound      = errors.New("workout not found")
	ErrAssociationNotFound  = errors.New("exercise not found in workout")
	ErrExerciseAlreadyAdded = errors.New("exercise already added to this workout")
	// ErrInvalidReference: the workout, exercise or user a new
	// association points to does not exist (FK violation).
	ErrInvalidReference = errors.New("workout, exercise or user not found")
)

type Workout struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"-"`
}

type CreateWorkoutParams struct {
	UserID int
	Name   string
	Kind   Kind
}
