package workouts

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidKind = errors.New("invalid workout kind")

// Kind discriminates strength (gym) workouts from cardio ones. It is
// parsed once at the API boundary, everything below works with the
// typed value.
type Kind string

const (
	KindGym    Kind = "gym"
	KindCardio Kind = "cardio"
)

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "gym":
		return KindGym, nil
	case "cardio":
		return KindCardio, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) workoutTable() string {
	if k == KindGym {
		return "gym_workout"
	}
	return "cardio_workout"
}

func (k Kind) associationTable() string {
	if k == KindGym {
		return "gym_workout_exercise"
	}
	return "cardio_workout_exercise"
}

func (k Kind) workoutFKColumn() string {
	if k == KindGym {
		return "gym_workout_id"
	}
	return "cardio_workout_id"
}
