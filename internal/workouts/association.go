package workouts

// GymExercise is a joined listing row: a gym workout association plus
// the catalog exercise it points to. Performance fields stay nil until
// first logged.
type GymExercise struct {
	AssociationID int      `json:"associationId"`
	ExerciseID    int      `json:"exerciseId"`
	ExerciseName  string   `json:"exerciseName"`
	ExercisePhoto *string  `json:"exercisePhoto"`
	Weight        *float64 `json:"weight"`
	Reps          *int     `json:"reps"`
	Sets          *int     `json:"sets"`
}

// CardioExercise is the cardio counterpart of GymExercise.
type CardioExercise struct {
	AssociationID int      `json:"associationId"`
	ExerciseID    int      `json:"exerciseId"`
	ExerciseName  string   `json:"exerciseName"`
	ExercisePhoto *string  `json:"exercisePhoto"`
	Description   *string  `json:"description"`
	Distance      *float64 `json:"distance"`
	Type          *string  `json:"type"`
}

type AddExerciseParams struct {
	WorkoutID  int
	Kind       Kind
	ExerciseID int
	UserID     int
}

// GymDetails is the logged performance for a gym association. The log
// operation always overwrites all three fields.
type GymDetails struct {
	Weight float64
	Reps   int
	Sets   int
}
