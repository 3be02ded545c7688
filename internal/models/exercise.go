// ABOUTME: Exercise model and ExerciseType enum.
// ABOUTME: Exercises are a shared catalog, mutable only by trainers.
package models

// ExerciseType categorizes an exercise.
type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseFlexibility ExerciseType = "flexibility"
)

// AllExerciseTypes returns all valid exercise types.
var AllExerciseTypes = []ExerciseType{
	ExerciseStrength, ExerciseCardio, ExerciseFlexibility,
}

// IsValidExerciseType checks if a string is a valid exercise type.
func IsValidExerciseType(s string) bool {
	for _, et := range AllExerciseTypes {
		if string(et) == s {
			return true
		}
	}
	return false
}

// Exercise represents a catalog exercise. Ids are server-assigned; name
// uniqueness is not enforced client-side.
type Exercise struct {
	ExerciseID  int          `json:"exercise_id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	MuscleGroup string       `json:"muscle_group"`
	Type        ExerciseType `json:"type,omitempty"`
}

// EntityID returns the server-assigned id.
func (e Exercise) EntityID() int { return e.ExerciseID }
