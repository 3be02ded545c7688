// ABOUTME: WorkoutLog model with denormalized exercise snapshot fields.
// ABOUTME: Snapshots keep the exercise name as it was when logged.
package models

// Log draft defaults, matching the web client's form.
const (
	DefaultLogSets     = 3
	DefaultLogReps     = 10
	DefaultLogDuration = 30
)

// WorkoutLog represents one completed workout. ExerciseName and
// ExerciseDescription are snapshots captured at logging time; they are
// intentionally not refreshed if the exercise is later renamed.
type WorkoutLog struct {
	LogID               int    `json:"log_id,omitempty"`
	UserID              int    `json:"user_id,omitempty"`
	ExerciseID          int    `json:"exercise_id"`
	ExerciseName        string `json:"exercise_name"`
	ExerciseDescription string `json:"exercise_description,omitempty"`
	Sets                int    `json:"sets"`
	Reps                int    `json:"reps"`
	Date                Date   `json:"date"`
	Duration            int    `json:"duration"`
	Notes               string `json:"notes,omitempty"`
}

// EntityID returns the server-assigned id.
func (l WorkoutLog) EntityID() int { return l.LogID }

// NewLogDraft builds a log draft for the given exercise with the form
// defaults applied. The exercise's name and description are copied onto the
// draft here; this is the only point where the snapshot is taken.
func NewLogDraft(ex Exercise) *WorkoutLog {
	return &WorkoutLog{
		ExerciseID:          ex.ExerciseID,
		ExerciseName:        ex.Name,
		ExerciseDescription: ex.Description,
		Sets:                DefaultLogSets,
		Reps:                DefaultLogReps,
		Date:                Today(),
		Duration:            DefaultLogDuration,
	}
}

// WithSets sets the number of sets.
func (l *WorkoutLog) WithSets(sets int) *WorkoutLog {
	l.Sets = sets
	return l
}

// WithReps sets the number of reps.
func (l *WorkoutLog) WithReps(reps int) *WorkoutLog {
	l.Reps = reps
	return l
}

// WithDate sets the workout date.
func (l *WorkoutLog) WithDate(d Date) *WorkoutLog {
	l.Date = d
	return l
}

// WithDuration sets the duration in minutes.
func (l *WorkoutLog) WithDuration(minutes int) *WorkoutLog {
	l.Duration = minutes
	return l
}

// WithNotes sets notes on the log.
func (l *WorkoutLog) WithNotes(notes string) *WorkoutLog {
	l.Notes = notes
	return l
}
