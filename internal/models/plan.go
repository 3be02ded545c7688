// ABOUTME: WorkoutPlan and PlanExercise models with draft validation.
// ABOUTME: Schedule helpers back the home screen's today/upcoming views.
package models

import "errors"

// Level represents a plan's difficulty level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// AllLevels returns all valid plan levels.
var AllLevels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// IsValidLevel checks if a string is a valid plan level.
func IsValidLevel(s string) bool {
	for _, l := range AllLevels {
		if string(l) == s {
			return true
		}
	}
	return false
}

// DefaultRestSeconds is applied when a plan entry does not set a rest period.
const DefaultRestSeconds = 30

// Validation failures surfaced before any network call is made.
var (
	ErrNoExercises  = errors.New("Please add at least one exercise.")
	ErrDateOrder    = errors.New("Start date must be on or before end date.")
	ErrBadSetsReps  = errors.New("Sets and reps must be greater than zero.")
	ErrNegativeRest = errors.New("Rest seconds cannot be negative.")
)

// PlanExercise is one entry in a plan's ordered exercise sequence. Name is a
// display convenience filled by the server; identity is the exercise id.
type PlanExercise struct {
	ExerciseID  int    `json:"exercise_id"`
	Name        string `json:"name,omitempty"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
}

// WorkoutPlan represents a workout plan. PlanID is zero on a draft and
// assigned by the server on creation.
type WorkoutPlan struct {
	PlanID    int            `json:"plan_id,omitempty"`
	UserID    int            `json:"user_id,omitempty"`
	Title     string         `json:"title"`
	Level     Level          `json:"level"`
	Exercises []PlanExercise `json:"exercises"`
	StartDate Date           `json:"start_date"`
	EndDate   Date           `json:"end_date"`
	OwnerName string         `json:"owner_name,omitempty"`
}

// EntityID returns the server-assigned id.
func (p WorkoutPlan) EntityID() int { return p.PlanID }

// Validate checks a plan draft before it is submitted. The non-empty
// exercises rule is a deliberate pre-submit check, not a form default.
func (p WorkoutPlan) Validate() error {
	if len(p.Exercises) == 0 {
		return ErrNoExercises
	}
	if p.EndDate.Before(p.StartDate) {
		return ErrDateOrder
	}
	for _, ex := range p.Exercises {
		if ex.Sets <= 0 || ex.Reps <= 0 {
			return ErrBadSetsReps
		}
		if ex.RestSeconds < 0 {
			return ErrNegativeRest
		}
	}
	return nil
}

// EstimatedMinutes gives a rough duration for the plan's exercises, used by
// the weekly stats summary. Assumes 4 seconds per rep plus rest between sets.
func (p WorkoutPlan) EstimatedMinutes() int {
	seconds := 0
	for _, ex := range p.Exercises {
		seconds += ex.Sets * (ex.Reps*4 + ex.RestSeconds)
	}
	return (seconds + 59) / 60
}

// StartingOn returns the plans whose start date falls on the given day,
// preserving server order.
func StartingOn(plans []WorkoutPlan, day Date) []WorkoutPlan {
	var out []WorkoutPlan
	for _, p := range plans {
		if p.StartDate.Equal(day) {
			out = append(out, p)
		}
	}
	return out
}

// NextUpcoming returns the plan with the earliest start date on or after
// today. Ties keep the first plan in server order. The second return is false
// when no plan qualifies.
func NextUpcoming(plans []WorkoutPlan, today Date) (WorkoutPlan, bool) {
	var next WorkoutPlan
	found := false
	for _, p := range plans {
		if !p.StartDate.OnOrAfter(today) {
			continue
		}
		if !found || p.StartDate.Before(next.StartDate) {
			next = p
			found = true
		}
	}
	return next, found
}
