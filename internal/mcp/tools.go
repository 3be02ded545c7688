// ABOUTME: MCP tool implementations for the WorkoutPlan client.
// ABOUTME: Exposes plans, logs, and the exercise catalog to AI assistants.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/workoutplan/cli/internal/models"
)

func (s *Server) registerTools() {
	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the shared exercise catalog",
	}, s.handleListExercises)

	// list_plans
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_plans",
		Description: "List workout plans visible to the logged-in user",
	}, s.handleListPlans)

	// create_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_plan",
		Description: "Create a workout plan with an ordered list of exercises",
	}, s.handleCreatePlan)

	// next_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "next_workout",
		Description: "Find the next upcoming workout plan",
	}, s.handleNextWorkout)

	// list_logs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_logs",
		Description: "List workout logs visible to the logged-in user",
	}, s.handleListLogs)

	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Record a completed workout against a catalog exercise",
	}, s.handleLogWorkout)

	// delete_log
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_log",
		Description: "Delete a workout log by id",
	}, s.handleDeleteLog)
}

// Tool input/output types

type planEntryInput struct {
	ExerciseID  int `json:"exercise_id" jsonschema:"description=Catalog exercise id,required"`
	Sets        int `json:"sets" jsonschema:"description=Number of sets,required"`
	Reps        int `json:"reps" jsonschema:"description=Number of reps,required"`
	RestSeconds int `json:"rest_seconds,omitempty" jsonschema:"description=Rest between sets in seconds (default 30)"`
}

type createPlanInput struct {
	Title     string           `json:"title" jsonschema:"description=Plan title,required"`
	Level     string           `json:"level" jsonschema:"description=Difficulty (beginner, intermediate, advanced),required"`
	StartDate string           `json:"start_date" jsonschema:"description=Start date (YYYY-MM-DD),required"`
	EndDate   string           `json:"end_date" jsonschema:"description=End date (YYYY-MM-DD),required"`
	Exercises []planEntryInput `json:"exercises" jsonschema:"description=Ordered exercise entries; must not be empty,required"`
}

type planOutput struct {
	PlanID  int    `json:"plan_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type logWorkoutInput struct {
	ExerciseID int    `json:"exercise_id" jsonschema:"description=Catalog exercise id,required"`
	Sets       int    `json:"sets,omitempty" jsonschema:"description=Number of sets (default 3)"`
	Reps       int    `json:"reps,omitempty" jsonschema:"description=Number of reps (default 10)"`
	Date       string `json:"date,omitempty" jsonschema:"description=Workout date (YYYY-MM-DD), defaults to today"`
	Duration   int    `json:"duration,omitempty" jsonschema:"description=Duration in minutes (default 30)"`
	Notes      string `json:"notes,omitempty" jsonschema:"description=Optional notes"`
}

type logOutput struct {
	LogID        int    `json:"log_id"`
	ExerciseName string `json:"exercise_name"`
	Message      string `json:"message"`
}

type deleteLogInput struct {
	LogID int `json:"log_id" jsonschema:"description=Workout log id,required"`
}

type nextWorkoutInput struct {
	Today string `json:"today,omitempty" jsonschema:"description=Reference date (YYYY-MM-DD), defaults to the current date"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	exercises, err := s.client.Exercises().List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, map[string]any{"exercises": exercises}, nil
}

func (s *Server) handleListPlans(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	plans, err := s.plans.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, map[string]any{"plans": plans}, nil
}

func (s *Server) handleCreatePlan(ctx context.Context, req *mcp.CallToolRequest, input createPlanInput) (*mcp.CallToolResult, planOutput, error) {
	if !models.IsValidLevel(input.Level) {
		return nil, planOutput{}, fmt.Errorf("invalid level: %s", input.Level)
	}
	start, err := models.ParseDate(input.StartDate)
	if err != nil {
		return nil, planOutput{}, err
	}
	end, err := models.ParseDate(input.EndDate)
	if err != nil {
		return nil, planOutput{}, err
	}

	draft := models.WorkoutPlan{
		Title:     input.Title,
		Level:     models.Level(input.Level),
		StartDate: start,
		EndDate:   end,
	}
	for _, e := range input.Exercises {
		rest := e.RestSeconds
		if rest == 0 {
			rest = models.DefaultRestSeconds
		}
		draft.Exercises = append(draft.Exercises, models.PlanExercise{
			ExerciseID:  e.ExerciseID,
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestSeconds: rest,
		})
	}

	if err := draft.Validate(); err != nil {
		return nil, planOutput{}, err
	}

	created, err := s.plans.Create(ctx, draft)
	if err != nil {
		return nil, planOutput{}, err
	}

	return nil, planOutput{
		PlanID:  created.PlanID,
		Title:   created.Title,
		Message: fmt.Sprintf("Created plan %q (#%d), %s to %s", created.Title, created.PlanID, created.StartDate, created.EndDate),
	}, nil
}

func (s *Server) handleNextWorkout(ctx context.Context, req *mcp.CallToolRequest, input nextWorkoutInput) (*mcp.CallToolResult, any, error) {
	today := models.Today()
	if input.Today != "" {
		var err error
		if today, err = models.ParseDate(input.Today); err != nil {
			return nil, nil, err
		}
	}

	plans, err := s.plans.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	next, ok := models.NextUpcoming(plans, today)
	if !ok {
		return nil, simpleOutput{Message: "No upcoming plans."}, nil
	}
	return nil, map[string]any{
		"plan":    next,
		"message": fmt.Sprintf("Next workout is %q on %s", next.Title, next.StartDate),
	}, nil
}

func (s *Server) handleListLogs(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	logs, err := s.logs.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, map[string]any{"logs": logs}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logOutput, error) {
	exercises, err := s.client.Exercises().List(ctx)
	if err != nil {
		return nil, logOutput{}, err
	}
	var exercise *models.Exercise
	for i := range exercises {
		if exercises[i].ExerciseID == input.ExerciseID {
			exercise = &exercises[i]
			break
		}
	}
	if exercise == nil {
		return nil, logOutput{}, fmt.Errorf("no exercise with id %d", input.ExerciseID)
	}

	draft := models.NewLogDraft(*exercise)
	if input.Sets > 0 {
		draft.WithSets(input.Sets)
	}
	if input.Reps > 0 {
		draft.WithReps(input.Reps)
	}
	if input.Duration > 0 {
		draft.WithDuration(input.Duration)
	}
	if input.Date != "" {
		d, err := models.ParseDate(input.Date)
		if err != nil {
			return nil, logOutput{}, err
		}
		draft.WithDate(d)
	}
	if input.Notes != "" {
		draft.WithNotes(input.Notes)
	}

	created, err := s.logs.Create(ctx, *draft)
	if err != nil {
		return nil, logOutput{}, err
	}

	return nil, logOutput{
		LogID:        created.LogID,
		ExerciseName: created.ExerciseName,
		Message:      fmt.Sprintf("Logged %s: %d x %d on %s (#%d)", created.ExerciseName, created.Sets, created.Reps, created.Date, created.LogID),
	}, nil
}

func (s *Server) handleDeleteLog(ctx context.Context, req *mcp.CallToolRequest, input deleteLogInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.logs.Remove(ctx, input.LogID); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted log #%d", input.LogID)}, nil
}
