// ABOUTME: CLI commands for listing and managing workout plans.
// ABOUTME: Mutations flow through a synchronized collection with role gating.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/workoutplan/cli/internal/access"
	"github.com/workoutplan/cli/internal/models"
	"github.com/workoutplan/cli/internal/sync"
)

var (
	planTitle     string
	planLevel     string
	planStart     string
	planEnd       string
	planExercises []string
	planForUser   int
)

var plansCmd = &cobra.Command{
	Use:     "plans",
	Aliases: []string{"plan"},
	Short:   "Manage workout plans",
	Long: `List, create, update, and delete workout plans.

Exercise entries are given as ID:SETS:REPS or ID:SETS:REPS:REST, where REST
is the rest period in seconds (default 30).

Examples:
  wp plans list
  wp plans create --title "Leg Day" --level beginner \
      --start 2024-02-01 --end 2024-02-28 \
      --exercise 2:3:12 --exercise 5:4:8:90
  wp plans update 7 --title "Leg Day Blast"
  wp plans delete 7`,
}

var plansListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workout plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(); err != nil {
			return err
		}

		col := sync.NewCollection[models.WorkoutPlan](client.Plans())
		plans, err := col.Load(cmd.Context())
		if err != nil {
			return friendly(err)
		}

		if len(plans) == 0 {
			fmt.Println("No plans found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range plans {
			owner := ""
			if p.OwnerName != "" {
				owner = faint.Sprintf(" (%s)", p.OwnerName)
			}
			fmt.Printf("%s %s [%s] %s to %s%s\n",
				faint.Sprintf("#%d", p.PlanID),
				p.Title, p.Level, p.StartDate, p.EndDate, owner)
			for _, ex := range p.Exercises {
				fmt.Printf("    %s: %d x %d, %ds rest\n",
					planExerciseName(ex), ex.Sets, ex.Reps, ex.RestSeconds)
			}
		}
		return nil
	},
}

var plansCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a workout plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		draft, err := buildPlanDraft()
		if err != nil {
			return err
		}

		if planForUser != 0 {
			if !access.CanAssignToOthers(sess.Role) {
				return fmt.Errorf("only trainers can create plans for other users")
			}
			draft.UserID = planForUser
		}

		// Validated locally before any network call is made.
		if err := draft.Validate(); err != nil {
			return err
		}

		col := sync.NewCollection[models.WorkoutPlan](client.Plans())
		created, err := col.Create(ctx, draft)
		if err != nil {
			return friendly(err)
		}

		color.Green("✓ Created plan %q", created.Title)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("#%d, %s to %s", created.PlanID, created.StartDate, created.EndDate))
		return nil
	},
}

var plansUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a workout plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}

		me, err := client.Me(ctx)
		if err != nil {
			return friendly(err)
		}

		col := sync.NewCollection[models.WorkoutPlan](client.Plans())
		if _, err := col.Load(ctx); err != nil {
			return friendly(err)
		}
		plan, ok := col.Get(id)
		if !ok {
			return fmt.Errorf("plan %d not found", id)
		}
		if !access.CanMutatePlanOrLog(sess.Role, plan.UserID, me.UserID) {
			return fmt.Errorf("you can only modify your own plans")
		}

		if cmd.Flags().Changed("title") {
			plan.Title = planTitle
		}
		if cmd.Flags().Changed("level") {
			if !models.IsValidLevel(planLevel) {
				return fmt.Errorf("invalid level: %s (must be beginner, intermediate, or advanced)", planLevel)
			}
			plan.Level = models.Level(planLevel)
		}
		if cmd.Flags().Changed("start") {
			if plan.StartDate, err = models.ParseDate(planStart); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("end") {
			if plan.EndDate, err = models.ParseDate(planEnd); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("exercise") {
			entries, err := parsePlanEntries(planExercises)
			if err != nil {
				return err
			}
			plan.Exercises = entries
		}

		if err := plan.Validate(); err != nil {
			return err
		}

		updated, err := col.Update(ctx, id, plan)
		if err != nil {
			return friendly(err)
		}

		color.Green("✓ Updated plan %q", updated.Title)
		return nil
	},
}

var plansDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout plan",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}

		me, err := client.Me(ctx)
		if err != nil {
			return friendly(err)
		}

		col := sync.NewCollection[models.WorkoutPlan](client.Plans())
		if _, err := col.Load(ctx); err != nil {
			return friendly(err)
		}
		if plan, ok := col.Get(id); ok {
			if !access.CanMutatePlanOrLog(sess.Role, plan.UserID, me.UserID) {
				return fmt.Errorf("you can only delete your own plans")
			}
		}

		if err := col.Remove(ctx, id); err != nil {
			return friendly(err)
		}

		color.Green("✓ Deleted plan #%d", id)
		return nil
	},
}

func buildPlanDraft() (models.WorkoutPlan, error) {
	var draft models.WorkoutPlan

	if planTitle == "" {
		return draft, fmt.Errorf("a plan title is required (use --title)")
	}
	if !models.IsValidLevel(planLevel) {
		return draft, fmt.Errorf("invalid level: %s (must be beginner, intermediate, or advanced)", planLevel)
	}

	start, err := models.ParseDate(planStart)
	if err != nil {
		return draft, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := models.ParseDate(planEnd)
	if err != nil {
		return draft, fmt.Errorf("invalid end date: %w", err)
	}

	entries, err := parsePlanEntries(planExercises)
	if err != nil {
		return draft, err
	}

	return models.WorkoutPlan{
		Title:     planTitle,
		Level:     models.Level(planLevel),
		StartDate: start,
		EndDate:   end,
		Exercises: entries,
	}, nil
}

// parsePlanEntries parses repeated --exercise flags of the form
// ID:SETS:REPS or ID:SETS:REPS:REST.
func parsePlanEntries(specs []string) ([]models.PlanExercise, error) {
	var out []models.PlanExercise
	for _, spec := range specs {
		entry, err := parsePlanEntry(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func parsePlanEntry(spec string) (models.PlanExercise, error) {
	var entry models.PlanExercise

	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return entry, fmt.Errorf("invalid exercise entry %q (want ID:SETS:REPS or ID:SETS:REPS:REST)", spec)
	}

	fields := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return entry, fmt.Errorf("invalid exercise entry %q: %q is not a number", spec, p)
		}
		fields[i] = n
	}

	entry = models.PlanExercise{
		ExerciseID:  fields[0],
		Sets:        fields[1],
		Reps:        fields[2],
		RestSeconds: models.DefaultRestSeconds,
	}
	if len(fields) == 4 {
		entry.RestSeconds = fields[3]
	}

	if entry.Sets <= 0 || entry.Reps <= 0 {
		return entry, models.ErrBadSetsReps
	}
	if entry.RestSeconds < 0 {
		return entry, models.ErrNegativeRest
	}
	return entry, nil
}

func init() {
	for _, cmd := range []*cobra.Command{plansCreateCmd, plansUpdateCmd} {
		cmd.Flags().StringVar(&planTitle, "title", "", "plan title")
		cmd.Flags().StringVar(&planLevel, "level", string(models.LevelBeginner), "difficulty level (beginner, intermediate, advanced)")
		cmd.Flags().StringVar(&planStart, "start", "", "start date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&planEnd, "end", "", "end date (YYYY-MM-DD)")
		cmd.Flags().StringArrayVar(&planExercises, "exercise", nil, "exercise entry ID:SETS:REPS[:REST] (repeatable)")
	}
	plansCreateCmd.Flags().IntVar(&planForUser, "for-user", 0, "create the plan for another user (trainers only)")

	plansCmd.AddCommand(plansListCmd, plansCreateCmd, plansUpdateCmd, plansDeleteCmd)
	rootCmd.AddCommand(plansCmd)
}
