// ABOUTME: CLI command for the home overview screen.
// ABOUTME: Welcome, today's plans, weekly stats, and next-workout reminder.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/workoutplan/cli/internal/models"
	"github.com/workoutplan/cli/internal/sync"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show today's plans and your next workout",
	Long: `Show the home overview: a welcome, the plans starting today, a quick
weekly summary, and a reminder for the next upcoming plan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(); err != nil {
			return err
		}
		ctx := cmd.Context()

		me, err := client.Me(ctx)
		if err != nil {
			return friendly(err)
		}
		name := me.Name
		if name == "" {
			name = "User"
		}

		plansCol := sync.NewCollection[models.WorkoutPlan](client.Plans())
		plans, err := plansCol.Load(ctx)
		if err != nil {
			return friendly(err)
		}

		bold := color.New(color.Bold)
		bold.Printf("Welcome back, %s!\n\n", name)

		today := models.Today()

		fmt.Println("Today's workout plans:")
		todays := models.StartingOn(plans, today)
		if len(todays) == 0 {
			fmt.Println("  No plans found.")
		}
		for _, p := range todays {
			fmt.Printf("  %s (%s)\n", p.Title, p.Level)
			for _, ex := range p.Exercises {
				fmt.Printf("    - %s: %d sets of %d reps\n", planExerciseName(ex), ex.Sets, ex.Reps)
			}
		}

		totalMinutes := 0
		for _, p := range plans {
			totalMinutes += p.EstimatedMinutes()
		}
		fmt.Printf("\nYour weekly stats: %d workouts, ~%dh %dm total time (est.)\n",
			len(plans), totalMinutes/60, totalMinutes%60)

		if next, ok := models.NextUpcoming(plans, today); ok {
			fmt.Printf("\nYour next workout is %s on %s\n", bold.Sprint(next.Title), next.StartDate)
		} else {
			fmt.Println("\nNo upcoming plans.")
		}
		return nil
	},
}

func planExerciseName(ex models.PlanExercise) string {
	if ex.Name != "" {
		return ex.Name
	}
	return fmt.Sprintf("exercise %d", ex.ExerciseID)
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
