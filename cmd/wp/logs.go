// ABOUTME: CLI commands for workout logs.
// ABOUTME: Log drafts snapshot the exercise name at creation time.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/workoutplan/cli/internal/access"
	"github.com/workoutplan/cli/internal/models"
	"github.com/workoutplan/cli/internal/sync"
)

var (
	logExerciseID int
	logSets       int
	logReps       int
	logDate       string
	logDuration   int
	logNotes      string
)

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Manage workout logs",
	Long: `List, add, update, and delete workout logs.

A log records one completed workout against a catalog exercise. The exercise
name is copied onto the log when it is created and kept as a historical
snapshot, even if the exercise is later renamed.

Examples:
  wp logs list
  wp logs add --exercise 3 --sets 4 --reps 8 --duration 45
  wp logs update 12 --notes "Felt strong"
  wp logs delete 12`,
}

var logsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workout logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}

		col := sync.NewCollection[models.WorkoutLog](client.Logs())
		logs, err := col.Load(cmd.Context())
		if err != nil {
			return friendly(err)
		}

		if sess.Role == models.RoleTrainer {
			fmt.Println("All workout logs:")
		} else {
			fmt.Println("Your workout logs:")
		}
		if len(logs) == 0 {
			fmt.Println("  No workout logs found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			name := l.ExerciseName
			if name == "" {
				name = "Unknown Exercise"
			}
			notes := ""
			if l.Notes != "" {
				notes = faint.Sprintf(" (%s)", l.Notes)
			}
			fmt.Printf("%s %s %s: %d x %d, %d min%s\n",
				faint.Sprintf("#%d", l.LogID), l.Date, name, l.Sets, l.Reps, l.Duration, notes)
		}
		return nil
	},
}

var logsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a completed workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(); err != nil {
			return err
		}
		ctx := cmd.Context()

		if logExerciseID == 0 {
			return fmt.Errorf("an exercise is required (use --exercise <id>)")
		}

		ex, err := findExercise(cmd, logExerciseID)
		if err != nil {
			return err
		}

		draft := models.NewLogDraft(ex)
		if cmd.Flags().Changed("sets") {
			draft.WithSets(logSets)
		}
		if cmd.Flags().Changed("reps") {
			draft.WithReps(logReps)
		}
		if cmd.Flags().Changed("duration") {
			draft.WithDuration(logDuration)
		}
		if cmd.Flags().Changed("date") {
			d, err := models.ParseDate(logDate)
			if err != nil {
				return err
			}
			draft.WithDate(d)
		}
		if logNotes != "" {
			draft.WithNotes(logNotes)
		}

		col := sync.NewCollection[models.WorkoutLog](client.Logs())
		created, err := col.Create(ctx, *draft)
		if err != nil {
			return friendly(err)
		}

		color.Green("✓ Logged %s", created.ExerciseName)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("#%d, %d x %d on %s", created.LogID, created.Sets, created.Reps, created.Date))
		return nil
	},
}

var logsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a workout log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid log id: %s", args[0])
		}

		me, err := client.Me(ctx)
		if err != nil {
			return friendly(err)
		}

		col := sync.NewCollection[models.WorkoutLog](client.Logs())
		if _, err := col.Load(ctx); err != nil {
			return friendly(err)
		}
		entry, ok := col.Get(id)
		if !ok {
			return fmt.Errorf("log %d not found", id)
		}
		if !access.CanMutatePlanOrLog(sess.Role, entry.UserID, me.UserID) {
			return fmt.Errorf("you can only modify your own logs")
		}

		// Changing the exercise takes a fresh snapshot; otherwise the stored
		// name stays as it was when the workout was logged.
		if cmd.Flags().Changed("exercise") {
			ex, err := findExercise(cmd, logExerciseID)
			if err != nil {
				return err
			}
			entry.ExerciseID = ex.ExerciseID
			entry.ExerciseName = ex.Name
			entry.ExerciseDescription = ex.Description
		}
		if cmd.Flags().Changed("sets") {
			entry.Sets = logSets
		}
		if cmd.Flags().Changed("reps") {
			entry.Reps = logReps
		}
		if cmd.Flags().Changed("duration") {
			entry.Duration = logDuration
		}
		if cmd.Flags().Changed("date") {
			if entry.Date, err = models.ParseDate(logDate); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("notes") {
			entry.Notes = logNotes
		}

		updated, err := col.Update(ctx, id, entry)
		if err != nil {
			return friendly(err)
		}

		color.Green("✓ Updated log #%d", updated.LogID)
		return nil
	},
}

var logsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout log",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid log id: %s", args[0])
		}

		me, err := client.Me(ctx)
		if err != nil {
			return friendly(err)
		}

		col := sync.NewCollection[models.WorkoutLog](client.Logs())
		if _, err := col.Load(ctx); err != nil {
			return friendly(err)
		}
		if entry, ok := col.Get(id); ok {
			if !access.CanMutatePlanOrLog(sess.Role, entry.UserID, me.UserID) {
				return fmt.Errorf("you can only delete your own logs")
			}
		}

		if err := col.Remove(ctx, id); err != nil {
			return friendly(err)
		}

		color.Green("✓ Deleted log #%d", id)
		return nil
	},
}

// findExercise looks the exercise up in the catalog so drafts can snapshot
// its name and description.
func findExercise(cmd *cobra.Command, id int) (models.Exercise, error) {
	col := sync.NewCollection[models.Exercise](client.Exercises())
	if _, err := col.Load(cmd.Context()); err != nil {
		return models.Exercise{}, friendly(err)
	}
	ex, ok := col.Get(id)
	if !ok {
		return models.Exercise{}, fmt.Errorf("please select a valid exercise (no exercise with id %d)", id)
	}
	return ex, nil
}

func init() {
	for _, cmd := range []*cobra.Command{logsAddCmd, logsUpdateCmd} {
		cmd.Flags().IntVar(&logExerciseID, "exercise", 0, "catalog exercise id")
		cmd.Flags().IntVar(&logSets, "sets", models.DefaultLogSets, "number of sets")
		cmd.Flags().IntVar(&logReps, "reps", models.DefaultLogReps, "number of reps")
		cmd.Flags().StringVar(&logDate, "date", "", "workout date (YYYY-MM-DD, default today)")
		cmd.Flags().IntVar(&logDuration, "duration", models.DefaultLogDuration, "duration in minutes")
		cmd.Flags().StringVar(&logNotes, "notes", "", "notes for the workout")
	}

	logsCmd.AddCommand(logsListCmd, logsAddCmd, logsUpdateCmd, logsDeleteCmd)
	rootCmd.AddCommand(logsCmd)
}
