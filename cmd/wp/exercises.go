// ABOUTME: CLI commands for the shared exercise catalog.
// ABOUTME: Catalog mutations are gated to the trainer role.
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
	exerciseName        string
	exerciseDescription string
	exerciseMuscleGroup string
	exerciseType        string
)

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"exercise", "ex"},
	Short:   "Browse and manage the exercise catalog",
	Long: `Browse the shared exercise catalog. Anyone can list exercises;
adding, updating, and deleting them requires the trainer role.

Examples:
  wp exercises list
  wp exercises add --name "Deadlift" --muscle-group back --type strength
  wp exercises update 3 --description "Back, legs, and core strength"
  wp exercises delete 3`,
}

var exercisesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(); err != nil {
			return err
		}

		col := sync.NewCollection[models.Exercise](client.Exercises())
		exercises, err := col.Load(cmd.Context())
		if err != nil {
			return friendly(err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, ex := range exercises {
			kind := ""
			if ex.Type != "" {
				kind = faint.Sprintf(" [%s]", ex.Type)
			}
			fmt.Printf("%s %s (%s)%s\n", faint.Sprintf("#%d", ex.ExerciseID), ex.Name, ex.MuscleGroup, kind)
			if ex.Description != "" {
				fmt.Printf("    %s\n", ex.Description)
			}
		}
		return nil
	},
}

var exercisesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an exercise (trainers only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		if !access.CanManageExercises(sess.Role) {
			return fmt.Errorf("only trainers can manage the exercise catalog")
		}
		if exerciseName == "" {
			return fmt.Errorf("an exercise name is required (use --name)")
		}
		if exerciseType != "" && !models.IsValidExerciseType(exerciseType) {
			return fmt.Errorf("invalid type: %s (must be strength, cardio, or flexibility)", exerciseType)
		}

		draft := models.Exercise{
			Name:        exerciseName,
			Description: exerciseDescription,
			MuscleGroup: exerciseMuscleGroup,
			Type:        models.ExerciseType(exerciseType),
		}

		col := sync.NewCollection[models.Exercise](client.Exercises())
		created, err := col.Create(cmd.Context(), draft)
		if err != nil {
			return friendly(err)
		}

		color.Green("✓ Added exercise %q", created.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("#%d", created.ExerciseID))
		return nil
	},
}

var exercisesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an exercise (trainers only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		if !access.CanManageExercises(sess.Role) {
			return fmt.Errorf("only trainers can manage the exercise catalog")
		}
		ctx := cmd.Context()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[0])
		}

		col := sync.NewCollection[models.Exercise](client.Exercises())
		if _, err := col.Load(ctx); err != nil {
			return friendly(err)
		}
		ex, ok := col.Get(id)
		if !ok {
			return fmt.Errorf("exercise %d not found", id)
		}

		if cmd.Flags().Changed("name") {
			ex.Name = exerciseName
		}
		if cmd.Flags().Changed("description") {
			ex.Description = exerciseDescription
		}
		if cmd.Flags().Changed("muscle-group") {
			ex.MuscleGroup = exerciseMuscleGroup
		}
		if cmd.Flags().Changed("type") {
			if !models.IsValidExerciseType(exerciseType) {
				return fmt.Errorf("invalid type: %s (must be strength, cardio, or flexibility)", exerciseType)
			}
			ex.Type = models.ExerciseType(exerciseType)
		}

		updated, err := col.Update(ctx, id, ex)
		if err != nil {
			return friendly(err)
		}

		color.Green("✓ Updated exercise %q", updated.Name)
		return nil
	},
}

var exercisesDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise (trainers only)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		if !access.CanManageExercises(sess.Role) {
			return fmt.Errorf("only trainers can manage the exercise catalog")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[0])
		}

		col := sync.NewCollection[models.Exercise](client.Exercises())
		if _, err := col.Load(cmd.Context()); err != nil {
			return friendly(err)
		}
		if err := col.Remove(cmd.Context(), id); err != nil {
			return friendly(err)
		}

		color.Green("✓ Deleted exercise #%d", id)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{exercisesAddCmd, exercisesUpdateCmd} {
		cmd.Flags().StringVar(&exerciseName, "name", "", "exercise name")
		cmd.Flags().StringVar(&exerciseDescription, "description", "", "exercise description")
		cmd.Flags().StringVar(&exerciseMuscleGroup, "muscle-group", "", "primary muscle group")
		cmd.Flags().StringVar(&exerciseType, "type", "", "exercise type (strength, cardio, flexibility)")
	}

	exercisesCmd.AddCommand(exercisesListCmd, exercisesAddCmd, exercisesUpdateCmd, exercisesDeleteCmd)
	rootCmd.AddCommand(exercisesCmd)
}
