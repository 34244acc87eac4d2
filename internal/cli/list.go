package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/2beens/gymtracker/internal/gymstats/catalog"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"

	"github.com/spf13/cobra"
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Exercise catalog commands",
}

var exercisesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the exercise catalog",
	Args:  cobra.NoArgs,
	RunE:  runExercisesList,
}

var workoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "Workout log commands",
}

var workoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the workout log",
	Args:  cobra.NoArgs,
	RunE:  runWorkoutsList,
}

func init() {
	exercisesCmd.AddCommand(exercisesListCmd)
	workoutsCmd.AddCommand(workoutsListCmd)
	rootCmd.AddCommand(exercisesCmd)
	rootCmd.AddCommand(workoutsCmd)
}

func runExercisesList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	list, err := catalog.NewRepo(e.pool).List(ctx)
	if err != nil {
		return err
	}
	return printExercises(cmd.OutOrStdout(), list)
}

func runWorkoutsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	list, err := workouts.NewRepo(e.pool).List(ctx)
	if err != nil {
		return err
	}
	return printWorkouts(cmd.OutOrStdout(), list)
}

func printExercises(out io.Writer, list []catalog.Exercise) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tMUSCLE GROUP")
	for _, ex := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ex.ID, ex.Name, ex.Category, ex.MuscleGroup)
	}
	return w.Flush()
}

func printWorkouts(out io.Writer, list []workouts.Workout) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tNAME\tEXERCISES\tVOLUME")
	for _, wk := range list {
		var volume float64
		for _, line := range wk.Exercises {
			volume += line.Volume()
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\n", wk.Date, wk.Name, len(wk.Exercises), volume)
	}
	return w.Flush()
}
