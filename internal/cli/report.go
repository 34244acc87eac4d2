package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/2beens/gymtracker/internal/gymstats/stats"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"

	"github.com/spf13/cobra"
)

var (
	reportWindow   int
	reportExercise string
	reportJSON     bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the stats report for a window of days",
	Long: `Print the stats report for a window of days ending today.

Examples:
  gymtracker report                      # last 30 days, all exercises
  gymtracker report --window 90          # last 90 days
  gymtracker report --exercise <id>      # one exercise only
  gymtracker report --json               # raw report`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntVarP(&reportWindow, "window", "w", stats.DefaultWindowDays, "window in days (7, 30, 90, 365 or any positive number)")
	reportCmd.Flags().StringVarP(&reportExercise, "exercise", "e", stats.AllExercises, "exercise id, or all")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print the report as JSON")
}

func runReport(cmd *cobra.Command, _ []string) error {
	if reportWindow <= 0 {
		return fmt.Errorf("%w: must be positive, got %d", stats.ErrInvalidWindow, reportWindow)
	}

	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	report, err := stats.NewReporter(workouts.NewRepo(e.pool), nil).Report(ctx, reportWindow, reportExercise)
	if err != nil {
		return err
	}

	if reportJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return printReport(cmd.OutOrStdout(), report)
}

func printReport(out io.Writer, report stats.Report) error {
	fmt.Fprintf(out, "Last %d days (since %s), exercise: %s\n\n", report.WindowDays, report.From, report.ExerciseFilter)
	fmt.Fprintf(out, "Workouts:               %d\n", report.Overall.TotalWorkouts)
	fmt.Fprintf(out, "Exercises:              %d\n", report.Overall.TotalExercises)
	fmt.Fprintf(out, "Total volume:           %.1f\n", report.Overall.TotalVolume)
	fmt.Fprintf(out, "Workouts per week:      %.1f\n", report.Overall.AvgWorkoutsPerWeek)
	fmt.Fprintf(out, "Progressing exercises:  %d\n\n", report.Overall.ProgressingExercises)

	if len(report.Exercises) == 0 {
		fmt.Fprintln(out, "No workouts in this window.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EXERCISE\tENTRIES\tMAX\tAVG\tVOLUME\tLAST\tPROGRESSION")
	for _, ex := range report.Exercises {
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%.1f\t%s\t%+.1f\n",
			ex.ExerciseName,
			ex.TotalWorkouts,
			ex.MaxWeight,
			ex.AvgWeight,
			ex.TotalVolume,
			ex.LastWorkout,
			ex.Progression,
		)
	}
	return w.Flush()
}
