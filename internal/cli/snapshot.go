package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/2beens/gymtracker/internal/gymstats/catalog"
	"github.com/2beens/gymtracker/internal/gymstats/snapshot"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"
	"github.com/2beens/gymtracker/internal/users"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a local storage snapshot",
	Long: `Import a local storage snapshot (gym-exercises, gym-workouts, gym-users).

Exercises and workouts are upserted by id. Users are added with their
passwords hashed, users whose email is already registered are skipped.
Use - to read the snapshot from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog, the workout log and users as a snapshot",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write the snapshot to this file instead of stdout")
}

func runImport(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open snapshot: %w", err)
		}
		defer f.Close()
		in = f
	}

	s, err := snapshot.Decode(in)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	importer := snapshot.NewImporter(
		catalog.NewRepo(e.pool),
		workouts.NewRepo(e.pool),
		users.NewRepo(e.pool),
		e.cfg.PasswordCost,
	)
	result, err := importer.Import(ctx, s)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	s, err := snapshot.NewExporter(
		catalog.NewRepo(e.pool),
		workouts.NewRepo(e.pool),
		users.NewRepo(e.pool),
	).Export(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()
		out = f
	}

	return snapshot.Encode(out, s)
}
