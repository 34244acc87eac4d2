package cli

import (
	"fmt"

	"github.com/2beens/gymtracker/internal/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run pending database migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	applied, err := db.MigrateUp(ctx, e.pool)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	version, _, err := db.CurrentVersion(ctx, e.pool)
	if err != nil {
		return fmt.Errorf("current version: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s), now at version %d\n", applied, version)
	return nil
}
