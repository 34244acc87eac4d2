package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagEnv        string
	flagConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "gymtracker",
	Short: "Operator tools for the gym tracker",
	Long: `gymtracker runs migrations, imports and exports local storage snapshots,
and prints the exercise catalog, the workout log and stats reports.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "./config.toml", "path for the TOML config file")
}

// env holds what every command needs: the config and an open db pool.
type env struct {
	cfg  *config.Config
	pool *pgxpool.Pool
}

func (e *env) close() {
	e.pool.Close()
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load(flagEnv, flagConfigPath)
	if err != nil {
		return nil, err
	}
	secrets, err := config.LoadSecrets()
	if err != nil {
		return nil, err
	}

	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})
	log.Debugf("cli running in [%s] environment", cfg.Environment)

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, pool: pool}, nil
}
