// Package main runs the gymtracker MCP server over stdio for local MCP clients.
// The same server is mounted on the main service at /mcp when mcp_enabled is set.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/gymstats/catalog"
	gymmcp "github.com/2beens/gymtracker/internal/gymstats/mcp"
	"github.com/2beens/gymtracker/internal/gymstats/stats"
	"github.com/2beens/gymtracker/internal/gymstats/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	secrets, err := config.LoadSecrets()
	if err != nil {
		log.Fatalf("load secrets: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	workoutsRepo := workouts.NewRepo(dbPool)
	server := gymmcp.NewServer(gymmcp.NewContextService(
		gymmcp.NewPoolSchemaRepo(dbPool),
		catalog.NewRepo(dbPool),
		workoutsRepo,
		stats.NewReporter(workoutsRepo, nil),
	))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %v", err)
	}
}
