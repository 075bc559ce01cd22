// @title			Goodwill Calculator API
// @version		1.0
// @description	Investment and insurance needs calculators with stored valuations.
// @BasePath		/

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mtlprog/goodwill/internal/config"
	"github.com/mtlprog/goodwill/internal/database"
	"github.com/mtlprog/goodwill/internal/logger"
	"github.com/mtlprog/goodwill/internal/server"
	"github.com/urfave/cli/v2"
)

func main() {
	// The env file must be in the environment before flags read their EnvVars.
	if err := config.LoadEnvFile(config.EnvFilePath()); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:  "goodwill",
		Usage: "Investment and insurance valuation server",
		Flags: append(config.GlobalFlags(), config.ServeFlags()...),
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")), c.String("log-format"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Flags:  config.ServeFlags(),
				Action: runServe,
			},
			{
				Name:   "check-db",
				Usage:  "Connect to the database, ensure indexes and exit",
				Action: runCheckDB,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	cfg := config.FromCLI(c)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connecting happens in the background; requests wait for it or fail with 503.
	db := database.Open(ctx, cfg.MongoURI, cfg.ConnectTimeout)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			slog.Warn("failed to close database", "error", err)
		}
	}()

	return server.New(cfg, db).Start(ctx)
}

func runCheckDB(c *cli.Context) error {
	cfg := config.FromCLI(c)
	ctx := c.Context

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.ConnectTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close(context.Background())

	mdb, err := db.Wait(ctx)
	if err != nil {
		return err
	}
	if err := database.EnsureIndexes(ctx, mdb); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	slog.Info("database ok", "database", db.Name())
	return nil
}
