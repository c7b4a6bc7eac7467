package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/finsync/internal/buildinfo"
	"github.com/dmitrijs2005/finsync/internal/client/cli"
	"github.com/dmitrijs2005/finsync/internal/client/config"
	"github.com/dmitrijs2005/finsync/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger := logging.NewTextLogger(os.Stderr, cfg.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()

	if err != nil {
		logger.Error(ctx, "client stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
