package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/preston-bernstein/pen-pictures/internal/app/penpics"
	"github.com/preston-bernstein/pen-pictures/internal/config"
	"github.com/preston-bernstein/pen-pictures/internal/leaders"
	"github.com/preston-bernstein/pen-pictures/internal/logging"
)

const (
	appVersion      = "dev"
	serviceName     = "pen-pictures"
	shutdownTimeout = 5 * time.Second
)

func main() {
	if os.Getenv("SKIP_PENPICS_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one report and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	if err := applyFlags(&cfg, args, stderr); err != nil {
		return 2
	}

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
		Output:  stderr,
	})

	tel := penpics.BuildTelemetry(ctx, cfg, logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tel.Close(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "err", err)
		}
	}()

	provider, err := penpics.NewProvider(cfg, logger, tel.Recorder)
	if err != nil {
		logging.Error(logger, "provider setup failed", err)
		return 1
	}

	svc := penpics.NewService(provider, penpics.NewSnapshotWriter(cfg), penpics.Options{
		XLSXPath:          cfg.Report.XLSXPath,
		BadgePath:         cfg.Report.BadgePath,
		Console:           cfg.Report.Console,
		ConsoleOut:        stdout,
		MinutesPercentile: cfg.Report.MinutesPercentile,
		Leaders:           leaders.Options{SkipZero: cfg.Leaders.SkipZero},
	}, logger, tel.Recorder)

	if _, err := svc.Run(ctx); err != nil {
		return 1
	}
	return 0
}

// applyFlags lets command-line flags override the file-path settings.
func applyFlags(cfg *config.Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Inputs.SeasonPath, "season", cfg.Inputs.SeasonPath, "season statistics XML")
	fs.StringVar(&cfg.Inputs.SquadPath, "squad", cfg.Inputs.SquadPath, "squad roster XML")
	fs.StringVar(&cfg.Report.XLSXPath, "out", cfg.Report.XLSXPath, "spreadsheet output path (empty to skip)")
	fs.StringVar(&cfg.Provider, "provider", cfg.Provider, "squad provider: opta or fixture")
	fs.StringVar(&cfg.Report.SnapshotDir, "snapshot-dir", cfg.Report.SnapshotDir, "directory for JSON report export (empty to skip)")
	fs.StringVar(&cfg.Report.BadgePath, "badge", cfg.Report.BadgePath, "team badge image for the spreadsheet header")
	fs.BoolVar(&cfg.Report.Console, "console", cfg.Report.Console, "print pen pictures to stdout")
	return fs.Parse(args)
}
